package vt

import "testing"

func TestRuneFor(t *testing.T) {
	ascii := charset{}

	g0Graphics := charset{}
	g0Graphics.setCS("(", '0')

	g1Graphics := charset{}
	g1Graphics.setCS(")", '0')

	g1Shifted := g1Graphics
	g1Shifted.shiftOut()

	unknown := charset{}
	unknown.setCS("(", 'Z')

	cases := []struct {
		cs   charset
		r    rune
		want rune
	}{
		{ascii, 'q', 'q'},
		{ascii, 'x', 'x'},
		{g0Graphics, 'q', '─'},
		{g0Graphics, 'x', '│'},
		{g0Graphics, 'j', '┘'},
		{g0Graphics, '`', '◆'},
		{g0Graphics, 'Q', 'Q'}, // not in the graphics set
		{g1Graphics, 'q', 'q'}, // designated but not shifted in
		{g1Shifted, 'q', '─'},
		{unknown, 'q', 'q'},
	}

	for i, c := range cases {
		if got := c.cs.runeFor(c.r); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}
}

func TestShiftInOut(t *testing.T) {
	cs := charset{}
	cs.setCS(")", '0')

	if got := cs.runeFor('q'); got != 'q' {
		t.Errorf("Got %q, wanted %q before shift out", got, 'q')
	}

	cs.shiftOut()
	if got := cs.runeFor('q'); got != '─' {
		t.Errorf("Got %q, wanted %q after shift out", got, '─')
	}

	cs.shiftIn()
	if got := cs.runeFor('q'); got != 'q' {
		t.Errorf("Got %q, wanted %q after shift in", got, 'q')
	}
}
