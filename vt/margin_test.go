package vt

import "testing"

func TestNewMargin(t *testing.T) {
	cases := []struct {
		val1, val2 int
		wantSet    bool
	}{
		{0, 10, true},
		{5, 6, true},
		{6, 5, false},
		{5, 5, false},
	}

	for i, c := range cases {
		if m := newMargin(c.val1, c.val2); m.isSet() != c.wantSet {
			t.Errorf("%d: Got %s, wanted set: %t", i, m, c.wantSet)
		}
	}
}

func TestMarginContains(t *testing.T) {
	set := newMargin(5, 15)
	unset := margin{}

	cases := []struct {
		m    margin
		p    int
		want bool
	}{
		{set, 5, true},
		{set, 10, true},
		{set, 15, true},
		{set, 4, false},
		{set, 16, false},
		{unset, 0, true},
		{unset, 1000, true},
	}

	for i, c := range cases {
		if got := c.m.contains(c.p); got != c.want {
			t.Errorf("%d: Got %t, wanted %t", i, got, c.want)
		}
	}
}
