package vt

import "testing"

func TestPaletteRGB(t *testing.T) {
	cases := []struct {
		n       uint8
		r, g, b uint8
	}{
		{0, 0x00, 0x00, 0x00},
		{1, 0x80, 0x00, 0x00},
		{7, 0xc0, 0xc0, 0xc0},
		{9, 0xff, 0x00, 0x00},
		{15, 0xff, 0xff, 0xff},
		{16, 0x00, 0x00, 0x00},
		{21, 0x00, 0x00, 0xff},
		{46, 0x00, 0xff, 0x00},
		{67, 0x5f, 0x87, 0xaf},
		{196, 0xff, 0x00, 0x00},
		{231, 0xff, 0xff, 0xff},
		{232, 8, 8, 8},
		{243, 118, 118, 118},
		{255, 238, 238, 238},
	}

	for i, c := range cases {
		if r, g, b := paletteRGB(c.n); r != c.r || g != c.g || b != c.b {
			t.Errorf("%d: Got (%d, %d, %d), wanted (%d, %d, %d)", i, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestAnsi256Normalizes(t *testing.T) {
	cases := []struct {
		n    uint8
		kind int
	}{
		{0, BASIC},
		{7, BASIC},
		{15, BASIC},
		{16, ANSI256},
		{100, ANSI256},
		{255, ANSI256},
	}

	for i, c := range cases {
		col := Ansi256Color(c.n)
		if col.Kind() != c.kind || col.Index() != c.n {
			t.Errorf("%d: Got %s, wanted kind %d index %d", i, col, c.kind, c.n)
		}
	}
}

func TestColorRGB(t *testing.T) {
	cases := []struct {
		c       Color
		r, g, b uint8
	}{
		{DefaultColor(), 0, 0, 0},
		{BasicColor(1), 0x80, 0x00, 0x00},
		{Ansi256Color(196), 0xff, 0x00, 0x00},
		{Ansi256Color(232), 8, 8, 8},
		{RGBColor(12, 200, 250), 12, 200, 250},
	}

	for i, c := range cases {
		if r, g, b := c.c.RGB(); r != c.r || g != c.g || b != c.b {
			t.Errorf("%d: Got (%d, %d, %d), wanted (%d, %d, %d)", i, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestColorFromParams(t *testing.T) {
	cases := []struct {
		items []int
		def   Color
		want  Color
	}{
		{[]int{5, 1}, DefaultColor(), BasicColor(1)},
		{[]int{5, 196}, DefaultColor(), Ansi256Color(196)},
		{[]int{2, 255, 0, 0}, DefaultColor(), RGBColor(255, 0, 0)},
		{[]int{2, 300, -5, 12}, DefaultColor(), RGBColor(255, 0, 12)},
		{[]int{9, 1}, BasicColor(3), BasicColor(3)},
		{[]int{2, 1}, BasicColor(3), BasicColor(3)},
		{[]int{5}, BasicColor(3), BasicColor(3)},
		{[]int{}, DefaultColor(), DefaultColor()},
	}

	for i, c := range cases {
		p := newParams()
		for _, item := range c.items {
			p.addItem(item)
		}
		if got := colorFromParams(p, c.def); got != c.want {
			t.Errorf("%d: Got %s, wanted %s", i, got, c.want)
		}
	}
}
