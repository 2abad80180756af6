package relay

import (
	"github.com/cfielding-ca/termrelay/vt"
	"github.com/gdamore/tcell/v2"
)

// painter projects terminal state onto a tcell screen, degrading
// every color to the hosting terminal's support level on the way.
type painter struct {
	lvl    vt.SupportLevel
	styles map[vt.Format]tcell.Style
}

func newPainter(lvl vt.SupportLevel) *painter {
	return &painter{
		lvl:    lvl,
		styles: make(map[vt.Format]tcell.Style),
	}
}

// paint redraws the whole grid and the cursor. The caller flushes
// with Show once per batch.
func (p *painter) paint(screen tcell.Screen, t *vt.Terminal) {
	rows, cols := t.Rows(), t.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := t.CellAt(row, col)
			if cell.Continuation() {
				// The wide rune in the cell before covers
				// this column.
				continue
			}
			mainc, combc := cellRunes(cell)
			screen.SetContent(col, row, mainc, combc, p.style(cell.Format()))
		}
	}

	if t.CursorVisible() {
		row, col := t.Cursor()
		screen.ShowCursor(col, row)
	} else {
		screen.HideCursor()
	}
}

func cellRunes(c vt.Cell) (rune, []rune) {
	r := c.Rune()
	if r == 0 || c.Format().Has(vt.INVISIBLE) {
		return ' ', nil
	}
	return r, c.Combining()
}

// style converts a pen to a tcell style. Screens repeat a handful of
// pens endlessly, so conversions are cached for the painter's life.
func (p *painter) style(f vt.Format) tcell.Style {
	if st, ok := p.styles[f]; ok {
		return st
	}

	st := tcell.StyleDefault.
		Foreground(tcellColor(vt.Degrade(f.Fg(), p.lvl))).
		Background(tcellColor(vt.Degrade(f.Bg(), p.lvl)))

	if f.Has(vt.BOLD) {
		st = st.Bold(true)
	}
	if f.Has(vt.FAINT) {
		st = st.Dim(true)
	}
	if f.Has(vt.ITALIC) {
		st = st.Italic(true)
	}
	if f.Has(vt.UNDERLINE) {
		st = st.Underline(true)
	}
	if f.Has(vt.BLINK) {
		st = st.Blink(true)
	}
	if f.Has(vt.REVERSED) {
		st = st.Reverse(true)
	}
	if f.Has(vt.STRIKEOUT) {
		st = st.StrikeThrough(true)
	}

	p.styles[f] = st
	return st
}

func tcellColor(c vt.Color) tcell.Color {
	switch c.Kind() {
	case vt.BASIC, vt.ANSI256:
		return tcell.PaletteColor(int(c.Index()))
	case vt.RGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorReset
}
