package vt

import (
	"fmt"
	"slices"
)

// Wide glyphs span two columns: the primary cell carries the rune,
// the secondary pads the column after it.
const (
	FRAG_NONE = iota
	FRAG_PRIMARY
	FRAG_SECONDARY
)

// Cell is one character cell of the grid: a rune (possibly with
// combining marks attached), the pen it was written with, and its
// wide-glyph fragment role. The zero rune reads as an empty cell.
type Cell struct {
	r    rune
	comb []rune
	f    Format
	frag int
}

func defaultCell() Cell {
	return Cell{}
}

func newCell(r rune, f Format) Cell {
	return Cell{r: r, f: f}
}

func (c Cell) Rune() rune {
	return c.r
}

// Combining returns the combining runes attached to the base rune,
// nil for the common case.
func (c Cell) Combining() []rune {
	return c.comb
}

func (c Cell) Format() Format {
	return c.f
}

// Wide reports whether this is the leading cell of a two-column
// glyph.
func (c Cell) Wide() bool {
	return c.frag == FRAG_PRIMARY
}

// Continuation reports whether this cell is the trailing half of a
// two-column glyph and carries no rune of its own.
func (c Cell) Continuation() bool {
	return c.frag == FRAG_SECONDARY
}

// Text is the cell's content as a string; empty cells read as a
// space, continuations as nothing.
func (c Cell) Text() string {
	if c.frag == FRAG_SECONDARY {
		return ""
	}
	if c.r == 0 {
		return " "
	}
	return string(append([]rune{c.r}, c.comb...))
}

func (c Cell) equal(other Cell) bool {
	return c.r == other.r && c.f == other.f && c.frag == other.frag &&
		slices.Equal(c.comb, other.comb)
}

func (c Cell) String() string {
	return fmt.Sprintf("%q (%s)", c.Text(), c.f)
}
