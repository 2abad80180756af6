package vt

import "fmt"

// cursor is a grid position. row and col are 0-based here; the 1-based
// translation happens at the sequence boundary.
type cursor struct {
	row, col int
}

func (c cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.row, c.col)
}
