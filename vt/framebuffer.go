package vt

import (
	"errors"
	"strings"
)

var fbInvalidCell = errors.New("invalid framebuffer cell")

// framebuffer is the cell grid. It knows nothing about cursors,
// sequences or scroll regions; the terminal hands it resolved
// row/column spans to move and clear.
type framebuffer struct {
	data [][]Cell
}

func newFramebuffer(rows, cols int) *framebuffer {
	fb := &framebuffer{
		data: make([][]Cell, rows),
	}

	for i := range fb.data {
		fb.data[i] = newRow(cols)
	}

	return fb
}

func newRow(cols int) []Cell {
	return make([]Cell, cols)
}

func (f *framebuffer) rows() int {
	return len(f.data)
}

func (f *framebuffer) cols() int {
	if len(f.data) == 0 {
		return 0
	}
	return len(f.data[0])
}

func (f *framebuffer) validPoint(row, col int) bool {
	return row >= 0 && row < f.rows() && col >= 0 && col < f.cols()
}

func (f *framebuffer) getCell(row, col int) (Cell, error) {
	if !f.validPoint(row, col) {
		return Cell{}, fbInvalidCell
	}
	return f.data[row][col], nil
}

func (f *framebuffer) setCell(row, col int, c Cell) {
	if !f.validPoint(row, col) {
		return
	}
	f.data[row][col] = c
}

// resetRows clears rows from through to, inclusive.
func (f *framebuffer) resetRows(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > f.rows()-1 {
		to = f.rows() - 1
	}

	for i := from; i <= to; i++ {
		f.data[i] = newRow(f.cols())
	}
}

// resetCells clears cells [from, to) on the given row.
func (f *framebuffer) resetCells(row, from, to int) {
	if row < 0 || row >= f.rows() {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > f.cols() {
		to = f.cols()
	}

	for col := from; col < to; col++ {
		f.data[row][col] = defaultCell()
	}
}

// shiftUp scrolls rows [top, bottom] up by n, blanking the rows that
// open up at the bottom.
func (f *framebuffer) shiftUp(top, bottom, n int) {
	if n < 1 || top < 0 || bottom >= f.rows() || top > bottom {
		return
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}

	for r := top; r+n <= bottom; r++ {
		f.data[r] = f.data[r+n]
	}
	for r := bottom - n + 1; r <= bottom; r++ {
		f.data[r] = newRow(f.cols())
	}
}

// shiftDown scrolls rows [top, bottom] down by n, blanking the rows
// that open up at the top.
func (f *framebuffer) shiftDown(top, bottom, n int) {
	if n < 1 || top < 0 || bottom >= f.rows() || top > bottom {
		return
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}

	for r := bottom; r-n >= top; r-- {
		f.data[r] = f.data[r-n]
	}
	for r := top; r < top+n; r++ {
		f.data[r] = newRow(f.cols())
	}
}

// insertCells opens n blank cells at (row, col), pushing the rest of
// the row right. Cells pushed past the edge are lost.
func (f *framebuffer) insertCells(row, col, n int) {
	if !f.validPoint(row, col) || n < 1 {
		return
	}

	nc := f.cols()
	if n > nc-col {
		n = nc - col
	}

	r := f.data[row]
	copy(r[col+n:], r[col:nc-n])
	for i := col; i < col+n; i++ {
		r[i] = defaultCell()
	}
}

// deleteCells removes n cells at (row, col), pulling the rest of the
// row left and blanking the tail.
func (f *framebuffer) deleteCells(row, col, n int) {
	if !f.validPoint(row, col) || n < 1 {
		return
	}

	nc := f.cols()
	if n > nc-col {
		n = nc - col
	}

	r := f.data[row]
	copy(r[col:], r[col+n:])
	for i := nc - n; i < nc; i++ {
		r[i] = defaultCell()
	}
}

// rowText flattens a row to the text it displays, without trailing
// blanks.
func (f *framebuffer) rowText(row int) string {
	if row < 0 || row >= f.rows() {
		return ""
	}

	var sb strings.Builder
	for _, c := range f.data[row] {
		sb.WriteString(c.Text())
	}
	return strings.TrimRight(sb.String(), " ")
}

// resize grows or shrinks the grid in place, preserving whatever
// content still fits. New cells are blank.
func (f *framebuffer) resize(rows, cols int) {
	if rows < 1 || cols < 1 {
		return
	}

	data := make([][]Cell, rows)
	for i := range data {
		data[i] = newRow(cols)
		if i < f.rows() {
			copy(data[i], f.data[i])
		}
	}
	f.data = data
}
