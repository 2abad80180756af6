package vt

// cursorMoveAbs places the cursor at (row, col), clamped onto the
// grid. All cursor motion funnels through here, so moving the cursor
// always cancels a pending wrap.
func (t *Terminal) cursorMoveAbs(row, col int) {
	t.wrapNext = false

	switch {
	case row < 0:
		row = 0
	case row > t.rows()-1:
		row = t.rows() - 1
	}

	switch {
	case col < 0:
		col = 0
	case col > t.cols()-1:
		col = t.cols() - 1
	}

	t.cur = cursor{row, col}
}

// cursorUp moves the cursor up n rows. Inside the scroll region (or
// below it) the cursor stops at the top margin; above the region it
// may run to the top of the screen. It never scrolls.
func (t *Terminal) cursorUp(n int) {
	if n == 0 {
		n = 1
	}

	min := 0
	if tm := t.topMargin(); t.row() >= tm {
		min = tm
	}

	row := t.row() - n
	if row < min {
		row = min
	}

	t.cursorMoveAbs(row, t.col())
}

// cursorDown moves the cursor down n rows, stopping at the bottom
// margin when the cursor starts at or above it. It never scrolls.
func (t *Terminal) cursorDown(n int) {
	if n == 0 {
		n = 1
	}

	max := t.rows() - 1
	if bm := t.bottomMargin(); t.row() <= bm {
		max = bm
	}

	row := t.row() + n
	if row > max {
		row = max
	}

	t.cursorMoveAbs(row, t.col())
}

// cursorForward moves the cursor right n columns, stopping at the
// right margin when the cursor starts at or left of it.
func (t *Terminal) cursorForward(n int) {
	if n == 0 {
		n = 1
	}

	max := t.cols() - 1
	if rm := t.rightMargin(); t.col() <= rm {
		max = rm
	}

	col := t.col() + n
	if col > max {
		col = max
	}

	t.cursorMoveAbs(t.row(), col)
}

// cursorBack moves the cursor left n columns, stopping at the left
// margin when the cursor starts at or right of it.
func (t *Terminal) cursorBack(n int) {
	if n == 0 {
		n = 1
	}

	min := 0
	if lm := t.leftMargin(); t.col() >= lm {
		min = lm
	}

	col := t.col() - n
	if col < min {
		col = min
	}

	t.cursorMoveAbs(t.row(), col)
}

// cursorCNL moves the cursor to the start of the line n rows down.
func (t *Terminal) cursorCNL(n int) {
	t.cursorDown(n)
	t.carriageReturn()
}

// cursorCPL moves the cursor to the start of the line n rows up.
func (t *Terminal) cursorCPL(n int) {
	t.cursorUp(n)
	t.carriageReturn()
}

// cursorCHAorHPA moves the cursor to the absolute column col on the
// current row. In origin mode the column is relative to the left
// margin and clamps inside the region.
func (t *Terminal) cursorCHAorHPA(col int) {
	if t.originMode() {
		col += t.leftMargin()
		if col > t.rightMargin() {
			col = t.rightMargin()
		}
	}
	t.cursorMoveAbs(t.row(), col)
}

// cursorVPA moves the cursor to the absolute row on the current
// column. In origin mode the row is relative to the top margin and
// clamps inside the region.
func (t *Terminal) cursorVPA(row int) {
	if t.originMode() {
		row += t.topMargin()
		if row > t.bottomMargin() {
			row = t.bottomMargin()
		}
	}
	t.cursorMoveAbs(row, t.col())
}

// cursorHPR moves the cursor n columns right of its current position,
// ignoring margins.
func (t *Terminal) cursorHPR(n int) {
	if n == 0 {
		n = 1
	}
	t.cursorMoveAbs(t.row(), t.col()+n)
}

// cursorVPR moves the cursor n rows below its current position,
// ignoring margins.
func (t *Terminal) cursorVPR(n int) {
	if n == 0 {
		n = 1
	}
	t.cursorMoveAbs(t.row()+n, t.col())
}

// cursorCUPorHVP moves the cursor to the absolute (row, col). In
// origin mode the coordinates are relative to the top-left margin and
// clamp inside the region.
func (t *Terminal) cursorCUPorHVP(row, col int) {
	if t.originMode() {
		row += t.topMargin()
		col += t.leftMargin()
		if row > t.bottomMargin() {
			row = t.bottomMargin()
		}
		if col > t.rightMargin() {
			col = t.rightMargin()
		}
	}
	t.cursorMoveAbs(row, col)
}
