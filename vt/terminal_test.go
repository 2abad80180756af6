package vt

import (
	"bytes"
	"strings"
	"testing"
)

func apply(t *Terminal, s string) []OscEvent {
	return t.Apply([]byte(s))
}

func TestPrintAdvancesCursor(t *testing.T) {
	term := New(10, 10)
	apply(term, "Hello")

	if row, col := term.Cursor(); row != 0 || col != 5 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 5)", row, col)
	}

	for i, want := range "Hello" {
		if got := term.CellAt(0, i).Rune(); got != want {
			t.Errorf("Got cell %d = %q, wanted %q", i, got, want)
		}
	}
}

func TestSGRStyledCells(t *testing.T) {
	term := New(10, 80)
	evs := apply(term, "\x1b[31mRed Text\x1b[0m")

	if len(evs) != 0 {
		t.Errorf("Got %d OSC events, wanted 0", len(evs))
	}

	if row, col := term.Cursor(); row != 0 || col != 8 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 8)", row, col)
	}

	for i, want := range "Red Text" {
		c := term.CellAt(0, i)
		if c.Rune() != want {
			t.Errorf("Got cell %d = %q, wanted %q", i, c.Rune(), want)
		}
		if fg := c.Format().Fg(); fg != BasicColor(1) {
			t.Errorf("Got cell %d fg = %s, wanted %s", i, fg, BasicColor(1))
		}
	}

	// The trailing reset clears the pen for the next write.
	if term.curF != defFmt {
		t.Errorf("Got pen %s, wanted default", term.curF)
	}
}

func TestWrapAndScroll(t *testing.T) {
	term := New(2, 3)
	apply(term, "abcdef")

	if got := term.fb.rowText(0); got != "abc" {
		t.Errorf("Got row 0 = %q, wanted %q", got, "abc")
	}
	if got := term.fb.rowText(1); got != "def" {
		t.Errorf("Got row 1 = %q, wanted %q", got, "def")
	}

	// The cursor holds on the final cell until the wrap commits.
	if row, col := term.Cursor(); row != 1 || col != 2 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 1, c: 2)", row, col)
	}

	apply(term, "g")
	if got := term.fb.rowText(0); got != "def" {
		t.Errorf("Got row 0 = %q, wanted %q after scroll", got, "def")
	}
	if got := term.fb.rowText(1); got != "g" {
		t.Errorf("Got row 1 = %q, wanted %q after scroll", got, "g")
	}
	if row, col := term.Cursor(); row != 1 || col != 1 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 1, c: 1)", row, col)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	term := New(5, 10)

	seqs := []string{
		"\x1b[100;100H",
		"\x1b[999A",
		"\x1b[999B",
		"\x1b[999C",
		"\x1b[999D",
		strings.Repeat("x", 200),
		"\x1b[0;0H",
		"\x1b[99E",
		"\x1b[99F",
		"\x1b[200`",
		"\x1b[200d",
	}

	for i, s := range seqs {
		apply(term, s)
		row, col := term.Cursor()
		if row < 0 || row >= 5 || col < 0 || col >= 10 {
			t.Errorf("%d: Got (r: %d, c: %d), wanted a point on the 5x10 grid", i, row, col)
		}
	}
}

func TestEraseLine(t *testing.T) {
	term := New(2, 10)
	apply(term, "\x1b[41mabcde")

	// EL 0 from column 2.
	apply(term, "\x1b[1;3H\x1b[K")
	if got := term.fb.rowText(0); got != "ab" {
		t.Errorf("Got %q, wanted %q", got, "ab")
	}

	// Cleared cells are default in every respect.
	c := term.CellAt(0, 3)
	if c.Rune() != 0 || c.Format() != defFmt {
		t.Errorf("Got %s, wanted a default cell", c)
	}

	term = New(2, 10)
	apply(term, "abcde")

	// EL 1 clears through the cursor, inclusive.
	apply(term, "\x1b[1;3H\x1b[1K")
	want := []rune{0, 0, 0, 'd', 'e'}
	for i, w := range want {
		if got := term.CellAt(0, i).Rune(); got != w {
			t.Errorf("Got cell %d = %q, wanted %q", i, got, w)
		}
	}

	// EL 2 wipes the row.
	apply(term, "\x1b[2K")
	if got := term.fb.rowText(0); got != "" {
		t.Errorf("Got %q, wanted empty row", got)
	}
}

func TestEraseInDisplay(t *testing.T) {
	term := New(3, 3)
	apply(term, "aaa" + "bbb" + "ccc")

	// ED 0 from the middle of row 1.
	apply(term, "\x1b[2;2H\x1b[J")
	for i, want := range []string{"aaa", "b", ""} {
		if got := term.fb.rowText(i); got != want {
			t.Errorf("Got row %d = %q, wanted %q", i, got, want)
		}
	}

	term = New(3, 3)
	apply(term, "aaa" + "bbb" + "ccc")

	// ED 1 through the cursor.
	apply(term, "\x1b[2;2H\x1b[1J")
	for i, want := range []string{"", "  b", "ccc"} {
		if got := term.fb.rowText(i); got != want {
			t.Errorf("Got row %d = %q, wanted %q", i, got, want)
		}
	}

	// ED 2 wipes everything and leaves the cursor alone.
	apply(term, "\x1b[2J")
	for i := 0; i < 3; i++ {
		if got := term.fb.rowText(i); got != "" {
			t.Errorf("Got row %d = %q, wanted empty", i, got)
		}
	}
	if row, col := term.Cursor(); row != 1 || col != 1 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 1, c: 1)", row, col)
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	term := New(10, 10)

	// CSI s / CSI u carry position and pen.
	apply(term, "\x1b[31m\x1b[3;4H\x1b[s\x1b[0m\x1b[H")
	apply(term, "\x1b[u")
	if row, col := term.Cursor(); row != 2 || col != 3 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 2, c: 3)", row, col)
	}
	if term.curF.Fg() != BasicColor(1) {
		t.Errorf("Got pen fg %s, wanted %s", term.curF.Fg(), BasicColor(1))
	}

	// ESC 7 / ESC 8 hit the same single slot; the newest save wins.
	apply(term, "\x1b[5;5H\x1b7\x1b[7;7H\x1b[s\x1b[H\x1b8")
	if row, col := term.Cursor(); row != 6 || col != 6 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 6, c: 6)", row, col)
	}

	// Restore without any save homes the cursor with a default pen.
	term = New(10, 10)
	apply(term, "\x1b[31m\x1b[5;5H\x1b[u")
	if row, col := term.Cursor(); row != 0 || col != 0 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 0)", row, col)
	}
	if term.curF != defFmt {
		t.Errorf("Got pen %s, wanted default", term.curF)
	}
}

func TestSplitSequencesAcrossApply(t *testing.T) {
	term := New(10, 10)

	apply(term, "\x1b[3")
	apply(term, "1mx")

	c := term.CellAt(0, 0)
	if c.Rune() != 'x' || c.Format().Fg() != BasicColor(1) {
		t.Errorf("Got %s, wanted %q with fg %s", c, 'x', BasicColor(1))
	}

	// Split OSC: no event until the terminator arrives.
	if evs := apply(term, "\x1b]2;he"); len(evs) != 0 {
		t.Errorf("Got %d events mid-sequence, wanted 0", len(evs))
	}
	evs := apply(term, "llo\x07")
	if len(evs) != 1 || evs[0].Kind != EVT_TITLE || evs[0].Text != "hello" {
		t.Errorf("Got %v, wanted one title event %q", evs, "hello")
	}
}

func TestOscEvents(t *testing.T) {
	term := New(10, 10)

	evs := apply(term, "\x1b]0;work\x07")
	if len(evs) != 2 {
		t.Fatalf("Got %d events, wanted 2", len(evs))
	}
	if evs[0].Kind != EVT_ICON || evs[1].Kind != EVT_TITLE || evs[1].Text != "work" {
		t.Errorf("Got %v, wanted icon+title %q", evs, "work")
	}
	if term.Title() != "work" || term.Icon() != "work" {
		t.Errorf("Got title %q icon %q, wanted %q", term.Title(), term.Icon(), "work")
	}

	// Payload text keeps embedded separators.
	evs = apply(term, "\x1b]2;a;b\x07")
	if len(evs) != 1 || evs[0].Text != "a;b" {
		t.Errorf("Got %v, wanted title %q", evs, "a;b")
	}

	// ST-terminated hyperlink, then the empty-uri terminator.
	evs = apply(term, "\x1b]8;;http://example.com/x;y\x1b\\")
	if len(evs) != 1 || evs[0].Kind != EVT_HYPERLINK || evs[0].URI != "http://example.com/x;y" {
		t.Errorf("Got %v, wanted hyperlink", evs)
	}

	evs = apply(term, "\x1b]8;;\x07")
	if len(evs) != 1 || evs[0].URI != "" {
		t.Errorf("Got %v, wanted hyperlink close", evs)
	}

	// Unknown OSC codes drop silently.
	if evs = apply(term, "\x1b]777;whatever\x07"); len(evs) != 0 {
		t.Errorf("Got %d events, wanted 0", len(evs))
	}
}

func TestFullReset(t *testing.T) {
	term := New(5, 10)
	apply(term, "\x1b[31mhello\x1b[?25l\x1b]2;t\x07\x1b[2;5r")

	apply(term, "\x1bc")

	if row, col := term.Cursor(); row != 0 || col != 0 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 0)", row, col)
	}
	if got := term.fb.rowText(0); got != "" {
		t.Errorf("Got %q, wanted empty grid", got)
	}
	if !term.CursorVisible() {
		t.Error("Got hidden cursor, wanted visible")
	}
	if term.curF != defFmt {
		t.Errorf("Got pen %s, wanted default", term.curF)
	}
	if term.Title() != "" {
		t.Errorf("Got title %q, wanted empty", term.Title())
	}
	if term.vertMargin.isSet() {
		t.Error("Got scroll region, wanted none")
	}
}

func TestTabs(t *testing.T) {
	term := New(5, 40)

	apply(term, "a\tb")
	if got := term.CellAt(0, 8).Rune(); got != 'b' {
		t.Errorf("Got %q at col 8, wanted %q", got, 'b')
	}
	if row, col := term.Cursor(); row != 0 || col != 9 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 9)", row, col)
	}

	// CBT steps back to the stop we just passed.
	apply(term, "\x1b[Z")
	if _, col := term.Cursor(); col != 8 {
		t.Errorf("Got col %d, wanted 8", col)
	}

	// HTS plants a custom stop.
	apply(term, "\x1b[1;6H\x1bH\x1b[1;1H\t")
	if _, col := term.Cursor(); col != 5 {
		t.Errorf("Got col %d, wanted the custom stop at 5", col)
	}

	// TBC 3 drops every stop; tabs then run to the edge.
	apply(term, "\x1b[3g\x1b[1;1H\t")
	if _, col := term.Cursor(); col != 39 {
		t.Errorf("Got col %d, wanted 39", col)
	}

	// DECST8C restores the regular grid.
	apply(term, "\x1b[?5W\x1b[1;1H\t")
	if _, col := term.Cursor(); col != 8 {
		t.Errorf("Got col %d, wanted 8", col)
	}
}

func TestModeTracking(t *testing.T) {
	term := New(5, 10)

	if !term.modeEnabled("?1") {
		t.Error("Got normal cursor keys, wanted application default")
	}

	apply(term, "\x1b[?1l")
	if term.modeEnabled("?1") {
		t.Error("Got application cursor keys after reset, wanted normal")
	}

	apply(term, "\x1b[?1h")
	if !term.modeEnabled("?1") {
		t.Error("Got normal cursor keys after set, wanted application")
	}

	apply(term, "\x1b[?25l")
	if term.CursorVisible() {
		t.Error("Got visible cursor, wanted hidden")
	}

	apply(term, "\x1b[?2004h")
	if !term.BracketedPaste() {
		t.Error("Got unbracketed paste, wanted bracketed")
	}

	// Multiple modes in one sequence.
	apply(term, "\x1b[?25;2004l")
	if term.CursorVisible() || term.BracketedPaste() {
		t.Error("Got modes still set, wanted both reset")
	}
}

func TestAltScreen(t *testing.T) {
	term := New(5, 10)
	apply(term, "main\x1b[31m")

	apply(term, "\x1b[?1049h")
	if !term.AltScreen() {
		t.Fatal("Got main screen, wanted alternate")
	}
	if got := term.fb.rowText(0); got != "" {
		t.Errorf("Got %q, wanted a blank alternate screen", got)
	}
	if row, col := term.Cursor(); row != 0 || col != 0 {
		t.Errorf("Got (r: %d, c: %d), wanted home", row, col)
	}

	apply(term, "\x1b[0malt text")

	apply(term, "\x1b[?1049l")
	if term.AltScreen() {
		t.Fatal("Got alternate screen, wanted main")
	}
	if got := term.fb.rowText(0); got != "main" {
		t.Errorf("Got %q, wanted %q", got, "main")
	}
	// 1049 restores cursor and pen from entry.
	if row, col := term.Cursor(); row != 0 || col != 4 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 4)", row, col)
	}
	if term.curF.Fg() != BasicColor(1) {
		t.Errorf("Got pen fg %s, wanted %s", term.curF.Fg(), BasicColor(1))
	}
}

func TestWideChars(t *testing.T) {
	term := New(2, 10)
	apply(term, "日x")

	if !term.CellAt(0, 0).Wide() {
		t.Error("Got narrow cell 0, wanted wide")
	}
	if !term.CellAt(0, 1).Continuation() {
		t.Error("Got standalone cell 1, wanted continuation")
	}
	if got := term.CellAt(0, 2).Rune(); got != 'x' {
		t.Errorf("Got %q at col 2, wanted %q", got, 'x')
	}

	// Overwriting either half dissolves the pair.
	apply(term, "\x1b[1;1Hy")
	if got := term.CellAt(0, 0).Rune(); got != 'y' {
		t.Errorf("Got %q, wanted %q", got, 'y')
	}
	if term.CellAt(0, 1).Continuation() {
		t.Error("Got orphaned continuation cell, wanted blank")
	}
}

func TestWideCharWraps(t *testing.T) {
	term := New(2, 3)

	// Only one column left: the wide rune wraps early and the
	// short column stays blank.
	apply(term, "ab日")
	if got := term.CellAt(0, 2).Rune(); got != 0 {
		t.Errorf("Got %q at row 0 col 2, wanted blank", got)
	}
	if got := term.CellAt(1, 0).Rune(); got != '日' {
		t.Errorf("Got %q at row 1 col 0, wanted %q", got, '日')
	}
}

func TestCombiningRunes(t *testing.T) {
	term := New(2, 10)
	apply(term, "éx")

	if got := term.CellAt(0, 0).Rune(); got != 'é' {
		t.Errorf("Got %q, wanted %q", got, 'é')
	}
	if got := term.CellAt(0, 1).Rune(); got != 'x' {
		t.Errorf("Got %q, wanted %q", got, 'x')
	}
	if row, col := term.Cursor(); row != 0 || col != 2 {
		t.Errorf("Got (r: %d, c: %d), wanted (r: 0, c: 2)", row, col)
	}
}

func TestQueryReplies(t *testing.T) {
	term := New(10, 10)
	var buf bytes.Buffer
	term.SetResponder(&buf)

	cases := []struct {
		seq  string
		want string
	}{
		{"\x1b[3;6H\x1b[6n", "\x1b[3;6R"},
		{"\x1b[5n", "\x1b[0n"},
		{"\x1b[c", "\x1b[?62c"},
		{"\x1b[>c", "\x1b[>1;10;0c"},
		{"\x1b[>q", "\x1bP>|termrelay(" + TERMRELAY_VT_VER + ")\x1b\\"},
	}

	for i, c := range cases {
		buf.Reset()
		apply(term, c.seq)
		if got := buf.String(); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}

	// Without a responder, queries are swallowed quietly.
	term.SetResponder(nil)
	apply(term, "\x1b[6n")
}

func TestScrollRegion(t *testing.T) {
	term := New(5, 3)
	apply(term, "aaa\r\nbbb\r\nccc\r\nddd\r\neee")

	// Region rows 1-3 (2;4 on the wire); LF at the bottom margin
	// rotates only the region.
	apply(term, "\x1b[2;4r")
	apply(term, "\x1b[4;1H\n")

	for i, want := range []string{"aaa", "ccc", "ddd", "", "eee"} {
		if got := term.fb.rowText(i); got != want {
			t.Errorf("Got row %d = %q, wanted %q", i, got, want)
		}
	}

	// DECSTBM homes the cursor.
	apply(term, "\x1b[r")
	if row, col := term.Cursor(); row != 0 || col != 0 {
		t.Errorf("Got (r: %d, c: %d), wanted home", row, col)
	}
}

func TestEditingSequences(t *testing.T) {
	term := New(2, 6)
	apply(term, "abcde")

	// ICH opens a gap.
	apply(term, "\x1b[1;2H\x1b[2@")
	if got := term.fb.rowText(0); got != "a  bcd" {
		t.Errorf("Got %q, wanted %q", got, "a  bcd")
	}

	// DCH closes it again.
	apply(term, "\x1b[2P")
	if got := term.fb.rowText(0); got != "abcd" {
		t.Errorf("Got %q, wanted %q", got, "abcd")
	}

	// ECH blanks in place.
	apply(term, "\x1b[2X")
	if got := term.fb.rowText(0); got != "a  d" {
		t.Errorf("Got %q, wanted %q", got, "a  d")
	}

	// REP repeats the last graphic character.
	term = New(2, 10)
	apply(term, "ab\x1b[3b")
	if got := term.fb.rowText(0); got != "abbbb" {
		t.Errorf("Got %q, wanted %q", got, "abbbb")
	}
}

func TestInsertDeleteLines(t *testing.T) {
	term := New(4, 3)
	apply(term, "aaa\r\nbbb\r\nccc\r\nddd")

	apply(term, "\x1b[2;1H\x1b[L")
	for i, want := range []string{"aaa", "", "bbb", "ccc"} {
		if got := term.fb.rowText(i); got != want {
			t.Errorf("Got row %d = %q, wanted %q after IL", i, got, want)
		}
	}

	apply(term, "\x1b[M")
	for i, want := range []string{"aaa", "bbb", "ccc", ""} {
		if got := term.fb.rowText(i); got != want {
			t.Errorf("Got row %d = %q, wanted %q after DL", i, got, want)
		}
	}
}

func TestOnScroll(t *testing.T) {
	term := New(2, 3)
	var history []string
	term.OnScroll(func(s string) {
		history = append(history, s)
	})

	apply(term, "abc\r\ndef\r\n")
	if len(history) != 1 || history[0] != "abc" {
		t.Errorf("Got %v, wanted [abc]", history)
	}

	// Alternate-screen churn stays out of history.
	apply(term, "\x1b[?1049hxyz\r\n\r\n\r\n\x1b[?1049l")
	if len(history) != 1 {
		t.Errorf("Got %d history lines, wanted still 1", len(history))
	}
}

func TestGarbageInput(t *testing.T) {
	term := New(5, 10)

	// Malformed and truncated sequences must never panic or wedge
	// the parser.
	seqs := [][]byte{
		{0x1b},
		{0x1b, '['},
		{0x1b, '[', 0xff, 0xfe},
		{0x1b, ']', 0x07},
		{0xc3},       // lone UTF-8 lead byte
		{0x80, 0x9f}, // stray continuation bytes
		[]byte("\x1b[999999999999999999m"),
		[]byte("\x1b]2;unterminated"),
	}

	for _, s := range seqs {
		term.Apply(s)
	}

	// And the terminal still works afterwards.
	term.Apply([]byte{0x07}) // flush the unterminated OSC
	apply(term, "\x1bc ok")
	if got := term.fb.rowText(0); got != " ok" {
		t.Errorf("Got %q, wanted %q", got, " ok")
	}
}

func TestResizePreservesContent(t *testing.T) {
	term := New(3, 10)
	apply(term, "hello")

	term.Resize(5, 20)
	if got := term.fb.rowText(0); got != "hello" {
		t.Errorf("Got %q, wanted %q", got, "hello")
	}
	if term.Rows() != 5 || term.Cols() != 20 {
		t.Errorf("Got %dx%d, wanted 5x20", term.Rows(), term.Cols())
	}

	// Shrinking pulls the cursor back onto the grid.
	apply(term, "\x1b[5;20H")
	term.Resize(2, 4)
	row, col := term.Cursor()
	if row >= 2 || col >= 4 {
		t.Errorf("Got (r: %d, c: %d), wanted a point on the 2x4 grid", row, col)
	}
}
