package vt

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	vte "github.com/danielgatis/go-vte"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Terminal is an offscreen vt220-style screen: a grid of styled
// cells, a pen, and the parser state needed to consume raw pty output
// in whatever chunks it arrives. The parser is persistent, so a
// sequence split across writes picks up exactly where it left off.
//
// Terminal does no locking. Callers that share one across goroutines
// serialize access themselves.
type Terminal struct {
	p  *vte.Parser
	fb *framebuffer

	// mainFb parks the main screen while the alternate is active.
	mainFb *framebuffer

	cur      cursor
	curF     Format
	wrapNext bool

	savedCur cursor
	savedFmt Format

	cs        charset
	tabs      []bool
	lastPrint rune

	vertMargin, horizMargin margin

	modes map[string]*mode

	title, icon           string
	savedTitle, savedIcon string

	events []OscEvent

	resp     io.Writer
	onScroll func(string)
}

func New(rows, cols int) *Terminal {
	if rows < 1 {
		rows = DEF_ROWS
	}
	if cols < 1 {
		cols = DEF_COLS
	}

	t := &Terminal{
		fb:    newFramebuffer(rows, cols),
		tabs:  makeTabs(cols),
		modes: defaultModes(),
	}
	t.p = vte.NewParser(t)

	return t
}

// Apply feeds p to the parser and returns the OSC events that
// completed during this call, oldest first. Partial trailing
// sequences stay buffered in the parser for the next call; malformed
// input is consumed without effect.
func (t *Terminal) Apply(p []byte) []OscEvent {
	for _, b := range p {
		t.p.Advance(b)
	}

	evs := t.events
	t.events = nil
	return evs
}

// SetResponder directs query replies (DSR, DA and friends) at w,
// normally the pty the output came from. Without one, queries are
// swallowed.
func (t *Terminal) SetResponder(w io.Writer) {
	t.resp = w
}

// OnScroll registers fn to receive the text of each row that scrolls
// off the top of the main screen. Alternate-screen scrolling is not
// reported.
func (t *Terminal) OnScroll(fn func(string)) {
	t.onScroll = fn
}

func (t *Terminal) Rows() int {
	return t.fb.rows()
}

func (t *Terminal) Cols() int {
	return t.fb.cols()
}

// Cursor returns the current 0-based cursor position. It is always
// within the grid, even mid-wrap.
func (t *Terminal) Cursor() (int, int) {
	return t.cur.row, t.cur.col
}

func (t *Terminal) CursorVisible() bool {
	return t.modeEnabled("?25")
}

func (t *Terminal) BracketedPaste() bool {
	return t.modeEnabled("?2004")
}

func (t *Terminal) AltScreen() bool {
	return t.mainFb != nil
}

func (t *Terminal) Title() string {
	return t.title
}

func (t *Terminal) Icon() string {
	return t.icon
}

// CellAt returns the cell at (row, col), or a blank cell when the
// point is off the grid.
func (t *Terminal) CellAt(row, col int) Cell {
	c, err := t.fb.getCell(row, col)
	if err != nil {
		return defaultCell()
	}
	return c
}

// Resize changes the grid dimensions, preserving content that still
// fits. Scroll regions reset and the cursor clamps back onto the
// grid.
func (t *Terminal) Resize(rows, cols int) {
	if rows < 1 || cols < 1 {
		slog.Error("ignoring invalid resize", "rows", rows, "cols", cols)
		return
	}

	t.fb.resize(rows, cols)
	if t.mainFb != nil {
		t.mainFb.resize(rows, cols)
	}
	t.resizeTabs(cols)
	t.vertMargin = margin{}
	t.horizMargin = margin{}
	t.cursorMoveAbs(t.cur.row, t.cur.col)
}

func (t *Terminal) rows() int {
	return t.fb.rows()
}

func (t *Terminal) cols() int {
	return t.fb.cols()
}

func (t *Terminal) row() int {
	return t.cur.row
}

func (t *Terminal) col() int {
	return t.cur.col
}

func (t *Terminal) modeEnabled(key string) bool {
	m, ok := t.modes[key]
	return ok && m.enabled()
}

// reset returns the terminal to its power-on state. The grid keeps
// its dimensions but loses all content.
func (t *Terminal) reset() {
	rows, cols := t.rows(), t.cols()
	t.fb = newFramebuffer(rows, cols)
	t.mainFb = nil
	t.cur = cursor{}
	t.curF = defFmt
	t.wrapNext = false
	t.savedCur = cursor{}
	t.savedFmt = defFmt
	t.cs = charset{}
	t.tabs = makeTabs(cols)
	t.lastPrint = 0
	t.vertMargin = margin{}
	t.horizMargin = margin{}
	t.modes = defaultModes()
	t.title, t.icon = "", ""
	t.savedTitle, t.savedIcon = "", ""
}

// ---- go-vte Performer ----

func (t *Terminal) Print(r rune) {
	t.print(t.cs.runeFor(r))
}

func (t *Terminal) Execute(b byte) {
	switch b {
	case BEL:
		// Nothing useful to do offscreen.
	case BS:
		t.cursorMoveAbs(t.row(), t.col()-1)
	case TAB:
		t.stepTabs(1)
	case LF, VT, FF:
		t.lineFeed()
		if t.modeEnabled("20") {
			t.carriageReturn()
		}
	case CR:
		t.carriageReturn()
	case SO:
		t.cs.shiftOut()
	case SI:
		t.cs.shiftIn()
	default:
		slog.Debug("unhandled control byte", "byte", b)
	}
}

func (t *Terminal) CsiDispatch(groups [][]uint16, intermediates []byte, ignore bool, final rune) {
	if ignore {
		slog.Debug("ignoring malformed CSI", "final", string(final))
		return
	}
	t.handleCSI(paramsFromGroups(groups), string(intermediates), final)
}

func (t *Terminal) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if ignore {
		slog.Debug("ignoring malformed ESC sequence", "final", string(b))
		return
	}
	t.handleESC(string(intermediates), b)
}

func (t *Terminal) OscDispatch(params [][]byte, bellTerminated bool) {
	t.handleOSC(params)
}

func (t *Terminal) Hook(params [][]uint16, intermediates []byte, ignore bool, final rune) {
	slog.Debug("ignoring DCS hook", "final", string(final))
}

func (t *Terminal) Put(b byte) {}

func (t *Terminal) Unhook() {}

func (t *Terminal) SosPmApcDispatch(kind vte.SosPmApcKind, data []byte, bellTerminated bool) {
	slog.Debug("ignoring SOS/PM/APC string", "kind", kind)
}

// ---- printing ----

// print writes r at the cursor and advances by the rune's display
// width. A write that fills the final column leaves the cursor on it
// with a wrap pending; the wrap happens when the next printable
// arrives, so the cursor never rests outside the grid.
func (t *Terminal) print(r rune) {
	rw := runewidth.RuneWidth(r)

	if rw == 0 {
		t.combine(r)
		return
	}

	row, col := t.row(), t.col()

	if t.wrapNext {
		t.wrapNext = false
		if t.autowrap() {
			row, col = t.wrapPoint(row)
		}
	}

	// A wide rune with only one column left wraps early, or pins
	// against the edge when autowrap is off.
	if col+rw > t.cols() {
		if t.autowrap() {
			row, col = t.wrapPoint(row)
		} else {
			col = t.cols() - rw
		}
	}

	if t.modeEnabled("4") {
		t.fb.insertCells(row, col, rw)
	}

	t.clearFrag(row, col)
	nc := newCell(r, t.curF)
	if rw > 1 {
		t.clearFrag(row, col+1)
		nc.frag = FRAG_PRIMARY
		t.fb.setCell(row, col+1, Cell{f: t.curF, frag: FRAG_SECONDARY})
	}
	t.fb.setCell(row, col, nc)
	t.lastPrint = r

	if col+rw >= t.cols() {
		t.cur = cursor{row, t.cols() - 1}
		t.wrapNext = true
	} else {
		t.cur = cursor{row, col + rw}
	}
}

// wrapPoint resolves where a wrapping write lands: the left edge of
// the next row, scrolling if the cursor sat on the last scrollable
// row.
func (t *Terminal) wrapPoint(row int) (int, int) {
	switch {
	case row == t.bottomMargin():
		t.scrollUp(1)
	case row < t.rows()-1:
		row++
	}
	return row, t.leftMargin()
}

// combine attaches a zero-width rune to the glyph before the cursor,
// preferring a precomposed form when one exists.
func (t *Terminal) combine(r rune) {
	row, col := t.row(), t.col()
	if !t.wrapNext {
		col--
	}
	if col < 0 {
		// Nothing on this row to combine with; per vt behavior
		// for the edge case, drop it.
		slog.Debug("dropping combining rune at start of row", "rune", r)
		return
	}

	c, err := t.fb.getCell(row, col)
	if err != nil {
		return
	}
	if c.frag == FRAG_SECONDARY && col > 0 {
		col--
		c, _ = t.fb.getCell(row, col)
	}
	if c.r == 0 {
		slog.Debug("dropping combining rune over empty cell", "rune", r)
		return
	}

	merged := []rune(norm.NFC.String(string(append(append([]rune{c.r}, c.comb...), r))))
	c.r = merged[0]
	if len(merged) > 1 {
		c.comb = merged[1:]
	} else {
		c.comb = nil
	}
	t.fb.setCell(row, col, c)
}

// clearFrag keeps wide glyphs whole: overwriting either half blanks
// the other.
func (t *Terminal) clearFrag(row, col int) {
	c, err := t.fb.getCell(row, col)
	if err != nil {
		return
	}

	switch c.frag {
	case FRAG_PRIMARY:
		if n, err := t.fb.getCell(row, col+1); err == nil && n.frag == FRAG_SECONDARY {
			t.fb.setCell(row, col+1, defaultCell())
		}
	case FRAG_SECONDARY:
		if p, err := t.fb.getCell(row, col-1); err == nil && p.frag == FRAG_PRIMARY {
			t.fb.setCell(row, col-1, defaultCell())
		}
	}
}

func (t *Terminal) repeatLast(n int) {
	if t.lastPrint == 0 {
		return
	}
	if max := t.rows() * t.cols(); n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		t.print(t.lastPrint)
	}
}

// ---- line and scroll handling ----

func (t *Terminal) lineFeed() {
	t.wrapNext = false
	switch {
	case t.row() == t.bottomMargin():
		t.scrollUp(1)
	case t.row() < t.rows()-1:
		t.cur.row++
	}
}

func (t *Terminal) reverseIndex() {
	t.wrapNext = false
	switch {
	case t.row() == t.topMargin():
		t.scrollDown(1)
	default:
		t.cursorMoveAbs(t.row()-1, t.col())
	}
}

func (t *Terminal) carriageReturn() {
	t.wrapNext = false
	t.cur.col = t.leftMargin()
}

// scrollUp scrolls the region up n rows. Rows leaving the top of the
// main screen feed the scroll hook; the alternate screen has no
// history worth keeping.
func (t *Terminal) scrollUp(n int) {
	top, bottom := t.topMargin(), t.bottomMargin()
	if t.onScroll != nil && t.mainFb == nil && top == 0 {
		for i := 0; i < n && i <= bottom; i++ {
			t.onScroll(t.fb.rowText(i))
		}
	}
	t.fb.shiftUp(top, bottom, n)
}

func (t *Terminal) scrollDown(n int) {
	t.fb.shiftDown(t.topMargin(), t.bottomMargin(), n)
}

func (t *Terminal) insertLines(n int) {
	if t.row() < t.topMargin() || t.row() > t.bottomMargin() {
		return
	}
	t.fb.shiftDown(t.row(), t.bottomMargin(), n)
}

func (t *Terminal) deleteLines(n int) {
	if t.row() < t.topMargin() || t.row() > t.bottomMargin() {
		return
	}
	t.fb.shiftUp(t.row(), t.bottomMargin(), n)
}

// ---- margins ----

func (t *Terminal) topMargin() int {
	if t.vertMargin.isSet() {
		return t.vertMargin.getMin()
	}
	return 0
}

func (t *Terminal) bottomMargin() int {
	if t.vertMargin.isSet() {
		return t.vertMargin.getMax()
	}
	return t.rows() - 1
}

func (t *Terminal) leftMargin() int {
	if t.horizMargin.isSet() {
		return t.horizMargin.getMin()
	}
	return 0
}

func (t *Terminal) rightMargin() int {
	if t.horizMargin.isSet() {
		return t.horizMargin.getMax()
	}
	return t.cols() - 1
}

func (t *Terminal) setTopBottom(params *parameters) {
	top, _ := params.getItem(0, 1)
	bottom, _ := params.getItem(1, t.rows())

	// Ensure sanity, as xterm does.
	if top < 1 || bottom > t.rows() || bottom-top < 1 {
		slog.Debug("ignoring invalid DECSTBM", "top", top, "bottom", bottom)
		return
	}

	if top == 1 && bottom == t.rows() {
		t.vertMargin = margin{}
	} else {
		t.vertMargin = newMargin(top-1, bottom-1)
	}
	t.cursorCUPorHVP(0, 0)
}

func (t *Terminal) setLeftRight(params *parameters) {
	left, _ := params.getItem(0, 1)
	right, _ := params.getItem(1, t.cols())

	if left < 1 || right > t.cols() || right-left < 1 {
		slog.Debug("ignoring invalid DECSLRM", "left", left, "right", right)
		return
	}

	if left == 1 && right == t.cols() {
		t.horizMargin = margin{}
	} else {
		t.horizMargin = newMargin(left-1, right-1)
	}
	t.cursorCUPorHVP(0, 0)
}

// ---- tabs ----

func makeTabs(cols int) []bool {
	tabs := make([]bool, cols)
	for i := range tabs {
		tabs[i] = i%8 == 0
	}
	return tabs
}

func (t *Terminal) resizeTabs(cols int) {
	old := len(t.tabs)
	switch {
	case cols < old:
		t.tabs = t.tabs[:cols]
	case cols > old:
		for i := old; i < cols; i++ {
			t.tabs = append(t.tabs, i%8 == 0)
		}
	}
}

// stepTabs moves the cursor n tab stops forward (or backward for
// negative n), clamping at the row edges.
func (t *Terminal) stepTabs(n int) {
	inc := 1
	if n < 0 {
		inc, n = -1, -n
	}

	col := t.col()
	for ; n > 0; n-- {
		for {
			col += inc
			if col <= 0 || col >= t.cols()-1 {
				break
			}
			if t.tabs[col] {
				break
			}
		}
	}

	t.cursorMoveAbs(t.row(), col)
}

func (t *Terminal) clearTabs(params *parameters) {
	m, _ := params.getItem(0, 0)
	switch m {
	case TBC_CUR:
		if t.col() < len(t.tabs) {
			t.tabs[t.col()] = false
		}
	case TBC_ALL:
		t.tabs = make([]bool, t.cols())
	default:
		slog.Debug("unimplemented TBC parameter", "param", m)
	}
}

func (t *Terminal) resetTabs(params *parameters, data string) {
	// DECST8C is the only form defined: CSI ? 5 W.
	if n, _ := params.getItem(0, 0); data != "?" || n != 5 {
		slog.Debug("ignoring unknown tab reset", "data", data)
		return
	}
	t.tabs = makeTabs(t.cols())
}

// ---- erasure ----

func (t *Terminal) eraseLine(params *parameters) {
	m, _ := params.getItem(0, 0)
	switch m {
	case 0:
		t.fb.resetCells(t.row(), t.col(), t.cols())
	case 1:
		t.fb.resetCells(t.row(), 0, t.col()+1)
	case 2:
		t.fb.resetCells(t.row(), 0, t.cols())
	default:
		slog.Debug("unimplemented EL parameter", "param", m)
	}
}

func (t *Terminal) eraseInDisplay(params *parameters) {
	m, _ := params.getItem(0, 0)
	switch m {
	case 0:
		t.eraseLine(params)
		t.fb.resetRows(t.row()+1, t.rows()-1)
	case 1:
		t.eraseLine(params)
		t.fb.resetRows(0, t.row()-1)
	case 2:
		t.fb.resetRows(0, t.rows()-1)
	case 3:
		// No scrollback of our own to clear.
		slog.Debug("ignoring ED 3")
	default:
		slog.Debug("unimplemented ED parameter", "param", m)
	}
}

// ---- saved cursor ----

func (t *Terminal) saveCursor() {
	t.savedCur = t.cur
	t.savedFmt = t.curF
}

// restoreCursor puts the cursor and pen back to the last save. With
// no save yet, that's home position and the default pen.
func (t *Terminal) restoreCursor() {
	t.curF = t.savedFmt
	t.cursorMoveAbs(t.savedCur.row, t.savedCur.col)
}

// ---- alt screen ----

// setAltScreen switches between the main and alternate screens. The
// alternate starts blank on every entry; withCursor additionally
// saves/restores the cursor the way xterm's 1049 mode does.
func (t *Terminal) setAltScreen(enter, withCursor bool) {
	switch {
	case enter && t.mainFb == nil:
		if withCursor {
			t.saveCursor()
		}
		t.mainFb = t.fb
		t.fb = newFramebuffer(t.rows(), t.cols())
		t.cursorMoveAbs(0, 0)
	case !enter && t.mainFb != nil:
		t.fb = t.mainFb
		t.mainFb = nil
		if withCursor {
			t.restoreCursor()
		}
	}
}

// ---- modes ----

func (t *Terminal) autowrap() bool {
	return t.modeEnabled("?7")
}

func (t *Terminal) originMode() bool {
	return t.modeEnabled("?6")
}

func (t *Terminal) setModes(params *parameters, data string, state rune) {
	if data != "" && data != "?" {
		slog.Debug("ignoring mode change with intermediate", "data", data)
		return
	}

	for {
		code, ok := params.consumeItem()
		if !ok {
			break
		}
		t.setMode(fmt.Sprintf("%s%d", data, code), state)
	}
}

func (t *Terminal) setMode(key string, state rune) {
	switch key {
	case "?47", "?1047":
		t.setAltScreen(state == CSI_MODE_SET, false)
	case "?1049":
		t.setAltScreen(state == CSI_MODE_SET, true)
	case "?6":
		// Origin mode homes the cursor on every change.
		defer t.cursorCUPorHVP(0, 0)
	}

	m, ok := t.modes[key]
	if !ok {
		slog.Debug("unimplemented mode", "mode", key)
		return
	}
	m.setState(state)
}

// ---- dispatch ----

func (t *Terminal) handleESC(data string, b byte) {
	if data == "(" || data == ")" {
		t.cs.setCS(data, b)
		return
	}
	if data != "" {
		slog.Debug("ignoring ESC sequence with intermediate", "data", data, "final", string(b))
		return
	}

	switch b {
	case DECSC:
		t.saveCursor()
	case DECRC:
		t.restoreCursor()
	case IND:
		t.lineFeed()
	case NEL:
		t.lineFeed()
		t.carriageReturn()
	case HTS:
		if t.col() < len(t.tabs) {
			t.tabs[t.col()] = true
		}
	case RI:
		t.reverseIndex()
	case RIS:
		t.reset()
	case '=', '>':
		// Keypad application/numeric mode. We don't relay
		// keypad keys distinctly, so tracking it buys nothing.
		slog.Debug("ignoring keypad mode change", "final", string(b))
	default:
		slog.Debug("unhandled ESC sequence", "final", string(b))
	}
}

func (t *Terminal) handleCSI(params *parameters, data string, final rune) {
	switch final {
	case CSI_ICH:
		n, _ := params.getItem(0, 1)
		t.fb.insertCells(t.row(), t.col(), n)
	case CSI_CUU:
		n, _ := params.getItem(0, 1)
		t.cursorUp(n)
	case CSI_CUD:
		n, _ := params.getItem(0, 1)
		t.cursorDown(n)
	case CSI_CUF:
		n, _ := params.getItem(0, 1)
		t.cursorForward(n)
	case CSI_CUB:
		n, _ := params.getItem(0, 1)
		t.cursorBack(n)
	case CSI_CNL:
		n, _ := params.getItem(0, 1)
		t.cursorCNL(n)
	case CSI_CPL:
		n, _ := params.getItem(0, 1)
		t.cursorCPL(n)
	case CSI_CHA:
		n, _ := params.getItem(0, 1)
		t.cursorCHAorHPA(n - 1)
	case CSI_CUP, CSI_HVP:
		row, _ := params.getItem(0, 1)
		col, _ := params.getItem(1, 1)
		t.cursorCUPorHVP(row-1, col-1)
	case CSI_CHT:
		n, _ := params.getItem(0, 1)
		t.stepTabs(n)
	case CSI_ED:
		t.eraseInDisplay(params)
	case CSI_EL:
		t.eraseLine(params)
	case CSI_IL:
		n, _ := params.getItem(0, 1)
		t.insertLines(n)
	case CSI_DL:
		n, _ := params.getItem(0, 1)
		t.deleteLines(n)
	case CSI_DCH:
		n, _ := params.getItem(0, 1)
		t.fb.deleteCells(t.row(), t.col(), n)
	case CSI_SU:
		n, _ := params.getItem(0, 1)
		t.scrollUp(n)
	case CSI_SD:
		n, _ := params.getItem(0, 1)
		t.scrollDown(n)
	case CSI_DECST8C:
		t.resetTabs(params, data)
	case CSI_ECH:
		n, _ := params.getItem(0, 1)
		t.fb.resetCells(t.row(), t.col(), t.col()+n)
	case CSI_CBT:
		n, _ := params.getItem(0, 1)
		t.stepTabs(-n)
	case CSI_HPA:
		n, _ := params.getItem(0, 1)
		t.cursorCHAorHPA(n - 1)
	case CSI_HPR:
		n, _ := params.getItem(0, 1)
		t.cursorHPR(n)
	case CSI_REP:
		n, _ := params.getItem(0, 1)
		t.repeatLast(n)
	case CSI_DA:
		t.replyDA(params, data)
	case CSI_VPA:
		n, _ := params.getItem(0, 1)
		t.cursorVPA(n - 1)
	case CSI_VPR:
		n, _ := params.getItem(0, 1)
		t.cursorVPR(n)
	case CSI_TBC:
		t.clearTabs(params)
	case CSI_MODE_SET:
		t.setModes(params, data, CSI_MODE_SET)
	case CSI_MODE_RESET:
		t.setModes(params, data, CSI_MODE_RESET)
	case CSI_SGR:
		if data != "" {
			// xterm key-modifier options share the final byte.
			slog.Debug("ignoring SGR with intermediate", "data", data)
			return
		}
		t.curF = applyFormat(t.curF, params)
	case CSI_DSR:
		t.replyDSR(params, data)
	case CSI_Q_MULTI:
		t.replyVersion(params, data)
	case CSI_DECSTBM:
		t.setTopBottom(params)
	case CSI_DECSLRM:
		// Final 's' is SCOSC (save cursor) when no parameters
		// were given, DECSLRM otherwise.
		if params.numItems() == 0 {
			t.saveCursor()
		} else {
			t.setLeftRight(params)
		}
	case CSI_SCORC:
		t.restoreCursor()
	case CSI_XTWINOPS:
		t.xtwinops(params)
	default:
		slog.Debug("unimplemented CSI sequence", "final", string(final), "params", params.items, "data", data)
	}
}

func (t *Terminal) handleOSC(params [][]byte) {
	if len(params) == 0 {
		return
	}

	switch code := string(params[0]); code {
	case OSC_ICON_TITLE:
		s := oscText(params, 1)
		t.title, t.icon = s, s
		t.events = append(t.events,
			OscEvent{Kind: EVT_ICON, Text: s},
			OscEvent{Kind: EVT_TITLE, Text: s})
	case OSC_ICON:
		s := oscText(params, 1)
		t.icon = s
		t.events = append(t.events, OscEvent{Kind: EVT_ICON, Text: s})
	case OSC_TITLE:
		s := oscText(params, 1)
		t.title = s
		t.events = append(t.events, OscEvent{Kind: EVT_TITLE, Text: s})
	case OSC_HYPERLINK:
		// OSC 8 ; params ; uri - the uri may itself contain
		// semicolons, so rejoin everything past the params.
		var p string
		if len(params) > 1 {
			p = string(params[1])
		}
		t.events = append(t.events, OscEvent{
			Kind:   EVT_HYPERLINK,
			Params: p,
			URI:    oscText(params, 2),
		})
	default:
		slog.Debug("dropping unknown OSC entity", "code", code)
	}
}

// oscText rejoins the tail of a pre-split OSC parameter list, so
// payload text keeps any ';' it contained.
func oscText(params [][]byte, from int) string {
	if from >= len(params) {
		return ""
	}
	return string(bytes.Join(params[from:], []byte{';'}))
}

// ---- query replies ----

func (t *Terminal) reply(s string) {
	if t.resp == nil {
		slog.Debug("dropping query reply, no responder", "reply", s)
		return
	}
	if _, err := io.WriteString(t.resp, s); err != nil {
		slog.Error("couldn't write query reply", "err", err)
	}
}

func (t *Terminal) replyDSR(params *parameters, data string) {
	n, _ := params.getItem(0, 0)

	switch data {
	case "":
		switch n {
		case 5: // operating status: we're fine
			t.reply("\x1b[0n")
		case 6: // cursor position
			row, col := t.row(), t.col()
			if t.originMode() {
				row -= t.topMargin()
				col -= t.leftMargin()
			}
			t.reply(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1))
		default:
			slog.Debug("unimplemented DSR request", "param", n)
		}
	case "?":
		switch n {
		case 6: // extended cursor position
			t.reply(fmt.Sprintf("\x1b[?%d;%dR", t.row()+1, t.col()+1))
		case 15: // printer status: no printer
			t.reply("\x1b[?11n")
		default:
			slog.Debug("unimplemented private DSR request", "param", n)
		}
	default:
		slog.Debug("unimplemented DSR form", "data", data)
	}
}

func (t *Terminal) replyDA(params *parameters, data string) {
	switch data {
	case "":
		if n, _ := params.getItem(0, 0); n != 0 {
			slog.Debug("unimplemented DA request", "param", n)
			return
		}
		// vt220 without options.
		t.reply("\x1b[?62c")
	case ">":
		t.reply("\x1b[>1;10;0c")
	default:
		slog.Debug("unimplemented DA form", "data", data)
	}
}

func (t *Terminal) replyVersion(params *parameters, data string) {
	if data != ">" {
		slog.Debug("unimplemented CSI q form", "data", data)
		return
	}
	t.reply(fmt.Sprintf("\x1bP>|termrelay(%s)\x1b\\", TERMRELAY_VT_VER))
}

// xtwinops implements the title stack half of XTWINOPS; the window
// manipulation half makes no sense without a window.
func (t *Terminal) xtwinops(params *parameters) {
	op, ok := params.consumeItem()
	if !ok {
		return
	}

	switch op {
	case 22:
		t.savedTitle, t.savedIcon = t.title, t.icon
	case 23:
		t.title, t.icon = t.savedTitle, t.savedIcon
		t.events = append(t.events,
			OscEvent{Kind: EVT_ICON, Text: t.icon},
			OscEvent{Kind: EVT_TITLE, Text: t.title})
	default:
		slog.Debug("unimplemented XTWINOPS operation", "op", op)
	}
}
