package vt

import "fmt"

// mode is one ANSI or DEC private mode we track. Tracking a mode
// doesn't imply we render its effect; several exist only so we can
// report and restore sane state.
type mode struct {
	state  rune // CSI_MODE_SET or CSI_MODE_RESET
	public bool // set with CSI Pm h rather than CSI ? Pm h
	code   int
	name   string
}

func newMode(name string, code int, public bool, state rune) *mode {
	return &mode{
		name:   name,
		code:   code,
		public: public,
		state:  state,
	}
}

func (m *mode) setState(state rune) {
	m.state = state
}

func (m *mode) enabled() bool {
	return m.state == CSI_MODE_SET
}

func (m *mode) String() string {
	return fmt.Sprintf("%s (%d; public: %t): enabled: %t", m.name, m.code, m.public, m.enabled())
}

// defaultModes returns the tracked modes in their power-on state,
// keyed the way they arrive on the wire ("4" public, "?4" private).
func defaultModes() map[string]*mode {
	return map[string]*mode{
		"4":  newMode("IRM", IRM, true, CSI_MODE_RESET),
		"20": newMode("LNM", LNM, true, CSI_MODE_RESET),
		// Cursor keys start in application mode, matching what
		// the input layer assumes until told otherwise.
		"?1": newMode("DECCKM", DECCKM, false, CSI_MODE_SET),
		"?3": newMode("DECCOLM", DECCOLM, false, CSI_MODE_RESET),
		"?5": newMode("DECSCNM", DECSCNM, false, CSI_MODE_RESET),
		"?6": newMode("DECOM", DECOM, false, CSI_MODE_RESET),
		// Autowrap: on by default so long writes flow down the
		// screen instead of piling up in the last column.
		"?7":    newMode("DECAWM", DECAWM, false, CSI_MODE_SET),
		"?8":    newMode("DECARM", DECARM, false, CSI_MODE_SET),
		"?12":   newMode("blink cursor", BLINK_CURSOR, false, CSI_MODE_RESET),
		"?25":   newMode("show cursor", SHOW_CURSOR, false, CSI_MODE_SET),
		"?40":   newMode("allow 80->132", XTERM_80_132, false, CSI_MODE_RESET),
		"?45":   newMode("reverse wraparound", REV_WRAP, false, CSI_MODE_RESET),
		"?47":   newMode("alt screen", ALT_SCREEN, false, CSI_MODE_RESET),
		"?1000": newMode("mouse press reporting", MOUSE_PRESS, false, CSI_MODE_RESET),
		"?1002": newMode("mouse drag reporting", MOUSE_DRAG, false, CSI_MODE_RESET),
		"?1003": newMode("mouse motion reporting", MOUSE_MOTION, false, CSI_MODE_RESET),
		"?1004": newMode("focus reporting", FOCUS_REPORT, false, CSI_MODE_RESET),
		"?1006": newMode("sgr mouse encoding", MOUSE_SGR, false, CSI_MODE_RESET),
		"?1047": newMode("alt screen (clearing)", ALT_SCREEN_CLEAR, false, CSI_MODE_RESET),
		"?1049": newMode("alt screen (full)", ALT_SCREEN_FULL, false, CSI_MODE_RESET),
		"?2004": newMode("bracketed paste", BRACKET_PASTE, false, CSI_MODE_RESET),
	}
}
