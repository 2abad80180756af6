package vt

const TERMRELAY_VT_VER = "0.3"

const (
	DEF_ROWS = 24
	DEF_COLS = 80
)

// C0 controls we act on. Everything else that lands in Execute is
// logged and dropped.
const (
	BEL = 0x07
	BS  = 0x08
	TAB = 0x09
	LF  = 0x0a
	VT  = 0x0b
	FF  = 0x0c
	CR  = 0x0d
	SO  = 0x0e
	SI  = 0x0f
	ESC = 0x1b
)

// Final bytes for the ESC-dispatched sequences we implement.
const (
	DECSC = '7'
	DECRC = '8'
	IND   = 'D'
	NEL   = 'E'
	HTS   = 'H'
	RI    = 'M'
	RIS   = 'c'
)

// CSI final bytes.
const (
	CSI_ICH        = '@'
	CSI_CUU        = 'A'
	CSI_CUD        = 'B'
	CSI_CUF        = 'C'
	CSI_CUB        = 'D'
	CSI_CNL        = 'E'
	CSI_CPL        = 'F'
	CSI_CHA        = 'G'
	CSI_CUP        = 'H'
	CSI_CHT        = 'I'
	CSI_ED         = 'J'
	CSI_EL         = 'K'
	CSI_IL         = 'L'
	CSI_DL         = 'M'
	CSI_DCH        = 'P'
	CSI_SU         = 'S'
	CSI_SD         = 'T'
	CSI_DECST8C    = 'W'
	CSI_ECH        = 'X'
	CSI_CBT        = 'Z'
	CSI_HPA        = '`'
	CSI_HPR        = 'a'
	CSI_REP        = 'b'
	CSI_DA         = 'c'
	CSI_VPA        = 'd'
	CSI_VPR        = 'e'
	CSI_HVP        = 'f'
	CSI_TBC        = 'g'
	CSI_MODE_SET   = 'h'
	CSI_MODE_RESET = 'l'
	CSI_SGR        = 'm'
	CSI_DSR        = 'n'
	CSI_Q_MULTI    = 'q'
	CSI_DECSTBM    = 'r'
	CSI_DECSLRM    = 's' // doubles as SCOSC when no params are present
	CSI_XTWINOPS   = 't'
	CSI_SCORC      = 'u'
)

// SGR parameters.
const (
	RESET           = 0
	INTENSITY_BOLD  = 1
	INTENSITY_FAINT = 2
	ITALIC_ON       = 3
	UNDERLINE_ON    = 4
	BLINK_ON        = 5
	REVERSE_ON      = 7
	INVISIBLE_ON    = 8
	STRIKEOUT_ON    = 9
	INTENSITY_OFF   = 22
	ITALIC_OFF      = 23
	UNDERLINE_OFF   = 24
	BLINK_OFF       = 25
	REVERSE_OFF     = 27
	INVISIBLE_OFF   = 28
	STRIKEOUT_OFF   = 29
)

// SGR color parameters.
const (
	FG_BLACK        = 30
	FG_WHITE        = 37
	SET_FG          = 38
	FG_DEF          = 39
	BG_BLACK        = 40
	BG_WHITE        = 47
	SET_BG          = 48
	BG_DEF          = 49
	FG_BRIGHT_BLACK = 90
	FG_BRIGHT_WHITE = 97
	BG_BRIGHT_BLACK = 100
	BG_BRIGHT_WHITE = 107
)

// Mode numbers, public (CSI Pm h) and DEC private (CSI ? Pm h).
const (
	IRM = 4
	LNM = 20

	DECCKM           = 1
	DECCOLM          = 3
	DECSCNM          = 5
	DECOM            = 6
	DECAWM           = 7
	DECARM           = 8
	BLINK_CURSOR     = 12
	SHOW_CURSOR      = 25
	XTERM_80_132     = 40
	REV_WRAP         = 45
	ALT_SCREEN       = 47
	MOUSE_PRESS      = 1000
	MOUSE_DRAG       = 1002
	MOUSE_MOTION     = 1003
	FOCUS_REPORT     = 1004
	MOUSE_SGR        = 1006
	ALT_SCREEN_CLEAR = 1047
	ALT_SCREEN_FULL  = 1049
	BRACKET_PASTE    = 2004
)

// OSC entity selectors.
const (
	OSC_ICON_TITLE = "0"
	OSC_ICON       = "1"
	OSC_TITLE      = "2"
	OSC_HYPERLINK  = "8"
)

// TBC (tab clear) parameters.
const (
	TBC_CUR = 0
	TBC_ALL = 3
)
