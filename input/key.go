package input

import "fmt"

// KeyCode identifies a key for wire encoding.
type KeyCode int

const (
	KEY_UP KeyCode = iota
	KEY_DOWN
	KEY_RIGHT
	KEY_LEFT
	KEY_HOME
	KEY_END
	KEY_INSERT
	KEY_DELETE
	KEY_PGUP
	KEY_PGDN
	KEY_F
	KEY_TAB
	KEY_BACKTAB
	KEY_ENTER
	KEY_ESCAPE
	KEY_BACKSPACE
	KEY_CHAR
)

// ModMask is a set of held modifiers. The bit values line up with the
// xterm wire encoding, where the parameter digit is '1' plus the sum.
type ModMask int

const (
	MOD_SHIFT ModMask = 1 << iota
	MOD_ALT
	MOD_CTRL
)

// KeyEvent is one decoded keyboard event. Fn carries the function key
// number when Code is KEY_F; Ch carries the rune when Code is
// KEY_CHAR.
type KeyEvent struct {
	Code KeyCode
	Mod  ModMask
	Fn   int
	Ch   rune
}

func (e KeyEvent) String() string {
	switch e.Code {
	case KEY_F:
		return fmt.Sprintf("f%d (mod %d)", e.Fn, e.Mod)
	case KEY_CHAR:
		return fmt.Sprintf("%q (mod %d)", e.Ch, e.Mod)
	}
	return fmt.Sprintf("key %d (mod %d)", e.Code, e.Mod)
}

// modDigit is the xterm modifier parameter: '1' plus 1 for shift, 2
// for alt and 4 for ctrl. Computed, not looked up, so every
// combination encodes.
func modDigit(m ModMask) byte {
	d := byte('1')
	if m&MOD_SHIFT != 0 {
		d += 1
	}
	if m&MOD_ALT != 0 {
		d += 2
	}
	if m&MOD_CTRL != 0 {
		d += 4
	}
	return d
}
