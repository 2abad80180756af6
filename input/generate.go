package input

import "strconv"

// The vt220 tilde codes for F1-F12. The numbering has gaps where the
// vt220 keyboard did.
var fnCode = map[int]int{
	1:  11,
	2:  12,
	3:  13,
	4:  14,
	5:  15,
	6:  17,
	7:  18,
	8:  19,
	9:  20,
	10: 21,
	11: 23,
	12: 24,
}

var editCode = map[KeyCode]int{
	KEY_INSERT: 2,
	KEY_DELETE: 3,
	KEY_PGUP:   5,
	KEY_PGDN:   6,
}

var arrowFinal = map[KeyCode]byte{
	KEY_UP:    'A',
	KEY_DOWN:  'B',
	KEY_RIGHT: 'C',
	KEY_LEFT:  'D',
}

var homeEndFinal = map[KeyCode]byte{
	KEY_HOME: 'H',
	KEY_END:  'F',
}

// Generate encodes a key event as the ANSI bytes a terminal would
// send for it. Keys with no escape sequence of their own (characters,
// tab, enter and the like) answer false; callers transmit those
// directly. So does a function key outside F1-F12.
func Generate(e KeyEvent) ([]byte, bool) {
	switch e.Code {
	case KEY_UP, KEY_DOWN, KEY_RIGHT, KEY_LEFT:
		if e.Mod == 0 {
			return []byte{0x1b, '[', arrowFinal[e.Code]}, true
		}
		return []byte{0x1b, '[', '1', ';', modDigit(e.Mod), arrowFinal[e.Code]}, true
	case KEY_HOME, KEY_END:
		// Home and End go bare; modifiers don't reach the wire.
		return []byte{0x1b, '[', homeEndFinal[e.Code]}, true
	case KEY_INSERT, KEY_DELETE, KEY_PGUP, KEY_PGDN:
		return tildeSeq(editCode[e.Code], e.Mod), true
	case KEY_F:
		code, ok := fnCode[e.Fn]
		if !ok {
			return nil, false
		}
		return tildeSeq(code, e.Mod), true
	}

	return nil, false
}

// tildeSeq builds CSI <code> ~ with the modifier parameter spliced in
// when one applies.
func tildeSeq(code int, m ModMask) []byte {
	b := append([]byte{0x1b, '['}, strconv.Itoa(code)...)
	if m != 0 {
		b = append(b, ';', modDigit(m))
	}
	return append(b, '~')
}
