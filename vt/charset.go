package vt

import "log/slog"

const (
	CS_ASCII = iota
	CS_DEC_GRAPHICS
)

// charset tracks the G0/G1 character set designations and which of
// the two is currently shifted in.
type charset struct {
	set int // active slot: 0 = G0, 1 = G1
	g   [2]int
}

// runeFor translates r through the active character set. Only the DEC
// special graphics set actually remaps anything.
func (c *charset) runeFor(r rune) rune {
	if c.g[c.set] != CS_DEC_GRAPHICS {
		return r
	}

	if nr, ok := acs[r]; ok {
		return nr
	}

	return r
}

func (c *charset) shiftIn() {
	c.set = 0
}

func (c *charset) shiftOut() {
	c.set = 1
}

// setCS designates a character set: intermediate "(" selects for G0,
// ")" for G1. Anything we don't implement designates ASCII.
func (c *charset) setCS(intermediate string, final byte) {
	slot := 0
	if intermediate == ")" {
		slot = 1
	}

	switch final {
	case '0':
		c.g[slot] = CS_DEC_GRAPHICS
	case 'B':
		c.g[slot] = CS_ASCII
	default:
		slog.Debug("unimplemented character set, using ascii", "final", string(final))
		c.g[slot] = CS_ASCII
	}
}

// The DEC special graphics set, mapped onto the unicode runes modern
// terminals draw for it.
var acs = map[rune]rune{
	'`': '◆',
	'a': '▒',
	'b': '␉',
	'c': '␌',
	'd': '␍',
	'e': '␊',
	'f': '°',
	'g': '±',
	'h': '␤',
	'i': '␋',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'o': '⎺',
	'p': '⎻',
	'q': '─',
	'r': '⎼',
	's': '⎽',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'y': '≤',
	'z': '≥',
	'{': 'π',
	'|': '≠',
	'}': '£',
	'~': '·',
}
