package input

import (
	"strconv"
	"strings"
)

var arrowKey = map[byte]KeyCode{
	'A': KEY_UP,
	'B': KEY_DOWN,
	'C': KEY_RIGHT,
	'D': KEY_LEFT,
}

var keyForCode = map[int]KeyCode{
	2: KEY_INSERT,
	3: KEY_DELETE,
	5: KEY_PGUP,
	6: KEY_PGDN,
}

var fnForCode = func() map[int]int {
	m := make(map[int]int, len(fnCode))
	for fn, code := range fnCode {
		m[code] = fn
	}
	return m
}()

// Parse decodes one complete key escape sequence back into the event
// it stands for. It accepts everything Generate emits plus the SS3
// function keys and back-tab a real terminal sends, and answers false
// for anything else.
func Parse(p []byte) (KeyEvent, bool) {
	if len(p) < 3 || p[0] != 0x1b {
		return KeyEvent{}, false
	}

	if p[1] == 'O' {
		if len(p) != 3 || p[2] < 'P' || p[2] > 'S' {
			return KeyEvent{}, false
		}
		return KeyEvent{Code: KEY_F, Fn: int(p[2]-'P') + 1}, true
	}

	if p[1] != '[' {
		return KeyEvent{}, false
	}

	body, final := string(p[2:len(p)-1]), p[len(p)-1]

	switch final {
	case 'A', 'B', 'C', 'D':
		if body == "" {
			return KeyEvent{Code: arrowKey[final]}, true
		}
		numPart, modPart, hasMod := strings.Cut(body, ";")
		if !hasMod || numPart != "1" {
			return KeyEvent{}, false
		}
		mod, ok := parseModPart(modPart)
		if !ok {
			return KeyEvent{}, false
		}
		return KeyEvent{Code: arrowKey[final], Mod: mod}, true
	case 'H', 'F':
		if body != "" {
			return KeyEvent{}, false
		}
		if final == 'H' {
			return KeyEvent{Code: KEY_HOME}, true
		}
		return KeyEvent{Code: KEY_END}, true
	case 'Z':
		if body != "" {
			return KeyEvent{}, false
		}
		return KeyEvent{Code: KEY_BACKTAB}, true
	case '~':
		code, mod, ok := parseTildeBody(body)
		if !ok {
			return KeyEvent{}, false
		}
		if key, ok := keyForCode[code]; ok {
			return KeyEvent{Code: key, Mod: mod}, true
		}
		if fn, ok := fnForCode[code]; ok {
			return KeyEvent{Code: KEY_F, Fn: fn, Mod: mod}, true
		}
	}

	return KeyEvent{}, false
}

func parseTildeBody(body string) (int, ModMask, bool) {
	numPart, modPart, hasMod := strings.Cut(body, ";")

	code, err := strconv.Atoi(numPart)
	if err != nil || code < 0 {
		return 0, 0, false
	}
	if !hasMod {
		return code, 0, true
	}

	mod, ok := parseModPart(modPart)
	if !ok {
		return 0, 0, false
	}
	return code, mod, true
}

// parseModPart inverts modDigit: parameter 2-8 carries modifier bits
// (value - 1). Parameter 1 never goes on the wire for us, so it reads
// as malformed.
func parseModPart(s string) (ModMask, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 8 {
		return 0, false
	}
	return ModMask(n - 1), true
}
