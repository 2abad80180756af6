package relay

import (
	"github.com/cfielding-ca/termrelay/input"
	"github.com/gdamore/tcell/v2"
)

// What translate decided a key event should become.
const (
	SEND_NONE = iota
	SEND_CONTROL
	SEND_KEY
	SEND_TEXT
)

type keyAction struct {
	kind int
	ctrl input.Control
	ev   input.KeyEvent
	text string
}

func ctrlAction(c input.Control) keyAction {
	return keyAction{kind: SEND_CONTROL, ctrl: c}
}

func rawAction(p []byte) keyAction {
	return ctrlAction(input.RawSequence(p))
}

func evAction(e input.KeyEvent) keyAction {
	return keyAction{kind: SEND_KEY, ev: e}
}

var arrowAct = map[tcell.Key]input.Action{
	tcell.KeyUp:    input.ACT_UP,
	tcell.KeyDown:  input.ACT_DOWN,
	tcell.KeyRight: input.ACT_RIGHT,
	tcell.KeyLeft:  input.ACT_LEFT,
}

var arrowKey = map[tcell.Key]input.KeyCode{
	tcell.KeyUp:    input.KEY_UP,
	tcell.KeyDown:  input.KEY_DOWN,
	tcell.KeyRight: input.KEY_RIGHT,
	tcell.KeyLeft:  input.KEY_LEFT,
}

var actByKey = map[tcell.Key]input.Action{
	tcell.KeyEnter:  input.ACT_ENTER,
	tcell.KeyTab:    input.ACT_TAB,
	tcell.KeyEsc:    input.ACT_ESCAPE,
	tcell.KeyCtrlC:  input.ACT_INTERRUPT,
	tcell.KeyCtrlD:  input.ACT_EOF,
	tcell.KeyCtrlZ:  input.ACT_SUSPEND,
	tcell.KeyCtrlL:  input.ACT_CLEAR,
	tcell.KeyCtrlU:  input.ACT_KILL_LINE,
	tcell.KeyCtrlA:  input.ACT_LINE_START,
	tcell.KeyCtrlE:  input.ACT_LINE_END,
	tcell.KeyCtrlK:  input.ACT_KILL_TO_END,
	tcell.KeyHome:   input.ACT_HOME,
	tcell.KeyEnd:    input.ACT_END,
	tcell.KeyDelete: input.ACT_DELETE,
	tcell.KeyPgUp:   input.ACT_PGUP,
	tcell.KeyPgDn:   input.ACT_PGDN,
}

// Keys that grow an xterm modifier parameter when one is held.
var modKey = map[tcell.Key]input.KeyCode{
	tcell.KeyDelete: input.KEY_DELETE,
	tcell.KeyPgUp:   input.KEY_PGUP,
	tcell.KeyPgDn:   input.KEY_PGDN,
}

// translate maps one host key event onto what the child should see.
// Plain keys become controls so the arrows can track the child's
// cursor key mode; modified keys become key events that encode the
// modifier the xterm way.
func translate(ev *tcell.EventKey) keyAction {
	mod := modMask(ev.Modifiers())
	key := ev.Key()

	if key == tcell.KeyRune {
		if mod&input.MOD_ALT != 0 {
			// Terminals prefix alt'ed characters with ESC.
			return rawAction(append([]byte{0x1b}, []byte(string(ev.Rune()))...))
		}
		return keyAction{kind: SEND_TEXT, text: string(ev.Rune())}
	}

	switch key {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyRight, tcell.KeyLeft:
		if mod == 0 {
			return ctrlAction(input.NewControl(arrowAct[key]))
		}
		return evAction(input.KeyEvent{Code: arrowKey[key], Mod: mod})
	case tcell.KeyDelete, tcell.KeyPgUp, tcell.KeyPgDn:
		if mod == 0 {
			return ctrlAction(input.NewControl(actByKey[key]))
		}
		return evAction(input.KeyEvent{Code: modKey[key], Mod: mod})
	case tcell.KeyInsert:
		return evAction(input.KeyEvent{Code: input.KEY_INSERT, Mod: mod})
	case tcell.KeyBacktab:
		return rawAction([]byte("\x1b[Z"))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ctrlAction(input.NewControl(input.ACT_BACKSPACE))
	}

	if fn := fnNumber(key); fn != 0 {
		if mod == 0 {
			return ctrlAction(input.FunctionKey(fn))
		}
		return evAction(input.KeyEvent{Code: input.KEY_F, Fn: fn, Mod: mod})
	}

	if act, ok := actByKey[key]; ok {
		return ctrlAction(input.NewControl(act))
	}

	// The remaining control characters pass through as themselves,
	// ESC-prefixed when alt is down.
	if key < 0x20 {
		if mod&input.MOD_ALT != 0 {
			return rawAction([]byte{0x1b, byte(key)})
		}
		return rawAction([]byte{byte(key)})
	}

	return keyAction{}
}

func fnNumber(key tcell.Key) int {
	if key < tcell.KeyF1 || key > tcell.KeyF12 {
		return 0
	}
	return int(key-tcell.KeyF1) + 1
}

func modMask(m tcell.ModMask) input.ModMask {
	var mod input.ModMask
	if m&tcell.ModShift != 0 {
		mod |= input.MOD_SHIFT
	}
	if m&tcell.ModAlt != 0 {
		mod |= input.MOD_ALT
	}
	if m&tcell.ModCtrl != 0 {
		mod |= input.MOD_CTRL
	}
	return mod
}
