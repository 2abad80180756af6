// Package relay drives the interactive side of a session. It owns the
// hosting terminal through tcell, repaints the session's screen state
// when the child changes it, and turns host key and paste events into
// the bytes the child should see.
package relay

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cfielding-ca/termrelay/session"
	"github.com/cfielding-ca/termrelay/vt"
	"github.com/gdamore/tcell/v2"
)

type Relay struct {
	screen tcell.Screen
	sess   *session.Session
	pnt    *painter

	title string

	pasting  bool
	pasteBuf strings.Builder
}

// New takes over the hosting terminal and prepares to relay sess onto
// it. Call Fini to hand the terminal back.
func New(sess *session.Session, lvl vt.SupportLevel) (*Relay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("couldn't open the hosting terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("couldn't initialize the hosting terminal: %v", err)
	}

	screen.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorReset).Background(tcell.ColorReset))
	screen.EnablePaste()

	return &Relay{
		screen: screen,
		sess:   sess,
		pnt:    newPainter(lvl),
	}, nil
}

// Run starts the session's reader and relays until the child exits.
// The screen's first resize event pulls the session onto the hosting
// terminal's real dimensions.
func (r *Relay) Run() error {
	go r.sess.Run()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// Fini ends the event stream.
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-r.sess.Done():
			return nil
		case <-r.sess.Redraw():
			r.repaint()
		case ev := <-events:
			r.handleEvent(ev)
		}
	}
}

// Fini restores the hosting terminal. Call it after Run returns,
// before printing anything.
func (r *Relay) Fini() {
	r.screen.Fini()
}

func (r *Relay) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.sess.Resize(rows, cols)
		r.screen.Sync()
	case *tcell.EventPaste:
		if ev.Start() {
			r.pasting = true
			r.pasteBuf.Reset()
			return
		}
		r.pasting = false
		r.sess.SendPaste(r.pasteBuf.String())
	case *tcell.EventKey:
		if r.pasting {
			r.collectPaste(ev)
			return
		}
		r.handleKey(ev)
	}
}

// collectPaste rebuilds pasted text from the key events tcell delivers
// between the paste brackets.
func (r *Relay) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		r.pasteBuf.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		r.pasteBuf.WriteByte('\n')
	case tcell.KeyTab:
		r.pasteBuf.WriteByte('\t')
	}
}

func (r *Relay) handleKey(ev *tcell.EventKey) {
	switch a := translate(ev); a.kind {
	case SEND_CONTROL:
		r.sess.SendControl(a.ctrl)
	case SEND_KEY:
		if !r.sess.SendKey(a.ev) {
			slog.Debug("dropping key event with no sequence", "event", a.ev)
		}
	case SEND_TEXT:
		r.sess.SendText(a.text)
	default:
		slog.Debug("dropping key with no wire form", "key", ev.Name())
	}
}

func (r *Relay) repaint() {
	var title string
	r.sess.WithTerminal(func(t *vt.Terminal) {
		r.pnt.paint(r.screen, t)
		title = t.Title()
	})

	if title != r.title {
		r.title = title
		r.screen.SetTitle(title)
	}

	r.screen.Show()
}
