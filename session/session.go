// Package session hosts a child shell on a pty and keeps an offscreen
// terminal buffer current with everything the child writes.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/cfielding-ca/termrelay/input"
	"github.com/cfielding-ca/termrelay/vt"
	"github.com/creack/pty"
)

type manageFunc func()

// Session owns the pty, the child process and the terminal state
// built from the child's output. The reader goroutine started by Run
// is the only writer of that state; everyone else reads it through
// WithTerminal or KeyMode.
type Session struct {
	term  *vt.Terminal
	det   *input.ModeDetector
	ptmx  *os.File
	shell string

	wait, stop manageFunc

	mode input.KeyMode
	mux  sync.Mutex

	redraw chan struct{}
	done   chan struct{}

	onChunk func([]byte)
	onOsc   func(vt.OscEvent)
}

// New starts shell as a login shell on a freshly allocated pty sized
// rows x cols. An empty shell falls back to $SHELL, then /bin/sh.
func New(shell string, rows, cols int) (*Session, error) {
	shell = pickShell(shell)

	ctx, cancel := context.WithCancel(context.Background())

	cmd := exec.CommandContext(ctx, shell)
	cmd.Args = []string{loginArg(shell)}
	cmd.Env = os.Environ()

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("couldn't start pty: %v", err)
	}

	// Any use of Fd(), including indirectly via the StartWithSize
	// call above, will set the descriptor non-blocking, so we need
	// to change that here.
	pfd := int(ptmx.Fd())
	if err := syscall.SetNonblock(pfd, true); err != nil {
		ptmx.Close()
		cancel()
		return nil, fmt.Errorf("couldn't set ptmx non-blocking: %v", err)
	}

	s := &Session{
		term:   vt.New(rows, cols),
		det:    input.NewModeDetector(),
		ptmx:   ptmx,
		shell:  shell,
		wait:   func() { cmd.Wait() },
		stop:   func() { cancel() },
		mode:   input.MODE_APPLICATION,
		redraw: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.term.SetResponder(ptmx)

	addUtmp(ptmx)

	return s, nil
}

func pickShell(shell string) string {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return shell
}

// loginArg is the argv[0] that makes a shell read its login rc files.
func loginArg(shell string) string {
	return "-" + filepath.Base(shell)
}

// Shell reports the resolved shell path the child was started with.
func (s *Session) Shell() string {
	return s.shell
}

// OnChunk taps every raw read before it is parsed. The slice is the
// callback's to keep.
func (s *Session) OnChunk(fn func([]byte)) {
	s.onChunk = fn
}

// OnOsc taps title, icon and hyperlink events as they drain.
func (s *Session) OnOsc(fn func(vt.OscEvent)) {
	s.onOsc = fn
}

// Run consumes child output until the pty closes. Callers run it in a
// goroutine and watch Done.
func (s *Session) Run() {
	defer close(s.done)

	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.consume(buf[:n])
		}
		if err != nil {
			// The pty master reads EIO when the child side
			// closes, so most errors here just mean the
			// session ended.
			if !errors.Is(err, io.EOF) {
				slog.Debug("pty read ended", "err", err)
			}
			return
		}
	}
}

func (s *Session) consume(p []byte) {
	if s.onChunk != nil {
		c := make([]byte, len(p))
		copy(c, p)
		s.onChunk(c)
	}

	s.mux.Lock()
	if m, ok := s.det.Scan(p); ok {
		s.mode = m
	}
	events := s.term.Apply(p)
	s.mux.Unlock()

	if s.onOsc != nil {
		for _, e := range events {
			s.onOsc(e)
		}
	}

	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// KeyMode reports the child's current cursor key mode.
func (s *Session) KeyMode() input.KeyMode {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.mode
}

// Redraw receives a token whenever the terminal state changed.
func (s *Session) Redraw() <-chan struct{} {
	return s.redraw
}

// Done closes when the reader loop ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// WithTerminal runs fn with the terminal locked against the reader
// goroutine. Painters use it to read a consistent grid.
func (s *Session) WithTerminal(fn func(t *vt.Terminal)) {
	s.mux.Lock()
	defer s.mux.Unlock()
	fn(s.term)
}

func (s *Session) Write(p []byte) (int, error) {
	return s.ptmx.Write(p)
}

// SendControl encodes act for the child, honoring the detected cursor
// key mode.
func (s *Session) SendControl(c input.Control) {
	seq := c.Bytes(s.KeyMode())
	if _, err := s.ptmx.Write(seq.Bytes()); err != nil {
		slog.Error("couldn't write control", "err", err)
	}
}

// SendKey encodes a key event. False means the key has no sequence of
// its own and the caller should transmit its text form.
func (s *Session) SendKey(e input.KeyEvent) bool {
	p, ok := input.Generate(e)
	if !ok {
		return false
	}

	if _, err := s.ptmx.Write(p); err != nil {
		slog.Error("couldn't write key", "err", err)
	}
	return true
}

func (s *Session) SendText(text string) {
	if _, err := s.ptmx.WriteString(text); err != nil {
		slog.Error("couldn't write text", "err", err)
	}
}

// SendPaste ships pasted text, bracketed when the child asked for
// that.
func (s *Session) SendPaste(text string) {
	bracketed := false
	s.WithTerminal(func(t *vt.Terminal) { bracketed = t.BracketedPaste() })

	if bracketed {
		s.SendText("\x1b[200~" + text + "\x1b[201~")
		return
	}
	s.SendText(text)
}

// Resize propagates a new size to the pty and the terminal state.
func (s *Session) Resize(rows, cols int) {
	if err := pty.Setsize(s.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		slog.Error("couldn't set size on pty", "err", err)
	}

	// Any use of Fd(), including in the Setsize call above, will
	// set the descriptor non-blocking, so we need to change that
	// here.
	pfd := int(s.ptmx.Fd())
	if err := syscall.SetNonblock(pfd, true); err != nil {
		slog.Error("couldn't set pty to nonblocking", "err", err)
	}

	s.mux.Lock()
	s.term.Resize(rows, cols)
	s.mux.Unlock()

	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

func (s *Session) Stop() {
	rmUtmp(s.ptmx)
	s.stop()
	s.ptmx.Close() // ensure Run() stops
}

func (s *Session) Wait() {
	s.wait()
}
