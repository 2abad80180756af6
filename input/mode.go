package input

import (
	"bytes"
)

// KeyMode selects how cursor keys encode on the wire.
type KeyMode int

const (
	// MODE_APPLICATION is the starting assumption for a session:
	// full-screen programs switch it on almost immediately, and
	// line-oriented ones don't read cursor keys at all.
	MODE_APPLICATION KeyMode = iota
	MODE_NORMAL
)

func (m KeyMode) String() string {
	if m == MODE_APPLICATION {
		return "application"
	}
	return "normal"
}

// Detector buffer bounds: once the pending tail grows past
// scanHighWater, keep only the last scanKeep bytes.
const (
	scanHighWater = 100
	scanKeep      = 50
)

var (
	seqApplication = []byte("\x1b[?1h")
	seqNormal      = []byte("\x1b[?1l")
)

// ModeDetector watches a terminal output stream for DECCKM changes
// (CSI ? 1 h and CSI ? 1 l). It holds a small rolling tail between
// calls, so a marker split across reads is still found.
type ModeDetector struct {
	pending []byte
}

func NewModeDetector() *ModeDetector {
	return &ModeDetector{}
}

// Scan consumes p and reports the newest completed mode change, if
// any. Everything through the final match is dropped; the remainder
// is kept (bounded) for the next call.
func (d *ModeDetector) Scan(p []byte) (KeyMode, bool) {
	d.pending = append(d.pending, p...)

	ai := bytes.LastIndex(d.pending, seqApplication)
	ni := bytes.LastIndex(d.pending, seqNormal)

	if ai == -1 && ni == -1 {
		d.trim()
		return 0, false
	}

	// Both markers are the same length, so the larger offset is
	// the one that arrived last.
	mode, end := MODE_APPLICATION, ai+len(seqApplication)
	if ni > ai {
		mode, end = MODE_NORMAL, ni+len(seqNormal)
	}

	d.pending = d.pending[end:]
	d.trim()
	return mode, true
}

func (d *ModeDetector) trim() {
	if len(d.pending) > scanHighWater {
		d.pending = d.pending[len(d.pending)-scanKeep:]
	}
}
