package vt

import "fmt"

// OSC event kinds.
const (
	EVT_TITLE = iota
	EVT_ICON
	EVT_HYPERLINK
)

// OscEvent is one completed Operating System Command, surfaced to the
// embedding application. The terminal queues them as sequences finish
// and Apply drains the queue.
type OscEvent struct {
	Kind   int
	Text   string // title or icon text
	Params string // hyperlink params ("key1=val1:key2=val2"), may be empty
	URI    string // hyperlink target; empty terminates the open link
}

func (e OscEvent) String() string {
	switch e.Kind {
	case EVT_TITLE:
		return fmt.Sprintf("title(%q)", e.Text)
	case EVT_ICON:
		return fmt.Sprintf("icon(%q)", e.Text)
	case EVT_HYPERLINK:
		return fmt.Sprintf("hyperlink(%q, params: %q)", e.URI, e.Params)
	}
	return "unknown"
}
