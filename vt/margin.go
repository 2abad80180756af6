package vt

import (
	"fmt"
	"log/slog"
)

// margin is one axis of a scroll region. The zero value is unset,
// meaning the region spans the whole screen on that axis.
type margin struct {
	val1, val2 int
	set        bool
}

func newMargin(val1, val2 int) margin {
	if val1 >= val2 {
		slog.Error("invalid margin values", "val1", val1, "val2", val2)
		return margin{}
	}

	return margin{val1: val1, val2: val2, set: true}
}

// contains reports whether p falls inside the margin. An unset margin
// contains everything.
func (m margin) contains(p int) bool {
	if !m.set {
		return true
	}
	return p >= m.val1 && p <= m.val2
}

func (m margin) isSet() bool {
	return m.set
}

func (m margin) getMin() int {
	return m.val1
}

func (m margin) getMax() int {
	return m.val2
}

func (m margin) String() string {
	return fmt.Sprintf("margin(%d, %d; set: %t)", m.val1, m.val2, m.set)
}
