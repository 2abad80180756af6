package vt

import "testing"

func TestModeDefaults(t *testing.T) {
	modes := defaultModes()

	cases := []struct {
		key  string
		want bool
	}{
		{"?1", true},  // cursor keys begin in application mode
		{"?7", true},  // autowrap on
		{"?25", true}, // cursor visible
		{"?6", false},
		{"?1049", false},
		{"?2004", false},
		{"4", false},
		{"20", false},
	}

	for i, c := range cases {
		m, ok := modes[c.key]
		if !ok {
			t.Errorf("%d: Got no mode for %q, wanted one", i, c.key)
			continue
		}
		if got := m.enabled(); got != c.want {
			t.Errorf("%d: Got %t, wanted %t", i, got, c.want)
		}
	}
}

func TestModeSetState(t *testing.T) {
	m := newMode("test", 99, false, CSI_MODE_RESET)

	if m.enabled() {
		t.Error("Got enabled, wanted disabled")
	}

	m.setState(CSI_MODE_SET)
	if !m.enabled() {
		t.Error("Got disabled, wanted enabled")
	}

	m.setState(CSI_MODE_RESET)
	if m.enabled() {
		t.Error("Got enabled, wanted disabled")
	}
}
