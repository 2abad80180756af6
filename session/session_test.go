package session

import (
	"testing"
)

func TestLoginArg(t *testing.T) {
	cases := []struct {
		shell string
		want  string
	}{
		{"/bin/bash", "-bash"},
		{"/usr/bin/zsh", "-zsh"},
		{"sh", "-sh"},
	}

	for i, c := range cases {
		if got := loginArg(c.shell); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}
}

func TestPickShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")

	cases := []struct {
		shell string
		want  string
	}{
		{"/bin/zsh", "/bin/zsh"},
		{"", "/bin/bash"},
	}

	for i, c := range cases {
		if got := pickShell(c.shell); got != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, got, c.want)
		}
	}

	t.Setenv("SHELL", "")
	if got := pickShell(""); got != "/bin/sh" {
		t.Errorf("Got %q, wanted /bin/sh", got)
	}
}
