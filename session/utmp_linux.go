//go:build linux

package session

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

const utempter = "/usr/lib/x86_64-linux-gnu/utempter/utempter"

func addUtmp(f *os.File) {
	// No real "remote" host info here; just note that we're
	// termrelay and our PID.
	host := fmt.Sprintf("termrelay[%d]", os.Getpid())
	cmd := exec.Command(utempter, "add", host)
	cmd.Stdin = f
	if err := cmd.Run(); err != nil {
		slog.Debug("addUtmp error", "err", err)
	} else {
		slog.Debug("addUtmp", "host", host)
	}
}

func rmUtmp(f *os.File) {
	cmd := exec.Command(utempter, "del")
	cmd.Stdin = f
	if err := cmd.Run(); err != nil {
		slog.Debug("rmUtmp error", "err", err)
	} else {
		slog.Debug("rmUtmp")
	}
}
