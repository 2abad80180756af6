//go:build !linux

package session

import (
	"log/slog"
	"os"
)

func addUtmp(f *os.File) {
	slog.Debug("addUtmp not implemented on this platform")
}

func rmUtmp(f *os.File) {
	slog.Debug("rmUtmp not implemented on this platform")
}
