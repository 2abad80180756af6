package relay

import (
	"io"
	"os"
	"strings"

	"github.com/cfielding-ca/termrelay/vt"
	"github.com/muesli/termenv"
)

// OSEnv returns a termenv environment backed by the process
// environment.
func OSEnv() termenv.Environ {
	return osEnviron{}
}

type osEnviron struct{}

func (osEnviron) Environ() []string {
	return os.Environ()
}

func (osEnviron) Getenv(k string) string {
	return os.Getenv(k)
}

// DetectColorSupport inspects the hosting terminal's environment and
// reports the richest color level it can be trusted with. NO_COLOR
// always wins; a monochrome TERM keeps grayscale rendering available
// without promising color.
func DetectColorSupport(env termenv.Environ) vt.SupportLevel {
	out := termenv.NewOutput(io.Discard, termenv.WithEnvironment(env), termenv.WithTTY(true))

	if out.EnvNoColor() {
		return vt.LVL_NOCOLOR
	}

	if isMonoTerm(env.Getenv("TERM")) {
		return vt.LVL_GRAYSCALE
	}

	switch out.EnvColorProfile() {
	case termenv.TrueColor:
		return vt.LVL_TRUECOLOR
	case termenv.ANSI256, termenv.ANSI:
		return vt.LVL_ANSI256
	default:
		return vt.LVL_NOCOLOR
	}
}

func isMonoTerm(term string) bool {
	return term == "mono" || strings.HasSuffix(term, "-mono") || strings.HasSuffix(term, "-m")
}

// ParseLevel maps a configured color level name onto a SupportLevel.
// It returns false for names it doesn't know.
func ParseLevel(name string) (vt.SupportLevel, bool) {
	switch strings.ToLower(name) {
	case "nocolor":
		return vt.LVL_NOCOLOR, true
	case "grayscale":
		return vt.LVL_GRAYSCALE, true
	case "ansi256":
		return vt.LVL_ANSI256, true
	case "truecolor":
		return vt.LVL_TRUECOLOR, true
	default:
		return vt.LVL_NOCOLOR, false
	}
}
