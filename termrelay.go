package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cfielding-ca/termrelay/config"
	"github.com/cfielding-ca/termrelay/logging"
	"github.com/cfielding-ca/termrelay/recorder"
	"github.com/cfielding-ca/termrelay/relay"
	"github.com/cfielding-ca/termrelay/session"
	"github.com/cfielding-ca/termrelay/vt"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	colorName  = flag.String("color", "", "Color level to render with: nocolor, grayscale, ansi256 or truecolor. Detected from the environment if unset.")
	configFile = flag.String("config", "", "Path to a TOML config file. Defaults to termrelay/termrelay.toml under the user config directory.")
	debug      = flag.Bool("debug", false, "If true, enable DEBUG log level for verbose log output")
	logfile    = flag.String("logfile", "", "If set, logs will be written to this file.")
	replay     = flag.Int64("replay", -1, "If set, replay the transcript of this session id (0 for the latest) and exit.")
	search     = flag.String("search", "", "If set, search recorded transcript lines for this text and exit.")
	shell      = flag.String("shell", "", "The shell to run. Defaults to $SHELL, then /bin/sh.")
	transcript = flag.String("transcript", "", "If set, record the session transcript to this SQLite file.")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	applyConfig(cfg)

	if err := logging.Setup(*logfile, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	switch {
	case *search != "":
		err = runSearch(*search)
	case *replay >= 0:
		err = runReplay(*replay)
	default:
		err = runRelay()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func configPath() string {
	if *configFile != "" {
		return *configFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termrelay", "termrelay.toml")
}

// applyConfig fills in flags the command line left untouched, so
// explicit flags always win over the config file.
func applyConfig(cfg config.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	mergeConfig(cfg, set)
}

func mergeConfig(cfg config.Config, set map[string]bool) {
	if !set["shell"] && cfg.Shell != "" {
		*shell = cfg.Shell
	}
	if !set["logfile"] && cfg.Logfile != "" {
		*logfile = cfg.Logfile
	}
	if !set["debug"] && cfg.Debug {
		*debug = true
	}
	if !set["color"] && cfg.Color != "" {
		*colorName = cfg.Color
	}
	if !set["transcript"] && cfg.Transcript != "" {
		*transcript = cfg.Transcript
	}
}

func colorLevel() (vt.SupportLevel, error) {
	if *colorName == "" {
		return relay.DetectColorSupport(relay.OSEnv()), nil
	}

	lvl, ok := relay.ParseLevel(*colorName)
	if !ok {
		return 0, fmt.Errorf("unknown color level %q", *colorName)
	}
	return lvl, nil
}

func runRelay() error {
	lvl, err := colorLevel()
	if err != nil {
		return err
	}

	// Size the session from the hosting terminal up front; the
	// screen's first resize event reconciles any difference.
	cols, rows, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("termrelay needs a terminal on stdin: %v", err)
	}

	sess, err := session.New(*shell, rows, cols)
	if err != nil {
		return err
	}

	rec, err := attachRecorder(sess)
	if err != nil {
		sess.Stop()
		return err
	}

	r, err := relay.New(sess, lvl)
	if err != nil {
		sess.Stop()
		return err
	}

	err = r.Run()
	r.Fini()
	sess.Stop()
	sess.Wait()
	if rec != nil {
		rec.Close()
	}
	return err
}

// attachRecorder wires transcript recording into the session when one
// is configured. The hooks attach before the session's reader starts,
// so they never race it.
func attachRecorder(sess *session.Session) (*recorder.Recorder, error) {
	if *transcript == "" {
		return nil, nil
	}

	rec, err := recorder.Open(*transcript)
	if err != nil {
		return nil, err
	}
	if err := rec.Begin(sess.Shell()); err != nil {
		rec.Close()
		return nil, err
	}

	sess.OnChunk(rec.Chunk)
	sess.OnOsc(func(e vt.OscEvent) {
		if e.Kind == vt.EVT_TITLE {
			rec.Title(e.Text)
		}
	})
	sess.WithTerminal(func(t *vt.Terminal) {
		t.OnScroll(rec.Line)
	})

	return rec, nil
}

func runSearch(q string) error {
	if *transcript == "" {
		return errors.New("searching needs a transcript store; set -transcript")
	}

	rec, err := recorder.Open(*transcript)
	if err != nil {
		return err
	}
	defer rec.Close()

	hits, err := rec.Search(q)
	if err != nil {
		return err
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	for _, h := range hits {
		line := fmt.Sprintf("%s #%d  %s", h.At.Format("2006-01-02 15:04"), h.Session, h.Text)
		fmt.Println(truncateCells(line, width))
	}
	return nil
}

func runReplay(id int64) error {
	if *transcript == "" {
		return errors.New("replaying needs a transcript store; set -transcript")
	}

	rec, err := recorder.Open(*transcript)
	if err != nil {
		return err
	}
	defer rec.Close()

	return rec.Replay(os.Stdout, id)
}

// truncateCells cuts s to at most max display cells, so search output
// stays one hit per terminal row. Zero or negative max means no
// limit.
func truncateCells(s string, max int) string {
	if max <= 0 {
		return s
	}
	return runewidth.Truncate(s, max, "")
}
