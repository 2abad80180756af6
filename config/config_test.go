package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termrelay.toml")
	data := `
shell = "/bin/zsh"
logfile = "/tmp/termrelay.log"
debug = true
color = "ansi256"
transcript = "/tmp/termrelay.db"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Got %v writing the fixture, wanted success", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Got %v, wanted a clean load", err)
	}

	want := Config{
		Shell:      "/bin/zsh",
		Logfile:    "/tmp/termrelay.log",
		Debug:      true,
		Color:      "ansi256",
		Transcript: "/tmp/termrelay.db",
	}
	if got != want {
		t.Errorf("Got %+v, wanted %+v", got, want)
	}
}

func TestLoadAbsent(t *testing.T) {
	cases := []string{
		"",
		filepath.Join(t.TempDir(), "missing.toml"),
	}

	for i, path := range cases {
		got, err := Load(path)
		if err != nil {
			t.Errorf("%d: Got %v, wanted the zero config", i, err)
		}
		if got != (Config{}) {
			t.Errorf("%d: Got %+v, wanted the zero config", i, got)
		}
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("shell = [unclosed"), 0600); err != nil {
		t.Fatalf("Got %v writing the fixture, wanted success", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Got a clean load of malformed TOML, wanted an error")
	}
}
