package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config carries session defaults loadable from a TOML file. Command
// line flags override anything set here.
type Config struct {
	Shell      string `toml:"shell"`
	Logfile    string `toml:"logfile"`
	Debug      bool   `toml:"debug"`
	Color      string `toml:"color"`
	Transcript string `toml:"transcript"`
}

// Load reads the config file at path. An empty path or an absent file
// yields the zero config so the binary runs without one.
func Load(path string) (Config, error) {
	var c Config

	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("couldn't read config %q: %v", path, err)
	}

	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("couldn't parse config %q: %v", path, err)
	}

	return c, nil
}
