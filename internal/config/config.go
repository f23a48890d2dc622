// Package config loads the scmc.toml tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
)

// DefaultPath is read when no --config flag is given. A missing file there is
// not an error.
const DefaultPath = "scmc.toml"

// Color modes accepted by [check].color and --color.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

type Config struct {
	Check  CheckConfig  `toml:"check"`
	Labels LabelsConfig `toml:"labels"`
}

type CheckConfig struct {
	// Jobs bounds how many files are checked at once; 0 means GOMAXPROCS.
	Jobs  int    `toml:"jobs"`
	Color string `toml:"color"`
}

type LabelsConfig struct {
	// Strict makes mangled-label collisions fatal.
	Strict bool `toml:"strict"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Check: CheckConfig{Jobs: 0, Color: ColorAuto},
	}
}

// Load decodes path over the defaults. explicit reports whether the user
// named the file; only an explicitly named file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no command can act on.
func (c Config) Validate() error {
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative, got %d", c.Check.Jobs)
	}
	if err := ValidateColor(c.Check.Color); err != nil {
		return fmt.Errorf("[check].color: %w", err)
	}
	return nil
}

// ValidateColor checks a color mode string.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorOn, ColorOff:
		return nil
	default:
		return fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
}

// Workers resolves Jobs to a concrete goroutine limit.
func (c Config) Workers() int {
	if c.Check.Jobs == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Check.Jobs
}

// UseColor resolves a color mode for output written to f.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}
