// Package config loads the user defaults for the sapsim command.
//
// Defaults are read from config.toml in the per-user sapsim configuration
// folder, if present. Command line flags override them.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"

	"github.com/ezrec/sapsim/cpu"
	"github.com/ezrec/sapsim/display"
)

const (
	VENDOR      = "sapsim"
	APPLICATION = "sapsim"
	FILE        = "config.toml"
	HISTORY     = "history"
)

// Config holds the user defaults.
type Config struct {
	Bits  int    `toml:"bits"`  // Register and memory width.
	Style string `toml:"style"` // Table style.
	Color bool   `toml:"color"` // Highlight the PC row.
	Speed bool   `toml:"speed"` // Run without stepping.
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Bits:  cpu.DEFAULT_WIDTH,
		Style: string(display.STYLE_OUTLINE),
	}
}

// Validate checks the ranges of the settings.
func (cfg *Config) Validate() (err error) {
	if cfg.Bits < cpu.MIN_WIDTH || cfg.Bits > cpu.MAX_WIDTH {
		return errors.Wrapf(cpu.ErrWidth, "bits = %d", cfg.Bits)
	}

	_, err = display.ParseStyle(cfg.Style)

	return
}

// Decode parses TOML text over the defaults.
func Decode(text string) (cfg Config, err error) {
	cfg = Default()

	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return
	}

	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for n, key := range keys {
			names[n] = key.String()
		}
		err = errors.Wrapf(ErrUnknownKey, "%s", strings.Join(names, ", "))
		return
	}

	err = cfg.Validate()

	return
}

// ReadFile parses a configuration file.
func ReadFile(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "reading config %s", path)
		return
	}

	cfg, err = Decode(string(data))
	if err != nil {
		err = errors.Wrapf(err, "%s", path)
		return
	}

	return
}

func folders() configdir.ConfigDirs {
	return configdir.New(VENDOR, APPLICATION)
}

// Path returns the configuration file in use, or "" if there is none.
func Path() string {
	folder := folders().QueryFolderContainsFile(FILE)
	if folder == nil {
		return ""
	}
	return filepath.Join(folder.Path, FILE)
}

// Load reads the user configuration file, or returns the defaults if
// there is none.
func Load() (cfg Config, err error) {
	path := Path()
	if path == "" {
		cfg = Default()
		return
	}

	return ReadFile(path)
}

// History returns the step prompt history file, or "" if the cache folder
// cannot be created.
func History() string {
	cache := folders().QueryCacheFolder()
	if err := cache.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cache.Path, HISTORY)
}
