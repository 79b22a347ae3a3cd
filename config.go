package main

import (
	u "degtrig/utils"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var ErrBadPrecision = errors.New("precision must be f32 or f64")

type config struct{ Precision, Prompt, History string }

func defaultConfig() *config {
	return &config{Precision: u.DefaultPrecision, Prompt: u.Prompt, History: u.HistoryFile}
}

func cfgPath() string {
	h, _ := os.UserHomeDir()
	return filepath.Join(h, u.ConfigDir, u.ConfigFile)
}

// loadConfig reads the TOML file at path on top of the defaults. With an
// empty path the default location is tried and may be missing.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = cfgPath()
	}

	_, err := toml.DecodeFile(path, c)
	if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	switch c.Precision {
	case "f32", "f64":
	default:
		return nil, fmt.Errorf("config %s: %w, got %q", path, ErrBadPrecision, c.Precision)
	}

	if c.History != "" && !filepath.IsAbs(c.History) {
		h, _ := os.UserHomeDir()
		c.History = filepath.Join(h, c.History)
	}
	return c, nil
}
