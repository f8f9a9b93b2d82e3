package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configName = "ascgrid.toml"

type config struct {
	Log     logConfig     `toml:"log"`
	Rewrite rewriteConfig `toml:"rewrite"`
	Preview previewConfig `toml:"preview"`

	path string
}

type logConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type rewriteConfig struct {
	NoData      string `toml:"nodata"`
	ForceSquare bool   `toml:"force_square"`
}

type previewConfig struct {
	Width   int      `toml:"width"`
	Palette []string `toml:"palette"`
	Smooth  float64  `toml:"smooth"`
}

// findConfig walks up from startDir to locate ascgrid.toml.
func findConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig decodes the config file at path.
// An empty path means the nearest ascgrid.toml, no such file gives an empty config.
func loadConfig(path string) (config, error) {
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil || !ok {
			return config{}, err
		}
		path = found
	}

	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.path = path
	return cfg, nil
}
