// Package config loads optional per-project shell settings.
// The file is named .d1shell.yaml and is discovered by walking up from the
// working directory, the same way the launcher probes for lockfiles.
// Command-line flags always take precedence over config values.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project config file name.
const FileName = ".d1shell.yaml"

// ErrNotFound is returned when no config file exists up the directory tree.
var ErrNotFound = errors.New("config not found")

// Config holds non-sensitive per-project settings.
type Config struct {
	// Locality is the default target when neither --local nor --remote is
	// given: "local", "remote", or empty for wrangler's default.
	Locality string `yaml:"locality"`
	// Wrangler overrides the launcher-selected command head, e.g.
	// ["./node_modules/.bin/wrangler"].
	Wrangler []string `yaml:"wrangler"`
	// Debug echoes each wrangler command line before execution,
	// equivalent to setting D1SHELL_DEBUG.
	Debug bool `yaml:"debug"`
}

// Load reads the nearest config file starting from dir.
func Load(dir string) (Config, error) {
	var c Config
	p, err := find(dir)
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

// LoadOrDefault reads the nearest config file starting from the working
// directory; a missing file yields zero-value defaults.
func LoadOrDefault() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	c, err := Load(wd)
	if errors.Is(err, ErrNotFound) {
		return Config{}, nil
	}
	return c, err
}

// find walks up from dir looking for the config file.
func find(dir string) (string, error) {
	for d := dir; ; d = filepath.Dir(d) {
		p := filepath.Join(d, FileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
		if filepath.Dir(d) == d {
			return "", ErrNotFound
		}
	}
}
