// Package config loads cmd/markov's optional TOML configuration file, in
// the same defaulted-struct, best-effort-load shape the ARM emulator
// example's config package uses: every field has a safe zero-value
// default, and a missing or unreadable file falls back to those defaults
// rather than failing the program.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds cmd/markov's tunable defaults.
type Config struct {
	Model struct {
		BucketBits int    `toml:"bucket_bits"`
		Seed       uint32 `toml:"seed"`
	} `toml:"model"`

	Generate struct {
		Count    int `toml:"count"`
		MaxRunes int `toml:"max_runes"`
	} `toml:"generate"`
}

// Default returns a Config with the same defaults cmd/markov would use if
// no config file were involved at all.
func Default() *Config {
	cfg := &Config{}
	cfg.Model.BucketBits = 16
	cfg.Model.Seed = 0xB00B
	cfg.Generate.Count = 10
	cfg.Generate.MaxRunes = 128
	return cfg
}

// Load reads path as TOML into a Default-initialized Config. A missing
// file is not an error: Load silently returns the defaults, matching the
// "config file is an optional override" posture of the reference CLI's
// environment-variable and flag handling.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// DefaultPath returns the platform's conventional location for the
// config file, under the user's config directory, without creating it.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "markov.toml"
	}
	return filepath.Join(dir, "markov", "markov.toml")
}
