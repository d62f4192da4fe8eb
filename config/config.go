// Package config provides configuration management for the wordladder CLI.
//
// Config file locations (priority order):
//  1. $WORDLADDER_CONFIG
//  2. ./wordladder.yaml
//  3. $XDG_CONFIG_HOME/wordladder/config.yaml
//  4. ~/.config/wordladder/config.yaml
//
// Command-line flags override every value read from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a config value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds CLI defaults.
type Config struct {
	// Dictionary is the default dictionary path or doublestar glob.
	Dictionary string `yaml:"dictionary"`
	// Output is the default solution file.
	Output string `yaml:"output"`
	// Query reads words from SQLite dictionaries.
	Query string `yaml:"query"`

	MaxSolutions   int           `yaml:"max_solutions"`
	MaxSteps       int           `yaml:"max_steps"`
	RecursionLimit int           `yaml:"recursion_limit"`
	Timeout        time.Duration `yaml:"timeout"`

	// All prints every shortest ladder, not only the one written to Output.
	All     bool `yaml:"all"`
	Verbose bool `yaml:"verbose"`
	// Color enables styled terminal output; nil means true.
	Color *bool `yaml:"color"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the values used when no config file exists
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Color == nil {
		on := true
		c.Color = &on
	}
}

// Validate rejects negative limits and timeouts.
func (c *Config) Validate() error {
	switch {
	case c.MaxSolutions < 0:
		return fmt.Errorf("%w: max_solutions must be >= 0, got %d", ErrInvalid, c.MaxSolutions)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max_steps must be >= 0, got %d", ErrInvalid, c.MaxSteps)
	case c.RecursionLimit < 0:
		return fmt.Errorf("%w: recursion_limit must be >= 0, got %d", ErrInvalid, c.RecursionLimit)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must be >= 0, got %s", ErrInvalid, c.Timeout)
	}
	return nil
}

// ColorEnabled reports the effective color setting.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
