// Package config loads and saves the conch configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes accepted in the output section.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the persisted conch configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig contains console-output defaults. Command-line flags override
// every field here.
type OutputConfig struct {
	// Color selects when ANSI sequences are emitted: auto, always, never.
	Color string `yaml:"color"`

	// Verbose selects the timestamped trace logger by default.
	Verbose bool `yaml:"verbose"`

	// Quiet suppresses status output by default.
	Quiet bool `yaml:"quiet"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}

// DefaultPath returns the conventional config location, honoring the
// CONCH_CONFIG override.
func DefaultPath() string {
	if p := os.Getenv("CONCH_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "conch", "config.yaml")
}

// Load reads the configuration at path, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q", c.Output.Color)
}
