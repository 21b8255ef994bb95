// Package config loads solver settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hanoi-search/internal/hanoi"
	"hanoi-search/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk configuration. Zero DepthLimit and MaxExpansions
// mean "derive from the disk count" and "unbounded".
type Config struct {
	Disks         int       `yaml:"disks"`
	Strategy      string    `yaml:"strategy"`
	DepthLimit    int       `yaml:"depth_limit"`
	MaxExpansions int       `yaml:"max_expansions"`
	Log           LogConfig `yaml:"log"`
	GUI           GUIConfig `yaml:"gui"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	Dir   string `yaml:"dir"`
}

type GUIConfig struct {
	FrameMillis int `yaml:"frame_millis"`
}

// Default matches the classic five-disk puzzle.
func Default() Config {
	return Config{
		Disks:    5,
		Strategy: "bfs",
		Log:      LogConfig{Level: "info"},
		GUI:      GUIConfig{FrameMillis: 140},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// The result is not validated so that callers can apply overrides first.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	var errs []error
	if c.Disks < 1 || c.Disks > hanoi.MaxDisks {
		errs = append(errs, fmt.Errorf("disks must be between 1 and %d, got %d", hanoi.MaxDisks, c.Disks))
	}
	if _, err := hanoi.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.DepthLimit < 0 {
		errs = append(errs, fmt.Errorf("depth_limit must be >= 0, got %d", c.DepthLimit))
	}
	if c.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("max_expansions must be >= 0, got %d", c.MaxExpansions))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.GUI.FrameMillis < 0 {
		errs = append(errs, fmt.Errorf("gui.frame_millis must be >= 0, got %d", c.GUI.FrameMillis))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// EffectiveDepthLimit resolves a zero depth limit to 2^disks - 1.
func (c Config) EffectiveDepthLimit() int {
	if c.DepthLimit > 0 {
		return c.DepthLimit
	}
	return hanoi.MinMoves(c.Disks)
}

// LoggingConfig translates the log section for the logging package.
func (c Config) LoggingConfig() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{
		Level:   level,
		JSON:    c.Log.JSON,
		LogDir:  c.Log.Dir,
		Service: "hanoi",
	}, nil
}
