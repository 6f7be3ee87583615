package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds entraops settings. Completion state is never stored here.
type Config struct {
	// Appearance at startup: dark or light
	Theme string `yaml:"theme"`

	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

type ReportConfig struct {
	// Out is where the dashboard's print action writes (.md or .json).
	// Empty means stdout after the dashboard exits.
	Out string `yaml:"out"`
}

type LoggingConfig struct {
	File  string `yaml:"file"`  // empty disables logging
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() Config {
	return Config{
		Theme:   "dark",
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath is ~/.entraops/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".entraops", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("config: theme must be dark or light, got %q", c.Theme)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging level %q", c.Logging.Level)
	}
	if ext := strings.ToLower(filepath.Ext(c.Report.Out)); c.Report.Out != "" &&
		ext != ".md" && ext != ".markdown" && ext != ".json" {
		return fmt.Errorf("config: report.out must end in .md or .json, got %q", c.Report.Out)
	}
	return nil
}
