package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/wishmaker/internal/color"
)

// DefaultInitialColor is the background the picker opens with (system pink)
const DefaultInitialColor = "#FF2D55"

// Config holds user settings loaded from config.yaml
type Config struct {
	InitialColor string  `yaml:"initial_color"`
	Step         float64 `yaml:"step"`
	FineStep     float64 `yaml:"fine_step"`
	LogFile      string  `yaml:"log_file"`
	LogLevel     string  `yaml:"log_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		InitialColor: DefaultInitialColor,
		Step:         0.05,
		FineStep:     0.01,
		LogLevel:     "info",
	}
}

// DefaultPath returns ~/.wishmaker/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".wishmaker", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults.
// A missing file is only an error when the path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and the initial color
func (c Config) Validate() error {
	if _, err := color.Decode(c.InitialColor); err != nil {
		return fmt.Errorf("initial_color: %w", err)
	}
	if c.Step <= 0 || c.Step > 1 {
		return fmt.Errorf("step must be in (0, 1], got %v", c.Step)
	}
	if c.FineStep <= 0 || c.FineStep > 1 {
		return fmt.Errorf("fine_step must be in (0, 1], got %v", c.FineStep)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Initial decodes InitialColor
func (c Config) Initial() (color.Color, error) {
	return color.Decode(c.InitialColor)
}
