// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Backend modes accepted by FMATH_BACKEND.
const (
	ModeAuto   = "auto"
	ModeScalar = "scalar"
)

// Config holds all runtime configuration.
type Config struct {
	Backend BackendConfig
	Logging LogConfig
}

// BackendConfig controls kernel selection.
type BackendConfig struct {
	NoSIMD bool   `envconfig:"FMATH_NO_SIMD" default:"false"`
	Mode   string `envconfig:"FMATH_BACKEND" default:"auto"`
}

// LogConfig holds logging configuration for the commands.
type LogConfig struct {
	Level       string `envconfig:"FMATH_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"FMATH_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			Mode: ModeAuto,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks values envconfig cannot check by type alone.
func (c *Config) Validate() error {
	switch c.Backend.Mode {
	case ModeAuto, ModeScalar:
		return nil
	default:
		return fmt.Errorf("invalid FMATH_BACKEND %q: want %q or %q", c.Backend.Mode, ModeAuto, ModeScalar)
	}
}
