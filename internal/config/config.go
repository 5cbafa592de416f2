// Package config loads CLI settings from LTLFSYNTH_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Policy names accepted by LTLFSYNTH_POLICY.
const (
	PolicyFirst  = "first"
	PolicyRandom = "random"
	PolicyFewest = "fewest"
)

// Config holds CLI defaults. Command-line flags override these values.
type Config struct {
	LogLevel      string `env:"LTLFSYNTH_LOG_LEVEL" envDefault:"warn"`
	Policy        string `env:"LTLFSYNTH_POLICY" envDefault:"first"`
	Seed          int64  `env:"LTLFSYNTH_SEED" envDefault:"1"`
	Workers       int    `env:"LTLFSYNTH_WORKERS" envDefault:"1"`
	MaxIterations int    `env:"LTLFSYNTH_MAX_ITERATIONS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Policy {
	case PolicyFirst, PolicyRandom, PolicyFewest:
	default:
		return fmt.Errorf("config: unknown policy %q (want %s, %s or %s)", c.Policy, PolicyFirst, PolicyRandom, PolicyFewest)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("config: max iterations cannot be negative, got %d", c.MaxIterations)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}
