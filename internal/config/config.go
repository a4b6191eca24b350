// Package config holds configuration for the assume command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when configuration validation fails
	ErrInvalidConfig = errors.New("invalid config")
)

// Config controls the assume command. The build mode is an externally
// supplied input read once per run, never toggled while expanding.
type Config struct {
	// Mode is the build mode expansions target.
	// Valid values: "verified", "optimized"
	Mode string `yaml:"mode"`
	// Paths are the vet targets (files or directories).
	Paths []string `yaml:"paths"`
	// Strict makes vet usage hazards fatal, not just reported.
	Strict bool `yaml:"strict"`
}

// Default returns the configuration used when no file is given:
// verified mode, current directory, hazards reported but not fatal.
func Default() Config {
	return Config{
		Mode:  "verified",
		Paths: []string{"."},
	}
}

// Load reads and parses an assume configuration file, then applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	// Clean the path to prevent directory traversal attacks
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - Config file path is trusted (from the invoking developer)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides
// applied, for runs without a config file.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ASSUME_MODE"); v != "" {
		c.Mode = v
	}
	c.Strict = parseBool(os.Getenv("ASSUME_STRICT"), c.Strict)
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	switch c.Mode {
	case "verified", "optimized":
	default:
		return fmt.Errorf("%w: mode %q (must be verified or optimized)", ErrInvalidConfig, c.Mode)
	}
	if len(c.Paths) == 0 {
		return fmt.Errorf("%w: at least one path is required", ErrInvalidConfig)
	}
	return nil
}

func parseBool(s string, defaultVal bool) bool {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return val
}
