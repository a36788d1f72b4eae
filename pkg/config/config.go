package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel is returned for an unknown log_level.
var ErrInvalidLevel = errors.New("invalid log level")

// Load reads and validates a configuration file.
// An empty path yields the defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the timestamp pattern.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.KernLog) == "" {
		return errors.New("kern_log: a kernel log path is required")
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if err := validateTimestampFormat(&cfg.TimestampFormat); err != nil {
		return fmt.Errorf("timestamp_format: %w", err)
	}

	return nil
}

func validateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w %q (must be debug, info, warn, or error)", ErrInvalidLevel, level)
	}
}

func validateTimestampFormat(tf *TimestampConfig) error {
	if tf.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(tf.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() < 1 {
		return errors.New("pattern must have at least one capture group for the timestamp")
	}

	tf.compiledPattern = re

	if tf.Layout == "" {
		return errors.New("layout is required")
	}

	return nil
}
