// Package config provides configuration loading and validation for phaselog.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
// Every field has a default, so running without a config file is normal.
type Config struct {
	// KernLog is the kernel log file to scan.
	KernLog string `yaml:"kern_log"`

	// LogLevel is the minimum level for diagnostic logging (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// EnvFile is an optional dotenv file supplying PHASELOG_* overrides.
	// Variables already set in the process environment win.
	EnvFile string `yaml:"env_file,omitempty"`

	// TimestampFormat describes the syslog prefix of kernel log lines.
	TimestampFormat TimestampConfig `yaml:"timestamp_format"`
}

// TimestampConfig defines how to extract timestamps from kernel log lines.
type TimestampConfig struct {
	// Pattern is a regex that captures the timestamp portion of a log line.
	// Must contain at least one capture group.
	Pattern string `yaml:"pattern"`

	// Layout is the Go time layout string for parsing the captured timestamp.
	Layout string `yaml:"layout"`

	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pattern compiled during validation.
func (t *TimestampConfig) CompiledPattern() *regexp.Regexp {
	return t.compiledPattern
}
