package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ccollicutt/phaselog/pkg/parser"
)

// Default values for configuration.
const (
	DefaultLogLevel         = "warn"
	DefaultTimestampPattern = `^(\w{3}\s+\d{1,2} \d{2}:\d{2}:\d{2})`
	DefaultTimestampLayout  = "Jan _2 15:04:05"
)

// Environment variable names.
const (
	EnvConfig   = "PHASELOG_CONFIG"
	EnvKernLog  = "PHASELOG_KERN_LOG"
	EnvLogLevel = "PHASELOG_LOG_LEVEL"
)

// DefaultConfig returns a configuration matching a stock syslog setup.
func DefaultConfig() *Config {
	return &Config{
		KernLog:  parser.DefaultKernelLog,
		LogLevel: DefaultLogLevel,
		TimestampFormat: TimestampConfig{
			Pattern: DefaultTimestampPattern,
			Layout:  DefaultTimestampLayout,
		},
	}
}

// applyEnvironmentOverrides applies PHASELOG_* variables to the config.
// Values from EnvFile are used only when the process environment lacks them.
func (c *Config) applyEnvironmentOverrides() error {
	fileEnv := map[string]string{}
	if c.EnvFile != "" {
		env, err := godotenv.Read(c.EnvFile)
		if err != nil {
			return fmt.Errorf("reading env file %s: %w", c.EnvFile, err)
		}
		fileEnv = env
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fileEnv[key]
	}

	if v := lookup(EnvKernLog); v != "" {
		c.KernLog = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}
