package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/phaselog/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long: `Validate the phaselog configuration without scanning.

Checks:
  - YAML syntax of --config (or $PHASELOG_CONFIG)
  - log_level and timestamp_format
  - env_file readability
  - Kernel log existence and readability (warning only)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, g)
		},
	}
}

// runValidate reports on a configuration that Globals.Init already loaded and
// validated; load errors surface before this runs.
func runValidate(cmd *cobra.Command, g *Globals) error {
	out := cmd.OutOrStdout()
	cfg := g.Config

	source := g.ConfigPath
	if source == "" {
		source = os.Getenv(config.EnvConfig)
	}
	if source == "" {
		source = "built-in defaults"
	}

	fmt.Fprintf(out, "Configuration valid! (%s)\n", source)
	fmt.Fprintf(out, "  Kernel log:       %s\n", cfg.KernLog)
	fmt.Fprintf(out, "  Log level:        %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  Timestamp layout: %s\n", cfg.TimestampFormat.Layout)
	if cfg.EnvFile != "" {
		fmt.Fprintf(out, "  Env file:         %s\n", cfg.EnvFile)
	}

	f, err := os.Open(cfg.KernLog)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: kernel log is not readable: %v\n", err)
		return nil
	}
	_ = f.Close()
	fmt.Fprintf(out, "\nKernel log readable: %s\n", cfg.KernLog)

	return nil
}
