// Package cli provides the command-line interface for phaselog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/phaselog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		// SilenceErrors keeps cobra from printing this itself
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	g := &commands.Globals{}

	rootCmd := &cobra.Command{
		Use:   "phaselog <pid> <output-file>",
		Short: "Extract phase shift detector output for one process from the kernel log",
		Long:  commands.ExtractLong,
		Args:  cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return g.Init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			g.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExtract(cmd.Context(), g, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Config file (default $PHASELOG_CONFIG, else built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(commands.NewPidsCommand(g))
	rootCmd.AddCommand(commands.NewValidateCommand(g))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
