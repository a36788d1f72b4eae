package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/phaselog/pkg/inventory"
	"github.com/ccollicutt/phaselog/pkg/output"
	"github.com/ccollicutt/phaselog/pkg/parser"
)

// PidsOptions holds command-line options for the pids command.
type PidsOptions struct {
	Output string
	Quiet  bool
}

// NewPidsCommand creates the pids command.
func NewPidsCommand(g *Globals) *cobra.Command {
	opts := &PidsOptions{}

	cmd := &cobra.Command{
		Use:   "pids",
		Short: "List processes monitored by the phase shift detector",
		Long: `List every process that logged "execution has begun" in the kernel log.

For each process shows its pid, name, locality size, how many tick and shift
values an extraction would produce, and whether it has ended. Use the pid
with "phaselog <pid> <output-file>".

Example:
  phaselog pids
  phaselog pids -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPids(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no process table")

	return cmd
}

func runPids(cmd *cobra.Command, g *Globals, opts *PidsOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: g.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	cfg := g.Config
	source, err := parser.OpenFile(cfg.KernLog)
	if err != nil {
		return err
	}
	defer source.Close()

	now := time.Now()
	timestamps := parser.NewTimestampExtractor(
		cfg.TimestampFormat.CompiledPattern(),
		cfg.TimestampFormat.Layout,
		now.Year(),
	)

	inv, err := inventory.NewScanner(timestamps).Scan(ctx, source)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.KernLog, err)
	}
	g.Logger.Info("inventory complete",
		zap.Int("lines", inv.LinesRead),
		zap.Int("processes", len(inv.Processes)))

	report := output.NewReport(inv, cfg.KernLog, now)
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

func createFormatter(name string, opts output.FormatOptions) (output.Formatter, error) {
	switch name {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}
