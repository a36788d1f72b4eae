package extract

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ccollicutt/phaselog/pkg/parser"
)

// Options configures a file-to-file extraction run.
type Options struct {
	// PID selects the process whose markers are extracted.
	PID string

	// KernLog is the kernel log to read.
	KernLog string

	// Output is the file to create (truncated if it exists).
	Output string

	// Logger receives run diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Run extracts opts.PID's markers from opts.KernLog into opts.Output.
// The log is opened before the output is created, so a missing log leaves no
// output file behind. Both files are closed before Run returns.
func Run(ctx context.Context, opts Options) (result *Result, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	source, err := parser.OpenFile(opts.KernLog)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := source.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log file: %w", cerr)
		}
	}()

	out, err := os.Create(opts.Output) // #nosec G304 -- output path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	logger.Info("extracting",
		zap.String("pid", opts.PID),
		zap.String("log", opts.KernLog),
		zap.String("output", opts.Output))

	result, err = New(opts.PID, WithLogger(logger)).Extract(ctx, source, out)
	if err != nil {
		return result, fmt.Errorf("extracting pid %s: %w", opts.PID, err)
	}

	logger.Info("extraction complete",
		zap.String("name", result.Name),
		zap.Int("lines", result.LinesRead),
		zap.Int("ticks", result.Ticks),
		zap.Int("shifts", result.Shifts),
		zap.Bool("begun", result.Begun),
		zap.Bool("ended", result.Ended))

	return result, nil
}
