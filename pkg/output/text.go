package output

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ccollicutt/phaselog/pkg/inventory"
)

// TextFormatter formats reports as an aligned table.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatSummary(report, w)
	}

	if len(report.Processes) == 0 {
		fmt.Fprintf(w, "No monitored processes found in %s\n", report.Metadata.KernLog)
		return f.formatSummary(report, w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "PID\tNAME\tLOCALITY\tTICKS\tSHIFTS\tSTATE\tBEGUN"
	if f.opts.Verbose {
		header += "\tLINE"
	}
	fmt.Fprintln(tw, header)

	for _, p := range report.Processes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s",
			p.PID, p.Name, p.LocalitySize, p.Ticks, p.Shifts, state(p), begun(p))
		if f.opts.Verbose {
			fmt.Fprintf(tw, "\t%d", p.Line)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return f.formatSummary(report, w)
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "phaselog: %d process(es), %d ended, %d running\n",
		report.Summary.Processes, report.Summary.Ended, report.Running())
	if err != nil {
		return err
	}

	if f.opts.Verbose && !f.opts.Quiet {
		_, err = fmt.Fprintf(w, "Lines scanned: %d (%s)\n", report.Summary.LinesScanned, report.Metadata.KernLog)
	}
	return err
}

func state(p *inventory.Process) string {
	if p.Ended {
		return "ended"
	}
	return "running"
}

func begun(p *inventory.Process) string {
	if p.BegunAt.IsZero() {
		return "-"
	}
	return p.BegunAt.Format("Jan _2 15:04:05")
}
