package extract

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/ccollicutt/phaselog/pkg/parser"
)

// Result describes what a single extraction pass found.
type Result struct {
	// Name is the process name from the begin marker, empty if none was seen.
	Name string

	// LocalitySize is the begin marker's trailing text without its newline.
	LocalitySize string

	// Ticks and Shifts count the values written to each section.
	Ticks  int
	Shifts int

	// LinesRead is the number of log lines consumed before stopping.
	LinesRead int

	// Begun and Ended report whether the begin and end markers were seen.
	Begun bool
	Ended bool
}

// Extractor scans log lines for one pid.
type Extractor struct {
	markers Markers
	logger  *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for per-line debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor for pid.
func New(pid string, opts ...Option) *Extractor {
	e := &Extractor{
		markers: NewMarkers(pid),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads source until it is exhausted or the end marker is found,
// writing header and tick values to w as they appear. Shift values are held
// back and written after the separator once scanning stops.
//
// On error, output already written to w is left in place.
func (e *Extractor) Extract(ctx context.Context, source parser.LogSource, w io.Writer) (*Result, error) {
	out := bufio.NewWriter(w)
	result := &Result{}
	var shifts strings.Builder

	scanErr := e.scan(ctx, source, out, &shifts, result)
	if scanErr == nil {
		if _, err := out.WriteString(Separator + shifts.String()); err != nil {
			scanErr = fmt.Errorf("writing phase shifts: %w", err)
		}
	}

	if err := out.Flush(); err != nil && scanErr == nil {
		scanErr = fmt.Errorf("flushing output: %w", err)
	}
	return result, scanErr
}

func (e *Extractor) scan(ctx context.Context, source parser.LogSource, out *bufio.Writer, shifts *strings.Builder, result *Result) error {
	m := e.markers

	for {
		line, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		result.LinesRead++
		content := line.Content

		if i := strings.Index(content, m.Begin); i >= 0 {
			prefix := content[:i]
			name := prefix[strings.LastIndex(prefix, " ")+1:]
			size := content[i+len(m.Begin):]

			if _, err := out.WriteString(m.Header(name, size)); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
			result.Begun = true
			result.Name = name
			result.LocalitySize = strings.TrimRight(size, "\r\n")
			e.logger.Debug("begin marker",
				zap.Int("line", line.LineNum),
				zap.String("name", name))
		}

		// A line carrying the end marker still contributes its tick/shift
		// value before the scan stops.
		ended := strings.Contains(content, m.End)

		if i := strings.Index(content, m.Tick); i >= 0 {
			if _, err := out.WriteString(content[i+len(m.Tick):]); err != nil {
				return fmt.Errorf("writing tick: %w", err)
			}
			result.Ticks++
		}

		if i := strings.Index(content, m.Shift); i >= 0 {
			shifts.WriteString(content[i+len(m.Shift):])
			result.Shifts++
		}

		if ended {
			result.Ended = true
			e.logger.Debug("end marker", zap.Int("line", line.LineNum))
			return nil
		}
	}
}
