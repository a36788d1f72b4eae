package parser

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrNoTimestamp is returned when a line has no recognizable timestamp.
var ErrNoTimestamp = errors.New("timestamp pattern did not match")

// TimestampExtractor pulls the syslog prefix timestamp out of kernel log lines.
type TimestampExtractor struct {
	pattern *regexp.Regexp
	layout  string
	year    int
}

// NewTimestampExtractor creates a new timestamp extractor.
// Syslog layouts carry no year; parsed times without one are placed in year.
func NewTimestampExtractor(pattern *regexp.Regexp, layout string, year int) *TimestampExtractor {
	return &TimestampExtractor{
		pattern: pattern,
		layout:  layout,
		year:    year,
	}
}

// Extract parses the timestamp held in the first capture group of the pattern.
func (e *TimestampExtractor) Extract(line string) (time.Time, error) {
	matches := e.pattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return time.Time{}, ErrNoTimestamp
	}

	ts, err := time.Parse(e.layout, matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", matches[1], err)
	}

	if ts.Year() == 0 && e.year != 0 {
		ts = ts.AddDate(e.year, 0, 0)
	}

	return ts, nil
}
