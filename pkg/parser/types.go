// Package parser provides line-by-line reading of kernel log files.
package parser

import "strings"

// LogLine is a single line read from a log source.
type LogLine struct {
	// Content is the line text including its trailing newline.
	// The last line of a source may have no newline.
	Content string

	// Source is the file path (or name) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Text returns the line content without its line terminator.
func (l *LogLine) Text() string {
	return strings.TrimRight(l.Content, "\r\n")
}
