package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultKernelLog is where the kernel ring buffer is persisted by syslog on
// Debian-style hosts.
const DefaultKernelLog = "/var/log/kern.log"

// ReaderSource implements LogSource on top of any io.Reader.
// Unlike a bufio.Scanner it keeps line terminators and has no line length limit.
type ReaderSource struct {
	reader  *bufio.Reader
	closer  io.Closer
	source  string
	lineNum int
	done    bool
}

// NewReaderSource creates a LogSource reading lines from r.
// The name is reported as the Source of every line.
func NewReaderSource(r io.Reader, name string) *ReaderSource {
	s := &ReaderSource{
		reader: bufio.NewReaderSize(r, 64*1024),
		source: name,
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// OpenFile opens a log file for reading.
// The file is opened immediately so a missing or unreadable log is reported
// before any output is produced.
func OpenFile(path string) (*ReaderSource, error) {
	f, err := os.Open(path) // #nosec G304 -- reading the configured kernel log is the point
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return NewReaderSource(f, path), nil
}

// Next returns the next line including its trailing newline.
// Returns io.EOF when the source is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	content, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading %s: %w", s.source, err)
		}
		s.done = true
		if content == "" {
			return nil, io.EOF
		}
	}

	s.lineNum++
	return &LogLine{
		Content: content,
		Source:  s.source,
		LineNum: s.lineNum,
	}, nil
}

// Close releases the underlying reader if it is closable.
// It is safe to call Close more than once.
func (s *ReaderSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
