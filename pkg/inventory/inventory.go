// Package inventory lists the processes the phase shift detector reported on.
package inventory

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ccollicutt/phaselog/pkg/parser"
)

var (
	beginPattern = regexp.MustCompile(`(\S*)\[([^\]\s]+)\]: execution has begun\. Locality size is (.*)`)
	endPattern   = regexp.MustCompile(`\[([^\]\s]+)\]: execution has ended`)
	tickPattern  = regexp.MustCompile(`\[([^\]\s]+)\] tick: `)
	shiftPattern = regexp.MustCompile(`\[([^\]\s]+)\] shift: `)
)

// Process summarizes one monitored process found in the kernel log.
type Process struct {
	Name         string    `json:"name"`
	PID          string    `json:"pid"`
	LocalitySize string    `json:"locality_size"`
	BegunAt      time.Time `json:"begun_at"`
	Line         int       `json:"line"`
	Ticks        int       `json:"ticks"`
	Shifts       int       `json:"shifts"`
	Ended        bool      `json:"ended"`
}

// Inventory is the result of one pass over a kernel log.
type Inventory struct {
	// Processes are the processes with a begin marker, in first-seen order.
	Processes []*Process

	// LinesRead is the number of lines scanned.
	LinesRead int
}

// Scanner builds an Inventory from log lines.
type Scanner struct {
	timestamps *parser.TimestampExtractor
}

// NewScanner creates a Scanner. timestamps may be nil, in which case BegunAt
// is left zero.
func NewScanner(timestamps *parser.TimestampExtractor) *Scanner {
	return &Scanner{timestamps: timestamps}
}

// Scan reads source to the end.
// Tick and shift counts stop at a process's end marker, matching what an
// extraction for that pid would write.
func (s *Scanner) Scan(ctx context.Context, source parser.LogSource) (*Inventory, error) {
	inv := &Inventory{}
	seen := make(map[string]*Process)

	get := func(pid string) *Process {
		p, ok := seen[pid]
		if !ok {
			p = &Process{PID: pid}
			seen[pid] = p
		}
		return p
	}

	for {
		line, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		inv.LinesRead++
		text := line.Text()

		if m := beginPattern.FindStringSubmatch(text); m != nil {
			p := get(m[2])
			if p.Line == 0 {
				p.Name = m[1]
				p.LocalitySize = strings.TrimSpace(m[3])
				p.Line = line.LineNum
				p.BegunAt = s.timestamp(text)
				inv.Processes = append(inv.Processes, p)
			}
		}

		if m := tickPattern.FindStringSubmatch(text); m != nil {
			if p := get(m[1]); !p.Ended {
				p.Ticks++
			}
		}

		if m := shiftPattern.FindStringSubmatch(text); m != nil {
			if p := get(m[1]); !p.Ended {
				p.Shifts++
			}
		}

		if m := endPattern.FindStringSubmatch(text); m != nil {
			get(m[1]).Ended = true
		}
	}

	return inv, nil
}

func (s *Scanner) timestamp(line string) time.Time {
	if s.timestamps == nil {
		return time.Time{}
	}
	ts, err := s.timestamps.Extract(line)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Ended returns how many listed processes reported an end marker.
func (inv *Inventory) Ended() int {
	n := 0
	for _, p := range inv.Processes {
		if p.Ended {
			n++
		}
	}
	return n
}
