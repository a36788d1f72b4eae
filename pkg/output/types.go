// Package output renders process inventories for the terminal.
package output

import (
	"time"

	"github.com/ccollicutt/phaselog/pkg/inventory"
)

// Report is the rendered view of a kernel log inventory.
type Report struct {
	Summary   Summary              `json:"summary"`
	Processes []*inventory.Process `json:"processes"`
	Metadata  Metadata             `json:"metadata"`
}

// Summary provides aggregate counts.
type Summary struct {
	// Processes is the number of processes with a begin marker.
	Processes int `json:"processes"`

	// Ended is how many of them also logged an end marker.
	Ended int `json:"ended"`

	// LinesScanned is the number of kernel log lines read.
	LinesScanned int `json:"lines_scanned"`
}

// Metadata describes the scan.
type Metadata struct {
	KernLog   string    `json:"kern_log"`
	ScannedAt time.Time `json:"scanned_at"`
}

// NewReport creates a Report from an inventory of kernLog.
func NewReport(inv *inventory.Inventory, kernLog string, scannedAt time.Time) *Report {
	processes := inv.Processes
	if processes == nil {
		processes = []*inventory.Process{}
	}
	return &Report{
		Summary: Summary{
			Processes:    len(inv.Processes),
			Ended:        inv.Ended(),
			LinesScanned: inv.LinesRead,
		},
		Processes: processes,
		Metadata: Metadata{
			KernLog:   kernLog,
			ScannedAt: scannedAt,
		},
	}
}

// Running returns the number of processes without an end marker.
func (r *Report) Running() int {
	return r.Summary.Processes - r.Summary.Ended
}
