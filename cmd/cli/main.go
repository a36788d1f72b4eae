// phaselog - kernel log extractor for the phase shift detector
//
// phaselog reads the kernel log and writes one process's page fault ticks and
// detected phase shifts to a file that spreadsheets can import.
package main

import (
	"os"

	"github.com/ccollicutt/phaselog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
