package commands

import (
	"context"

	"github.com/ccollicutt/phaselog/pkg/extract"
)

// ExtractLong documents the default command.
const ExtractLong = `Extract one process's phase shift detector output from the kernel log.

Reads the kernel log (default /var/log/kern.log) once and writes to
<output-file>:
  - a header built from the process's "execution has begun" line
  - every tick value, in log order
  - a phase shifts separator followed by every shift value

Scanning stops at the process's "execution has ended" line. The pid is
matched verbatim. Name the output .csv to open it in a spreadsheet.

Exit codes:
  0 - Output written
  2 - Configuration or runtime error`

// RunExtract writes pid's faults and phase shifts summary to output.
func RunExtract(ctx context.Context, g *Globals, pid, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := extract.Run(ctx, extract.Options{
		PID:     pid,
		KernLog: g.Config.KernLog,
		Output:  output,
		Logger:  g.Logger,
	})
	return err
}
