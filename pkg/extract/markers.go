// Package extract turns the kernel log lines of one monitored process into
// the faults/phase-shifts summary imported into spreadsheets.
package extract

// Separator introduces the phase shift section of the output.
const Separator = "###################Phase shifts graph###################\n"

// Markers are the literal substrings the phase shift detector logs for a pid.
type Markers struct {
	PID   string
	Begin string
	End   string
	Tick  string
	Shift string
}

// NewMarkers builds the markers for pid. The pid is used verbatim.
func NewMarkers(pid string) Markers {
	tag := "[" + pid + "]"
	return Markers{
		PID:   pid,
		Begin: tag + ": execution has begun. Locality size is ",
		End:   tag + ": execution has ended",
		Tick:  tag + " tick: ",
		Shift: tag + " shift: ",
	}
}

// Header renders the first output line for a begin marker.
// size keeps whatever trailed the marker in the log, newline included.
func (m Markers) Header(name, size string) string {
	return name + "[" + m.PID + "], locality size " + size + "Faults graph:\n \n"
}
