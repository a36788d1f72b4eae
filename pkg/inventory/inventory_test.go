package inventory

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/phaselog/pkg/parser"
)

const sampleLog = `Jun 14 10:00:00 lab kernel: [  10.000001] Phase shifts detection algorithm activated. 
Jun 14 10:00:01 lab kernel: [  11.000001] bench[1234]: execution has begun. Locality size is 16
Jun 14 10:00:02 lab kernel: [  12.000001] bench[1234] tick: 3
Jun 14 10:00:02 lab kernel: [  12.000002] gzip[77]: execution has begun. Locality size is 8 
Jun 14 10:00:03 lab kernel: [  13.000001] bench[1234] shift: 120
Jun 14 10:00:03 lab kernel: [  13.000002] gzip[77] tick: 1
Jun 14 10:00:04 lab kernel: [  14.000001] bench[1234]: execution has ended. 
Jun 14 10:00:05 lab kernel: [  15.000001] bench[1234] tick: 99
Jun 14 10:00:05 lab kernel: [  15.000002] orphan[5] tick: 1
`

func scan(t *testing.T, log string, ts *parser.TimestampExtractor) *Inventory {
	t.Helper()
	source := parser.NewReaderSource(strings.NewReader(log), "kern.log")
	inv, err := NewScanner(ts).Scan(context.Background(), source)
	require.NoError(t, err)
	return inv
}

func TestScan(t *testing.T) {
	ts := parser.NewTimestampExtractor(
		regexp.MustCompile(`^(\w{3}\s+\d{1,2} \d{2}:\d{2}:\d{2})`), "Jan _2 15:04:05", 2013)

	inv := scan(t, sampleLog, ts)

	assert.Equal(t, 9, inv.LinesRead)
	require.Len(t, inv.Processes, 2)

	bench := inv.Processes[0]
	assert.Equal(t, "bench", bench.Name)
	assert.Equal(t, "1234", bench.PID)
	assert.Equal(t, "16", bench.LocalitySize)
	assert.Equal(t, 2, bench.Line)
	assert.Equal(t, 1, bench.Ticks, "ticks after the end marker are not counted")
	assert.Equal(t, 1, bench.Shifts)
	assert.True(t, bench.Ended)
	assert.True(t, bench.BegunAt.Equal(time.Date(2013, 6, 14, 10, 0, 1, 0, time.UTC)), "BegunAt = %v", bench.BegunAt)

	gzip := inv.Processes[1]
	assert.Equal(t, "gzip", gzip.Name)
	assert.Equal(t, "8", gzip.LocalitySize)
	assert.Equal(t, 1, gzip.Ticks)
	assert.False(t, gzip.Ended)

	assert.Equal(t, 1, inv.Ended())
}

func TestScan_NoTimestamps(t *testing.T) {
	inv := scan(t, "dd[7]: execution has begun. Locality size is 4\n", nil)

	require.Len(t, inv.Processes, 1)
	assert.Equal(t, "dd", inv.Processes[0].Name)
	assert.True(t, inv.Processes[0].BegunAt.IsZero())
}

func TestScan_RepeatedBeginKeepsFirst(t *testing.T) {
	log := "a[1]: execution has begun. Locality size is 4\n" +
		"b[1]: execution has begun. Locality size is 9\n"

	inv := scan(t, log, nil)
	require.Len(t, inv.Processes, 1)
	assert.Equal(t, "a", inv.Processes[0].Name)
	assert.Equal(t, "4", inv.Processes[0].LocalitySize)
}

func TestScan_Empty(t *testing.T) {
	inv := scan(t, "", nil)
	assert.Empty(t, inv.Processes)
	assert.Equal(t, 0, inv.LinesRead)
	assert.Equal(t, 0, inv.Ended())
}

func TestScan_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := parser.NewReaderSource(strings.NewReader(sampleLog), "kern.log")
	_, err := NewScanner(nil).Scan(ctx, source)
	assert.ErrorIs(t, err, context.Canceled)
}
