package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/phaselog/pkg/config"
	"github.com/ccollicutt/phaselog/pkg/output"
)

const kernLog = `Jun 14 10:00:01 lab kernel: [  11.000001] bench[1234]: execution has begun. Locality size is 16
Jun 14 10:00:02 lab kernel: [  12.000001] bench[1234] tick: 3
Jun 14 10:00:03 lab kernel: [  13.000001] bench[1234] shift: 120
Jun 14 10:00:04 lab kernel: [  14.000001] bench[1234]: execution has ended. 
Jun 14 10:00:05 lab kernel: [  15.000001] gzip[77]: execution has begun. Locality size is 8
`

// setupGlobals points the configuration at a temporary kernel log and
// initializes g the way the root command does.
func setupGlobals(t *testing.T, logContent string) *Globals {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "kern.log")
	require.NoError(t, os.WriteFile(logPath, []byte(logContent), 0644))

	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvKernLog, logPath)
	t.Setenv(config.EnvLogLevel, "")

	g := &Globals{}
	require.NoError(t, g.Init(context.Background()))
	t.Cleanup(g.Close)
	return g
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestGlobals_Init(t *testing.T) {
	g := setupGlobals(t, "")

	assert.NotNil(t, g.Logger)
	assert.NotEmpty(t, g.RunID)
	assert.Equal(t, config.DefaultLogLevel, g.Config.LogLevel)
}

func TestGlobals_Init_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "phaselog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("kern_log: /srv/kern.log\nlog_level: info\n"), 0644))

	t.Setenv(config.EnvKernLog, "")
	t.Setenv(config.EnvLogLevel, "")

	t.Run("flag", func(t *testing.T) {
		g := &Globals{ConfigPath: cfgPath}
		require.NoError(t, g.Init(context.Background()))
		assert.Equal(t, "/srv/kern.log", g.Config.KernLog)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(config.EnvConfig, cfgPath)
		g := &Globals{}
		require.NoError(t, g.Init(context.Background()))
		assert.Equal(t, "info", g.Config.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		g := &Globals{ConfigPath: filepath.Join(dir, "nope.yaml")}
		err := g.Init(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})
}

func TestRunExtract(t *testing.T) {
	g := setupGlobals(t, kernLog)
	out := filepath.Join(t.TempDir(), "bench.csv")

	require.NoError(t, RunExtract(context.Background(), g, "1234", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"bench[1234], locality size 16\nFaults graph:\n \n3\n"+
			"###################Phase shifts graph###################\n120\n",
		string(data))
}

func TestRunExtract_MissingLog(t *testing.T) {
	g := setupGlobals(t, "")
	g.Config.KernLog = filepath.Join(t.TempDir(), "absent.log")

	err := RunExtract(context.Background(), g, "1", filepath.Join(t.TempDir(), "out.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewPidsCommand(t *testing.T) {
	cmd := NewPidsCommand(&Globals{})

	assert.Equal(t, "pids", cmd.Use)
	for _, flag := range []string{"output", "quiet"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestRunPids_Text(t *testing.T) {
	g := setupGlobals(t, kernLog)

	out, err := execute(t, NewPidsCommand(g))
	require.NoError(t, err)

	assert.Contains(t, out, "bench")
	assert.Contains(t, out, "1234")
	assert.Contains(t, out, "gzip")
	assert.Contains(t, out, "phaselog: 2 process(es), 1 ended, 1 running")
}

func TestRunPids_JSON(t *testing.T) {
	g := setupGlobals(t, kernLog)

	out, err := execute(t, NewPidsCommand(g), "-o", "json")
	require.NoError(t, err)

	var report output.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Processes, 2)
	assert.Equal(t, "1234", report.Processes[0].PID)
	assert.Equal(t, 1, report.Processes[0].Ticks)
	assert.Equal(t, 5, report.Summary.LinesScanned)
}

func TestRunPids_UnknownFormat(t *testing.T) {
	g := setupGlobals(t, kernLog)

	_, err := execute(t, NewPidsCommand(g), "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunPids_MissingLog(t *testing.T) {
	g := setupGlobals(t, "")
	g.Config.KernLog = "/nonexistent/kern.log"

	_, err := execute(t, NewPidsCommand(g))
	assert.Error(t, err)
}

func TestRunValidate(t *testing.T) {
	g := setupGlobals(t, kernLog)

	out, err := execute(t, NewValidateCommand(g))
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid!")
	assert.Contains(t, out, "built-in defaults")
	assert.Contains(t, out, "Kernel log readable")
}

func TestRunValidate_UnreadableLogIsWarning(t *testing.T) {
	g := setupGlobals(t, "")
	g.Config.KernLog = "/nonexistent/kern.log"

	out, err := execute(t, NewValidateCommand(g))
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: kernel log is not readable")
}

func TestNewVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCommand())
	require.NoError(t, err)
	assert.Equal(t, "phaselog dev\n", out)
}
