package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ccollicutt/phaselog/pkg/config"
)

// Globals holds state shared by the root command and its subcommands.
// Init must run before any command uses Config or Logger.
type Globals struct {
	// Flags
	ConfigPath string
	Verbose    bool

	Config *config.Config
	Logger *zap.Logger
	RunID  string
}

// Init loads the configuration and builds the run logger.
// The config path falls back to $PHASELOG_CONFIG, then to built-in defaults.
func (g *Globals) Init(ctx context.Context) error {
	path := g.ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, g.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	g.Config = cfg
	g.RunID = uuid.NewString()
	g.Logger = logger.With(zap.String("run_id", g.RunID))
	g.Logger.Debug("configuration loaded",
		zap.String("config", path),
		zap.String("kern_log", cfg.KernLog))
	return nil
}

// Close flushes the logger.
func (g *Globals) Close() {
	if g.Logger != nil {
		_ = g.Logger.Sync()
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()

	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl.SetLevel(zapcore.DebugLevel)
	}
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
