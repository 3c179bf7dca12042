// Package cli implements the lvlarea command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/internal/config"
	"github.com/katalvlaran/lvlarea/internal/logging"
	"github.com/katalvlaran/lvlarea/internal/observability"
	"github.com/katalvlaran/lvlarea/internal/pointio"
)

// app carries the state shared by every subcommand once the persistent
// flags have been applied.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg config.Config
	log logging.Logger
}

// NewRootCommand builds the lvlarea command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: logging.Noop()}
	root := &cobra.Command{
		Use:   "lvlarea",
		Short: "Find the largest finite Manhattan region of a point set",
		Long: `lvlarea assigns every cell of the bounding box of a point set to its
uniquely nearest point under the Manhattan metric and reports the largest
region that does not reach the edge of the box.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "YAML config file")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newSolveCommand(a),
		newRenderCommand(a),
		newViewCommand(a),
		newGenerateCommand(a),
		newServeCommand(a),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

// setup layers the configuration: defaults, then LVLAREA_LOG_LEVEL and
// LVLAREA_LOG_FORMAT, then the --config file, then flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	base := config.Default()
	env := logging.ConfigFromEnv()
	if env.Level != "" {
		base.Logging.Level = env.Level
	}
	if env.Format != "" {
		base.Logging.Format = env.Format
	}
	cfg, err := config.LoadOver(base, a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// readPoints reads the file named by args[0], or the command's input when the
// argument is absent or "-".
func readPoints(cmd *cobra.Command, args []string) ([]geom.Coordinate, error) {
	if len(args) == 0 || args[0] == "-" {
		return pointio.Parse(cmd.InOrStdin())
	}
	return pointio.ReadFile(args[0])
}

// sweepFlags are shared by the commands that run a sweep.
type sweepFlags struct {
	workers int
	padding int
}

func (s *sweepFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&s.workers, "workers", 0, "sweep goroutines (0 uses the config value, one per CPU by default)")
	cmd.Flags().IntVar(&s.padding, "padding", 0, "grow the bounding box by this many cells on every side")
}

// solverConfig applies the flags the user set on top of the config file.
func (a *app) solverConfig(cmd *cobra.Command, s sweepFlags) (config.SolverConfig, error) {
	sc := a.cfg.Solver
	if cmd.Flags().Changed("workers") {
		if s.workers < 0 {
			return sc, fmt.Errorf("--workers must be >= 0, got %d", s.workers)
		}
		sc.Workers = s.workers
	}
	if cmd.Flags().Changed("padding") {
		if s.padding < 0 {
			return sc, fmt.Errorf("--padding must be >= 0, got %d", s.padding)
		}
		sc.Padding = s.padding
	}
	return sc, nil
}

// startTracing installs the configured tracer provider; force enables the
// stdout exporter writing to w.
func (a *app) startTracing(ctx context.Context, force bool, w io.Writer) (func(context.Context) error, error) {
	tc := a.cfg.Tracing
	if force {
		tc.Enabled = true
		tc.Exporter = "stdout"
	}
	return observability.InitTracing(ctx, tc, w, a.log)
}
