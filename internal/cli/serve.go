package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlarea/internal/observability"
	"github.com/katalvlaran/lvlarea/internal/server"
	"github.com/katalvlaran/lvlarea/internal/solver"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		sf   sweepFlags
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the area API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sc, err := a.solverConfig(cmd, sf)
			if err != nil {
				return err
			}
			sv := a.cfg.Server
			if cmd.Flags().Changed("addr") {
				sv.Addr = addr
			}

			shutdown, err := a.startTracing(ctx, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer observability.ShutdownWithTimeout(cmd.Context(), shutdown, a.log)

			solverOpts := []solver.Option{solver.WithLogger(a.log)}
			serverOpts := []server.Option{server.WithLogger(a.log)}
			if a.cfg.Metrics.Enabled {
				collector, err := observability.NewSolverCollector(prometheus.NewRegistry())
				if err != nil {
					return err
				}
				solverOpts = append(solverOpts, solver.WithMetrics(collector))
				serverOpts = append(serverOpts, server.WithMetrics(collector, a.cfg.Metrics.Path))
			}

			srv := server.New(sv, solver.New(sc, solverOpts...), serverOpts...)
			return srv.ListenAndServe(ctx)
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
