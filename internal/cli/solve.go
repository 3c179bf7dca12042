package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlarea/internal/observability"
	"github.com/katalvlaran/lvlarea/internal/solver"
)

func newSolveCommand(a *app) *cobra.Command {
	var (
		sf      sweepFlags
		metrics bool
		trace   bool
		stats   bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the largest finite region of a point set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			points, err := readPoints(cmd, args)
			if err != nil {
				return err
			}
			sc, err := a.solverConfig(cmd, sf)
			if err != nil {
				return err
			}

			opts := []solver.Option{solver.WithLogger(a.log)}
			var collector *observability.SolverCollector
			if metrics {
				collector, err = observability.NewSolverCollector(prometheus.NewRegistry())
				if err != nil {
					return err
				}
				opts = append(opts, solver.WithMetrics(collector))
			}

			shutdown, err := a.startTracing(ctx, trace, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer observability.ShutdownWithTimeout(ctx, shutdown, a.log)

			rep, err := solver.New(sc, opts...).Solve(ctx, points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printResult(out, rep)
			if stats {
				printStats(out, rep)
			}
			if collector != nil {
				fmt.Fprintln(out)
				return collector.WriteText(out)
			}
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print Prometheus metrics after the run")
	cmd.Flags().BoolVar(&trace, "trace", false, "write trace spans to stderr")
	cmd.Flags().BoolVar(&stats, "stats", false, "print sweep statistics")
	return cmd
}

func printResult(w io.Writer, rep *solver.Report) {
	if !rep.Found {
		fmt.Fprintln(w, "no finite region")
		return
	}
	fmt.Fprintf(w, "largest finite area: %d (owner %s)\n", rep.Area, rep.Owner)
}

func printStats(w io.Writer, rep *solver.Report) {
	fmt.Fprintf(w, "points: %d\n", rep.Points)
	fmt.Fprintf(w, "box: %s-%s\n", rep.Box.Min, rep.Box.Max)
	fmt.Fprintf(w, "cells: %d\n", rep.Cells)
	fmt.Fprintf(w, "tie cells: %d\n", rep.TieCells)
	fmt.Fprintf(w, "finite owners: %d\n", rep.FiniteOwners)
	fmt.Fprintf(w, "infinite owners: %d\n", rep.InfiniteOwners)
	fmt.Fprintf(w, "duration: %s\n", rep.Duration)
	fmt.Fprintf(w, "run id: %s\n", rep.RunID)
}
