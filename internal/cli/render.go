package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlarea/internal/solver"
	"github.com/katalvlaran/lvlarea/internal/view"
	"github.com/katalvlaran/lvlarea/region"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		sf       sweepFlags
		noLegend bool
	)
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Print the ownership map of a point set",
		Long: `render prints one character per cell of the bounding box: the owner's
letter, upper case on the point itself, and '.' for cells tied between
two or more points. A legend of owners and areas follows the map.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.buildMap(cmd.Context(), cmd, args, sf)
			if err != nil {
				return err
			}
			return m.Render(cmd.OutOrStdout(), !noLegend)
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "print the map only")
	return cmd
}

func newViewCommand(a *app) *cobra.Command {
	var sf sweepFlags
	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Browse the ownership map in the terminal",
		Long:  "view shows the ownership map full screen. Arrow keys or hjkl scroll, q or Esc quits.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.buildMap(cmd.Context(), cmd, args, sf)
			if err != nil {
				return err
			}
			return view.Show(cmd.Context(), m)
		},
	}
	sf.register(cmd)
	return cmd
}

func (a *app) buildMap(ctx context.Context, cmd *cobra.Command, args []string, sf sweepFlags) (*view.Map, error) {
	points, err := readPoints(cmd, args)
	if err != nil {
		return nil, err
	}
	sc, err := a.solverConfig(cmd, sf)
	if err != nil {
		return nil, err
	}
	rep, err := solver.New(sc, solver.WithLogger(a.log)).Solve(ctx, points, region.WithLabels())
	if err != nil {
		return nil, err
	}
	return view.Build(rep.Analysis)
}
