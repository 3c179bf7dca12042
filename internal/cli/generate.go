package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlarea/builder"
	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/internal/pointio"
)

const (
	kindRandom   = "random"
	kindLattice  = "lattice"
	kindDiagonal = "diagonal"
)

type generateFlags struct {
	kind   string
	n      int
	width  int
	height int
	cols   int
	rows   int
	step   int
	seed   int64
	origin string
	unique bool
}

func newGenerateCommand(_ *app) *cobra.Command {
	var gf generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a point set in the solve input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := gf.build()
			if err != nil {
				return err
			}
			return pointio.Write(cmd.OutOrStdout(), points)
		},
	}
	f := cmd.Flags()
	f.StringVar(&gf.kind, "kind", kindRandom, "point layout: random, lattice or diagonal")
	f.IntVar(&gf.n, "n", 50, "number of points (random, diagonal)")
	f.IntVar(&gf.width, "width", 360, "window width (random)")
	f.IntVar(&gf.height, "height", 360, "window height (random)")
	f.IntVar(&gf.cols, "cols", 5, "columns (lattice)")
	f.IntVar(&gf.rows, "rows", 5, "rows (lattice)")
	f.IntVar(&gf.step, "step", 10, "spacing between points (lattice, diagonal)")
	f.Int64Var(&gf.seed, "seed", 1, "random seed (random)")
	f.StringVar(&gf.origin, "origin", "0,0", "offset added to every point, as x,y")
	f.BoolVar(&gf.unique, "unique", false, "reject duplicate points (random)")
	return cmd
}

func (gf generateFlags) build() ([]geom.Coordinate, error) {
	origin, err := pointio.ParseRecord(gf.origin)
	if err != nil {
		return nil, fmt.Errorf("--origin: %w", err)
	}
	opts := []builder.BuilderOption{builder.WithOrigin(origin)}

	switch gf.kind {
	case kindRandom:
		opts = append(opts, builder.WithSeed(gf.seed))
		if gf.unique {
			opts = append(opts, builder.WithUnique())
		}
		return builder.RandomPoints(gf.n, gf.width, gf.height, opts...)
	case kindLattice:
		return builder.Lattice(gf.cols, gf.rows, gf.step, opts...)
	case kindDiagonal:
		return builder.Diagonal(gf.n, gf.step, opts...)
	default:
		return nil, fmt.Errorf("unknown --kind %q (want %s, %s or %s)", gf.kind, kindRandom, kindLattice, kindDiagonal)
	}
}
