package region

import (
	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/gridgraph"
)

// Analysis is the outcome of one Sweep. It is read-only once returned.
type Analysis struct {
	// Points is the swept point set, in input order.
	Points []geom.Coordinate

	// Box is the evaluated grid, padding included.
	Box geom.Box

	// Owned counts the cells of every owner, infinite owners included.
	Owned Tally

	// Infinite holds the owners that own at least one perimeter cell.
	Infinite map[geom.Coordinate]struct{}

	// TieCells counts cells equidistant from two or more points.
	TieCells uint64

	// Cells is the number of cells in Box.
	Cells uint64

	labels [][]int
}

// IsInfinite reports whether owner reaches the perimeter of the box.
func (a *Analysis) IsInfinite(owner geom.Coordinate) bool {
	_, ok := a.Infinite[owner]
	return ok
}

// Finite returns the tally with every infinite owner removed.
func (a *Analysis) Finite() Tally {
	out := make(Tally, len(a.Owned))
	for owner, n := range a.Owned {
		if !a.IsInfinite(owner) {
			out[owner] = n
		}
	}
	return out
}

// InfiniteCells is the number of cells credited to infinite owners.
func (a *Analysis) InfiniteCells() uint64 {
	var sum uint64
	for owner := range a.Infinite {
		sum += a.Owned[owner]
	}
	return sum
}

// Largest returns the finite owner with the most cells. ok is false when no
// finite region exists.
func (a *Analysis) Largest() (owner geom.Coordinate, area uint64, ok bool) {
	return a.Finite().Max()
}

// Grid returns the ownership labels as a GridGraph: cell (x, y) of the grid
// is box cell (Box.Min.X+x, Box.Min.Y+y) and its value is the index of the
// owning point in Points, or gridgraph.Unowned for a tie.
// Returns ErrNoLabels unless the sweep ran WithLabels.
func (a *Analysis) Grid() (*gridgraph.GridGraph, error) {
	if a.labels == nil {
		return nil, ErrNoLabels
	}
	return gridgraph.NewGridGraph(a.labels, gridgraph.DefaultGridOptions())
}

// Owner returns the point owning cell c, as recorded by a sweep WithLabels.
// ok is false for ties, cells outside the box or when labels were not kept.
func (a *Analysis) Owner(c geom.Coordinate) (owner geom.Coordinate, ok bool) {
	if a.labels == nil || !a.Box.Contains(c) {
		return geom.Coordinate{}, false
	}
	idx := a.labels[c.Y-a.Box.Min.Y][c.X-a.Box.Min.X]
	if idx == gridgraph.Unowned {
		return geom.Coordinate{}, false
	}
	return a.Points[idx], true
}
