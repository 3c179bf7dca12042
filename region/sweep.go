package region

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/gridgraph"
)

// MaxLabelCells caps the box area for which WithLabels keeps a label grid.
const MaxLabelCells = 1 << 28

// partial is the private accumulator of one worker. Workers never share a
// partial; Sweep reduces them after every worker has finished.
type partial struct {
	owned Tally
	edge  map[geom.Coordinate]struct{}
	ties  uint64
	err   error
}

// Sweep evaluates every cell of the (optionally padded) inclusive bounding
// box of points, crediting each cell to its unique nearest point.
//
// Behavior:
//  1. Derive the bounding box; fail with geom.ErrEmptyInput on no points.
//  2. Split the box rows into contiguous ranges, one per worker.
//  3. Each worker resolves its cells into a private partial: owned counts,
//     tie count and the owners seen on the box perimeter.
//  4. Sum the partials into the returned Analysis.
//
// The input slice is copied; later changes to points do not affect the result.
// Boxes whose size is not representable fail with geom.ErrBoxTooLarge, as do
// label grids over MaxLabelCells cells.
// Complexity: O(P×W×H) time.
func Sweep(points []geom.Coordinate, opts ...Option) (*Analysis, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	box, err := geom.Bounds(points)
	if err != nil {
		return nil, err
	}
	if o.Padding > 0 {
		if box, err = box.Pad(o.Padding); err != nil {
			return nil, err
		}
	}
	width, height, cells, err := box.Size()
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Coordinate, len(points))
	copy(pts, points)

	var labels [][]int
	if o.KeepLabels {
		if cells > MaxLabelCells {
			return nil, fmt.Errorf("region: %d cells exceed the label limit of %d: %w",
				cells, uint64(MaxLabelCells), geom.ErrBoxTooLarge)
		}
		labels = make([][]int, height)
		for y := range labels {
			labels[y] = make([]int, width)
		}
	}

	workers := o.Workers
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	// Rows are split as evenly as possible; the first height%workers
	// workers take one extra row. Offsets never exceed height.
	base, extra := height/workers, height%workers
	parts := make([]partial, workers)
	var wg sync.WaitGroup
	lo := 0
	for w := 0; w < workers; w++ {
		n := base
		if w < extra {
			n++
		}
		wg.Add(1)
		go func(p *partial, lo, hi int) {
			defer wg.Done()
			*p = sweepRows(&o, pts, box, width, lo, hi, labels)
		}(&parts[w], lo, lo+n)
		lo += n
	}
	wg.Wait()

	a := &Analysis{
		Points:   pts,
		Box:      box,
		Owned:    make(Tally),
		Infinite: make(map[geom.Coordinate]struct{}),
		Cells:    cells,
		labels:   labels,
	}
	for i := range parts {
		if parts[i].err != nil {
			return nil, parts[i].err
		}
		a.Owned.Merge(parts[i].owned)
		for c := range parts[i].edge {
			a.Infinite[c] = struct{}{}
		}
		a.TieCells += parts[i].ties
	}

	return a, nil
}

// sweepRows resolves the row offsets [lo, hi) of box, each width cells
// wide. Rows of labels in that range belong to this call alone.
func sweepRows(o *Options, pts []geom.Coordinate, box geom.Box, width, lo, hi int, labels [][]int) partial {
	p := partial{
		owned: make(Tally),
		edge:  make(map[geom.Coordinate]struct{}),
	}
	for dy := lo; dy < hi; dy++ {
		if err := o.Ctx.Err(); err != nil {
			p.err = err
			return p
		}
		var row []int
		if labels != nil {
			row = labels[dy]
		}
		y := box.Min.Y + dy
		for dx := 0; dx < width; dx++ {
			cell := geom.Coordinate{X: box.Min.X + dx, Y: y}
			idx, ok := resolveIndex(cell, pts)
			if row != nil {
				row[dx] = gridgraph.Unowned
			}
			if !ok {
				p.ties++
				continue
			}
			owner := pts[idx]
			p.owned[owner]++
			if box.OnPerimeter(cell) {
				p.edge[owner] = struct{}{}
			}
			if row != nil {
				row[dx] = idx
			}
		}
	}
	return p
}

// LargestFiniteArea sweeps points and returns the size of the largest region
// that does not touch the bounding-box perimeter.
// Returns geom.ErrEmptyInput for an empty point set and ErrNoFiniteRegion
// when every region is infinite.
func LargestFiniteArea(points []geom.Coordinate, opts ...Option) (uint64, error) {
	a, err := Sweep(points, opts...)
	if err != nil {
		return 0, err
	}
	_, area, ok := a.Largest()
	if !ok {
		return 0, ErrNoFiniteRegion
	}
	return area, nil
}
