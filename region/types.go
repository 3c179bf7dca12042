package region

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/lvlarea/geom"
)

var (
	// ErrNoFiniteRegion indicates that every owning point's region touches the
	// bounding-box perimeter, so no finite area exists.
	ErrNoFiniteRegion = errors.New("region: no finite region")

	// ErrNoLabels indicates that the per-cell ownership grid was not retained;
	// sweep with WithLabels to keep it.
	ErrNoLabels = errors.New("region: ownership labels were not recorded")
)

// Option configures optional behavior of Sweep.
type Option func(*Options)

// Options holds configurable parameters for a sweep.
type Options struct {
	// Ctx allows cancellation; checked once per swept row.
	Ctx context.Context

	// Workers is the number of goroutines the rows are partitioned across.
	// Never more than the number of rows are started.
	Workers int

	// Padding grows the bounding box by this many cells on each side before
	// sweeping. 0 evaluates exactly the box spanned by the input points.
	Padding int

	// KeepLabels retains the owner of every cell for Analysis.Grid.
	KeepLabels bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - a single worker
//   - no padding
//   - labels discarded
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    1,
		Padding:    0,
		KeepLabels: false,
	}
}

// WithContext returns an Option that sets the Context for the sweep.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that partitions rows across n workers.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("region: WithWorkers(n < 1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithPadding returns an Option that grows the bounding box by n cells on
// every side before the sweep. Panics if n < 0.
func WithPadding(n int) Option {
	if n < 0 {
		panic("region: WithPadding(n < 0)")
	}
	return func(o *Options) {
		o.Padding = n
	}
}

// WithLabels returns an Option that keeps the owner of every swept cell.
func WithLabels() Option {
	return func(o *Options) {
		o.KeepLabels = true
	}
}

// Tally maps an owning point to the number of cells it owns.
// Counts only ever grow; merging sums matching keys.
type Tally map[geom.Coordinate]uint64

// Add credits owner with n cells.
func (t Tally) Add(owner geom.Coordinate, n uint64) {
	t[owner] += n
}

// Merge sums every count of o into t. Merging is commutative and associative,
// so partial tallies can be combined in any order.
func (t Tally) Merge(o Tally) {
	for owner, n := range o {
		t[owner] += n
	}
}

// Total returns the sum of all counts.
func (t Tally) Total() uint64 {
	var sum uint64
	for _, n := range t {
		sum += n
	}
	return sum
}

// Max returns the owner with the largest count. Equal counts resolve to the
// smallest owner by (X, Y) so the result is stable. ok is false for an empty
// tally.
func (t Tally) Max() (owner geom.Coordinate, area uint64, ok bool) {
	for c, n := range t {
		if !ok || n > area || (n == area && c.Less(owner)) {
			owner, area, ok = c, n, true
		}
	}
	return owner, area, ok
}

// Owners returns the tally keys sorted by (X, Y).
func (t Tally) Owners() []geom.Coordinate {
	out := make([]geom.Coordinate, 0, len(t))
	for c := range t {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
