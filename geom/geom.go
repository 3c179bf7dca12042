package geom

import (
	"fmt"
	"math"
	"math/bits"
)

// Manhattan returns the grid distance |a.X-b.X| + |a.Y-b.Y|.
// It is symmetric and zero iff a == b.
// Complexity: O(1).
func Manhattan(a, b Coordinate) Distance {
	return Distance(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds returns the minimal inclusive Box containing all points.
// Returns ErrEmptyInput if points is empty and ErrBoxTooLarge if the box
// fails Size.
// Complexity: O(n) time, O(1) memory.
func Bounds(points []Coordinate) (Box, error) {
	if len(points) == 0 {
		return Box{}, ErrEmptyInput
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExpandTo(p)
	}
	if _, _, _, err := b.Size(); err != nil {
		return Box{}, err
	}
	return b, nil
}

// ExpandTo returns a copy of b grown just enough to include c.
func (b Box) ExpandTo(c Coordinate) Box {
	if c.X < b.Min.X {
		b.Min.X = c.X
	}
	if c.Y < b.Min.Y {
		b.Min.Y = c.Y
	}
	if c.X > b.Max.X {
		b.Max.X = c.X
	}
	if c.Y > b.Max.Y {
		b.Max.Y = c.Y
	}
	return b
}

// Pad returns a copy of b grown by n cells on every side.
// Returns ErrBoxTooLarge when a coordinate would overflow or the grown box
// fails Size.
func (b Box) Pad(n int) (Box, error) {
	if n < 0 {
		return Box{}, fmt.Errorf("geom: negative padding %d", n)
	}
	if b.Min.X < math.MinInt+n || b.Min.Y < math.MinInt+n ||
		b.Max.X > math.MaxInt-n || b.Max.Y > math.MaxInt-n {
		return Box{}, fmt.Errorf("geom: padding %s-%s by %d: %w", b.Min, b.Max, n, ErrBoxTooLarge)
	}
	b.Min = Coordinate{X: b.Min.X - n, Y: b.Min.Y - n}
	b.Max = Coordinate{X: b.Max.X + n, Y: b.Max.Y + n}
	if _, _, _, err := b.Size(); err != nil {
		return Box{}, err
	}
	return b, nil
}

// Size returns the width, height and cell count of a valid box.
// It fails with ErrBoxTooLarge when any of them, or the largest Manhattan
// distance between two cells of the box, is not representable.
func (b Box) Size() (width, height int, cells uint64, err error) {
	if !b.Valid() {
		return 0, 0, 0, fmt.Errorf("geom: invalid box %s-%s", b.Min, b.Max)
	}
	w, okW := span(b.Min.X, b.Max.X)
	h, okH := span(b.Min.Y, b.Max.Y)
	// Largest inner distance is (w-1)+(h-1).
	if !okW || !okH || w-1 > math.MaxInt-(h-1) {
		return 0, 0, 0, fmt.Errorf("geom: box %s-%s: %w", b.Min, b.Max, ErrBoxTooLarge)
	}
	hi, lo := bits.Mul64(uint64(w), uint64(h))
	if hi != 0 {
		return 0, 0, 0, fmt.Errorf("geom: box %s-%s: %w", b.Min, b.Max, ErrBoxTooLarge)
	}
	return w, h, lo, nil
}

// span returns hi-lo+1 and whether it fits an int. Requires lo <= hi.
func span(lo, hi int) (int, bool) {
	if lo < 0 && hi > math.MaxInt+lo {
		return 0, false
	}
	d := hi - lo
	if d == math.MaxInt {
		return 0, false
	}
	return d + 1, true
}

// Valid reports whether Min <= Max on both axes.
func (b Box) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// Width is the number of columns covered, edges included.
// It saturates at math.MaxInt when the span overflows.
func (b Box) Width() int {
	w, ok := span(b.Min.X, b.Max.X)
	if !ok {
		return math.MaxInt
	}
	return w
}

// Height is the number of rows covered, edges included.
// It saturates at math.MaxInt when the span overflows.
func (b Box) Height() int {
	h, ok := span(b.Min.Y, b.Max.Y)
	if !ok {
		return math.MaxInt
	}
	return h
}

// Cells is the total number of grid cells inside the box.
// It saturates at math.MaxUint64, so a too-large box never compares below
// a limit.
func (b Box) Cells() uint64 {
	_, _, cells, err := b.Size()
	if err != nil {
		return math.MaxUint64
	}
	return cells
}

// Contains reports whether c lies inside the box, edges included.
func (b Box) Contains(c Coordinate) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

// OnPerimeter reports whether c lies inside the box on one of its four edges.
func (b Box) OnPerimeter(c Coordinate) bool {
	if !b.Contains(c) {
		return false
	}
	return c.X == b.Min.X || c.X == b.Max.X || c.Y == b.Min.Y || c.Y == b.Max.Y
}
