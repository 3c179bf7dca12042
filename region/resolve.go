package region

import "github.com/katalvlaran/lvlarea/geom"

// nearest is the fold accumulator of the owner search: the smallest distance
// seen so far, how many points share it and the index of the first of them.
type nearest struct {
	dist  geom.Distance
	count int
	owner int
}

// step folds the distance of point i into the accumulator.
func (n nearest) step(i int, d geom.Distance) nearest {
	switch {
	case n.count == 0 || d < n.dist:
		return nearest{dist: d, count: 1, owner: i}
	case d == n.dist:
		n.count++
	}
	return n
}

// resolveIndex returns the index of the point strictly closest to cell.
// ok is false when points is empty or the minimum is shared.
func resolveIndex(cell geom.Coordinate, points []geom.Coordinate) (idx int, ok bool) {
	var acc nearest
	for i, p := range points {
		acc = acc.step(i, geom.Manhattan(cell, p))
	}
	if acc.count != 1 {
		return -1, false
	}
	return acc.owner, true
}

// Resolve returns the point uniquely nearest to cell under the Manhattan
// metric. When two or more points share the minimum distance the cell has no
// owner and ok is false; no point is favoured.
// Complexity: O(len(points)).
func Resolve(cell geom.Coordinate, points []geom.Coordinate) (owner geom.Coordinate, ok bool) {
	idx, ok := resolveIndex(cell, points)
	if !ok {
		return geom.Coordinate{}, false
	}
	return points[idx], true
}
