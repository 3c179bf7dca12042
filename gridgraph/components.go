package gridgraph

// ConnectedComponents finds all contiguous regions of owned cells
// (CellValues[y][x] >= 0) whose neighbours carry the same label, according
// to gg.Conn connectivity. Returns a slice of components; each component is
// a slice of cell-indices (row-major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			label := gg.CellValues[y][x]
			if label == Unowned {
				continue // tie
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			seen[i0] = true
			comps = append(comps, gg.flood(i0, label, seen))
		}
	}
	return comps
}

// flood collects every cell reachable from start through cells labelled label.
func (gg *GridGraph) flood(start, label int, seen []bool) []int {
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] != label {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

// Regions groups every owned cell index by its label, ignoring adjacency.
// Complexity: O(W·H).
func (gg *GridGraph) Regions() map[int][]int {
	out := make(map[int][]int)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			label := gg.CellValues[y][x]
			if label == Unowned {
				continue
			}
			out[label] = append(out[label], gg.index(x, y))
		}
	}
	return out
}

// RegionOf returns the row-major indices of every cell carrying label.
// Returns ErrUnknownLabel when no cell has it.
func (gg *GridGraph) RegionOf(label int) ([]int, error) {
	var cells []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] == label && label != Unowned {
				cells = append(cells, gg.index(x, y))
			}
		}
	}
	if len(cells) == 0 {
		return nil, ErrUnknownLabel
	}
	return cells, nil
}

// TouchesEdge reports whether any of the given cell indices lies on the
// grid's outer ring.
func (gg *GridGraph) TouchesEdge(cells []int) bool {
	for _, i := range cells {
		x, y := gg.Coordinate(i)
		if gg.OnEdge(x, y) {
			return true
		}
	}
	return false
}
