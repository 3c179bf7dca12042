// Package gridgraph provides utilities to treat a 2D grid of ownership labels
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of equally labelled cells
//   - Grouping cells by label and perimeter tests
//
// Cells labelled Unowned are ties and never belong to a component.
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return wrap(cells, opts), nil
}

// From2D is NewGridGraph with only the connectivity overridden.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// wrap builds a GridGraph around cells without copying. Callers must hand
// over ownership of cells.
func wrap(cells [][]int, opts GridOptions) *GridGraph {
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	return &GridGraph{
		Width:           len(cells[0]),
		Height:          len(cells),
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// OnEdge reports whether (x,y) lies on the outermost ring of the grid.
// Complexity: O(1).
func (gg *GridGraph) OnEdge(x, y int) bool {
	return gg.InBounds(x, y) && (x == 0 || y == 0 || x == gg.Width-1 || y == gg.Height-1)
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Label returns the label stored at (x,y). The caller must check InBounds.
func (gg *GridGraph) Label(x, y int) int {
	return gg.CellValues[y][x]
}

// Cell returns the cell at row-major index idx.
func (gg *GridGraph) Cell(idx int) Cell {
	x, y := gg.Coordinate(idx)
	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
