// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/lvlarea.
package gridgraph

// Unowned labels a cell that no single owner claims (a tie cell).
const Unowned = -1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored label.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Label at (X, Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4, the adjacency
// under which Manhattan regions are contiguous.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats a 2D label grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the label.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	neighborOffsets [][2]int
}
