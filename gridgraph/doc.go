// Package gridgraph treats a 2D grid of ownership labels as a graph,
// enabling region and component analysis over a swept bounding box.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of labels. A label >= 0
//     names the owner of that cell; Unowned (-1) marks a tie cell.
//   - Identifies connected components of cells sharing the same label.
//   - Groups cells by label (Regions) and tests whether a set of cells
//     reaches the grid edge (TouchesEdge).
//
// Why:
//
//   - Region sanity: a Manhattan nearest-point region is contiguous, so
//     every label should form exactly one 4-connected component.
//   - Rendering: the label grid is what text and terminal views draw.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Regions:             O(W×H),   Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownLabel: no cell carries the requested label.
package gridgraph
