// Package region finds, for a set of labelled points on the integer plane,
// the largest area that is closest to exactly one point under the Manhattan
// metric and does not run off the edge of the evaluated grid.
//
// What:
//
//   - Resolve: the uniquely nearest point for one cell, or no owner when two
//     or more points tie for the minimum distance. Ties are never broken in
//     favour of the first point found.
//   - Sweep: evaluates every cell of the inclusive bounding box, tallies the
//     cells each point owns, counts tie cells and records which owners reach
//     the box perimeter. Rows are partitioned across workers, each with its
//     own partial tally; partials are summed at the end.
//   - Analysis.Finite / Analysis.Largest: drop perimeter-touching (infinite)
//     owners and pick the biggest remaining region.
//
// Why:
//
//   - Facility catchment on a street grid, territory games, nearest-site
//     assignment where equidistant cells must stay neutral.
//
// Known limitation:
//
//	A region that touches the perimeter of the box spanned by the extreme
//	input points is treated as infinite. That is a heuristic: a small,
//	finite region can still touch an unpadded edge. WithPadding grows the
//	box before the sweep for callers who want a tighter classification;
//	the default keeps the box unpadded.
//
// Complexity:
//
//   - Resolve: O(P) for P points.
//   - Sweep:   O(P×W×H) time, O(P) memory per worker (+ O(W×H) with WithLabels).
//
// Errors:
//
//   - geom.ErrEmptyInput: no points were supplied.
//   - ErrNoFiniteRegion:  every owner touches the perimeter (LargestFiniteArea).
//   - ErrNoLabels:        Grid requested without WithLabels.
//   - geom.ErrBoxTooLarge: the (padded) box size does not fit the integer
//     types, or a label grid would exceed MaxLabelCells.
//   - context errors:     the sweep was cancelled through WithContext.
package region
