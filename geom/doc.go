// Package geom provides the integer-plane primitives shared by lvlarea:
// a Coordinate value type, the Manhattan metric and an inclusive,
// axis-aligned bounding Box.
//
// What:
//
//   - Coordinate is an (X, Y) pair compared by value. It addresses both an
//     input point and a grid cell.
//   - Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
//   - Bounds derives the minimal Box containing every input point. The box
//     is inclusive on both ends: cells at exactly Min and Max belong to it.
//
// Why:
//
//   - Every region computation in package region starts from the same two
//     facts: how far a cell is from a point, and which cells are in play.
//
// Complexity:
//
//   - Manhattan: O(1).
//   - Bounds:    O(n) time, O(1) memory.
//
// Errors:
//
//   - ErrEmptyInput: Bounds was called with no points.
package geom
