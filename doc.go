// Package lvlarea finds the largest finite region of a point set on the
// integer plane, where every cell belongs to its uniquely nearest point
// under the Manhattan (taxicab) metric.
//
// 🚀 What is lvlarea?
//
//	A small, concurrent library plus a command line that brings together:
//		• Geometry: coordinates, Manhattan distance, inclusive bounding boxes
//		• Ownership: nearest-owner resolution with ties left unowned
//		• Sweep: parallel row-range evaluation with per-worker tallies
//		• Classification: perimeter-touching (infinite) vs. finite regions
//		• Surfaces: solve, render, view, generate and an HTTP API
//
// ✨ Why lvlarea?
//
//   - Deterministic answers: equal largest areas resolve to the smallest point
//   - No locks on the hot path: workers own their partial tallies
//   - Cancellable sweeps through context
//
// Layout:
//
//	geom/        Coordinate, Distance, Box and their helpers
//	region/      Resolve, Sweep, Analysis (Finite, Largest), options
//	gridgraph/   ownership labels as a grid graph: regions & components
//	builder/     deterministic point-set fixtures (random, lattice, diagonal)
//	internal/    config, logging, observability, solver, server, view, cli
//	cmd/lvlarea  the binary
//
// Quick ASCII example (points A..F, '.' = tie, upper case = the point):
//
//	Aaaa.ccc
//	aaddeccc
//	adddeccC
//	.dDdeecc
//	b.deEeec
//	Bb.eeee.
//	bb.eeeff
//	bb.eefff
//	bb.ffffF
//
//	D and E are finite; E is the largest with 17 cells.
//
//	go install github.com/katalvlaran/lvlarea/cmd/lvlarea@latest
package lvlarea
