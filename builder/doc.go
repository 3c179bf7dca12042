// Package builder provides reusable functional-options style constructors
// for deterministic point sets: the fixtures that drive region tests,
// benchmarks and the `lvlarea generate` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, origin and uniqueness policy.
//   - Constructors (each returns []geom.Coordinate):
//     – RandomPoints:   n points drawn uniformly from a w×h window.
//     – Lattice:        cols×rows points spaced step apart.
//     – Diagonal:       n points along the main diagonal, step apart.
//   - Validation helpers:
//     – validateMin:    ensure integer ≥ minimum.
//
// Guarantees:
//
//   - Determinism: the same options and seed always yield the same points,
//     in the same order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter problems surface as wrapped sentinel errors
//     (errors.Is(err, ErrTooFewPoints) etc.), never as panics.
//   - All coordinates are non-negative once the origin is applied.
//
// Complexity:
//
//   - RandomPoints: O(n) expected (O(n·retries) with WithUnique on crowded windows).
//   - Lattice:      O(cols·rows).
//   - Diagonal:     O(n).
package builder
