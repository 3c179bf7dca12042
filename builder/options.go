// Package: lvlarea/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlarea/geom"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before points are generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin shifts every generated point by origin.
// Panics on a negative origin; generated points must stay non-negative.
func WithOrigin(origin geom.Coordinate) BuilderOption {
	if origin.X < 0 || origin.Y < 0 {
		panic("builder: WithOrigin(negative)")
	}
	return func(c *builderConfig) {
		c.origin = origin
	}
}

// WithUnique makes RandomPoints reject duplicate coordinates.
func WithUnique() BuilderOption {
	return func(c *builderConfig) {
		c.unique = true
	}
}
