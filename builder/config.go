// Package: lvlarea/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil     (RandomPoints requires WithSeed/WithRand)
//   • origin = (0,0)
//   • unique = false

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlarea/geom"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Offset added to every generated point.
	origin geom.Coordinate
	// Reject duplicate coordinates in RandomPoints.
	unique bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// at translates a local coordinate by the configured origin.
func (c builderConfig) at(x, y int) geom.Coordinate {
	return geom.Coordinate{X: c.origin.X + x, Y: c.origin.Y + y}
}
