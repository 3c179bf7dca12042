// Package: lvlarea/builder
//
// impl_points.go: point-set constructors.
//
// Determinism:
//   • Lattice and Diagonal are pure functions of their arguments.
//   • RandomPoints draws x then y for each point from cfg.rng, in order.

package builder

import (
	"github.com/katalvlaran/lvlarea/geom"
)

// Method tags and minima (no magic literals).
const (
	methodRandomPoints = "RandomPoints"
	methodLattice      = "Lattice"
	methodDiagonal     = "Diagonal"

	minPoints = 1
	minSize   = 1
)

// RandomPoints returns n points drawn uniformly from the window
// [0,width)×[0,height), shifted by the configured origin.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewPoints); width, height ≥ 1 (else ErrBadSize).
//   • Requires WithSeed or WithRand (else ErrNeedRandSource).
//   • WithUnique: fails with ErrConstructFailed if n > width·height.
func RandomPoints(n, width, height int, opts ...BuilderOption) ([]geom.Coordinate, error) {
	if err := validateMin(methodRandomPoints, "n", n, minPoints, ErrTooFewPoints); err != nil {
		return nil, err
	}
	if err := validateMin(methodRandomPoints, "width", width, minSize, ErrBadSize); err != nil {
		return nil, err
	}
	if err := validateMin(methodRandomPoints, "height", height, minSize, ErrBadSize); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomPoints, ErrNeedRandSource, "no rng configured")
	}
	if cfg.unique && n > width*height {
		return nil, builderErrorf(methodRandomPoints, ErrConstructFailed,
			"%d unique points do not fit a %d×%d window", n, width, height)
	}

	out := make([]geom.Coordinate, 0, n)
	seen := make(map[geom.Coordinate]struct{}, n)
	for len(out) < n {
		c := cfg.at(cfg.rng.Intn(width), cfg.rng.Intn(height))
		if cfg.unique {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
		}
		out = append(out, c)
	}
	return out, nil
}

// Lattice returns cols×rows points on a regular grid, step cells apart,
// in row-major order starting at the origin.
//
// Contract: cols, rows ≥ 1 (else ErrTooFewPoints); step ≥ 1 (else ErrBadSize).
func Lattice(cols, rows, step int, opts ...BuilderOption) ([]geom.Coordinate, error) {
	if err := validateMin(methodLattice, "cols", cols, minPoints, ErrTooFewPoints); err != nil {
		return nil, err
	}
	if err := validateMin(methodLattice, "rows", rows, minPoints, ErrTooFewPoints); err != nil {
		return nil, err
	}
	if err := validateMin(methodLattice, "step", step, minSize, ErrBadSize); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	out := make([]geom.Coordinate, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, cfg.at(c*step, r*step))
		}
	}
	return out, nil
}

// Diagonal returns n points (i·step, i·step) for i in [0,n).
//
// Contract: n ≥ 1 (else ErrTooFewPoints); step ≥ 1 (else ErrBadSize).
func Diagonal(n, step int, opts ...BuilderOption) ([]geom.Coordinate, error) {
	if err := validateMin(methodDiagonal, "n", n, minPoints, ErrTooFewPoints); err != nil {
		return nil, err
	}
	if err := validateMin(methodDiagonal, "step", step, minSize, ErrBadSize); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	out := make([]geom.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, cfg.at(i*step, i*step))
	}
	return out, nil
}
