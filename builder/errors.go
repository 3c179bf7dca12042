// Package: lvlarea/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a count parameter (n, cols, rows) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrBadSize indicates an invalid window or spacing (width, height, step < 1).
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that WithUnique could not be honoured: the
// window holds fewer distinct cells than points requested.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
