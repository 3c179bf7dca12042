package geom

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates that a bounding box was requested for an empty
// point set; there is no well-defined box in that case.
var ErrEmptyInput = errors.New("geom: point set is empty")

// ErrBoxTooLarge indicates a box whose width, height, cell count or largest
// inner distance does not fit the integer types used to sweep it.
var ErrBoxTooLarge = errors.New("geom: bounding box too large")

// Coordinate is an immutable (X, Y) pair on the integer plane.
// Input points use non-negative coordinates; padded boxes may extend below 0.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates by X, then by Y.
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Distance is a non-negative Manhattan distance.
type Distance int

// Box is an inclusive axis-aligned rectangle. Min holds the smallest X and Y,
// Max the largest. A Box built by Bounds always satisfies Valid.
type Box struct {
	Min, Max Coordinate
}
