// Package space models bodies for gravitational simulation: a planar
// Location, a Mass carrying location and velocity, and the Locatable
// capability shared by anything with a position.
package space

import (
	"math"
	"strconv"
)

// Location is an immutable point in the plane.
type Location struct {
	x, y float64
}

// NewLocation returns the point (x, y).
func NewLocation(x, y float64) Location { return Location{x: x, y: y} }

// X returns the horizontal coordinate.
func (l Location) X() float64 { return l.x }

// Y returns the vertical coordinate.
func (l Location) Y() float64 { return l.y }

// Distance returns the Euclidean distance between l and other.
func (l Location) Distance(other Location) float64 {
	return math.Hypot(other.x-l.x, other.y-l.y)
}

func (l Location) String() string {
	return "(" + strconv.FormatFloat(l.x, 'g', -1, 64) + ", " + strconv.FormatFloat(l.y, 'g', -1, 64) + ")"
}

// Distance computes the distance between two locatable values.
func Distance(a, b Locatable) float64 {
	return a.Location().Distance(b.Location())
}
