// Package geometry provides the planar primitives used by conflict detection.
//
// All distances are Euclidean in the XY plane. Functions are pure and never
// fail; NaN and Inf inputs propagate per IEEE 754 semantics, so callers are
// expected to validate coordinates before they get here.
package geometry

import (
	"fmt"
	"math"
)

// Point2D is an immutable (x, y) coordinate.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a point from its coordinates.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point2D) Distance(q Point2D) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point2D) Dot(q Point2D) float64 {
	return p.X*q.X + p.Y*q.Y
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String formats the point the way waypoints are written in scenario files.
func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// lerp returns the point a fraction t of the way from a to b.
func lerp(a, b Point2D, t float64) Point2D {
	return a.Add(b.Sub(a).Scale(t))
}

// clamp01 limits t to [0, 1]. NaN passes through unchanged.
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
