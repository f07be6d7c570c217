// Package geometry provides the low-level Point/Segment/Contour/BBox
// primitives shared by outline flattening and SDF rendering.
package geometry

import "math"

// Point is a location in font-unit or pixel space, depending on context.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point from x, y coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// SquaredDistanceTo returns the squared Euclidean distance to other,
// avoiding a square root when only comparisons are needed.
func (p Point) SquaredDistanceTo(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance to other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(p.SquaredDistanceTo(other))
}

// Translated returns p shifted by offset.
func (p Point) Translated(offset Point) Point {
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Scaled returns p scaled uniformly by factor.
func (p Point) Scaled(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}
