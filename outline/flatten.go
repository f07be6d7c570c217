package outline

import (
	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
)

// flattenTolerance is the squared flatness tolerance, in pixel space,
// used by recursive Bezier subdivision below. Fixed rather than derived,
// matching the tuning value carried over from the reference renderer this
// package's flattening is grounded on.
const flattenTolerance = 0.01

// contourBuilder accumulates flattened points for one contour, then
// closes it into segments.
type contourBuilder struct {
	points []geometry.Point
}

func (b *contourBuilder) addPoint(p geometry.Point) {
	if n := len(b.points); n > 0 && b.points[n-1] == p {
		return
	}
	b.points = append(b.points, p)
}

func (b *contourBuilder) addLine(end geometry.Point) {
	b.addPoint(end)
}

// addQuadraticBezier recursively subdivides a quadratic Bezier curve via
// de Casteljau midpoint halving until the control-polygon distance from
// the chord falls under flattenTolerance, then appends the endpoint.
func (b *contourBuilder) addQuadraticBezier(start, ctrl, end geometry.Point) {
	mid1 := start.Midpoint(ctrl)
	mid2 := ctrl.Midpoint(end)
	mid := mid1.Midpoint(mid2)

	dx := start.X + end.X - ctrl.X*2
	dy := start.Y + end.Y - ctrl.Y*2
	distSq := dx*dx + dy*dy

	if distSq <= flattenTolerance {
		b.addPoint(end)
		return
	}
	b.addQuadraticBezier(start, mid1, mid)
	b.addQuadraticBezier(mid, mid2, end)
}

// addCubicBezier recursively subdivides a cubic Bezier curve via de
// Casteljau midpoint halving, same tolerance criterion as the quadratic
// case but evaluated against both control points.
func (b *contourBuilder) addCubicBezier(start, c1, c2, end geometry.Point) {
	p01 := start.Midpoint(c1)
	p12 := c1.Midpoint(c2)
	p23 := c2.Midpoint(end)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	mid := p012.Midpoint(p123)

	dx := (c2.X + c1.X) - (start.X + end.X)
	dy := (c2.Y + c1.Y) - (start.Y + end.Y)
	distSq := dx*dx + dy*dy

	if distSq <= flattenTolerance {
		b.addPoint(end)
		return
	}
	b.addCubicBezier(start, p01, p012, mid)
	b.addCubicBezier(mid, p123, p23, end)
}

// contour closes the accumulated points into a geometry.Contour, or
// returns false if fewer than 2 distinct points were collected (a
// single-point contour contributes nothing per the component design).
func (b *contourBuilder) contour() (geometry.Contour, bool) {
	if len(b.points) < 2 {
		return geometry.Contour{}, false
	}
	return geometry.NewContourFromPoints(b.points), true
}
