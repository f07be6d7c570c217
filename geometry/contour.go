package geometry

// Contour is a non-empty, closed sequence of segments. Orientation
// (clockwise/counter-clockwise) is implicit in segment direction and
// determines fill via the non-zero winding rule.
type Contour struct {
	Segments []Segment
}

// NewContourFromPoints builds a closed contour from a polyline, adding a
// closing segment back to the first point when the polyline isn't
// already closed.
func NewContourFromPoints(points []Point) Contour {
	if len(points) < 2 {
		return Contour{}
	}
	segs := make([]Segment, 0, len(points))
	for i := 1; i < len(points); i++ {
		segs = append(segs, NewSegment(points[i-1], points[i]))
	}
	if points[len(points)-1] != points[0] {
		segs = append(segs, NewSegment(points[len(points)-1], points[0]))
	}
	return Contour{Segments: segs}
}

// BBox returns the bounding box over all of the contour's endpoints.
func (c Contour) BBox() BBox {
	b := EmptyBBox()
	for _, s := range c.Segments {
		b = b.IncludeBBox(s.BBox())
	}
	return b
}
