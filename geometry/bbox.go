package geometry

import "math"

// BBox is an axis-aligned bounding box, used both to describe a glyph's
// pixel extents and as the key inserted into the SDF renderer's spatial
// index over segment AABBs.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBBox returns a bounding box that expands to include the first
// point or box merged into it.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Width returns the non-negative width of the box.
func (b BBox) Width() float64 {
	return math.Max(b.MaxX-b.MinX, 0)
}

// Height returns the non-negative height of the box.
func (b BBox) Height() float64 {
	return math.Max(b.MaxY-b.MinY, 0)
}

// IsEmpty reports whether the box has no positive extent on at least one
// axis, i.e. its max bound does not exceed its min bound there. This
// holds for a box not yet expanded to cover any point, and also for a
// box covering a single point or a purely horizontal or vertical line.
func (b BBox) IsEmpty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// IncludePoint returns a box expanded to cover p.
func (b BBox) IncludePoint(p Point) BBox {
	return BBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// IncludeBBox returns a box expanded to cover other.
func (b BBox) IncludeBBox(other BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Rounded returns the box with all coordinates rounded to the nearest
// integer, as used when converting fractional outline extents to
// discrete pixel bounds.
func (b BBox) Rounded() BBox {
	return BBox{
		MinX: math.Round(b.MinX), MinY: math.Round(b.MinY),
		MaxX: math.Round(b.MaxX), MaxY: math.Round(b.MaxY),
	}
}

// Expanded returns the box grown by margin on every side.
func (b BBox) Expanded(margin float64) BBox {
	return BBox{
		MinX: b.MinX - margin, MinY: b.MinY - margin,
		MaxX: b.MaxX + margin, MaxY: b.MaxY + margin,
	}
}
