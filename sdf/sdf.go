// Package sdf renders a flattened glyph outline into an 8-bit signed
// distance field bitmap, padded and encoded per the Mapbox glyph format.
package sdf

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/npillmayer/schuko/tracing"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
	"github.com/versatiles-org/versatiles-glyphs-go/outline"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphgen.sdf")
}

const (
	// Buffer is the padding, in pixels, added on every side of a glyph
	// bitmap so that a neighboring glyph's silhouette does not bleed
	// into the sampled SDF radius.
	Buffer = 3
	// Radius is half the width of the distance band encoded into a
	// byte, in pixels.
	Radius = 8.0
	// Cutoff positions the outline edge within the encoded byte range.
	Cutoff = 0.25
)

// Bitmap is a rendered glyph tile: a rectangular 8-bit SDF buffer plus
// the metrics needed to place it relative to the text baseline.
type Bitmap struct {
	Width, Height int
	Left, Top     int
	Advance       int
	Data          []byte // len == Width*Height, row-major, top-down. nil for empty glyphs.
}

// segmentBox adapts a geometry.Segment to rtreego.Spatial so it can be
// bulk-loaded into a spatial index keyed by AABB.
type segmentBox struct {
	seg geometry.Segment
}

func (s segmentBox) Bounds() rtreego.Rect {
	b := s.seg.BBox()
	width := math.Max(b.MaxX-b.MinX, minRectSpan)
	height := math.Max(b.MaxY-b.MinY, minRectSpan)
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})
	return rect
}

// minRectSpan works around rtreego rejecting zero-length rectangle
// sides (axis-aligned, e.g. purely horizontal or vertical segments).
const minRectSpan = 1e-9

// Render computes the SDF bitmap for a flattened outline. It returns a
// Bitmap with a nil Data buffer (width=height=0) for an empty glyph,
// still carrying Advance, per the whitespace-glyph invariant.
func Render(o *outline.Outline) *Bitmap {
	advance := int(math.Round(o.Advance))
	if o.IsEmpty() || o.BBox.IsEmpty() {
		return &Bitmap{Advance: advance}
	}

	rounded := o.BBox.Rounded()
	xmin, ymin := int(rounded.MinX), int(rounded.MinY)
	xmax, ymax := int(rounded.MaxX), int(rounded.MaxY)
	if xmax <= xmin || ymax <= ymin {
		return &Bitmap{Advance: advance}
	}

	left := xmin - Buffer
	top := ymax + Buffer
	width := (xmax - xmin) + 2*Buffer
	height := (ymax - ymin) + 2*Buffer

	segments := collectSegments(o.Contours)
	if len(segments) == 0 {
		return &Bitmap{Advance: advance}
	}

	tree := buildIndex(segments)
	data := make([]byte, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			q := geometry.Point{
				X: float64(left+x) + 0.5,
				Y: float64(top-y) - 0.5,
			}
			d := nearestDistance(tree, q)
			if windingNonZero(segments, q) {
				d = -d
			}
			row := y // row 0 already corresponds to the top (ymax) scanline
			data[row*width+x] = encode(d)
		}
	}

	tracer().Debugf("rendered glyph bitmap %dx%d, %d segments", width, height, len(segments))

	return &Bitmap{
		Width: width, Height: height,
		// Left/Top are the glyph placement metrics the format expects
		// (bearing and cap-height offset from the baseline), not the
		// buffer-expanded sampling origin used above.
		Left: xmin, Top: ymax - int(outline.TargetSize),
		Advance: advance,
		Data:    data,
	}
}

// encode maps a signed pixel distance (positive outside, negative
// inside) to a clamped byte. The value rises toward the interior, so
// the outline edge (d=0) lands near byte 192, comfortably inside the
// "edge" band the mipmap-free renderer checks for; a pixel Radius
// pixels outside saturates to 0 and one Radius pixels inside saturates
// to 255.
func encode(d float64) byte {
	v := 255 - (256*d/Radius + 256*Cutoff)
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func collectSegments(contours []geometry.Contour) []geometry.Segment {
	var out []geometry.Segment
	for _, c := range contours {
		for _, s := range c.Segments {
			if s.IsDegenerate() {
				continue
			}
			out = append(out, s)
		}
	}
	return out
}

func buildIndex(segments []geometry.Segment) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 4, 16)
	for _, s := range segments {
		tree.Insert(segmentBox{seg: s})
	}
	return tree
}

// nearestDistance finds the closest segment to q among candidates whose
// bounding boxes intersect a Radius-sized envelope around q, matching
// the reference renderer's bounded spatial query. If no candidate
// intersects the envelope, it returns +Inf; Render then encodes the
// pixel as fully outside (0), or as fully inside (255) when the winding
// test places q inside the outline.
func nearestDistance(tree *rtreego.Rtree, q geometry.Point) float64 {
	envelope, err := rtreego.NewRect(
		rtreego.Point{q.X - Radius, q.Y - Radius},
		[]float64{2 * Radius, 2 * Radius},
	)
	if err != nil {
		return math.Inf(1)
	}
	candidates := tree.SearchIntersect(envelope)
	best := math.Inf(1)
	for _, c := range candidates {
		sb := c.(segmentBox)
		if d := sb.seg.SquaredDistanceToPoint(q); d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return best
	}
	return math.Sqrt(best)
}

// windingNonZero classifies q as inside the outline using the non-zero
// winding rule over every segment (not just spatial-index candidates,
// since sign classification needs the full contour set).
func windingNonZero(segments []geometry.Segment, q geometry.Point) bool {
	winding := 0
	for _, s := range segments {
		winding += s.WindingContribution(q)
	}
	return winding != 0
}
