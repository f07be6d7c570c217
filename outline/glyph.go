package outline

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
)

// Outline is a glyph's flattened vector shape, in pixel space at the
// size it was requested for, plus the metrics needed to place and pad
// its eventual bitmap.
type Outline struct {
	Contours []geometry.Contour
	BBox     geometry.BBox
	Advance  float64 // pixels
}

// IsEmpty reports whether the outline has no drawable contours (a
// whitespace glyph), in which case only Advance is meaningful.
func (o *Outline) IsEmpty() bool {
	return len(o.Contours) == 0
}

// GlyphOutline returns the flattened outline for r at the given pixel
// size, or ok=false if the font has no glyph for r. A glyph present in
// the font but with no contours (whitespace) is returned with
// IsEmpty()==true and a valid Advance.
func (f *Font) GlyphOutline(r rune, size float64) (out *Outline, ok bool, err error) {
	var buf sfnt.Buffer
	gid, err := f.SFNT.GlyphIndex(&buf, r)
	if err != nil {
		return nil, false, fmt.Errorf("glyph index lookup for %q: %w", r, err)
	}
	if gid == 0 {
		return nil, false, nil
	}

	scale := size / f.UnitsPerEm
	ppem := ppemForUnitScale(f.UnitsPerEm)

	advanceUnits, err := f.SFNT.GlyphAdvance(&buf, gid, ppem, 0)
	if err != nil {
		return nil, false, fmt.Errorf("advance width for glyph %d: %w", gid, err)
	}
	advancePx := float64(advanceUnits) / 64 * scale

	segs, err := f.SFNT.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		// A glyph index that resolves but fails to load its outline is
		// treated as an empty (whitespace) glyph, consistent with §4.1's
		// "advance is always available, including for empty glyphs".
		return &Outline{Advance: advancePx}, true, nil
	}

	contours := flattenSegments(segs, scale)
	bbox := geometry.EmptyBBox()
	for _, c := range contours {
		bbox = bbox.IncludeBBox(c.BBox())
	}
	return &Outline{Contours: contours, BBox: bbox, Advance: advancePx}, true, nil
}

// CoveredCodePoints scans the Basic Multilingual Plane and returns every
// code point the font's cmap maps to a real glyph (excluding .notdef).
func (f *Font) CoveredCodePoints() []rune {
	var buf sfnt.Buffer
	covered := make([]rune, 0, 512)
	for cp := rune(0); cp <= 0xFFFF; cp++ {
		gid, err := f.SFNT.GlyphIndex(&buf, cp)
		if err != nil || gid == 0 {
			continue
		}
		covered = append(covered, cp)
	}
	return covered
}

// flattenSegments walks an sfnt.Segments path (move/line/quad/cube ops)
// and produces flattened, pixel-scaled contours.
func flattenSegments(segs sfnt.Segments, scale float64) []geometry.Contour {
	var contours []geometry.Contour
	var cur *contourBuilder
	var start, prev geometry.Point

	flush := func() {
		if cur == nil {
			return
		}
		if c, ok := cur.contour(); ok {
			contours = append(contours, c)
		}
		cur = nil
	}

	// sfnt reports outline coordinates y-down (ascenders at negative Y);
	// the rest of this package works in y-up font space, so flip once
	// here rather than carrying the inversion through every consumer.
	pointAt := func(fp fixed.Point26_6) geometry.Point {
		return geometry.Point{X: float64(fp.X) / 64 * scale, Y: -float64(fp.Y) / 64 * scale}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			cur = &contourBuilder{}
			start = pointAt(seg.Args[0])
			prev = start
			cur.addPoint(start)
		case sfnt.SegmentOpLineTo:
			if cur == nil {
				continue
			}
			p := pointAt(seg.Args[0])
			cur.addLine(p)
			prev = p
		case sfnt.SegmentOpQuadTo:
			if cur == nil {
				continue
			}
			ctrl := pointAt(seg.Args[0])
			end := pointAt(seg.Args[1])
			cur.addQuadraticBezier(prev, ctrl, end)
			prev = end
		case sfnt.SegmentOpCubeTo:
			if cur == nil {
				continue
			}
			c1 := pointAt(seg.Args[0])
			c2 := pointAt(seg.Args[1])
			end := pointAt(seg.Args[2])
			cur.addCubicBezier(prev, c1, c2, end)
			prev = end
		}
	}
	flush()
	return contours
}
