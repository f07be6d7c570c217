package sdf

import (
	"testing"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
	"github.com/versatiles-org/versatiles-glyphs-go/outline"
)

func squareOutline(size float64, advance float64) *outline.Outline {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: size, Y: 0}, {X: size, Y: size}, {X: 0, Y: size}}
	c := geometry.NewContourFromPoints(pts)
	return &outline.Outline{
		Contours: []geometry.Contour{c},
		BBox:     c.BBox(),
		Advance:  advance,
	}
}

// TestRenderSimpleSquare locks the exact byte grid for a small 4x4
// square glyph, hand-derived from the encode formula (Radius=8,
// Cutoff=0.25) and the winding/nearest-segment algorithm, using the
// same square-outline shape the reference renderer's own regression
// test exercises.
func TestRenderSimpleSquare(t *testing.T) {
	o := squareOutline(4, 5)
	bm := Render(o)

	if bm.Width != 10 || bm.Height != 10 {
		t.Fatalf("expected 10x10 bitmap, got %dx%d", bm.Width, bm.Height)
	}
	// Left/Top are placement metrics (bearing, cap-height offset from the
	// baseline), not the buffer-expanded sampling origin: xmin=0,
	// ymax-TargetSize=4-24=-20.
	if bm.Left != 0 || bm.Top != -20 {
		t.Fatalf("expected left=0 top=-20, got left=%d top=%d", bm.Left, bm.Top)
	}
	if len(bm.Data) != bm.Width*bm.Height {
		t.Fatalf("bitmap data length %d != width*height %d", len(bm.Data), bm.Width*bm.Height)
	}

	expected := [][]byte{
		{78, 98, 109, 111, 111, 111, 111, 109, 98, 78},
		{98, 123, 140, 143, 143, 143, 143, 140, 123, 98},
		{109, 140, 168, 175, 175, 175, 175, 168, 140, 109},
		{111, 143, 175, 207, 207, 207, 207, 175, 143, 111},
		{111, 143, 175, 207, 239, 239, 207, 175, 143, 111},
		{111, 143, 175, 207, 239, 239, 207, 175, 143, 111},
		{111, 143, 175, 207, 207, 207, 207, 175, 143, 111},
		{109, 140, 168, 175, 175, 175, 175, 168, 140, 109},
		{98, 123, 140, 143, 143, 143, 143, 140, 123, 98},
		{78, 98, 109, 111, 111, 111, 111, 109, 98, 78},
	}
	for y, row := range expected {
		for x, want := range row {
			got := bm.Data[y*bm.Width+x]
			if got != want {
				t.Errorf("pixel (%d,%d): expected %d, got %d", x, y, want, got)
			}
		}
	}
}

func TestRenderMeaningfulRange(t *testing.T) {
	// A 20x20 square is large enough that its interior exceeds Radius
	// pixels from every edge, so the SDF should saturate near both ends
	// of the byte range, per the §8 testable property.
	o := squareOutline(20, 12)
	bm := Render(o)

	sawEdge, sawFarOutside := false, false
	for _, b := range bm.Data {
		if b < 0 || b > 255 {
			t.Fatalf("byte out of range: %d", b)
		}
		if b >= 192 {
			sawEdge = true
		}
		if b <= 64 {
			sawFarOutside = true
		}
	}
	if !sawEdge {
		t.Errorf("expected at least one pixel with byte >= 192")
	}
	if !sawFarOutside {
		t.Errorf("expected at least one pixel with byte <= 64")
	}
}

func TestRenderEmptyGlyph(t *testing.T) {
	o := &outline.Outline{Advance: 9}
	bm := Render(o)
	if bm.Width != 0 || bm.Height != 0 {
		t.Fatalf("expected empty glyph to have zero dimensions, got %dx%d", bm.Width, bm.Height)
	}
	if bm.Data != nil {
		t.Fatalf("expected empty glyph to have nil data")
	}
	if bm.Advance != 9 {
		t.Fatalf("expected advance to be preserved for empty glyph, got %d", bm.Advance)
	}
}
