package glyphfont

import (
	"fmt"

	"github.com/versatiles-org/versatiles-glyphs-go/block"
	"github.com/versatiles-org/versatiles-glyphs-go/outline"
)

// Font wraps one parsed TrueType/OpenType face together with the
// identity metadata derived from it, and owns partitioning its covered
// code points into render blocks.
type Font struct {
	Outline  *outline.Font
	Metadata Metadata
	ID       string

	// SourcePath is the file this font was loaded from, kept for
	// diagnostics (trace and merge-event messages).
	SourcePath string

	codePoints []rune // memoized CoveredCodePoints result
}

// Load parses raw font bytes and derives its Metadata and font-id.
// sourcePath is used both for diagnostics and as the filename-fallback
// hint when the name table is incomplete.
func Load(raw []byte, sourcePath string) (*Font, error) {
	of, err := outline.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", sourcePath, err)
	}
	md := DeriveMetadata(of, sourcePath)
	id := GenerateID(md)
	tracer().Debugf("loaded font %s: id=%s family=%q weight=%d width=%q italic=%v",
		sourcePath, id, md.Family, md.Weight, md.Width, md.Italic)
	return &Font{Outline: of, Metadata: md, ID: id, SourcePath: sourcePath}, nil
}

// CoveredCodePoints returns every BMP code point this font can render,
// computed once and memoized.
func (f *Font) CoveredCodePoints() []rune {
	if f.codePoints == nil {
		f.codePoints = f.Outline.CoveredCodePoints()
	}
	return f.codePoints
}

// Blocks partitions this font's covered code points into ascending,
// non-empty render tasks tagged with this font's id.
func (f *Font) Blocks() []block.Task {
	return block.Partition(f.ID, f.CoveredCodePoints())
}

// GlyphOutline is a thin passthrough to the underlying outline.Font at
// the canonical rendering size.
func (f *Font) GlyphOutline(r rune) (*outline.Outline, bool, error) {
	return f.Outline.GlyphOutline(r, outline.TargetSize)
}
