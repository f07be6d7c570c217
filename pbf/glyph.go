// Package pbf hand-encodes the Mapbox glyphs.proto wire format:
//
//	message glyph     { required uint32 id; optional bytes bitmap;
//	                     required uint32 width; required uint32 height;
//	                     required sint32 left; required sint32 top;
//	                     required uint32 advance; }
//	message fontstack { required string name; required string range;
//	                     repeated glyph glyphs; }
//	message glyphs    { repeated fontstack stacks; }
//
// There is no generated Go binding for this schema, so field numbers and
// wire types are assembled directly with protowire, matching field-for-
// field the required/optional/repeated shape above.
package pbf

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Glyph is one glyph entry: metrics plus an optional SDF bitmap. Bitmap
// is nil for empty (whitespace) glyphs; every other field is always
// written since the wire schema marks them required.
type Glyph struct {
	ID      uint32
	Bitmap  []byte // nil to omit the optional field
	Width   uint32
	Height  uint32
	Left    int32
	Top     int32
	Advance uint32
}

const (
	glyphFieldID      = 1
	glyphFieldBitmap  = 2
	glyphFieldWidth   = 3
	glyphFieldHeight  = 4
	glyphFieldLeft    = 5
	glyphFieldTop     = 6
	glyphFieldAdvance = 7
)

// AppendGlyph appends the wire encoding of g to b and returns the
// extended buffer.
func AppendGlyph(b []byte, g Glyph) []byte {
	b = protowire.AppendTag(b, glyphFieldID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.ID))

	if g.Bitmap != nil {
		b = protowire.AppendTag(b, glyphFieldBitmap, protowire.BytesType)
		b = protowire.AppendBytes(b, g.Bitmap)
	}

	b = protowire.AppendTag(b, glyphFieldWidth, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Width))

	b = protowire.AppendTag(b, glyphFieldHeight, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Height))

	b = protowire.AppendTag(b, glyphFieldLeft, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(g.Left)))

	b = protowire.AppendTag(b, glyphFieldTop, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(g.Top)))

	b = protowire.AppendTag(b, glyphFieldAdvance, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Advance))

	return b
}

// EncodeGlyph returns the standalone wire encoding of a single glyph
// message.
func EncodeGlyph(g Glyph) []byte {
	return AppendGlyph(nil, g)
}
