package pbf

import "google.golang.org/protobuf/encoding/protowire"

const (
	fontstackFieldName   = 1
	fontstackFieldRange  = 2
	fontstackFieldGlyphs = 3
)

// Fontstack is one block's worth of glyphs for a single font-id, keyed
// by name (the font-id) and range ("{start}-{end}").
type Fontstack struct {
	Name   string
	Range  string
	Glyphs []Glyph
}

// AppendFontstack appends the wire encoding of fs to b.
func AppendFontstack(b []byte, fs Fontstack) []byte {
	b = protowire.AppendTag(b, fontstackFieldName, protowire.BytesType)
	b = protowire.AppendString(b, fs.Name)

	b = protowire.AppendTag(b, fontstackFieldRange, protowire.BytesType)
	b = protowire.AppendString(b, fs.Range)

	for _, g := range fs.Glyphs {
		embedded := AppendGlyph(nil, g)
		b = protowire.AppendTag(b, fontstackFieldGlyphs, protowire.BytesType)
		b = protowire.AppendBytes(b, embedded)
	}
	return b
}

// EncodeFontstack returns the standalone wire encoding of a fontstack
// message.
func EncodeFontstack(fs Fontstack) []byte {
	return AppendFontstack(nil, fs)
}
