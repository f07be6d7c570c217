package pbf

import "google.golang.org/protobuf/encoding/protowire"

const glyphsFieldStacks = 1

// EncodeBlock returns the bytes for one on-disk .pbf file: a top-level
// glyphs message containing exactly one fontstack, per §4.3 ("one block
// emits exactly one glyphs message containing one fontstack").
func EncodeBlock(fs Fontstack) []byte {
	embedded := AppendFontstack(nil, fs)
	var b []byte
	b = protowire.AppendTag(b, glyphsFieldStacks, protowire.BytesType)
	b = protowire.AppendBytes(b, embedded)
	return b
}
