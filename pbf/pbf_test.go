package pbf

import (
	"bytes"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// decodedGlyph is a minimal hand-rolled decoder used only by tests, to
// verify that AppendGlyph's output round-trips through the wire format
// it claims to speak.
type decodedGlyph struct {
	id            uint64
	bitmap        []byte
	width, height uint64
	left, top     int64
	advance       uint64
	hasBitmap     bool
}

func decodeGlyph(t *testing.T, data []byte) decodedGlyph {
	t.Helper()
	var g decodedGlyph
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			t.Fatalf("bad tag: %v", protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case glyphFieldID, glyphFieldWidth, glyphFieldHeight, glyphFieldAdvance:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				t.Fatalf("bad varint for field %d", num)
			}
			data = data[n:]
			switch num {
			case glyphFieldID:
				g.id = v
			case glyphFieldWidth:
				g.width = v
			case glyphFieldHeight:
				g.height = v
			case glyphFieldAdvance:
				g.advance = v
			}
		case glyphFieldLeft, glyphFieldTop:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				t.Fatalf("bad zigzag varint for field %d", num)
			}
			data = data[n:]
			signed := protowire.DecodeZigZag(v)
			if num == glyphFieldLeft {
				g.left = signed
			} else {
				g.top = signed
			}
		case glyphFieldBitmap:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				t.Fatalf("bad bytes for bitmap field")
			}
			data = data[n:]
			g.bitmap = append([]byte(nil), v...)
			g.hasBitmap = true
		default:
			typLen := protowire.ConsumeFieldValue(num, typ, data)
			data = data[typLen:]
		}
	}
	return g
}

func TestGlyphRoundTrip(t *testing.T) {
	want := Glyph{
		ID:      65,
		Bitmap:  []byte{1, 2, 3, 4},
		Width:   22,
		Height:  22,
		Left:    -3,
		Top:     18,
		Advance: 14,
	}
	encoded := EncodeGlyph(want)
	got := decodeGlyph(t, encoded)

	if got.id != uint64(want.ID) {
		t.Errorf("id: want %d, got %d", want.ID, got.id)
	}
	if !bytes.Equal(got.bitmap, want.Bitmap) {
		t.Errorf("bitmap: want %v, got %v", want.Bitmap, got.bitmap)
	}
	if got.width != uint64(want.Width) || got.height != uint64(want.Height) {
		t.Errorf("dimensions: want %dx%d, got %dx%d", want.Width, want.Height, got.width, got.height)
	}
	if got.left != int64(want.Left) || got.top != int64(want.Top) {
		t.Errorf("origin: want (%d,%d), got (%d,%d)", want.Left, want.Top, got.left, got.top)
	}
	if got.advance != uint64(want.Advance) {
		t.Errorf("advance: want %d, got %d", want.Advance, got.advance)
	}
}

func TestGlyphWithoutBitmapOmitsField(t *testing.T) {
	empty := Glyph{ID: 32, Width: 0, Height: 0, Advance: 6}
	encoded := EncodeGlyph(empty)
	got := decodeGlyph(t, encoded)
	if got.hasBitmap {
		t.Errorf("expected no bitmap field for an empty glyph")
	}
	if got.id != 32 || got.advance != 6 {
		t.Errorf("unexpected decoded fields: %+v", got)
	}
}

func TestEncodeBlockContainsOneFontstackWithGlyphs(t *testing.T) {
	fs := Fontstack{
		Name:  "noto_sans_regular",
		Range: "0-255",
		Glyphs: []Glyph{
			{ID: 65, Width: 10, Height: 10, Left: 0, Top: 10, Advance: 12, Bitmap: []byte{9}},
			{ID: 66, Width: 0, Height: 0, Advance: 8},
		},
	}
	block := EncodeBlock(fs)

	num, typ, n := protowire.ConsumeTag(block)
	if n < 0 || num != glyphsFieldStacks || typ != protowire.BytesType {
		t.Fatalf("expected a single stacks field, got num=%d typ=%v n=%d", num, typ, n)
	}
	body, n2 := protowire.ConsumeBytes(block[n:])
	if n2 < 0 {
		t.Fatalf("bad embedded fontstack bytes")
	}
	if n+n2 != len(block) {
		t.Fatalf("expected exactly one fontstack message in the block, trailing bytes remain")
	}

	// Decode the two field-1/2 (name/range) strings and count glyph
	// sub-messages within the fontstack body.
	glyphCount := 0
	for len(body) > 0 {
		fnum, ftyp, fn := protowire.ConsumeTag(body)
		if fn < 0 {
			t.Fatalf("bad fontstack field tag")
		}
		body = body[fn:]
		switch fnum {
		case fontstackFieldName, fontstackFieldRange:
			v, cn := protowire.ConsumeBytes(body)
			if cn < 0 {
				t.Fatalf("bad name/range field")
			}
			body = body[cn:]
			if fnum == fontstackFieldName && string(v) != fs.Name {
				t.Errorf("name: want %q, got %q", fs.Name, string(v))
			}
			if fnum == fontstackFieldRange && string(v) != fs.Range {
				t.Errorf("range: want %q, got %q", fs.Range, string(v))
			}
		case fontstackFieldGlyphs:
			v, cn := protowire.ConsumeBytes(body)
			if cn < 0 {
				t.Fatalf("bad glyph sub-message")
			}
			body = body[cn:]
			glyphCount++
			_ = decodeGlyph(t, v)
		default:
			fn2 := protowire.ConsumeFieldValue(fnum, ftyp, body)
			body = body[fn2:]
		}
	}
	if glyphCount != len(fs.Glyphs) {
		t.Errorf("expected %d glyph sub-messages, got %d", len(fs.Glyphs), glyphCount)
	}
}
