// Package outline loads TrueType/OpenType faces and extracts per-glyph
// vector outlines, flattened to line segments in pixel space.
package outline

import (
	"encoding/binary"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/schuko/tracing"
	"github.com/versatiles-org/versatiles-glyphs-go/core"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphgen.outline")
}

// TargetSize is the canonical Mapbox glyph rendering size, in pixels.
const TargetSize = 24.0

// Font wraps a parsed TrueType/OpenType face together with the raw bytes
// it was parsed from, since golang.org/x/image/font/sfnt does not expose
// tables (such as OS/2) that this package needs beyond what it parses
// itself.
type Font struct {
	SFNT        *sfnt.Font
	Raw         []byte
	UnitsPerEm  float64
	OS2Metadata OS2Metadata
	NameTable   map[sfnt.NameID]string
}

// OS2Metadata carries the subset of the OS/2 and head tables this package
// cares about: weight class, width class, and italic flag. Zero values
// mean the table (or field) was absent.
type OS2Metadata struct {
	Present     bool
	WeightClass int // 100..900, CSS-style
	WidthClass  int // 1..9
	Italic      bool
}

// Load parses raw TrueType/OpenType bytes into a Font, reading enough of
// the cmap, name, OS/2 and head tables to drive font-identity derivation
// downstream. It returns core.ErrInvalidFont (wrapped) when the bytes do
// not parse as a valid font.
func Load(raw []byte) (*Font, error) {
	sf, err := sfnt.Parse(raw)
	if err != nil {
		return nil, core.WrapError(core.ErrInvalidFont, core.EINVALID, "%v", err)
	}
	upem := sf.UnitsPerEm()
	f := &Font{
		SFNT:       sf,
		Raw:        raw,
		UnitsPerEm: float64(upem),
	}
	f.OS2Metadata = parseOS2(raw)
	f.NameTable = readNameTable(sf)
	tracer().Debugf("loaded font, %d units/em, os2 present=%v", int(upem), f.OS2Metadata.Present)
	return f, nil
}

// nameIDs read for metadata/font-id purposes.
var nameIDsOfInterest = []sfnt.NameID{
	sfnt.NameIDFamily,
	sfnt.NameIDSubfamily,
	sfnt.NameIDFull,
	sfnt.NameIDTypographicFamily,
	sfnt.NameIDTypographicSubfamily,
	sfnt.NameIDPostScript,
}

func readNameTable(sf *sfnt.Font) map[sfnt.NameID]string {
	var buf sfnt.Buffer
	out := make(map[sfnt.NameID]string, len(nameIDsOfInterest))
	for _, id := range nameIDsOfInterest {
		if name, err := sf.Name(&buf, id); err == nil && name != "" {
			out[id] = name
		}
	}
	return out
}

// sfntTableDirectory entry offsets, per the OpenType spec: 16 bytes per
// entry (tag, checksum, offset, length), starting after a 12-byte header
// (or a 16-byte header for TTC, which this parser does not support --
// font collections are an explicit non-goal).
const (
	sfntHeaderSize    = 12
	sfntDirEntrySize  = 16
	os2WeightOffset   = 4
	os2WidthOffset    = 6
	os2FsSelOffset    = 62
	os2FsSelItalicBit = 1 << 0
	headMacStyleOff   = 44
	headMacStyleBold  = 1 << 0
	headMacStyleItal  = 1 << 1
)

// parseOS2 hand-parses the OS/2 (and, as a fallback, head) table directly
// from raw font bytes: golang.org/x/image/font/sfnt does not expose these
// fields, and no library in this module's dependency graph does either,
// so reading the table directory is unavoidable regardless of library
// choice (ttf_parser, the tool this behavior is grounded on, does the
// same low-level parsing internally).
func parseOS2(raw []byte) OS2Metadata {
	numTables, ok := readUint16(raw, 4)
	if !ok {
		return OS2Metadata{}
	}
	var os2Off, headOff uint32
	var os2Len uint32
	for i := 0; i < int(numTables); i++ {
		entryOff := sfntHeaderSize + i*sfntDirEntrySize
		if entryOff+sfntDirEntrySize > len(raw) {
			break
		}
		tag := string(raw[entryOff : entryOff+4])
		off := binary.BigEndian.Uint32(raw[entryOff+8 : entryOff+12])
		length := binary.BigEndian.Uint32(raw[entryOff+12 : entryOff+16])
		switch tag {
		case "OS/2":
			os2Off, os2Len = off, length
		case "head":
			headOff = off
		}
	}
	meta := OS2Metadata{}
	if os2Off > 0 && int(os2Off)+os2FsSelOffset+2 <= len(raw) && os2Len >= os2FsSelOffset+2 {
		weight, _ := readUint16(raw, int(os2Off)+os2WeightOffset)
		width, _ := readUint16(raw, int(os2Off)+os2WidthOffset)
		fsSel, _ := readUint16(raw, int(os2Off)+os2FsSelOffset)
		meta.Present = true
		meta.WeightClass = int(weight)
		meta.WidthClass = int(width)
		meta.Italic = fsSel&os2FsSelItalicBit != 0
	} else if headOff > 0 && int(headOff)+headMacStyleOff+2 <= len(raw) {
		macStyle, _ := readUint16(raw, int(headOff)+headMacStyleOff)
		meta.Italic = macStyle&headMacStyleItal != 0
		if macStyle&headMacStyleBold != 0 {
			meta.WeightClass = 700
		}
	}
	return meta
}

func readUint16(raw []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(raw) {
		return 0, false
	}
	return binary.BigEndian.Uint16(raw[off : off+2]), true
}

// ppemForUnitScale returns a fixed.Int26_6 ppem value that makes
// sfnt.LoadGlyph return coordinates in raw font units (scale factor 1),
// so that this package's own size/units-per-em multiply (see
// GlyphOutline's scale) is
// the single place pixel scaling happens, matching the component design.
func ppemForUnitScale(unitsPerEm float64) fixed.Int26_6 {
	return fixed.I(int(unitsPerEm))
}
