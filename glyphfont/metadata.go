// Package glyphfont wraps one parsed TrueType/OpenType font (see the
// outline package) together with the identity metadata a glyph
// container groups fonts by: family, style, weight, width, and the
// derived font-id slug.
package glyphfont

import (
	"strconv"
	"strings"

	"github.com/derekparker/trie"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/schuko/tracing"
	"github.com/versatiles-org/versatiles-glyphs-go/outline"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphgen.font")
}

const (
	familyID              = sfnt.NameIDFamily
	subfamilyID           = sfnt.NameIDSubfamily
	preferredFamilyID     = sfnt.NameIDTypographicFamily
	preferredSubfamilyID  = sfnt.NameIDTypographicSubfamily
	postScriptID          = sfnt.NameIDPostScript
	fullID                = sfnt.NameIDFull
)

// Metadata is the derived identity of one font file.
type Metadata struct {
	Family string
	Style  string // "normal" or "italic"
	Weight int    // 100..900
	Width  string // css-style: ultra-condensed .. ultra-expanded, "normal" is the midpoint
	Italic bool
}

// WidthClass maps the css-style Width string to the OS/2 usWidthClass
// numbering (1 = UltraCondensed .. 9 = UltraExpanded), so name-table and
// filename-derived metadata share one integer scale.
func (m Metadata) WidthClass() int {
	if v, ok := widthToClass[m.Width]; ok {
		return v
	}
	return 5
}

var widthToClass = map[string]int{
	"ultra-condensed": 1,
	"extra-condensed": 2,
	"condensed":       3,
	"semi-condensed":  4,
	"normal":          5,
	"semi-expanded":   6,
	"expanded":        7,
	"extra-expanded":  8,
	"ultra-expanded":  9,
}

var classToWidth = func() map[int]string {
	m := make(map[int]string, len(widthToClass))
	for k, v := range widthToClass {
		m[v] = k
	}
	return m
}()

// weightWords maps a weight class to the word used both when parsing
// filename tokens and when generating a human-readable name, matching
// the OS/2 usWeightClass vocabulary.
var weightWords = []struct {
	weight int
	word   string
}{
	{100, "thin"},
	{200, "extralight"},
	{300, "light"},
	{400, "regular"},
	{500, "medium"},
	{600, "semibold"},
	{700, "bold"},
	{800, "extrabold"},
	{900, "black"},
}

func weightWord(weight int) string {
	for _, w := range weightWords {
		if w.weight == weight {
			return w.word
		}
	}
	return strconv.Itoa(weight)
}

// languageTokens are family-name tokens that name a script/language
// subset rather than contribute to the family itself (e.g. "Noto Sans
// Arabic" families to "Noto Sans").
var languageTokens = map[string]bool{
	"arabic": true, "armenian": true, "balinese": true, "bengali": true,
	"devanagari": true, "ethiopic": true, "georgian": true, "gujarati": true,
	"gurmukhi": true, "hebrew": true, "jp": true, "javanese": true, "kr": true,
	"kannada": true, "khmer": true, "lao": true, "myanmar": true, "oriya": true,
	"sc": true, "sinhala": true, "tamil": true, "thai": true,
}

// keywordTrie is the single reusable token-lookup structure both the
// name-table path and the filename-fallback path query, replacing a
// per-caller chain of string-equality switches with one trie populated
// once at package init.
var keywordTrie = buildKeywordTrie()

type keywordEntry struct {
	weight   int    // set when this token names a weight
	isWeight bool
	width    string // set when this token names a width
	isWidth  bool
	isSkip   bool // set when this token names a language subset
}

func buildKeywordTrie() *trie.Trie {
	t := trie.New()
	for _, w := range weightWords {
		t.Add(w.word, keywordEntry{weight: w.weight, isWeight: true})
	}
	// Aliases the weight words alone don't cover.
	t.Add("hairline", keywordEntry{weight: 100, isWeight: true})
	t.Add("ultralight", keywordEntry{weight: 200, isWeight: true})
	t.Add("book", keywordEntry{weight: 400, isWeight: true})
	t.Add("normal", keywordEntry{weight: 400, isWeight: true})
	t.Add("demibold", keywordEntry{weight: 600, isWeight: true})
	t.Add("semi-bold", keywordEntry{weight: 600, isWeight: true})
	t.Add("extrabold", keywordEntry{weight: 800, isWeight: true})
	t.Add("ultrabold", keywordEntry{weight: 800, isWeight: true})
	t.Add("heavy", keywordEntry{weight: 900, isWeight: true})

	for width := range widthToClass {
		t.Add(strings.ReplaceAll(width, "-", ""), keywordEntry{width: width, isWidth: true})
		t.Add(width, keywordEntry{width: width, isWidth: true})
	}
	t.Add("semicondensed", keywordEntry{width: "semi-condensed", isWidth: true})
	t.Add("semiexpanded", keywordEntry{width: "semi-expanded", isWidth: true})

	for lang := range languageTokens {
		t.Add(lang, keywordEntry{isSkip: true})
	}
	return t
}

func lookupKeyword(token string) (keywordEntry, bool) {
	node, ok := keywordTrie.Find(strings.ToLower(token))
	if !ok {
		return keywordEntry{}, false
	}
	entry, ok := node.Meta().(keywordEntry)
	return entry, ok
}

// weightFromSubstring scans s (already lowercased) for the most specific
// weight keyword it contains, most-specific-first, mirroring how a
// PostScript-style suffix packs multiple modifiers together with no
// separators (e.g. "bolditalic", "extrabolditalic"). Returns ok=false
// when nothing matches, distinct from "matched but default 400".
func weightFromSubstring(s string) (weight int, ok bool) {
	switch {
	case strings.Contains(s, "hairline"), strings.Contains(s, "thin"):
		return 100, true
	case strings.Contains(s, "extralight"), strings.Contains(s, "ultralight"):
		return 200, true
	case strings.Contains(s, "light"):
		return 300, true
	case strings.Contains(s, "regular"), strings.Contains(s, "normal"), strings.Contains(s, "book"):
		return 400, true
	case strings.Contains(s, "medium"):
		return 500, true
	case strings.Contains(s, "demibold"), strings.Contains(s, "semibold"):
		return 600, true
	case strings.Contains(s, "bold"):
		if strings.Contains(s, "extra") || strings.Contains(s, "ultra") {
			return 800, true
		}
		return 700, true
	case strings.Contains(s, "black"), strings.Contains(s, "heavy"):
		return 900, true
	default:
		return 400, false
	}
}

// ParseFontName derives (family, style, weight, width) from a raw family
// name string and a PostScript-style name, the way a font's name table
// is turned into identity metadata when the OS/2 table is absent or
// unreliable. family may contain extra tokens ("Open Sans SemiCondensed
// Light"); ps may carry a "-"-suffixed style/weight ("OpenSansSemiCondensed-LightItalic").
func ParseFontName(family, ps string) (outFamily, style string, weight int, width string) {
	style = "normal"
	weight = 400
	width = "normal"

	suffix := ps
	if idx := strings.LastIndex(ps, "-"); idx >= 0 {
		suffix = ps[idx+1:]
	}
	lowerSuffix := strings.ToLower(suffix)

	if strings.Contains(lowerSuffix, "italic") || strings.Contains(lowerSuffix, "oblique") {
		style = "italic"
	}

	psWeight, psMatched := weightFromSubstring(lowerSuffix)
	if psMatched && psWeight != 400 {
		weight = psWeight
	}

	tokens := strings.Fields(family)
	var kept []string
	for i := 0; i < len(tokens); i++ {
		t := strings.ToLower(tokens[i])

		if i+1 < len(tokens) {
			two := t + " " + strings.ToLower(tokens[i+1])
			if entry, ok := lookupKeyword(strings.ReplaceAll(two, " ", "")); ok && entry.isWidth {
				width = entry.width
				i++
				continue
			}
		}

		if entry, ok := lookupKeyword(t); ok {
			switch {
			case entry.isSkip:
				continue
			case entry.isWidth:
				width = entry.width
				continue
			case entry.isWeight:
				if !psMatched || psWeight == 400 {
					weight = entry.weight
				}
				continue
			}
		}
		kept = append(kept, tokens[i])
	}

	outFamily = strings.Join(kept, " ")
	return
}

// DeriveMetadata builds Metadata for a parsed font, preferring the OS/2
// table when present and falling back to name-table/filename token
// parsing otherwise, per the "TTF name table, else parsed from the file
// name heuristically" rule.
func DeriveMetadata(f *outline.Font, filenameHint string) Metadata {
	family := firstNonEmpty(
		f.NameTable[preferredFamilyID],
		f.NameTable[familyID],
	)
	subfamily := firstNonEmpty(
		f.NameTable[preferredSubfamilyID],
		f.NameTable[subfamilyID],
	)
	psName := firstNonEmpty(f.NameTable[postScriptID], f.NameTable[fullID])

	if family == "" {
		family = familyFromFilename(filenameHint)
	}
	family = norm.NFC.String(family)

	if f.OS2Metadata.Present {
		weight := clampWeight(f.OS2Metadata.WeightClass)
		width := widthFromClass(f.OS2Metadata.WidthClass)
		style := "normal"
		if f.OS2Metadata.Italic || strings.Contains(strings.ToLower(subfamily), "italic") {
			style = "italic"
		}
		fam, _, parsedWeight, parsedWidth := ParseFontName(family, psName)
		if fam != "" {
			family = fam
		}
		if weight == 0 {
			weight = parsedWeight
		}
		if width == "" {
			width = parsedWidth
		}
		return Metadata{Family: family, Style: style, Weight: weight, Width: width, Italic: style == "italic"}
	}

	fam, style, weight, width := ParseFontName(family, psName)
	if fam == "" {
		fam = family
	}
	tracer().Debugf("derived metadata from name table: family=%q style=%q weight=%d width=%q", fam, style, weight, width)
	return Metadata{Family: fam, Style: style, Weight: weight, Width: width, Italic: style == "italic"}
}

func clampWeight(w int) int {
	if w <= 0 {
		return 0
	}
	rounded := ((w + 50) / 100) * 100
	if rounded < 100 {
		rounded = 100
	}
	if rounded > 900 {
		rounded = 900
	}
	return rounded
}

func widthFromClass(class int) string {
	if class <= 0 {
		return ""
	}
	if class < 1 {
		class = 1
	}
	if class > 9 {
		class = 9
	}
	return classToWidth[class]
}

func familyFromFilename(hint string) string {
	base := hint
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
