package manager

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/sink"
)

// fontIndex is the per-font-id manifest: every range actually emitted,
// ascending numerically.
type fontIndex struct {
	Ranges []string `json:"ranges"`
}

// familyVariant is one entry in font_families.json's per-family list.
type familyVariant struct {
	ID     string `json:"id"`
	Style  string `json:"style"`
	Weight int    `json:"weight"`
	Width  string `json:"width"`
	Italic bool   `json:"italic"`

	widthClass int // OS/2 usWidthClass numbering, for sorting only
}

// WriteManifests emits {font_id}/index.json for every id with emitted
// ranges and the top-level font_families.json, after all rendering has
// completed — manifests reflect only blocks actually written, per the
// "empty blocks are skipped, write manifests last" design note.
func WriteManifests(m *Manager, emitted map[string][]string, s sink.Sink) error {
	for _, id := range m.FontIDs() {
		ranges, ok := emitted[id]
		if !ok {
			continue
		}
		data, err := json.MarshalIndent(fontIndex{Ranges: ranges}, "", "  ")
		if err != nil {
			return core.WrapError(core.ErrEncoding, core.EINTERNAL, "marshaling index.json for %s: %v", id, err)
		}
		if err := s.Write(fmt.Sprintf("%s/index.json", id), data); err != nil {
			return err
		}
	}

	families := make(map[string][]familyVariant)
	for _, id := range m.FontIDs() {
		raw, _ := m.groups.Get(id)
		g := raw.(*group)
		if _, ok := emitted[id]; !ok {
			continue
		}
		primary := g.fonts[0].Metadata
		families[primary.Family] = append(families[primary.Family], familyVariant{
			ID:         id,
			Style:      primary.Style,
			Weight:     primary.Weight,
			Width:      primary.Width,
			Italic:     primary.Italic,
			widthClass: primary.WidthClass(),
		})
	}
	for family := range families {
		variants := families[family]
		sort.Slice(variants, func(i, j int) bool {
			a, b := variants[i], variants[j]
			if a.Weight != b.Weight {
				return a.Weight < b.Weight
			}
			if a.Italic != b.Italic {
				return !a.Italic
			}
			return a.widthClass < b.widthClass
		})
		families[family] = variants
	}

	// encoding/json marshals map[string]... keys in sorted order, which
	// gives the "families sorted lexicographically" ordering for free.
	data, err := json.MarshalIndent(families, "", "  ")
	if err != nil {
		return core.WrapError(core.ErrEncoding, core.EINTERNAL, "marshaling font_families.json: %v", err)
	}
	return s.Write("font_families.json", data)
}
