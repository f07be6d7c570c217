// Package manager owns every loaded font keyed by its font-id, merges
// language-subset files that share an id, and drives rendering of every
// (font-id, block) pair to a sink.
package manager

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/glyphfont"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphgen.manager")
}

// group is every file loaded under one font-id, in the order they were
// added: fonts[0] is the highest-priority file for any code point two
// files both cover.
type group struct {
	id    string
	fonts []*glyphfont.Font
}

// Manager owns the id -> group table. The table is a treemap (ordered
// by id) so index/family output and error messages are deterministic;
// merge priority within one id is tracked separately, by append order,
// per the "ordered map so merges observe input order" design note.
type Manager struct {
	groups *treemap.Map // string -> *group
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{groups: treemap.NewWithStringComparator()}
}

// AddFont registers f under its font-id. A first file for an id becomes
// that id's primary source; later files sharing the id are attached as
// subsets — code points they add extend coverage, but on overlap the
// earlier file's glyph wins. Sharing an id is expected (language-subset
// files routinely do), so DuplicateFontId is logged, not returned as an
// error.
func (m *Manager) AddFont(f *glyphfont.Font) {
	if raw, ok := m.groups.Get(f.ID); ok {
		g := raw.(*group)
		g.fonts = append(g.fonts, f)
		event := fmt.Errorf("%w: font-id %s gains a subset from %s", core.ErrDuplicateFontId, f.ID, f.SourcePath)
		tracer().Infof("%v", event)
		return
	}
	m.groups.Put(f.ID, &group{id: f.ID, fonts: []*glyphfont.Font{f}})
	tracer().Debugf("registered font-id %s from %s", f.ID, f.SourcePath)
}

// FontIDs returns every registered font-id, lexicographically sorted
// (the treemap's natural order).
func (m *Manager) FontIDs() []string {
	ids := make([]string, 0, m.groups.Size())
	for _, k := range m.groups.Keys() {
		ids = append(ids, k.(string))
	}
	return ids
}

// owner is one code point's resolved (font, priority-index) pair: the
// first file within a group that covers it.
type owner struct {
	font *glyphfont.Font
	rank int
}

// mergeCoverage is the pure merge algorithm behind resolveOwnership,
// pulled out so it can be exercised without loading real font data:
// given each file's covered code points in priority order (index 0
// highest), it returns, for each code point covered by at least one
// file, the index of the highest-priority file that covers it.
func mergeCoverage(coverages [][]rune) map[rune]int {
	owners := make(map[rune]int)
	for rank, cps := range coverages {
		for _, cp := range cps {
			if existing, ok := owners[cp]; !ok || rank < existing {
				owners[cp] = rank
			}
		}
	}
	return owners
}

// resolveOwnership unions every file's covered code points for one
// group, keeping, for each code point, the file with the lowest rank
// (earliest add order) that covers it.
func resolveOwnership(g *group) map[rune]owner {
	coverages := make([][]rune, len(g.fonts))
	for i, f := range g.fonts {
		coverages[i] = f.CoveredCodePoints()
	}
	ranks := mergeCoverage(coverages)

	byCP := make(map[rune]owner, len(ranks))
	for cp, rank := range ranks {
		byCP[cp] = owner{font: g.fonts[rank], rank: rank}
	}
	return byCP
}

func codePointsOf(byCP map[rune]owner) []rune {
	cps := make([]rune, 0, len(byCP))
	for cp := range byCP {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	return cps
}
