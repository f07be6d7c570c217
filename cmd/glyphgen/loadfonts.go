package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/glyphfont"
	"github.com/versatiles-org/versatiles-glyphs-go/manager"
)

// loadEntries loads every fontEntry into m, one glyphfont.Font per
// listed file. A file that fails to parse is demoted to a warning
// (ErrInvalidFont) rather than aborting the batch, per the "one broken
// font does not kill a batch" propagation rule. It returns the count
// of files successfully loaded.
func loadEntries(m *manager.Manager, entries []fontEntry) int {
	loaded := 0
	for _, e := range entries {
		for _, path := range e.Files {
			raw, err := os.ReadFile(path)
			if err != nil {
				warnInvalidFont(path, err)
				continue
			}
			f, err := glyphfont.Load(raw, path)
			if err != nil {
				warnInvalidFont(path, err)
				continue
			}
			applyOverrides(f, e)
			m.AddFont(f)
			loaded++
		}
	}
	return loaded
}

// loadEntriesAsOneGroup loads every file into a single glyphfont.Font
// group, as merge does: all files share one font-id (the first
// successfully loaded file's derived id, unless idOverride is given).
func loadEntriesAsOneGroup(m *manager.Manager, files []string, idOverride string) int {
	groupID := idOverride
	loaded := 0
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			warnInvalidFont(path, err)
			continue
		}
		f, err := glyphfont.Load(raw, path)
		if err != nil {
			warnInvalidFont(path, err)
			continue
		}
		if groupID == "" {
			groupID = f.ID
		} else {
			f.ID = groupID
		}
		m.AddFont(f)
		loaded++
	}
	return loaded
}

func applyOverrides(f *glyphfont.Font, e fontEntry) {
	if e.ID != "" {
		f.ID = e.ID
	}
	if e.Style != "" {
		f.Metadata.Style = e.Style
	}
	if e.Weight != 0 {
		f.Metadata.Weight = e.Weight
	}
	if e.Width != "" {
		f.Metadata.Width = e.Width
	}
	if e.Italic {
		f.Metadata.Italic = e.Italic
	}
}

func warnInvalidFont(path string, err error) {
	pterm.Warning.Printfln("skipping %s: %v", path, fmt.Errorf("%w: %v", core.ErrInvalidFont, err))
}
