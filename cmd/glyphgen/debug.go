package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/glyphfont"
	"github.com/versatiles-org/versatiles-glyphs-go/sdf"
)

// runDebug implements `glyphgen debug <dir> -f tsv`: for every font
// discovered under dir, dump one line per covered glyph with its
// rendered metrics, for diffing against a previous run.
func runDebug(args []string) error {
	fs := flag.NewFlagSet("debug", flag.ExitOnError)
	format := fs.String("f", "tsv", "output format (only tsv is supported)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != "tsv" {
		return core.Error(core.EINVALID, "unsupported format %q", *format)
	}
	if fs.NArg() != 1 {
		return core.Error(core.EINVALID, "debug requires exactly one directory or bare family name")
	}
	target := fs.Arg(0)

	var files []string
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		entries, err := discoverFontFiles(target)
		if err != nil {
			return err
		}
		for _, e := range entries {
			files = append(files, e.Files...)
		}
	} else {
		// bare family name: resolve via the system font catalog.
		path, err := findfont.Find(target)
		if err != nil {
			return core.WrapError(core.ErrIO, core.EMISSING, "resolving system font %q: %v", target, err)
		}
		files = []string{path}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		f, err := glyphfont.Load(raw, path)
		if err != nil {
			return err
		}
		for _, cp := range f.CoveredCodePoints() {
			out, ok, err := f.GlyphOutline(cp)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			bm := sdf.Render(out)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
				f.ID, cp, bm.Width, bm.Height, bm.Left, bm.Top, bm.Advance)
		}
	}
	return nil
}
