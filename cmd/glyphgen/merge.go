package main

import (
	"flag"
	"fmt"

	"github.com/versatiles-org/versatiles-glyphs-go/manager"
)

// runMerge implements `glyphgen merge <paths...>`: every input file,
// regardless of which path it came from, is treated as one font-id
// group — the "language subset" case where several files share an
// identity by convention rather than by matching name-table metadata.
func runMerge(args []string) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	outDir := fs.String("o", "", "output directory")
	toTar := fs.Bool("t", false, "stream a tar archive to stdout")
	singleThread := fs.Bool("single-thread", false, "disable the parallel worker pool")
	verbose := fs.Bool("verbose", false, "enable debug-level tracing")
	id := fs.String("id", "", "font-id to assign to the merged group (defaults to the first file's derived id)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := "Info"
	if *verbose {
		level = "Debug"
	}
	bootstrapTracing(level)

	s, err := resolveSink(*outDir, *toTar)
	if err != nil {
		return err
	}

	var files []string
	for _, root := range fs.Args() {
		found, err := discoverFontFiles(root)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", root, err)
		}
		for _, e := range found {
			files = append(files, e.Files...)
		}
	}

	m := manager.New()
	loadEntriesAsOneGroup(m, files, *id)

	return renderAndReport(m, s, manager.RenderOptions{SingleThread: *singleThread})
}
