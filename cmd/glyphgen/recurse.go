package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/pterm/pterm"

	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/manager"
	"github.com/versatiles-org/versatiles-glyphs-go/sink"
)

// runRecurse implements `glyphgen recurse <paths...>`: every path is
// walked, honoring any fonts.json found along the way, and every
// discovered font keeps its own derived (or overridden) font-id.
func runRecurse(args []string) error {
	fs := flag.NewFlagSet("recurse", flag.ExitOnError)
	outDir := fs.String("o", "", "output directory")
	toTar := fs.Bool("t", false, "stream a tar archive to stdout")
	singleThread := fs.Bool("single-thread", false, "disable the parallel worker pool")
	verbose := fs.Bool("verbose", false, "enable debug-level tracing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return core.Error(core.EINVALID, "recurse requires at least one path")
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

	m := manager.New()
	loaded := 0
	for _, root := range fs.Args() {
		entries, err := discoverFontFiles(root)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", root, err)
		}
		loaded += loadEntries(m, entries)
	}
	if loaded == 0 {
		pterm.Warning.Println("no font files found")
	}

	return renderAndReport(m, s, manager.RenderOptions{SingleThread: *singleThread})
}

func renderAndReport(m *manager.Manager, s sink.Sink, opts manager.RenderOptions) error {
	total := manager.TaskCount(m)
	if total > 0 {
		bar, _ := pterm.DefaultProgressbar.WithTotal(total).WithWriter(os.Stderr).WithTitle("rendering blocks").Start()
		var mu sync.Mutex
		opts.OnBlockDone = func() {
			mu.Lock()
			bar.Increment()
			mu.Unlock()
		}
		defer bar.Stop()
	}

	emitted, stats, err := manager.RenderAll(context.Background(), m, s, opts)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	if err := manager.WriteManifests(m, emitted, s); err != nil {
		return fmt.Errorf("writing manifests: %w", err)
	}
	if err := s.Finish(); err != nil {
		return fmt.Errorf("finishing output: %w", err)
	}

	pterm.Success.Printfln("%d fonts, %d glyphs rendered", len(m.FontIDs()), stats.Glyphs)
	return nil
}
