package manager

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/versatiles-org/versatiles-glyphs-go/block"
	"github.com/versatiles-org/versatiles-glyphs-go/core"
	"github.com/versatiles-org/versatiles-glyphs-go/pbf"
	"github.com/versatiles-org/versatiles-glyphs-go/sdf"
	"github.com/versatiles-org/versatiles-glyphs-go/sink"
)

// RenderOptions controls the worker pool the render driver uses.
type RenderOptions struct {
	// SingleThread forces a worker limit of 1, for deterministic
	// output ordering during debugging/profiling.
	SingleThread bool

	// OnBlockDone, if set, is called once per completed block task
	// (from whichever goroutine finished it) so a caller can drive a
	// progress indicator. It must be safe to call concurrently.
	OnBlockDone func()
}

// TaskCount returns how many (font-id, block) tasks RenderAll would
// submit for m's current contents, so a caller can size a progress
// bar before starting the run.
func TaskCount(m *Manager) int {
	count := 0
	for _, id := range m.FontIDs() {
		raw, _ := m.groups.Get(id)
		g := raw.(*group)
		byCP := resolveOwnership(g)
		count += len(block.Partition(id, codePointsOf(byCP)))
	}
	return count
}

// renderTask pairs a block.Task with the ownership map it was derived
// from, so the worker can look up which file renders each code point.
type renderTask struct {
	block.Task
	byCP map[rune]owner
}

// Stats summarizes one RenderAll run, for the CLI's closing summary
// line.
type Stats struct {
	Glyphs int
}

// RenderAll partitions every registered font-id's covered code points
// into blocks, renders each block's glyphs, and writes the resulting
// .pbf files to s. Tasks run across a bounded worker pool; within a
// task, glyphs render sequentially, each against its own spatial index
// built for that glyph alone. It returns the set of ranges actually emitted per font-id, in
// ascending order, for manifest generation, plus run statistics.
func RenderAll(ctx context.Context, m *Manager, s sink.Sink, opts RenderOptions) (map[string][]string, Stats, error) {
	var tasks []renderTask
	for _, id := range m.FontIDs() {
		raw, _ := m.groups.Get(id)
		g := raw.(*group)
		byCP := resolveOwnership(g)
		for _, t := range block.Partition(id, codePointsOf(byCP)) {
			tasks = append(tasks, renderTask{Task: t, byCP: byCP})
		}
	}

	limit := runtime.GOMAXPROCS(0)
	if opts.SingleThread {
		limit = 1
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)

	var mu sync.Mutex
	emitted := make(map[string][]string)
	glyphCount := 0

	for _, task := range tasks {
		task := task
		grp.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fs, err := renderBlock(task)
			if err != nil {
				return err
			}
			encoded := pbf.EncodeBlock(fs)

			start, end := block.Range(task.BlockIndex)
			rng := fmt.Sprintf("%d-%d", start, end)
			path := fmt.Sprintf("%s/%s.pbf", task.FontID, rng)
			if err := s.Write(path, encoded); err != nil {
				return err
			}

			mu.Lock()
			emitted[task.FontID] = append(emitted[task.FontID], rng)
			glyphCount += len(fs.Glyphs)
			mu.Unlock()

			if opts.OnBlockDone != nil {
				opts.OnBlockDone()
			}

			tracer().Debugf("rendered %s (%d glyphs)", path, len(fs.Glyphs))
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, Stats{}, err
	}

	for id, ranges := range emitted {
		sort.Slice(ranges, func(i, j int) bool {
			var ai, aj int
			fmt.Sscanf(ranges[i], "%d-", &ai)
			fmt.Sscanf(ranges[j], "%d-", &aj)
			return ai < aj
		})
		emitted[id] = ranges
	}
	return emitted, Stats{Glyphs: glyphCount}, nil
}

// renderBlock renders every code point in task sequentially against
// each owning font's own outline, producing one fontstack message.
func renderBlock(task renderTask) (pbf.Fontstack, error) {
	start, end := block.Range(task.BlockIndex)
	fs := pbf.Fontstack{
		Name:  task.FontID,
		Range: fmt.Sprintf("%d-%d", start, end),
	}
	for _, cp := range task.CodePoints {
		own, ok := task.byCP[cp]
		if !ok {
			continue
		}
		out, ok, err := own.font.GlyphOutline(cp)
		if err != nil {
			return pbf.Fontstack{}, core.WrapError(core.ErrEncoding, core.EINTERNAL, "rendering code point %d in %s: %v", cp, task.FontID, err)
		}
		if !ok {
			continue
		}
		bm := sdf.Render(out)
		fs.Glyphs = append(fs.Glyphs, glyphFromBitmap(uint32(cp), bm))
	}
	return fs, nil
}

func glyphFromBitmap(id uint32, bm *sdf.Bitmap) pbf.Glyph {
	g := pbf.Glyph{
		ID:      id,
		Width:   uint32(bm.Width),
		Height:  uint32(bm.Height),
		Left:    int32(bm.Left),
		Top:     int32(bm.Top),
		Advance: uint32(bm.Advance),
	}
	if bm.Data != nil {
		g.Bitmap = bm.Data
	}
	return g
}
