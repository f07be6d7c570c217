// Package block partitions a font's covered code points into the fixed
// 256-wide ranges the glyph container is organized around, and produces
// one render task per non-empty range.
//
// The BMP is covered by 256 blocks of 256 code points each. A block is
// only emitted if at least one of its code points has a renderable
// glyph, matching the "only non-empty blocks are emitted" rule.
package block

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Size is the number of code points covered by one block.
const Size = 256

// Count is the number of possible blocks over the BMP ([0, 65535]).
const Count = 0x10000 / Size

// Index returns the block index a code point falls into.
func Index(codePoint rune) int {
	return int(codePoint) / Size
}

// Range returns the inclusive [start, end] code point bounds of a block.
func Range(index int) (start, end rune) {
	start = rune(index * Size)
	end = rune(index*Size + Size - 1)
	return
}

// Task is one (font-id, block) unit of rendering work: a font identity
// plus the ascending, deduplicated list of code points to render for it.
type Task struct {
	FontID     string
	BlockIndex int
	CodePoints []rune
}

// Partition groups a set of covered code points into ascending-ordered,
// non-empty blocks for one font-id. The input need not be sorted or
// deduplicated; the code points within each returned Task always are.
func Partition(fontID string, codePoints []rune) []Task {
	byBlock := make(map[int]*treeset.Set, Count)
	for _, cp := range codePoints {
		idx := Index(cp)
		set, ok := byBlock[idx]
		if !ok {
			set = treeset.NewWith(utils.Comparator(runeComparator))
			byBlock[idx] = set
		}
		set.Add(cp)
	}

	indices := make([]int, 0, len(byBlock))
	for idx := range byBlock {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	tasks := make([]Task, 0, len(indices))
	for _, idx := range indices {
		values := byBlock[idx].Values()
		cps := make([]rune, len(values))
		for i, v := range values {
			cps[i] = v.(rune)
		}
		tasks = append(tasks, Task{FontID: fontID, BlockIndex: idx, CodePoints: cps})
	}
	return tasks
}

func runeComparator(a, b interface{}) int {
	ra, rb := a.(rune), b.(rune)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
