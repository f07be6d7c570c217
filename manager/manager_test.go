package manager

import "testing"

func TestMergeCoverageFirstFileWinsOnOverlap(t *testing.T) {
	// file1 has U+0041, U+0042; file2 has U+0042, U+0043, matching the
	// two-file merge scenario: the overlapping U+0042 is owned by file1.
	fileA := []rune{0x41, 0x42}
	fileB := []rune{0x42, 0x43}

	owners := mergeCoverage([][]rune{fileA, fileB})

	if owners[0x41] != 0 {
		t.Errorf("0x41 owner = %d, want 0 (file A)", owners[0x41])
	}
	if owners[0x42] != 0 {
		t.Errorf("0x42 owner = %d, want 0 (file A wins the overlap)", owners[0x42])
	}
	if owners[0x43] != 1 {
		t.Errorf("0x43 owner = %d, want 1 (file B)", owners[0x43])
	}
	if len(owners) != 3 {
		t.Fatalf("expected 3 covered code points, got %d", len(owners))
	}
}

func TestMergeCoverageSingleFile(t *testing.T) {
	owners := mergeCoverage([][]rune{{0x20, 0x21}})
	if len(owners) != 2 || owners[0x20] != 0 || owners[0x21] != 0 {
		t.Errorf("unexpected owners: %v", owners)
	}
}

func TestMergeCoverageEmpty(t *testing.T) {
	owners := mergeCoverage(nil)
	if len(owners) != 0 {
		t.Errorf("expected no owners for no files, got %d", len(owners))
	}
}

func TestMergeCoverageThreeFilesRankOrder(t *testing.T) {
	// A later-priority file's exclusive code point still gets included,
	// but any code point two files share always resolves to the lower
	// rank (earlier-added) file, never the later one.
	owners := mergeCoverage([][]rune{{0x100}, {0x100, 0x101}, {0x100, 0x101, 0x102}})
	if owners[0x100] != 0 {
		t.Errorf("0x100 owner = %d, want 0", owners[0x100])
	}
	if owners[0x101] != 1 {
		t.Errorf("0x101 owner = %d, want 1", owners[0x101])
	}
	if owners[0x102] != 2 {
		t.Errorf("0x102 owner = %d, want 2", owners[0x102])
	}
}
