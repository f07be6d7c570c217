package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFontsJSONRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	fj := filepath.Join(dir, "fonts.json")
	os.WriteFile(fj, []byte(`[{"files":["../outside.ttf"]}]`), 0644)

	if _, err := loadFontsJSON(dir, fj); err == nil {
		t.Fatal("expected an error for a file path escaping the directory")
	}
}

func TestLoadFontsJSONRejectsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	fj := filepath.Join(dir, "fonts.json")
	os.WriteFile(fj, []byte(`[{"id":"foo","files":[]}]`), 0644)

	if _, err := loadFontsJSON(dir, fj); err == nil {
		t.Fatal("expected an error for an entry with no files")
	}
}

func TestLoadFontsJSONResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.ttf"), []byte("stub"), 0644)
	fj := filepath.Join(dir, "fonts.json")
	os.WriteFile(fj, []byte(`[{"id":"my_font","files":["a.ttf"]}]`), 0644)

	entries, err := loadFontsJSON(dir, fj)
	if err != nil {
		t.Fatalf("loadFontsJSON: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "my_font" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	want := filepath.Join(dir, "a.ttf")
	if entries[0].Files[0] != want {
		t.Errorf("resolved path = %q, want %q", entries[0].Files[0], want)
	}
}

func TestDiscoverFontFilesHonorsFontsJSONOverride(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.ttf"), []byte("stub"), 0644)
	os.WriteFile(filepath.Join(dir, "b.ttf"), []byte("stub"), 0644)
	os.WriteFile(filepath.Join(dir, "fonts.json"), []byte(`[{"id":"combined","files":["a.ttf","b.ttf"]}]`), 0644)

	entries, err := discoverFontFiles(dir)
	if err != nil {
		t.Fatalf("discoverFontFiles: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "combined" || len(entries[0].Files) != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestDiscoverFontFilesFallsBackToGlob(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.ttf"), []byte("stub"), 0644)
	os.WriteFile(filepath.Join(dir, "b.otf"), []byte("stub"), 0644)

	entries, err := discoverFontFiles(dir)
	if err != nil {
		t.Fatalf("discoverFontFiles: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
}
