package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fontEntry is one element of a fonts.json override file: an explicit
// grouping of files under one font-id, optionally overriding the
// metadata that would otherwise be derived from the name table.
type fontEntry struct {
	ID     string   `json:"id,omitempty"`
	Files  []string `json:"files"`
	Style  string   `json:"style,omitempty"`
	Weight int      `json:"weight,omitempty"`
	Width  string   `json:"width,omitempty"`
	Italic bool     `json:"italic,omitempty"`
}

// loadFontsJSON reads and validates a fonts.json found in dir. Every
// file path is resolved relative to dir and rejected if it escapes it
// (a directory traversal that fonts.json has no legitimate reason to
// need), and every entry must list at least one file.
func loadFontsJSON(dir, path string) ([]fontEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var entries []fontEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, e := range entries {
		if len(e.Files) == 0 {
			return nil, fmt.Errorf("%s: entry %d has no files", path, i)
		}
		for j, f := range e.Files {
			resolved := filepath.Join(dir, f)
			rel, err := filepath.Rel(dir, resolved)
			if err != nil || strings.HasPrefix(rel, "..") {
				return nil, fmt.Errorf("%s: entry %d file %q escapes directory %s", path, i, f, dir)
			}
			entries[i].Files[j] = resolved
		}
	}
	return entries, nil
}

// discoverFontFiles walks root, honoring any fonts.json in a directory
// in place of plain recursive scanning of that directory: a directory
// with a fonts.json contributes exactly the (id, files) groups it
// names; other directories contribute every *.ttf/*.otf file found.
func discoverFontFiles(root string) ([]fontEntry, error) {
	var entries []fontEntry
	seen := make(map[string]bool)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		fj := filepath.Join(path, "fonts.json")
		if _, statErr := os.Stat(fj); statErr == nil {
			overrides, err := loadFontsJSON(path, fj)
			if err != nil {
				return err
			}
			for _, e := range overrides {
				entries = append(entries, e)
				for _, f := range e.Files {
					seen[f] = true
				}
			}
			return nil
		}

		matches, err := filepath.Glob(filepath.Join(path, "*.ttf"))
		if err != nil {
			return err
		}
		otf, err := filepath.Glob(filepath.Join(path, "*.otf"))
		if err != nil {
			return err
		}
		matches = append(matches, otf...)
		for _, m := range matches {
			if seen[m] {
				continue
			}
			entries = append(entries, fontEntry{Files: []string{m}})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
