package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// readInput reads path's bytes, treating "-" as stdin. It returns the
// bytes alongside path's base name, which callers pass to format
// auto-detection for its extension check.
func readInput(path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "", err
	}
	data, err := os.ReadFile(path)
	return data, filepath.Base(path), err
}

// writeOutput writes data to path, treating "" and "-" as stdout.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// loadBundledFonts reads every .ttf/.otf file directly under dir into
// memory, keyed by file name, for the renderer's Bundled font map. An
// empty dir yields a nil map, which the renderer falls back from to the
// system font directories it scans on its own.
func loadBundledFonts(dir string) (map[string][]byte, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	fonts := make(map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		fonts[name] = data
	}
	return fonts, nil
}
