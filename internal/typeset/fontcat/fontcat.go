// Package fontcat builds the process-wide font catalogue the typesetting
// engine's world exposes: bundled fonts plus whatever the host operating
// system makes available, scanned once and shared across every render.
package fontcat

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// allowedExt is the set of font container extensions the scanner opens.
// woff/woff2 entries are included in the scan per spec but will fail
// sfnt.Parse and be swallowed, since no WOFF decoder is wired in.
var allowedExt = map[string]bool{
	".ttf": true, ".otf": true, ".ttc": true, ".woff": true, ".woff2": true,
}

// Entry is one parsed font: its source path, the raw bytes (kept so a
// rasteriser can re-parse them with a different font library), and the
// parsed outline data used for metrics. Bundled entries have an empty Path.
type Entry struct {
	Path string
	Name string
	Data []byte
	Font *sfnt.Font
}

// Catalogue is the shared, lazily-built font set for the process.
type Catalogue struct {
	Entries []Entry
}

// ByName returns the first entry whose family name contains name
// case-insensitively, or ok=false if none matched.
func (c *Catalogue) ByName(name string) (Entry, bool) {
	name = strings.ToLower(name)
	for _, e := range c.Entries {
		if strings.Contains(strings.ToLower(e.Name), name) {
			return e, true
		}
	}
	return Entry{}, false
}

var (
	once    sync.Once
	catalog *Catalogue
)

// Load returns the process-wide catalogue, building it on first call.
// Bundled is a map of asset name to font bytes, embedded at build time by
// the caller (see internal/typeset/assets). System directories are
// scanned per platform in addition to the bundled set.
func Load(bundled map[string][]byte) *Catalogue {
	once.Do(func() {
		catalog = build(bundled)
	})
	return catalog
}

func build(bundled map[string][]byte) *Catalogue {
	c := &Catalogue{}
	var buf sfnt.Buffer
	for name, data := range bundled {
		f, err := sfnt.Parse(data)
		if err != nil {
			continue
		}
		c.Entries = append(c.Entries, Entry{Name: familyName(f, &buf, name), Data: data, Font: f})
	}
	for _, dir := range systemFontDirs() {
		scanDir(c, dir)
	}
	return c
}

// systemFontDirs lists the platform-appropriate font directories the
// engine world falls back to after bundled assets, per spec.md's
// three-OS-family list.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts"}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	default:
		home, _ := os.UserHomeDir()
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// scanDir recursively walks dir, refusing to follow symlinks, opening
// only recognised font extensions, and swallowing individual parse
// failures so one corrupt font never aborts catalogue construction.
func scanDir(c *Catalogue, dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !allowedExt[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil
		}
		var buf sfnt.Buffer
		c.Entries = append(c.Entries, Entry{Path: path, Name: familyName(f, &buf, filepath.Base(path)), Data: data, Font: f})
		return nil
	})
}

// familyName reads the font's own family-name table, falling back to
// fallback when the table is absent or unreadable.
func familyName(f *sfnt.Font, buf *sfnt.Buffer, fallback string) string {
	name, err := f.Name(buf, sfnt.NameIDFamily)
	if err != nil || name == "" {
		return fallback
	}
	return name
}
