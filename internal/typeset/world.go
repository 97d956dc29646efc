package typeset

import (
	"time"

	"github.com/foliotype/resumate/internal/typeset/fontcat"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// World is the read-only source-and-resource environment the engine
// compiles against: one generated driver program, the fixed template
// catalogue, the process-wide font catalogue, and a clock. It is
// constructed fresh per render; the font catalogue and template table
// underneath it are shared and lazily built once per process.
type World struct {
	Source    string
	Fonts     *fontcat.Catalogue
	clockHour int
}

// mainPath is the virtual path the generated driver program is served
// under.
const mainPath = "main.typ"

// NewWorld builds a world around a freshly generated driver source. bundled
// is the set of statically embedded font assets; pass nil to rely on
// system directories alone.
func NewWorld(source string, bundled map[string][]byte, clockOffsetHours int) *World {
	return &World{Source: source, Fonts: fontcat.Load(bundled), clockHour: clockOffsetHours}
}

// ReadSource returns the contents of a virtual source path: main.typ (the
// driver) or templates/<slug>.typ (the catalogue). Any other path,
// including every binary file, fails not-found — the world never reaches
// outside its own embedded resources.
func (w *World) ReadSource(virtualPath string) (string, bool) {
	if virtualPath == mainPath {
		return w.Source, true
	}
	const prefix = "templates/"
	const suffix = ".typ"
	if len(virtualPath) > len(prefix)+len(suffix) && virtualPath[:len(prefix)] == prefix {
		slug := virtualPath[len(prefix) : len(virtualPath)-len(suffix)]
		return templates.Source(slug)
	}
	return "", false
}

// ReadBinary always fails; the engine world is never permitted to reach
// external data.
func (w *World) ReadBinary(string) ([]byte, bool) {
	return nil, false
}

// Today returns the current UTC date shifted by the world's configured
// clock offset in hours.
func (w *World) Today() time.Time {
	return time.Now().UTC().Add(time.Duration(w.clockHour) * time.Hour)
}
