// Package resumate exposes the three core operations — parse, validate,
// render — as a plain importable Go API, independent of the CLI and HTTP
// surfaces built on top of it. It carries no `syscall/js` code itself,
// but keeps the surface narrow and synchronous enough that a `GOOS=js`
// build could bind these same functions into a browser host without
// restructuring the core; the browser binding itself is out of scope
// here.
package resumate

import (
	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/formats"
	"github.com/foliotype/resumate/internal/typeset"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// Format names accepted by Parse, re-exported from internal/formats so
// callers outside the module don't need to know about it.
const (
	FormatJSONResume = formats.JSONResume
	FormatRRv3       = formats.RRv3
	FormatLinkedIn   = formats.LinkedIn
	FormatRustume    = formats.Rustume
)

// Document is the canonical résumé document every operation here reads
// or produces.
type Document = entities.Document

// DetectFormat applies the filename/shape auto-detection heuristics,
// returning one of the Format constants above.
func DetectFormat(filename string, data []byte) string {
	return formats.Detect(filename, data)
}

// Parse converts raw bytes in the named format into a canonical document.
func Parse(format string, data []byte) (Document, error) {
	return formats.Parse(format, data)
}

// Validate runs every constraint check on doc and returns the full set of
// violations found, or an empty slice when doc is valid.
func Validate(doc Document) entities.ValidationErrors {
	return doc.Validate()
}

// Engine renders a canonical document to PDF or a PNG preview. Create one
// with NewEngine, passing fonts loaded from disk to make them available
// ahead of the system font directories. The zero value has no underlying
// renderer, and its render methods dereference a nil engine.
type Engine struct {
	engine *typeset.Engine
}

// NewEngine creates a renderer, optionally seeded with bundled font
// bytes keyed by file name.
func NewEngine(bundledFonts map[string][]byte) *Engine {
	return &Engine{engine: typeset.NewEngine(bundledFonts)}
}

// RenderPDF renders doc to PDF bytes.
func (e *Engine) RenderPDF(doc Document) ([]byte, error) {
	return e.engine.RenderPDF(doc)
}

// RenderPreview renders page of doc to a PNG raster preview.
func (e *Engine) RenderPreview(doc Document, page int) ([]byte, error) {
	return e.engine.RenderPreview(doc, page)
}

// Templates lists the fixed template catalogue slugs, in catalogue
// order, the default slug first-marked by DefaultTemplate.
func Templates() []string {
	return templates.Names
}

// DefaultTemplate is the fallback slug substituted for an unknown one.
func DefaultTemplate() string {
	return templates.Default
}
