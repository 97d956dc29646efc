// Package typeset turns a canonical document into the driver program the
// original implementation would hand to the Typst compiler, and then,
// since this port carries no typesetting-engine dependency, interprets
// that program directly into PDF and PNG bytes instead of compiling it.
package typeset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/core/usecases"
	"github.com/foliotype/resumate/internal/normalize"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// Engine ties together source generation, compilation, and the two output
// projections. It holds no per-render state; every method is a pure
// function of its document argument plus the shared font catalogue.
type Engine struct {
	Bundled     map[string][]byte
	ClockOffset int
	Logger      usecases.Logger
}

// NewEngine creates an Engine with the given bundled font assets. Pass nil
// to rely on system font directories alone. The engine logs nothing by
// default; set Logger on the returned value to observe template fallbacks.
func NewEngine(bundled map[string][]byte) *Engine {
	return &Engine{Bundled: bundled, Logger: usecases.NoopLogger{}}
}

// GenerateSource runs the six-step driver-generation algorithm: validate
// margin and font size, fall back to the default template for an unknown
// slug, normalise every rich-text field, serialise to compact JSON, escape
// for embedding, and assemble the driver program text.
func (e *Engine) GenerateSource(doc entities.Document) (string, error) {
	margin := doc.Metadata.Page.Margin
	if margin < 0 || margin > 100 {
		return "", &entities.ConfigError{Message: fmt.Sprintf("margin %.2f out of range 0-100", margin)}
	}
	size := doc.Metadata.Typography.Font.Size
	if size < 6 || size > 72 {
		return "", &entities.ConfigError{Message: fmt.Sprintf("font size %.2f out of range 6-72", size)}
	}

	template := doc.Metadata.Template
	if !templates.IsKnown(template) {
		e.logger().Warn("unknown template, falling back to default", "template", template, "fallback", templates.Default)
		template = templates.Default
	}

	normalized, err := normalizeDocument(doc)
	if err != nil {
		return "", &entities.ConfigError{Message: fmt.Sprintf("normalising rich text: %s", err)}
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", &entities.ConfigError{Message: fmt.Sprintf("serialising document: %s", err)}
	}

	paper := "a4"
	if doc.Metadata.Page.Format == entities.PageFormatLetter {
		paper = "us-letter"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#import \"templates/%s.typ\": template\n", template)
	fmt.Fprintf(&b, "#set page(paper: %q, margin: %.2fpt)\n", paper, margin)
	fmt.Fprintf(&b, "#set text(font: \"%s\", size: %.2fpt)\n", escapeDriverString(doc.Metadata.Typography.Font.Family), size)
	fmt.Fprintf(&b, "#let data = json.decode(\"%s\")\n", escapeDriverString(string(payload)))
	b.WriteString("#template(data)\n")
	return b.String(), nil
}

func (e *Engine) logger() usecases.Logger {
	if e.Logger == nil {
		return usecases.NoopLogger{}
	}
	return e.Logger
}

// escapeDriverString escapes a value for embedding inside a
// double-quoted engine string literal: backslash first, then the quote.
func escapeDriverString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// normalizeDocument returns a copy of doc with every rich-text field
// (summaries and descriptions across all section items, including custom
// sections) run through the rich-text normaliser. Plain-text fields are
// left untouched.
func normalizeDocument(doc entities.Document) (entities.Document, error) {
	out := doc
	var err error

	if out.Basics.Summary, err = normalize.RichText(out.Basics.Summary); err != nil {
		return out, err
	}
	if out.Sections.Summary.Content, err = normalize.RichText(out.Sections.Summary.Content); err != nil {
		return out, err
	}

	out.Sections.Experience = out.Sections.Experience.Clone()
	for i, it := range out.Sections.Experience.Items {
		if it.Summary, err = normalize.RichText(it.Summary); err != nil {
			return out, err
		}
		out.Sections.Experience.Items[i] = it
	}
	out.Sections.Education = out.Sections.Education.Clone()
	for i, it := range out.Sections.Education.Items {
		if it.Summary, err = normalize.RichText(it.Summary); err != nil {
			return out, err
		}
		out.Sections.Education.Items[i] = it
	}
	out.Sections.Projects = out.Sections.Projects.Clone()
	for i, it := range out.Sections.Projects.Items {
		if it.Description, err = normalize.RichText(it.Description); err != nil {
			return out, err
		}
		out.Sections.Projects.Items[i] = it
	}
	out.Sections.Volunteer = out.Sections.Volunteer.Clone()
	for i, it := range out.Sections.Volunteer.Items {
		if it.Summary, err = normalize.RichText(it.Summary); err != nil {
			return out, err
		}
		out.Sections.Volunteer.Items[i] = it
	}
	out.Sections.Awards = out.Sections.Awards.Clone()
	for i, it := range out.Sections.Awards.Items {
		if it.Summary, err = normalize.RichText(it.Summary); err != nil {
			return out, err
		}
		out.Sections.Awards.Items[i] = it
	}
	out.Sections.Publications = out.Sections.Publications.Clone()
	for i, it := range out.Sections.Publications.Items {
		if it.Summary, err = normalize.RichText(it.Summary); err != nil {
			return out, err
		}
		out.Sections.Publications.Items[i] = it
	}
	out.Sections.References = out.Sections.References.Clone()
	for i, it := range out.Sections.References.Items {
		if it.Description, err = normalize.RichText(it.Description); err != nil {
			return out, err
		}
		out.Sections.References.Items[i] = it
	}

	if len(out.Sections.Custom) > 0 {
		custom := make(map[string]entities.Collection[entities.CustomItem], len(out.Sections.Custom))
		for key, coll := range out.Sections.Custom {
			coll = coll.Clone()
			for i, it := range coll.Items {
				if it.Description, err = normalize.RichText(it.Description); err != nil {
					return out, err
				}
				coll.Items[i] = it
			}
			custom[key] = coll
		}
		out.Sections.Custom = custom
	}

	return out, nil
}

// Compile interprets a generated driver program in place of the real
// typesetting compiler: it parses out the JSON payload embedded by
// GenerateSource and decodes it back into a canonical document. Any
// mismatch against the expected shape becomes a diagnostic positioned at
// the byte offset of the failing line, flattened the same way a real
// compiler's would be.
func Compile(source string) (entities.Document, error) {
	const marker = `#let data = json.decode("`
	start := strings.Index(source, marker)
	if start < 0 {
		diag := Diagnostic{VirtualPath: mainPath, Offset: 0, Message: "missing json.decode directive"}
		return entities.Document{}, &entities.EngineError{Message: Flatten(source, []Diagnostic{diag})}
	}
	start += len(marker)
	end := matchingQuote(source, start)
	if end < 0 {
		diag := Diagnostic{VirtualPath: mainPath, Offset: start, Message: "unterminated json.decode string"}
		return entities.Document{}, &entities.EngineError{Message: Flatten(source, []Diagnostic{diag})}
	}

	escaped := source[start:end]
	payload := unescapeDriverString(escaped)

	var doc entities.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		diag := Diagnostic{VirtualPath: mainPath, Offset: start, Message: err.Error()}
		return entities.Document{}, &entities.EngineError{Message: Flatten(source, []Diagnostic{diag})}
	}
	return doc, nil
}

// matchingQuote finds the index of the unescaped closing quote starting
// the scan at s[from].
func matchingQuote(s string, from int) int {
	i := from
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
		case '"':
			return i
		default:
			i++
		}
	}
	return -1
}

func unescapeDriverString(s string) string {
	var b bytes.Buffer
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
