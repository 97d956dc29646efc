// Package templates holds the fixed catalogue of résumé template slugs,
// their default theme colours, and the placeholder template source text
// the engine world exposes under templates/<name>.typ so the driver
// program's import line resolves to something real.
package templates

import "github.com/foliotype/resumate/internal/core/entities"

// Names lists every template slug in catalogue order. Ported from
// original_source's engine.rs TEMPLATES constant.
var Names = []string{
	"rhyhorn", "azurill", "pikachu", "nosepass", "bronzor", "chikorita",
	"ditto", "gengar", "glalie", "kakuna", "leafish", "onyx",
}

// Default is the fallback slug substituted when a document names an
// unknown template.
const Default = "rhyhorn"

// IsKnown reports whether slug is in the catalogue.
func IsKnown(slug string) bool {
	for _, n := range Names {
		if n == slug {
			return true
		}
	}
	return false
}

// Theme returns the default colour set matching
// original_source's get_template_theme, including its fallback to the
// rhyhorn palette for unrecognised slugs.
func Theme(slug string) entities.Theme {
	if t, ok := themes[slug]; ok {
		return t
	}
	return themes[Default]
}

var themes = map[string]entities.Theme{
	"rhyhorn":   {Background: "#ffffff", Text: "#000000", Primary: "#65a30d"},
	"azurill":   {Background: "#ffffff", Text: "#1f2937", Primary: "#d97706"},
	"pikachu":   {Background: "#ffffff", Text: "#1c1917", Primary: "#ca8a04"},
	"nosepass":  {Background: "#ffffff", Text: "#1f2937", Primary: "#3b82f6"},
	"bronzor":   {Background: "#ffffff", Text: "#1f2937", Primary: "#0891b2"},
	"chikorita": {Background: "#ffffff", Text: "#166534", Primary: "#16a34a"},
	"ditto":     {Background: "#ffffff", Text: "#1f2937", Primary: "#0891b2"},
	"gengar":    {Background: "#ffffff", Text: "#1f2937", Primary: "#67b8c8"},
	"glalie":    {Background: "#ffffff", Text: "#0f172a", Primary: "#14b8a6"},
	"kakuna":    {Background: "#ffffff", Text: "#422006", Primary: "#78716c"},
	"leafish":   {Background: "#ffffff", Text: "#1f2937", Primary: "#9f1239"},
	"onyx":      {Background: "#ffffff", Text: "#111827", Primary: "#dc2626"},
}

// PageSize returns the page dimensions, in points, for a page format.
// Ported from original_source's get_page_size.
func PageSize(format entities.PageFormat) (width, height float64) {
	if format == entities.PageFormatLetter {
		return 612.0, 792.0
	}
	return 595.28, 841.89
}

// Source returns the virtual template program text for slug, used as the
// contents of templates/<slug>.typ in the engine world. The compiler does
// not evaluate this text as a program; it is served so that a binary read
// against a known template path succeeds rather than fails as not-found,
// matching the world's file-presence contract. Layout itself is driven by
// internal/typeset.BuildPlan and the slug's Theme.
func Source(slug string) (string, bool) {
	if !IsKnown(slug) {
		return "", false
	}
	return "#let template(data) = layout(data, theme)\n", true
}
