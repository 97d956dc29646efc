// Package formats dispatches parsing to the right format adapter by name
// and implements the auto-detection heuristics the CLI and HTTP surfaces
// both rely on when a caller does not name a format explicitly.
package formats

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/foliotype/resumate/internal/adapters/jsonresume"
	"github.com/foliotype/resumate/internal/adapters/linkedin"
	"github.com/foliotype/resumate/internal/adapters/rrv3"
	"github.com/foliotype/resumate/internal/core/entities"
)

// Known format names, matching the HTTP API's {format} enum and the CLI's
// --format flag values.
const (
	JSONResume = "json-resume"
	RRv3       = "rrv3"
	LinkedIn   = "linkedin"
	Rustume    = "rustume" // the canonical document shape itself
)

// Parse routes data to the adapter named by format.
func Parse(format string, data []byte) (entities.Document, error) {
	switch format {
	case JSONResume:
		return jsonresume.Parse(data)
	case RRv3:
		return rrv3.Parse(data)
	case LinkedIn:
		return linkedin.Parse(data)
	case Rustume:
		// Start from the authoring defaults so fields the input omits keep
		// valid values (collection layout, theme, typography).
		doc := entities.NewDocument("")
		if err := json.Unmarshal(data, &doc); err != nil {
			return entities.Document{}, &entities.ReadError{Format: Rustume, Message: err.Error(), Err: err}
		}
		return doc, nil
	default:
		return entities.Document{}, &entities.ReadError{Format: format, Message: fmt.Sprintf("unknown format %q", format)}
	}
}

// Detect applies the filename/shape heuristics: a ".zip" extension means a
// social-export archive; otherwise the JSON body's top-level keys decide
// between the v3 predecessor shape, the v1 shape, and the canonical shape,
// falling back to v1 when nothing else matches.
func Detect(filename string, data []byte) string {
	if strings.HasSuffix(strings.ToLower(filename), ".zip") {
		return LinkedIn
	}

	var probe struct {
		Sections json.RawMessage `json:"sections"`
		Metadata json.RawMessage `json:"metadata"`
		Basics   struct {
			Label    json.RawMessage `json:"label"`
			Headline json.RawMessage `json:"headline"`
		} `json:"basics"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return JSONResume
	}

	if probe.Sections != nil && probe.Metadata != nil {
		return RRv3
	}
	if probe.Basics.Headline != nil {
		return Rustume
	}
	if probe.Basics.Label != nil {
		return JSONResume
	}
	return JSONResume
}
