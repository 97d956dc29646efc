package api

import "github.com/foliotype/resumate/internal/core/entities"

// parseRequest is the POST /api/parse body: data is either raw text (for
// json-resume/rrv3/rustume) or, when base64 is true, a base64-encoded
// payload (required for the linkedin ZIP export).
type parseRequest struct {
	Format string `json:"format"`
	Data   string `json:"data"`
	Base64 bool   `json:"base64"`
}

// renderRequest is the body shared by POST /api/render/pdf,
// POST /api/render/preview, and POST /api/validate: a canonical document.
type renderRequest struct {
	Document entities.Document `json:"document"`
	Page     int               `json:"page"`
}

// errorResponse is the envelope every failing endpoint returns.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// templateEntry describes one catalogue entry in GET /api/templates.
type templateEntry struct {
	ID         string `json:"id"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
}

// validateResponse is the body of POST /api/validate.
type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
