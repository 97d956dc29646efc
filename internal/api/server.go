// Package api exposes the render engine and format adapters over HTTP,
// matching the endpoint and error-envelope contract the CLI's "serve"
// command advertises.
package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/foliotype/resumate/internal/api/middleware"
)

// maxBodyBytes bounds every request body, including the base64-encoded
// social-export ZIP submitted to POST /api/parse.
const maxBodyBytes = 10 << 20 // 10 MiB

// requestIDHeader is set on every response so a caller can correlate a
// request against server-side logs.
const requestIDHeader = "X-Request-Id"

// NewHandler builds the full routed, middleware-wrapped HTTP handler.
// apiKey, when non-empty, turns on bearer-token auth for every route but
// /health.
func NewHandler(s *Server, apiKey string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("GET /api/templates/{id}/thumbnail", s.handleTemplateThumbnail)
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("POST /api/render/pdf", s.handleRenderPDF)
	mux.HandleFunc("POST /api/render/preview", s.handleRenderPreview)
	mux.HandleFunc("POST /api/validate", s.handleValidate)

	var h http.Handler = mux
	h = limitBody(h)
	if apiKey != "" {
		h = middleware.Auth(apiKey)(h)
	}
	h = middleware.Logger(h)
	h = middleware.CORS(h)
	h = requestID(h)
	h = middleware.Recovery(h)
	return h
}

// limitBody caps every request body at maxBodyBytes, per spec.md's body
// limit.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// requestID stamps every response with a fresh correlation id, so a
// client and the server's own logs can be tied to the same request.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(requestIDHeader, uuid.NewString())
		next.ServeHTTP(w, r)
	})
}
