package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foliotype/resumate/internal/cache"
	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/core/usecases"
	"github.com/foliotype/resumate/internal/formats"
	"github.com/foliotype/resumate/internal/typeset"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// Server holds the collaborators every handler needs: the render engine,
// the thumbnail cache built on top of it, and a logger for diagnostics.
type Server struct {
	Engine     *typeset.Engine
	Thumbnails *cache.ThumbnailCache
	Logger     usecases.Logger
}

// NewServer wires an engine and a thumbnail cache into a ready Server.
func NewServer(engine *typeset.Engine, logger usecases.Logger) *Server {
	if logger == nil {
		logger = usecases.NoopLogger{}
	}
	engine.Logger = logger
	return &Server{
		Engine:     engine,
		Thumbnails: cache.New(engine),
		Logger:     logger,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	entries := make([]templateEntry, 0, len(templates.Names))
	for _, slug := range templates.Names {
		theme := templates.Theme(slug)
		entries = append(entries, templateEntry{
			ID:         slug,
			Background: theme.Background,
			Text:       theme.Text,
			Primary:    theme.Primary,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleTemplateThumbnail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusNotFound, "unknown template", "")
		return
	}
	png, err := s.Thumbnails.Get(id)
	if err != nil {
		s.writeEngineFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}

	raw := []byte(req.Data)
	if req.Base64 {
		decoded, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			writeError(w, http.StatusBadRequest, "malformed base64 payload", err.Error())
			return
		}
		raw = decoded
	}

	format := req.Format
	if format == "" {
		format = formats.Detect("", raw)
	}

	doc, err := formats.Parse(format, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse input", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}
	verrs := req.Document.Validate()
	if !verrs.HasErrors() {
		writeJSON(w, http.StatusOK, validateResponse{Valid: true})
		return
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, e.Error())
	}
	writeJSON(w, http.StatusUnprocessableEntity, validateResponse{Valid: false, Errors: messages})
}

func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}
	if verrs := req.Document.Validate(); verrs.HasErrors() {
		writeError(w, http.StatusUnprocessableEntity, "document failed validation", verrs.Error())
		return
	}
	pdf, err := s.Engine.RenderPDF(req.Document)
	if err != nil {
		s.writeEngineFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleRenderPreview(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}
	if verrs := req.Document.Validate(); verrs.HasErrors() {
		writeError(w, http.StatusUnprocessableEntity, "document failed validation", verrs.Error())
		return
	}
	png, err := s.Engine.RenderPreview(req.Document, req.Page)
	if err != nil {
		s.writeEngineFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// writeEngineFailure maps an engine-side error to the appropriate status
// code: a not-found preview page stays 404, an out-of-range renderer
// parameter is the caller's malformed input (400), and anything else is
// an internal render failure (500).
func (s *Server) writeEngineFailure(w http.ResponseWriter, err error) {
	var notFound *entities.NotFoundError
	var configErr *entities.ConfigError
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error(), "")
	case errors.As(err, &configErr):
		writeError(w, http.StatusBadRequest, "invalid render configuration", configErr.Error())
	default:
		s.Logger.Error("render failed", err)
		writeError(w, http.StatusInternalServerError, "internal render failure", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}
