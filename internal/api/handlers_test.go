package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/typeset"
)

func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	engine := typeset.NewEngine(nil)
	s := NewServer(engine, nil)
	return s, NewHandler(s, "")
}

func TestHandleHealth_ReturnsOK(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestHandleTemplates_ListsCatalogue(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []templateEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)
}

func TestHandleTemplateThumbnail_RendersPNG(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/templates/onyx/thumbnail", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHandleParse_ExplicitRustumeFormat(t *testing.T) {
	_, h := testServer(t)
	body, _ := json.Marshal(parseRequest{Format: "rustume", Data: `{"basics":{"name":"Jane Doe"}}`})
	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc entities.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Jane Doe", doc.Basics.Name)
}

func TestHandleParse_AutoDetectsFormatWhenOmitted(t *testing.T) {
	_, h := testServer(t)
	body, _ := json.Marshal(parseRequest{Data: `{"basics":{"name":"Jane Doe","headline":"Engineer"}}`})
	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleParse_Base64DecodesPayloadFirst(t *testing.T) {
	_, h := testServer(t)
	raw := `{"basics":{"name":"Jane Doe"}}`
	body, _ := json.Marshal(parseRequest{Format: "rustume", Data: base64.StdEncoding.EncodeToString([]byte(raw)), Base64: true})
	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleParse_MalformedBodyIs400(t *testing.T) {
	_, h := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidate_ValidDocument(t *testing.T) {
	_, h := testServer(t)
	doc := entities.NewDocument("Jane Doe")
	body, _ := json.Marshal(renderRequest{Document: doc})
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp validateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestHandleValidate_InvalidDocumentIs422(t *testing.T) {
	_, h := testServer(t)
	body, _ := json.Marshal(renderRequest{Document: entities.Document{}})
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleRenderPDF_ProducesPDFBytes(t *testing.T) {
	_, h := testServer(t)
	doc := entities.NewDocument("Jane Doe")
	body, _ := json.Marshal(renderRequest{Document: doc})
	req := httptest.NewRequest(http.MethodPost, "/api/render/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}

func TestHandleRenderPDF_InvalidDocumentIs422(t *testing.T) {
	_, h := testServer(t)
	body, _ := json.Marshal(renderRequest{Document: entities.Document{}})
	req := httptest.NewRequest(http.MethodPost, "/api/render/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleRenderPreview_UnknownPageIsNotFound(t *testing.T) {
	_, h := testServer(t)
	doc := entities.NewDocument("Jane Doe")
	body, _ := json.Marshal(renderRequest{Document: doc, Page: 7})
	req := httptest.NewRequest(http.MethodPost, "/api/render/preview", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_RequiresBearerTokenWhenConfigured(t *testing.T) {
	engine := typeset.NewEngine(nil)
	s := NewServer(engine, nil)
	h := NewHandler(s, "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
