package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corescout/scout/internal/config"
	"github.com/corescout/scout/internal/models"
	"github.com/corescout/scout/internal/search"
	"github.com/corescout/scout/internal/storage"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, storage.Storage) {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "db.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	engine := search.NewEngine(store, &cfg.Highlight)
	return NewServer(engine, store, cfg, zap.NewNop()), store
}

func TestHandleCreateAndGetDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	body, _ := json.Marshal(models.DocumentInput{Title: "t", Content: "the quick brown fox"})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/documents", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleCreateDocument(w, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	var created map[string]string
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created["id"] == "" {
		t.Fatal("id should be generated when absent")
	}

	r = httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created["id"], nil)
	w = httptest.NewRecorder()
	srv.router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var doc models.Document
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	if doc.Content != "the quick brown fox" {
		t.Errorf("content = %q", doc.Content)
	}
}

func TestHandleCreateDocument_emptyContent(t *testing.T) {
	srv, _ := newTestServer(t)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/documents", strings.NewReader(`{"title":"x"}`))
	w := httptest.NewRecorder()
	srv.handleCreateDocument(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty content should be rejected, got %d", w.Code)
	}
}

func TestHandleSearch(t *testing.T) {
	srv, store := newTestServer(t)
	seedDoc(t, store, "d1", "The quick brown fox jumps over the lazy dog")
	seedDoc(t, store, "d2", "unrelated text")

	body, _ := json.Marshal(models.SearchQuery{Query: "fox"})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleSearch(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp models.SearchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("expected 1 hit, got %+v", resp)
	}
	if !strings.Contains(resp.Results[0].Snippets[0], `<mark class="highlight">fox</mark>`) {
		t.Errorf("snippet not highlighted: %v", resp.Results[0].Snippets)
	}
}

func TestHandleSearch_invalidBody(t *testing.T) {
	srv, _ := newTestServer(t)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader("{"))
	w := httptest.NewRecorder()
	srv.handleSearch(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid body should be rejected, got %d", w.Code)
	}
}

func TestHandleHighlight(t *testing.T) {
	srv, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{
		"text":  "The quick brown fox jumps over the lazy dog",
		"query": "quick fox",
	})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/highlight", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleHighlight(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp highlightResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if strings.Count(resp.Marked, "<mark") != 2 {
		t.Errorf("marked = %q", resp.Marked)
	}
	if len(resp.Snippets) == 0 {
		t.Error("expected snippets")
	}
}

func TestHandleHighlight_optionsOverride(t *testing.T) {
	srv, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{
		"text":            "Fox FOX fox",
		"terms":           []string{"fox"},
		"highlight_class": "hit",
		"case_sensitive":  true,
	})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/highlight", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleHighlight(w, r)
	var resp highlightResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if strings.Count(resp.Marked, `<mark class="hit">`) != 1 {
		t.Errorf("expected one case-sensitive mark with custom class, got %q", resp.Marked)
	}
}

func TestHandleDeleteDocument(t *testing.T) {
	srv, store := newTestServer(t)
	seedDoc(t, store, "d1", "content")

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/documents/d1", nil)
	w := httptest.NewRecorder()
	srv.router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	r = httptest.NewRequest(http.MethodGet, "/api/v1/documents/d1", nil)
	w = httptest.NewRecorder()
	srv.router().ServeHTTP(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestHandleListDocuments_pagination(t *testing.T) {
	srv, store := newTestServer(t)
	seedDoc(t, store, "d1", "one")
	seedDoc(t, store, "d2", "two")
	seedDoc(t, store, "d3", "three")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/documents?limit=2&offset=1", nil)
	w := httptest.NewRecorder()
	srv.router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var body struct {
		Documents []*models.Document `json:"documents"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Documents) != 2 {
		t.Errorf("limit=2 offset=1 should return 2 documents, got %d", len(body.Documents))
	}

	// Malformed and out-of-range values fall back to defaults.
	r = httptest.NewRequest(http.MethodGet, "/api/v1/documents?limit=abc&offset=-3", nil)
	w = httptest.NewRecorder()
	srv.router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	body.Documents = nil
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Documents) != 3 {
		t.Errorf("default paging should return all 3 documents, got %d", len(body.Documents))
	}
}

func TestHandleStatusAndHealth(t *testing.T) {
	srv, store := newTestServer(t)
	seedDoc(t, store, "d1", "content")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	srv.handleStatus(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var status struct {
		Documents int64                  `json:"documents"`
		Config    map[string]interface{} `json:"config"`
	}
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if status.Documents != 1 {
		t.Errorf("documents = %d", status.Documents)
	}
	if status.Config["highlight_class"] != "highlight" {
		t.Errorf("config = %v", status.Config)
	}

	r = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	srv.handleHealth(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func seedDoc(t *testing.T, store storage.Storage, id, content string) {
	t.Helper()
	doc := &models.Document{ID: id, Content: content}
	if err := store.CreateDocument(context.Background(), doc); err != nil {
		t.Fatal(err)
	}
}
