package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/corescout/scout/internal/highlight"
	"github.com/corescout/scout/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request", zap.String("query", query.Query), zap.Int("limit", query.Limit))
	response, err := s.engine.Search(r.Context(), &query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

// highlightRequest is raw text plus a query for direct rendering, without
// touching storage. Terms wins over Query when both are set.
type highlightRequest struct {
	Text           string   `json:"text"`
	Query          string   `json:"query,omitempty"`
	Terms          []string `json:"terms,omitempty"`
	HighlightClass string   `json:"highlight_class,omitempty"`
	ContextLength  int      `json:"context_length,omitempty"`
	MaxSnippets    int      `json:"max_snippets,omitempty"`
	CaseSensitive  bool     `json:"case_sensitive,omitempty"`
}

type highlightResponse struct {
	Marked   string   `json:"marked"`
	Snippets []string `json:"snippets"`
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	var req highlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	terms := req.Terms
	if len(terms) == 0 {
		terms = highlight.QueryTerms(req.Query)
	}
	opts := s.config.Highlight.Options()
	if req.HighlightClass != "" {
		opts.HighlightClass = req.HighlightClass
	}
	if req.ContextLength != 0 {
		opts.ContextLength = req.ContextLength
	}
	if req.MaxSnippets != 0 {
		opts.MaxSnippets = req.MaxSnippets
	}
	if req.CaseSensitive {
		opts.CaseSensitive = true
	}
	marked, snippets := s.engine.Highlight(req.Text, terms, opts)
	s.respondJSON(w, http.StatusOK, highlightResponse{Marked: marked, Snippets: snippets})
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var input models.DocumentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Content == "" {
		s.respondError(w, http.StatusBadRequest, "content is required")
		return
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	s.logger.Debug("store document request", zap.String("id", input.ID), zap.String("title", input.Title))
	doc := &models.Document{
		ID:       input.ID,
		Title:    input.Title,
		Content:  input.Content,
		Metadata: input.Metadata,
	}
	if err := s.storage.UpsertDocument(r.Context(), doc); err != nil {
		s.logger.Error("store failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"id": doc.ID, "status": "stored"})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.storage.GetDocument(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 100)
	if limit < 1 || limit > 100 {
		limit = 100
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	docs, err := s.storage.ListDocuments(r.Context(), offset, limit)
	if err != nil {
		s.logger.Error("list failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

// queryInt reads an integer query parameter, falling back on absent or
// malformed values.
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete document request", zap.String("id", id))
	if err := s.storage.DeleteDocument(r.Context(), id); err != nil {
		s.logger.Error("deletion failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	docCount, err := s.storage.CountDocuments(r.Context())
	if err != nil {
		s.logger.Error("status: count documents failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docCount,
		"config": map[string]interface{}{
			"highlight_class":        s.config.Highlight.Class,
			"context_length":         s.config.Highlight.ContextLength,
			"snippet_context_length": s.config.Highlight.SnippetContextLength,
			"max_snippets":           s.config.Highlight.MaxSnippets,
			"case_sensitive":         s.config.Highlight.CaseSensitive,
			"database_path":          s.config.Storage.DatabasePath,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
