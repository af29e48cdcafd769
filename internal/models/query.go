package models

import "fmt"

// SearchQuery represents a search request. Query is free text (tokens of two
// bytes or fewer are dropped during normalization); Terms, when set, is an
// explicit term list taken verbatim and wins over Query.
type SearchQuery struct {
	Query          string   `json:"query"`
	Terms          []string `json:"terms,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Offset         int      `json:"offset,omitempty"`
	CaseSensitive  bool     `json:"case_sensitive,omitempty"`
	HighlightClass string   `json:"highlight_class,omitempty"`
	ContextLength  int      `json:"context_length,omitempty"`
	MaxSnippets    int      `json:"max_snippets,omitempty"`
}

// Validate ensures the search query has valid fields and sets defaults.
// Returns an error if both Query and Terms are empty; otherwise normalizes
// limit and offset.
func (q *SearchQuery) Validate() error {
	if q.Query == "" && len(q.Terms) == 0 {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}
