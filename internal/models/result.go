package models

// SearchResult is a single search hit: document identity plus the highlighted
// context snippets shown in the results list. Content is not echoed back;
// snippets carry the relevant windows.
type SearchResult struct {
	DocumentID string   `json:"document_id"`
	Title      string   `json:"title,omitempty"`
	Snippets   []string `json:"snippets"`
	MatchCount int      `json:"match_count"`
	Rank       int      `json:"rank"`
}

// SearchResponse is the response for a search request.
//
// Total is the store's candidate count across all pages. For case-sensitive
// queries candidates are re-verified exactly, and false candidates are
// subtracted only for the returned page, so Total is an upper bound when
// false candidates exist on other pages.
type SearchResponse struct {
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	QueryTime int64           `json:"query_time_ms"`
	Query     string          `json:"query"`
}
