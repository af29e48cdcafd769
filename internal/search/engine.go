// Package search composes storage and the highlight engine into the search API.
package search

import (
	"context"
	"time"

	"github.com/corescout/scout/internal/config"
	"github.com/corescout/scout/internal/highlight"
	"github.com/corescout/scout/internal/models"
	"github.com/corescout/scout/internal/storage"
)

// Engine runs literal-substring search over stored documents and renders each
// hit as highlighted context snippets. There is no relevance scoring; results
// follow storage order (most recently updated first).
type Engine struct {
	storage storage.Storage
	config  *config.HighlightConfig
}

// NewEngine creates a search engine with the given dependencies.
func NewEngine(storage storage.Storage, cfg *config.HighlightConfig) *Engine {
	return &Engine{storage: storage, config: cfg}
}

// Search finds documents containing the query's terms and returns them with
// highlighted snippets. A query that normalizes to an empty term set returns
// an empty response rather than an error.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	startTime := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terms := e.terms(query)
	response := &models.SearchResponse{
		Results: []*models.SearchResult{},
		Query:   query.Query,
	}
	if len(terms) == 0 {
		response.QueryTime = time.Since(startTime).Milliseconds()
		return response, nil
	}

	opts := e.options(query)
	snippetOpts := e.snippetOptions(query)

	docs, total, err := e.storage.SearchDocuments(ctx, terms, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	rank := query.Offset
	for _, doc := range docs {
		matches := highlight.FindTermMatches(doc.Content, terms, opts.CaseSensitive)
		if len(matches) == 0 && !titleMatches(doc.Title, terms, opts.CaseSensitive) {
			// LIKE candidate that fails exact matching (case-sensitive query).
			// The subtraction is page-local; Total stays an upper bound, per
			// the models.SearchResponse contract.
			total--
			continue
		}
		selected := highlight.SelectSnippets(doc.Content, matches, snippetOpts.ContextLength, snippetOpts.MaxSnippets)
		plain := make([]string, len(selected))
		for i, s := range selected {
			plain[i] = s.String()
		}
		rank++
		response.Results = append(response.Results, &models.SearchResult{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Snippets:   highlight.EmphasizeEach(plain, terms, opts),
			MatchCount: len(matches),
			Rank:       rank,
		})
	}

	response.Total = total
	response.QueryTime = time.Since(startTime).Milliseconds()
	return response, nil
}

// Highlight renders raw text for display: the full text with terms emphasized
// plus highlighted context snippets. This is the engine surface for callers
// that already hold the text (no storage involved).
func (e *Engine) Highlight(text string, terms []string, opts highlight.Options) (marked string, snippets []string) {
	marked = highlight.EmphasizeTerms(text, terms, opts)
	plain := highlight.SnippetsTerms(text, terms, opts)
	return marked, highlight.EmphasizeEach(plain, terms, opts)
}

// terms resolves the query's term set: an explicit list is kept verbatim,
// free text goes through normalization (short tokens dropped).
func (e *Engine) terms(query *models.SearchQuery) []string {
	if len(query.Terms) > 0 {
		return highlight.Terms(query.Terms)
	}
	return highlight.QueryTerms(query.Query)
}

// options merges per-query overrides onto the configured highlight options.
func (e *Engine) options(query *models.SearchQuery) highlight.Options {
	opts := e.config.Options()
	if query.HighlightClass != "" {
		opts.HighlightClass = query.HighlightClass
	}
	if query.ContextLength != 0 {
		opts.ContextLength = query.ContextLength
	}
	if query.MaxSnippets != 0 {
		opts.MaxSnippets = query.MaxSnippets
	}
	if query.CaseSensitive {
		opts.CaseSensitive = true
	}
	return opts
}

func (e *Engine) snippetOptions(query *models.SearchQuery) highlight.Options {
	opts := e.config.SnippetOptions()
	if query.ContextLength != 0 {
		opts.ContextLength = query.ContextLength
	}
	if query.MaxSnippets != 0 {
		opts.MaxSnippets = query.MaxSnippets
	}
	if query.CaseSensitive {
		opts.CaseSensitive = true
	}
	return opts
}

func titleMatches(title string, terms []string, caseSensitive bool) bool {
	return len(highlight.FindMatches(title, terms, caseSensitive)) > 0
}
