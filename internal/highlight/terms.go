package highlight

import "strings"

// Free-text tokens at or below this length are discarded.
const minQueryTermLen = 2

// QueryTerms turns a free-text query into search terms: whitespace-separated
// tokens longer than two bytes, deduplicated in first-seen order. Returns nil
// for empty or whitespace-only input; callers treat an empty set as "nothing
// to highlight", not an error.
func QueryTerms(query string) []string {
	var terms []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(query) {
		if len(tok) <= minQueryTermLen {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
	}
	return terms
}

// Terms deduplicates an explicit term list in first-seen order. Unlike
// QueryTerms there is no length filter: an explicit list is taken verbatim,
// only empty strings are dropped.
func Terms(list []string) []string {
	var terms []string
	seen := make(map[string]struct{})
	for _, t := range list {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	return terms
}
