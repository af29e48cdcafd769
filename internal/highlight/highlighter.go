package highlight

import (
	"fmt"
	"strings"
)

// Emphasize wraps every occurrence of the query's terms in text with a
// <mark class="..."> marker. The query is free text (tokens of two bytes or
// fewer are dropped); matching uses one combined pattern, so marked spans
// never overlap and stripping the markers reproduces the input byte for byte.
// Text with no matching terms, or an empty query, is returned unchanged.
//
// Only the inserted markers are produced here; the source text content is not
// escaped. Callers rendering untrusted text must neutralize
// markup-significant characters on their side of the boundary.
func Emphasize(text, query string, opts Options) string {
	return EmphasizeTerms(text, QueryTerms(query), opts)
}

// EmphasizeTerms is Emphasize with an explicit term list, kept verbatim
// (no length filter on short terms).
func EmphasizeTerms(text string, terms []string, opts Options) string {
	opts = opts.withDefaults()
	matches := FindMatches(text, Terms(terms), opts.CaseSensitive)
	if len(matches) == 0 {
		return text
	}

	open := fmt.Sprintf(`<mark class=%q>`, opts.HighlightClass)
	const closing = "</mark>"
	var b strings.Builder
	b.Grow(len(text) + len(matches)*(len(open)+len(closing)))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(open)
		b.WriteString(text[m.Start:m.End])
		b.WriteString(closing)
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// EmphasizeEach applies EmphasizeTerms independently to each snippet with the
// same term set. Matches are recomputed inside each snippet rather than
// sliced from a full-text match list, so a term that straddled a snippet
// boundary in the original text simply does not appear in that snippet.
func EmphasizeEach(snippets []string, terms []string, opts Options) []string {
	if len(snippets) == 0 {
		return nil
	}
	out := make([]string, len(snippets))
	for i, s := range snippets {
		out[i] = EmphasizeTerms(s, terms, opts)
	}
	return out
}
