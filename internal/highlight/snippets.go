package highlight

import "unicode/utf8"

// Snippet is a bounded window of the source text built around one or more
// nearby matches. SourceStart and SourceEnd locate the window in the original
// text; the truncation flags record whether a bound was clipped short of the
// text boundary, i.e. whether an ellipsis belongs on that side.
type Snippet struct {
	Text            string
	SourceStart     int
	SourceEnd       int
	TruncatedBefore bool
	TruncatedAfter  bool
}

// String renders the snippet with "..." on each truncated side.
func (s Snippet) String() string {
	out := s.Text
	if s.TruncatedBefore {
		out = "..." + out
	}
	if s.TruncatedAfter {
		out += "..."
	}
	return out
}

// SelectSnippets walks matches (which must be sorted by Start) and opens a
// window of contextLength/2 on either side of each match not already covered
// by the previously accepted window. Windows fully inside an accepted one are
// skipped, never merged, and output order follows match order. At most
// maxSnippets windows are returned, and only the first 2*maxSnippets matches
// are considered, which bounds work on match-dense inputs. With no matches
// the result is a single fallback snippet holding the first 200 bytes of the
// text. Window edges are widened to the nearest rune boundary so snippet text
// is always valid UTF-8.
//
// maxSnippets below 1 is clamped to 1; a negative contextLength to 0.
func SelectSnippets(text string, matches []Match, contextLength, maxSnippets int) []Snippet {
	if maxSnippets < 1 {
		maxSnippets = 1
	}
	if contextLength < 0 {
		contextLength = 0
	}
	if len(matches) == 0 {
		return []Snippet{fallbackSnippet(text)}
	}

	pool := matches
	if len(pool) > 2*maxSnippets {
		pool = pool[:2*maxSnippets]
	}
	radius := contextLength / 2
	snippets := make([]Snippet, 0, maxSnippets)
	covered := 0
	for _, m := range pool {
		if m.Start < covered {
			continue
		}
		start := snapRuneStart(text, m.Start-radius)
		end := snapRuneEnd(text, m.End+radius)
		snippets = append(snippets, Snippet{
			Text:            text[start:end],
			SourceStart:     start,
			SourceEnd:       end,
			TruncatedBefore: start > 0,
			TruncatedAfter:  end < len(text),
		})
		covered = end
		if len(snippets) == maxSnippets {
			break
		}
	}
	return snippets
}

// fallbackSnippet returns the leading portion of text for queries with no
// matching terms, so the results list still shows something representative.
func fallbackSnippet(text string) Snippet {
	if len(text) <= fallbackLength {
		return Snippet{Text: text, SourceEnd: len(text)}
	}
	cut := snapRuneStart(text, fallbackLength)
	return Snippet{
		Text:           text[:cut],
		SourceEnd:      cut,
		TruncatedAfter: true,
	}
}

// snapRuneStart clamps i to [0, len(text)] and walks it back to the nearest
// rune boundary so a slice starting there is valid UTF-8.
func snapRuneStart(text string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(text) {
		return len(text)
	}
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}

// snapRuneEnd clamps i to [0, len(text)] and walks it forward to the nearest
// rune boundary so a slice ending there is valid UTF-8.
func snapRuneEnd(text string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(text) {
		return len(text)
	}
	for i < len(text) && !utf8.RuneStart(text[i]) {
		i++
	}
	return i
}

// Snippets extracts up to opts.MaxSnippets plain-text windows around term
// clusters in text. The query is free text; matching is per-term, so
// occurrences of different terms may overlap going in and windowing resolves
// them. Truncated sides carry an ellipsis. Returns nil for empty text.
func Snippets(text, query string, opts Options) []string {
	return SnippetsTerms(text, QueryTerms(query), opts)
}

// SnippetsTerms is Snippets with an explicit term list, kept verbatim
// (no length filter on short terms).
func SnippetsTerms(text string, terms []string, opts Options) []string {
	if text == "" {
		return nil
	}
	if opts.ContextLength == 0 {
		opts.ContextLength = DefaultSnippetContextLength
	}
	opts = opts.withDefaults()
	matches := FindTermMatches(text, Terms(terms), opts.CaseSensitive)
	selected := SelectSnippets(text, matches, opts.ContextLength, opts.MaxSnippets)
	out := make([]string, len(selected))
	for i, s := range selected {
		out[i] = s.String()
	}
	return out
}
