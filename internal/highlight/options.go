// Package highlight locates search terms in text and renders them for a
// results list: matched substrings are wrapped in emphasis markers, and
// bounded context windows ("snippets") are extracted around clusters of
// matches. All operations are pure functions of their inputs and safe for
// concurrent callers; no matcher state is shared between invocations.
//
// Offsets throughout the package are byte offsets into the source text.
package highlight

const (
	// DefaultClass is the class attribute carried by emphasis markers.
	DefaultClass = "highlight"
	// DefaultContextLength is the total window width used for highlighting.
	DefaultContextLength = 100
	// DefaultSnippetContextLength is the total window width used by snippet
	// extraction.
	DefaultSnippetContextLength = 150
	// DefaultMaxSnippets caps how many windows snippet extraction returns.
	DefaultMaxSnippets = 3
	// fallbackLength is how much leading text the fallback snippet holds when
	// no term matches.
	fallbackLength = 200
)

// Options configures emphasis markers and snippet windowing. The zero value
// of a field means "use the default": class "highlight", context length 100
// (150 for snippet extraction), max snippets 3, case-insensitive matching.
type Options struct {
	HighlightClass string
	ContextLength  int
	MaxSnippets    int
	CaseSensitive  bool
}

// DefaultOptions returns the default highlighting options.
func DefaultOptions() Options {
	return Options{
		HighlightClass: DefaultClass,
		ContextLength:  DefaultContextLength,
		MaxSnippets:    DefaultMaxSnippets,
	}
}

// SnippetOptions returns the default options for snippet extraction, which
// uses a wider context window than inline highlighting.
func SnippetOptions() Options {
	o := DefaultOptions()
	o.ContextLength = DefaultSnippetContextLength
	return o
}

// withDefaults fills zero-value fields and clamps out-of-range values:
// MaxSnippets below zero becomes 1, a negative ContextLength becomes 0.
func (o Options) withDefaults() Options {
	if o.HighlightClass == "" {
		o.HighlightClass = DefaultClass
	}
	if o.ContextLength == 0 {
		o.ContextLength = DefaultContextLength
	}
	if o.ContextLength < 0 {
		o.ContextLength = 0
	}
	if o.MaxSnippets == 0 {
		o.MaxSnippets = DefaultMaxSnippets
	}
	if o.MaxSnippets < 0 {
		o.MaxSnippets = 1
	}
	return o
}
