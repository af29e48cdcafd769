package highlight

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSelectSnippets_windowAroundMatch(t *testing.T) {
	text := "aaaaaaaaaa MATCH bbbbbbbbbb"
	matches := []Match{{Start: 11, End: 16, Term: "MATCH"}}
	snips := SelectSnippets(text, matches, 10, 3)
	if len(snips) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snips))
	}
	s := snips[0]
	if s.SourceStart != 6 || s.SourceEnd != 21 {
		t.Errorf("window = [%d, %d), want [6, 21)", s.SourceStart, s.SourceEnd)
	}
	if !s.TruncatedBefore || !s.TruncatedAfter {
		t.Errorf("both sides clipped mid-text should be truncated: %+v", s)
	}
	if !strings.Contains(s.Text, "MATCH") {
		t.Errorf("snippet should contain the match: %q", s.Text)
	}
}

func TestSelectSnippets_clippedAtBoundaries(t *testing.T) {
	text := "MATCH in the middle MATCH"
	matches := []Match{
		{Start: 0, End: 5, Term: "MATCH"},
		{Start: 20, End: 25, Term: "MATCH"},
	}
	snips := SelectSnippets(text, matches, 8, 3)
	if len(snips) != 2 {
		t.Fatalf("expected 2 snippets, got %d", len(snips))
	}
	if snips[0].TruncatedBefore {
		t.Error("window starting at 0 should not be truncated before")
	}
	if snips[1].TruncatedAfter {
		t.Error("window ending at len(text) should not be truncated after")
	}
}

func TestSelectSnippets_coveredMatchesSkipped(t *testing.T) {
	// Second match falls inside the first window; it must be skipped outright,
	// not merged into a wider window.
	text := strings.Repeat("x", 100)
	matches := []Match{
		{Start: 10, End: 14, Term: "xxxx"},
		{Start: 16, End: 20, Term: "xxxx"},
		{Start: 80, End: 84, Term: "xxxx"},
	}
	snips := SelectSnippets(text, matches, 20, 3)
	if len(snips) != 2 {
		t.Fatalf("expected 2 snippets (middle match covered), got %d", len(snips))
	}
	if snips[0].SourceEnd != 24 {
		t.Errorf("first window should end at 24, got %d", snips[0].SourceEnd)
	}
	if snips[1].SourceStart != 70 {
		t.Errorf("second window should start at 70, got %d", snips[1].SourceStart)
	}
}

func TestSelectSnippets_boundedByMaxSnippets(t *testing.T) {
	text := strings.Repeat("word filler filler filler ", 50)
	matches := FindTermMatches(text, []string{"word"}, false)
	if len(matches) != 50 {
		t.Fatalf("setup: expected 50 matches, got %d", len(matches))
	}
	for _, max := range []int{1, 2, 3, 5} {
		snips := SelectSnippets(text, matches, 10, max)
		if len(snips) > max {
			t.Errorf("maxSnippets=%d: got %d snippets", max, len(snips))
		}
	}
}

func TestSelectSnippets_candidatePoolCapped(t *testing.T) {
	// All candidates in the first 2*maxSnippets matches are covered by window
	// one; later matches outside the pool must not be evaluated, so only one
	// snippet comes back even though match 7 would open a fresh window.
	text := strings.Repeat("y", 300)
	matches := []Match{
		{Start: 10, End: 12}, {Start: 13, End: 15}, {Start: 16, End: 18},
		{Start: 19, End: 21}, {Start: 200, End: 202},
	}
	snips := SelectSnippets(text, matches, 40, 2)
	if len(snips) != 1 {
		t.Errorf("expected pool cap to exclude the distant match, got %d snippets", len(snips))
	}
}

func TestSelectSnippets_noMatchesFallback(t *testing.T) {
	short := "a short passage"
	snips := SelectSnippets(short, nil, 150, 3)
	if len(snips) != 1 {
		t.Fatalf("expected single fallback snippet, got %d", len(snips))
	}
	if snips[0].Text != short || snips[0].TruncatedAfter {
		t.Errorf("short text fallback should be the whole text: %+v", snips[0])
	}

	long := strings.Repeat("a", 500)
	snips = SelectSnippets(long, nil, 150, 3)
	if len(snips) != 1 {
		t.Fatalf("expected single fallback snippet, got %d", len(snips))
	}
	if len(snips[0].Text) != 200 || !snips[0].TruncatedAfter {
		t.Errorf("long text fallback should be first 200 bytes with truncation: len=%d truncated=%t",
			len(snips[0].Text), snips[0].TruncatedAfter)
	}
}

func TestSelectSnippets_multiByteWindowEdges(t *testing.T) {
	// Raw byte radii would land the window edges inside the three-byte runes
	// on either side of the match; the edges must widen to rune boundaries.
	text := strings.Repeat("中", 10) + "fox" + strings.Repeat("中", 10)
	matches := FindTermMatches(text, []string{"fox"}, false)
	if len(matches) != 1 {
		t.Fatalf("setup: expected 1 match, got %d", len(matches))
	}
	snips := SelectSnippets(text, matches, 5, 1)
	if len(snips) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snips))
	}
	s := snips[0]
	if !utf8.ValidString(s.Text) {
		t.Fatalf("snippet text is not valid UTF-8: %q", s.Text)
	}
	if s.Text != "中fox中" {
		t.Errorf("snippet = %q, want %q", s.Text, "中fox中")
	}
	if s.SourceStart != 27 || s.SourceEnd != 36 {
		t.Errorf("window = [%d, %d), want [27, 36)", s.SourceStart, s.SourceEnd)
	}
}

func TestSelectSnippets_multiByteFallback(t *testing.T) {
	text := strings.Repeat("中", 100)
	snips := SelectSnippets(text, nil, 150, 3)
	if len(snips) != 1 {
		t.Fatalf("expected single fallback snippet, got %d", len(snips))
	}
	s := snips[0]
	if !utf8.ValidString(s.Text) {
		t.Fatalf("fallback text is not valid UTF-8: %q", s.Text)
	}
	// 200 bytes falls inside a rune; the cut moves back to the boundary at 198.
	if len(s.Text) != 198 || s.SourceEnd != 198 {
		t.Errorf("fallback cut = %d bytes (SourceEnd %d), want 198", len(s.Text), s.SourceEnd)
	}
	if !s.TruncatedAfter {
		t.Error("truncated fallback should be flagged")
	}
}

func TestSelectSnippets_clampsOptions(t *testing.T) {
	text := "find the needle here"
	matches := []Match{{Start: 9, End: 15, Term: "needle"}}
	snips := SelectSnippets(text, matches, -5, 0)
	if len(snips) != 1 {
		t.Fatalf("maxSnippets 0 should clamp to 1, got %d snippets", len(snips))
	}
	if snips[0].SourceStart != 9 || snips[0].SourceEnd != 15 {
		t.Errorf("negative context should clamp to 0: %+v", snips[0])
	}
}

func TestSnippets_emptyQueryFallback(t *testing.T) {
	text := "A very long unrelated passage that mentions nothing from the query at all. " +
		strings.Repeat("It keeps going and going. ", 10)
	snips := Snippets(text, "", DefaultOptions())
	if len(snips) != 1 {
		t.Fatalf("expected single fallback snippet, got %d", len(snips))
	}
	want := text[:200] + "..."
	if snips[0] != want {
		t.Errorf("fallback = %q, want first 200 bytes plus ellipsis", snips[0])
	}
}

func TestSnippets_ellipsisOnTruncatedSides(t *testing.T) {
	text := strings.Repeat("pad ", 30) + "needle" + strings.Repeat(" pad", 30)
	snips := Snippets(text, "needle", Options{ContextLength: 20, MaxSnippets: 1})
	if len(snips) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snips))
	}
	if !strings.HasPrefix(snips[0], "...") || !strings.HasSuffix(snips[0], "...") {
		t.Errorf("mid-text snippet should carry ellipses on both sides: %q", snips[0])
	}
	if !strings.Contains(snips[0], "needle") {
		t.Errorf("snippet should contain the term: %q", snips[0])
	}
}

func TestSnippets_emptyText(t *testing.T) {
	if got := Snippets("", "anything", DefaultOptions()); got != nil {
		t.Errorf("empty text should yield nil, got %v", got)
	}
}

func TestSnippets_endToEndExample(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	snips := Snippets(text, "quick fox", Options{ContextLength: 10, MaxSnippets: 1})
	if len(snips) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snips))
	}
	if !strings.Contains(snips[0], "quick") {
		t.Errorf("snippet should be centered on the first match: %q", snips[0])
	}
	if strings.Contains(snips[0], "fox") {
		t.Errorf("narrow single window should not reach the second term: %q", snips[0])
	}
}
