package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// Match is one located term occurrence: a half-open byte interval
// [Start, End) into the source text. Term is the term that produced the
// match, as the caller supplied it.
type Match struct {
	Start int
	End   int
	Term  string
}

// pattern compiles the given terms into a single alternation, one capture
// group per term so a match can be traced back to the term that produced it.
// Every term is passed through regexp.QuoteMeta so user input is matched as a
// literal substring and can never act as a pattern of its own.
func pattern(terms []string, caseSensitive bool) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = "(" + regexp.QuoteMeta(t) + ")"
	}
	expr := strings.Join(quoted, "|")
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	return regexp.MustCompile(expr)
}

// FindMatches scans text once with a combined pattern over all terms and
// returns matches in left-to-right order. Matches never overlap: scanning
// resumes after each accepted interval, and ties at the same start position
// go to the earliest-listed term (leftmost-first alternation). Term records
// the term as supplied by the caller, not the matched text, so it stays
// stable under case-insensitive matching. A fresh pattern is compiled per
// call, so concurrent callers share no scanner state.
func FindMatches(text string, terms []string, caseSensitive bool) []Match {
	if text == "" || len(terms) == 0 {
		return nil
	}
	re := pattern(terms, caseSensitive)
	var matches []Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		m := Match{Start: loc[0], End: loc[1]}
		for i := range terms {
			if loc[2+2*i] >= 0 {
				m.Term = terms[i]
				break
			}
		}
		matches = append(matches, m)
	}
	return matches
}

// FindTermMatches scans the entire text once per term and merges the results,
// stable-sorted by start position. Occurrences of different terms may overlap
// (a short term inside a longer one); overlap is resolved by snippet
// windowing, not here.
func FindTermMatches(text string, terms []string, caseSensitive bool) []Match {
	if text == "" || len(terms) == 0 {
		return nil
	}
	var matches []Match
	for _, term := range terms {
		re := pattern([]string{term}, caseSensitive)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{Start: loc[0], End: loc[1], Term: term})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
	return matches
}
