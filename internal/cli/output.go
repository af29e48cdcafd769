// Package cli provides output formatting for the Scout command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/corescout/scout/internal/models"
	"github.com/corescout/scout/pkg/utils"
)

// OutputFormat is the format for search result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d result(s) in %dms for %q\n\n", response.Total, response.QueryTime, response.Query)
	for _, result := range response.Results {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Matches: %d\n", result.Rank, result.MatchCount)
		fmt.Fprintf(w, "ID: %s\n", result.DocumentID)
		if result.Title != "" {
			fmt.Fprintf(w, "Title: %s\n", result.Title)
		}
		for _, snippet := range result.Snippets {
			fmt.Fprintf(w, "  %s\n", utils.Truncate(StripMarks(snippet), 300))
		}
		fmt.Fprintln(w)
	}
}

// StripMarks removes emphasis markers from marked text, for plain-terminal
// display. Only the markers this system inserts are removed; the content
// itself is untouched.
func StripMarks(marked string) string {
	for {
		open := strings.Index(marked, "<mark class=\"")
		if open < 0 {
			return strings.ReplaceAll(marked, "</mark>", "")
		}
		end := strings.Index(marked[open:], ">")
		if end < 0 {
			return strings.ReplaceAll(marked, "</mark>", "")
		}
		marked = marked[:open] + marked[open+end+1:]
	}
}
