package config

import "github.com/corescout/scout/internal/highlight"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/scout/data/documents.db"
	}
	if cfg.Highlight.Class == "" {
		cfg.Highlight.Class = highlight.DefaultClass
	}
	if cfg.Highlight.ContextLength == 0 {
		cfg.Highlight.ContextLength = highlight.DefaultContextLength
	}
	if cfg.Highlight.SnippetContextLength == 0 {
		cfg.Highlight.SnippetContextLength = highlight.DefaultSnippetContextLength
	}
	if cfg.Highlight.MaxSnippets == 0 {
		cfg.Highlight.MaxSnippets = highlight.DefaultMaxSnippets
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".txt", ".md", ".rst", ".log", ".csv"}
	}
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}

// Options returns the highlight options configured for inline emphasis.
func (h *HighlightConfig) Options() highlight.Options {
	return highlight.Options{
		HighlightClass: h.Class,
		ContextLength:  h.ContextLength,
		MaxSnippets:    h.MaxSnippets,
		CaseSensitive:  h.CaseSensitive,
	}
}

// SnippetOptions returns the highlight options configured for snippet extraction,
// which uses the wider snippet context window.
func (h *HighlightConfig) SnippetOptions() highlight.Options {
	o := h.Options()
	o.ContextLength = h.SnippetContextLength
	return o
}
