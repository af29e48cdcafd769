// Package ingest turns dropped text files into stored documents.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/corescout/scout/internal/models"
	"github.com/corescout/scout/internal/storage"
)

const idPrefix = "file:"

// DocID returns a stable document ID for the given file path. The same path
// always yields the same ID, so re-ingesting a changed file updates the
// existing row and deletion by path works without a lookup.
func DocID(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	hash := sha256.Sum256([]byte(filepath.Clean(abs)))
	return idPrefix + hex.EncodeToString(hash[:])
}

// FromFile reads path into a Document: raw file text as content, base
// filename as title, path-derived stable ID.
func FromFile(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &models.Document{
		ID:      DocID(path),
		Title:   filepath.Base(path),
		Content: string(data),
		Metadata: map[string]interface{}{
			"path": abs,
		},
	}, nil
}

// File reads path and upserts it into store.
func File(ctx context.Context, store storage.Storage, path string) error {
	doc, err := FromFile(path)
	if err != nil {
		return err
	}
	return store.UpsertDocument(ctx, doc)
}

// RemoveFile deletes the document previously ingested from path.
func RemoveFile(ctx context.Context, store storage.Storage, path string) error {
	return store.DeleteDocument(ctx, DocID(path))
}

// Directory walks dir and ingests every regular file whose extension is in
// exts (empty exts = all files). Returns the number of files ingested.
func Directory(ctx context.Context, store storage.Storage, dir string, exts []string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !MatchesExtension(path, exts) {
			return nil
		}
		if err := File(ctx, store, path); err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}

// MatchesExtension reports whether path's extension is in exts.
// An empty exts list matches everything.
func MatchesExtension(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
