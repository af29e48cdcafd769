// Package storage defines the persistence interface for documents.
package storage

import (
	"context"

	"github.com/corescout/scout/internal/models"
)

// Storage defines document persistence operations.
type Storage interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	UpdateDocument(ctx context.Context, doc *models.Document) error
	UpsertDocument(ctx context.Context, doc *models.Document) error
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, offset, limit int) ([]*models.Document, error)

	// SearchDocuments returns documents whose content or title contains any of
	// the given literal terms, together with the total candidate count. The
	// match is a case-insensitive substring filter; exact (including
	// case-sensitive) matching is the highlight engine's job downstream.
	SearchDocuments(ctx context.Context, terms []string, limit, offset int) ([]*models.Document, int, error)

	CountDocuments(ctx context.Context) (int64, error)

	Close() error
}
