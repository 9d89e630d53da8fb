package driven

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// DocumentStore persists documents.
// Implementations must preserve insertion order in ListDocuments and be
// safe for concurrent use.
type DocumentStore interface {
	// SaveDocument stores or replaces a document by ID.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes a document, reporting whether it existed.
	DeleteDocument(ctx context.Context, id string) (bool, error)

	// ListDocuments returns all documents in insertion order.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
