package driving

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// AddDocumentInput carries the fields for document creation.
// Title and Content are required by upstream validation; the service
// accepts whatever it is given.
type AddDocumentInput struct {
	Title    string
	Content  string
	Author   string
	Category string
	Tags     []string
	Metadata map[string]any
}

// DocumentService manages the document collection and its cached
// analyses.
type DocumentService interface {
	// Add stores a new document with a fresh ID and timestamps.
	Add(ctx context.Context, input AddDocumentInput) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns documents in insertion order. A limit <= 0 returns
	// all documents.
	List(ctx context.Context, limit int) ([]domain.Document, error)

	// ListByCategory returns documents whose category matches exactly.
	ListByCategory(ctx context.Context, category string) ([]domain.Document, error)

	// ListByAuthor returns documents whose author matches exactly.
	ListByAuthor(ctx context.Context, author string) ([]domain.Document, error)

	// Update merges partial fields over an existing document,
	// refreshes UpdatedAt, and invalidates any cached analysis.
	Update(ctx context.Context, documentID string, update domain.DocumentUpdate) (*domain.Document, error)

	// Delete removes a document and its cached analysis, reporting
	// whether the document existed.
	Delete(ctx context.Context, documentID string) (bool, error)

	// Analyze returns the cached analysis for a document, computing
	// and caching it when absent.
	Analyze(ctx context.Context, documentID string) (*domain.Analysis, error)
}
