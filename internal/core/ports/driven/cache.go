package driven

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// AnalysisCache memoizes analysis results per document.
// Entries must be removed whenever the owning document is updated or
// deleted; the document service enforces that invariant.
type AnalysisCache interface {
	// Get retrieves the cached analysis for a document.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, documentID string) (*domain.Analysis, error)

	// Put stores an analysis keyed by its DocumentID.
	Put(ctx context.Context, analysis *domain.Analysis) error

	// Invalidate removes the cached analysis for a document.
	// Removing an absent entry is not an error.
	Invalidate(ctx context.Context, documentID string) error
}
