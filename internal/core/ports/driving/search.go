package driving

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// SearchService scores documents against free-form queries.
type SearchService interface {
	// Search returns ranked results for query. An empty query yields
	// empty results. A limit <= 0 applies the configured default.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}
