package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driven"
)

// Ensure AnalysisCache implements the interface.
var _ driven.AnalysisCache = (*AnalysisCache)(nil)

// AnalysisCache is an in-memory implementation of driven.AnalysisCache.
// Size is unbounded; it is naturally bounded by document count because
// entries are removed with their documents.
type AnalysisCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Analysis
}

// NewAnalysisCache creates an empty in-memory analysis cache.
func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{
		entries: make(map[string]domain.Analysis),
	}
}

// Get retrieves the cached analysis for a document.
func (c *AnalysisCache) Get(_ context.Context, documentID string) (*domain.Analysis, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	analysis, ok := c.entries[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &analysis, nil
}

// Put stores an analysis keyed by its DocumentID.
func (c *AnalysisCache) Put(_ context.Context, analysis *domain.Analysis) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[analysis.DocumentID] = *analysis
	return nil
}

// Invalidate removes the cached analysis for a document.
func (c *AnalysisCache) Invalidate(_ context.Context, documentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, documentID)
	return nil
}

// Len reports the number of cached entries. Used by tests to verify no
// entries leak after document deletion.
func (c *AnalysisCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
