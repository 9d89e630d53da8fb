package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

// Compile-time check that DocumentService implements the driving port.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages the document collection and keeps the
// analysis cache consistent with it: any mutation of a document removes
// its cached analysis before the mutation returns.
type DocumentService struct {
	store    driven.DocumentStore
	cache    driven.AnalysisCache
	analysis *AnalysisService
}

// NewDocumentService wires the document collection to its store, cache,
// and analysis pipeline.
func NewDocumentService(store driven.DocumentStore, cache driven.AnalysisCache, analysis *AnalysisService) *DocumentService {
	return &DocumentService{
		store:    store,
		cache:    cache,
		analysis: analysis,
	}
}

// Add stores a new document with a generated ID and creation timestamps.
func (s *DocumentService) Add(ctx context.Context, input driving.AddDocumentInput) (*domain.Document, error) {
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		Category:  input.Category,
		Tags:      input.Tags,
		Metadata:  input.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	logger.Debug("documents: added %q (%s)", doc.Title, doc.ID)
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.store.GetDocument(ctx, documentID)
}

// List returns documents in insertion order, truncated to limit when
// limit is positive.
func (s *DocumentService) List(ctx context.Context, limit int) ([]domain.Document, error) {
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// ListByCategory returns documents whose category matches exactly,
// in insertion order.
func (s *DocumentService) ListByCategory(ctx context.Context, category string) ([]domain.Document, error) {
	return s.listFiltered(ctx, func(d domain.Document) bool {
		return d.Category == category
	})
}

// ListByAuthor returns documents whose author matches exactly,
// in insertion order.
func (s *DocumentService) ListByAuthor(ctx context.Context, author string) ([]domain.Document, error) {
	return s.listFiltered(ctx, func(d domain.Document) bool {
		return d.Author == author
	})
}

func (s *DocumentService) listFiltered(ctx context.Context, keep func(domain.Document) bool) ([]domain.Document, error) {
	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	filtered := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		if keep(doc) {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

// Update merges the partial update over the stored document, refreshes
// UpdatedAt, and invalidates the cached analysis. The cache entry is
// removed on every update, whether or not the content changed.
func (s *DocumentService) Update(ctx context.Context, documentID string, update domain.DocumentUpdate) (*domain.Document, error) {
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	updated := update.Apply(*doc)
	updated.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveDocument(ctx, &updated); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	if err := s.cache.Invalidate(ctx, documentID); err != nil {
		return nil, fmt.Errorf("invalidating analysis cache: %w", err)
	}

	logger.Debug("documents: updated %s, cache entry dropped", documentID)
	return &updated, nil
}

// Delete removes a document and its cached analysis, reporting whether
// the document existed.
func (s *DocumentService) Delete(ctx context.Context, documentID string) (bool, error) {
	existed, err := s.store.DeleteDocument(ctx, documentID)
	if err != nil {
		return false, fmt.Errorf("deleting document: %w", err)
	}
	if err := s.cache.Invalidate(ctx, documentID); err != nil {
		return existed, fmt.Errorf("invalidating analysis cache: %w", err)
	}

	logger.Debug("documents: deleted %s (existed=%t)", documentID, existed)
	return existed, nil
}

// Analyze returns the cached analysis for a document, computing and
// caching it on a miss. A cache hit returns the stored result
// unchanged, including its original AnalysisDate.
func (s *DocumentService) Analyze(ctx context.Context, documentID string) (*domain.Analysis, error) {
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	cached, err := s.cache.Get(ctx, documentID)
	if err == nil {
		logger.Debug("documents: analysis cache hit for %s", documentID)
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("reading analysis cache: %w", err)
	}

	analysis := s.analysis.analyzeDocument(doc)
	if err := s.cache.Put(ctx, analysis); err != nil {
		return nil, fmt.Errorf("caching analysis: %w", err)
	}

	logger.Debug("documents: analyzed %s and cached the result", documentID)
	return analysis, nil
}
