package mcp

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	analysis *domain.Analysis
	err      error
}

func (m *mockAnalysisService) AnalyzeText(_ context.Context, _ string) (*domain.Analysis, error) {
	return m.analysis, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document  *domain.Document
	documents []domain.Document
	analysis  *domain.Analysis
	deleted   bool
	err       error

	lastUpdate domain.DocumentUpdate
}

func (m *mockDocumentService) Add(_ context.Context, _ driving.AddDocumentInput) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) List(_ context.Context, _ int) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) ListByCategory(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) ListByAuthor(_ context.Context, _ string) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Update(_ context.Context, _ string, update domain.DocumentUpdate) (*domain.Document, error) {
	m.lastUpdate = update
	return m.document, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) (bool, error) {
	return m.deleted, m.err
}

func (m *mockDocumentService) Analyze(_ context.Context, _ string) (*domain.Analysis, error) {
	return m.analysis, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearchService) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func testPorts() *Ports {
	return &Ports{
		Analysis: &mockAnalysisService{},
		Document: &mockDocumentService{},
		Search:   &mockSearchService{},
	}
}
