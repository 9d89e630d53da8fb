package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleAnalyzeText(t *testing.T) {
	ctx := context.Background()

	t.Run("returns analysis output", func(t *testing.T) {
		analysisDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ports := testPorts()
		ports.Analysis = &mockAnalysisService{
			analysis: &domain.Analysis{
				Sentiment: domain.SentimentResult{
					Score:          3,
					Comparative:    0.5,
					Positive:       []string{"love"},
					Negative:       []string{},
					Classification: domain.SentimentPositive,
				},
				Keywords: []domain.KeywordResult{
					{Term: "analysis", Stem: "analysi", Frequency: 2, Importance: 16},
				},
				Readability: domain.ReadabilityResult{
					FleschKincaid: 80.5,
					GradeLevel:    "6th grade",
					Complexity:    domain.ComplexityEasy,
				},
				Stats:        domain.TextStats{WordCount: 6, SentenceCount: 1},
				AnalysisDate: analysisDate,
			},
		}
		server := newTestServer(t, ports)

		_, output, err := server.handleAnalyzeText(ctx, nil, AnalyzeTextInput{Text: "I love analysis"})
		require.NoError(t, err)

		assert.Empty(t, output.DocumentID)
		assert.Equal(t, 3.0, output.Sentiment.Score)
		assert.Equal(t, "positive", output.Sentiment.Classification)
		require.Len(t, output.Keywords, 1)
		assert.Equal(t, "analysis", output.Keywords[0].Term)
		assert.Equal(t, 80.5, output.Readability.FleschKincaid)
		assert.Equal(t, 6, output.Stats.WordCount)
		assert.Equal(t, analysisDate, output.AnalysisDate)
	})

	t.Run("propagates service error", func(t *testing.T) {
		ports := testPorts()
		ports.Analysis = &mockAnalysisService{err: errors.New("pipeline broke")}
		server := newTestServer(t, ports)

		_, _, err := server.handleAnalyzeText(ctx, nil, AnalyzeTextInput{Text: "x"})
		require.Error(t, err)
	})
}

func TestServer_handleAnalyzeDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("returns analysis for document", func(t *testing.T) {
		ports := testPorts()
		ports.Document = &mockDocumentService{
			analysis: &domain.Analysis{DocumentID: "doc-1"},
		}
		server := newTestServer(t, ports)

		_, output, err := server.handleAnalyzeDocument(ctx, nil, AnalyzeDocumentInput{DocumentID: "doc-1"})
		require.NoError(t, err)
		assert.Equal(t, "doc-1", output.DocumentID)
	})

	t.Run("maps not found to descriptive error", func(t *testing.T) {
		ports := testPorts()
		ports.Document = &mockDocumentService{err: domain.ErrNotFound}
		server := newTestServer(t, ports)

		_, _, err := server.handleAnalyzeDocument(ctx, nil, AnalyzeDocumentInput{DocumentID: "ghost"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestServer_handleAddDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("adds document", func(t *testing.T) {
		ports := testPorts()
		ports.Document = &mockDocumentService{
			document: &domain.Document{ID: "new-id", Title: "Notes", Content: "body"},
		}
		server := newTestServer(t, ports)

		input := AddDocumentInput{Title: "Notes", Content: "body"}
		_, output, err := server.handleAddDocument(ctx, nil, input)
		require.NoError(t, err)
		assert.Equal(t, "new-id", output.ID)
		assert.Equal(t, "body", output.Content)
	})

	t.Run("rejects missing title or content", func(t *testing.T) {
		server := newTestServer(t, testPorts())

		_, _, err := server.handleAddDocument(ctx, nil, AddDocumentInput{Title: "only title"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleUpdateDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through partial update", func(t *testing.T) {
		mock := &mockDocumentService{
			document: &domain.Document{ID: "doc-1", Title: "Renamed"},
		}
		ports := testPorts()
		ports.Document = mock
		server := newTestServer(t, ports)

		title := "Renamed"
		input := UpdateDocumentInput{DocumentID: "doc-1", Title: &title}
		_, output, err := server.handleUpdateDocument(ctx, nil, input)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", output.Title)

		require.NotNil(t, mock.lastUpdate.Title)
		assert.Equal(t, "Renamed", *mock.lastUpdate.Title)
		assert.Nil(t, mock.lastUpdate.Content)
		assert.Nil(t, mock.lastUpdate.Metadata)
	})

	t.Run("replaces metadata", func(t *testing.T) {
		mock := &mockDocumentService{
			document: &domain.Document{ID: "doc-1", Title: "Notes"},
		}
		ports := testPorts()
		ports.Document = mock
		server := newTestServer(t, ports)

		input := UpdateDocumentInput{
			DocumentID: "doc-1",
			Metadata:   map[string]string{"source": "api", "lang": "en"},
		}
		_, _, err := server.handleUpdateDocument(ctx, nil, input)
		require.NoError(t, err)

		require.NotNil(t, mock.lastUpdate.Metadata)
		assert.Equal(t, "api", mock.lastUpdate.Metadata["source"])
		assert.Equal(t, "en", mock.lastUpdate.Metadata["lang"])
	})
}

func TestServer_handleDeleteDocument(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Document = &mockDocumentService{deleted: true}
	server := newTestServer(t, ports)

	_, output, err := server.handleDeleteDocument(ctx, nil, DeleteDocumentInput{DocumentID: "doc-1"})
	require.NoError(t, err)
	assert.True(t, output.Deleted)
}

func TestServer_handleListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("lists documents without content", func(t *testing.T) {
		ports := testPorts()
		ports.Document = &mockDocumentService{
			documents: []domain.Document{
				{ID: "a", Title: "First", Content: "secret body"},
				{ID: "b", Title: "Second"},
			},
		}
		server := newTestServer(t, ports)

		_, output, err := server.handleListDocuments(ctx, nil, ListDocumentsInput{})
		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Empty(t, output.Documents[0].Content)
	})

	t.Run("applies limit to filtered listings", func(t *testing.T) {
		ports := testPorts()
		ports.Document = &mockDocumentService{
			documents: []domain.Document{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		}
		server := newTestServer(t, ports)

		input := ListDocumentsInput{Category: "science", Limit: 2}
		_, output, err := server.handleListDocuments(ctx, nil, input)
		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearchService{
			results: []domain.SearchResult{
				{
					DocumentID:   "doc-1",
					Title:        "Test Doc",
					Relevance:    6,
					Snippet:      "matched text nearby",
					MatchedTerms: []string{"test"},
				},
			},
		}
		server := newTestServer(t, ports)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "test", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "doc-1", output.Results[0].DocumentID)
		assert.Equal(t, 6.0, output.Results[0].Relevance)
		assert.Equal(t, []string{"test"}, output.Results[0].MatchedTerms)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearchService{err: errors.New("search failed")}
		server := newTestServer(t, ports)

		_, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}
