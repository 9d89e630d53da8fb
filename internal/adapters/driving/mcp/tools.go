package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
)

// AnalyzeTextInput is the input schema for the analyze_text tool.
type AnalyzeTextInput struct {
	Text string `json:"text" jsonschema:"the text to analyze"`
}

// AnalyzeDocumentInput is the input schema for the analyze_document tool.
type AnalyzeDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"ID of the stored document to analyze"`
}

// AnalysisOutput is the output schema shared by the analysis tools.
type AnalysisOutput struct {
	DocumentID   string            `json:"document_id,omitempty"`
	Sentiment    SentimentOutput   `json:"sentiment"`
	Keywords     []KeywordOutput   `json:"keywords"`
	Readability  ReadabilityOutput `json:"readability"`
	Stats        StatsOutput       `json:"statistics"`
	AnalysisDate time.Time         `json:"analysis_date"`
}

// SentimentOutput carries sentiment scores and matched word lists.
type SentimentOutput struct {
	Score          float64  `json:"score"`
	Comparative    float64  `json:"comparative"`
	Positive       []string `json:"positive"`
	Negative       []string `json:"negative"`
	Classification string   `json:"classification"`
}

// KeywordOutput is a single ranked keyword.
type KeywordOutput struct {
	Term       string  `json:"term"`
	Stem       string  `json:"stem"`
	Frequency  int     `json:"frequency"`
	Importance float64 `json:"importance"`
}

// ReadabilityOutput carries the readability scores.
type ReadabilityOutput struct {
	FleschKincaid float64 `json:"flesch_kincaid"`
	GradeLevel    string  `json:"grade_level"`
	Complexity    string  `json:"complexity"`
}

// StatsOutput carries the document statistics.
type StatsOutput struct {
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	ParagraphCount      int     `json:"paragraph_count"`
	UniqueWordCount     int     `json:"unique_word_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	VocabularyDiversity float64 `json:"vocabulary_diversity"`
}

// AddDocumentInput is the input schema for the add_document tool.
type AddDocumentInput struct {
	Title    string            `json:"title" jsonschema:"document title"`
	Content  string            `json:"content" jsonschema:"full document text"`
	Author   string            `json:"author,omitempty" jsonschema:"optional author"`
	Category string            `json:"category,omitempty" jsonschema:"optional category"`
	Tags     []string          `json:"tags,omitempty" jsonschema:"optional free-form labels"`
	Metadata map[string]string `json:"metadata,omitempty" jsonschema:"optional key-value metadata"`
}

// GetDocumentInput is the input schema for the get_document tool.
type GetDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"ID of the document to fetch"`
}

// UpdateDocumentInput is the input schema for the update_document tool.
// Omitted fields keep their stored values.
type UpdateDocumentInput struct {
	DocumentID string            `json:"document_id" jsonschema:"ID of the document to update"`
	Title      *string           `json:"title,omitempty" jsonschema:"replacement title"`
	Content    *string           `json:"content,omitempty" jsonschema:"replacement content"`
	Author     *string           `json:"author,omitempty" jsonschema:"replacement author"`
	Category   *string           `json:"category,omitempty" jsonschema:"replacement category"`
	Tags       []string          `json:"tags,omitempty" jsonschema:"replacement tag list"`
	Metadata   map[string]string `json:"metadata,omitempty" jsonschema:"replacement key-value metadata"`
}

// DeleteDocumentInput is the input schema for the delete_document tool.
type DeleteDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"ID of the document to delete"`
}

// DeleteDocumentOutput reports whether the document existed.
type DeleteDocumentOutput struct {
	Deleted bool `json:"deleted"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct {
	Category string `json:"category,omitempty" jsonschema:"filter by exact category"`
	Author   string `json:"author,omitempty" jsonschema:"filter by exact author"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of documents to return"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a stored document.
type DocumentOutput struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content,omitempty"`
	Author    string         `json:"author,omitempty"`
	Category  string         `json:"category,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_documents tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID   string   `json:"document_id"`
	Title        string   `json:"title"`
	Relevance    float64  `json:"relevance"`
	Snippet      string   `json:"snippet"`
	MatchedTerms []string `json:"matched_terms"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Run sentiment, keyword, readability, and statistics analysis over raw text",
	}, s.handleAnalyzeText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_document",
		Description: "Analyze a stored document, reusing the cached result when available",
	}, s.handleAnalyzeDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_document",
		Description: "Add a document to the collection",
	}, s.handleAddDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Fetch a document by ID",
	}, s.handleGetDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_document",
		Description: "Update fields of a stored document",
	}, s.handleUpdateDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_document",
		Description: "Delete a document by ID",
	}, s.handleDeleteDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List documents, optionally filtered by category or author",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search the collection by keywords, ranked by weighted term frequency",
	}, s.handleSearch)
}

// handleAnalyzeText handles the analyze_text tool invocation.
func (s *Server) handleAnalyzeText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeTextInput,
) (*mcp.CallToolResult, AnalysisOutput, error) {
	analysis, err := s.ports.Analysis.AnalyzeText(ctx, input.Text)
	if err != nil {
		return nil, AnalysisOutput{}, err
	}
	return nil, analysisToOutput(analysis), nil
}

// handleAnalyzeDocument handles the analyze_document tool invocation.
func (s *Server) handleAnalyzeDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeDocumentInput,
) (*mcp.CallToolResult, AnalysisOutput, error) {
	analysis, err := s.ports.Document.Analyze(ctx, input.DocumentID)
	if err != nil {
		return nil, AnalysisOutput{}, mapDomainError(err, input.DocumentID)
	}
	return nil, analysisToOutput(analysis), nil
}

// handleAddDocument handles the add_document tool invocation.
func (s *Server) handleAddDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	if input.Title == "" || input.Content == "" {
		return nil, DocumentOutput{}, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	doc, err := s.ports.Document.Add(ctx, driving.AddDocumentInput{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		Category: input.Category,
		Tags:     input.Tags,
		Metadata: metadataToAny(input.Metadata),
	})
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, documentToOutput(doc, true), nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Document.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, DocumentOutput{}, mapDomainError(err, input.DocumentID)
	}
	return nil, documentToOutput(doc, true), nil
}

// handleUpdateDocument handles the update_document tool invocation.
func (s *Server) handleUpdateDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateDocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	update := domain.DocumentUpdate{
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		Category: input.Category,
		Tags:     input.Tags,
		Metadata: metadataToAny(input.Metadata),
	}

	doc, err := s.ports.Document.Update(ctx, input.DocumentID, update)
	if err != nil {
		return nil, DocumentOutput{}, mapDomainError(err, input.DocumentID)
	}
	return nil, documentToOutput(doc, true), nil
}

// handleDeleteDocument handles the delete_document tool invocation.
func (s *Server) handleDeleteDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteDocumentInput,
) (*mcp.CallToolResult, DeleteDocumentOutput, error) {
	deleted, err := s.ports.Document.Delete(ctx, input.DocumentID)
	if err != nil {
		return nil, DeleteDocumentOutput{}, err
	}
	return nil, DeleteDocumentOutput{Deleted: deleted}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	var (
		docs []domain.Document
		err  error
	)
	switch {
	case input.Category != "":
		docs, err = s.ports.Document.ListByCategory(ctx, input.Category)
	case input.Author != "":
		docs, err = s.ports.Document.ListByAuthor(ctx, input.Author)
	default:
		docs, err = s.ports.Document.List(ctx, input.Limit)
	}
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	if input.Limit > 0 && len(docs) > input.Limit {
		docs = docs[:input.Limit]
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		// Listings omit content to keep responses small.
		output.Documents[i] = documentToOutput(&docs[i], false)
	}
	return nil, output, nil
}

// handleSearch handles the search_documents tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			DocumentID:   results[i].DocumentID,
			Title:        results[i].Title,
			Relevance:    results[i].Relevance,
			Snippet:      results[i].Snippet,
			MatchedTerms: results[i].MatchedTerms,
		}
	}
	return nil, output, nil
}

func analysisToOutput(a *domain.Analysis) AnalysisOutput {
	keywords := make([]KeywordOutput, len(a.Keywords))
	for i, k := range a.Keywords {
		keywords[i] = KeywordOutput{
			Term:       k.Term,
			Stem:       k.Stem,
			Frequency:  k.Frequency,
			Importance: k.Importance,
		}
	}

	return AnalysisOutput{
		DocumentID: a.DocumentID,
		Sentiment: SentimentOutput{
			Score:          a.Sentiment.Score,
			Comparative:    a.Sentiment.Comparative,
			Positive:       a.Sentiment.Positive,
			Negative:       a.Sentiment.Negative,
			Classification: string(a.Sentiment.Classification),
		},
		Keywords: keywords,
		Readability: ReadabilityOutput{
			FleschKincaid: a.Readability.FleschKincaid,
			GradeLevel:    a.Readability.GradeLevel,
			Complexity:    string(a.Readability.Complexity),
		},
		Stats: StatsOutput{
			WordCount:           a.Stats.WordCount,
			SentenceCount:       a.Stats.SentenceCount,
			ParagraphCount:      a.Stats.ParagraphCount,
			UniqueWordCount:     a.Stats.UniqueWordCount,
			AvgWordsPerSentence: a.Stats.AvgWordsPerSentence,
			VocabularyDiversity: a.Stats.VocabularyDiversity,
		},
		AnalysisDate: a.AnalysisDate,
	}
}

// metadataToAny widens string-valued tool metadata to the domain's
// map[string]any. An empty map stays nil so partial updates leave
// stored metadata untouched.
func metadataToAny(metadata map[string]string) map[string]any {
	if len(metadata) == 0 {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}

func documentToOutput(doc *domain.Document, includeContent bool) DocumentOutput {
	out := DocumentOutput{
		ID:        doc.ID,
		Title:     doc.Title,
		Author:    doc.Author,
		Category:  doc.Category,
		Tags:      doc.Tags,
		Metadata:  doc.Metadata,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if includeContent {
		out.Content = doc.Content
	}
	return out
}

// mapDomainError turns store errors into messages that carry the
// offending ID for the client.
func mapDomainError(err error, documentID string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("document %q not found", documentID)
	}
	return err
}
