package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/textlens-cli/internal/analyzers/keywords"
	"github.com/custodia-labs/textlens-cli/internal/analyzers/readability"
	"github.com/custodia-labs/textlens-cli/internal/analyzers/sentiment"
	"github.com/custodia-labs/textlens-cli/internal/analyzers/textstats"
	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

// Compile-time check that AnalysisService implements the driving port.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the full analysis pipeline: sentiment, keyword
// extraction, readability scoring, and text statistics.
// Safe for concurrent use: the keyword limit may be adjusted by a
// settings reload while analyses are running.
type AnalysisService struct {
	sentiment *sentiment.Analyzer

	mu           sync.RWMutex
	keywordLimit int
}

// NewAnalysisService creates the pipeline backed by the given sentiment
// lexicon. The keyword limit starts at the package default.
func NewAnalysisService(lexicon sentiment.Lexicon) *AnalysisService {
	return &AnalysisService{
		sentiment:    sentiment.New(lexicon),
		keywordLimit: keywords.DefaultLimit,
	}
}

// SetKeywordLimit adjusts how many keywords the pipeline returns.
// A negative limit is treated as 0.
func (s *AnalysisService) SetKeywordLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keywordLimit = limit
}

// KeywordLimit reports the current keyword limit.
func (s *AnalysisService) KeywordLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keywordLimit
}

// AnalyzeText runs the pipeline over ad-hoc text. Degenerate input
// yields zeroed results, never an error.
func (s *AnalysisService) AnalyzeText(_ context.Context, text string) (*domain.Analysis, error) {
	analysis := s.run(text)
	return analysis, nil
}

// analyzeDocument runs the pipeline over a document's content, stamping
// the result with the document ID. Used by the document service when
// the cache misses.
func (s *AnalysisService) analyzeDocument(doc *domain.Document) *domain.Analysis {
	analysis := s.run(doc.Content)
	analysis.DocumentID = doc.ID
	return analysis
}

func (s *AnalysisService) run(text string) *domain.Analysis {
	logger.Debug("analysis: running pipeline over %d bytes", len(text))

	analysis := &domain.Analysis{
		Sentiment:    s.sentiment.Analyze(text),
		Keywords:     keywords.Extract(text, s.KeywordLimit()),
		Readability:  readability.Score(text),
		Stats:        textstats.Calculate(text),
		AnalysisDate: time.Now().UTC(),
	}

	logger.Debug("analysis: sentiment=%s keywords=%d flesch-kincaid=%.2f",
		analysis.Sentiment.Classification, len(analysis.Keywords), analysis.Readability.FleschKincaid)
	return analysis
}
