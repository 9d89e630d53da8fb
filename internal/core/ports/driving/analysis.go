package driving

import (
	"context"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// AnalysisService runs the analysis pipeline over ad-hoc text.
type AnalysisService interface {
	// AnalyzeText computes sentiment, keywords, readability, and
	// statistics for text. Degenerate input yields zeroed results,
	// never an error.
	AnalyzeText(ctx context.Context, text string) (*domain.Analysis, error)
}
