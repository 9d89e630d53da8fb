// Package sentiment performs lexicon-based sentiment scoring.
//
// The analyzer splits text into whitespace-delimited tokens, looks each
// token up in a pluggable word->weight lexicon, and sums the weights.
// The comparative score (sum divided by token count) drives a three-way
// classification with a +/-0.1 neutral band.
package sentiment

import (
	"github.com/custodia-labs/textlens-cli/internal/analyzers/tokenizer"
	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// Classification thresholds on the comparative score.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Lexicon provides per-word polarity weights. Implementations must be
// safe for concurrent use.
type Lexicon interface {
	// Weight returns the polarity weight for word and whether the
	// word is present in the lexicon. Lookups are lowercase.
	Weight(word string) (float64, bool)
}

// Analyzer scores text against a lexicon. The zero value is not usable;
// construct with New.
type Analyzer struct {
	lexicon Lexicon
}

// New creates an analyzer backed by the given lexicon.
func New(lexicon Lexicon) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// Analyze scores text and returns the full sentiment result.
// Empty or whitespace-only text yields a zero score, a zero comparative,
// empty word lists, and a neutral classification.
func (a *Analyzer) Analyze(text string) domain.SentimentResult {
	tokens := tokenizer.Words(text)

	result := domain.SentimentResult{
		Tokens:   tokens,
		Words:    []string{},
		Positive: []string{},
		Negative: []string{},
	}

	for _, tok := range tokens {
		weight, ok := a.lexicon.Weight(tok)
		if !ok {
			continue
		}
		result.Score += weight
		result.Words = append(result.Words, tok)
		if weight > 0 {
			result.Positive = append(result.Positive, tok)
		} else if weight < 0 {
			result.Negative = append(result.Negative, tok)
		}
	}

	if len(tokens) > 0 {
		result.Comparative = result.Score / float64(len(tokens))
	}
	result.Classification = Classify(result.Comparative)

	return result
}

// Classify maps a comparative score onto the three-way classification.
func Classify(comparative float64) domain.SentimentClass {
	switch {
	case comparative > positiveThreshold:
		return domain.SentimentPositive
	case comparative < negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
