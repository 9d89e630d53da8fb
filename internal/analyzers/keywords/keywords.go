// Package keywords ranks distinct terms by a frequency-length heuristic.
package keywords

import (
	"sort"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/custodia-labs/textlens-cli/internal/analyzers/tokenizer"
	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// DefaultLimit is the keyword count returned when the caller passes no
// explicit limit.
const DefaultLimit = 10

// Extract tokenizes text, filters stopwords and short tokens, and
// returns the top-limit distinct terms ordered by importance descending.
// Importance is frequency multiplied by term character length. Ties keep
// first-occurrence order. A negative limit is treated as 0.
func Extract(text string, limit int) []domain.KeywordResult {
	if limit < 0 {
		limit = 0
	}

	tokens := tokenizer.KeywordTokens(text)

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	results := make([]domain.KeywordResult, 0, len(order))
	for _, term := range order {
		freq := counts[term]
		results = append(results, domain.KeywordResult{
			Term:       term,
			Stem:       snowballeng.Stem(term, false),
			Frequency:  freq,
			Importance: float64(freq * len(term)),
		})
	}

	// Stable sort preserves first-occurrence order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Importance > results[j].Importance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
