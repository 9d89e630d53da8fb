// Package textstats computes corpus statistics for a single text.
package textstats

import (
	"math"
	"regexp"
	"strings"

	"github.com/custodia-labs/textlens-cli/internal/analyzers/readability"
	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// Calculate derives all statistics purely from text.
// Degenerate inputs produce zero-valued results, never errors.
func Calculate(text string) domain.TextStats {
	words := strings.Fields(text)
	sentences := readability.SplitSentences(text)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[strings.ToLower(w)] = struct{}{}
	}

	stats := domain.TextStats{
		WordCount:       len(words),
		SentenceCount:   len(sentences),
		ParagraphCount:  countParagraphs(text),
		UniqueWordCount: len(unique),
	}

	if stats.SentenceCount > 0 {
		stats.AvgWordsPerSentence = round2(float64(stats.WordCount) / float64(stats.SentenceCount))
	}
	if stats.WordCount > 0 {
		stats.VocabularyDiversity = round3(float64(stats.UniqueWordCount) / float64(stats.WordCount))
	}

	return stats
}

// countParagraphs counts blank-line-separated non-empty blocks.
func countParagraphs(text string) int {
	count := 0
	for _, block := range paragraphBoundary.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
