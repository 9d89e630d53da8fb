// Package readability computes Flesch-Kincaid Reading Ease scores.
//
// Syllable counting is a deliberate approximation: suffix stripping plus
// vowel-run counting with a floor of one. Changing its rules silently
// shifts every readability score, so treat the heuristic as fixed.
package readability

import (
	"math"
	"regexp"
	"strings"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Score computes the readability result for text.
// Texts with no sentences or no words score 0, which maps to the lowest
// grade band.
func Score(text string) domain.ReadabilityResult {
	sentences := SplitSentences(text)
	words := strings.Fields(text)

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	result := domain.ReadabilityResult{
		SentenceCount: len(sentences),
		WordCount:     len(words),
		SyllableCount: syllables,
	}

	if len(sentences) > 0 && len(words) > 0 {
		score := 206.835 -
			1.015*(float64(len(words))/float64(len(sentences))) -
			84.6*(float64(syllables)/float64(len(words)))
		result.FleschKincaid = round2(score)
	}

	result.GradeLevel = GradeLevel(result.FleschKincaid)
	result.Complexity = ComplexityFor(result.FleschKincaid)
	return result
}

// SplitSentences splits text on runs of '.', '!', '?'. Segments are
// trimmed and empty segments discarded.
func SplitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CountSyllables estimates the syllable count of a single word.
// Words of length <= 3 count as one syllable. Longer words have a
// trailing consonant+es, ed, or consonant+silent-e removed and a leading
// y stripped before counting maximal vowel runs, with a floor of one.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	if len(w) <= 3 {
		return 1
	}

	w = stripSuffix(w)
	w = strings.TrimPrefix(w, "y")

	count := 0
	inRun := false
	for _, r := range w {
		if isVowel(r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}

	if count == 0 {
		return 1
	}
	return count
}

// GradeLevel maps a Reading Ease score to a grade band, evaluated
// top-down with first match winning.
func GradeLevel(score float64) string {
	switch {
	case score >= 90:
		return "5th grade"
	case score >= 80:
		return "6th grade"
	case score >= 70:
		return "7th grade"
	case score >= 60:
		return "8th-9th grade"
	case score >= 50:
		return "10th-12th grade"
	case score >= 30:
		return "College"
	default:
		return "College graduate"
	}
}

// ComplexityFor maps a Reading Ease score to a coarse tier.
func ComplexityFor(score float64) domain.Complexity {
	switch {
	case score >= 70:
		return domain.ComplexityEasy
	case score >= 50:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityHard
	}
}

// stripSuffix removes a trailing consonant+"es", "ed", or
// consonant+silent "e" from w.
func stripSuffix(w string) string {
	n := len(w)
	if n >= 3 && strings.HasSuffix(w, "es") && !isVowelByte(w[n-3]) {
		return w[:n-3]
	}
	if strings.HasSuffix(w, "ed") {
		return w[:n-2]
	}
	if n >= 2 && w[n-1] == 'e' && !isVowelByte(w[n-2]) {
		return w[:n-2]
	}
	return w
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isVowelByte(b byte) bool {
	return isVowel(rune(b))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
