package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"a", 1},
		{"the", 1},
		{"hello", 2},
		{"jumped", 1}, // "ed" stripped
		{"makes", 1},  // consonant+"es" stripped
		{"table", 1},  // consonant+silent "e" stripped
		{"yellow", 2}, // leading "y" stripped
		{"rhythm", 1}, // "y" counts as a vowel
		{"idea", 2},   // i + ea runs
		{"queue", 1},  // single vowel run
		{"strength", 1},
		{"beautiful", 3}, // eau + i + u vowel runs
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSyllables(tt.word))
		})
	}
}

func TestCountSyllables_FloorOfOne(t *testing.T) {
	// No vowels at all still counts one syllable.
	assert.Equal(t, 1, CountSyllables("hmmmm"))
	assert.Equal(t, 1, CountSyllables("pfft"))
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"basic", "One. Two! Three?", []string{"One", "Two", "Three"}},
		{"runs of terminators", "Wait... what?!", []string{"Wait", "what"}},
		{"no terminator", "no punctuation here", []string{"no punctuation here"}},
		{"empty", "", nil},
		{"only terminators", "...!!!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_SimpleText(t *testing.T) {
	// 2 sentences, 6 words, 6 syllables:
	// 206.835 - 1.015*(6/2) - 84.6*(6/6) = 119.19
	result := Score("The cat sat. The dog ran.")

	assert.Equal(t, 2, result.SentenceCount)
	assert.Equal(t, 6, result.WordCount)
	assert.Equal(t, 6, result.SyllableCount)
	assert.InDelta(t, 119.19, result.FleschKincaid, 1e-9)
	assert.Equal(t, "5th grade", result.GradeLevel)
	assert.Equal(t, domain.ComplexityEasy, result.Complexity)
}

func TestScore_Empty(t *testing.T) {
	result := Score("")

	assert.Equal(t, 0.0, result.FleschKincaid)
	assert.Equal(t, "College graduate", result.GradeLevel)
	assert.Equal(t, domain.ComplexityHard, result.Complexity)
	assert.Zero(t, result.SentenceCount)
	assert.Zero(t, result.WordCount)
}

func TestScore_NoSentences(t *testing.T) {
	// Terminators only: one word by whitespace split, zero sentences,
	// so the formula is not evaluated.
	result := Score("...")

	assert.Equal(t, 0.0, result.FleschKincaid)
	assert.Equal(t, "College graduate", result.GradeLevel)
}

func TestGradeLevel_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "5th grade"},
		{90, "5th grade"},
		{85, "6th grade"},
		{80, "6th grade"},
		{75, "7th grade"},
		{65, "8th-9th grade"},
		{55, "10th-12th grade"},
		{40, "College"},
		{30, "College"},
		{29.99, "College graduate"},
		{0, "College graduate"},
		{-20, "College graduate"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeLevel(tt.score), "score=%v", tt.score)
	}
}

func TestComplexityFor_Tiers(t *testing.T) {
	assert.Equal(t, domain.ComplexityEasy, ComplexityFor(70))
	assert.Equal(t, domain.ComplexityEasy, ComplexityFor(100))
	assert.Equal(t, domain.ComplexityMedium, ComplexityFor(69.99))
	assert.Equal(t, domain.ComplexityMedium, ComplexityFor(50))
	assert.Equal(t, domain.ComplexityHard, ComplexityFor(49.99))
	assert.Equal(t, domain.ComplexityHard, ComplexityFor(0))
}
