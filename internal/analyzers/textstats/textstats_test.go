package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_Basic(t *testing.T) {
	text := "The quick brown fox. The lazy dog sleeps."

	stats := Calculate(text)

	assert.Equal(t, 8, stats.WordCount)
	assert.Equal(t, 2, stats.SentenceCount)
	assert.Equal(t, 1, stats.ParagraphCount)
	// "The" appears twice case-insensitively; "fox." and "sleeps."
	// keep their punctuation under whitespace splitting.
	assert.Equal(t, 7, stats.UniqueWordCount)
	assert.Equal(t, 4.0, stats.AvgWordsPerSentence)
	assert.InDelta(t, 0.875, stats.VocabularyDiversity, 1e-9)
}

func TestCalculate_Paragraphs(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph follows.\n\n\n\nThird one."

	stats := Calculate(text)

	assert.Equal(t, 3, stats.ParagraphCount)
}

func TestCalculate_BlankLinesWithSpaces(t *testing.T) {
	text := "First block.\n   \nSecond block."

	stats := Calculate(text)

	assert.Equal(t, 2, stats.ParagraphCount)
}

func TestCalculate_Empty(t *testing.T) {
	stats := Calculate("")

	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.SentenceCount)
	assert.Zero(t, stats.ParagraphCount)
	assert.Zero(t, stats.UniqueWordCount)
	assert.Equal(t, 0.0, stats.AvgWordsPerSentence)
	assert.Equal(t, 0.0, stats.VocabularyDiversity)
}

func TestCalculate_WhitespaceOnly(t *testing.T) {
	stats := Calculate("   \n\t\n  ")

	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.ParagraphCount)
	assert.Equal(t, 0.0, stats.VocabularyDiversity)
}

func TestCalculate_DiversityBounds(t *testing.T) {
	// All distinct words: diversity exactly 1.
	allDistinct := Calculate("alpha beta gamma delta.")
	assert.Equal(t, 1.0, allDistinct.VocabularyDiversity)

	// Repeated words: diversity strictly below 1, above 0.
	repeated := Calculate("echo echo echo echo echo.")
	assert.Greater(t, repeated.VocabularyDiversity, 0.0)
	assert.Less(t, repeated.VocabularyDiversity, 1.0)
}

func TestCalculate_CaseInsensitiveUniqueness(t *testing.T) {
	stats := Calculate("Word word WORD")

	assert.Equal(t, 3, stats.WordCount)
	assert.Equal(t, 1, stats.UniqueWordCount)
	assert.InDelta(t, 0.333, stats.VocabularyDiversity, 1e-9)
}

func TestCalculate_Rounding(t *testing.T) {
	// 7 words, 3 sentences: 7/3 = 2.333... -> 2.33
	stats := Calculate("one two three. four five. six seven.")

	assert.Equal(t, 2.33, stats.AvgWordsPerSentence)
}
