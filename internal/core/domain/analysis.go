package domain

import "time"

// SentimentClass is the three-way polarity classification.
type SentimentClass string

// Sentiment classifications, derived from the comparative score.
const (
	SentimentPositive SentimentClass = "positive"
	SentimentNegative SentimentClass = "negative"
	SentimentNeutral  SentimentClass = "neutral"
)

// String returns the string representation.
func (c SentimentClass) String() string {
	return string(c)
}

// SentimentResult holds the output of lexicon-based sentiment scoring.
type SentimentResult struct {
	// Score is the sum of per-word lexicon polarity values.
	Score float64

	// Comparative is Score divided by the token count, 0 when the
	// text has no tokens.
	Comparative float64

	// Tokens is the full list of analyzed tokens.
	Tokens []string

	// Words lists every token that matched the lexicon, in order of
	// appearance.
	Words []string

	// Positive lists the matched positive words.
	Positive []string

	// Negative lists the matched negative words.
	Negative []string

	// Classification is positive, negative, or neutral.
	Classification SentimentClass
}

// KeywordResult is one ranked keyword within an analysis.
type KeywordResult struct {
	// Term is the normalized token.
	Term string

	// Stem is the Porter2 stem of the term. Informational only; it
	// does not participate in ranking.
	Stem string

	// Frequency is the occurrence count within the analyzed text.
	Frequency int

	// Importance is frequency multiplied by term length.
	Importance float64
}

// Complexity is a coarse readability tier.
type Complexity string

// Complexity tiers, derived from the Flesch-Kincaid score.
const (
	ComplexityEasy   Complexity = "easy"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

// ReadabilityResult holds the output of readability scoring.
type ReadabilityResult struct {
	// FleschKincaid is the Reading Ease score, rounded to 2 decimals.
	// 0 when the text has no sentences or no words.
	FleschKincaid float64

	// GradeLevel is the grade band label for the score.
	GradeLevel string

	// Complexity is easy, medium, or hard.
	Complexity Complexity

	// SentenceCount, WordCount, and SyllableCount are the raw inputs
	// to the formula.
	SentenceCount int
	WordCount     int
	SyllableCount int
}

// TextStats holds corpus statistics for a single text.
type TextStats struct {
	// WordCount is the number of whitespace-delimited tokens.
	WordCount int

	// SentenceCount is the number of sentence segments.
	SentenceCount int

	// ParagraphCount is the number of blank-line-separated blocks.
	ParagraphCount int

	// UniqueWordCount is the number of case-insensitively distinct words.
	UniqueWordCount int

	// AvgWordsPerSentence is WordCount/SentenceCount, rounded to
	// 2 decimals, 0 when there are no sentences.
	AvgWordsPerSentence float64

	// VocabularyDiversity is UniqueWordCount/WordCount, rounded to
	// 3 decimals, 0 when there are no words.
	VocabularyDiversity float64
}

// Analysis is the composite per-document analysis result.
// It is valid only for the content snapshot it was computed from; any
// content-affecting update must invalidate the cached copy.
type Analysis struct {
	// DocumentID identifies the analyzed document. Empty for ad-hoc
	// text analysis.
	DocumentID string

	// Sentiment is the lexicon-based polarity result.
	Sentiment SentimentResult

	// Keywords is the ranked keyword list, importance descending.
	Keywords []KeywordResult

	// Readability is the Flesch-Kincaid result.
	Readability ReadabilityResult

	// Stats holds word/sentence/paragraph statistics.
	Stats TextStats

	// AnalysisDate is when the analysis was computed.
	AnalysisDate time.Time
}
