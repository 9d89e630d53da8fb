// Package tokenizer splits raw text into normalized tokens.
//
// Two splitting rules coexist deliberately: Tokenize splits on
// non-alphanumeric boundaries and feeds keyword extraction, while Words
// splits on whitespace and feeds sentiment and statistics. The coarser
// whitespace rule keeps token counts consistent with how the readability
// scorer counts words.
package tokenizer

import (
	"strings"
	"unicode"
)

// MinKeywordLength is the minimum token length considered for keyword
// relevance. Shorter tokens are excluded along with stopwords.
const MinKeywordLength = 3

// Tokenize splits text on non-alphanumeric boundaries into lowercase
// tokens. Runs of delimiters produce no empty tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

// KeywordTokens returns the tokens of text that qualify for keyword
// relevance: lowercase, no stopwords, length >= MinKeywordLength.
func KeywordTokens(text string) []string {
	tokens := Tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < MinKeywordLength || IsStopword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// Words splits text on whitespace into lowercase tokens with leading and
// trailing punctuation trimmed. Tokens that are pure punctuation are
// dropped.
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// IsStopword reports whether token is in the fixed stopword set.
// The check is case-insensitive.
func IsStopword(token string) bool {
	_, ok := stopwords[strings.ToLower(token)]
	return ok
}
