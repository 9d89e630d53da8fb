package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "Hello World", []string{"hello", "world"}},
		{"punctuation boundaries", "hello-world, again!", []string{"hello", "world", "again"}},
		{"numbers kept", "price 9 dollars", []string{"price", "9", "dollars"}},
		{"mixed delimiters", "user@example.com", []string{"user", "example", "com"}},
		{"empty", "", nil},
		{"only delimiters", "... !!! ---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordTokens_FiltersStopwordsAndShortTokens(t *testing.T) {
	got := KeywordTokens("The cat sat on an old mat")

	// "the", "on", "an" are stopwords; "cat", "sat", "mat", "old" are
	// 3 chars and kept.
	assert.Equal(t, []string{"cat", "sat", "old", "mat"}, got)
}

func TestKeywordTokens_ShortTokensExcluded(t *testing.T) {
	got := KeywordTokens("go is ok but golang rocks")

	for _, tok := range got {
		assert.GreaterOrEqual(t, len(tok), MinKeywordLength)
	}
	assert.Contains(t, got, "golang")
	assert.Contains(t, got, "rocks")
	assert.NotContains(t, got, "go")
	assert.NotContains(t, got, "ok")
}

func TestKeywordTokens_Empty(t *testing.T) {
	assert.Empty(t, KeywordTokens(""))
	assert.Empty(t, KeywordTokens("   \n\t  "))
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"trims punctuation", "I absolutely love this!", []string{"i", "absolutely", "love", "this"}},
		{"keeps inner punctuation", "it's o'clock", []string{"it's", "o'clock"}},
		{"drops pure punctuation", "yes -- no", []string{"yes", "no"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("The"))
	assert.True(t, IsStopword("SHOULD"))
	assert.False(t, IsStopword("technology"))
	assert.False(t, IsStopword(""))
}
