package tokenize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artscr/artscr/pkg/tokenize"
)

func TestEnumerateTokensBasic(t *testing.T) {
	toks := tokenize.EnumerateTokens("Hello, world! 42")
	var cats []tokenize.Category
	for _, tk := range toks {
		cats = append(cats, tk.Category)
	}
	assert.Contains(t, cats, tokenize.Word)
	assert.Contains(t, cats, tokenize.Number)
	assert.Contains(t, cats, tokenize.PunctuationMark)
	assert.Contains(t, cats, tokenize.WhiteSpace)
}

func TestCountCategoriesExcludesWhitespace(t *testing.T) {
	words, numbers, punct := tokenize.CountCategories(tokenize.EnumerateTokens("a 1, b"))
	assert.Equal(t, 2, words)
	assert.Equal(t, 1, numbers)
	assert.Equal(t, 1, punct)
}

func TestJaroWinklerSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, tokenize.JaroWinklerSimilarity("same", "same"))
}

func TestJaroWinklerSimilarityClose(t *testing.T) {
	sim := tokenize.JaroWinklerSimilarity("MARTHA", "MARHTA")
	assert.InDelta(t, 0.961, sim, 0.01)
}

func TestJaroWinklerSimilarityDisjoint(t *testing.T) {
	sim := tokenize.JaroWinklerSimilarity("abc", "xyz")
	assert.Equal(t, 0.0, sim)
}

func TestLevenshteinRatio(t *testing.T) {
	assert.Equal(t, 1.0, tokenize.LevenshteinRatio("Real Title", "Real Title"))
	assert.Greater(t, tokenize.LevenshteinRatio("Real Title", "Real Titel"), 0.7)
}
