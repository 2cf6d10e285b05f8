package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("CAT", "CAT"))
	assert.InDelta(t, 6.0/7.0, similarityRatio("CATS", "CAT"), 1e-9)
	assert.InDelta(t, 0.5, similarityRatio("DOG", "CAT"), 1e-9)
	assert.Equal(t, 1.0, similarityRatio("", ""))
}

func TestIsTooClose(t *testing.T) {
	assert.False(t, isTooClose("CAT", "CAT"), "exact match is never censored")
	assert.True(t, isTooClose("CATS", "CAT"), "one-letter variant of a short word trips the guard")
	assert.True(t, isTooClose("PIZZAS", "PIZZA"))
	assert.False(t, isTooClose("DOG", "CAT"))
	assert.False(t, isTooClose("HOUSE", "CAT"))
	assert.False(t, isTooClose("", "CAT"))
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "ICE CREAM", normalizeWord("  ice cream "))
	assert.Equal(t, "PIZZA", normalizeWord("Pizza"))
}
