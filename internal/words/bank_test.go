package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankCategories(t *testing.T) {
	b := DefaultBank()
	cats := b.Categories()
	assert.Equal(t, []string{"animals", "countries", "general", "movies", "sports", "tech"}, cats)
	for _, c := range cats {
		assert.True(t, b.HasCategory(c))
	}
	assert.False(t, b.HasCategory("plants"))
}

func TestRandomWordScoped(t *testing.T) {
	b := NewBank(map[string][]string{"fruit": {"apple", " pear ", ""}})
	for i := 0; i < 20; i++ {
		w, err := b.RandomWord("fruit")
		require.NoError(t, err)
		assert.Contains(t, []string{"APPLE", "PEAR"}, w)
	}
}

func TestRandomWordUnscoped(t *testing.T) {
	b := DefaultBank()
	w, err := b.RandomWord("")
	require.NoError(t, err)
	assert.NotEmpty(t, w)
	assert.Equal(t, strings.ToUpper(w), w)
}

func TestRandomWordUnknownCategory(t *testing.T) {
	b := DefaultBank()
	_, err := b.RandomWord("nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestEmptyBank(t *testing.T) {
	b := NewBank(nil)
	_, err := b.RandomWord("")
	assert.ErrorIs(t, err, ErrEmptyBank)
}
