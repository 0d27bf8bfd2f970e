package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionary_Word(t *testing.T) {
	t.Parallel()

	greekPool := map[string]bool{}
	for _, w := range GreekWords {
		greekPool[w] = true
	}
	englishPool := map[string]bool{}
	for _, w := range EnglishWords {
		englishPool[w] = true
	}

	dict := Dictionary{}

	for i := 0; i < 100; i++ {
		assert.True(t, greekPool[dict.Word(LanguageGreek)])
		assert.True(t, englishPool[dict.Word(LanguageEnglish)])
		// Unknown selectors fall back to the Greek pool.
		assert.True(t, greekPool[dict.Word("klingon")])
	}
}

func TestWordPoolsAreNonEmpty(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, GreekWords)
	assert.NotEmpty(t, EnglishWords)
}
