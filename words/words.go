package words

import "math/rand/v2"

const (
	LanguageGreek   = "greek"
	LanguageEnglish = "english"
)

// Supplier hands out a secret word for a language selector.
type Supplier interface {
	Word(language string) string
}

// Dictionary serves words from the built-in pools. Unknown languages fall
// back to Greek.
type Dictionary struct{}

func (Dictionary) Word(language string) string {
	pool := GreekWords
	if language == LanguageEnglish {
		pool = EnglishWords
	}
	return pool[rand.IntN(len(pool))]
}
