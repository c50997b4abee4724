package analyzer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

var snowballLanguages = map[string]string{
	"french":  "french",
	"fr":      "french",
	"english": "english",
	"en":      "english",
}

// Stemmer reduces words to their Snowball stem.
type Stemmer struct {
	language string
}

// NewStemmer creates a Snowball stemmer for a supported language.
func NewStemmer(language string) (*Stemmer, error) {
	lang, ok := snowballLanguages[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("no stemmer for language %q", language)
	}
	return &Stemmer{language: lang}, nil
}

// Stem returns the stem of word, or word itself when stemming fails.
func (s *Stemmer) Stem(word string) string {
	stem, err := snowball.Stem(word, s.language, true)
	if err != nil || stem == "" {
		return word
	}
	return stem
}
