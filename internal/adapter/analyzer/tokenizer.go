package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits text into lowercase word tokens and single-rune
// punctuation tokens. Punctuation is kept because it bounds candidate terms.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Words returns words and punctuation in text order.
func (t *Tokenizer) Words(text string) []string {
	return splitTokens(strings.ToLower(text))
}

// CountWords returns the number of word tokens, punctuation excluded.
func (t *Tokenizer) CountWords(text string) int {
	n := 0
	for _, tok := range splitTokens(text) {
		if !IsPunct(tok) {
			n++
		}
	}
	return n
}

// IsPunct reports whether a token is a punctuation or symbol token.
func IsPunct(tok string) bool {
	if tok == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok)
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// splitTokens splits text on unicode word boundaries. A hyphen between two
// word runes stays inside the word; apostrophes split elided articles.
func splitTokens(text string) []string {
	var tokens []string
	var current strings.Builder
	runes := []rune(text)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case r == '-' && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			flush()
		}
	}
	flush()

	return tokens
}
