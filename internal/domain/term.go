package domain

import "strings"

// wordSep separates the words of a Term key. Tokenizers never emit it.
const wordSep = "\x1f"

// Term is an ordered, immutable sequence of words. Two terms are equal iff
// they hold the same words in the same order, so a Term is usable as a map key.
type Term string

// NewTerm builds a Term from its words.
func NewTerm(words ...string) Term {
	return Term(strings.Join(words, wordSep))
}

// ParseTerm builds a Term from space separated words.
func ParseTerm(s string) Term {
	return NewTerm(strings.Fields(s)...)
}

// Words returns a fresh copy of the term's words.
func (t Term) Words() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), wordSep)
}

// Len returns the number of words in the term.
func (t Term) Len() int {
	if t == "" {
		return 0
	}
	return strings.Count(string(t), wordSep) + 1
}

// Sub returns the contiguous sub-term of words [i, j).
func (t Term) Sub(i, j int) Term {
	return NewTerm(t.Words()[i:j]...)
}

// String joins the words with a single space.
func (t Term) String() string {
	return strings.ReplaceAll(string(t), wordSep, " ")
}

// ScoredTerm is one line of a ranking.
type ScoredTerm struct {
	Term  Term
	Score float64
}

// Scores maps each scored term to its score.
type Scores map[Term]float64
