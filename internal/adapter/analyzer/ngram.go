package analyzer

import (
	"fmt"

	"termex/internal/domain"
	"termex/internal/port"
)

var _ port.Extractor = (*NGramExtractor)(nil)

// NGramConfig configures an NGramExtractor.
type NGramConfig struct {
	Language       string
	MinLength      int
	MaxLength      int
	MinOccurrences int
	Stem           bool
}

// NGramExtractor extracts n-grams bounded on both sides by a stop word,
// punctuation or the edge of the text. Words directly next to each other are
// assumed to belong to the same term.
type NGramExtractor struct {
	cfg       NGramConfig
	tokenizer *Tokenizer
	stopwords map[string]struct{}
	stemmer   *Stemmer
	surfaces  *SurfaceForms
}

// NewNGramExtractor validates cfg and creates an extractor.
func NewNGramExtractor(cfg NGramConfig) (*NGramExtractor, error) {
	if cfg.MinLength < 1 || cfg.MaxLength < cfg.MinLength {
		return nil, fmt.Errorf("invalid term length bounds [%d, %d]", cfg.MinLength, cfg.MaxLength)
	}
	if cfg.MinOccurrences < 1 {
		cfg.MinOccurrences = 1
	}

	stops, err := Stopwords(cfg.Language)
	if err != nil {
		return nil, err
	}

	e := &NGramExtractor{
		cfg:       cfg,
		tokenizer: NewTokenizer(),
		stopwords: stops,
		surfaces:  NewSurfaceForms(),
	}
	if cfg.Stem {
		if e.stemmer, err = NewStemmer(cfg.Language); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Surfaces returns the stem -> surface form table filled by Extract.
func (e *NGramExtractor) Surfaces() *SurfaceForms {
	return e.surfaces
}

// Extract returns the document's terms in order, repeats included.
func (e *NGramExtractor) Extract(text string) []domain.Term {
	tokens := e.tokenizer.Words(text)

	var terms []domain.Term
	for n := e.cfg.MinLength; n <= e.cfg.MaxLength; n++ {
		terms = append(terms, e.ngrams(tokens, n)...)
	}
	return e.finalize(terms)
}

func (e *NGramExtractor) ngrams(tokens []string, n int) []domain.Term {
	var terms []domain.Term
	for i := 0; i+n <= len(tokens); i++ {
		if i > 0 && !e.isBoundary(tokens[i-1]) {
			continue
		}
		if i+n < len(tokens) && !e.isBoundary(tokens[i+n]) {
			continue
		}
		window := tokens[i : i+n]
		if e.isStopword(window[0]) || e.isStopword(window[n-1]) {
			continue
		}
		if containsPunct(window) {
			continue
		}
		terms = append(terms, domain.NewTerm(window...))
	}
	return terms
}

// finalize stems the terms when configured and drops those that occur fewer
// than MinOccurrences times in the document.
func (e *NGramExtractor) finalize(terms []domain.Term) []domain.Term {
	if e.stemmer != nil {
		for i, t := range terms {
			words := t.Words()
			for j, w := range words {
				words[j] = e.stemmer.Stem(w)
			}
			stem := domain.NewTerm(words...)
			e.surfaces.Record(stem, t)
			terms[i] = stem
		}
	}

	if e.cfg.MinOccurrences <= 1 {
		return terms
	}
	counts := make(map[domain.Term]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	kept := terms[:0]
	for _, t := range terms {
		if counts[t] >= e.cfg.MinOccurrences {
			kept = append(kept, t)
		}
	}
	return kept
}

// Display replaces stemmed terms by their most frequent surface form. Terms
// with no recorded form are kept as they are.
func (e *NGramExtractor) Display(ranked []domain.ScoredTerm) []domain.ScoredTerm {
	if e.stemmer == nil {
		return ranked
	}
	out := make([]domain.ScoredTerm, len(ranked))
	for i, r := range ranked {
		out[i] = r
		if surface, err := e.surfaces.Surface(r.Term); err == nil {
			out[i].Term = surface
		}
	}
	return out
}

func (e *NGramExtractor) isBoundary(tok string) bool {
	return IsPunct(tok) || e.isStopword(tok)
}

func (e *NGramExtractor) isStopword(tok string) bool {
	_, ok := e.stopwords[tok]
	return ok
}

func containsPunct(tokens []string) bool {
	for _, t := range tokens {
		if IsPunct(t) {
			return true
		}
	}
	return false
}
