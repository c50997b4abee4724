package analyzer

import (
	"errors"
	"testing"

	"termex/internal/domain"
)

func newExtractor(t *testing.T, cfg NGramConfig) *NGramExtractor {
	t.Helper()
	if cfg.Language == "" {
		cfg.Language = "english"
	}
	e, err := NewNGramExtractor(cfg)
	if err != nil {
		t.Fatalf("NewNGramExtractor: %v", err)
	}
	return e
}

func termStrings(terms []domain.Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}
	return out
}

func containsTerm(terms []domain.Term, s string) bool {
	for _, t := range terms {
		if t.String() == s {
			return true
		}
	}
	return false
}

func TestNGramExtractorBounds(t *testing.T) {
	e := newExtractor(t, NGramConfig{MinLength: 1, MaxLength: 3})

	terms := e.Extract("The neural network is fast, and the model of language.")

	for _, want := range []string{"neural network", "fast", "model of language", "model", "language"} {
		if !containsTerm(terms, want) {
			t.Errorf("expected %q in %v", want, termStrings(terms))
		}
	}
	for _, unwanted := range []string{"neural", "network", "the neural", "network is", "model", "of language", "fast and"} {
		if containsTerm(terms, unwanted) {
			t.Errorf("did not expect %q in %v", unwanted, termStrings(terms))
		}
	}
}

func TestNGramExtractorLengthInclusive(t *testing.T) {
	e := newExtractor(t, NGramConfig{MinLength: 2, MaxLength: 2})

	terms := e.Extract("alpha beta. gamma. delta epsilon zeta")

	if !containsTerm(terms, "alpha beta") {
		t.Errorf("expected 'alpha beta' in %v", termStrings(terms))
	}
	if containsTerm(terms, "gamma") {
		t.Error("unigram below min length extracted")
	}
	if containsTerm(terms, "epsilon zeta") {
		t.Error("unbounded bigram extracted")
	}
}

func TestNGramExtractorMinOccurrences(t *testing.T) {
	e := newExtractor(t, NGramConfig{MinLength: 1, MaxLength: 2, MinOccurrences: 2})

	terms := e.Extract("graph theory. graph theory. lonely word.")

	count := 0
	for _, term := range terms {
		if term.String() == "graph theory" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 'graph theory' twice, got %d in %v", count, termStrings(terms))
	}
	if containsTerm(terms, "lonely word") {
		t.Error("expected single occurrence to be dropped")
	}
}

func TestNGramExtractorStemming(t *testing.T) {
	e := newExtractor(t, NGramConfig{MinLength: 1, MaxLength: 2, Stem: true})

	terms := e.Extract("neural networks. neural network. neural networks.")

	s, err := NewStemmer("english")
	if err != nil {
		t.Fatalf("NewStemmer: %v", err)
	}
	stem := domain.NewTerm(s.Stem("neural"), s.Stem("networks"))
	n := 0
	for _, term := range terms {
		if term == stem {
			n++
		}
	}
	if n != 3 {
		t.Fatalf("expected 3 occurrences of stem %q, got %v", stem.String(), termStrings(terms))
	}

	surface, err := e.Surfaces().Surface(stem)
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	if surface.String() != "neural networks" {
		t.Errorf("Surface = %q, want %q", surface.String(), "neural networks")
	}

	ranked := e.Display([]domain.ScoredTerm{
		{Term: stem, Score: 1},
		{Term: domain.NewTerm("unknown"), Score: 0.5},
	})
	if ranked[0].Term.String() != "neural networks" || ranked[0].Score != 1 {
		t.Errorf("Display()[0] = %+v", ranked[0])
	}
	if ranked[1].Term.String() != "unknown" {
		t.Errorf("expected fallback to stem, got %q", ranked[1].Term.String())
	}
}

func TestNGramExtractorDisplayWithoutStemming(t *testing.T) {
	e := newExtractor(t, NGramConfig{MinLength: 1, MaxLength: 1})

	in := []domain.ScoredTerm{{Term: domain.NewTerm("x"), Score: 1}}
	out := e.Display(in)
	if len(out) != 1 || out[0].Term != in[0].Term {
		t.Errorf("Display() = %v, want %v", out, in)
	}
}

func TestNewNGramExtractorInvalid(t *testing.T) {
	cases := []NGramConfig{
		{Language: "english", MinLength: 0, MaxLength: 2},
		{Language: "english", MinLength: 3, MaxLength: 2},
		{Language: "klingon", MinLength: 1, MaxLength: 2},
	}
	for _, cfg := range cases {
		if _, err := NewNGramExtractor(cfg); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestSurfaceForms(t *testing.T) {
	s := NewSurfaceForms()
	stem := domain.NewTerm("cat")

	if _, err := s.Surface(stem); !errors.Is(err, domain.ErrSurfaceNotFound) {
		t.Errorf("expected ErrSurfaceNotFound, got %v", err)
	}
	if !errors.Is(domain.ErrSurfaceNotFound, domain.ErrLookupMiss) {
		t.Error("expected ErrSurfaceNotFound to be a lookup miss")
	}

	s.Record(stem, domain.NewTerm("cats"))
	s.Record(stem, domain.NewTerm("cat"))
	got, err := s.Surface(stem)
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	if got.String() != "cat" {
		t.Errorf("tie should pick smallest form, got %q", got.String())
	}

	s.Record(stem, domain.NewTerm("cats"))
	got, _ = s.Surface(stem)
	if got.String() != "cats" {
		t.Errorf("expected most frequent form, got %q", got.String())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
