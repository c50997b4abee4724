package domain

import (
	"errors"
	"testing"
)

func TestTerm_Structure(t *testing.T) {
	a := NewTerm("machine", "learning")
	b := ParseTerm("machine  learning")

	if a != b {
		t.Errorf("expected structural equality, got %q vs %q", a, b)
	}
	if a.Len() != 2 {
		t.Errorf("expected Len=2, got %d", a.Len())
	}
	if a.String() != "machine learning" {
		t.Errorf("expected %q, got %q", "machine learning", a.String())
	}
	if NewTerm("learning", "machine") == a {
		t.Error("word order must matter")
	}
	if got := NewTerm("deep", "machine", "learning").Sub(1, 3); got != a {
		t.Errorf("expected sub-term %q, got %q", a, got)
	}

	words := a.Words()
	words[0] = "changed"
	if a.Words()[0] != "machine" {
		t.Error("Words must return a copy")
	}
	if Term("").Len() != 0 {
		t.Error("empty term must have zero length")
	}
}

func TestDocument_ExtractOnce(t *testing.T) {
	doc := NewDocument(1, "text", 1)

	if _, err := doc.Terms(); !errors.Is(err, ErrNotExtracted) || !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected ErrNotExtracted, got %v", err)
	}
	if err := doc.SetTerms([]Term{NewTerm("text")}); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetTerms(nil); !errors.Is(err, ErrAlreadyExtracted) {
		t.Errorf("expected ErrAlreadyExtracted, got %v", err)
	}

	terms, err := doc.Terms()
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 1 {
		t.Errorf("expected 1 term, got %d", len(terms))
	}
}

func TestCorpus_MeanWordCountInvalidation(t *testing.T) {
	c := NewCorpus()
	if c.MeanWordCount() != 0 {
		t.Errorf("expected 0 for empty corpus, got %f", c.MeanWordCount())
	}

	c.Add(NewDocument(0, "", 10))
	c.Add(NewDocument(1, "", 20))
	if got := c.MeanWordCount(); got != 15 {
		t.Errorf("expected 15, got %f", got)
	}

	c.Add(NewDocument(2, "", 60))
	if got := c.MeanWordCount(); got != 30 {
		t.Errorf("expected 30 after insertion, got %f", got)
	}
}

func TestCorpus_Errors(t *testing.T) {
	c := NewCorpus()
	if err := c.Add(NewDocument(7, "", 1)); err != nil {
		t.Fatal(err)
	}
	if err := c.Add(NewDocument(7, "", 1)); !errors.Is(err, ErrDuplicateDocument) {
		t.Errorf("expected ErrDuplicateDocument, got %v", err)
	}
	if _, err := c.Get(8); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("expected lookup miss, got %v", err)
	}
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}
}

type fixedExtractor struct{}

func (fixedExtractor) Extract(text string) []Term {
	return []Term{ParseTerm(text)}
}

func TestCorpus_Extract(t *testing.T) {
	c := NewCorpus()
	c.Add(NewDocument(2, "b c", 2))
	c.Add(NewDocument(1, "a", 1))

	if err := c.Extract(fixedExtractor{}); err != nil {
		t.Fatal(err)
	}

	docs := c.Documents()
	if docs[0].ID != 1 || docs[1].ID != 2 {
		t.Errorf("expected ascending ids, got %d, %d", docs[0].ID, docs[1].ID)
	}
	terms, _ := docs[1].Terms()
	if terms[0] != NewTerm("b", "c") {
		t.Errorf("unexpected term %q", terms[0])
	}
	if err := c.Extract(fixedExtractor{}); !errors.Is(err, ErrAlreadyExtracted) {
		t.Errorf("expected second extraction to fail, got %v", err)
	}
}
