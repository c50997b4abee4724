package domain

import "fmt"

// Document is one unit of the corpus.
type Document struct {
	ID        int
	Title     string
	Text      string
	WordCount int

	terms     []Term
	extracted bool
}

// NewDocument creates a document that has not been extracted yet.
func NewDocument(id int, text string, wordCount int) *Document {
	return &Document{ID: id, Text: text, WordCount: wordCount}
}

// SetTerms records the extracted term sequence. It may be called once.
func (d *Document) SetTerms(terms []Term) error {
	if d.extracted {
		return fmt.Errorf("document %d: %w", d.ID, ErrAlreadyExtracted)
	}
	d.terms = terms
	d.extracted = true
	return nil
}

// Terms returns the extracted term sequence, repeats included.
func (d *Document) Terms() ([]Term, error) {
	if !d.extracted {
		return nil, fmt.Errorf("document %d: %w", d.ID, ErrNotExtracted)
	}
	return d.terms, nil
}

// Extracted reports whether SetTerms has run.
func (d *Document) Extracted() bool {
	return d.extracted
}
