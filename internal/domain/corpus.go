package domain

import (
	"fmt"
	"sort"
)

// Extractor turns document text into its ordered term sequence.
type Extractor interface {
	Extract(text string) []Term
}

// Corpus is a collection of documents keyed by id. It is not safe for
// concurrent writers.
type Corpus struct {
	docs map[int]*Document

	meanWords float64
	meanValid bool
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{docs: make(map[int]*Document)}
}

// Add inserts a document and invalidates the mean word count.
func (c *Corpus) Add(doc *Document) error {
	if _, exists := c.docs[doc.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateDocument, doc.ID)
	}
	c.docs[doc.ID] = doc
	c.meanValid = false
	return nil
}

// Get returns the document with the given id.
func (c *Corpus) Get(id int) (*Document, error) {
	doc, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrDocumentNotFound, id)
	}
	return doc, nil
}

// Size returns the number of documents.
func (c *Corpus) Size() int {
	return len(c.docs)
}

// MeanWordCount returns the mean word count, recomputed lazily after Add.
func (c *Corpus) MeanWordCount() float64 {
	if !c.meanValid {
		c.meanWords = 0
		if len(c.docs) > 0 {
			total := 0
			for _, d := range c.docs {
				total += d.WordCount
			}
			c.meanWords = float64(total) / float64(len(c.docs))
		}
		c.meanValid = true
	}
	return c.meanWords
}

// Documents returns the documents in ascending id order.
func (c *Corpus) Documents() []*Document {
	docs := make([]*Document, 0, len(c.docs))
	for _, d := range c.docs {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// Extract runs the extractor over every document.
func (c *Corpus) Extract(ex Extractor) error {
	for _, d := range c.Documents() {
		if err := d.SetTerms(ex.Extract(d.Text)); err != nil {
			return err
		}
	}
	return nil
}
