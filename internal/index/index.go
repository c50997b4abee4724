// Package index builds forward and inverted term statistics over an
// extracted corpus and exposes document frequency and IDF lookups.
package index

import (
	"fmt"
	"math"

	"termex/internal/domain"
)

// Index is a read-only view over an extracted corpus.
type Index struct {
	corpus    *domain.Corpus
	forward   map[int]map[domain.Term]int
	inverted  map[domain.Term]map[int]int
	size      int
	meanWords float64
}

// New indexes an extracted corpus. It fails with domain.ErrNotExtracted if any
// document has not been through extraction.
func New(corpus *domain.Corpus) (*Index, error) {
	forward := make(map[int]map[domain.Term]int, corpus.Size())
	for _, doc := range corpus.Documents() {
		counts, err := countTerms(doc)
		if err != nil {
			return nil, err
		}
		forward[doc.ID] = counts
	}
	return fromForward(corpus, forward), nil
}

func fromForward(corpus *domain.Corpus, forward map[int]map[domain.Term]int) *Index {
	return &Index{
		corpus:    corpus,
		forward:   forward,
		inverted:  invert(forward),
		size:      corpus.Size(),
		meanWords: corpus.MeanWordCount(),
	}
}

// countTerms builds one document's term -> frequency map.
func countTerms(doc *domain.Document) (map[domain.Term]int, error) {
	terms, err := doc.Terms()
	if err != nil {
		return nil, fmt.Errorf("indexing: %w", err)
	}
	counts := make(map[domain.Term]int)
	for _, t := range terms {
		counts[t]++
	}
	return counts, nil
}

func invert(forward map[int]map[domain.Term]int) map[domain.Term]map[int]int {
	inverted := make(map[domain.Term]map[int]int)
	for docID, counts := range forward {
		for term, freq := range counts {
			postings, ok := inverted[term]
			if !ok {
				postings = make(map[int]int)
				inverted[term] = postings
			}
			postings[docID] = freq
		}
	}
	return inverted
}

// Forward returns document id -> (term -> frequency). Callers must not mutate it.
func (ix *Index) Forward() map[int]map[domain.Term]int {
	return ix.forward
}

// Inverted returns term -> (document id -> frequency). Callers must not mutate it.
func (ix *Index) Inverted() map[domain.Term]map[int]int {
	return ix.inverted
}

// Corpus returns the indexed corpus, or nil for an index loaded from a snapshot.
func (ix *Index) Corpus() *domain.Corpus {
	return ix.corpus
}

// Size returns the number of documents N.
func (ix *Index) Size() int {
	return ix.size
}

// MeanWordCount returns the mean document word count of the indexed corpus.
func (ix *Index) MeanWordCount() float64 {
	return ix.meanWords
}

// Terms returns the number of distinct terms.
func (ix *Index) Terms() int {
	return len(ix.inverted)
}

// WordCount returns the word count of an indexed document.
func (ix *Index) WordCount(docID int) (int, error) {
	if ix.corpus == nil {
		return 0, fmt.Errorf("%w: %d (index has no corpus)", domain.ErrDocumentNotFound, docID)
	}
	doc, err := ix.corpus.Get(docID)
	if err != nil {
		return 0, err
	}
	return doc.WordCount, nil
}

// DocumentFrequency returns the number of documents containing the term.
func (ix *Index) DocumentFrequency(t domain.Term) int {
	return len(ix.inverted[t])
}

// IDF returns ln((1+N)/(1+df)).
func (ix *Index) IDF(t domain.Term) float64 {
	n := float64(ix.DocumentFrequency(t))
	return math.Log((1 + float64(ix.size)) / (1 + n))
}

// IDFOkapi returns ln((N-n+0.5)/(n+0.5)). It is negative for terms present in
// more than half of the documents.
func (ix *Index) IDFOkapi(t domain.Term) float64 {
	n := float64(ix.DocumentFrequency(t))
	return math.Log((float64(ix.size) - n + 0.5) / (n + 0.5))
}
