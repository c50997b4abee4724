package scoring

import (
	"fmt"
	"math"

	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

var _ port.Scorer = (*TFIDFScorer)(nil)

// TFIDFScorer weights term frequencies by the IDF of a reference index.
//
//	standard: tf * idf
//	log:      (1 + ln tf) * idf
type TFIDFScorer struct {
	weight      func(tf, idf float64) float64
	reference   *index.Index
	aggregation Aggregation
}

// NewTFIDFScorer accepts only TFIDFStandard and TFIDFLog.
func NewTFIDFScorer(m Method, a Aggregation, reference *index.Index) (*TFIDFScorer, error) {
	var weight func(tf, idf float64) float64
	switch m {
	case TFIDFStandard:
		weight = func(tf, idf float64) float64 { return tf * idf }
	case TFIDFLog:
		weight = func(tf, idf float64) float64 { return (1 + math.Log(tf)) * idf }
	default:
		return nil, fmt.Errorf("%w: %s is not a tf-idf method", domain.ErrConfigMismatch, m)
	}
	if reference == nil {
		return nil, fmt.Errorf("tf-idf: %w", domain.ErrMissingReference)
	}
	return &TFIDFScorer{weight: weight, reference: reference, aggregation: a}, nil
}

func (s *TFIDFScorer) Score(ix *index.Index) (domain.Scores, error) {
	perDoc := make(map[int]domain.Scores, len(ix.Forward()))
	for doc, counts := range ix.Forward() {
		scores := make(domain.Scores, len(counts))
		for term, tf := range counts {
			scores[term] = s.weight(float64(tf), s.reference.IDF(term))
		}
		perDoc[doc] = scores
	}
	return normalizeAndAggregate(perDoc, s.aggregation, ix.Size()), nil
}

// normalizeAndAggregate is the pipeline shared by the weighted strategies:
// per-document normalisation, transposition, aggregation and a final
// corpus-level normalisation.
func normalizeAndAggregate(perDoc map[int]domain.Scores, a Aggregation, docs int) domain.Scores {
	NormalizeIndex(perDoc)
	scores := Aggregate(Transpose(perDoc), a, docs)
	NormalizeCorpus(scores)
	return scores
}
