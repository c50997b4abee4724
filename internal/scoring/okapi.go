package scoring

import (
	"fmt"

	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

const (
	DefaultOkapiK = 2.0
	DefaultOkapiB = 0.75
)

var _ port.Scorer = (*OkapiScorer)(nil)

// OkapiScorer applies BM25-style length-normalised term frequency weighted by
// the signed Okapi IDF of a reference index.
type OkapiScorer struct {
	k, b        float64
	reference   *index.Index
	aggregation Aggregation
}

func NewOkapiScorer(a Aggregation, reference *index.Index, k, b float64) (*OkapiScorer, error) {
	if reference == nil {
		return nil, fmt.Errorf("okapi: %w", domain.ErrMissingReference)
	}
	return &OkapiScorer{k: k, b: b, reference: reference, aggregation: a}, nil
}

func (s *OkapiScorer) Score(ix *index.Index) (domain.Scores, error) {
	avgdl := s.reference.MeanWordCount()

	perDoc := make(map[int]domain.Scores, len(ix.Forward()))
	for doc, counts := range ix.Forward() {
		dl, err := ix.WordCount(doc)
		if err != nil {
			return nil, fmt.Errorf("okapi: %w", err)
		}
		ratio := 1.0
		if avgdl > 0 {
			ratio = float64(dl) / avgdl
		}
		scores := make(domain.Scores, len(counts))
		for term, freq := range counts {
			tf := float64(freq)
			okapiTF := tf * (s.k + 1) / (tf + s.k*(1-s.b+s.b*ratio))
			scores[term] = s.reference.IDFOkapi(term) * okapiTF
		}
		perDoc[doc] = scores
	}
	return normalizeAndAggregate(perDoc, s.aggregation, ix.Size()), nil
}
