package scoring

import (
	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

var _ port.Scorer = (*FrequencyScorer)(nil)

// FrequencyScorer scores a term by aggregating its raw per-document
// frequencies. Scores are left on the count scale.
type FrequencyScorer struct {
	aggregation Aggregation
}

func NewFrequencyScorer(a Aggregation) *FrequencyScorer {
	return &FrequencyScorer{aggregation: a}
}

func (s *FrequencyScorer) Score(ix *index.Index) (domain.Scores, error) {
	inverted := make(map[domain.Term]map[int]float64, ix.Terms())
	for term, postings := range ix.Inverted() {
		perDoc := make(map[int]float64, len(postings))
		for doc, freq := range postings {
			perDoc[doc] = float64(freq)
		}
		inverted[term] = perDoc
	}
	return Aggregate(inverted, s.aggregation, ix.Size()), nil
}
