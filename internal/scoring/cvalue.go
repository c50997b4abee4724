package scoring

import (
	"math"

	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

var _ port.Scorer = (*CValueScorer)(nil)

// CValueScorer penalises terms that occur nested in longer terms. It works on
// corpus-wide total frequencies, so the aggregation setting has no effect.
type CValueScorer struct{}

func NewCValueScorer() *CValueScorer {
	return &CValueScorer{}
}

func (s *CValueScorer) Score(ix *index.Index) (domain.Scores, error) {
	scores := RawCValue(ix)
	NormalizeCorpus(scores)
	return scores, nil
}

// RawCValue returns un-normalised C-values:
//
//	no containers: f(t) * log2(|t|+1)
//	containers C:  (f(t) - sum_{s in C} f(s) / |C|) * log2(|t|+1)
func RawCValue(ix *index.Index) domain.Scores {
	totals := make(map[domain.Term]float64, ix.Terms())
	set := make(map[domain.Term]struct{}, ix.Terms())
	for term, postings := range ix.Inverted() {
		total := 0
		for _, freq := range postings {
			total += freq
		}
		totals[term] = float64(total)
		set[term] = struct{}{}
	}

	scores := make(domain.Scores, len(totals))
	for term, containers := range NestedTerms(set) {
		score := totals[term]
		if len(containers) > 0 {
			nested := 0.0
			for c := range containers {
				nested += totals[c]
			}
			score -= nested / float64(len(containers))
		}
		// +1 keeps single words from a zero multiplier
		scores[term] = score * math.Log2(float64(term.Len())+1)
	}
	return scores
}
