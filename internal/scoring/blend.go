package scoring

import (
	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

// Blend is the harmonic mean 2ab/(a+b), defined as 0 when a+b is 0.
func Blend(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}

// BlendScores blends every base score with the term's C-value and
// renormalises the result at corpus level.
func BlendScores(base, cvalue domain.Scores) domain.Scores {
	out := make(domain.Scores, len(base))
	for term, s := range base {
		out[term] = Blend(s, cvalue[term])
	}
	NormalizeCorpus(out)
	return out
}

var _ port.Scorer = (*BlendedScorer)(nil)

// BlendedScorer fuses any base strategy with a freshly computed C-value.
type BlendedScorer struct {
	base   port.Scorer
	cvalue *CValueScorer
}

func NewBlendedScorer(base port.Scorer) *BlendedScorer {
	return &BlendedScorer{base: base, cvalue: NewCValueScorer()}
}

func (s *BlendedScorer) Score(ix *index.Index) (domain.Scores, error) {
	base, err := s.base.Score(ix)
	if err != nil {
		return nil, err
	}
	// frequency scores come on the count scale
	NormalizeCorpus(base)

	cvalue, err := s.cvalue.Score(ix)
	if err != nil {
		return nil, err
	}
	return BlendScores(base, cvalue), nil
}
