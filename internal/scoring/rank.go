package scoring

import (
	"sort"

	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

// Rank orders scores by descending score. Equal scores keep the alphabetical
// order of their space-joined words: an alphabetical stable pass runs first,
// then a stable pass on score.
func Rank(scores domain.Scores) []domain.ScoredTerm {
	ranked := make([]domain.ScoredTerm, 0, len(scores))
	for term, s := range scores {
		ranked = append(ranked, domain.ScoredTerm{Term: term, Score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Term.String() < ranked[j].Term.String()
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// ScoreAndRank runs a scorer over an index and ranks the result.
func ScoreAndRank(s port.Scorer, ix *index.Index) ([]domain.ScoredTerm, error) {
	scores, err := s.Score(ix)
	if err != nil {
		return nil, err
	}
	return Rank(scores), nil
}
