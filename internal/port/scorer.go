package port

import (
	"termex/internal/domain"
	"termex/internal/index"
)

// Scorer assigns a score to every term of an index. Implementations never
// mutate the index and return a fresh mapping on every call.
type Scorer interface {
	Score(ix *index.Index) (domain.Scores, error)
}
