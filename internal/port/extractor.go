package port

import "termex/internal/domain"

// Extractor turns raw document text into its ordered term sequence.
type Extractor interface {
	domain.Extractor

	// Display maps ranked (possibly stemmed) terms back to readable terms.
	Display(ranked []domain.ScoredTerm) []domain.ScoredTerm
}
