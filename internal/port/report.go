package port

import (
	"io"

	"termex/internal/domain"
)

// ReportWriter writes a ranking.
type ReportWriter interface {
	Write(w io.Writer, ranked []domain.ScoredTerm) error
}
