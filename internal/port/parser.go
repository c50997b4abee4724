package port

import "termex/internal/domain"

// CorpusParser reads a corpus from a file or directory.
type CorpusParser interface {
	Parse(path string) (*domain.Corpus, error)
}
