package analyzer

import (
	"fmt"
	"sync"

	"termex/internal/domain"
)

// SurfaceForms records, for each stemmed term, how often each surface form
// produced it, so rankings can show readable words.
type SurfaceForms struct {
	mu    sync.RWMutex
	forms map[domain.Term]map[domain.Term]int
}

func NewSurfaceForms() *SurfaceForms {
	return &SurfaceForms{forms: make(map[domain.Term]map[domain.Term]int)}
}

// Record counts one occurrence of surface for stem.
func (s *SurfaceForms) Record(stem, surface domain.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts, ok := s.forms[stem]
	if !ok {
		counts = make(map[domain.Term]int)
		s.forms[stem] = counts
	}
	counts[surface]++
}

// Surface returns the most frequent surface form of stem. Ties go to the
// alphabetically smallest form.
func (s *SurfaceForms) Surface(stem domain.Term) (domain.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts, ok := s.forms[stem]
	if !ok || len(counts) == 0 {
		return "", fmt.Errorf("%w: %q", domain.ErrSurfaceNotFound, stem.String())
	}
	var best domain.Term
	bestCount := 0
	for form, n := range counts {
		if n > bestCount || (n == bestCount && form.String() < best.String()) {
			best, bestCount = form, n
		}
	}
	return best, nil
}

// Len returns the number of recorded stems.
func (s *SurfaceForms) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}
