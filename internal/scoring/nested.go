package scoring

import "termex/internal/domain"

// NestedTerms maps every term to the set of strictly longer terms of the set
// that contain it as a contiguous word sub-sequence. Every input term is a key.
func NestedTerms(terms map[domain.Term]struct{}) map[domain.Term]map[domain.Term]struct{} {
	nested := make(map[domain.Term]map[domain.Term]struct{}, len(terms))
	for t := range terms {
		if _, ok := nested[t]; !ok {
			nested[t] = make(map[domain.Term]struct{})
		}
		words := t.Words()
		for size := 1; size < len(words); size++ {
			for i := 0; i+size <= len(words); i++ {
				sub := domain.NewTerm(words[i : i+size]...)
				if _, ok := terms[sub]; !ok {
					continue
				}
				containers, ok := nested[sub]
				if !ok {
					containers = make(map[domain.Term]struct{})
					nested[sub] = containers
				}
				containers[t] = struct{}{}
			}
		}
	}
	return nested
}
