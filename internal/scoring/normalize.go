package scoring

import "termex/internal/domain"

// NormalizeDocument rescales one document's scores into [0,1] in place with
// min-max normalisation. When every score is equal, every score becomes 1.
func NormalizeDocument(scores domain.Scores) {
	minMax(scores)
}

// NormalizeCorpus rescales a corpus-level mapping in place. It applies the
// same equal-scores policy as NormalizeDocument.
func NormalizeCorpus(scores domain.Scores) {
	minMax(scores)
}

func minMax(scores domain.Scores) {
	if len(scores) == 0 {
		return
	}
	first := true
	var lo, hi float64
	for _, s := range scores {
		if first {
			lo, hi = s, s
			first = false
			continue
		}
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if hi == lo {
		for t := range scores {
			scores[t] = 1
		}
		return
	}
	span := hi - lo
	for t, s := range scores {
		scores[t] = (s - lo) / span
	}
}

// NormalizeIndex normalises every document of a per-document score index.
func NormalizeIndex(perDoc map[int]domain.Scores) {
	for _, scores := range perDoc {
		NormalizeDocument(scores)
	}
}

// Transpose turns document -> (term -> score) into term -> (document -> score).
func Transpose(perDoc map[int]domain.Scores) map[domain.Term]map[int]float64 {
	inverted := make(map[domain.Term]map[int]float64)
	for doc, scores := range perDoc {
		for term, s := range scores {
			postings, ok := inverted[term]
			if !ok {
				postings = make(map[int]float64)
				inverted[term] = postings
			}
			postings[doc] = s
		}
	}
	return inverted
}
