package scoring

import (
	"fmt"
	"sort"
	"strings"

	"termex/internal/domain"
)

// Aggregation reduces a term's per-document values to one corpus value.
type Aggregation int

const (
	Max Aggregation = iota + 1
	Sum
	Mean
)

func (a Aggregation) String() string {
	switch a {
	case Max:
		return "MAX"
	case Sum:
		return "SUM"
	case Mean:
		return "MEAN"
	}
	return fmt.Sprintf("Aggregation(%d)", int(a))
}

// ParseAggregation parses MAX, SUM or MEAN, case-insensitively.
func ParseAggregation(s string) (Aggregation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MAX":
		return Max, nil
	case "SUM":
		return Sum, nil
	case "MEAN":
		return Mean, nil
	}
	return 0, fmt.Errorf("%w: unknown aggregation %q", domain.ErrConfigMismatch, s)
}

// Reduce folds the values of the documents containing a term. For Mean the
// values are zero-padded up to docs entries before averaging.
func (a Aggregation) Reduce(values []float64, docs int) float64 {
	switch a {
	case Max:
		if len(values) == 0 {
			return 0
		}
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return m
	case Sum:
		return sum(values)
	case Mean:
		n := docs
		if n < len(values) {
			n = len(values)
		}
		if n == 0 {
			return 0
		}
		// zero padding adds nothing to the sum, only to the divisor
		return sum(values) / float64(n)
	}
	return 0
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Aggregate reduces an inverted score index term by term. docs is the total
// number of documents of the scored corpus. Values are folded in ascending
// document id order so float sums are identical across calls.
func Aggregate(inverted map[domain.Term]map[int]float64, a Aggregation, docs int) domain.Scores {
	out := make(domain.Scores, len(inverted))
	var ids []int
	for term, perDoc := range inverted {
		ids = ids[:0]
		for id := range perDoc {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		values := make([]float64, len(ids))
		for i, id := range ids {
			values[i] = perDoc[id]
		}
		out[term] = a.Reduce(values, docs)
	}
	return out
}
