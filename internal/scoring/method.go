// Package scoring turns an index into ranked term scores. Strategies share
// the port.Scorer contract and are selected by Method.
package scoring

import (
	"fmt"
	"strings"

	"termex/internal/domain"
)

// Method selects a scoring strategy.
type Method int

const (
	Frequency Method = iota + 1
	TFIDFStandard
	TFIDFLog
	Okapi
	CValue
)

var methodNames = map[Method]string{
	Frequency:     "FREQUENCE",
	TFIDFStandard: "TFIDF_STANDARD",
	TFIDFLog:      "TFIDF_LOG",
	Okapi:         "OKAPI",
	CValue:        "CVALUE",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// NeedsReference reports whether the method reads document statistics from a
// reference index.
func (m Method) NeedsReference() bool {
	return m == TFIDFStandard || m == TFIDFLog || m == Okapi
}

// ParseMethod parses a method name, case-insensitively. FREQUENCY is accepted
// as an alias of FREQUENCE.
func ParseMethod(s string) (Method, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "FREQUENCY" {
		return Frequency, nil
	}
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, s)
}
