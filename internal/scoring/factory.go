package scoring

import (
	"fmt"
	"strings"

	"termex/internal/domain"
	"termex/internal/index"
	"termex/internal/port"
)

// Options selects and parameterises a strategy.
type Options struct {
	Method      Method
	Aggregation Aggregation
	Blend       bool // fuse with C-value
	OkapiK      float64
	OkapiB      float64
}

// New returns the scorer for opts. reference may be nil unless
// opts.Method.NeedsReference().
func New(opts Options, reference *index.Index) (port.Scorer, error) {
	if opts.Method != CValue && opts.Aggregation == 0 {
		return nil, fmt.Errorf("%w: aggregation not set", domain.ErrConfigMismatch)
	}

	var (
		s   port.Scorer
		err error
	)
	switch opts.Method {
	case Frequency:
		s = NewFrequencyScorer(opts.Aggregation)
	case TFIDFStandard, TFIDFLog:
		s, err = NewTFIDFScorer(opts.Method, opts.Aggregation, reference)
	case Okapi:
		s, err = NewOkapiScorer(opts.Aggregation, reference, opts.OkapiK, opts.OkapiB)
	case CValue:
		if opts.Blend {
			return nil, fmt.Errorf("%w: C-value cannot be blended with itself", domain.ErrConfigMismatch)
		}
		s = NewCValueScorer()
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMethod, opts.Method)
	}
	if err != nil {
		return nil, err
	}

	if opts.Blend {
		s = NewBlendedScorer(s)
	}
	return s, nil
}

// ParseOptions builds Options from configuration strings. An empty
// aggregation is only valid for CVALUE, which does not aggregate.
func ParseOptions(method, aggregation string, blend bool, k, b float64) (Options, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return Options{}, err
	}

	opts := Options{Method: m, Blend: blend, OkapiK: k, OkapiB: b}
	if strings.TrimSpace(aggregation) == "" {
		if m != CValue {
			return Options{}, fmt.Errorf("%w: %s needs an aggregation formula", domain.ErrConfigMismatch, m)
		}
		return opts, nil
	}

	if opts.Aggregation, err = ParseAggregation(aggregation); err != nil {
		return Options{}, err
	}
	return opts, nil
}
