// Package report writes ranked term lists.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"termex/internal/domain"
	"termex/internal/port"
)

var (
	_ port.ReportWriter = (*CSVWriter)(nil)
	_ port.ReportWriter = (*JSONWriter)(nil)
)

// New returns the writer for format ("csv" or "json").
func New(format string) (port.ReportWriter, error) {
	switch strings.ToLower(format) {
	case "csv", "":
		return NewCSVWriter(), nil
	case "json":
		return NewJSONWriter(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// CSVWriter writes a semicolon-delimited Rank;Term;Score table. Ranks start
// at 1.
type CSVWriter struct {
	Precision int
}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{Precision: 6}
}

func (w *CSVWriter) Write(out io.Writer, ranked []domain.ScoredTerm) error {
	cw := csv.NewWriter(out)
	cw.Comma = ';'

	if err := cw.Write([]string{"Rank", "Term", "Score"}); err != nil {
		return err
	}
	for i, st := range ranked {
		record := []string{
			strconv.Itoa(i + 1),
			st.Term.String(),
			strconv.FormatFloat(st.Score, 'f', w.Precision, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSONWriter writes the ranking as an indented JSON array.
type JSONWriter struct{}

func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

type jsonEntry struct {
	Rank  int     `json:"rank"`
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

func (w *JSONWriter) Write(out io.Writer, ranked []domain.ScoredTerm) error {
	entries := make([]jsonEntry, len(ranked))
	for i, st := range ranked {
		entries[i] = jsonEntry{Rank: i + 1, Term: st.Term.String(), Score: st.Score}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
