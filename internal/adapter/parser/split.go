package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"termex/internal/adapter/analyzer"
	"termex/internal/domain"
)

// EndMarker is the line that separates documents in a split corpus.
const EndMarker = "##END##"

var endMarkerRe = regexp.MustCompile(`(?m)^` + EndMarker + `\r?$`)

// SplitParser reads a text file whose documents are separated by a line
// holding only EndMarker. A file without a marker is a single document.
type SplitParser struct {
	tokenizer *analyzer.Tokenizer
}

func NewSplitParser() *SplitParser {
	return &SplitParser{tokenizer: analyzer.NewTokenizer()}
}

func (p *SplitParser) Parse(path string) (*domain.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return build(p.tokenizer, splitDocuments(string(data)))
}

// splitDocuments drops blank segments, such as the one after a trailing marker.
func splitDocuments(text string) []rawDocument {
	var docs []rawDocument
	for _, part := range endMarkerRe.Split(text, -1) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		docs = append(docs, rawDocument{text: part})
	}
	return docs
}
