// Package parser reads corpora from disk into domain documents.
package parser

import (
	"fmt"
	"os"
	"strings"

	"termex/internal/adapter/analyzer"
	"termex/internal/domain"
	"termex/internal/port"
)

// Formats accepted by New.
const (
	FormatSplit   = "split"
	FormatArticle = "article"
	FormatDir     = "dir"
	FormatAuto    = "auto"
)

// Options configure directory parsing.
type Options struct {
	Includes []string
	Excludes []string
}

// New returns the parser for format.
func New(format string, opts Options) (port.CorpusParser, error) {
	switch strings.ToLower(format) {
	case FormatSplit:
		return NewSplitParser(), nil
	case FormatArticle:
		return NewArticleParser(), nil
	case FormatDir:
		return NewDirParser(opts.Includes, opts.Excludes), nil
	case FormatAuto, "":
		return &autoParser{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown corpus format %q", format)
	}
}

type autoParser struct {
	opts Options
}

func (p *autoParser) Parse(path string) (*domain.Corpus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	if info.IsDir() {
		return NewDirParser(p.opts.Includes, p.opts.Excludes).Parse(path)
	}
	return NewSplitParser().Parse(path)
}

type rawDocument struct {
	title string
	text  string
}

// build assigns sequential ids from 0 and counts words.
func build(tokenizer *analyzer.Tokenizer, raw []rawDocument) (*domain.Corpus, error) {
	corpus := domain.NewCorpus()
	for i, r := range raw {
		doc := domain.NewDocument(i, r.text, tokenizer.CountWords(r.text))
		doc.Title = r.title
		if err := corpus.Add(doc); err != nil {
			return nil, err
		}
	}
	return corpus, nil
}
