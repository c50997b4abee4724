package parser

import (
	"fmt"

	"termex/internal/adapter/analyzer"
	"termex/internal/adapter/fs"
	"termex/internal/domain"
)

// DirParser turns every matching file under a directory into one document,
// in path order. The relative path is used as the title.
type DirParser struct {
	walker    *fs.Walker
	tokenizer *analyzer.Tokenizer
}

func NewDirParser(includes, excludes []string) *DirParser {
	return &DirParser{
		walker:    fs.NewWalker(includes, excludes),
		tokenizer: analyzer.NewTokenizer(),
	}
}

func (p *DirParser) Parse(path string) (*domain.Corpus, error) {
	files, err := p.walker.Walk(path)
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}

	raw := make([]rawDocument, 0, len(files))
	for _, f := range files {
		text, err := fs.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.RelPath, err)
		}
		raw = append(raw, rawDocument{title: f.RelPath, text: text})
	}
	return build(p.tokenizer, raw)
}
