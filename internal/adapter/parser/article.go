package parser

import (
	"fmt"
	"html"
	"os"
	"regexp"

	"termex/internal/adapter/analyzer"
	"termex/internal/domain"
)

var articleRe = regexp.MustCompile(`(?s)<article title="(.*?)">\n(.*?)</article>`)

// ArticleParser reads `<article title="...">` blocks, the format of the
// reference corpus dump.
type ArticleParser struct {
	tokenizer *analyzer.Tokenizer
}

func NewArticleParser() *ArticleParser {
	return &ArticleParser{tokenizer: analyzer.NewTokenizer()}
}

func (p *ArticleParser) Parse(path string) (*domain.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return build(p.tokenizer, parseArticles(string(data)))
}

func parseArticles(text string) []rawDocument {
	matches := articleRe.FindAllStringSubmatch(text, -1)
	docs := make([]rawDocument, 0, len(matches))
	for _, m := range matches {
		docs = append(docs, rawDocument{title: html.UnescapeString(m[1]), text: m[2]})
	}
	return docs
}
