package artscr

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/article"
)

// Parser is the interface for article extraction from HTML. Implement
// this to substitute a mock in tests that exercise callers of this
// package.
type Parser interface {
	// Parse extracts an Article from htmlFragment, failing with
	// ErrArticleNotFound when nothing qualifies.
	Parse(htmlFragment, documentURI string, opts ...Option) (*Article, error)

	// TryParse is Parse without the error: ok is false when nothing
	// qualifies.
	TryParse(htmlFragment, documentURI string, opts ...Option) (*Article, bool)
}

// DefaultParser implements Parser by handing parsed HTML to pkg/article.
type DefaultParser struct{}

var _ Parser = DefaultParser{}

func (DefaultParser) Parse(htmlFragment, documentURI string, opts ...Option) (*Article, error) {
	return Parse(htmlFragment, documentURI, opts...)
}

func (DefaultParser) TryParse(htmlFragment, documentURI string, opts ...Option) (*Article, bool) {
	return TryParse(htmlFragment, documentURI, opts...)
}

// Parse parses htmlFragment and extracts its article content.
func Parse(htmlFragment, documentURI string, opts ...Option) (*Article, error) {
	doc, err := parseDocument(htmlFragment)
	if err != nil {
		return nil, &ExtractError{DocumentURL: documentURI, Err: err}
	}
	return article.Parse(doc, documentURI, opts...)
}

// TryParse parses htmlFragment and extracts its article content, reporting
// ok=false instead of failing when nothing qualifies or htmlFragment
// doesn't parse.
func TryParse(htmlFragment, documentURI string, opts ...Option) (*Article, bool) {
	doc, err := parseDocument(htmlFragment)
	if err != nil {
		return nil, false
	}
	return article.TryParse(doc, documentURI, opts...)
}

func parseDocument(htmlFragment string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(htmlFragment))
}
