package article

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/prep"
	"github.com/artscr/artscr/pkg/retry"
)

// Strategy is one way of electing a content subtree from <body>. The
// primary element-based scorer and the ReadabilityJS-compatible retry
// algorithm are both Strategies; spec.md §9 leaves "offer both as
// configurable strategies" as an open question, resolved by always
// running primaryStrategy first and falling through to retryStrategy
// only when FallbackOnThinContent allows it (see selectContent).
type Strategy interface {
	// elect scores body and returns its pick, the pick's text length, and
	// whether anything qualified at all.
	elect(body *goquery.Selection, cfg Config) (*goquery.Selection, int, bool)
}

type primaryStrategy struct{}

func (primaryStrategy) elect(body *goquery.Selection, cfg Config) (*goquery.Selection, int, bool) {
	return runPrimary(body, cfg)
}

type retryStrategy struct{}

func (retryStrategy) elect(body *goquery.Selection, cfg Config) (*goquery.Selection, int, bool) {
	prepFn := retry.PrepFunc(func(content *goquery.Selection, cleanConditionally bool) *goquery.Selection {
		return prep.Clean(content, cleanConditionally)
	})
	attempt, ok := retry.Run(body, cfg.CharThreshold, cfg.NTopCandidates, prepFn)
	if !ok {
		return nil, 0, false
	}
	return attempt.Content, attempt.TextLength, true
}
