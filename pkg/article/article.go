// Package article implements §6.1's library API and the §4.8 attempt-loop
// orchestration that ties the scorer, the ReadabilityJS-compatible retry
// loop, presentation prep, post-process, and metadata harvest together.
package article

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Article is the returned article record of §6.1, plus a PlainText field
// supplementing the core fields with a Markdown-flattened rendering.
type Article struct {
	Title       string
	Byline      string
	Excerpt     string
	Content     *goquery.Selection
	ContentHTML string
	Length      int
	SiteName    string
	Language    string
	Direction   string
	Published   *time.Time
	PlainText   string
}

// IsEmpty reports whether the article carries no usable content.
func (a *Article) IsEmpty() bool {
	return a == nil || (a.Title == "" && a.ContentHTML == "")
}
