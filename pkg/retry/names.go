// ABOUTME: ReadabilityJS-compatible fallback content selector (§4.3): the
// ABOUTME: flag-driven strip/score/select/merge pipeline used when the
// ABOUTME: primary element-based scorer yields too little text.
package retry

import (
	"regexp"
	"strings"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// unlikelyCandidateRE and maybeCandidateRE are grounded on
// antchfx-goreadly/readability.go's unlikelyCandidatesRegexp /
// okMaybeItsACandidateRegexp, extended with the additional tokens spec.md
// §4.1's negative/positive name lists already establish for this codebase
// (ad-break/agegate/pagination/pager/popup kept from the original, "banner"
// and "sidebar" already present upstream).
var (
	unlikelyCandidateRE = regexp.MustCompile(`(?i)combx|comment|community|hidden|disqus|modal|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|banner|masthead`)
	maybeCandidateRE    = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)
)

// bylineNames are the class/id substrings §4.6's byline predicate matches.
var bylineNames = []string{"byline", "author", "dateline", "writtenby", "p-author"}

func isUnlikelyCandidate(sel *selection) bool {
	classAndID := htmlnode.ClassAndID(sel)
	if classAndID == "" {
		return false
	}
	return unlikelyCandidateRE.MatchString(classAndID) && !maybeCandidateRE.MatchString(classAndID)
}

func isByline(sel *selection) bool {
	if v, ok := htmlnode.AttrFold(sel, "rel"); ok && v == "author" {
		return textLenOK(sel)
	}
	if v, ok := htmlnode.AttrFold(sel, "itemprop"); ok && v == "author" {
		return textLenOK(sel)
	}
	classAndID := strings.ToLower(htmlnode.ClassAndID(sel))
	for _, name := range bylineNames {
		if strings.Contains(classAndID, name) {
			return textLenOK(sel)
		}
	}
	return false
}

func textLenOK(sel *selection) bool {
	n := len([]rune(strings.TrimSpace(sel.Text())))
	return n > 0 && n < 100
}
