// ABOUTME: Shared class/id/name weight tables used by both the primary
// ABOUTME: scorer (§4.1) and the ReadabilityJS-compatible retry pass (§4.3).
package classweight

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// NegativeNames and PositiveNames are the fixed, case-insensitive substring
// lists from spec.md §4.1.
var NegativeNames = []string{
	"-ad-", "hidden", "hid", "banner", "combx", "comment", "com-", "contact",
	"foot", "footer", "footnote", "gdpr", "masthead", "media", "meta",
	"outbrain", "promo", "related", "scroll", "share", "shoutbox", "sidebar",
	"skyscraper", "sponsor", "shopping", "tags", "tool", "widget",
}

var PositiveNames = []string{
	"article", "body", "content", "entry", "hentry", "h-entry", "main",
	"page", "pagination", "post", "text", "blog", "story",
}

// attrValues returns the raw class, id, and name attribute values of sel, in
// that order, skipping absent ones.
func attrValues(sel *goquery.Selection) []string {
	var out []string
	for _, name := range []string{"class", "id", "name"} {
		if v, ok := htmlnode.AttrFold(sel, name); ok && v != "" {
			out = append(out, v)
		}
	}
	return out
}

func attrMatches(value string, names []string) bool {
	for _, tok := range strings.Fields(value) {
		tokLower := strings.ToLower(tok)
		for _, name := range names {
			if strings.Contains(tokLower, name) {
				return true
			}
		}
	}
	return false
}

// Weight computes the signed class/id/name weight for sel. unit is the
// per-attribute increment magnitude: 0.1 for the primary scorer (§4.1), 25
// for the ReadabilityJS-compatible retry's "×25" variant (§4.3 step 4). At
// most one negative and one positive increment is added per attribute.
func Weight(sel *goquery.Selection, unit float64) float64 {
	var score float64
	for _, v := range attrValues(sel) {
		if attrMatches(v, NegativeNames) {
			score -= unit
		}
		if attrMatches(v, PositiveNames) {
			score += unit
		}
	}
	return score
}

// IntWeight is Weight rounded to the nearest integer, for callers (the
// retry pass) that accumulate an integer score.
func IntWeight(sel *goquery.Selection, unit float64) int {
	w := Weight(sel, unit)
	if w < 0 {
		return int(w - 0.5)
	}
	return int(w + 0.5)
}
