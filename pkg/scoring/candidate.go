// ABOUTME: Candidate scorer (§4.1) and ancestor resolver (§4.2): the element-
// ABOUTME: based scoring algorithm that picks the article root candidate.
package scoring

import (
	"sort"

	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// Candidate is a scored element: a node the primary algorithm considers as a
// plausible article root.
type Candidate struct {
	Root         *goquery.Selection
	TokenCount   int
	ContentScore float64
}

// NestingLevel is the number of proper ancestors of the candidate's root.
func (c Candidate) NestingLevel() int {
	return htmlnode.NestingLevel(c.Root)
}

// SortScoreDesc orders cands by ContentScore descending, the highest-scoring
// candidate first.
func SortScoreDesc(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].ContentScore > cands[j].ContentScore
	})
}

// SortTokenAsc orders cands by TokenCount ascending. Among equal counts, a
// parent sorts after its child — i.e. the deeper (larger nesting level)
// candidate comes first — since §4.2's ancestor walk expects descendants to
// be considered before the ancestors that contain them.
func SortTokenAsc(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].TokenCount != cands[j].TokenCount {
			return cands[i].TokenCount < cands[j].TokenCount
		}
		return cands[i].NestingLevel() > cands[j].NestingLevel()
	})
}
