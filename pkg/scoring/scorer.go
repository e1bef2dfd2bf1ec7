package scoring

import (
	"math"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/classweight"
	"github.com/artscr/artscr/pkg/htmlnode"
	"github.com/artscr/artscr/pkg/tokenize"
)

// Result is the outcome of scoring a subtree: every candidate that passed
// the validity gate (in document order, for the ancestor resolver's
// dominant-outlier branch), and the top N by score in ascending order (for
// its scattered-tops and deep-ancestry branches).
type Result struct {
	All []Candidate
	Top []Candidate
}

// Score runs the element-based candidate scorer of §4.1 over root (normally
// the <body> subtree) and returns the top n candidates plus the full scored
// set.
func Score(root *goquery.Selection, n int) Result {
	h := newBoundedMinHeap(n)
	var all []Candidate

	consider := func(sel *goquery.Selection) {
		if cand, ok := scoreElement(sel); ok {
			all = append(all, cand)
			h.Offer(cand)
		}
	}

	consider(root)
	root.Find("*").Each(func(_ int, sel *goquery.Selection) {
		consider(sel)
	})

	return Result{All: all, Top: h.DrainAscending()}
}

// scoreElement scores a single element, returning ok=false if it is
// ineligible or fails a disqualification/validity check.
func scoreElement(sel *goquery.Selection) (Candidate, bool) {
	if len(sel.Nodes) == 0 || sel.Nodes[0].Type != html.ElementNode {
		return Candidate{}, false
	}
	n := sel.Nodes[0]
	tag := htmlnode.TagName(sel)

	if !htmlnode.IsBlock(tag) {
		return Candidate{}, false
	}
	if len(htmlnode.ElementChildren(sel)) < 2 {
		return Candidate{}, false
	}
	if htmlnode.ProbablyHidden(sel) {
		return Candidate{}, false
	}
	if htmlnode.TagCategory(tag).Has(htmlnode.CategoryMetadata | htmlnode.CategoryScript) {
		return Candidate{}, false
	}

	// Direct-content pass: a parent whose own immediate text is already
	// article-like text is disqualified in favour of a descendant.
	dWords, dNumbers, dPunct := tokenize.CountCategories(tokenize.EnumerateTokens(directText(n)))
	if dWords+dNumbers+dPunct > 0 && dWords+dNumbers > dPunct {
		return Candidate{}, false
	}

	// Full-content pass.
	allTokens := tokenize.EnumerateTokens(descendantText(n))
	words, numbers, punct := tokenize.CountCategories(allTokens)
	tokenCount := words + numbers + punct
	tokenTotal := len(allTokens)
	if tokenTotal == 0 || punct >= words+numbers {
		return Candidate{}, false
	}
	density := float64(tokenCount) / float64(tokenTotal)

	mCount := markupCount(n)
	factor := elementFactor(sel)
	weight := classweight.Weight(sel, 0.1)

	if !(tokenCount > mCount && (mCount > 0 || factor > 1.0)) {
		return Candidate{}, false
	}

	base := (float64(tokenCount) / (float64(mCount) + math.Log2(float64(tokenCount)))) * density * factor
	score := base + weight

	return Candidate{Root: sel, TokenCount: tokenCount, ContentScore: score}, true
}
