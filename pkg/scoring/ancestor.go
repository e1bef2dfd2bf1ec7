package scoring

import (
	"sort"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/htmlnode"
)

type ancestorInfo struct {
	sel   *goquery.Selection
	reocc int
}

// ResolveAncestor implements §4.2. It takes the Result of Score (built with
// the same n used here) and returns the elected article-root candidate. ok
// is false only when result.Top is empty, i.e. the scorer found nothing —
// the caller should report ArticleNotFound.
func ResolveAncestor(result Result, n int) (Candidate, bool) {
	top := result.Top
	if len(top) == 0 {
		return Candidate{}, false
	}
	threshold := (n + 1) / 2
	if threshold < 1 {
		threshold = 1
	}

	ancestryCount, maxAncestryCount := computeAncestry(top)
	pick := top[len(top)-1]

	allByNode := make(map[*html.Node]Candidate, len(result.All))
	for _, c := range result.All {
		allByNode[c.Root.Nodes[0]] = c
	}
	ancestorMap := collectAncestorReoccurrence(top)

	// Branch 1: scattered tops.
	if float64(maxAncestryCount)/float64(threshold) < 0.6 && (ancestryCount == 0 || ancestryCount != maxAncestryCount) {
		if replacement, ok := scatteredTops(top, pick, ancestorMap, allByNode, n, threshold, maxAncestryCount); ok {
			return replacement, true
		}
	}

	// Branch 2: dominant outlier.
	if replacement, ok := dominantOutlier(result.All); ok {
		return replacement, true
	}

	// Branch 3: deep ancestry.
	if float64(ancestryCount)/float64(threshold) > 0.6 && ancestryCount < len(top) {
		elem := top[ancestryCount]
		if elem.TokenCount > 0 && float64(pick.TokenCount)/float64(elem.TokenCount) <= 0.8 {
			return elem, true
		}
	}

	return pick, true
}

// computeAncestry walks top (ascending score order) tracking the length of
// the current run in which each candidate's parent equals the previous
// candidate's root, and the maximum run length seen.
func computeAncestry(top []Candidate) (ancestryCount, maxAncestryCount int) {
	for i := 1; i < len(top); i++ {
		if htmlnode.Same(top[i].Root.Parent(), top[i-1].Root) {
			ancestryCount++
		} else {
			ancestryCount = 0
		}
		if ancestryCount > maxAncestryCount {
			maxAncestryCount = ancestryCount
		}
	}
	return ancestryCount, maxAncestryCount
}

// collectAncestorReoccurrence records, for every proper ancestor of any top
// candidate up to and including body, how many distinct top candidates it
// is an ancestor of.
func collectAncestorReoccurrence(top []Candidate) map[*html.Node]*ancestorInfo {
	m := map[*html.Node]*ancestorInfo{}
	for _, cand := range top {
		for _, anc := range htmlnode.Ancestors(cand.Root) {
			node := anc.Nodes[0]
			info, ok := m[node]
			if !ok {
				info = &ancestorInfo{sel: anc}
				m[node] = info
			}
			info.reocc++
			if htmlnode.TagName(anc) == "body" {
				break
			}
		}
	}
	return m
}

func isTopCandidate(node *html.Node, top []Candidate) bool {
	for _, c := range top {
		if c.Root.Nodes[0] == node {
			return true
		}
	}
	return false
}

func scatteredTops(
	top []Candidate,
	pick Candidate,
	ancestorMap map[*html.Node]*ancestorInfo,
	allByNode map[*html.Node]Candidate,
	n, threshold, maxAncestryCount int,
) (Candidate, bool) {
	maxTokens := 0
	tokenCounts := make([]int, 0, len(top))
	for _, c := range top {
		tokenCounts = append(tokenCounts, c.TokenCount)
		if c.TokenCount > maxTokens {
			maxTokens = c.TokenCount
		}
	}
	midTokens := medianInt(tokenCounts)

	type entry struct {
		node *html.Node
		info *ancestorInfo
	}
	entries := make([]entry, 0, len(ancestorMap))
	for node, info := range ancestorMap {
		entries = append(entries, entry{node, info})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].info.reocc != entries[j].info.reocc {
			return entries[i].info.reocc < entries[j].info.reocc
		}
		return htmlnode.NestingLevel(entries[i].info.sel) > htmlnode.NestingLevel(entries[j].info.sel)
	})

	pickNode := pick.Root.Nodes[0]

	for _, e := range entries {
		aCand, isScored := allByNode[e.node]
		if !isScored || aCand.TokenCount < pick.TokenCount {
			continue
		}

		reocc := e.info.reocc
		isTop := isTopCandidate(e.node, top)
		isHighestTop := e.node == pickNode

		matched := false
		switch {
		case reocc == n && !isTop:
			matched = true
		case reocc > threshold && aCand.TokenCount > maxTokens:
			matched = true
		case reocc == threshold && ((isTop && maxAncestryCount > 0) || isHighestTop):
			matched = true
		case reocc < threshold && isHighestTop && float64(aCand.TokenCount) >= midTokens:
			matched = true
		}
		if matched {
			return aCand, true
		}
	}
	return Candidate{}, false
}

func dominantOutlier(all []Candidate) (Candidate, bool) {
	sorted := append([]Candidate(nil), all...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TokenCount > sorted[j].TokenCount })
	deduped := dedupeByTokenCount(sorted)

	for i := 0; i+1 < len(deduped); i++ {
		if deduped[i].TokenCount == 0 {
			continue
		}
		ratio := float64(deduped[i+1].TokenCount) / float64(deduped[i].TokenCount)
		if ratio < 0.15 {
			return deduped[i], true
		}
	}
	return Candidate{}, false
}

func dedupeByTokenCount(sortedDesc []Candidate) []Candidate {
	out := make([]Candidate, 0, len(sortedDesc))
	for i, c := range sortedDesc {
		if i > 0 && c.TokenCount == sortedDesc[i-1].TokenCount {
			continue
		}
		out = append(out, c)
	}
	return out
}

func medianInt(nums []int) float64 {
	if len(nums) == 0 {
		return 0
	}
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}
