package retry

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/htmlnode"
)

type candidate struct {
	sel   *selection
	score float64
}

// selectOnce runs §4.3 steps 1-9 once against root (a detached, mutable
// clone) under the given flag configuration, returning the elected content
// container.
func selectOnce(root *selection, flags Flags, n int) (*selection, bool) {
	stripUnwanted(root, flags.StripUnlikelys)
	convertPhrasingDivs(root)

	state := newScoreState(flags.WeightClasses)
	scoreScorables(root, state)

	cands := topCandidates(state, n)
	if len(cands) == 0 {
		return nil, false
	}

	leaderSel := cands[0].sel
	leaderScore := cands[0].score

	alternates := cands[1:]
	qualifying := 0
	for _, c := range alternates {
		if c.score >= 0.75*leaderScore {
			qualifying++
		}
	}
	if qualifying >= 3 {
		if adopted, ok := adoptCommonAncestor(leaderSel, alternates); ok {
			leaderSel = adopted
		}
	}

	leaderSel = climbWhileRising(leaderSel, state, leaderScore)
	leaderSel = climbWhileOnlyChild(leaderSel)

	content := mergeSiblings(leaderSel, state)
	return content, true
}

func wrapNode(n *html.Node) *selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// topCandidates implements §4.3 step 5: scale every touched node's score by
// (1-linkDensity) and keep the top n.
func topCandidates(state *scoreState, n int) []candidate {
	all := make([]candidate, 0, len(state.inited))
	for node := range state.inited {
		sel := wrapNode(node)
		final := state.scores[node] * (1 - linkDensity(sel))
		all = append(all, candidate{sel: sel, score: final})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].score > all[j].score })
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// adoptCommonAncestor implements §4.3 step 6: walk the leader's ancestor
// chain and adopt the first one appearing in at least 3 alternates'
// ancestor lists.
func adoptCommonAncestor(leaderSel *selection, alternates []candidate) (*selection, bool) {
	for _, anc := range htmlnode.Ancestors(leaderSel) {
		count := 0
		for _, alt := range alternates {
			for _, altAnc := range htmlnode.Ancestors(alt.sel) {
				if htmlnode.Same(altAnc, anc) {
					count++
					break
				}
			}
		}
		if count >= 3 {
			return anc, true
		}
	}
	return nil, false
}

// climbWhileRising implements §4.3 step 7.
func climbWhileRising(leaderSel *selection, state *scoreState, leaderScore float64) *selection {
	cur := leaderSel
	curScore := state.get(cur)
	for {
		parent := cur.Parent()
		if parent.Length() == 0 {
			break
		}
		tag := htmlnode.TagName(parent)
		if tag == "" || tag == "body" {
			break
		}
		pScore := state.get(parent)
		if pScore < leaderScore/3 || pScore <= curScore {
			break
		}
		cur, curScore = parent, pScore
	}
	return cur
}

// climbWhileOnlyChild implements §4.3 step 8.
func climbWhileOnlyChild(sel *selection) *selection {
	cur := sel
	for {
		parent := cur.Parent()
		if parent.Length() == 0 {
			break
		}
		if len(htmlnode.ElementChildren(parent)) != 1 {
			break
		}
		cur = parent
	}
	return cur
}

// mergeSiblings implements §4.3 step 9: gathers the leader's qualifying
// sibling elements into a new wrapper, in document order.
func mergeSiblings(leaderSel *selection, state *scoreState) *selection {
	parent := leaderSel.Parent()
	if parent.Length() == 0 {
		return leaderSel
	}

	leaderScore := state.get(leaderSel)
	threshold := 0.2 * leaderScore
	if threshold < 10 {
		threshold = 10
	}
	leaderClasses, _ := htmlnode.AttrFold(leaderSel, "class")

	wrapper := htmlnode.CreateTag("div")

	siblings := htmlnode.ElementChildren(parent)
	for _, sib := range siblings {
		include := htmlnode.Same(sib, leaderSel)
		if !include {
			sibScore := state.get(sib)
			bonus := 0.0
			if sibClasses, ok := htmlnode.AttrFold(sib, "class"); ok && leaderClasses != "" && sibClasses == leaderClasses {
				bonus = 0.2 * leaderScore
			}
			switch {
			case sibScore+bonus >= threshold:
				include = true
			case htmlnode.TagName(sib) == "p":
				text := strings.TrimSpace(sib.Text())
				ln := len([]rune(text))
				ld := linkDensity(sib)
				if ln > 80 && ld < 0.25 {
					include = true
				} else if ln > 0 && ln < 80 && ld == 0 && (strings.Contains(text, ". ") || strings.HasSuffix(text, ".")) {
					include = true
				}
			}
		}
		if !include {
			continue
		}

		tag := htmlnode.TagName(sib)
		n := sib.Nodes[0]
		if tag != "div" && tag != "article" && tag != "section" && tag != "p" {
			n.Data = "div"
			n.DataAtom = 0
		}
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		wrapper.AppendChild(n)
	}

	return wrapNode(wrapper)
}
