package retry

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/classweight"
	"github.com/artscr/artscr/pkg/htmlnode"
)

// commaRunes is the fixed Unicode comma set spec.md §4.3/§4.4 score and
// conditional-clean rules both count against.
const commaRunes = ",،﹐︐︑⹁⸴⸲，"

// tagBias is the initializing bias each ancestor's score starts from
// (§4.3 step 4), before the ×25 class-weight term is added.
var tagBias = map[string]float64{
	"div": 5,
	"pre": 3, "td": 3, "blockquote": 3,
	"address": -3, "ol": -3, "ul": -3, "dl": -3, "dd": -3, "dt": -3, "li": -3, "form": -3,
	"h1": -5, "h2": -5, "h3": -5, "h4": -5, "h5": -5, "h6": -5,
}

var scorableTags = map[string]bool{
	"section": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "td": true, "pre": true,
}

// scoreState accumulates per-node scores across the §4.3 propagation pass.
type scoreState struct {
	scores        map[*html.Node]float64
	inited        map[*html.Node]bool
	weightClasses bool
}

func newScoreState(weightClasses bool) *scoreState {
	return &scoreState{
		scores:        map[*html.Node]float64{},
		inited:        map[*html.Node]bool{},
		weightClasses: weightClasses,
	}
}

func (s *scoreState) ensureInit(sel *selection) float64 {
	n := sel.Nodes[0]
	if s.inited[n] {
		return s.scores[n]
	}
	s.inited[n] = true
	base := tagBias[htmlnode.TagName(sel)]
	if s.weightClasses {
		base += classweight.Weight(sel, 25)
	}
	s.scores[n] = base
	return base
}

func (s *scoreState) add(sel *selection, delta float64) {
	s.ensureInit(sel)
	s.scores[sel.Nodes[0]] += delta
}

func (s *scoreState) get(sel *selection) float64 {
	s.ensureInit(sel)
	return s.scores[sel.Nodes[0]]
}

// scoreScorables implements §4.3 step 3: scores the fixed scorable tag set
// and propagates each score up to 5 ancestors.
func scoreScorables(root *selection, state *scoreState) {
	root.Find("section, h2, h3, h4, h5, h6, p, td, pre").Each(func(_ int, sel *selection) {
		text := strings.TrimSpace(sel.Text())
		runeCount := len([]rune(text))
		if runeCount < 25 {
			return
		}

		contentScore := 1 + float64(countCommas(text))
		bonus := runeCount / 100
		if bonus > 3 {
			bonus = 3
		}
		contentScore += float64(bonus)

		ancestors := htmlnode.Ancestors(sel)
		for level := 0; level < len(ancestors) && level < 5; level++ {
			anc := ancestors[level]
			var divider float64
			switch level {
			case 0:
				divider = 1
			case 1:
				divider = 2
			default:
				divider = float64(level) * 3
			}
			state.add(anc, contentScore/divider)
		}
	})
}

func countCommas(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(commaRunes, r) {
			n++
		}
	}
	return n
}

// linkDensity is linkTextLength/totalTextLength, where an anchor whose href
// starts with "#" contributes only 0.3x its text length.
func linkDensity(sel *selection) float64 {
	total := len([]rune(sel.Text()))
	if total == 0 {
		return 0
	}
	var linkLen float64
	sel.Find("a").Each(func(_ int, a *selection) {
		l := float64(len([]rune(a.Text())))
		if href, ok := htmlnode.AttrFold(a, "href"); ok && strings.HasPrefix(href, "#") {
			l *= 0.3
		}
		linkLen += l
	})
	return linkLen / float64(total)
}
