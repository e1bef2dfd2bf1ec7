package prep

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/classweight"
	"github.com/artscr/artscr/pkg/htmlnode"
)

const commaRunes = ",،﹐︐︑⹁⸴⸲，"

var videoHosts = []string{
	"dailymotion.com", "youtube.com", "youtube-nocookie.com",
	"player.vimeo.com", "v.qq.com", "archive.org",
	"upload.wikimedia.org", "player.twitch.tv",
}

var conditionalCleanTags = []string{"form", "fieldset", "table", "ul", "div"}

// conditionalClean implements §4.4's conditional-clean pass.
func conditionalClean(root *selection) {
	for _, tag := range conditionalCleanTags {
		var toRemove []*html.Node
		root.Find(tag).Each(func(_ int, sel *selection) {
			if isDataTableOrDescendant(sel) || hasAncestorTag(sel, "code") {
				return
			}
			if shouldConditionallyRemove(sel, tag) {
				toRemove = append(toRemove, sel.Nodes[0])
			}
		})
		for _, n := range toRemove {
			detach(n)
		}
	}
}

func isDataTableOrDescendant(sel *selection) bool {
	if htmlnode.TagName(sel) == "table" {
		if v, ok := htmlnode.AttrFold(sel, "_readabilityDataTable"); ok && v == "true" {
			return true
		}
	}
	for _, anc := range htmlnode.Ancestors(sel) {
		if htmlnode.TagName(anc) == "table" {
			if v, ok := htmlnode.AttrFold(anc, "_readabilityDataTable"); ok && v == "true" {
				return true
			}
		}
	}
	return false
}

func hasAncestorTag(sel *selection, tag string) bool {
	for _, anc := range htmlnode.Ancestors(sel) {
		if htmlnode.TagName(anc) == tag {
			return true
		}
	}
	return false
}

func shouldConditionallyRemove(sel *selection, tag string) bool {
	weight := classweight.Weight(sel, 25)
	if weight < 0 {
		return true
	}

	text := sel.Text()
	if countCommas(text) >= 10 {
		return false
	}

	isList := tag == "ul"
	if isList && everyListItemHasOneImage(sel) {
		return false
	}

	p := sel.Find("p").Length()
	img := sel.Find("img").Length()
	li := sel.Find("li").Length() - 100
	input := sel.Find("input").Length()
	contentLen := len([]rune(strings.TrimSpace(text)))
	headingDensity := headingTextDensity(sel)
	embedCount := countNonVideoEmbeds(sel)
	density := linkDensity(sel)

	hasFigureAncestor := hasAncestorTag(sel, "figure") || htmlnode.TagName(sel) == "figure"

	switch {
	case img > 1 && float64(p)/float64(img) < 0.5 && !hasFigureAncestor:
		return true
	case !isList && li > p:
		return true
	case input > p/3:
		return true
	case !isList && headingDensity < 0.9 && contentLen < 25 && (img == 0 || img > 2) && !hasFigureAncestor:
		return true
	case !isList && weight < 25 && density > 0.2:
		return true
	case weight >= 25 && density > 0.5:
		return true
	case (embedCount == 1 && contentLen < 75) || embedCount > 1:
		return true
	}
	return false
}

func everyListItemHasOneImage(sel *selection) bool {
	items := sel.Find("li")
	if items.Length() == 0 {
		return false
	}
	allOne := true
	items.Each(func(_ int, li *selection) {
		if li.Find("img").Length() != 1 {
			allOne = false
		}
	})
	return allOne
}

func headingTextDensity(sel *selection) float64 {
	total := len([]rune(sel.Text()))
	if total == 0 {
		return 0
	}
	headingLen := 0
	sel.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *selection) {
		headingLen += len([]rune(h.Text()))
	})
	return float64(headingLen) / float64(total)
}

func countNonVideoEmbeds(sel *selection) int {
	count := 0
	sel.Find("object, embed, iframe").Each(func(_ int, el *selection) {
		if isVideoEmbed(el) {
			return
		}
		count++
	})
	return count
}

func isVideoEmbed(sel *selection) bool {
	for _, attrName := range []string{"src", "data"} {
		v, ok := htmlnode.AttrFold(sel, attrName)
		if !ok {
			continue
		}
		for _, host := range videoHosts {
			if strings.Contains(v, host) {
				return true
			}
		}
	}
	return false
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

// linkDensity is linkTextLength/totalTextLength; anchors whose href starts
// with "#" contribute only 0.3x their text length.
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

func detach(n *html.Node) {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}
