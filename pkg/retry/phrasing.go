package retry

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// convertPhrasingDivs implements §4.3 step 2: a div whose children are all
// phrasing content becomes a <p>; otherwise any contiguous run of phrasing
// content inside it is wrapped in a new <p>.
func convertPhrasingDivs(root *selection) {
	var divs []*html.Node
	root.Find("div").Each(func(_ int, sel *selection) {
		divs = append(divs, sel.Nodes[0])
	})

	for _, n := range divs {
		if isAllPhrasing(n) {
			n.Data = "p"
			n.DataAtom = 0
			continue
		}
		wrapPhrasingRuns(n)
	}
}

func isAllPhrasing(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			continue
		case html.ElementNode:
			if !htmlnode.TagCategory(c.Data).Has(htmlnode.CategoryPhrasing) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func wrapPhrasingRuns(n *html.Node) {
	var run []*html.Node

	flush := func() {
		if len(run) == 0 {
			return
		}
		if allWhitespace(run) {
			run = nil
			return
		}
		p := htmlnode.CreateTag("p")
		n.InsertBefore(p, run[0])
		for _, c := range run {
			n.RemoveChild(c)
			p.AppendChild(c)
		}
		run = nil
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		isPhrasing := c.Type == html.TextNode ||
			(c.Type == html.ElementNode && htmlnode.TagCategory(c.Data).Has(htmlnode.CategoryPhrasing))
		if isPhrasing {
			run = append(run, c)
		} else {
			flush()
		}
		c = next
	}
	flush()
}

func allWhitespace(nodes []*html.Node) bool {
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return false
		}
		if strings.TrimSpace(n.Data) != "" {
			return false
		}
	}
	return true
}
