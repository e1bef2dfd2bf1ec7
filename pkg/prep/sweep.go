package prep

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/classweight"
	"github.com/artscr/artscr/pkg/htmlnode"
)

var unconditionalRemoveTags = []string{
	"object", "embed", "footer", "link", "aside", "iframe",
	"input", "textarea", "select", "button",
}

// removeUnconditional removes the fixed unconditional-removal tag set,
// unless the element is a video embed.
func removeUnconditional(root *selection) {
	var toRemove []*html.Node
	for _, tag := range unconditionalRemoveTags {
		root.Find(tag).Each(func(_ int, sel *selection) {
			if (tag == "object" || tag == "embed" || tag == "iframe") && isVideoEmbed(sel) {
				return
			}
			toRemove = append(toRemove, sel.Nodes[0])
		})
	}
	for _, n := range toRemove {
		detach(n)
	}
}

// shareWidgetSweep removes elements whose class/id mentions "share" or
// "sharedaddy" and whose text is short, across every element in the tree.
func shareWidgetSweep(root *selection) {
	var toRemove []*html.Node
	root.Find("*").Each(func(_ int, sel *selection) {
		classAndID := strings.ToLower(htmlnode.ClassAndID(sel))
		if !strings.Contains(classAndID, "share") && !strings.Contains(classAndID, "sharedaddy") {
			return
		}
		if len([]rune(strings.TrimSpace(sel.Text()))) < 500 {
			toRemove = append(toRemove, sel.Nodes[0])
		}
	})
	for _, n := range toRemove {
		detach(n)
	}
}

// headerCleanup removes h1/h2 elements whose ×25 class weight is negative.
func headerCleanup(root *selection) {
	var toRemove []*html.Node
	root.Find("h1, h2").Each(func(_ int, sel *selection) {
		if classweight.Weight(sel, 25) < 0 {
			toRemove = append(toRemove, sel.Nodes[0])
		}
	})
	for _, n := range toRemove {
		detach(n)
	}
}

func replaceH1WithH2(root *selection) {
	root.Find("h1").Each(func(_ int, sel *selection) {
		n := sel.Nodes[0]
		n.Data = "h2"
		n.DataAtom = 0
	})
}

func removeEmptyParagraphs(root *selection) {
	var toRemove []*html.Node
	root.Find("p").Each(func(_ int, sel *selection) {
		if strings.TrimSpace(sel.Text()) != "" {
			return
		}
		if sel.Find("img, embed, object, iframe").Length() > 0 {
			return
		}
		toRemove = append(toRemove, sel.Nodes[0])
	})
	for _, n := range toRemove {
		detach(n)
	}
}

func removeBrBeforeP(root *selection) {
	var toRemove []*html.Node
	root.Find("br").Each(func(_ int, sel *selection) {
		n := sel.Nodes[0]
		next := n.NextSibling
		for next != nil && next.Type == html.TextNode && strings.TrimSpace(next.Data) == "" {
			next = next.NextSibling
		}
		if next != nil && next.Type == html.ElementNode && next.Data == "p" {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		detach(n)
	}
}

// collapseSingleCellTables replaces a <table><tbody><tr><td>...</td></tr>
// with the cell's content, retagged to <p> when every cell child is
// phrasing content, else <div>.
func collapseSingleCellTables(root *selection) {
	var tables []*html.Node
	root.Find("table").Each(func(_ int, sel *selection) {
		tables = append(tables, sel.Nodes[0])
	})

	for _, n := range tables {
		cell := singleCellOf(n)
		if cell == nil {
			continue
		}
		replacement := cellReplacement(cell)
		if n.Parent != nil {
			n.Parent.InsertBefore(replacement, n)
			n.Parent.RemoveChild(n)
		}
	}
}

// cellReplacement returns the node that should stand in for a collapsed
// single-cell table. When the cell's only meaningful content is itself a
// single element (e.g. a lone <p>), that element is promoted directly
// rather than wrapping it in a renamed cell; otherwise the cell is renamed
// to <p> or <div> per §4.4.
func cellReplacement(cell *html.Node) *html.Node {
	if only := soleContentChild(cell); only != nil {
		cell.RemoveChild(only)
		return only
	}
	if isAllPhrasingCell(cell) {
		cell.Data = "p"
	} else {
		cell.Data = "div"
	}
	cell.DataAtom = 0
	return cell
}

func soleContentChild(cell *html.Node) *html.Node {
	var only *html.Node
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
			continue
		}
		if c.Type != html.ElementNode {
			continue
		}
		if only != nil {
			return nil
		}
		only = c
	}
	return only
}

func singleCellOf(table *html.Node) *html.Node {
	tbody := onlyElementChild(table, "tbody")
	if tbody == nil {
		return nil
	}
	tr := onlyElementChild(tbody, "tr")
	if tr == nil {
		return nil
	}
	return onlyElementChild(tr, "td")
}

func onlyElementChild(n *html.Node, tag string) *html.Node {
	var found *html.Node
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
			if c.Data == tag {
				found = c
			}
		}
	}
	if count == 1 && found != nil {
		return found
	}
	return nil
}

func countElementChildren(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

func isAllPhrasingCell(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			continue
		}
		if c.Type != html.ElementNode {
			return false
		}
		if !htmlnode.TagCategory(c.Data).Has(htmlnode.CategoryPhrasing) {
			return false
		}
	}
	return true
}
