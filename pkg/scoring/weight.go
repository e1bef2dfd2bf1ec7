package scoring

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/htmlnode"
)

// elementFactors is the per-tag multiplier table from spec.md §4.1's table.
var elementFactors = map[string]float64{
	"article": 1.2, "section": 1.2,
	"div": 1.1, "main": 1.1,
	"pre": 0.9, "table": 0.9, "tbody": 0.9, "tr": 0.9, "td": 0.9,
	"address": 0.8, "blockquote": 0.8, "ol": 0.8, "ul": 0.8, "dl": 0.8,
	"dd": 0.8, "dt": 0.8, "li": 0.8, "form": 0.8,
	"p": 0.5, "h1": 0.5, "h2": 0.5, "h3": 0.5, "h4": 0.5, "h5": 0.5, "h6": 0.5,
	"hgroup": 0.5, "header": 0.5, "footer": 0.5,
}

// elementFactor looks up r's per-tag multiplier. When r is a single-child
// chain it follows the chain to its first multi-child (or childless)
// descendant r', uses r''s tag for the table lookup, and subtracts a
// 0.1*(depth+1) penalty for the chain it walked through.
func elementFactor(sel *goquery.Selection) float64 {
	children := htmlnode.ElementChildren(sel)
	if len(children) != 1 {
		return factorFor(htmlnode.TagName(sel))
	}

	cur := sel
	depth := 0
	for {
		kids := htmlnode.ElementChildren(cur)
		if len(kids) != 1 {
			break
		}
		cur = kids[0]
		depth++
	}

	return factorFor(htmlnode.TagName(cur)) - 0.1*float64(depth+1)
}

func factorFor(tag string) float64 {
	if f, ok := elementFactors[tag]; ok {
		return f
	}
	return 1.0
}
