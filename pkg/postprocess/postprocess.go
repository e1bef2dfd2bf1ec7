// Package postprocess implements §4.5: link absolutisation, nested-container
// simplification, and class stripping, applied to a finished content subtree.
package postprocess

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/artscr/artscr/pkg/docurl"
)

type selection = goquery.Selection

// Run applies the full post-process pass to content, in the order §4.5 lists
// them: absolutise, simplify nested containers, then strip classes.
func Run(content *selection, doc docurl.DocumentURL, classesToPreserve []string) {
	Absolutise(content, doc)
	SimplifyContainers(content)
	StripClasses(content, classesToPreserve)
}
