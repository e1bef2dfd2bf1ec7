// ABOUTME: Presentation prep (§4.4): the cleanup pass applied once to the
// ABOUTME: elected article subtree before post-processing and metadata.
package prep

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/microcosm-cc/bluemonday"
)

type selection = goquery.Selection

// sanitizePolicy is a defense-in-depth pass run after the structural prep
// steps: the element-based scorer and retry selector already decide what
// content to keep, but a final bluemonday pass guards against any script/
// event-handler markup that survived (e.g. inline onclick= attributes on
// elements this package doesn't specifically strip).
var sanitizePolicy = newSanitizePolicy()

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id", "class").Globally()
	p.AllowAttrs("_readabilityDataTable").OnElements("table")
	p.AllowAttrs("srcset").OnElements("img", "source")
	return p
}

// Clean applies §4.4 to content in place and returns it. cleanConditionally
// gates the conditional-clean stage only, mirroring the retry pass's own
// flag of the same name.
func Clean(content *selection, cleanConditionally bool) *selection {
	stripPresentationalAttrs(content)
	markDataTables(content)
	fixLazyImages(content)
	if cleanConditionally {
		conditionalClean(content)
	}
	removeUnconditional(content)
	shareWidgetSweep(content)
	headerCleanup(content)
	replaceH1WithH2(content)
	removeEmptyParagraphs(content)
	removeBrBeforeP(content)
	collapseSingleCellTables(content)
	return content
}

// Sanitize runs the defense-in-depth bluemonday pass; called by the root
// orchestration after the structural prep above, right before the output is
// serialized.
func Sanitize(htmlFragment string) string {
	return sanitizePolicy.Sanitize(htmlFragment)
}
