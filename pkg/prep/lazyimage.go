package prep

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/pkg/dataurl"
	"github.com/artscr/artscr/pkg/htmlnode"
)

func wrapNode(n *html.Node) *selection {
	return goquery.NewDocumentFromNode(n).Selection
}

var imageExtRE = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)`)
var imageExtWithDensityRE = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)\s+\d`)

// fixLazyImages implements §4.4's lazy-image fix over <img>, <picture>, and
// <figure>.
func fixLazyImages(root *selection) {
	root.Find("img, picture, figure").Each(func(_ int, sel *selection) {
		fixLazyImage(sel)
	})
}

func fixLazyImage(sel *selection) {
	tag := htmlnode.TagName(sel)

	if src, ok := htmlnode.AttrFold(sel, "src"); ok {
		if d, isData := dataurl.Parse(src); isData && d.Base64 && len(src) < 133 {
			if referencesAnotherImage(sel) {
				sel.RemoveAttr("src")
			}
		}
	}

	srcset, hasSrcset := htmlnode.AttrFold(sel, "srcset")
	_, hasSrc := htmlnode.AttrFold(sel, "src")
	hasUsableSrcset := hasSrcset && srcset != "null" && srcset != ""
	if (hasSrc && hasUsableSrcset) || isLazyClass(sel) {
		return
	}

	attr, value, ok := findImageReferenceAttr(sel)
	if !ok {
		if tag == "figure" && sel.Find("img").Length() == 0 {
			img := htmlnode.CreateTag("img")
			sel.Nodes[0].AppendChild(img)
		}
		return
	}

	target := wrapNode(sel.Nodes[0])
	if tag == "figure" {
		img := target.Find("img").First()
		if img.Length() == 0 {
			n := htmlnode.CreateTag("img")
			sel.Nodes[0].AppendChild(n)
			img = wrapNode(n)
		}
		applyImageAttr(img, attr, value)
		return
	}
	applyImageAttr(sel, attr, value)
}

func applyImageAttr(img *selection, attr, value string) {
	if imageExtWithDensityRE.MatchString(value) {
		img.SetAttr("srcset", value)
		return
	}
	img.SetAttr("src", value)
}

func findImageReferenceAttr(sel *selection) (attr, value string, ok bool) {
	for _, a := range htmlnode.Attrs(sel) {
		name := strings.ToLower(a.Key)
		if name == "src" || name == "srcset" || name == "alt" {
			continue
		}
		if imageExtRE.MatchString(a.Val) {
			return a.Key, a.Val, true
		}
	}
	return "", "", false
}

func referencesAnotherImage(sel *selection) bool {
	for _, a := range htmlnode.Attrs(sel) {
		name := strings.ToLower(a.Key)
		if name == "src" {
			continue
		}
		if imageExtRE.MatchString(a.Val) {
			return true
		}
	}
	return false
}

func isLazyClass(sel *selection) bool {
	v, ok := htmlnode.AttrFold(sel, "class")
	return ok && strings.Contains(strings.ToLower(v), "lazy")
}
