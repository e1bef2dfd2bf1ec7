// ABOUTME: DOM collaborator helpers over goquery: tag tables, category/layout
// ABOUTME: classification, attribute access, tag rewriting, and subtree cloning.
package htmlnode

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Layout classifies an element's box type per HTML5 content-model tables.
type Layout int

const (
	LayoutInline Layout = iota
	LayoutBlock
)

// Category is a bitset of HTML5 content-model categories relevant to scoring.
type Category uint8

const (
	CategoryNone     Category = 0
	CategoryMetadata Category = 1 << iota
	CategoryScript
	CategoryForm
	CategoryPhrasing
)

// tagInfo describes the static content-model facts for one tag name.
type tagInfo struct {
	layout           Layout
	category         Category
	permitsPhrasing  bool
}

// blockTags lists element names whose box layout is block. Everything not
// listed here defaults to inline, matching the HTML5 default rendering.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "details": true, "dialog": true, "dd": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hgroup": true, "hr": true, "html": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tbody": true, "thead": true, "tfoot": true, "tr": true,
	"td": true, "th": true, "ul": true,
}

var metadataTags = map[string]bool{
	"base": true, "link": true, "meta": true, "noscript": true,
	"script": true, "style": true, "title": true, "head": true,
}

var scriptTags = map[string]bool{"script": true, "noscript": true, "template": true}

var formTags = map[string]bool{
	"button": true, "datalist": true, "fieldset": true, "form": true,
	"input": true, "label": true, "legend": true, "meter": true,
	"optgroup": true, "option": true, "output": true, "progress": true,
	"select": true, "textarea": true,
}

// phrasingTags is the safe phrasing-content subset named in the spec's
// GLOSSARY: no canvas, iframe, svg, or video.
var phrasingTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "dfn": true, "em": true,
	"i": true, "kbd": true, "mark": true, "q": true, "rp": true, "rt": true,
	"ruby": true, "s": true, "samp": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "time": true, "u": true,
	"var": true, "wbr": true, "img": true, "#text": true,
}

// noPhrasingTags is the set of tags that never permit phrasing content as a
// direct child (used by the markup-count rule in the scorer).
var noPhrasingTags = map[string]bool{
	"table": true, "tbody": true, "thead": true, "tfoot": true, "tr": true,
	"ul": true, "ol": true, "dl": true, "select": true, "optgroup": true,
	"colgroup": true, "head": true, "html": true,
}

// IsBlock reports whether tag is a block-layout element.
func IsBlock(tag string) bool {
	return blockTags[strings.ToLower(tag)]
}

// TagCategory returns the content-model category bitset for tag.
func TagCategory(tag string) Category {
	tag = strings.ToLower(tag)
	var c Category
	if metadataTags[tag] {
		c |= CategoryMetadata
	}
	if scriptTags[tag] {
		c |= CategoryScript
	}
	if formTags[tag] {
		c |= CategoryForm
	}
	if phrasingTags[tag] {
		c |= CategoryPhrasing
	}
	return c
}

// PermitsPhrasing reports whether tag's content model allows phrasing-content
// children directly (used by the non-content markup classification in §4.1).
func PermitsPhrasing(tag string) bool {
	tag = strings.ToLower(tag)
	if noPhrasingTags[tag] {
		return false
	}
	return true
}

// Has reports whether the bitset contains any bit of other.
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// TagName returns the lowercase tag name of a single-node selection, or ""
// for non-element nodes.
func TagName(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return strings.ToLower(goquery.NodeName(sel))
}

// Attrs returns every attribute of the selection's first node as an ordered
// slice of (name, value) pairs; lookups elsewhere are case-insensitive on
// name, case-sensitive on value.
func Attrs(sel *goquery.Selection) []html.Attribute {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0].Attr
}

// AttrFold looks up an attribute by case-insensitive name.
func AttrFold(sel *goquery.Selection, name string) (string, bool) {
	if sel == nil || len(sel.Nodes) == 0 {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range sel.Nodes[0].Attr {
		if strings.ToLower(a.Key) == name {
			return a.Val, true
		}
	}
	return "", false
}

// ClassAndID concatenates the class, id, and name attribute values of sel,
// space-separated, for use by class-weight and unlikely-candidate matching.
func ClassAndID(sel *goquery.Selection) string {
	var parts []string
	if v, ok := AttrFold(sel, "class"); ok && v != "" {
		parts = append(parts, v)
	}
	if v, ok := AttrFold(sel, "id"); ok && v != "" {
		parts = append(parts, v)
	}
	if v, ok := AttrFold(sel, "name"); ok && v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}

// SetNodeTag renames sel's element in place, preserving its attributes and
// children. Unlike a serialize/reparse round trip this never loses
// whitespace-sensitive content (<pre>, <textarea>) or misnests malformed
// markup — a defect present in string-replacement based tag converters.
func SetNodeTag(sel *goquery.Selection, tag string) *goquery.Selection {
	if sel == nil || len(sel.Nodes) == 0 {
		return sel
	}
	for _, n := range sel.Nodes {
		if n.Type == html.ElementNode {
			n.Data = strings.ToLower(tag)
			n.DataAtom = 0
		}
	}
	return sel
}

// CreateTag builds a detached element node with the given tag name.
func CreateTag(tag string) *html.Node {
	return &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(tag),
	}
}

// Clone deep-copies a node and its descendants into a new, parentless
// subtree. Used to snapshot the DOM before a destructive retry pass (§4.3,
// §5) since golang.org/x/net/html exposes no built-in Clone.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		childClone := Clone(c)
		appendChild(clone, childClone)
	}
	return clone
}

func appendChild(parent, child *html.Node) {
	child.Parent = parent
	if parent.LastChild == nil {
		parent.FirstChild = child
		parent.LastChild = child
	} else {
		child.PrevSibling = parent.LastChild
		parent.LastChild.NextSibling = child
		parent.LastChild = child
	}
}

// Ancestors returns sel's ancestor chain, nearest first, stopping at (and
// excluding) the document root.
func Ancestors(sel *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	cur := sel.Parent()
	for cur.Length() > 0 {
		tag := TagName(cur)
		if tag == "" || tag == "#document" {
			break
		}
		out = append(out, cur)
		cur = cur.Parent()
	}
	return out
}

// NestingLevel counts sel's proper ancestors.
func NestingLevel(sel *goquery.Selection) int {
	return len(Ancestors(sel))
}

// ElementChildren returns only the element-node children of sel, in order.
func ElementChildren(sel *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	sel.Children().Each(func(_ int, c *goquery.Selection) {
		out = append(out, c)
	})
	return out
}

// Same reports whether a and b are single-node selections over the same
// underlying node.
func Same(a, b *goquery.Selection) bool {
	if a == nil || b == nil || len(a.Nodes) == 0 || len(b.Nodes) == 0 {
		return false
	}
	return a.Nodes[0] == b.Nodes[0]
}
