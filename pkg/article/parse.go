package article

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"

	"github.com/artscr/artscr/internal/xlog"
	"github.com/artscr/artscr/pkg/docurl"
	"github.com/artscr/artscr/pkg/htmlnode"
	"github.com/artscr/artscr/pkg/metadata"
	"github.com/artscr/artscr/pkg/postprocess"
	"github.com/artscr/artscr/pkg/prep"
	"github.com/artscr/artscr/pkg/scoring"
)

var containerTags = map[string]bool{"article": true, "section": true, "div": true, "main": true}

// TryParse runs the §4.8 attempt loop over doc and never fails on "no
// article found" — it reports ok=false instead.
func TryParse(doc *goquery.Document, documentURI string, opts ...Option) (*Article, bool) {
	cfg := newConfig(opts...)
	return tryParse(doc, documentURI, cfg)
}

// Parse is TryParse but returns ErrArticleNotFound (wrapped in an
// ExtractError) instead of ok=false.
func Parse(doc *goquery.Document, documentURI string, opts ...Option) (*Article, error) {
	cfg := newConfig(opts...)
	art, ok := tryParse(doc, documentURI, cfg)
	if !ok {
		return nil, &ExtractError{DocumentURL: documentURI, Err: ErrArticleNotFound}
	}
	return art, nil
}

func tryParse(doc *goquery.Document, documentURI string, cfg Config) (*Article, bool) {
	prep.UnwrapNoscriptImages(doc.Selection)

	meta := metadata.Harvest(doc)

	body := doc.Find("body")
	if body.Length() == 0 {
		xlog.Debugf("article: document has no <body>, scoring the document root instead")
		body = doc.Selection
	}

	docURL, _ := resolveDocumentURL(doc, documentURI)

	content, length, ok := selectContent(body, cfg)
	if !ok {
		return nil, false
	}

	wrapper := wrapOutput(content)
	postprocess.Absolutise(wrapper, docURL)
	postprocess.SimplifyContainers(wrapper)
	if !cfg.KeepClasses {
		postprocess.StripClasses(wrapper, cfg.ClassesToPreserve)
	}

	contentHTML, _ := goquery.OuterHtml(wrapper)
	contentHTML = prep.Sanitize(contentHTML)
	finalLength := len([]rune(wrapper.Text()))
	if finalLength == 0 {
		finalLength = length
	}

	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = firstParagraphExcerpt(wrapper)
	}

	art := &Article{
		Title:       meta.Title,
		Byline:      meta.Byline,
		Excerpt:     excerpt,
		Content:     wrapper,
		ContentHTML: contentHTML,
		Length:      finalLength,
		SiteName:    meta.SiteName,
		Language:    meta.Language,
		Direction:   meta.Direction,
		Published:   meta.Published,
		PlainText:   toPlainText(contentHTML),
	}
	return art, true
}

// firstParagraphExcerpt implements the second half of step 7's excerpt
// derivation: when neither JSON-LD nor meta tags supplied a description,
// fall back to the first non-empty paragraph of the elected content.
func firstParagraphExcerpt(content *goquery.Selection) string {
	var text string
	content.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		t := strings.TrimSpace(p.Text())
		if t == "" {
			return true
		}
		text = t
		return false
	})
	return text
}

// selectContent runs primaryStrategy first; when its pick is empty or
// falls short of CharThreshold and FallbackOnThinContent is set, it also
// runs retryStrategy and keeps whichever attempt produced more text.
func selectContent(body *goquery.Selection, cfg Config) (*goquery.Selection, int, bool) {
	primary, primaryLen, primaryOK := primaryStrategy{}.elect(body, cfg)
	if primaryOK && primaryLen >= cfg.CharThreshold {
		return primary, primaryLen, true
	}

	if !cfg.FallbackOnThinContent {
		if primaryOK {
			return primary, primaryLen, true
		}
		return nil, 0, false
	}

	retried, retriedLen, retryOK := retryStrategy{}.elect(body, cfg)

	switch {
	case retryOK && primaryOK:
		if retriedLen > primaryLen {
			return retried, retriedLen, true
		}
		return primary, primaryLen, true
	case retryOK:
		return retried, retriedLen, true
	case primaryOK:
		return primary, primaryLen, true
	default:
		return nil, 0, false
	}
}

// runPrimary scores a clone of body (so a mutating prep pass never disturbs
// the pristine body the retry loop needs) and preps the elected candidate.
func runPrimary(body *goquery.Selection, cfg Config) (*goquery.Selection, int, bool) {
	clone := cloneSelection(body)
	result := scoring.Score(clone, cfg.NTopCandidates)
	candidate, ok := scoring.ResolveAncestor(result, cfg.NTopCandidates)
	if !ok {
		return nil, 0, false
	}

	prepped := prep.Clean(candidate.Root, true)
	length := len([]rune(prepped.Text()))
	return prepped, length, true
}

func cloneSelection(sel *goquery.Selection) *goquery.Selection {
	cloned := htmlnode.Clone(sel.Nodes[0])
	return goquery.NewDocumentFromNode(cloned).Selection
}

// wrapOutput enforces the universal invariant that the elected subtree's tag
// is one of article/section/div/main (retagged to div otherwise) and that
// it is wrapped in a div carrying id="readability-page-1" class="page".
func wrapOutput(content *goquery.Selection) *goquery.Selection {
	n := content.Nodes[0]
	if !containerTags[n.Data] {
		htmlnode.SetNodeTag(content, "div")
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}

	wrapper := htmlnode.CreateTag("div")
	wrapper.Attr = append(wrapper.Attr,
		html.Attribute{Key: "id", Val: "readability-page-1"},
		html.Attribute{Key: "class", Val: "page"},
	)
	appendChild(wrapper, n)
	return goquery.NewDocumentFromNode(wrapper).Selection
}

// appendChild links n as wrapper's sole child; x/net/html exposes no
// built-in append, and htmlnode's own helper of the same name is unexported.
func appendChild(parent, n *html.Node) {
	n.Parent = parent
	n.PrevSibling = nil
	n.NextSibling = nil
	parent.FirstChild = n
	parent.LastChild = n
}

// resolveDocumentURL discovers the document URL per §4.7: the caller's
// documentURI if given, else <link rel=canonical> or <meta og:url>.
func resolveDocumentURL(doc *goquery.Document, documentURI string) (docurl.DocumentURL, bool) {
	raw := documentURI
	if raw == "" {
		canonical, _ := doc.Find(`link[rel="canonical"]`).First().Attr("href")
		ogURL, _ := doc.Find(`meta[property="og:url"]`).First().Attr("content")
		raw = docurl.DiscoverDocumentURL(canonical, ogURL)
	}
	if raw == "" {
		xlog.Debugf("article: no document URL available, links will be left unresolved")
		return docurl.DocumentURL{}, false
	}
	docURL, ok := docurl.New(raw)
	if !ok {
		xlog.Debugf("article: document URL %q did not parse as absolute, links will be left unresolved", raw)
	}
	return docURL, ok
}

func toPlainText(htmlFragment string) string {
	if htmlFragment == "" {
		return ""
	}
	converter := md.NewConverter("", true, nil)
	text, err := converter.ConvertString(htmlFragment)
	if err != nil {
		return ""
	}
	return text
}
