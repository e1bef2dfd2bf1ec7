package metadata

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/artscr/artscr/internal/xlog"
	"github.com/artscr/artscr/pkg/tokenize"
)

// articleTypes is the JSON-LD @type allowlist: the 7 base Article-family
// types plus 13 recognised subtypes.
var articleTypes = map[string]bool{
	"Article":        true,
	"NewsArticle":    true,
	"BlogPosting":    true,
	"ScholarlyArticle": true,
	"TechArticle":    true,
	"Report":         true,
	"APIReference":   true,

	"AdvertiserContentArticle": true,
	"SatiricalArticle":         true,
	"SocialMediaPosting":       true,
	"AnalysisNewsArticle":      true,
	"AskPublicNewsArticle":     true,
	"BackgroundNewsArticle":    true,
	"OpinionNewsArticle":       true,
	"ReportageNewsArticle":     true,
	"ReviewNewsArticle":        true,
	"MedicalScholarlyArticle":  true,
	"DiscussionForumPosting":   true,
	"LiveBlogPosting":          true,
	"Correction":               true,
}

type jsonLDResult struct {
	title       string
	author      string
	description string
	siteName    string
	published   *time.Time
}

// harvestJSONLD scans <script type="application/ld+json"> blocks per §4.6:
// the first block whose @context ends with "://schema.org" and that yields an
// article-typed item is used. A block carrying an @graph array yields the
// first article-typed item within it; any other block must itself carry an
// article @type. Blocks that fail either check are skipped.
func harvestJSONLD(doc *document, htmlTitle string) jsonLDResult {
	var result jsonLDResult
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}

		var raw interface{}
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			xlog.Debugf("metadata: skipping malformed JSON-LD block: %v", err)
			return true
		}
		block, ok := raw.(map[string]interface{})
		if !ok {
			return true
		}

		ctx, _ := block["@context"].(string)
		if !strings.HasSuffix(ctx, "://schema.org") {
			return true
		}

		item := block
		if graph, ok := block["@graph"].([]interface{}); ok {
			item = firstArticleTypedItem(graph)
			if item == nil {
				return true
			}
		} else if !typeMatches(block["@type"]) {
			return true
		}

		result = extractFromItem(item, htmlTitle)
		return false
	})
	return result
}

func firstArticleTypedItem(graph []interface{}) map[string]interface{} {
	for _, entry := range graph {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if typeMatches(m["@type"]) {
			return m
		}
	}
	return nil
}

func typeMatches(v interface{}) bool {
	switch t := v.(type) {
	case string:
		return articleTypes[t]
	case []interface{}:
		for _, elem := range t {
			if s, ok := elem.(string); ok && articleTypes[s] {
				return true
			}
		}
	}
	return false
}

func extractFromItem(item map[string]interface{}, htmlTitle string) jsonLDResult {
	name, _ := item["name"].(string)
	headline, _ := item["headline"].(string)

	r := jsonLDResult{
		title:       chooseTitle(name, headline, htmlTitle),
		author:      extractAuthorName(item["author"]),
		description: firstNonEmptyString(item["description"], item["summary"]),
	}

	r.siteName = nestedName(item["publisher"])
	if r.siteName == "" {
		r.siteName = nestedName(item["creator"])
	}

	dateStr := firstNonEmptyString(item["datePublished"], item["dateCreated"])
	r.published = parsePublished(dateStr)

	return r
}

// chooseTitle prefers name, swapping to headline only when headline is a
// close Jaro-Winkler match to the HTML title and name is not.
func chooseTitle(name, headline, htmlTitle string) string {
	if name == "" {
		return headline
	}
	if headline == "" {
		return name
	}
	headlineClose := tokenize.JaroWinklerSimilarity(headline, htmlTitle) >= 0.75
	nameClose := tokenize.JaroWinklerSimilarity(name, htmlTitle) >= 0.75
	switch {
	case headlineClose && !nameClose:
		return headline
	}
	return name
}

func extractAuthorName(v interface{}) string {
	switch t := v.(type) {
	case map[string]interface{}:
		if name, ok := t["name"].(string); ok {
			return name
		}
	case []interface{}:
		var names []string
		for _, entry := range t {
			if m, ok := entry.(map[string]interface{}); ok {
				if name, ok := m["name"].(string); ok && name != "" {
					names = append(names, name)
				}
			} else if s, ok := entry.(string); ok && s != "" {
				names = append(names, s)
			}
		}
		return strings.Join(names, ", ")
	case string:
		return t
	}
	return ""
}

func nestedName(v interface{}) string {
	if m, ok := v.(map[string]interface{}); ok {
		if name, ok := m["name"].(string); ok {
			return name
		}
	}
	return ""
}

func firstNonEmptyString(vals ...interface{}) string {
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// parsePublished wraps go-dateparser to turn an arbitrary date string (RSS,
// ISO 8601, or a loose natural-language form) into a time.Time.
func parsePublished(s string) *time.Time {
	if s == "" {
		return nil
	}
	parsed, err := dateparser.Parse(nil, s)
	if err != nil || parsed.Time.IsZero() {
		xlog.Debugf("metadata: unparseable published date %q: %v", s, err)
		return nil
	}
	t := parsed.Time
	return &t
}
