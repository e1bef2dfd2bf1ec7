package metadata

import "strings"

type metaResult struct {
	title       string
	description string
	author      string
	siteName    string
	published   string
}

var titleKeys = []string{"dc:title", "dcterm:title", "og:title", "twitter:title", "weibo:article:title", "weibo:webpage:title", "title"}
var descriptionKeys = []string{"dc:description", "dcterm:description", "og:description", "twitter:description", "weibo:article:description", "weibo:webpage:description", "description"}
var authorKeys = []string{"dc:creator", "dcterm:creator", "author"}
var siteNameKeys = []string{"og:site_name"}
var publishedKeys = []string{"article:published_time", "parsely-pub-date", "article:modified_time"}

// harvestMeta scans every <meta> element, builds a normalised key->content
// map, then for each recognised field picks the most verbose value among
// its key group (word count first, string length second).
func harvestMeta(doc *document) metaResult {
	values := make(map[string]string)
	doc.Find("meta").Each(func(_ int, sel *selection) {
		key, ok := sel.Attr("property")
		if !ok || key == "" {
			key, ok = sel.Attr("name")
		}
		if !ok || key == "" {
			return
		}
		content, ok := sel.Attr("content")
		if !ok || content == "" {
			return
		}
		key = normalizeMetaKey(key)
		if _, exists := values[key]; !exists {
			values[key] = content
		}
	})

	return metaResult{
		title:       mostVerbose(values, titleKeys),
		description: mostVerbose(values, descriptionKeys),
		author:      mostVerbose(values, authorKeys),
		siteName:    mostVerbose(values, siteNameKeys),
		published:   mostVerbose(values, publishedKeys),
	}
}

func normalizeMetaKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, ".", ":")
	key = strings.Join(strings.Fields(key), "")
	return key
}

func mostVerbose(values map[string]string, keys []string) string {
	best := ""
	bestWords, bestLen := -1, -1
	for _, k := range keys {
		v, ok := values[k]
		if !ok || v == "" {
			continue
		}
		words := len(strings.Fields(v))
		if words > bestWords || (words == bestWords && len(v) > bestLen) {
			best, bestWords, bestLen = v, words, len(v)
		}
	}
	return best
}
