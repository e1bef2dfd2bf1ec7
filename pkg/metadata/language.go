package metadata

import "strings"

var languageMetaKeys = []string{"og:locale", "content-language", "dc:language", "language"}

// detectLanguage prefers the <html lang> attribute, falling back to a
// handful of well-known meta tags.
func detectLanguage(doc *document) string {
	if lang, ok := doc.Find("html").Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		return strings.TrimSpace(lang)
	}

	values := make(map[string]string)
	doc.Find("meta").Each(func(_ int, sel *selection) {
		key, ok := sel.Attr("property")
		if !ok || key == "" {
			key, ok = sel.Attr("name")
		}
		if !ok {
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

	for _, key := range languageMetaKeys {
		if v, ok := values[key]; ok && v != "" {
			return v
		}
	}
	return ""
}
