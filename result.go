package artscr

import (
	"fmt"
	"strings"

	"github.com/artscr/artscr/pkg/article"
)

// Article is the extracted article record. All fields are read-only and
// represent the parsed result of a single extraction run.
type Article = article.Article

// FormatMarkdown renders an Article as Markdown with a metadata header,
// for saving extraction output in a human-readable format.
//
// Example output:
//
//	# Article Title
//
//	## Metadata
//
//	**Byline:** Jane Doe
//	**Date:** 2024-01-01
//	**Site:** Example Site
//	**Length:** 1234
//
//	## Content
//
//	Article content here...
func FormatMarkdown(a *Article) string {
	if a == nil {
		return ""
	}

	var sb strings.Builder

	if a.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(a.Title)
		sb.WriteString("\n\n")
	}

	hasMetadata := a.Byline != "" || a.Published != nil || a.SiteName != "" || a.Language != ""
	if hasMetadata {
		sb.WriteString("## Metadata\n\n")

		if a.Byline != "" {
			sb.WriteString("**Byline:** ")
			sb.WriteString(a.Byline)
			sb.WriteString("\n")
		}
		if a.Published != nil {
			sb.WriteString("**Date:** ")
			sb.WriteString(a.Published.Format("2006-01-02"))
			sb.WriteString("\n")
		}
		if a.SiteName != "" {
			sb.WriteString("**Site:** ")
			sb.WriteString(a.SiteName)
			sb.WriteString("\n")
		}
		if a.Language != "" {
			sb.WriteString("**Language:** ")
			sb.WriteString(a.Language)
			sb.WriteString("\n")
		}
		if a.Length > 0 {
			sb.WriteString("**Length:** ")
			sb.WriteString(fmt.Sprintf("%d", a.Length))
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
	}

	if a.Excerpt != "" {
		sb.WriteString("## Excerpt\n\n")
		sb.WriteString(a.Excerpt)
		sb.WriteString("\n\n")
	}

	if a.PlainText != "" {
		sb.WriteString("## Content\n\n")
		sb.WriteString(a.PlainText)
	}

	return sb.String()
}

// HasByline reports whether byline information is available.
func HasByline(a *Article) bool { return a != nil && a.Byline != "" }

// HasDate reports whether a publication date is available.
func HasDate(a *Article) bool { return a != nil && a.Published != nil }
