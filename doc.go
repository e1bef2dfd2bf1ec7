// Package artscr provides a Readability.js-style article extraction
// library: it takes a parsed HTML document and returns the clean,
// structured article content a reader-mode view would show, discarding
// navigation, ads, and other boilerplate.
//
// # Basic Usage
//
// Parse pre-fetched HTML into an Article:
//
//	art, err := artscr.Parse(htmlString, "https://example.com/article")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(art.Title)
//	fmt.Println(art.ContentHTML)
//
// TryParse reports success with a bool instead of failing with an error:
//
//	art, ok := artscr.TryParse(htmlString, "https://example.com/article")
//	if !ok {
//	    // no article-shaped content found
//	}
//
// # Configuration
//
// Extraction can be tuned with functional options:
//
//	art, err := artscr.Parse(htmlString, url,
//	    artscr.WithCharThreshold(250),
//	    artscr.WithClassesToPreserve([]string{"caption", "credit"}),
//	)
//
// # Error Handling
//
// Parse fails with exactly one recoverable error kind: no article-shaped
// content was found.
//
//	art, err := artscr.Parse(htmlString, url)
//	if err != nil {
//	    if errors.Is(err, artscr.ErrArticleNotFound) {
//	        // nothing worth extracting on this page
//	    }
//	}
//
// # Thread Safety
//
// Parse and TryParse are pure functions over the document they're given;
// they hold no shared state and are safe to call concurrently.
package artscr
