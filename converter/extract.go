package converter

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// contentSelectors are tried in order to locate the main content container
// before falling back to body.
var contentSelectors = []string{"main", "article", `[role="main"]`, "#content", ".content"}

// extractContent parses raw HTML and returns the subtree conversion should
// start from. Script and style elements are stripped up front; with
// removeNavigation set, page chrome (nav, header, footer, aside) is
// stripped as well.
func extractContent(rawHTML string, removeNavigation bool) (*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style").Remove()
	if removeNavigation {
		doc.Find("nav, header, footer, aside").Remove()
	}

	for _, selector := range contentSelectors {
		if match := doc.Find(selector); match.Length() > 0 {
			return match.Get(0), nil
		}
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body.Get(0), nil
	}
	return doc.Get(0), nil
}
