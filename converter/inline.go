package converter

import (
	"context"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// convertInline renders the children of n as paragraph-style inline
// markdown: formatting tags become their delimiters, anchors honor
// IncludeLinks, images resolve through the fetcher, and unrecognized tags
// are entered recursively. Fragments are concatenated without separators.
func (s *state) convertInline(ctx context.Context, cc Context, images *ImageFetcher, n *html.Node) (string, error) {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			sb.WriteString(CleanText(child.Data, s.config.PreserveWhitespace))

		case html.ElementNode:
			switch nodeName(child) {
			case "strong", "b":
				sb.WriteString("**" + s.textOf(child, cc) + "**")
			case "em", "i":
				sb.WriteString("*" + s.textOf(child, cc) + "*")
			case "code":
				sb.WriteString("`" + s.textOf(child, cc) + "`")
			case "a":
				if s.config.IncludeLinks {
					href := dom.GetAttributeOr(child, "href", "#")
					sb.WriteString("[" + s.textOf(child, cc) + "](" + href + ")")
					continue
				}
				// Links disabled: keep the anchor's inline content bare.
				inner, err := s.convertInline(ctx, cc, images, child)
				if err != nil {
					return "", err
				}
				sb.WriteString(inner)
			case "br":
				sb.WriteString("  \n")
			case "img":
				md, err := s.renderImage(ctx, cc, images, child)
				if err != nil {
					return "", err
				}
				sb.WriteString(md)
			default:
				inner, err := s.convertInline(ctx, cc, images, child)
				if err != nil {
					return "", err
				}
				sb.WriteString(inner)
			}
		}
	}
	return sb.String(), nil
}

// textOf extracts an element's full descendant text, normalized unless the
// context or configuration preserves whitespace.
func (s *state) textOf(n *html.Node, cc Context) string {
	text := textContent(n)
	if cc.InPre {
		return text
	}
	return CleanText(text, s.config.PreserveWhitespace)
}
