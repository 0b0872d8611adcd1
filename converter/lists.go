package converter

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// listHandler converts ul and ol elements, tracking nesting depth through
// the context's list stack.
type listHandler struct {
	images *ImageFetcher
}

func (listHandler) canHandle(n *html.Node) bool {
	name := nodeName(n)
	return name == "ul" || name == "ol"
}

func (h listHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	kind := listUnordered
	if nodeName(n) == "ol" {
		kind = listOrdered
	}
	cc = cc.pushList(kind)
	indent := strings.Repeat("  ", cc.listDepth()-1)

	var items []string
	for i, li := range directChildren(n, "li") {
		marker := "-"
		if kind == listOrdered {
			marker = strconv.Itoa(i+1) + "."
		}
		content, err := h.item(ctx, s, cc, li)
		if err != nil {
			return "", err
		}
		items = append(items, indent+marker+" "+content)
	}
	return strings.Join(items, "\n") + "\n\n", nil
}

// item flattens one li: text fragments and inline formatting joined with
// single spaces, block children rendered through their handlers, nested
// lists placed on their own indented lines.
func (h listHandler) item(ctx context.Context, s *state, cc Context, li *html.Node) (string, error) {
	var parts []string
	for child := li.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if text := CleanText(child.Data, s.config.PreserveWhitespace); text != "" {
				parts = append(parts, text)
			}

		case html.ElementNode:
			switch nodeName(child) {
			case "ul", "ol":
				nested, err := h.convert(ctx, s, cc, child)
				if err != nil {
					return "", err
				}
				parts = append(parts, "\n"+strings.TrimRightFunc(nested, unicode.IsSpace))
			case "img":
				md, err := s.renderImage(ctx, cc, h.images, child)
				if err != nil {
					return "", err
				}
				parts = append(parts, md)
			default:
				if block := s.registry.resolve(child); block != nil {
					content, err := block.convert(ctx, s, cc, child)
					if err != nil {
						return "", err
					}
					if content = strings.TrimSpace(content); content != "" {
						parts = append(parts, content)
					}
					continue
				}
				parts = append(parts, h.inlineFallback(s, cc, child))
			}
		}
	}
	return strings.Join(parts, " "), nil
}

// inlineFallback renders an element with no block handler as inline
// markdown; anything unrecognized degrades to its normalized text.
func (listHandler) inlineFallback(s *state, cc Context, n *html.Node) string {
	switch nodeName(n) {
	case "strong", "b":
		return "**" + s.textOf(n, cc) + "**"
	case "em", "i":
		return "*" + s.textOf(n, cc) + "*"
	case "code":
		return "`" + s.textOf(n, cc) + "`"
	case "a":
		if s.config.IncludeLinks {
			return "[" + s.textOf(n, cc) + "](" + dom.GetAttributeOr(n, "href", "#") + ")"
		}
		return s.textOf(n, cc)
	default:
		return s.textOf(n, cc)
	}
}
