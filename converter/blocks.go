package converter

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// headingHandler converts h1-h6 elements.
type headingHandler struct{}

func (headingHandler) canHandle(n *html.Node) bool {
	name := nodeName(n)
	return len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6'
}

func (headingHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	level := int(nodeName(n)[1] - '0')
	text := s.textOf(n, cc)

	if s.config.HeadingStyle == HeadingSetext {
		// Setext only has underline forms for the first two levels.
		switch level {
		case 1:
			return text + "\n" + strings.Repeat("=", utf8.RuneCountInString(text)) + "\n\n", nil
		case 2:
			return text + "\n" + strings.Repeat("-", utf8.RuneCountInString(text)) + "\n\n", nil
		}
	}
	return strings.Repeat("#", level) + " " + text + "\n\n", nil
}

// paragraphHandler converts p elements, including their inline formatting
// and any images they contain.
type paragraphHandler struct {
	images *ImageFetcher
}

func (paragraphHandler) canHandle(n *html.Node) bool {
	return nodeName(n) == "p"
}

func (h paragraphHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	text, err := s.convertInline(ctx, cc, h.images, n)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return text + "\n\n", nil
}

// codeBlockHandler converts pre elements to fenced code blocks.
type codeBlockHandler struct{}

func (codeBlockHandler) canHandle(n *html.Node) bool {
	return nodeName(n) == "pre"
}

func (codeBlockHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	code := n
	language := ""
	if inner := findFirst(n, "code"); inner != nil {
		code = inner
		language = detectLanguage(inner)
	}
	body := s.textOf(code, cc.withPre())

	fence := s.config.CodeBlockStyle
	return fence + language + "\n" + body + "\n" + fence + "\n\n", nil
}

// detectLanguage reads a language hint from class attributes of the form
// language-x or lang-x.
func detectLanguage(n *html.Node) string {
	for _, class := range strings.Fields(dom.GetAttributeOr(n, "class", "")) {
		if lang, found := strings.CutPrefix(class, "language-"); found {
			return lang
		}
		if lang, found := strings.CutPrefix(class, "lang-"); found {
			return lang
		}
	}
	return ""
}

// blockquoteHandler converts blockquote elements by rendering each direct
// child through its own handler and prefixing every produced line with ">".
type blockquoteHandler struct{}

func (blockquoteHandler) canHandle(n *html.Node) bool {
	return nodeName(n) == "blockquote"
}

func (blockquoteHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	var lines []string
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if text := CleanText(child.Data, s.config.PreserveWhitespace); text != "" {
				lines = append(lines, "> "+text)
			}

		case html.ElementNode:
			h := s.registry.resolve(child)
			if h == nil {
				continue
			}
			content, err := h.convert(ctx, s, cc, child)
			if err != nil {
				return "", err
			}
			for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
				if line != "" {
					lines = append(lines, "> "+line)
				} else {
					lines = append(lines, ">")
				}
			}
		}
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n\n", nil
}
