// Package converter turns HTML documents into GitHub-flavored Markdown.
//
// Conversion walks the parsed document tree and dispatches each element to
// the first matching handler in a fixed chain (headings, paragraphs, lists,
// code blocks, tables, blockquotes, bare images); elements nobody claims
// are entered recursively so their text still flows into the output. When
// image downloading is enabled, remote images referenced by the document
// are materialized into a local folder and links are rewritten to point at
// the downloaded copies.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

// Converter turns HTML documents into Markdown. A Converter is safe for
// concurrent use: per-conversion state lives on the call stack, and the
// shared image fetcher synchronizes internally.
type Converter struct {
	config   Config
	logger   *log.Logger
	images   *ImageFetcher
	registry *registry
}

// New creates a Converter from cfg with defaults applied.
func New(cfg Config) (*Converter, error) {
	cfg = cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	images := newImageFetcher(cfg, logger)
	return &Converter{
		config:   cfg,
		logger:   logger,
		images:   images,
		registry: newRegistry(images),
	}, nil
}

// state carries conversion-scoped accumulation: the fixed wiring plus the
// warnings gathered while walking one document.
type state struct {
	config   Config
	logger   *log.Logger
	registry *registry
	warnings []Warning
}

func (s *state) addWarning(warningType WarningType, subject, message string) {
	s.logger.Debug("recorded warning", "type", warningType, "subject", subject, "message", message)
	s.warnings = append(s.warnings, Warning{
		Type:    warningType,
		Subject: subject,
		Message: message,
	})
}

// nonContentTags never contribute document text; the walker skips them
// instead of recursing.
var nonContentTags = map[string]bool{
	"script": true,
	"style":  true,
	"meta":   true,
	"link":   true,
}

// isHidden reports whether an element is suppressed via an inline
// display:none declaration, whatever whitespace the declaration carries.
func isHidden(n *html.Node) bool {
	style := strings.Join(strings.Fields(dom.GetAttributeOr(n, "style", "")), "")
	return strings.Contains(style, "display:none")
}

// walk converts every child of n in document order. Handler-matched
// elements produce their markdown; unmatched elements are entered
// recursively unless hidden or non-content. Cancellation is checked per
// node so a conversion stops promptly mid-document.
func (s *state) walk(ctx context.Context, cc Context, n *html.Node) (string, error) {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		switch child.Type {
		case html.TextNode:
			text := CleanText(child.Data, s.config.PreserveWhitespace)
			if strings.TrimSpace(text) != "" {
				sb.WriteString(text)
			}

		case html.ElementNode:
			if isHidden(child) {
				continue
			}
			if h := s.registry.resolve(child); h != nil {
				content, err := h.convert(ctx, s, cc, child)
				if err != nil {
					return "", err
				}
				sb.WriteString(content)
				continue
			}
			if nonContentTags[nodeName(child)] {
				continue
			}
			content, err := s.walk(ctx, cc, child)
			if err != nil {
				return "", err
			}
			if strings.TrimSpace(content) != "" {
				sb.WriteString(content)
			}
		}
	}
	return sb.String(), nil
}

// Convert renders the children of root to Markdown. baseURL resolves
// relative image references; pass "" when unknown. root is typically the
// container located by ConvertHTML but may be any subtree.
func (c *Converter) Convert(ctx context.Context, root *DocumentNode, baseURL string) (Result, error) {
	if root == nil {
		return Result{}, errors.New("nil document root")
	}

	s := &state{config: c.config, logger: c.logger, registry: c.registry}
	markdown, err := s.walk(ctx, newContext(baseURL), root)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Markdown: c.postProcess(markdown),
		Warnings: s.warnings,
	}, nil
}

// ConvertHTML parses raw HTML, locates the main content container and
// converts it. baseURL resolves relative image references.
func (c *Converter) ConvertHTML(ctx context.Context, rawHTML, baseURL string) (Result, error) {
	root, err := extractContent(rawHTML, c.config.RemoveNavigation)
	if err != nil {
		return Result{}, err
	}
	return c.Convert(ctx, root, baseURL)
}

// ConvertURL fetches a page and converts it, using the page URL as the base
// for relative references. The image fetcher's connections are released
// before returning, whether or not the conversion succeeded.
func (c *Converter) ConvertURL(ctx context.Context, pageURL string) (Result, error) {
	defer c.images.Close()

	rawHTML, err := fetchPage(ctx, pageURL, c.config)
	if err != nil {
		c.logger.Error("page fetch failed", "url", pageURL, "error", err)
		return Result{}, err
	}
	return c.ConvertHTML(ctx, rawHTML, pageURL)
}

// ConvertFile reads an HTML file and converts it. An empty baseURL defaults
// to the file's own URI so sibling assets resolve.
func (c *Converter) ConvertFile(ctx context.Context, path, baseURL string) (Result, error) {
	defer c.images.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if baseURL == "" {
		if abs, err := filepath.Abs(path); err == nil {
			baseURL = "file://" + filepath.ToSlash(abs)
		}
	}
	return c.ConvertHTML(ctx, string(data), baseURL)
}

// Close releases the image fetcher's network resources. The Converter
// remains usable afterwards; resources are recreated on demand.
func (c *Converter) Close() error {
	return c.images.Close()
}
