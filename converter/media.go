package converter

import (
	"context"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// imageHandler converts bare img elements, ones standing outside paragraph
// and list flow.
type imageHandler struct {
	images *ImageFetcher
}

func (imageHandler) canHandle(n *html.Node) bool {
	return nodeName(n) == "img"
}

func (h imageHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	if dom.GetAttributeOr(n, "src", "") == "" {
		s.addWarning(WarningMissingAttribute, "img", "image element has no src")
		return "", nil
	}
	md, err := s.renderImage(ctx, cc, h.images, n)
	if err != nil {
		return "", err
	}
	return md + "\n\n", nil
}

// renderImage produces inline image markup for n. With downloading enabled
// the src is resolved through the fetcher, and a degraded resolution is
// recorded as a warning against this conversion. The returned error is
// non-nil only on context cancellation.
func (s *state) renderImage(ctx context.Context, cc Context, images *ImageFetcher, n *html.Node) (string, error) {
	alt := dom.GetAttributeOr(n, "alt", "")
	src := dom.GetAttributeOr(n, "src", "")

	if src == "" || !s.config.DownloadImages || images == nil {
		return "![" + alt + "](" + src + ")", nil
	}

	res, err := images.resolve(ctx, src, cc.BaseURL)
	if err != nil {
		return "", err
	}
	if res.warning != "" {
		s.addWarning(res.warning, resolveURL(cc.BaseURL, src), res.message)
	}
	ref := res.ref
	if ref == "" {
		ref = src
	}
	return "![" + alt + "](" + ref + ")", nil
}
