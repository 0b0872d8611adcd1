package converter

import (
	"context"

	"golang.org/x/net/html"
)

// handler converts one kind of element to markdown. canHandle is a cheap
// tag predicate; convert may perform network I/O through an injected
// fetcher and must honor ctx cancellation.
type handler interface {
	canHandle(n *html.Node) bool
	convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error)
}

// registry resolves elements to handlers, first match wins. Elements with
// no handler fall back to the walker's generic recursive descent.
type registry struct {
	handlers []handler
}

// newRegistry wires the fixed handler chain, injecting the shared image
// fetcher into every handler that materializes images.
func newRegistry(images *ImageFetcher) *registry {
	return &registry{handlers: []handler{
		headingHandler{},
		paragraphHandler{images: images},
		listHandler{images: images},
		codeBlockHandler{},
		tableHandler{},
		blockquoteHandler{},
		imageHandler{images: images},
	}}
}

// resolve returns the first handler claiming n, or nil.
func (r *registry) resolve(n *html.Node) handler {
	for _, h := range r.handlers {
		if h.canHandle(n) {
			return h
		}
	}
	return nil
}
