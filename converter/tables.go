package converter

import (
	"context"
	"strings"

	"golang.org/x/net/html"
)

// tableHandler converts table elements to GFM pipe tables. Cell content is
// flattened to normalized text; block structure inside cells is not
// preserved.
type tableHandler struct{}

func (tableHandler) canHandle(n *html.Node) bool {
	return nodeName(n) == "table"
}

func (tableHandler) convert(ctx context.Context, s *state, cc Context, n *html.Node) (string, error) {
	cc = cc.withTable()
	var rows []string

	// Header rows come from th cells under thead; a thead without th cells
	// produces no header and no separator.
	if thead := findFirst(n, "thead"); thead != nil {
		var header []string
		for _, th := range findAll(thead, "th") {
			header = append(header, s.textOf(th, cc))
		}
		if len(header) > 0 {
			rows = append(rows, "| "+strings.Join(header, " | ")+" |")
			separators := make([]string, len(header))
			for i := range separators {
				separators[i] = "---"
			}
			rows = append(rows, "| "+strings.Join(separators, " | ")+" |")
		}
	}

	// Body rows are the direct tr children of tbody, or of the table itself
	// when the parser produced no tbody.
	body := n
	if tbody := findFirst(n, "tbody"); tbody != nil {
		body = tbody
	}
	for _, tr := range directChildren(body, "tr") {
		var cells []string
		for _, cell := range findAll(tr, "td", "th") {
			cells = append(cells, s.textOf(cell, cc))
		}
		if len(cells) > 0 {
			rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
		}
	}

	if len(rows) == 0 {
		return "", nil
	}
	return strings.Join(rows, "\n") + "\n\n", nil
}
