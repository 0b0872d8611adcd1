package converter

import (
	"regexp"
	"strings"
)

var (
	excessBlankLines = regexp.MustCompile(`\n{3,}`)
	headingSpacing   = regexp.MustCompile(`([^\n])\n(#{1,6} )`)
	bulletItemLine   = regexp.MustCompile(`^\s*[-*+]\s`)
	orderedItemLine  = regexp.MustCompile(`^\s*\d+\.\s`)
)

// postProcess normalizes assembled markdown: collapses runs of blank lines,
// guarantees a blank line before heading lines, reflows prose to the
// configured width and trims the ends. Structural lines are never reflowed:
// fences and everything between them, table rows, headings, blockquotes and
// list items pass through verbatim regardless of length.
func (c *Converter) postProcess(markdown string) string {
	markdown = excessBlankLines.ReplaceAllString(markdown, "\n\n")
	markdown = headingSpacing.ReplaceAllString(markdown, "$1\n\n$2")

	if c.config.LineWidth > 0 {
		lines := strings.Split(markdown, "\n")
		wrapped := make([]string, 0, len(lines))
		inFence := false
		for _, line := range lines {
			switch {
			case strings.HasPrefix(line, c.config.CodeBlockStyle):
				inFence = !inFence
				wrapped = append(wrapped, line)
			case inFence,
				strings.HasPrefix(line, "|"),
				strings.HasPrefix(line, "#"),
				strings.HasPrefix(line, ">"),
				bulletItemLine.MatchString(line),
				orderedItemLine.MatchString(line):
				wrapped = append(wrapped, line)
			default:
				wrapped = append(wrapped, WrapText(line, c.config.LineWidth))
			}
		}
		markdown = strings.Join(wrapped, "\n")
	}

	return strings.TrimSpace(markdown)
}
