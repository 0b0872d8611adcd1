package converter

import (
	"strings"
	"unicode/utf8"
)

// CleanText collapses runs of whitespace to single spaces and trims the
// ends. With preserveWhitespace set it returns the text untouched.
func CleanText(text string, preserveWhitespace bool) string {
	if preserveWhitespace {
		return text
	}
	return strings.Join(strings.Fields(text), " ")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`{`, `\{`,
	`}`, `\}`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`!`, `\!`,
	`<`, `\<`,
	`>`, `\>`,
)

// EscapeMarkdown backslash-escapes every character that could otherwise be
// read as Markdown syntax.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// WrapText greedily wraps each line of text to the given width, measured in
// runes. Lines already within the width pass through verbatim, preserving
// their original spacing; width <= 0 disables wrapping. A single word longer
// than the width is kept whole on its own line.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(paragraph) <= width {
			lines = append(lines, paragraph)
			continue
		}

		var current []string
		length := 0
		for _, word := range strings.Fields(paragraph) {
			wordLength := utf8.RuneCountInString(word)
			// Joining current with the next word costs len(current)
			// separator spaces.
			if len(current) > 0 && length+wordLength+len(current) > width {
				lines = append(lines, strings.Join(current, " "))
				current = current[:0]
				length = 0
			}
			current = append(current, word)
			length += wordLength
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
	}

	return strings.Join(lines, "\n")
}
