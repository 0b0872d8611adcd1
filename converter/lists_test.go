package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnorderedList(t *testing.T) {
	result := convertBody(t, Config{}, "<body><ul><li>first</li><li>second</li></ul></body>")
	assert.Equal(t, "- first\n- second", result.Markdown)
}

func TestOrderedList(t *testing.T) {
	result := convertBody(t, Config{}, "<body><ol><li>first</li><li>second</li><li>third</li></ol></body>")
	assert.Equal(t, "1. first\n2. second\n3. third", result.Markdown)
}

func TestNestedListIndentation(t *testing.T) {
	rawHTML := "<body><ol><li>outer<ul><li>inner one</li><li>inner two</li></ul></li><li>second</li></ol></body>"
	result := convertBody(t, Config{}, rawHTML)

	expected := "1. outer \n" +
		"  - inner one\n" +
		"  - inner two\n" +
		"2. second"
	assert.Equal(t, expected, result.Markdown)
}

func TestDeeplyNestedList(t *testing.T) {
	rawHTML := "<body><ul><li>a<ul><li>b<ul><li>c</li></ul></li></ul></li></ul></body>"
	result := convertBody(t, Config{}, rawHTML)

	expected := "- a \n" +
		"  - b \n" +
		"    - c"
	assert.Equal(t, expected, result.Markdown)
}

func TestListItemInlineFormatting(t *testing.T) {
	// Item parts are joined with single spaces, unlike paragraph flow.
	result := convertBody(t, Config{}, "<body><ul><li>has <strong>bold</strong> words</li></ul></body>")
	assert.Equal(t, "- has **bold** words", result.Markdown)
}

func TestListItemLink(t *testing.T) {
	cfg := Config{IncludeLinks: true}

	result := convertBody(t, cfg, `<body><ul><li><a href="/docs">docs</a></li></ul></body>`)
	assert.Equal(t, "- [docs](/docs)", result.Markdown)
}

func TestListItemLinksDisabled(t *testing.T) {
	result := convertBody(t, Config{}, `<body><ul><li><a href="/docs">docs</a></li></ul></body>`)
	assert.Equal(t, "- docs", result.Markdown)
}

func TestListItemInlineCodeNormalized(t *testing.T) {
	result := convertBody(t, Config{}, "<body><ul><li>run <code>go   build</code></li></ul></body>")
	assert.Equal(t, "- run `go build`", result.Markdown)
}

func TestListItemWithImage(t *testing.T) {
	result := convertBody(t, Config{}, `<body><ul><li><img src="/i.png" alt="pic"></li></ul></body>`)
	assert.Equal(t, "- ![pic](/i.png)", result.Markdown)
}

func TestListItemWithBlockChild(t *testing.T) {
	result := convertBody(t, Config{}, "<body><ul><li><p>wrapped</p></li></ul></body>")
	assert.Equal(t, "- wrapped", result.Markdown)
}

func TestEmptyList(t *testing.T) {
	result := convertBody(t, Config{}, "<body><ul></ul></body>")
	assert.Empty(t, result.Markdown)
}

func TestSiblingListsDoNotShareDepth(t *testing.T) {
	rawHTML := "<body><ul><li>one</li></ul><ul><li>two</li></ul></body>"
	result := convertBody(t, Config{}, rawHTML)

	// The second list starts back at depth one, not nested under the first.
	assert.Equal(t, "- one\n\n- two", result.Markdown)
}
