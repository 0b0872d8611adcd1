package converter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		t.Run(fmt.Sprintf("h%d", level), func(t *testing.T) {
			rawHTML := fmt.Sprintf("<body><h%d>Title</h%d></body>", level, level)
			result := convertBody(t, Config{}, rawHTML)

			assert.Equal(t, strings.Repeat("#", level)+" Title", result.Markdown)
		})
	}
}

func TestHeadingSetext(t *testing.T) {
	cfg := Config{HeadingStyle: HeadingSetext}

	result := convertBody(t, cfg, "<body><h1>Title</h1></body>")
	assert.Equal(t, "Title\n=====", result.Markdown)

	result = convertBody(t, cfg, "<body><h2>Section</h2></body>")
	assert.Equal(t, "Section\n-------", result.Markdown)

	// Setext has no form below level 2.
	result = convertBody(t, cfg, "<body><h3>Sub</h3></body>")
	assert.Equal(t, "### Sub", result.Markdown)
}

func TestHeadingSetextUnderlineMatchesRuneCount(t *testing.T) {
	cfg := Config{HeadingStyle: HeadingSetext}

	result := convertBody(t, cfg, "<body><h1>Café</h1></body>")
	assert.Equal(t, "Café\n====", result.Markdown)
}

func TestHeadingNormalizesText(t *testing.T) {
	result := convertBody(t, Config{}, "<body><h2>Spread\n  out   title</h2></body>")
	assert.Equal(t, "## Spread out title", result.Markdown)
}

func TestParagraphFormatting(t *testing.T) {
	tests := []struct {
		name     string
		rawHTML  string
		expected string
	}{
		{name: "plain", rawHTML: "<p>plain text</p>", expected: "plain text"},
		{name: "strong", rawHTML: "<p><strong>loud</strong></p>", expected: "**loud**"},
		{name: "b", rawHTML: "<p><b>loud</b></p>", expected: "**loud**"},
		{name: "em", rawHTML: "<p><em>soft</em></p>", expected: "*soft*"},
		{name: "i", rawHTML: "<p><i>soft</i></p>", expected: "*soft*"},
		{name: "code", rawHTML: "<p><code>x + y</code></p>", expected: "`x + y`"},
		{name: "unknown tag recursed", rawHTML: "<p><span>wrapped</span></p>", expected: "wrapped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertBody(t, Config{}, "<body>"+tt.rawHTML+"</body>")
			assert.Equal(t, tt.expected, result.Markdown)
		})
	}
}

func TestParagraphConcatenatesFragments(t *testing.T) {
	// Fragments are normalized individually and joined without separators.
	result := convertBody(t, Config{}, "<body><p>alpha <strong>beta</strong> gamma</p></body>")
	assert.Equal(t, "alpha**beta**gamma", result.Markdown)
}

func TestParagraphLineBreak(t *testing.T) {
	result := convertBody(t, Config{}, "<body><p>one<br>two</p></body>")
	assert.Equal(t, "one  \ntwo", result.Markdown)
}

func TestParagraphLink(t *testing.T) {
	cfg := Config{IncludeLinks: true}

	result := convertBody(t, cfg, `<body><p><a href="https://example.com">docs</a></p></body>`)
	assert.Equal(t, "[docs](https://example.com)", result.Markdown)
}

func TestParagraphLinkDefaultHref(t *testing.T) {
	cfg := Config{IncludeLinks: true}

	result := convertBody(t, cfg, "<body><p><a>docs</a></p></body>")
	assert.Equal(t, "[docs](#)", result.Markdown)
}

func TestParagraphLinksDisabled(t *testing.T) {
	result := convertBody(t, Config{}, `<body><p><a href="https://example.com">docs</a></p></body>`)
	assert.Equal(t, "docs", result.Markdown)
}

func TestEmptyParagraphOmitted(t *testing.T) {
	result := convertBody(t, Config{}, "<body><p>   </p><p>kept</p></body>")
	assert.Equal(t, "kept", result.Markdown)
}

func TestCodeBlockWithLanguage(t *testing.T) {
	result := convertBody(t, Config{}, `<body><pre><code class="language-python">print(1)</code></pre></body>`)
	assert.Equal(t, "```python\nprint(1)\n```", result.Markdown)
}

func TestCodeBlockLangPrefix(t *testing.T) {
	result := convertBody(t, Config{}, `<body><pre><code class="lang-js">let x</code></pre></body>`)
	assert.Equal(t, "```js\nlet x\n```", result.Markdown)
}

func TestCodeBlockNoLanguage(t *testing.T) {
	result := convertBody(t, Config{}, "<body><pre><code>x = 1</code></pre></body>")
	assert.Equal(t, "```\nx = 1\n```", result.Markdown)
}

func TestCodeBlockBarePre(t *testing.T) {
	result := convertBody(t, Config{}, "<body><pre>raw text</pre></body>")
	assert.Equal(t, "```\nraw text\n```", result.Markdown)
}

func TestCodeBlockIgnoresClassOnPre(t *testing.T) {
	// The language hint is read from the code element, not the pre.
	result := convertBody(t, Config{}, `<body><pre class="language-go"><code>x</code></pre></body>`)
	assert.Equal(t, "```\nx\n```", result.Markdown)
}

func TestCodeBlockPreservesWhitespace(t *testing.T) {
	result := convertBody(t, Config{}, "<body><pre><code>if x:\n    y()\n\n    z()</code></pre></body>")
	assert.Equal(t, "```\nif x:\n    y()\n\n    z()\n```", result.Markdown)
}

func TestCodeBlockCustomFence(t *testing.T) {
	cfg := Config{CodeBlockStyle: "~~~"}

	result := convertBody(t, cfg, `<body><pre><code class="language-python">print(1)</code></pre></body>`)
	assert.Equal(t, "~~~python\nprint(1)\n~~~", result.Markdown)
}

func TestBlockquoteParagraphs(t *testing.T) {
	result := convertBody(t, Config{}, `<body><blockquote>
<p>First quoted paragraph.</p>
<p>Second quoted paragraph.</p>
</blockquote></body>`)

	assert.Equal(t, "> First quoted paragraph.\n> Second quoted paragraph.", result.Markdown)
}

func TestBlockquoteBareText(t *testing.T) {
	result := convertBody(t, Config{}, "<body><blockquote>Plain quote</blockquote></body>")
	assert.Equal(t, "> Plain quote", result.Markdown)
}

func TestBlockquoteNestedList(t *testing.T) {
	result := convertBody(t, Config{}, "<body><blockquote><ul><li>a</li><li>b</li></ul></blockquote></body>")
	assert.Equal(t, "> - a\n> - b", result.Markdown)
}

func TestBlockquoteDropsUnhandledTags(t *testing.T) {
	result := convertBody(t, Config{}, "<body><blockquote><span>skip</span><p>kept</p></blockquote></body>")
	assert.Equal(t, "> kept", result.Markdown)
}

func TestBlockquoteEmpty(t *testing.T) {
	result := convertBody(t, Config{}, "<body><blockquote></blockquote></body>")
	assert.Empty(t, result.Markdown)
}
