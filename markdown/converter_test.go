package markdown_test

import (
	"strings"
	"testing"

	"github.com/blogkit/url2md"
	"github.com/blogkit/url2md/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements url2md.Converter at compile time.
var _ url2md.Converter = (*markdown.Converter)(nil)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("converts headings at every level", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<h1>One</h1><h2>Two</h2><h6>Six</h6>`)
		assert.Contains(t, got, "# One")
		assert.Contains(t, got, "## Two")
		assert.Contains(t, got, "###### Six")
	})

	t.Run("converts fenced code with language from class", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<pre><code class="hljs language-go">fmt.Println("hi")</code></pre>`)
		assert.Contains(t, got, "```go\nfmt.Println(\"hi\")\n```")
	})

	t.Run("converts plain pre-code to an untagged fence", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<pre><code>x := 1</code></pre>`)
		assert.True(t, strings.HasPrefix(got, "```\n"), got)
		assert.Contains(t, got, "x := 1")
	})

	t.Run("converts bare pre to an untagged fence", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<pre>raw block</pre>`)
		assert.Contains(t, got, "```\nraw block\n```")
	})

	t.Run("converts standalone inline code", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<p>Run <code>go build</code> first.</p>`)
		assert.Contains(t, got, "Run `go build` first.")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<strong>s</strong> <b>b</b> <em>e</em> <i>i</i> <del>d</del>`)
		assert.Contains(t, got, "**s** **b** *e* *i* ~~d~~")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<a href="https://example.com/a">Example</a>`)
		assert.Equal(t, "[Example](https://example.com/a)", got)
	})

	t.Run("converts images in all attribute orderings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "![pic](a.png)", markdown.Render(`<img src="a.png" alt="pic">`))
		assert.Equal(t, "![pic](b.png)", markdown.Render(`<img alt="pic" src="b.png"/>`))
		assert.Equal(t, "![](c.png)", markdown.Render(`<img src="c.png">`))
	})

	t.Run("renders all list items as bullets", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<ol><li>first</li><li>second</li></ol>`)
		assert.Equal(t, "- first\n- second", got)
	})

	t.Run("prefixes every blockquote line", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render("<blockquote>one\ntwo</blockquote>")
		assert.Contains(t, got, "> one\n> two")
	})

	t.Run("converts horizontal rules", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<p>a</p><hr/><p>b</p>`)
		assert.Contains(t, got, "---")
	})

	t.Run("approximates tables with pipes", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>`)
		assert.Contains(t, got, "| A | B |")
		assert.Contains(t, got, "| 1 | 2 |")
	})

	t.Run("decodes the fixed entity set", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;&nbsp;f`)
		assert.Equal(t, `a & b <c> "d" 'e' f`, got)
	})

	t.Run("restores CJK punctuation entities", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`你好&#xff0c;世界&#xff01;`)
		assert.Equal(t, "你好，世界！", got)
	})

	t.Run("drops unrecognized numeric entities silently", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`a&#12345;b`)
		assert.Equal(t, "ab", got)
	})

	t.Run("strips archive mirror prefixes anywhere in text", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<a href="https://web.archive.org/web/20240101im_/https://example.com/p">x</a>`)
		assert.Equal(t, "[x](https://example.com/p)", got)
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render("line1   \n\n\n\n\nline2\n\n")
		assert.Equal(t, "line1\n\nline2", got)
	})
}

func TestRenderIsTotal(t *testing.T) {
	t.Parallel()

	t.Run("never includes script or style content", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<script>alert("x")</script><style>.a{color:red}</style><p>hello</p>`)
		assert.Equal(t, "hello", got)
		assert.NotContains(t, got, "alert")
		assert.NotContains(t, got, "color")
	})

	t.Run("drops HTML comments", func(t *testing.T) {
		t.Parallel()

		got := markdown.Render(`<!-- secret -->visible`)
		assert.Equal(t, "visible", got)
	})

	t.Run("survives arbitrary non-HTML input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"",
			"plain text, no markup",
			"<<<>>><<p",
			strings.Repeat("<div>", 2000),
			"\x00\x01\x02 binary-ish",
			"<pre><code>unterminated",
		}
		for _, in := range inputs {
			assert.NotPanics(t, func() { markdown.Render(in) })
		}
	})

	t.Run("converter never returns an error", func(t *testing.T) {
		t.Parallel()

		conv := markdown.NewConverter()
		got, err := conv.Convert("<p>ok</p>")
		require.NoError(t, err)
		assert.Equal(t, "ok", got)

		got, err = conv.Convert("")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
