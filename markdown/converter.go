// Package markdown renders HTML fragments as Markdown through a fixed,
// ordered chain of text rewrites. Rendering is a total function: any
// input, including non-HTML or badly broken markup, produces output
// without erroring.
//
// Stage order matters. Block-level constructs are converted before
// inline ones, inline ones before the unconditional tag strip, and
// entity decoding runs only once all tags are gone. Each stage is a pure
// string transform, which keeps them independently testable.
package markdown

import (
	"regexp"
	"strings"

	"github.com/blogkit/url2md"
)

// Ensure Converter implements url2md.Converter at compile time.
var _ url2md.Converter = (*Converter)(nil)

// Converter renders HTML to Markdown using the package's rewrite chain.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms HTML content into Markdown. It never fails; the
// error return exists only to satisfy url2md.Converter.
func (c *Converter) Convert(html string) (string, error) {
	return Render(html), nil
}

// Render applies the full rewrite chain to html.
func Render(html string) string {
	for _, s := range stages {
		html = s.apply(html)
	}
	return html
}

// stage is one named step of the rewrite chain.
type stage struct {
	name  string
	apply func(string) string
}

var stages = []stage{
	{"strip-scripts", scripts},
	{"headings", headings},
	{"code-blocks", codeBlocks},
	{"inline-code", replace(`(?is)<code[^>]*>(.*?)</code>`, "`${1}`")},
	{"emphasis", emphasis},
	{"links", replace(`(?is)<a[^>]*href="([^"]*)"[^>]*>(.*?)</a>`, "[${2}](${1})")},
	{"images", images},
	{"lists", lists},
	{"blockquotes", blockquotes},
	{"rules", replace(`(?i)<hr[^>]*/?>`, "\n---\n")},
	{"paragraphs", paragraphs},
	{"tables", tables},
	{"strip-tags", replace(`<[^>]+>`, "")},
	{"entities", entities},
	{"strip-archive-prefixes", replace(`https?://web\.archive\.org/web/\d+[a-z_]*/`, "")},
	{"normalize", normalize},
}

// replace builds a stage function from a single pattern/replacement pair.
func replace(pattern, repl string) func(string) string {
	re := regexp.MustCompile(pattern)
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}

var (
	scriptRE  = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRE   = regexp.MustCompile(`(?is)<style.*?</style>`)
	commentRE = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// scripts deletes script and style blocks (tags and content) along with
// HTML comments. Running first guarantees no executable content survives
// into later stages.
func scripts(s string) string {
	s = scriptRE.ReplaceAllString(s, "")
	s = styleRE.ReplaceAllString(s, "")
	return commentRE.ReplaceAllString(s, "")
}

type headingRule struct {
	re     *regexp.Regexp
	prefix string
}

var headingRules = func() []headingRule {
	rules := make([]headingRule, 0, 6)
	for level := 1; level <= 6; level++ {
		n := string(rune('0' + level))
		rules = append(rules, headingRule{
			re:     regexp.MustCompile(`(?is)<h` + n + `[^>]*>(.*?)</h` + n + `>`),
			prefix: strings.Repeat("#", level),
		})
	}
	return rules
}()

func headings(s string) string {
	for _, r := range headingRules {
		s = r.re.ReplaceAllString(s, "\n"+r.prefix+" ${1}\n")
	}
	return s
}

// Three cascading patterns, most specific first: a fenced block tagged
// with the language from the code element's class, an untagged
// <pre><code> fence, and finally any remaining bare <pre> block.
var (
	fencedLangRE  = regexp.MustCompile(`(?is)<pre[^>]*>\s*<code[^>]*class="[^"]*(?:language|lang|highlight)-(\w+)[^"]*"[^>]*>(.*?)</code>\s*</pre>`)
	fencedPlainRE = regexp.MustCompile(`(?is)<pre[^>]*>\s*<code[^>]*>(.*?)</code>\s*</pre>`)
	fencedPreRE   = regexp.MustCompile(`(?is)<pre[^>]*>(.*?)</pre>`)
)

func codeBlocks(s string) string {
	s = fencedLangRE.ReplaceAllString(s, "\n```${1}\n${2}\n```\n")
	s = fencedPlainRE.ReplaceAllString(s, "\n```\n${1}\n```\n")
	return fencedPreRE.ReplaceAllString(s, "\n```\n${1}\n```\n")
}

var emphasisRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?is)<strong[^>]*>(.*?)</strong>`), "**${1}**"},
	{regexp.MustCompile(`(?is)<b[^>]*>(.*?)</b>`), "**${1}**"},
	{regexp.MustCompile(`(?is)<em[^>]*>(.*?)</em>`), "*${1}*"},
	{regexp.MustCompile(`(?is)<i[^>]*>(.*?)</i>`), "*${1}*"},
	{regexp.MustCompile(`(?is)<del[^>]*>(.*?)</del>`), "~~${1}~~"},
}

func emphasis(s string) string {
	for _, r := range emphasisRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// Images handle the three attribute orderings seen in the wild:
// src before alt, alt before src, and src alone.
var (
	imgSrcAltRE = regexp.MustCompile(`(?is)<img[^>]*src="([^"]*)"[^>]*alt="([^"]*)"[^>]*/?>`)
	imgAltSrcRE = regexp.MustCompile(`(?is)<img[^>]*alt="([^"]*)"[^>]*src="([^"]*)"[^>]*/?>`)
	imgSrcRE    = regexp.MustCompile(`(?is)<img[^>]*src="([^"]*)"[^>]*/?>`)
)

func images(s string) string {
	s = imgSrcAltRE.ReplaceAllString(s, "![${2}](${1})")
	s = imgAltSrcRE.ReplaceAllString(s, "![${1}](${2})")
	return imgSrcRE.ReplaceAllString(s, "![](${1})")
}

var (
	listItemRE = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	listTagRE  = regexp.MustCompile(`(?i)</?[ou]l[^>]*>`)
)

// lists renders every list item as an unordered bullet. Ordered-list
// numbering is not reconstructed.
func lists(s string) string {
	s = listItemRE.ReplaceAllString(s, "- ${1}\n")
	return listTagRE.ReplaceAllString(s, "\n")
}

var blockquoteRE = regexp.MustCompile(`(?is)<blockquote[^>]*>(.*?)</blockquote>`)

func blockquotes(s string) string {
	return blockquoteRE.ReplaceAllStringFunc(s, func(m string) string {
		inner := blockquoteRE.FindStringSubmatch(m)[1]
		lines := strings.Split(inner, "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n") + "\n"
	})
}

var (
	brRE  = regexp.MustCompile(`(?i)<br[^>]*/?>`)
	paraRE = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	divRE  = regexp.MustCompile(`(?is)<div[^>]*>(.*?)</div>`)
)

// paragraphs wraps paragraph and div content in blank lines; the tags
// themselves carry no Markdown marker.
func paragraphs(s string) string {
	s = brRE.ReplaceAllString(s, "\n")
	s = paraRE.ReplaceAllString(s, "\n${1}\n")
	return divRE.ReplaceAllString(s, "\n${1}\n")
}

// Tables degrade to a pipe-delimited approximation: header and data
// cells are not distinguished and no separator row is synthesized.
var (
	cellRE     = regexp.MustCompile(`(?is)<t[hd][^>]*>(.*?)</t[hd]>`)
	rowEndRE   = regexp.MustCompile(`(?i)</tr>`)
	rowStartRE = regexp.MustCompile(`(?i)<tr[^>]*>`)
	tableTagRE = regexp.MustCompile(`(?i)</?(?:table|thead|tbody)[^>]*>`)
)

func tables(s string) string {
	s = cellRE.ReplaceAllString(s, "| ${1} ")
	s = rowEndRE.ReplaceAllString(s, "|\n")
	s = rowStartRE.ReplaceAllString(s, "")
	return tableTagRE.ReplaceAllString(s, "\n")
}

// entityTable is the fixed set of decoded entities, applied in order.
// The two hex entities restore CJK punctuation that some platforms
// encode; all other numeric entities are dropped silently.
var entityTable = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
	{"&#xff0c;", "，"},
	{"&#xff01;", "！"},
}

var numericEntityRE = regexp.MustCompile(`&#\d+;`)

func entities(s string) string {
	for _, e := range entityTable {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return numericEntityRE.ReplaceAllString(s, "")
}

var (
	trailingSpaceRE = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunRE      = regexp.MustCompile(`\n{3,}`)
)

func normalize(s string) string {
	s = trailingSpaceRE.ReplaceAllString(s, "")
	s = blankRunRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
