// Package extract implements the article extraction pipeline: it locates
// the title, description, and body of a fetched page using per-platform
// CSS selectors applied directly to the raw markup, and composes the
// full URL-to-Markdown flow as an ArticleService.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/blogkit/url2md"
	"github.com/blogkit/url2md/platform"
	"github.com/blogkit/url2md/selector"
)

// minContentText is the quality gate for content selectors: a match
// whose stripped text is not longer than this is rejected in favor of
// the next candidate, even when it came from a platform-specific
// selector. Guards against near-empty containers.
const minContentText = 100

// Ensure Extractor implements url2md.Extractor at compile time.
var _ url2md.Extractor = (*Extractor)(nil)

// Extractor locates article content within raw HTML. It is best-effort
// throughout: a missing title or description comes back empty, and the
// content falls back to the document body rather than failing.
type Extractor struct {
	meta url2md.MetadataParser
}

// NewExtractor creates an Extractor. The metadata parser supplies the
// document-title and meta-description fallbacks; it may be nil, in
// which case those fallbacks are skipped.
func NewExtractor(meta url2md.MetadataParser) *Extractor {
	return &Extractor{meta: meta}
}

var bodyRE = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body>`)

// Extract locates the article in html. The url selects the platform
// profile; unknown or malformed URLs degrade to generic selectors.
func (e *Extractor) Extract(html, url string) (*url2md.Extraction, error) {
	// Repair lazy images before any selector matching, so selectors
	// capture containers with already-corrected <img> tags.
	html = FixLazyImages(html)

	prof := platform.Resolve(url)
	meta := e.parseMetadata(html)

	var title string
	for _, sel := range prof.TitleSelectors() {
		inner, ok := selector.Match(html, sel)
		if !ok {
			continue
		}
		if t := selector.Text(inner); t != "" {
			title = t
			break
		}
	}
	if title == "" {
		title = trimSiteName(meta.Title)
	}

	clean := html
	for _, sel := range prof.NoiseSelectors() {
		clean = selector.Remove(clean, sel)
	}

	var contentHTML string
	for _, sel := range prof.ContentSelectors() {
		inner, ok := selector.Match(clean, sel)
		if ok && utf8.RuneCountInString(selector.Text(inner)) > minContentText {
			contentHTML = inner
			break
		}
	}
	if contentHTML == "" {
		if m := bodyRE.FindStringSubmatch(clean); m != nil {
			contentHTML = m[1]
		} else {
			contentHTML = clean
		}
	}

	return &url2md.Extraction{
		Title:       title,
		Description: meta.Description,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) parseMetadata(html string) *url2md.Metadata {
	if e.meta == nil {
		return &url2md.Metadata{}
	}
	meta, err := e.meta.Parse(html)
	if err != nil || meta == nil {
		return &url2md.Metadata{}
	}
	return meta
}

// trimSiteName cuts a document title at the first "-" or "_" separator,
// following the common "Title - SiteName" convention.
func trimSiteName(title string) string {
	title = strings.TrimSpace(title)
	if i := strings.Index(title, "-"); i >= 0 {
		title = title[:i]
	}
	if i := strings.Index(title, "_"); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}
