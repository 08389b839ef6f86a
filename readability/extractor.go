// Package readability implements a last-resort article extractor on top
// of the go-readability library, for pages the selector pipeline cannot
// handle.
package readability

import (
	"net/url"
	"strings"

	"github.com/blogkit/url2md"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements url2md.Extractor at compile time.
var _ url2md.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The page URL
// is used to resolve relative references; a malformed URL is ignored.
func (e *Extractor) Extract(html, rawURL string) (*url2md.Extraction, error) {
	if strings.TrimSpace(html) == "" {
		return nil, url2md.Errorf(url2md.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		pageURL = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return nil, err
	}

	return &url2md.Extraction{
		Title:       article.Title,
		Description: article.Excerpt,
		ContentHTML: article.Content,
	}, nil
}
