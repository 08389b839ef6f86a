// Package goquery implements document metadata parsing on top of the
// goquery DOM library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/blogkit/url2md"
)

// Ensure Parser implements url2md.MetadataParser at compile time.
var _ url2md.MetadataParser = (*Parser)(nil)

// Parser extracts the document title and meta description from raw
// HTML. Stateless; safe for concurrent use.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the <title> element and the description meta tag,
// preferring name="description" over property="og:description".
func (p *Parser) Parse(html string) (*url2md.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, url2md.Errorf(url2md.EINTERNAL, "parse document: %v", err)
	}

	meta := &url2md.Metadata{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		meta.Description = strings.TrimSpace(desc)
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
			meta.Description = strings.TrimSpace(desc)
		}
	}

	return meta, nil
}
