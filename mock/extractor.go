package mock

import "github.com/blogkit/url2md"

var _ url2md.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of url2md.Extractor.
type Extractor struct {
	ExtractFn func(html, url string) (*url2md.Extraction, error)
}

func (e *Extractor) Extract(html, url string) (*url2md.Extraction, error) {
	return e.ExtractFn(html, url)
}
