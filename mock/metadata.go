package mock

import "github.com/blogkit/url2md"

var _ url2md.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of url2md.MetadataParser.
type MetadataParser struct {
	ParseFn func(html string) (*url2md.Metadata, error)
}

func (p *MetadataParser) Parse(html string) (*url2md.Metadata, error) {
	return p.ParseFn(html)
}
