package mock

import "github.com/blogkit/url2md"

var _ url2md.Converter = (*Converter)(nil)

// Converter is a mock implementation of url2md.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
