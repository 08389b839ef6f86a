package url2md

// Metadata holds document-level metadata parsed from a page's head.
type Metadata struct {
	// Title is the raw <title> element text, including any
	// "Title - SiteName" suffix the page carries.
	Title string

	// Description is the meta description, or an OpenGraph
	// equivalent when the page provides one.
	Description string
}

// MetadataParser parses document metadata out of raw HTML.
type MetadataParser interface {
	Parse(html string) (*Metadata, error)
}
