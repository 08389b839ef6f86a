package url2md

// Extraction holds the parts of a page located by an Extractor.
type Extraction struct {
	// Title is the article title with markup stripped.
	Title string

	// Description is the page's own summary, when it declares one.
	Description string

	// ContentHTML is the article body as raw HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor locates the article within a fetched page. The url lets
// implementations apply platform-specific rules.
//
// Implementations are best-effort: fields that cannot be located come
// back empty rather than as errors. A missing article body is decided
// by the caller, not the extractor.
type Extractor interface {
	Extract(html, url string) (*Extraction, error)
}
