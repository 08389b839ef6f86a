package url2md

import (
	"context"
	"strings"
)

// Article is the result of extracting a single URL. Immutable once
// returned; every request produces a fresh value.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"` // Markdown
}

// ArticleService extracts articles from URLs end to end.
type ArticleService interface {
	// ExtractURL fetches the page at rawURL and returns the extracted
	// article. The URL is normalized with NormalizeURL before use.
	// Returns EUNAVAILABLE when the page cannot be fetched and
	// EUNPROCESSABLE when the page yields no usable content.
	ExtractURL(ctx context.Context, rawURL string) (*Article, error)
}

// NormalizeURL ensures a user-entered URL carries a scheme,
// defaulting to https.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || strings.HasPrefix(rawURL, "http") {
		return rawURL
	}
	return "https://" + rawURL
}
