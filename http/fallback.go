package http

import (
	"context"

	"github.com/blogkit/url2md"
)

// Ensure FallbackFetcher implements url2md.Fetcher at compile time.
var _ url2md.Fetcher = (*FallbackFetcher)(nil)

// FallbackFetcher tries a primary fetcher and, when it fails, falls
// back to a secondary one. The secondary error wins when both fail.
type FallbackFetcher struct {
	primary   url2md.Fetcher
	secondary url2md.Fetcher
}

// NewFallbackFetcher composes two fetchers into one.
func NewFallbackFetcher(primary, secondary url2md.Fetcher) *FallbackFetcher {
	return &FallbackFetcher{primary: primary, secondary: secondary}
}

// Fetch tries the primary fetcher first. The secondary is skipped when
// the context is already done, so cancellation is not masked by a
// second network round trip.
func (f *FallbackFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.primary.Fetch(ctx, url)
	if err == nil {
		return html, nil
	}
	if ctx.Err() != nil {
		return "", err
	}
	return f.secondary.Fetch(ctx, url)
}

// Close closes both fetchers, returning the first error encountered.
func (f *FallbackFetcher) Close() error {
	err := f.primary.Close()
	if cerr := f.secondary.Close(); err == nil {
		err = cerr
	}
	return err
}
