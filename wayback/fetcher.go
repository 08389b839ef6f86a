// Package wayback implements a Fetcher that reads pages through the
// Internet Archive's Wayback Machine, used when the live page cannot be
// fetched directly.
package wayback

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/blogkit/url2md"
)

// DefaultBaseURL is the Wayback Machine endpoint.
const DefaultBaseURL = "https://web.archive.org"

// snapshotPath selects the nearest snapshot to the given year. The
// archive redirects to the closest capture it holds.
const snapshotPath = "/web/2024/"

// DefaultFetchTimeout is the default timeout for archive requests.
// Longer than the direct fetcher's, the archive is slow.
const DefaultFetchTimeout = 15 * time.Second

// DefaultMinLength is the minimum body size, in bytes, for an archived
// snapshot to count as real page content.
const DefaultMinLength = 500

// Ensure Fetcher implements url2md.Fetcher at compile time.
var _ url2md.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from archived snapshots of a URL.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	timeout   time.Duration
	userAgent string
	minLength int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL overrides the archive endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithTimeout sets the timeout for archive requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with archive requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new archive Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultFetchTimeout,
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the archived HTML content for the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+snapshotPath+url, nil)
	if err != nil {
		return "", err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", url2md.Errorf(url2md.EUNAVAILABLE, "unable to fetch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	html := string(body)
	if len(html) < f.minLength {
		return "", url2md.Errorf(url2md.EUNAVAILABLE, "page is empty")
	}

	return html, nil
}

// Close releases resources. No-op for the archive fetcher.
func (f *Fetcher) Close() error {
	return nil
}
