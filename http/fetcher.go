// Package http provides the HTTP transport for the service: the direct
// page fetcher, the archive fallback composition, and the JSON API
// server.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blogkit/url2md"
)

// DefaultFetchTimeout is the default timeout for direct page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent mimics a desktop browser. Several platforms serve
// stripped-down or blocked pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultMinLength is the minimum body size, in bytes, for a direct
// response to count as real page content rather than a shell or error
// page.
const DefaultMinLength = 1000

// antiBotMarker appears in interstitial pages that render the real
// content client-side after a delay.
const antiBotMarker = "window.onload=setTimeout"

// Ensure Fetcher implements url2md.Fetcher at compile time.
var _ url2md.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content directly from the page URL. Responses
// that look like bot interstitials or near-empty shells are rejected
// with EUNAVAILABLE so a fallback fetcher can take over.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	minLength int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with page requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMinLength sets the minimum acceptable body size in bytes.
func WithMinLength(n int) Option {
	return func(f *Fetcher) {
		f.minLength = n
	}
}

// NewFetcher creates a new direct Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
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

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", url2md.Errorf(url2md.EUNAVAILABLE, "unable to fetch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	html := string(body)
	if len(html) <= f.minLength {
		return "", url2md.Errorf(url2md.EUNAVAILABLE, "page content too short")
	}
	if strings.Contains(html, antiBotMarker) {
		return "", url2md.Errorf(url2md.EUNAVAILABLE, "page requires browser rendering")
	}

	return html, nil
}

// Close releases resources. For the direct fetcher this is a no-op
// since http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
