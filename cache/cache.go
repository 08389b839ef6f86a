// Package cache implements an in-memory, TTL-based cache around an
// ArticleService. Extracted articles change rarely, so repeat requests
// for the same URL can skip the fetch and extraction work entirely.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/blogkit/url2md"
	"github.com/cespare/xxhash/v2"
)

// Ensure Service implements url2md.ArticleService at compile time.
var _ url2md.ArticleService = (*Service)(nil)

// Service decorates an ArticleService with caching. Entries are keyed
// by the normalized URL's hash and expire after a fixed TTL. Errors are
// never cached.
type Service struct {
	inner url2md.ArticleService
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[uint64]entry
}

type entry struct {
	article   url2md.Article
	expiresAt time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService wraps inner with a cache holding entries for ttl.
func NewService(inner url2md.ArticleService, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uint64]entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractURL returns the cached article for rawURL when present and
// fresh, delegating to the wrapped service otherwise.
func (s *Service) ExtractURL(ctx context.Context, rawURL string) (*url2md.Article, error) {
	key := xxhash.Sum64String(url2md.NormalizeURL(rawURL))

	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		if s.now().Before(e.expiresAt) {
			article := e.article
			s.mu.Unlock()
			return &article, nil
		}
		delete(s.entries, key)
	}
	s.mu.Unlock()

	article, err := s.inner.ExtractURL(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = entry{article: *article, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return article, nil
}
