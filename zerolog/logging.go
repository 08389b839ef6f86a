// Package zerolog provides logging decorators for the service
// interfaces, built on the zerolog structured logger.
package zerolog

import (
	"context"
	"time"

	"github.com/blogkit/url2md"
	"github.com/rs/zerolog"
)

// Ensure decorators implement their interfaces at compile time.
var (
	_ url2md.ArticleService = (*ArticleService)(nil)
	_ url2md.Fetcher        = (*Fetcher)(nil)
)

// ArticleService logs every extraction with its outcome and duration.
type ArticleService struct {
	inner  url2md.ArticleService
	logger zerolog.Logger
}

// NewArticleService wraps inner with logging.
func NewArticleService(inner url2md.ArticleService, logger zerolog.Logger) *ArticleService {
	return &ArticleService{inner: inner, logger: logger}
}

func (s *ArticleService) ExtractURL(ctx context.Context, rawURL string) (*url2md.Article, error) {
	start := time.Now()
	article, err := s.inner.ExtractURL(ctx, rawURL)
	if err != nil {
		s.logger.Warn().
			Str("url", rawURL).
			Str("code", url2md.ErrorCode(err)).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("extract failed")
		return nil, err
	}
	s.logger.Info().
		Str("url", rawURL).
		Str("title", article.Title).
		Int("content_len", len(article.Content)).
		Dur("duration", time.Since(start)).
		Msg("extracted")
	return article, nil
}

// Fetcher logs every page fetch with its outcome and duration.
type Fetcher struct {
	inner  url2md.Fetcher
	logger zerolog.Logger

	// name distinguishes fetchers when several are composed, e.g.
	// "direct" and "archive".
	name string
}

// NewFetcher wraps inner with logging under the given name.
func NewFetcher(inner url2md.Fetcher, logger zerolog.Logger, name string) *Fetcher {
	return &Fetcher{inner: inner, logger: logger, name: name}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.inner.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug().
			Str("fetcher", f.name).
			Str("url", url).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("fetch failed")
		return "", err
	}
	f.logger.Debug().
		Str("fetcher", f.name).
		Str("url", url).
		Int("bytes", len(html)).
		Dur("duration", time.Since(start)).
		Msg("fetched")
	return html, nil
}

func (f *Fetcher) Close() error {
	return f.inner.Close()
}
