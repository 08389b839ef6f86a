package mock

import (
	"context"

	"github.com/blogkit/url2md"
)

var _ url2md.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of url2md.ArticleService.
type ArticleService struct {
	ExtractURLFn func(ctx context.Context, rawURL string) (*url2md.Article, error)
}

func (s *ArticleService) ExtractURL(ctx context.Context, rawURL string) (*url2md.Article, error) {
	return s.ExtractURLFn(ctx, rawURL)
}
