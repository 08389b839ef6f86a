package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/blogkit/url2md"
)

// summaryLength is the number of characters taken from the rendered
// Markdown when the page declares no description of its own.
const summaryLength = 150

// Ensure Service implements url2md.ArticleService at compile time.
var _ url2md.ArticleService = (*Service)(nil)

// Service drives the full extraction pipeline for a single URL:
// fetch, extract, convert to Markdown, and derive a description when
// the page has none. Stateless; safe for concurrent use.
type Service struct {
	fetcher   url2md.Fetcher
	extractor url2md.Extractor
	converter url2md.Converter

	// fallback, when set, is tried once the primary extractor yields
	// no renderable content, before giving up with EUNPROCESSABLE.
	fallback url2md.Extractor
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithFallbackExtractor sets a last-resort extractor consulted when the
// selector pipeline produces no content.
func WithFallbackExtractor(e url2md.Extractor) ServiceOption {
	return func(s *Service) {
		s.fallback = e
	}
}

// NewService creates a Service from its pipeline dependencies.
func NewService(fetcher url2md.Fetcher, extractor url2md.Extractor, converter url2md.Converter, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractURL fetches the page at rawURL and returns the extracted
// article. Internal pipeline steps degrade gracefully; the only hard
// failures are an unfetchable page and a page with no usable content.
func (s *Service) ExtractURL(ctx context.Context, rawURL string) (*url2md.Article, error) {
	rawURL = url2md.NormalizeURL(rawURL)
	if rawURL == "" {
		return nil, url2md.Errorf(url2md.EINVALID, "missing url parameter")
	}

	html, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ext, err := s.extractor.Extract(html, rawURL)
	if err != nil {
		return nil, err
	}

	title, description := ext.Title, ext.Description
	content := s.convert(ext.ContentHTML)

	if content == "" && s.fallback != nil {
		if fb, err := s.fallback.Extract(html, rawURL); err == nil && fb != nil {
			if c := s.convert(fb.ContentHTML); c != "" {
				content = c
				if title == "" {
					title = fb.Title
				}
				if description == "" {
					description = fb.Description
				}
			}
		}
	}

	if content == "" {
		return nil, url2md.Errorf(url2md.EUNPROCESSABLE, "could not extract article content")
	}

	if description == "" {
		description = summarize(content)
	}

	return &url2md.Article{
		Title:       title,
		Description: description,
		Content:     content,
	}, nil
}

// convert renders HTML to Markdown, treating converter failures as
// "no content" so the fallback path can still run.
func (s *Service) convert(html string) string {
	md, err := s.converter.Convert(html)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(md)
}

var (
	markdownPunctRE = regexp.MustCompile("[#*`\\[\\]()!\n>-]")
	whitespaceRE    = regexp.MustCompile(`\s+`)
)

// summarize derives a short description from rendered Markdown by
// stripping Markdown punctuation and whitespace and taking the leading
// characters.
func summarize(md string) string {
	plain := markdownPunctRE.ReplaceAllString(md, "")
	plain = whitespaceRE.ReplaceAllString(plain, "")
	runes := []rune(plain)
	if len(runes) > summaryLength {
		runes = runes[:summaryLength]
	}
	return string(runes)
}
