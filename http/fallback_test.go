package http_test

import (
	"context"
	"testing"

	"github.com/blogkit/url2md"
	url2mdhttp "github.com/blogkit/url2md/http"
	"github.com/blogkit/url2md/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("primary success skips secondary", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "primary content", nil
			},
		}
		secondary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("secondary should not be called")
				return "", nil
			},
		}
		f := url2mdhttp.NewFallbackFetcher(primary, secondary)
		got, err := f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "primary content", got)
	})

	t.Run("primary failure falls back", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", url2md.Errorf(url2md.EUNAVAILABLE, "page content too short")
			},
		}
		secondary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "archived content", nil
			},
		}
		f := url2mdhttp.NewFallbackFetcher(primary, secondary)
		got, err := f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "archived content", got)
	})

	t.Run("both failing returns secondary error", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", url2md.Errorf(url2md.EUNAVAILABLE, "primary down")
			},
		}
		secondary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", url2md.Errorf(url2md.EUNAVAILABLE, "page is empty")
			},
		}
		f := url2mdhttp.NewFallbackFetcher(primary, secondary)
		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, "page is empty", url2md.ErrorMessage(err))
	})

	t.Run("canceled context skips secondary", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		primary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				cancel()
				return "", ctx.Err()
			},
		}
		secondary := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("secondary should not be called")
				return "", nil
			},
		}
		f := url2mdhttp.NewFallbackFetcher(primary, secondary)
		_, err := f.Fetch(ctx, "https://example.com")
		require.Error(t, err)
	})

	t.Run("close closes both", func(t *testing.T) {
		t.Parallel()

		var closed int
		fn := func() error { closed++; return nil }
		f := url2mdhttp.NewFallbackFetcher(&mock.Fetcher{CloseFn: fn}, &mock.Fetcher{CloseFn: fn})
		require.NoError(t, f.Close())
		assert.Equal(t, 2, closed)
	})
}
