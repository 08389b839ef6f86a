package extract_test

import (
	"testing"

	"github.com/blogkit/url2md/extract"
	"github.com/stretchr/testify/assert"
)

func TestFixLazyImages(t *testing.T) {
	t.Parallel()

	t.Run("promotes data-src when src is missing", func(t *testing.T) {
		t.Parallel()

		html := `<img data-src="https://cdn.example.com/real.png" class="lazy">`
		got := extract.FixLazyImages(html)
		assert.Contains(t, got, `src="https://cdn.example.com/real.png"`)
	})

	t.Run("replaces inline-data placeholder src", func(t *testing.T) {
		t.Parallel()

		html := `<img src="data:image/gif;base64,R0lGOD" data-src="https://cdn.example.com/real.png">`
		got := extract.FixLazyImages(html)
		assert.Equal(t, `<img src="https://cdn.example.com/real.png" data-src="https://cdn.example.com/real.png">`, got)
	})

	t.Run("replaces suspiciously short src", func(t *testing.T) {
		t.Parallel()

		html := `<img src="1.gif" data-original="https://cdn.example.com/real.png">`
		got := extract.FixLazyImages(html)
		assert.Contains(t, got, `src="https://cdn.example.com/real.png"`)
	})

	t.Run("keeps a real src even when lazy attributes exist", func(t *testing.T) {
		t.Parallel()

		html := `<img src="https://cdn.example.com/already-good.png" data-src="https://cdn.example.com/other.png">`
		assert.Equal(t, html, extract.FixLazyImages(html))
	})

	t.Run("data-src takes priority over data-original", func(t *testing.T) {
		t.Parallel()

		html := `<img data-original="https://cdn.example.com/b.png" data-src="https://cdn.example.com/a.png">`
		got := extract.FixLazyImages(html)
		assert.Contains(t, got, `src="https://cdn.example.com/a.png"`)
	})

	t.Run("strips archive prefix from recovered source", func(t *testing.T) {
		t.Parallel()

		html := `<img data-src="https://web.archive.org/web/20240101im_/https://cdn.example.com/real.png">`
		got := extract.FixLazyImages(html)
		assert.Contains(t, got, `src="https://cdn.example.com/real.png"`)
		assert.NotContains(t, got, "web.archive.org")
	})

	t.Run("strips archive prefix from existing src in place", func(t *testing.T) {
		t.Parallel()

		html := `<img src="https://web.archive.org/web/20240101/https://cdn.example.com/live.png" alt="x">`
		got := extract.FixLazyImages(html)
		assert.Equal(t, `<img src="https://cdn.example.com/live.png" alt="x">`, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<img data-src="https://cdn.example.com/real.png">`,
			`<img src="data:image/gif;base64,R0lGOD" data-src="https://cdn.example.com/real.png">`,
			`<img src="https://web.archive.org/web/20240101im_/https://cdn.example.com/a.png">`,
			`<p>no images at all</p>`,
		}
		for _, in := range inputs {
			once := extract.FixLazyImages(in)
			assert.Equal(t, once, extract.FixLazyImages(once), in)
		}
	})

	t.Run("leaves non-image markup untouched", func(t *testing.T) {
		t.Parallel()

		html := `<p data-src="not-an-image">text</p>`
		assert.Equal(t, html, extract.FixLazyImages(html))
	})
}
