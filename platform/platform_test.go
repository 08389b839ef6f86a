package platform_test

import (
	"testing"

	"github.com/blogkit/url2md/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("matches known platforms by hostname substring", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			url  string
			host string
		}{
			{"https://blog.csdn.net/someone/article/details/123", "blog.csdn.net"},
			{"https://zhuanlan.zhihu.com/p/456", "zhuanlan.zhihu.com"},
			{"https://juejin.cn/post/789", "juejin.cn"},
			{"https://www.jianshu.com/p/abc", "www.jianshu.com"},
			{"https://www.cnblogs.com/u/p/1.html", "www.cnblogs.com"},
			{"https://mp.weixin.qq.com/s/xyz", "mp.weixin.qq.com"},
			{"https://www.zhihu.com/question/1/answer/2", "www.zhihu.com"},
			{"https://sspai.com/post/12345", "sspai.com"},
		}

		for _, tt := range tests {
			p := platform.Resolve(tt.url)
			require.NotNil(t, p, tt.url)
			assert.Equal(t, tt.host, p.Host)
		}
	})

	t.Run("declaration order breaks ties", func(t *testing.T) {
		t.Parallel()

		// zhuanlan.zhihu.com also contains "zhihu.com"; the column
		// profile must win over the generic zhihu one.
		p := platform.Resolve("https://zhuanlan.zhihu.com/p/1")
		require.NotNil(t, p)
		assert.Equal(t, "zhuanlan.zhihu.com", p.Host)
	})

	t.Run("returns nil for unknown hosts", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, platform.Resolve("https://example.com/post/1"))
	})

	t.Run("returns nil for malformed URLs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, platform.Resolve("https://exa mple.com/x"))
		assert.Nil(t, platform.Resolve(""))
	})
}

func TestSelectorLists(t *testing.T) {
	t.Parallel()

	t.Run("platform selectors come before generic fallbacks", func(t *testing.T) {
		t.Parallel()

		p := platform.Resolve("https://juejin.cn/post/1")
		require.NotNil(t, p)

		content := p.ContentSelectors()
		require.Greater(t, len(content), len(platform.GenericContent))
		assert.Equal(t, ".article-content", content[0])
		assert.Equal(t, platform.GenericContent, content[len(content)-len(platform.GenericContent):])

		titles := p.TitleSelectors()
		assert.Equal(t, []string{".article-title", "h1"}, titles)
	})

	t.Run("nil profile yields the generic lists", func(t *testing.T) {
		t.Parallel()

		var p *platform.Profile
		assert.Equal(t, platform.GenericContent, p.ContentSelectors())
		assert.Equal(t, platform.GenericTitle, p.TitleSelectors())
		assert.Equal(t, platform.GenericNoise, p.NoiseSelectors())
	})

	t.Run("generic noise list covers scripts and chrome", func(t *testing.T) {
		t.Parallel()

		var p *platform.Profile
		noise := p.NoiseSelectors()
		assert.Contains(t, noise, "nav")
		assert.Contains(t, noise, "script")
		assert.Contains(t, noise, "noscript")
		assert.Contains(t, noise, ".comment")
	})
}
