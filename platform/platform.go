// Package platform maps article hostnames to the CSS selectors that work
// best on each publishing platform. The table is static, ordered, and
// read-only at run time: the first profile whose host substring appears
// in the request's hostname wins.
package platform

import (
	"net/url"
	"strings"
)

// Profile lists the candidate selectors tuned for a single platform.
// Selector lists are ordered: earlier entries are tried first.
type Profile struct {
	// Host identifies the platform by substring match against the
	// request URL's hostname.
	Host string

	Content []string
	Title   []string
	Noise   []string
}

// profiles is scanned front to back; declaration order is the tie-break
// when more than one host substring matches.
var profiles = []Profile{
	{
		Host:    "blog.csdn.net",
		Content: []string{"#content_views"},
		Title:   []string{".title-article"},
		Noise:   []string{".hide-article-box", ".blog-tags-box", ".recommend-box"},
	},
	{
		Host:    "zhuanlan.zhihu.com",
		Content: []string{".Post-RichText", ".RichContent-inner"},
		Title:   []string{".Post-Title"},
		Noise:   []string{".ContentItem-actions"},
	},
	{
		Host:    "juejin.cn",
		Content: []string{".article-content", "#article-root"},
		Title:   []string{".article-title"},
		Noise:   []string{".article-suspended-panel", ".recommended-area"},
	},
	{
		Host:    "www.jianshu.com",
		Content: []string{"article"},
		Title:   []string{"h1"},
		Noise:   []string{".note-comment"},
	},
	{
		Host:    "www.cnblogs.com",
		Content: []string{"#cnblogs_post_body"},
		Title:   []string{"#cb_post_title_url", ".postTitle"},
		Noise:   []string{".postDesc"},
	},
	{
		Host:    "mp.weixin.qq.com",
		Content: []string{"#js_content"},
		Title:   []string{"#activity-name"},
		Noise:   []string{"#js_pc_qr_code"},
	},
	{
		Host:    "www.zhihu.com",
		Content: []string{".Post-RichText", ".RichContent-inner"},
		Title:   []string{".Post-Title", ".QuestionHeader-title"},
		Noise:   []string{".ContentItem-actions"},
	},
	{
		Host:    "sspai.com",
		Content: []string{".article-body", ".wangEditor-txt"},
		Title:   []string{".title", "h1"},
		Noise:   []string{".relate-reading", ".article-footer"},
	},
}

// Generic fallback selectors, appended after any platform-specific list
// so tuned selectors take priority but the generic ones still apply as
// a safety net.
var (
	GenericContent = []string{"article", "main", ".post-content", ".article-content", ".entry-content", "#content"}
	GenericTitle   = []string{"h1"}
	GenericNoise   = []string{"nav", "header", "footer", ".sidebar", ".comment", ".ad", ".share", ".related", "script", "style", "noscript"}
)

// Resolve returns the profile for the URL's hostname, or nil when no
// platform matches. Malformed URLs resolve to nil rather than erroring:
// extraction then proceeds with the generic selectors only.
func Resolve(rawURL string) *Profile {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	host := u.Hostname()
	if host == "" {
		return nil
	}
	for i := range profiles {
		if strings.Contains(host, profiles[i].Host) {
			return &profiles[i]
		}
	}
	return nil
}

// ContentSelectors returns the effective content selector list:
// platform-specific selectors first, generic fallbacks appended.
// Safe to call on a nil receiver.
func (p *Profile) ContentSelectors() []string {
	if p == nil {
		return combine(nil, GenericContent)
	}
	return combine(p.Content, GenericContent)
}

// TitleSelectors returns the effective title selector list.
// Safe to call on a nil receiver.
func (p *Profile) TitleSelectors() []string {
	if p == nil {
		return combine(nil, GenericTitle)
	}
	return combine(p.Title, GenericTitle)
}

// NoiseSelectors returns the effective noise selector list.
// Safe to call on a nil receiver.
func (p *Profile) NoiseSelectors() []string {
	if p == nil {
		return combine(nil, GenericNoise)
	}
	return combine(p.Noise, GenericNoise)
}

func combine(specific, generic []string) []string {
	out := make([]string, 0, len(specific)+len(generic))
	out = append(out, specific...)
	return append(out, generic...)
}
