package extract

import (
	"regexp"
	"strings"
)

// Lazy-loading source attributes, in priority order. The first one
// present on an <img> tag wins.
var lazyAttrREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)data-src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)data-original-src=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)data-actualsrc=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)data-original=["']([^"']+)["']`),
	regexp.MustCompile(`(?i)data-lazy-src=["']([^"']+)["']`),
}

var (
	imgTagRE        = regexp.MustCompile(`(?i)<img([^>]*)>`)
	srcAttrRE       = regexp.MustCompile(`(?i)src=["']([^"']*)["']`)
	archivePrefixRE = regexp.MustCompile(`https?://web\.archive\.org/web/\d+[a-z_]*/`)
)

// placeholderMaxLen marks src values short enough to be tracking pixels
// or inline placeholders rather than real image URLs.
const placeholderMaxLen = 10

// FixLazyImages rewrites <img> tags so lazy-loading data attributes
// become the effective image source, and strips Wayback Machine URL
// prefixes from recovered sources so rendered Markdown links to the
// live image rather than a possibly-expiring mirror. The rewrite is a
// pure text transform and idempotent on already-clean markup.
func FixLazyImages(html string) string {
	return imgTagRE.ReplaceAllStringFunc(html, func(tag string) string {
		attrs := tag[4 : len(tag)-1] // text between "<img" and ">"

		var current string
		if m := srcAttrRE.FindStringSubmatch(attrs); m != nil {
			current = m[1]
		}

		lazy := firstLazySource(attrs)
		switch {
		case lazy != "" && isPlaceholder(current):
			attrs = setSrc(attrs, archivePrefixRE.ReplaceAllString(lazy, ""))
		case strings.Contains(current, "web.archive.org/web/"):
			attrs = setSrc(attrs, archivePrefixRE.ReplaceAllString(current, ""))
		}

		return "<img" + attrs + ">"
	})
}

func firstLazySource(attrs string) string {
	for _, re := range lazyAttrREs {
		if m := re.FindStringSubmatch(attrs); m != nil {
			return m[1]
		}
	}
	return ""
}

func isPlaceholder(src string) bool {
	return src == "" || strings.HasPrefix(src, "data:image") || len(src) < placeholderMaxLen
}

// setSrc replaces the first src attribute with the given value, or
// appends one when the tag has no src at all. Splicing by index keeps
// the rest of the attribute text byte-for-byte intact.
func setSrc(attrs, src string) string {
	loc := srcAttrRE.FindStringIndex(attrs)
	if loc == nil {
		return attrs + ` src="` + src + `"`
	}
	return attrs[:loc[0]] + `src="` + src + `"` + attrs[loc[1]:]
}
