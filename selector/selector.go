// Package selector implements an approximate CSS-selector engine that
// operates directly on raw markup, without building a DOM. It supports
// the three selector forms the extraction pipeline needs (#id, .class,
// and bare tag names) and resolves a selector to the inner markup of the
// first matching element by counting nested same-tag open/close pairs.
//
// The engine is deliberately tolerant of malformed HTML: when a balanced
// closing tag cannot be found it degrades to a fixed-size best-effort
// substring instead of failing. Lookups never error; a selector that
// matches nothing simply reports no match.
package selector

import (
	"regexp"
	"strings"
)

// truncateLimit bounds the inner markup returned when the matching
// closing tag cannot be located in malformed or truncated input.
const truncateLimit = 5000

var (
	tagRE    = regexp.MustCompile(`<[^>]+>`)
	entityRE = regexp.MustCompile(`&[^;]+;`)
)

// Match resolves a selector against raw markup and returns the inner
// markup of the first matching element. Supported selector forms are
// "#id" (id attribute equality), ".class" (whitespace-delimited class
// token), and a bare tag name. Tag and attribute matching is
// case-insensitive. Reports false when nothing matches.
func Match(markup, sel string) (string, bool) {
	if sel == "" {
		return "", false
	}

	var pattern string
	switch {
	case strings.HasPrefix(sel, "#"):
		if len(sel) == 1 {
			return "", false
		}
		pattern = `(?i)<([a-zA-Z][a-zA-Z0-9]*)[^>]*\sid=["']` + regexp.QuoteMeta(sel[1:]) + `["'][^>]*>`
	case strings.HasPrefix(sel, "."):
		if len(sel) == 1 {
			return "", false
		}
		cls := regexp.QuoteMeta(sel[1:])
		pattern = `(?i)<([a-zA-Z][a-zA-Z0-9]*)[^>]*\sclass=["'](?:[^"']*\s)?` + cls + `(?:\s[^"']*)?["'][^>]*>`
	default:
		pattern = `(?i)<(` + regexp.QuoteMeta(sel) + `)\b[^>]*>`
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	loc := re.FindStringSubmatchIndex(markup)
	if loc == nil {
		return "", false
	}

	tag := strings.ToLower(markup[loc[2]:loc[3]])
	return inner(markup, loc[0], tag)
}

// Remove excises the inner markup of the first element matching sel.
// The element's own tags stay in place; only the matched inner span is
// deleted, leaving an empty, now-harmless shell. Input is returned
// unchanged when the selector does not match.
func Remove(markup, sel string) string {
	matched, ok := Match(markup, sel)
	if !ok || matched == "" {
		return markup
	}
	return strings.Replace(markup, matched, "", 1)
}

// Text strips tags and entity references from markup, returning trimmed
// plain text. Used for title extraction and content quality checks.
func Text(markup string) string {
	s := tagRE.ReplaceAllString(markup, "")
	s = entityRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// inner returns the markup between the end of the opening tag starting
// at openStart and its depth-balanced closing tag. Nested same-tag
// elements are tracked by counting: depth starts at 1 after the found
// opening tag and each nested open/close adjusts it until it returns to
// zero. When the input ends before the balance resolves, a substring of
// at most truncateLimit bytes is returned instead.
func inner(markup string, openStart int, tag string) (string, bool) {
	gt := strings.Index(markup[openStart:], ">")
	if gt < 0 {
		return "", false
	}
	contentStart := openStart + gt + 1

	re, err := regexp.Compile(`(?i)<` + regexp.QuoteMeta(tag) + `[\s>]|</` + regexp.QuoteMeta(tag) + `>`)
	if err != nil {
		return "", false
	}

	depth := 1
	for _, pos := range re.FindAllStringIndex(markup[contentStart:], -1) {
		if markup[contentStart+pos[0]+1] == '/' {
			depth--
			if depth == 0 {
				return markup[contentStart : contentStart+pos[0]], true
			}
		} else {
			depth++
		}
	}

	stop := contentStart + truncateLimit
	if stop > len(markup) {
		stop = len(markup)
	}
	return markup[contentStart:stop], true
}
