// Package markdown strips markdown syntax from backend-generated summaries so
// they can be pasted into places that do not render it.
package markdown

import (
	"regexp"
	"strings"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order. Fenced blocks go before inline code and images
// before links, otherwise the shorter pattern eats the longer one. List
// markers only consume indentation so a blank line above a list survives.
var rules = []rule{
	{regexp.MustCompile(`(?m)^#{1,6}\s+`), ""},
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "$1"},
	{regexp.MustCompile(`\*([^*]+)\*`), "$1"},
	{regexp.MustCompile(`__([^_]+)__`), "$1"},
	{regexp.MustCompile(`_([^_]+)_`), "$1"},
	{regexp.MustCompile(`~~([^~]+)~~`), "$1"},
	{regexp.MustCompile("```[\\s\\S]*?```"), ""},
	{regexp.MustCompile("`([^`]+)`"), "$1"},
	{regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`), "$1"},
	{regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`), "$1"},
	{regexp.MustCompile(`(?m)^[ \t]*[-*+]\s+`), ""},
	{regexp.MustCompile(`(?m)^[ \t]*\d+\.\s+`), ""},
	{regexp.MustCompile(`(?m)^>\s*`), ""},
	{regexp.MustCompile(`(?m)^[-*]{3,}$`), ""},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// ToPlainText removes headers, emphasis, code, links, images, list markers,
// blockquotes and horizontal rules, then collapses runs of blank lines.
func ToPlainText(md string) string {
	if md == "" {
		return ""
	}

	text := md
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return strings.TrimSpace(text)
}
