package processing

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// MarkdownToText renders reddit markdown and strips the resulting HTML so only
// the visible words remain. Link targets are dropped, link text is kept.
func MarkdownToText(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	input = linkPattern.ReplaceAllString(input, "$1")

	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	plain = html.UnescapeString(plain)

	return strings.Join(strings.Fields(plain), " ")
}
