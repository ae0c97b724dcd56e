package processing

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	mentionPattern = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	hashtagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)
	nonWordPattern = regexp.MustCompile(`[^0-9A-Za-z \t]`)
)

// CleanText drops URLs, mentions and hashtags, replaces anything that is not
// an ASCII letter, digit, space or tab with a space, and collapses whitespace.
func CleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = hashtagPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
