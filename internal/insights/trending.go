package insights

import (
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/sentimeter/internal/models"
)

const minTrendingLength = 5

// TrendingTopics returns the ten most frequent lowercased words longer than
// four characters across all posts.
func TrendingTopics(posts []models.ScoredPost) []string {
	c := newCounter()
	for _, p := range posts {
		for _, w := range strings.Fields(strings.ToLower(p.Text)) {
			if utf8.RuneCountInString(w) >= minTrendingLength {
				c.add(w)
			}
		}
	}
	return c.top(TopKeywords)
}
