package insights

import (
	"strings"

	"github.com/spacesedan/sentimeter/internal/models"
)

const (
	NegativeThreshold = 0.1
	TopKeywords       = 10
)

var problemWords = map[string]struct{}{
	"issue": {}, "problem": {}, "error": {}, "bug": {}, "slow": {}, "crash": {},
	"bad": {}, "difficult": {}, "confusing": {}, "expensive": {}, "lag": {},
	"poor": {}, "not": {}, "missing": {}, "hate": {}, "fail": {},
}

// NegativeTexts returns the text of every post scoring at or below 0.1.
func NegativeTexts(posts []models.ScoredPost) []string {
	var texts []string
	for _, p := range posts {
		if p.Polarity <= NegativeThreshold {
			texts = append(texts, p.Text)
		}
	}
	return texts
}

// ExtractIssues counts problem-vocabulary words across texts and returns the
// ten most frequent.
func ExtractIssues(texts []string) []string {
	c := newCounter()
	for _, t := range texts {
		for _, w := range strings.Fields(strings.ToLower(t)) {
			if _, ok := problemWords[w]; ok {
				c.add(w)
			}
		}
	}
	return c.top(TopKeywords)
}
