package insights

import (
	"fmt"
	"strings"

	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/spacesedan/sentimeter/internal/sentiment"
)

const (
	positiveSummaryThreshold = 0.2
	negativeSummaryThreshold = -0.2
	strongShareThreshold     = 5.0
)

// Summary renders the templated natural-language report for a distribution.
func Summary(b models.SentimentBuckets) string {
	var lines []string

	switch {
	case b.Polarity > positiveSummaryThreshold:
		lines = append(lines, "Overall sentiment is positive. People show support and optimism.")
	case b.Polarity < negativeSummaryThreshold:
		lines = append(lines, "Overall sentiment is negative. People express frustration or complaints.")
	default:
		lines = append(lines, "Overall sentiment is mixed with no strong polarity.")
	}

	// an empty run has no distribution at all and reports a bare 0
	neutral := "0"
	if b.Sum() > 0 {
		neutral = sentiment.FormatPercent(b.Neutral)
	}
	lines = append(lines, fmt.Sprintf("Neutral posts are %s%%, showing many factual or non-emotional discussions.", neutral))

	if b.StronglyPositive > strongShareThreshold {
		lines = append(lines, "There is a noticeable amount of highly positive excitement.")
	}
	if b.StronglyNegative > strongShareThreshold {
		lines = append(lines, "Strong negative opinions suggest major concerns among users.")
	}

	return strings.Join(lines, " ")
}
