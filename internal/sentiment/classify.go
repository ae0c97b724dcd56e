package sentiment

import (
	"math"
	"strconv"

	"github.com/spacesedan/sentimeter/internal/models"
)

type Bucket int

const (
	Neutral Bucket = iota
	WeaklyPositive
	Positive
	StronglyPositive
	WeaklyNegative
	Negative
	StronglyNegative
)

var bucketNames = map[Bucket]string{
	Neutral:          "Neutral",
	WeaklyPositive:   "Weakly Positive",
	Positive:         "Positive",
	StronglyPositive: "Strongly Positive",
	WeaklyNegative:   "Weakly Negative",
	Negative:         "Negative",
	StronglyNegative: "Strongly Negative",
}

func (b Bucket) String() string {
	return bucketNames[b]
}

// clamp pins p into [-1, 1]; NaN counts as 0.
func clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(-1, math.Min(1, p))
}

// Classify maps a polarity onto its bucket. The intervals are asymmetric:
// positive buckets are closed above (0.3, 0.6, 1) while the negative side
// closes at -0.3 and -0.6 from below, and "weakly negative" is open at both ends.
// Scores outside [-1, 1] are clamped first.
func Classify(p float64) Bucket {
	if math.IsNaN(p) {
		return Neutral
	}
	p = clamp(p)

	switch {
	case p == 0:
		return Neutral
	case p > 0 && p <= 0.3:
		return WeaklyPositive
	case p > 0.3 && p <= 0.6:
		return Positive
	case p > 0.6:
		return StronglyPositive
	case p > -0.3:
		return WeaklyNegative
	case p > -0.6:
		return Negative
	default:
		return StronglyNegative
	}
}

// Percentage is 100*part/whole rounded to two decimals, or 0 when whole is 0.
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(100 * float64(part) / float64(whole))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPercent renders a rounded share the way it appears in reports:
// whole numbers keep one decimal ("50.0"), others print as stored ("33.33").
func FormatPercent(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Aggregate buckets every score and returns the percentage distribution and
// the rounded mean polarity.
func Aggregate(scores []float64) models.SentimentBuckets {
	counts := make(map[Bucket]int, len(bucketNames))
	var sum float64
	for _, p := range scores {
		counts[Classify(p)]++
		sum += clamp(p)
	}

	total := len(scores)
	buckets := models.SentimentBuckets{
		Positive:         Percentage(counts[Positive], total),
		WeaklyPositive:   Percentage(counts[WeaklyPositive], total),
		StronglyPositive: Percentage(counts[StronglyPositive], total),
		Neutral:          Percentage(counts[Neutral], total),
		Negative:         Percentage(counts[Negative], total),
		WeaklyNegative:   Percentage(counts[WeaklyNegative], total),
		StronglyNegative: Percentage(counts[StronglyNegative], total),
	}
	if total > 0 {
		buckets.Polarity = Round2(sum / float64(total))
	}
	return buckets
}
