package models

// SentimentBuckets holds the share of posts per bucket, in percent, and the
// average polarity.
type SentimentBuckets struct {
	Positive         float64 `json:"positive"`
	WeaklyPositive   float64 `json:"wpositive"`
	StronglyPositive float64 `json:"spositive"`
	Neutral          float64 `json:"neutral"`
	Negative         float64 `json:"negative"`
	WeaklyNegative   float64 `json:"wnegative"`
	StronglyNegative float64 `json:"snegative"`
	Polarity         float64 `json:"polarity"`
}

// Sum adds the seven bucket percentages.
func (b SentimentBuckets) Sum() float64 {
	return b.Positive + b.WeaklyPositive + b.StronglyPositive + b.Neutral +
		b.Negative + b.WeaklyNegative + b.StronglyNegative
}
