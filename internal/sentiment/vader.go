package sentiment

import (
	"github.com/jonreiter/govader"
)

// Scorer turns a piece of text into a polarity in [-1, 1].
type Scorer interface {
	Polarity(text string) float64
}

// VaderScorer scores text with the VADER lexicon, using the compound score.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Polarity(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(text string) float64

func (f ScorerFunc) Polarity(text string) float64 {
	return f(text)
}
