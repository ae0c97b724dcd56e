package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaderScorer(t *testing.T) {
	scorer := NewVaderScorer()

	assert.Greater(t, scorer.Polarity("The book was good."), 0.0)
	assert.Less(t, scorer.Polarity("This is a terrible, horrible product and I hate it"), 0.0)
	assert.Zero(t, scorer.Polarity("The meeting is on Tuesday"))

	for _, text := range []string{"great great great amazing love", "awful awful hate worst"} {
		p := scorer.Polarity(text)
		assert.GreaterOrEqual(t, p, -1.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestScorerFunc(t *testing.T) {
	var s Scorer = ScorerFunc(func(string) float64 { return 0.42 })
	assert.Equal(t, 0.42, s.Polarity("anything"))
}
