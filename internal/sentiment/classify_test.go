package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		p    float64
		want Bucket
	}{
		{0, Neutral},
		{0.0001, WeaklyPositive},
		{0.3, WeaklyPositive},
		{0.30001, Positive},
		{0.6, Positive},
		{0.60001, StronglyPositive},
		{1, StronglyPositive},
		{-0.0001, WeaklyNegative},
		// -0.3 closes "negative", not "weakly negative"
		{-0.3, Negative},
		{-0.29999, WeaklyNegative},
		{-0.6, StronglyNegative},
		{-0.59999, Negative},
		{-1, StronglyNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.p), "polarity %v", tt.p)
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	assert.Equal(t, StronglyPositive, Classify(1.7))
	assert.Equal(t, StronglyNegative, Classify(-3))
	assert.Equal(t, Neutral, Classify(math.NaN()))
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "Strongly Negative", StronglyNegative.String())
	assert.Equal(t, "Neutral", Neutral.String())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 66.67, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(4, 4))
}

func TestAggregate_Scenario(t *testing.T) {
	got := Aggregate([]float64{0.8, -0.8, 0.0})

	assert.Equal(t, 33.33, got.StronglyPositive)
	assert.Equal(t, 33.33, got.StronglyNegative)
	assert.Equal(t, 33.33, got.Neutral)
	assert.Zero(t, got.Positive)
	assert.Zero(t, got.WeaklyPositive)
	assert.Zero(t, got.Negative)
	assert.Zero(t, got.WeaklyNegative)
	assert.Zero(t, got.Polarity)
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Zero(t, got.Sum())
	assert.Zero(t, got.Polarity)
}

func TestAggregate_SumsToHundred(t *testing.T) {
	inputs := [][]float64{
		{0.1},
		{0.1, -0.1, 0.5, -0.5, 0.9, -0.9, 0},
		{0.2, 0.2, 0.2, -0.4, 0.7, 0.7},
		{0.05, 0.35, 0.65, -0.05, -0.35, -0.65, 0, 0.3, -0.3, 0.6, -0.6},
	}
	for _, scores := range inputs {
		got := Aggregate(scores)
		assert.InDelta(t, 100, got.Sum(), 0.05, "scores %v", scores)
	}
}

func TestAggregate_Polarity(t *testing.T) {
	got := Aggregate([]float64{0.5, 0.25, -0.1})
	assert.Equal(t, 0.22, got.Polarity)
	assert.Equal(t, 33.33, got.Positive)
	assert.Equal(t, 33.33, got.WeaklyPositive)
	assert.Equal(t, 33.33, got.WeaklyNegative)
}

func TestAggregate_PolarityStaysInRange(t *testing.T) {
	got := Aggregate([]float64{5, 3, 1})
	assert.Equal(t, 1.0, got.Polarity)
	assert.Equal(t, 100.0, got.StronglyPositive)

	got = Aggregate([]float64{-7, -1})
	assert.Equal(t, -1.0, got.Polarity)

	got = Aggregate([]float64{math.NaN(), 0.5})
	assert.Equal(t, 0.25, got.Polarity)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0", FormatPercent(50))
	assert.Equal(t, "0.0", FormatPercent(0))
	assert.Equal(t, "100.0", FormatPercent(100))
	assert.Equal(t, "33.33", FormatPercent(33.33))
	assert.Equal(t, "12.5", FormatPercent(12.5))
}
