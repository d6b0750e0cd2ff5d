package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Equal(t, 0.0, stats.Mean())
	assert.Equal(t, 0.0, stats.Variance())
	assert.Equal(t, 0.0, stats.StdDev())
	assert.Equal(t, 0.0, stats.StdError())
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, 0.0, stats.Percentile(0.5))
	assert.Equal(t, 0.0, stats.ChiSquare(10))
	assert.Equal(t, 0.0, stats.Autocorrelation())
	assert.NoError(t, stats.Validate())
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(0.25)

	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 0.25, stats.Mean())
	assert.Equal(t, 0.0, stats.Variance())
	assert.Equal(t, 0.25, stats.Median())
	assert.Equal(t, 0.25, stats.Min)
	assert.Equal(t, 0.25, stats.Max)
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{0.1, 0.2, 0.3, 0.4} {
		stats.Add(v)
	}

	assert.InDelta(t, 0.25, stats.Mean(), 1e-12)
	// Sample variance of {0.1,0.2,0.3,0.4} is 0.05/3
	assert.InDelta(t, 0.05/3, stats.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(0.05/3), stats.StdDev(), 1e-12)
	assert.InDelta(t, 0.25, stats.Median(), 1e-12)
	assert.InDelta(t, 0.1, stats.Percentile(0), 1e-12)
	assert.InDelta(t, 0.4, stats.Percentile(1), 1e-12)
	assert.InDelta(t, 0.1, stats.Min, 1e-12)
	assert.InDelta(t, 0.4, stats.Max, 1e-12)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
}

func TestStatistics_HistogramAndChiSquare(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 100; i++ {
		stats.Add((float64(i) + 0.5) / 100)
	}

	hist := stats.Histogram(10)
	require.Len(t, hist, 10)
	for _, c := range hist {
		assert.Equal(t, 10, c)
	}
	assert.Equal(t, 0.0, stats.ChiSquare(10))
	assert.Nil(t, stats.Histogram(0))

	skewed := &Statistics{}
	for i := 0; i < 100; i++ {
		skewed.Add(0.05)
	}
	// (100-10)^2/10 for the full bucket plus 10 for each of the nine empty ones
	assert.InDelta(t, 900.0, skewed.ChiSquare(10), 1e-9)
}

func TestStatistics_Autocorrelation(t *testing.T) {
	alternating := &Statistics{}
	for i := 0; i < 100; i++ {
		alternating.Add(float64(i%2) * 0.5)
	}
	assert.Less(t, alternating.Autocorrelation(), -0.9)

	constant := &Statistics{}
	for i := 0; i < 10; i++ {
		constant.Add(0.5)
	}
	assert.Equal(t, 0.0, constant.Autocorrelation())
}

func TestStatistics_Validate(t *testing.T) {
	stats := &Statistics{}
	stats.Add(0.5)
	assert.NoError(t, stats.Validate())

	stats.Add(1.0)
	assert.Error(t, stats.Validate())

	negative := &Statistics{}
	negative.Add(-0.1)
	assert.Error(t, negative.Validate())
}

func TestStatistics_Summarize(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 20; i++ {
		stats.Add(float64(i) / 20)
	}

	sum := stats.Summarize(4)
	assert.Equal(t, 20, sum.Count)
	assert.Equal(t, []int{5, 5, 5, 5}, sum.Buckets)
	assert.Equal(t, stats.Mean(), sum.Mean)
	assert.Equal(t, 0.0, sum.Min)
	assert.Equal(t, 0.95, sum.Max)
	assert.Equal(t, 0.0, sum.ChiSquare)
}
