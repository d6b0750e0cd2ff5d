// Package statistics summarises samples of blended values in [0, 1).
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Statistics accumulates samples for summary and uniformity checks
type Statistics struct {
	Count  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Stored in insertion order for median, percentiles and autocorrelation
	Min    float64
	Max    float64
}

// Add incorporates a new sample
func (s *Statistics) Add(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all samples
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of all samples
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Median returns the median sample
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Histogram counts samples in equal-width buckets over [0, 1).
func (s *Statistics) Histogram(buckets int) []int {
	if buckets < 1 {
		return nil
	}
	counts := make([]int, buckets)
	for _, v := range s.Values {
		i := int(v * float64(buckets))
		if i < 0 {
			i = 0
		}
		if i >= buckets {
			i = buckets - 1
		}
		counts[i]++
	}
	return counts
}

// ChiSquare returns the chi-square statistic of the histogram against a
// uniform distribution.
func (s *Statistics) ChiSquare(buckets int) float64 {
	if s.Count == 0 || buckets < 1 {
		return 0
	}
	expected := float64(s.Count) / float64(buckets)
	chi := 0.0
	for _, count := range s.Histogram(buckets) {
		diff := float64(count) - expected
		chi += diff * diff / expected
	}
	return chi
}

// Autocorrelation returns the lag-1 serial correlation coefficient.
func (s *Statistics) Autocorrelation() float64 {
	n := len(s.Values)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	var num, den float64
	for i, v := range s.Values {
		d := v - mean
		den += d * d
		if i > 0 {
			num += d * (s.Values[i-1] - mean)
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Validate checks that every sample lies in [0, 1)
func (s *Statistics) Validate() error {
	if s.Count != len(s.Values) {
		return fmt.Errorf("count mismatch: Count=%d, len(Values)=%d", s.Count, len(s.Values))
	}
	for i, v := range s.Values {
		if v < 0 || v >= 1 || math.IsNaN(v) {
			return fmt.Errorf("sample %d out of range: %v", i, v)
		}
	}
	return nil
}

// Summary is a serialisable snapshot of the statistics.
type Summary struct {
	Count           int     `json:"count"`
	Mean            float64 `json:"mean"`
	StdDev          float64 `json:"stddev"`
	StdError        float64 `json:"stderr"`
	CI95Low         float64 `json:"ci95_low"`
	CI95High        float64 `json:"ci95_high"`
	Min             float64 `json:"min"`
	Median          float64 `json:"median"`
	P05             float64 `json:"p05"`
	P95             float64 `json:"p95"`
	Max             float64 `json:"max"`
	Buckets         []int   `json:"buckets"`
	ChiSquare       float64 `json:"chi_square"`
	Autocorrelation float64 `json:"autocorrelation"`
}

// Summarize computes a Summary with the given histogram resolution.
func (s *Statistics) Summarize(buckets int) Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Count:           s.Count,
		Mean:            s.Mean(),
		StdDev:          s.StdDev(),
		StdError:        s.StdError(),
		CI95Low:         low,
		CI95High:        high,
		Min:             s.Min,
		Median:          s.Median(),
		P05:             s.Percentile(0.05),
		P95:             s.Percentile(0.95),
		Max:             s.Max,
		Buckets:         s.Histogram(buckets),
		ChiSquare:       s.ChiSquare(buckets),
		Autocorrelation: s.Autocorrelation(),
	}
}
