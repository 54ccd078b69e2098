package sales

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the count, mean, sample standard deviation and five-number
// summary of a numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarises values. An empty input gives NaN statistics; a
// single value gives a NaN standard deviation.
func Describe(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		s.Std = math.NaN()
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q1 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q3 = quantile(sorted, 0.75)
	return s
}

// quantile interpolates linearly between the closest ranks of sorted,
// placing p at position p*(n-1).
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
