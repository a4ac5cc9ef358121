// Package stats computes the descriptive statistics reported alongside
// course scores.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a set of marks. Field names follow the JSON contract of
// the score endpoints.
type Summary struct {
	Average float64 `json:"average"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	P25     float64 `json:"25th_percentile"`
	P50     float64 `json:"50th_percentile"`
	P75     float64 `json:"75th_percentile"`
}

// Summarize computes mean, min, max and quartiles over a set of integer
// marks. An empty set reports zeros rather than NaNs so callers can always
// serialize the result.
func Summarize(marks []int) Summary {
	if len(marks) == 0 {
		return Summary{}
	}

	values := make([]float64, len(marks))
	for i, m := range marks {
		values[i] = float64(m)
	}
	sort.Float64s(values)

	return Summary{
		Average: stat.Mean(values, nil),
		Min:     int(values[0]),
		Max:     int(values[len(values)-1]),
		P25:     percentile(values, 0.25),
		P50:     percentile(values, 0.50),
		P75:     percentile(values, 0.75),
	}
}

// percentile interpolates linearly between the two closest ranks, the same
// estimator the dashboard charts were calibrated against. Quantile kinds
// offered by gonum (empirical CDF variants) place the quartiles on slightly
// different positions, so the rank interpolation is done here and only the
// moment statistics come from gonum.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
