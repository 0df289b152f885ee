// Package analysis provides statistics for comparing policy simulation runs.
package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for a sample.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Describe summarizes sample. An empty sample yields the zero Summary.
func Describe(sample []float64) Summary {
	if len(sample) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return Summary{
		N:      len(sorted),
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

// MannWhitney is the result of a two-sided Mann-Whitney U test.
type MannWhitney struct {
	U           float64
	Z           float64 // Normal approximation.
	PValue      float64
	Significant bool // p < 0.05.
}

// MannWhitneyU tests whether a and b come from the same distribution.
// Ties receive their average rank.
func MannWhitneyU(a, b []float64) MannWhitney {
	n1, n2 := float64(len(a)), float64(len(b))
	if n1 == 0 || n2 == 0 {
		return MannWhitney{PValue: 1}
	}

	type obs struct {
		v     float64
		fromA bool
	}
	all := make([]obs, 0, len(a)+len(b))
	for _, v := range a {
		all = append(all, obs{v, true})
	}
	for _, v := range b {
		all = append(all, obs{v, false})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].v < all[j].v })

	var rankA float64
	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].v == all[i].v {
			j++
		}
		rank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			if all[k].fromA {
				rankA += rank
			}
		}
		i = j
	}

	u1 := rankA - n1*(n1+1)/2
	u := math.Min(u1, n1*n2-u1)

	mu := n1 * n2 / 2
	sigma := math.Sqrt(n1 * n2 * (n1 + n2 + 1) / 12)
	var z float64
	if sigma > 0 {
		z = (u - mu) / sigma
	}
	p := math.Erfc(math.Abs(z) / math.Sqrt2)

	return MannWhitney{U: u, Z: z, PValue: p, Significant: p < 0.05}
}

// CohensD returns the standardized mean difference between a and b using
// the pooled standard deviation, and a coarse label for its magnitude.
func CohensD(a, b []float64) (float64, string) {
	if len(a) < 2 || len(b) < 2 {
		return 0, "undefined"
	}

	m1, v1 := stat.MeanVariance(a, nil)
	m2, v2 := stat.MeanVariance(b, nil)
	n1, n2 := float64(len(a)), float64(len(b))
	pooled := math.Sqrt(((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2))

	var d float64
	if pooled > 0 {
		d = (m1 - m2) / pooled
	}

	switch ad := math.Abs(d); {
	case ad < 0.2:
		return d, "negligible"
	case ad < 0.5:
		return d, "small"
	case ad < 0.8:
		return d, "medium"
	default:
		return d, "large"
	}
}
