package analysis

import (
	"fmt"

	"github.com/discochess/maxsized"
)

// Comparison contrasts the per-trial hit rates of two policies.
type Comparison struct {
	A, B         maxsized.Policy
	SummaryA     Summary
	SummaryB     Summary
	Test         MannWhitney
	EffectSize   float64
	EffectLabel  string
	Winner       string // Policy name with the higher mean hit rate, or "tie".
	WinnerIsReal bool   // True if the difference is significant.
}

// ComparePolicies compares hit-rate samples of policies a and b.
func ComparePolicies(a, b maxsized.Policy, ratesA, ratesB []float64) *Comparison {
	c := &Comparison{
		A:        a,
		B:        b,
		SummaryA: Describe(ratesA),
		SummaryB: Describe(ratesB),
		Test:     MannWhitneyU(ratesA, ratesB),
	}
	c.EffectSize, c.EffectLabel = CohensD(ratesA, ratesB)

	switch {
	case c.SummaryA.Mean > c.SummaryB.Mean:
		c.Winner = a.String()
	case c.SummaryB.Mean > c.SummaryA.Mean:
		c.Winner = b.String()
	default:
		c.Winner = "tie"
	}
	c.WinnerIsReal = c.Winner != "tie" && c.Test.Significant
	return c
}

// String returns a human-readable report.
func (c *Comparison) String() string {
	sig := "not statistically significant"
	if c.Test.Significant {
		sig = fmt.Sprintf("statistically significant (p=%.4f)", c.Test.PValue)
	}
	return fmt.Sprintf(
		"%v vs %v:\n"+
			"  %v: mean=%.2f%%, median=%.2f%%, std=%.2f\n"+
			"  %v: mean=%.2f%%, median=%.2f%%, std=%.2f\n"+
			"  Effect size: %.2f (%s)\n"+
			"  Result: %s, %s",
		c.A, c.B,
		c.A, c.SummaryA.Mean*100, c.SummaryA.Median*100, c.SummaryA.StdDev*100,
		c.B, c.SummaryB.Mean*100, c.SummaryB.Median*100, c.SummaryB.StdDev*100,
		c.EffectSize, c.EffectLabel,
		c.Winner, sig,
	)
}
