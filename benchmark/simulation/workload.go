// Package simulation replays synthetic access patterns against bounded maps
// under each recency policy.
package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/discochess/maxsized/internal/trace"
)

// ErrInvalidWorkload indicates workload parameters that cannot generate ops.
var ErrInvalidWorkload = errors.New("simulation: invalid workload")

// Workload describes a synthetic key access pattern.
// Key popularity follows a Zipf distribution, so a few keys are hot.
type Workload struct {
	Keys      int     // Number of distinct keys.
	Ops       int     // Number of operations to generate.
	ReadRatio float64 // Fraction of operations that are reads, in [0, 1].
	Skew      float64 // Zipf exponent; must be > 1. Higher is more skewed.
}

// DefaultWorkload returns a read-heavy workload over 1000 keys.
func DefaultWorkload() Workload {
	return Workload{Keys: 1000, Ops: 100_000, ReadRatio: 0.9, Skew: 1.1}
}

// Validate checks the workload parameters.
func (w Workload) Validate() error {
	switch {
	case w.Keys < 1:
		return fmt.Errorf("%w: keys must be positive, got %d", ErrInvalidWorkload, w.Keys)
	case w.Ops < 0:
		return fmt.Errorf("%w: ops must not be negative, got %d", ErrInvalidWorkload, w.Ops)
	case w.ReadRatio < 0 || w.ReadRatio > 1:
		return fmt.Errorf("%w: read ratio must be in [0, 1], got %v", ErrInvalidWorkload, w.ReadRatio)
	case w.Skew <= 1:
		return fmt.Errorf("%w: skew must be greater than 1, got %v", ErrInvalidWorkload, w.Skew)
	}
	return nil
}

// Generate produces the workload's operations as get and put trace ops.
// The same rng seed always yields the same ops.
func (w Workload) Generate(rng *rand.Rand) ([]trace.Op, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	zipf := rand.NewZipf(rng, w.Skew, 1, uint64(w.Keys-1))
	ops := make([]trace.Op, 0, w.Ops)
	for i := 0; i < w.Ops; i++ {
		key := "k" + strconv.FormatUint(zipf.Uint64(), 10)
		if rng.Float64() < w.ReadRatio {
			ops = append(ops, trace.Op{Kind: trace.KindGet, Key: key})
		} else {
			ops = append(ops, trace.Op{Kind: trace.KindPut, Key: key, Value: strconv.Itoa(i)})
		}
	}
	return ops, nil
}
