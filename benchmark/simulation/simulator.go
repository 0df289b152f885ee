package simulation

import (
	"fmt"
	"math/rand"

	"github.com/discochess/maxsized"
	"github.com/discochess/maxsized/internal/stats"
	"github.com/discochess/maxsized/internal/trace"
)

// Simulator runs the same operations against one map per policy.
type Simulator struct {
	capacity  int
	policies  []maxsized.Policy
	collector stats.Collector
}

// NewSimulator creates a Simulator for maps of the given capacity.
// With no policies, every supported policy is simulated.
func NewSimulator(capacity int, policies ...maxsized.Policy) *Simulator {
	if len(policies) == 0 {
		policies = maxsized.Policies()
	}
	return &Simulator{
		capacity:  capacity,
		policies:  policies,
		collector: stats.NewNoop(),
	}
}

// WithCollector reports per-trial hit rates to c.
func (s *Simulator) WithCollector(c stats.Collector) *Simulator {
	s.collector = c
	return s
}

// Policies returns the simulated policies in order.
func (s *Simulator) Policies() []maxsized.Policy {
	return s.policies
}

// Result holds the outcome of one policy over one run.
type Result struct {
	Policy    maxsized.Policy
	Reads     int64
	Hits      int64
	Writes    int64 // Includes fills after read misses.
	Evictions int64
}

// HitRate returns the fraction of reads that hit, in [0, 1].
func (r *Result) HitRate() float64 {
	if r.Reads == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Reads)
}

// Run replays ops under every policy. A read miss is followed by a put of
// the key, as a read-through cache would do.
func (s *Simulator) Run(ops []trace.Op) (map[maxsized.Policy]*Result, error) {
	results := make(map[maxsized.Policy]*Result, len(s.policies))
	for _, p := range s.policies {
		m, err := maxsized.New[string, string](s.capacity, maxsized.WithPolicy(p))
		if err != nil {
			return nil, fmt.Errorf("creating %v map: %w", p, err)
		}

		for _, op := range ops {
			switch op.Kind {
			case trace.KindGet:
				if _, ok := m.Get(op.Key); !ok {
					m.Put(op.Key, op.Key)
				}
			default:
				trace.Apply(m, op)
			}
		}

		st := m.Stats()
		results[p] = &Result{
			Policy:    p,
			Reads:     st.Hits + st.Misses,
			Hits:      st.Hits,
			Writes:    st.Puts + st.Replaces,
			Evictions: st.Evictions,
		}
	}
	return results, nil
}

// RunTrials generates trials independent workloads from seed and returns
// each policy's hit rate per trial.
func (s *Simulator) RunTrials(w Workload, trials int, seed int64) (map[maxsized.Policy][]float64, error) {
	rates := make(map[maxsized.Policy][]float64, len(s.policies))
	for i := 0; i < trials; i++ {
		ops, err := w.Generate(rand.New(rand.NewSource(seed + int64(i))))
		if err != nil {
			return nil, err
		}
		results, err := s.Run(ops)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		for _, p := range s.policies {
			rate := results[p].HitRate()
			rates[p] = append(rates[p], rate)
			s.collector.ObserveHistogram(stats.MetricHitRate, rate)
		}
	}
	return rates, nil
}
