// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Map operation metrics.
	MetricPuts     = "maxsized_puts_total"
	MetricReplaces = "maxsized_replaces_total"
	MetricGets     = "maxsized_gets_total"

	// Lookup outcome metrics.
	MetricHits   = "maxsized_hits_total"
	MetricMisses = "maxsized_misses_total"

	// Capacity metrics.
	MetricEvictions = "maxsized_evictions_total"
	MetricSize      = "maxsized_size"

	// Simulation metrics.
	MetricHitRate = "maxsized_simulation_hit_rate"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
