// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/discochess/maxsized/internal/stats"
)

// Collector implements stats.Collector using Prometheus metrics.
// Metrics are created and registered lazily on first use.
type Collector struct {
	registry prometheus.Registerer
	buckets  []float64
	logger   *zap.Logger

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	return &Collector{
		registry:   registry,
		buckets:    prometheus.LinearBuckets(0.1, 0.1, 10),
		logger:     zap.NewNop(),
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// WithLogger reports metrics that could not be registered to logger.
func (c *Collector) WithLogger(logger *zap.Logger) *Collector {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	counter := lookup(c, c.counters, name, func(help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	})
	counter.Add(float64(delta))
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	gauge := lookup(c, c.gauges, name, func(help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	})
	gauge.Set(float64(value))
}

// ObserveHistogram records a value in a histogram.
// Buckets cover ratios in [0, 1], which is what the simulator reports.
func (c *Collector) ObserveHistogram(name string, value float64) {
	histogram := lookup(c, c.histograms, name, func(help string) prometheus.Histogram {
		return prometheus.NewHistogram(prometheus.HistogramOpts{Name: name, Help: help, Buckets: c.buckets})
	})
	histogram.Observe(value)
}

// lookup returns the metric cached under name, creating and registering it
// if needed. A metric already registered elsewhere under the same name is
// adopted, even when it was registered with different help text.
//
// A metric that cannot be registered or adopted is logged and returned
// uncached, so the next update tries again.
func lookup[M prometheus.Collector](c *Collector, cache map[string]M, name string, build func(help string) M) M {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := cache[name]; ok {
		return m
	}

	m := build(name)
	err := c.registry.Register(m)
	if err != nil && !isAlreadyRegistered(err) {
		if help, ok := c.registeredHelp(name); ok && help != name {
			m = build(help)
			err = c.registry.Register(m)
		}
	}

	if err != nil {
		var (
			are      prometheus.AlreadyRegisteredError
			existing M
			ok       bool
		)
		if errors.As(err, &are) {
			existing, ok = are.ExistingCollector.(M)
		}
		if !ok {
			c.logger.Warn("metric not registered", zap.String("metric", name), zap.Error(err))
			return m
		}
		m = existing
	}
	cache[name] = m
	return m
}

// registeredHelp returns the help text of the metric family already gathered
// under name, if the registry can be gathered.
func (c *Collector) registeredHelp(name string) (string, bool) {
	g, ok := c.registry.(prometheus.Gatherer)
	if !ok {
		return "", false
	}
	families, _ := g.Gather()
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetHelp(), true
		}
	}
	return "", false
}

func isAlreadyRegistered(err error) bool {
	var are prometheus.AlreadyRegisteredError
	return errors.As(err, &are)
}
