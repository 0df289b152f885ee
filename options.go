package maxsized

import (
	"go.uber.org/zap"

	"github.com/discochess/maxsized/internal/stats"
)

// Collector receives metrics from a Map. See the internal stats package for
// the metric names that are reported.
type Collector = stats.Collector

// Option configures a Map.
type Option interface {
	apply(*options)
}

// options holds the map configuration.
type options struct {
	policy Policy
	stats  stats.Collector
	logger *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		policy: AccessTouches,
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithPolicy sets the recency policy.
// If not set, AccessTouches is used.
func WithPolicy(p Policy) Option {
	return optionFunc(func(o *options) {
		o.policy = p
	})
}

// WithStats sets the stats collector.
// If not set or nil, a no-op collector is used.
func WithStats(c Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger.
// If not set or nil, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}
