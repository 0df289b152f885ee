// Package maxsized provides a fixed-capacity map that keeps its keys in
// recency order and evicts the eldest entry when a new key would exceed the
// capacity.
//
// The eldest key sits at position 0 of the recency sequence and the most
// recently touched key at position Size()-1:
//
//	(eldest) --> |1|2|3|4|5| <-- (most recent)
//
// A Policy decides which operations touch a key. Under AccessTouches, Get,
// Put and Replace all move the key to the tail. Under WriteOnlyTouches only
// Put and Replace do, and Get is a pure lookup.
//
// Example usage:
//
//	m, err := maxsized.New[int, string](5, maxsized.WithPolicy(maxsized.AccessTouches))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Put(1, "one")
//	v, ok := m.GetMostRecent()
//
// A Map is not safe for concurrent use. Callers sharing one across goroutines
// must serialize access themselves.
package maxsized

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/discochess/maxsized/internal/sequence"
	"github.com/discochess/maxsized/internal/sequence/lru"
	"github.com/discochess/maxsized/internal/stats"
	"github.com/discochess/maxsized/internal/touch"
)

// ErrInvalidCapacity indicates a maximum size below one.
var ErrInvalidCapacity = errors.New("maxsized: invalid capacity")

// Map is a bounded key-value map ordered by recency.
type Map[K comparable, V any] struct {
	seq      sequence.Sequence[K, V]
	strategy touch.Strategy[K, V]
	policy   Policy
	maxSize  int

	// mostRecent is the last touched key. It is not cleared on eviction, so
	// it may name a key that is no longer present.
	mostRecent    K
	hasMostRecent bool

	stats  stats.Collector
	logger *zap.Logger
	counts Stats
}

// New creates an empty map holding at most maxSize entries.
// It returns an error wrapping ErrInvalidCapacity if maxSize < 1, or
// ErrUnknownPolicy if the configured policy is not supported.
func New[K comparable, V any](maxSize int, opts ...Option) (*Map[K, V], error) {
	if maxSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, maxSize)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	strategy, err := strategyFor[K, V](cfg.policy)
	if err != nil {
		return nil, err
	}

	seq, err := lru.New[K, V](maxSize)
	if err != nil {
		return nil, fmt.Errorf("creating recency sequence: %w", err)
	}

	m := &Map[K, V]{
		seq:      seq,
		strategy: strategy,
		policy:   cfg.policy,
		maxSize:  maxSize,
		stats:    cfg.stats,
		logger:   cfg.logger,
	}

	m.logger.Debug("map initialized",
		zap.Int("maxSize", maxSize),
		zap.String("policy", strategy.Name()),
	)

	return m, nil
}

// Put associates value with key and touches key under every policy.
// If key is new and the map is full, the eldest entry is evicted.
// It returns the previous value and whether key was present.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	prev, existed, ev := m.strategy.Put(m.seq, key, value)
	m.touch(key)

	m.counts.Puts++
	m.stats.IncCounter(stats.MetricPuts, 1)
	if ev.Evicted {
		m.evicted(ev)
	}
	m.stats.SetGauge(stats.MetricSize, int64(m.seq.Len()))

	return prev, existed
}

// Replace updates the value for key only if key is present, touching it.
// A missing key leaves the map entirely unchanged and returns false.
func (m *Map[K, V]) Replace(key K, value V) (V, bool) {
	prev, existed := m.strategy.Replace(m.seq, key, value)
	if !existed {
		return prev, false
	}
	m.touch(key)

	m.counts.Replaces++
	m.stats.IncCounter(stats.MetricReplaces, 1)
	return prev, true
}

// Get returns the value for key. Under AccessTouches a hit touches key;
// under WriteOnlyTouches Get never changes the map's order.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok, touched := m.strategy.Get(m.seq, key)
	if touched {
		m.touch(key)
	}

	m.stats.IncCounter(stats.MetricGets, 1)
	if ok {
		m.counts.Hits++
		m.stats.IncCounter(stats.MetricHits, 1)
	} else {
		m.counts.Misses++
		m.stats.IncCounter(stats.MetricMisses, 1)
	}
	return v, ok
}

// GetMostRecent returns the current value of the most recently touched key.
// It reports false if nothing has been touched yet or if that key has since
// been evicted. It never touches.
func (m *Map[K, V]) GetMostRecent() (V, bool) {
	if !m.hasMostRecent {
		var zero V
		return zero, false
	}
	return m.seq.Peek(m.mostRecent)
}

// Contains reports whether key is present. It never touches.
func (m *Map[K, V]) Contains(key K) bool {
	return m.seq.Contains(key)
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.seq.Len()
}

// MaxSize returns the capacity fixed at construction.
func (m *Map[K, V]) MaxSize() int {
	return m.maxSize
}

// KeysInOrder returns the keys from eldest to most recent.
// The returned slice is a copy.
func (m *Map[K, V]) KeysInOrder() []K {
	return m.seq.Keys()
}

// Policy returns the recency policy.
func (m *Map[K, V]) Policy() Policy {
	return m.policy
}

// Stats returns operation counters accumulated since construction.
func (m *Map[K, V]) Stats() Stats {
	s := m.counts
	s.Size = m.seq.Len()
	return s
}

func (m *Map[K, V]) touch(key K) {
	m.mostRecent = key
	m.hasMostRecent = true
}

func (m *Map[K, V]) evicted(ev sequence.Eviction[K, V]) {
	m.counts.Evictions++
	m.stats.IncCounter(stats.MetricEvictions, 1)
	m.logger.Debug("evicted eldest entry",
		zap.Any("key", ev.Key),
		zap.Int("maxSize", m.maxSize),
	)
}
