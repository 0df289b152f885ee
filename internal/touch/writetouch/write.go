// Package writetouch implements the policy where only writes reorder keys.
// Reads are invisible to the recency sequence and to eviction.
package writetouch

import (
	"github.com/discochess/maxsized/internal/sequence"
	"github.com/discochess/maxsized/internal/touch"
)

// Compile-time check that Strategy implements touch.Strategy.
var _ touch.Strategy[string, int] = (*Strategy[string, int])(nil)

// Strategy touches on put and replace only.
type Strategy[K comparable, V any] struct{}

// New returns a new write-order strategy.
func New[K comparable, V any]() *Strategy[K, V] {
	return &Strategy[K, V]{}
}

// Name returns "write".
func (s *Strategy[K, V]) Name() string {
	return "write"
}

// Get is a pure lookup.
func (s *Strategy[K, V]) Get(seq sequence.Sequence[K, V], key K) (V, bool, bool) {
	v, ok := seq.Peek(key)
	return v, ok, false
}

// Put removes key before reinserting it so it always lands at the tail.
func (s *Strategy[K, V]) Put(seq sequence.Sequence[K, V], key K, value V) (V, bool, sequence.Eviction[K, V]) {
	prev, existed := seq.Peek(key)
	if existed {
		seq.Remove(key)
	}
	return prev, existed, seq.Add(key, value)
}

// Replace reinserts key at the tail if present.
func (s *Strategy[K, V]) Replace(seq sequence.Sequence[K, V], key K, value V) (V, bool) {
	prev, existed := seq.Peek(key)
	if !existed {
		return prev, false
	}
	seq.Remove(key)
	seq.Add(key, value)
	return prev, true
}
