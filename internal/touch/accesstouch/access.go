// Package accesstouch implements the policy where every successful read or
// write moves the key to the tail.
package accesstouch

import (
	"github.com/discochess/maxsized/internal/sequence"
	"github.com/discochess/maxsized/internal/touch"
)

// Compile-time check that Strategy implements touch.Strategy.
var _ touch.Strategy[string, int] = (*Strategy[string, int])(nil)

// Strategy touches on get, put and replace.
type Strategy[K comparable, V any] struct{}

// New returns a new access-order strategy.
func New[K comparable, V any]() *Strategy[K, V] {
	return &Strategy[K, V]{}
}

// Name returns "access".
func (s *Strategy[K, V]) Name() string {
	return "access"
}

// Get returns the value for key and moves it to the tail when present.
func (s *Strategy[K, V]) Get(seq sequence.Sequence[K, V], key K) (V, bool, bool) {
	v, ok := seq.Touch(key)
	return v, ok, ok
}

// Put updates in place; the sequence moves an existing key to the tail.
func (s *Strategy[K, V]) Put(seq sequence.Sequence[K, V], key K, value V) (V, bool, sequence.Eviction[K, V]) {
	prev, existed := seq.Peek(key)
	return prev, existed, seq.Add(key, value)
}

// Replace updates key in place if present.
func (s *Strategy[K, V]) Replace(seq sequence.Sequence[K, V], key K, value V) (V, bool) {
	prev, existed := seq.Peek(key)
	if !existed {
		return prev, false
	}
	seq.Add(key, value)
	return prev, true
}
