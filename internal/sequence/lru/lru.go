// Package lru implements sequence.Sequence on top of golang-lru's simplelru.
package lru

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/discochess/maxsized/internal/sequence"
)

// Compile-time check that Sequence implements sequence.Sequence.
var _ sequence.Sequence[string, int] = (*Sequence[string, int])(nil)

// Sequence is a fixed-capacity recency sequence.
// It is not safe for concurrent use.
type Sequence[K comparable, V any] struct {
	lru      *simplelru.LRU[K, V]
	capacity int
}

// New creates a sequence holding at most capacity entries.
// It returns an error if capacity is not positive.
func New[K comparable, V any](capacity int) (*Sequence[K, V], error) {
	// No eviction callback: simplelru also fires it on Remove, and Add below
	// evicts explicitly so the caller learns exactly which entry went.
	l, err := simplelru.NewLRU[K, V](capacity, nil)
	if err != nil {
		return nil, err
	}
	return &Sequence[K, V]{lru: l, capacity: capacity}, nil
}

// Peek returns the value for key without reordering.
func (s *Sequence[K, V]) Peek(key K) (V, bool) {
	return s.lru.Peek(key)
}

// Touch returns the value for key and moves it to the tail.
func (s *Sequence[K, V]) Touch(key K) (V, bool) {
	return s.lru.Get(key)
}

// Add upserts key at the tail, removing the eldest entry first when key is
// new and the sequence is already full.
func (s *Sequence[K, V]) Add(key K, value V) sequence.Eviction[K, V] {
	var ev sequence.Eviction[K, V]
	if !s.lru.Contains(key) && s.lru.Len() >= s.capacity {
		ev.Key, ev.Value, ev.Evicted = s.lru.RemoveOldest()
	}
	s.lru.Add(key, value)
	return ev
}

// Remove deletes key.
func (s *Sequence[K, V]) Remove(key K) bool {
	return s.lru.Remove(key)
}

// Contains reports whether key is present.
func (s *Sequence[K, V]) Contains(key K) bool {
	return s.lru.Contains(key)
}

// Keys returns the keys from eldest to most recent.
func (s *Sequence[K, V]) Keys() []K {
	return s.lru.Keys()
}

// Len returns the number of entries.
func (s *Sequence[K, V]) Len() int {
	return s.lru.Len()
}
