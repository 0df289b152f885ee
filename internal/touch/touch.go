// Package touch defines which map operations count as touching an entry.
package touch

import "github.com/discochess/maxsized/internal/sequence"

// Strategy applies the map operations to a sequence under one recency policy.
// A touch moves the key to the tail of the sequence; whether the caller should
// also record the key as most recent is reported by the touched result.
type Strategy[K comparable, V any] interface {
	// Name returns the policy name.
	Name() string

	// Get looks up key, touching it only if the policy counts reads.
	Get(seq sequence.Sequence[K, V], key K) (value V, ok bool, touched bool)

	// Put upserts key at the tail and returns the previous value, if any.
	Put(seq sequence.Sequence[K, V], key K, value V) (prev V, existed bool, ev sequence.Eviction[K, V])

	// Replace updates key only if present, moving it to the tail.
	// A missing key leaves seq untouched.
	Replace(seq sequence.Sequence[K, V], key K, value V) (prev V, existed bool)
}
