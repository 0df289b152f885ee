// Package sequence defines the hash index plus recency sequence that backs a
// bounded map.
package sequence

// Sequence is a key-value index whose keys carry a total order from eldest to
// most recent. Implementations never grow past their fixed capacity.
type Sequence[K comparable, V any] interface {
	// Peek returns the value for key without changing its position.
	Peek(key K) (V, bool)

	// Touch returns the value for key and moves it to the tail.
	// A missing key leaves the sequence unchanged.
	Touch(key K) (V, bool)

	// Add upserts key at the tail. When key is new and the sequence is full,
	// the eldest entry is removed first and reported as evicted.
	Add(key K, value V) Eviction[K, V]

	// Remove deletes key, reporting whether it was present.
	Remove(key K) bool

	// Contains reports whether key is present without changing its position.
	Contains(key K) bool

	// Keys returns the keys from eldest to most recent.
	Keys() []K

	// Len returns the number of entries.
	Len() int
}

// Eviction describes the entry pushed out by an Add, if any.
type Eviction[K comparable, V any] struct {
	Key     K
	Value   V
	Evicted bool
}
