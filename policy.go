package maxsized

import (
	"errors"
	"fmt"
	"strings"

	"github.com/discochess/maxsized/internal/touch"
	"github.com/discochess/maxsized/internal/touch/accesstouch"
	"github.com/discochess/maxsized/internal/touch/writetouch"
)

// ErrUnknownPolicy indicates a policy name that ParsePolicy does not recognize.
var ErrUnknownPolicy = errors.New("maxsized: unknown policy")

// Policy selects which operations touch an entry, moving it to the tail of
// the recency sequence and making it the most recent key.
type Policy int

const (
	// AccessTouches counts every successful Get, Put and Replace as a touch.
	// The eviction candidate is the least recently used key.
	AccessTouches Policy = iota

	// WriteOnlyTouches counts only Put and Replace. Get is a pure lookup, so
	// the eviction candidate is the least recently written key.
	WriteOnlyTouches
)

// String returns the policy's canonical name.
func (p Policy) String() string {
	switch p {
	case AccessTouches:
		return "access"
	case WriteOnlyTouches:
		return "write"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name as accepted on the command line.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "access", "access-touches", "lru":
		return AccessTouches, nil
	case "write", "write-only", "write-only-touches":
		return WriteOnlyTouches, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Policies returns every supported policy in declaration order.
func Policies() []Policy {
	return []Policy{AccessTouches, WriteOnlyTouches}
}

func strategyFor[K comparable, V any](p Policy) (touch.Strategy[K, V], error) {
	switch p {
	case AccessTouches:
		return accesstouch.New[K, V](), nil
	case WriteOnlyTouches:
		return writetouch.New[K, V](), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}
}
