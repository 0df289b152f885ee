package trace

import (
	"fmt"
	"strings"

	"github.com/discochess/maxsized"
)

// Result is the outcome of one replayed operation.
type Result struct {
	Op    Op
	Value string   // Returned value: previous value for put/replace.
	Found bool     // Whether Value is meaningful, or the contains answer.
	Keys  []string // Recency sequence, for keys.
	Size  int      // Entry count, for size.
}

// String renders the result as "<op> -> <outcome>".
func (r Result) String() string {
	var out string
	switch r.Op.Kind {
	case KindKeys:
		out = "[" + strings.Join(r.Keys, " ") + "]"
	case KindSize:
		out = fmt.Sprint(r.Size)
	case KindContains:
		out = fmt.Sprint(r.Found)
	case KindPut:
		if !r.Found {
			out = "(new)"
		} else {
			out = "(was " + r.Value + ")"
		}
	default:
		if !r.Found {
			out = "(none)"
		} else {
			out = r.Value
		}
	}
	return r.Op.String() + " -> " + out
}

// Replay applies ops to m in order, calling fn with each result.
// fn may be nil.
func Replay(m *maxsized.Map[string, string], ops []Op, fn func(Result)) {
	for _, op := range ops {
		res := Apply(m, op)
		if fn != nil {
			fn(res)
		}
	}
}

// Apply applies a single op to m.
func Apply(m *maxsized.Map[string, string], op Op) Result {
	res := Result{Op: op}
	switch op.Kind {
	case KindPut:
		res.Value, res.Found = m.Put(op.Key, op.Value)
	case KindReplace:
		res.Value, res.Found = m.Replace(op.Key, op.Value)
	case KindGet:
		res.Value, res.Found = m.Get(op.Key)
	case KindContains:
		res.Found = m.Contains(op.Key)
	case KindRecent:
		res.Value, res.Found = m.GetMostRecent()
	case KindKeys:
		res.Keys = m.KeysInOrder()
	case KindSize:
		res.Size = m.Size()
	}
	return res
}
