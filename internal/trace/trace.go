// Package trace reads, writes and replays operation traces against a map.
//
// A trace is line oriented. Blank lines and lines starting with '#' are
// ignored. Every other line is one operation:
//
//	put <key> <value>
//	replace <key> <value>
//	get <key>
//	contains <key>
//	recent
//	keys
//	size
//
// Values run to the end of the line; runs of whitespace inside a value are
// collapsed to a single space.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSyntax indicates a malformed trace line.
var ErrSyntax = errors.New("trace: syntax error")

// Kind identifies an operation.
type Kind int

const (
	KindPut      Kind = iota // put <key> <value>: insert or update, touching the key.
	KindReplace              // replace <key> <value>: update only if present.
	KindGet                  // get <key>: look up, touching per policy.
	KindContains             // contains <key>: membership, never touches.
	KindRecent               // recent: value of the most recently touched key.
	KindKeys                 // keys: keys from eldest to most recent.
	KindSize                 // size: number of entries.
)

var kindNames = map[Kind]string{
	KindPut:      "put",
	KindReplace:  "replace",
	KindGet:      "get",
	KindContains: "contains",
	KindRecent:   "recent",
	KindKeys:     "keys",
	KindSize:     "size",
}

// arity is the number of fields after the operation name, where a value
// counts as one field.
var arity = map[Kind]int{
	KindPut:      2,
	KindReplace:  2,
	KindGet:      1,
	KindContains: 1,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is a single trace operation.
type Op struct {
	Kind  Kind
	Key   string
	Value string
	Line  int // 1-based source line, 0 for generated ops.
}

// String renders the op in trace syntax.
func (o Op) String() string {
	switch arity[o.Kind] {
	case 2:
		return fmt.Sprintf("%s %s %s", o.Kind, o.Key, o.Value)
	case 1:
		return fmt.Sprintf("%s %s", o.Kind, o.Key)
	default:
		return o.Kind.String()
	}
}

// Parse reads every operation from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return ops, nil
}

func parseLine(text string) (Op, error) {
	fields := strings.Fields(text)
	kind, ok := kindByName(fields[0])
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown operation %q", ErrSyntax, fields[0])
	}

	args := fields[1:]
	switch n := arity[kind]; {
	case n == 0 && len(args) != 0:
		return Op{}, fmt.Errorf("%w: %s takes no arguments", ErrSyntax, kind)
	case n == 1 && len(args) != 1:
		return Op{}, fmt.Errorf("%w: %s takes a key", ErrSyntax, kind)
	case n == 2 && len(args) < 2:
		return Op{}, fmt.Errorf("%w: %s takes a key and a value", ErrSyntax, kind)
	}

	op := Op{Kind: kind}
	if len(args) > 0 {
		op.Key = args[0]
	}
	if len(args) > 1 {
		op.Value = strings.Join(args[1:], " ")
	}
	return op, nil
}

func kindByName(name string) (Kind, bool) {
	name = strings.ToLower(name)
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Write writes ops to w in trace syntax, one per line.
func Write(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)
	for _, op := range ops {
		if _, err := fmt.Fprintln(bw, op); err != nil {
			return err
		}
	}
	return bw.Flush()
}
