package writetouch

import (
	"reflect"
	"testing"

	"github.com/discochess/maxsized/internal/sequence/lru"
)

func newSeq(t *testing.T, keys ...int) *lru.Sequence[int, int] {
	t.Helper()
	seq, err := lru.New[int, int](len(keys))
	if err != nil {
		t.Fatalf("lru.New() error = %v", err)
	}
	for _, k := range keys {
		seq.Add(k, k*10)
	}
	return seq
}

func TestStrategy_GetNeverTouches(t *testing.T) {
	s := New[int, int]()
	seq := newSeq(t, 1, 2, 3)

	v, ok, touched := s.Get(seq, 1)
	if !ok || touched || v != 10 {
		t.Errorf("Get(1) = %d, %v, %v; want 10, true, false", v, ok, touched)
	}
	if got, want := seq.Keys(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestStrategy_PutReinserts(t *testing.T) {
	s := New[int, int]()
	seq := newSeq(t, 1, 2, 3)

	prev, existed, ev := s.Put(seq, 1, 100)
	if !existed || prev != 10 {
		t.Errorf("Put(1) = %d, %v; want 10, true", prev, existed)
	}
	if ev.Evicted {
		t.Errorf("Put(existing) evicted %v", ev.Key)
	}
	if got, want := seq.Keys(), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := seq.Peek(1); v != 100 {
		t.Errorf("Peek(1) = %d, want 100", v)
	}

	_, _, ev = s.Put(seq, 4, 40)
	if !ev.Evicted || ev.Key != 2 {
		t.Errorf("Put(4) eviction = %+v, want 2", ev)
	}
}

func TestStrategy_Replace(t *testing.T) {
	s := New[int, int]()
	seq := newSeq(t, 1, 2, 3)

	if _, existed := s.Replace(seq, 9, 90); existed {
		t.Error("Replace(9) should report absence")
	}
	if got, want := seq.Keys(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after missed Replace = %v, want %v", got, want)
	}

	prev, existed := s.Replace(seq, 2, 200)
	if !existed || prev != 20 {
		t.Errorf("Replace(2) = %d, %v; want 20, true", prev, existed)
	}
	if got, want := seq.Keys(), []int{1, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
