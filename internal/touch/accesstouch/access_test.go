package accesstouch

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

func TestStrategy_GetTouches(t *testing.T) {
	s := New[int, int]()
	seq := newSeq(t, 1, 2, 3)

	v, ok, touched := s.Get(seq, 1)
	if !ok || !touched || v != 10 {
		t.Errorf("Get(1) = %d, %v, %v; want 10, true, true", v, ok, touched)
	}
	if got, want := seq.Keys(), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if _, ok, touched := s.Get(seq, 9); ok || touched {
		t.Errorf("Get(9) = _, %v, %v; want false, false", ok, touched)
	}
}

func TestStrategy_Put(t *testing.T) {
	s := New[int, int]()
	seq := newSeq(t, 1, 2, 3)

	prev, existed, ev := s.Put(seq, 2, 200)
	if !existed || prev != 20 || ev.Evicted {
		t.Errorf("Put(2) = %d, %v, %+v", prev, existed, ev)
	}

	_, existed, ev = s.Put(seq, 4, 40)
	if existed || !ev.Evicted || ev.Key != 1 {
		t.Errorf("Put(4) existed=%v eviction=%+v; want eviction of 1", existed, ev)
	}
	if got, want := seq.Keys(), []int{3, 2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestStrategy_Replace(t *testing.T) {
	s := New[int, int]()
	seq := newSeq(t, 1, 2, 3)

	if _, existed := s.Replace(seq, 9, 90); existed {
		t.Error("Replace(9) should report absence")
	}
	if seq.Contains(9) {
		t.Error("Replace(9) must not insert")
	}

	prev, existed := s.Replace(seq, 1, 100)
	if !existed || prev != 10 {
		t.Errorf("Replace(1) = %d, %v; want 10, true", prev, existed)
	}
	if got, want := seq.Keys(), []int{2, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
