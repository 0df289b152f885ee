package maxsized

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

// model is a slice-backed reference for the recency rules.
type model struct {
	policy    Policy
	maxSize   int
	order     []int
	values    map[int]int
	recent    int
	hasRecent bool
}

func newModel(p Policy, maxSize int) *model {
	return &model{policy: p, maxSize: maxSize, values: make(map[int]int)}
}

func (m *model) moveToTail(k int) {
	if i := slices.Index(m.order, k); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	m.order = append(m.order, k)
	m.recent, m.hasRecent = k, true
}

func (m *model) put(k, v int) (int, bool) {
	prev, ok := m.values[k]
	if !ok && len(m.order) == m.maxSize {
		delete(m.values, m.order[0])
		m.order = m.order[1:]
	}
	m.values[k] = v
	m.moveToTail(k)
	return prev, ok
}

func (m *model) replace(k, v int) (int, bool) {
	prev, ok := m.values[k]
	if !ok {
		return 0, false
	}
	m.values[k] = v
	m.moveToTail(k)
	return prev, true
}

func (m *model) get(k int) (int, bool) {
	v, ok := m.values[k]
	if ok && m.policy == AccessTouches {
		m.moveToTail(k)
	}
	return v, ok
}

func (m *model) mostRecent() (int, bool) {
	if !m.hasRecent {
		return 0, false
	}
	v, ok := m.values[m.recent]
	return v, ok
}

func TestE2E_MatchesModel(t *testing.T) {
	for _, p := range Policies() {
		for _, maxSize := range []int{1, 3, 8} {
			for seed := int64(1); seed <= 5; seed++ {
				runAgainstModel(t, p, maxSize, seed)
			}
		}
	}
}

func runAgainstModel(t *testing.T, p Policy, maxSize int, seed int64) {
	t.Helper()

	m, err := New[int, int](maxSize, WithPolicy(p))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ref := newModel(p, maxSize)
	rng := rand.New(rand.NewSource(seed))

	for step := 0; step < 2000; step++ {
		k := rng.Intn(maxSize * 2)
		v := rng.Int()

		var got, want int
		var gotOK, wantOK bool
		var op string
		switch rng.Intn(3) {
		case 0:
			op = "Put"
			got, gotOK = m.Put(k, v)
			want, wantOK = ref.put(k, v)
		case 1:
			op = "Replace"
			got, gotOK = m.Replace(k, v)
			want, wantOK = ref.replace(k, v)
		default:
			op = "Get"
			got, gotOK = m.Get(k)
			want, wantOK = ref.get(k)
		}

		if got != want || gotOK != wantOK {
			t.Fatalf("%v/%d/seed %d step %d: %s(%d) = %d, %v; want %d, %v",
				p, maxSize, seed, step, op, k, got, gotOK, want, wantOK)
		}
		if keys := m.KeysInOrder(); !reflect.DeepEqual(keys, ref.order) && !(len(keys) == 0 && len(ref.order) == 0) {
			t.Fatalf("%v/%d/seed %d step %d: KeysInOrder() = %v, want %v", p, maxSize, seed, step, keys, ref.order)
		}
		if m.Size() > maxSize {
			t.Fatalf("%v/%d/seed %d step %d: Size() = %d exceeds %d", p, maxSize, seed, step, m.Size(), maxSize)
		}
		gotRecent, gotRecentOK := m.GetMostRecent()
		wantRecent, wantRecentOK := ref.mostRecent()
		if gotRecent != wantRecent || gotRecentOK != wantRecentOK {
			t.Fatalf("%v/%d/seed %d step %d: GetMostRecent() = %d, %v; want %d, %v",
				p, maxSize, seed, step, gotRecent, gotRecentOK, wantRecent, wantRecentOK)
		}
	}
}

func TestE2E_WriteOnlyReadsNeverReorder(t *testing.T) {
	m, err := New[int, int](16, WithPolicy(WriteOnlyTouches))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 16; i++ {
		m.Put(i, i*i)
	}
	before := m.KeysInOrder()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		m.Get(rng.Intn(32))
	}

	if after := m.KeysInOrder(); !reflect.DeepEqual(before, after) {
		t.Errorf("KeysInOrder() after reads = %v, want %v", after, before)
	}
	if v, _ := m.GetMostRecent(); v != 15*15 {
		t.Errorf("GetMostRecent() = %d, want %d", v, 15*15)
	}
}

func TestE2E_InsertionOrderPreserved(t *testing.T) {
	for _, p := range Policies() {
		m, err := New[string, int](10, WithPolicy(p))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		want := []string{"q", "w", "e", "r", "t", "y"}
		for i, k := range want {
			m.Put(k, i)
		}
		if got := m.KeysInOrder(); !reflect.DeepEqual(got, want) {
			t.Errorf("%v: KeysInOrder() = %v, want %v", p, got, want)
		}
	}
}
