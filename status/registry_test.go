package status

import (
	"strings"
	"sync"
	"testing"
)

// TestMetricMapGetCached verifies repeated Get returns the same pointer
func TestMetricMapGetCached(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("loot.drops")
	b := r.Ints.Get("loot.drops")
	if a != b {
		t.Fatal("Get returned distinct pointers for one key")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("shared counter = %d, want 3", got)
	}
	if !r.Ints.Has("loot.drops") || r.Ints.Has("loot.collects") {
		t.Error("Has reports wrong membership")
	}
}

// TestMetricMapConcurrentGet exercises the double-checked registration path
func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	ptrs := make([]*AtomicFloat, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("engine.dt")
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(ptrs); i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatalf("goroutine %d got a different pointer", i)
		}
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

// TestRegistryEntries verifies formatting and ordering
func TestRegistryEntries(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("monster.alive").Store(7)
	r.Ints.Get("engine.frames").Store(120)
	r.Floats.Get("engine.time").Set(2.5)
	r.Bools.Get("game.paused").Store(true)
	r.Strings.Get("game.run").Store(strings.Repeat("x", 50))

	got := r.Entries()
	want := []Entry{
		{"engine.frames", "120"},
		{"monster.alive", "7"},
		{"engine.time", "2.50"},
		{"game.paused", "true"},
		{"game.run", strings.Repeat("x", MaxStringLen)},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestAtomicStringZero verifies the zero value loads as empty
func TestAtomicStringZero(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero AtomicString not empty")
	}
}
