package engine

import "github.com/lixenwraith/survivor/core"

type arenaSlot[T any] struct {
	val  T
	gen  uint32
	live bool
	born uint64 // allocation sequence
}

// Arena stores fixed-layout records addressed by generation handles
// Freed indices are recycled; a stale handle never resolves to the new occupant
// Not thread-safe: owned by the frame loop
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32
	live  int
	seq   uint64
}

func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]arenaSlot[T], 0, capacity),
	}
}

// Alloc stores val and returns its handle, reusing the most recently freed index first
func (a *Arena[T]) Alloc(val T) core.Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot[T]{})
	}

	slot := &a.slots[idx]
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1 // zero is the unset handle
	}
	slot.val = val
	slot.live = true
	a.seq++
	slot.born = a.seq
	a.live++
	return core.Handle{Index: idx, Gen: slot.gen}
}

// Get returns a pointer to the live record addressed by h
// The pointer is valid until the next Alloc
func (a *Arena[T]) Get(h core.Handle) (*T, bool) {
	if h.IsZero() || int(h.Index) >= len(a.slots) {
		return nil, false
	}
	slot := &a.slots[h.Index]
	if !slot.live || slot.gen != h.Gen {
		return nil, false
	}
	return &slot.val, true
}

// Contains reports whether h addresses a live record
func (a *Arena[T]) Contains(h core.Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Free releases the record; returns false for stale or unknown handles
func (a *Arena[T]) Free(h core.Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	slot := &a.slots[h.Index]
	var zero T
	slot.val = zero
	slot.live = false
	a.free = append(a.free, h.Index)
	a.live--
	return true
}

// Each visits live records in index order until fn returns false
// Records freed during the walk are skipped; records allocated during the walk are not visited
func (a *Arena[T]) Each(fn func(h core.Handle, v *T) bool) {
	n, start := len(a.slots), a.seq
	for i := 0; i < n; i++ {
		slot := &a.slots[i]
		if !slot.live || slot.born > start {
			continue
		}
		if !fn(core.Handle{Index: uint32(i), Gen: slot.gen}, &slot.val) {
			return
		}
	}
}

// Len returns the number of live records
func (a *Arena[T]) Len() int {
	return a.live
}

// Clear frees every record; outstanding handles become stale
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.slots[i].val = zero
		a.slots[i].live = false
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}
