// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package slot implements a table of values identified by
// generational handles.
package slot

import (
	"iter"

	"github.com/helixos/lumina/internal/bitvec"
)

// A handle stores the slot generation in its upper 32
// bits and the slot index plus one in its lower 32 bits,
// so it is never zero.

func handle(idx int, gen uint32) uint64 { return uint64(gen)<<32 | uint64(idx+1) }

func split(h uint64) (idx int, gen uint32) { return int(uint32(h)) - 1, uint32(h >> 32) }

type entry[T any] struct {
	val T
	gen uint32
}

// Table stores values of type T.
// Removing a value invalidates its handle: a later value
// stored in the same slot gets a different handle.
// It is not safe for concurrent use.
type Table[T any] struct {
	used bitvec.V
	ents []entry[T]
	n    int
}

// Insert stores v in t and returns its handle.
func (t *Table[T]) Insert(v T) uint64 {
	if t.used.Rem() == 0 {
		t.used.Grow(1)
		t.ents = append(t.ents, make([]entry[T], 64)...)
	}
	idx, ok := t.used.Search()
	if !ok {
		// Should never happen.
		panic("slot.Table.Insert: unexpected failure from bitvec.V.Search")
	}
	t.used.Set(idx)
	t.ents[idx].val = v
	t.n++
	return handle(idx, t.ents[idx].gen)
}

// Get returns a pointer to the value identified by h.
// The pointer is valid until the value is removed.
func (t *Table[T]) Get(h uint64) (*T, bool) {
	idx, gen := split(h)
	if idx < 0 || idx >= len(t.ents) || !t.used.IsSet(idx) || t.ents[idx].gen != gen {
		return nil, false
	}
	return &t.ents[idx].val, true
}

// Remove removes the value identified by h and returns
// it.
func (t *Table[T]) Remove(h uint64) (v T, ok bool) {
	p, ok := t.Get(h)
	if !ok {
		return
	}
	v = *p
	idx, _ := split(h)
	var zero T
	t.ents[idx].val = zero
	t.ents[idx].gen++
	t.used.Unset(idx)
	t.n--
	return v, true
}

// Clear removes every value from t.
// Handles of removed values stay invalid, as with Remove.
func (t *Table[T]) Clear() {
	var zero T
	for i := range t.ents {
		if t.used.IsSet(i) {
			t.used.Unset(i)
			t.ents[i].val = zero
			t.ents[i].gen++
		}
	}
	t.n = 0
}

// Len returns the number of values in t.
func (t *Table[T]) Len() int { return t.n }

// All returns an iterator over the handles and values of
// t, in slot order.
// t must not be modified during iteration.
func (t *Table[T]) All() iter.Seq2[uint64, *T] {
	return func(yield func(uint64, *T) bool) {
		for i := range t.ents {
			if !t.used.IsSet(i) {
				continue
			}
			if !yield(handle(i, t.ents[i].gen), &t.ents[i].val) {
				return
			}
		}
	}
}
