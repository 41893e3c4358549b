// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"iter"
)

// Slice is a read-only view of a Buffer's elements.
// It holds a read lock on the buffer until Release is
// called.
type Slice[T any] struct {
	b      *Buffer[T]
	lo, hi int
	done   bool
}

// SliceMut is a read-write view of a Buffer's elements.
// It holds the write lock on the buffer until Release is
// called.
type SliceMut[T any] struct {
	v Slice[T]
}

// AsSlice returns a view of every element of b.
func (b *Buffer[T]) AsSlice() *Slice[T] {
	b.mu.RLock()
	return &Slice[T]{b: b, hi: b.Len()}
}

// AsSliceMut returns a mutable view of every element of
// b.
func (b *Buffer[T]) AsSliceMut() *SliceMut[T] {
	b.mu.Lock()
	return &SliceMut[T]{Slice[T]{b: b, hi: b.Len()}}
}

// Slice returns a view of the elements in [lo, hi).
// It panics if lo > hi or hi > b.Len().
func (b *Buffer[T]) Slice(lo, hi int) *Slice[T] {
	b.mu.RLock()
	if lo < 0 || lo > hi || hi > b.Len() {
		b.mu.RUnlock()
		panic("engine.Buffer.Slice: range out of bounds")
	}
	return &Slice[T]{b: b, lo: lo, hi: hi}
}

// SliceMut returns a mutable view of the elements in
// [lo, hi).
// It panics if lo > hi or hi > b.Len().
func (b *Buffer[T]) SliceMut(lo, hi int) *SliceMut[T] {
	b.mu.Lock()
	if lo < 0 || lo > hi || hi > b.Len() {
		b.mu.Unlock()
		panic("engine.Buffer.SliceMut: range out of bounds")
	}
	return &SliceMut[T]{Slice[T]{b: b, lo: lo, hi: hi}}
}

// Read calls fn with a view of every element of b.
// The view is released when fn returns or panics.
func (b *Buffer[T]) Read(fn func(s *Slice[T])) {
	s := b.AsSlice()
	defer s.Release()
	fn(s)
}

// Write calls fn with a mutable view of every element of
// b.
// The view is released when fn returns or panics.
func (b *Buffer[T]) Write(fn func(s *SliceMut[T])) {
	s := b.AsSliceMut()
	defer s.Release()
	fn(s)
}

func (s *Slice[T]) check(fn string) {
	if s.done {
		panic("engine." + fn + ": view used after Release")
	}
}

// Release releases s's lock on the buffer.
// s must not be used afterwards.
func (s *Slice[T]) Release() {
	s.check("Slice.Release")
	s.done = true
	s.b.mu.RUnlock()
}

// Len returns the number of elements in s.
func (s *Slice[T]) Len() int {
	s.check("Slice.Len")
	return s.hi - s.lo
}

// Offset returns the index in the buffer of s's first
// element.
func (s *Slice[T]) Offset() int {
	s.check("Slice.Offset")
	return s.lo
}

// At returns the i-th element of s.
func (s *Slice[T]) At(i int) T {
	s.check("Slice.At")
	if i < 0 || i >= s.hi-s.lo {
		panic("engine.Slice.At: index out of bounds")
	}
	return s.b.data[s.lo+i]
}

// CopyTo copies the elements of s to dst and returns the
// number of elements copied.
func (s *Slice[T]) CopyTo(dst []T) int {
	s.check("Slice.CopyTo")
	return copy(dst, s.b.data[s.lo:s.hi])
}

// All returns an iterator over the elements of s.
func (s *Slice[T]) All() iter.Seq2[int, T] {
	s.check("Slice.All")
	return s.all()
}

func (s *Slice[T]) all() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.b.data[s.lo:s.hi] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Release releases s's lock on the buffer.
// s must not be used afterwards.
func (s *SliceMut[T]) Release() {
	s.v.check("SliceMut.Release")
	s.v.done = true
	s.v.b.mu.Unlock()
}

// Len returns the number of elements in s.
func (s *SliceMut[T]) Len() int {
	s.v.check("SliceMut.Len")
	return s.v.hi - s.v.lo
}

// Offset returns the index in the buffer of s's first
// element.
func (s *SliceMut[T]) Offset() int {
	s.v.check("SliceMut.Offset")
	return s.v.lo
}

// At returns the i-th element of s.
func (s *SliceMut[T]) At(i int) T {
	s.v.check("SliceMut.At")
	if i < 0 || i >= s.v.hi-s.v.lo {
		panic("engine.SliceMut.At: index out of bounds")
	}
	return s.v.b.data[s.v.lo+i]
}

// CopyTo copies the elements of s to dst and returns the
// number of elements copied.
func (s *SliceMut[T]) CopyTo(dst []T) int {
	s.v.check("SliceMut.CopyTo")
	return copy(dst, s.v.b.data[s.v.lo:s.v.hi])
}

// All returns an iterator over the elements of s.
func (s *SliceMut[T]) All() iter.Seq2[int, T] {
	s.v.check("SliceMut.All")
	return s.v.all()
}

// Set sets the i-th element of s to v and stages the
// buffer for upload.
func (s *SliceMut[T]) Set(i int, v T) {
	s.v.check("SliceMut.Set")
	if i < 0 || i >= s.v.hi-s.v.lo {
		panic("engine.SliceMut.Set: index out of bounds")
	}
	s.v.b.data[s.v.lo+i] = v
	s.v.b.markDirty()
}

// Write copies src to s and stages the buffer for
// upload.
// It panics if len(src) differs from s.Len().
func (s *SliceMut[T]) Write(src []T) {
	s.v.check("SliceMut.Write")
	if len(src) != s.v.hi-s.v.lo {
		panic("engine.SliceMut.Write: length mismatch")
	}
	copy(s.v.b.data[s.v.lo:s.v.hi], src)
	s.v.b.markDirty()
}
