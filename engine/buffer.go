// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/helixos/lumina/driver"
)

// Buffer is a typed GPU buffer of fixed capacity.
// T must not contain pointers.
//
// Views (Slice and SliceMut) hold a reader/writer lock on
// the buffer until released: many Slices or a single
// SliceMut may exist at a time. Upload, Fill, Clear and
// TakeStaging wait for every view to be released, so
// calling them while holding a view on the same goroutine
// deadlocks.
type Buffer[T any] struct {
	mu      sync.RWMutex
	data    []T
	n       atomic.Int64
	usage   driver.BufferUsage
	handle  atomic.Uint64
	pending atomic.Bool
}

// NewBuffer creates a buffer with room for capacity
// elements.
// No native memory is allocated.
// It panics if capacity is negative or if T contains
// pointers.
func NewBuffer[T any](capacity int, usage driver.BufferUsage) *Buffer[T] {
	checkPOD[T]("engine.NewBuffer")
	if capacity < 0 {
		panic("engine.NewBuffer: negative capacity")
	}
	return &Buffer[T]{data: make([]T, capacity), usage: usage}
}

// BufferFrom creates a buffer whose capacity is len(data)
// and uploads data to it.
func BufferFrom[T any](data []T, usage driver.BufferUsage) *Buffer[T] {
	b := NewBuffer[T](len(data), usage)
	b.Upload(data)
	return b
}

// BufferWithDefault creates a buffer filled with the
// zero value of T.
func BufferWithDefault[T any](capacity int, usage driver.BufferUsage) *Buffer[T] {
	b := NewBuffer[T](capacity, usage)
	var zero T
	b.Fill(zero)
	return b
}

// Upload replaces the contents of b with data and stages
// all of it for upload.
// It panics if len(data) is greater than b.Cap().
func (b *Buffer[T]) Upload(data []T) {
	if len(data) > len(b.data) {
		panic("engine.Buffer.Upload: data exceeds capacity")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.data, data)
	b.n.Store(int64(len(data)))
	b.pending.Store(len(data) > 0)
}

// Fill sets every element up to b.Cap() to v and stages
// all of them for upload.
func (b *Buffer[T]) Fill(v T) {
	data := make([]T, len(b.data))
	for i := range data {
		data[i] = v
	}
	b.Upload(data)
}

// Clear sets b's length to zero and discards any pending
// upload.
func (b *Buffer[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.data)
	b.n.Store(0)
	b.pending.Store(false)
}

// Len returns the number of elements in b.
func (b *Buffer[T]) Len() int { return int(b.n.Load()) }

// Cap returns the capacity of b.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// IsEmpty returns whether b.Len() is zero.
func (b *Buffer[T]) IsEmpty() bool { return b.Len() == 0 }

// SizeBytes returns the size in bytes of b's elements.
func (b *Buffer[T]) SizeBytes() int64 { return int64(b.Len()) * int64(sizeOf[T]()) }

// CapBytes returns the size in bytes of b's capacity.
// It is the size of the native allocation.
func (b *Buffer[T]) CapBytes() int64 { return int64(len(b.data)) * int64(sizeOf[T]()) }

// Usage returns the usage of b.
func (b *Buffer[T]) Usage() driver.BufferUsage { return b.usage }

// Handle returns the native handle of b, which is null
// until SetHandle is called.
func (b *Buffer[T]) Handle() driver.BufferHandle { return driver.BufferHandle(b.handle.Load()) }

// SetHandle assigns the native handle of b.
// It panics if h is null or if b already has a handle.
func (b *Buffer[T]) SetHandle(h driver.BufferHandle) {
	if h.IsNull() {
		panic("engine.Buffer.SetHandle: null handle")
	}
	if !b.handle.CompareAndSwap(0, uint64(h)) {
		panic("engine.Buffer.SetHandle: handle already set")
	}
}

// HasPendingUpload returns whether b has staged bytes.
func (b *Buffer[T]) HasPendingUpload() bool { return b.pending.Load() }

// TakeStaging returns a copy of the bytes pending upload
// and clears them.
// The bytes always cover b's whole length, starting at
// the first element, so their size is b.SizeBytes().
// It returns false if nothing is pending.
func (b *Buffer[T]) TakeStaging() ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.pending.Load() {
		return nil, false
	}
	b.pending.Store(false)
	return bytes.Clone(asBytes(b.data[:b.Len()])), true
}

// markDirty stages b's whole length for upload.
// b.mu must be held for writing.
func (b *Buffer[T]) markDirty() {
	if b.Len() > 0 {
		b.pending.Store(true)
	}
}

// resetHandle clears b's handle after the native buffer
// is released.
func (b *Buffer[T]) resetHandle() { b.handle.Store(0) }

// stageAll marks b's whole length as pending so its
// contents are uploaded again to a new native buffer.
func (b *Buffer[T]) stageAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.markDirty()
}
