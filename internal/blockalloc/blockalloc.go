// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package blockalloc implements a first-fit allocator that
// carves a linear range of memory in fixed-size blocks.
package blockalloc

import (
	"github.com/helixos/lumina/internal/bitvec"
)

// Alloc tracks reservations within a linear range.
// It is not safe for concurrent use.
type Alloc struct {
	block  int64
	blocks int
	bv     bitvec.V
	spans  map[int64]int
}

// New creates an allocator managing size bytes in blocks
// of block bytes.
// size is rounded down to a multiple of block.
// It panics if block is not positive or if size is less
// than block.
func New(size, block int64) *Alloc {
	if block <= 0 {
		panic("blockalloc.New: block <= 0")
	}
	if size < block {
		panic("blockalloc.New: size < block")
	}
	n := int(size / block)
	a := &Alloc{block: block, blocks: n, spans: make(map[int64]int)}
	a.bv.Grow((n + 63) / 64)
	// Trailing bits of the last word are never available.
	a.bv.SetRange(n, a.bv.Len()-n)
	return a
}

// BlockSize returns the block size of a.
func (a *Alloc) BlockSize() int64 { return a.block }

// Cap returns the number of bytes managed by a.
func (a *Alloc) Cap() int64 { return int64(a.blocks) * a.block }

// Free returns the number of bytes not reserved.
func (a *Alloc) Free() int64 { return int64(a.bv.Rem()) * a.block }

// Len returns the number of live reservations.
func (a *Alloc) Len() int { return len(a.spans) }

// Reserve reserves n bytes, rounded up to a multiple of
// the block size.
// It returns the byte offset of the reservation, or false
// if no contiguous range is large enough.
// It panics if n is not positive.
func (a *Alloc) Reserve(n int64) (off int64, ok bool) {
	if n <= 0 {
		panic("blockalloc.Alloc.Reserve: n <= 0")
	}
	nb := (n + a.block - 1) / a.block
	if nb > int64(a.blocks) {
		return
	}
	idx, ok := a.bv.SearchRange(int(nb))
	if !ok {
		return
	}
	a.bv.SetRange(idx, int(nb))
	off = int64(idx) * a.block
	a.spans[off] = int(nb)
	return off, true
}

// Size returns the size in bytes of the reservation at
// off, or false if off was not returned by Reserve.
func (a *Alloc) Size(off int64) (int64, bool) {
	nb, ok := a.spans[off]
	return int64(nb) * a.block, ok
}

// Release releases the reservation at off.
// It returns false if off is not a live reservation.
func (a *Alloc) Release(off int64) bool {
	nb, ok := a.spans[off]
	if !ok {
		return false
	}
	delete(a.spans, off)
	a.bv.UnsetRange(int(off/a.block), nb)
	return true
}

// Reset releases every reservation.
func (a *Alloc) Reset() {
	clear(a.spans)
	a.bv.Clear()
	a.bv.SetRange(a.blocks, a.bv.Len()-a.blocks)
}
