// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bitvec defines a bit vector type useful for
// resource management (e.g., heap allocation and handle
// tables).
package bitvec

import (
	"math/bits"
)

const wordBits = 64

// V is a growable bit vector.
// The zero value is an empty vector.
type V struct {
	s   []uint64
	rem int
}

// Len returns the number of bits in the vector.
func (v *V) Len() int { return len(v.s) * wordBits }

// Rem returns the number of unset bits in the vector.
func (v *V) Rem() int { return v.rem }

// Grow appends nwords*64 unset bits to the vector.
// It returns the value of v.Len prior to growing.
func (v *V) Grow(nwords int) (index int) {
	index = v.Len()
	if nwords > 0 {
		v.rem += nwords * wordBits
		v.s = append(v.s, make([]uint64, nwords)...)
	}
	return
}

// Set sets a given bit.
func (v *V) Set(index int) {
	i, b := index/wordBits, uint64(1)<<(index%wordBits)
	if v.s[i]&b == 0 {
		v.s[i] |= b
		v.rem--
	}
}

// Unset unsets a given bit.
func (v *V) Unset(index int) {
	i, b := index/wordBits, uint64(1)<<(index%wordBits)
	if v.s[i]&b != 0 {
		v.s[i] &^= b
		v.rem++
	}
}

// IsSet checks whether a given bit is set.
func (v *V) IsSet(index int) bool {
	return v.s[index/wordBits]&(uint64(1)<<(index%wordBits)) != 0
}

// SetRange sets the bits in [index, index+n).
func (v *V) SetRange(index, n int) {
	for i := index; i < index+n; i++ {
		v.Set(i)
	}
}

// UnsetRange unsets the bits in [index, index+n).
func (v *V) UnsetRange(index, n int) {
	for i := index; i < index+n; i++ {
		v.Unset(i)
	}
}

// Search locates the first unset bit in the vector.
// It fails only when v.Rem() == 0.
func (v *V) Search() (index int, ok bool) {
	if v.rem == 0 {
		return
	}
	for i, x := range v.s {
		if x != ^uint64(0) {
			return i*wordBits + bits.TrailingZeros64(^x), true
		}
	}
	return
}

// SearchRange locates the first contiguous range of n
// unset bits.
// If ok is true, every bit in [index, index+n) is unset.
// It calls Search if n <= 1.
func (v *V) SearchRange(n int) (index int, ok bool) {
	if n <= 1 {
		return v.Search()
	}
	if v.rem < n {
		return
	}
	var start, cnt int
	for i, x := range v.s {
		switch x {
		case 0:
			if cnt == 0 {
				start = i * wordBits
			}
			if cnt += wordBits; cnt >= n {
				return start, true
			}
			continue
		case ^uint64(0):
			cnt = 0
			continue
		}
		for b := range wordBits {
			if x&(1<<b) != 0 {
				cnt = 0
				continue
			}
			if cnt == 0 {
				start = i*wordBits + b
			}
			if cnt++; cnt >= n {
				return start, true
			}
		}
	}
	return
}

// Clear unsets every bit in the vector.
func (v *V) Clear() {
	clear(v.s)
	v.rem = v.Len()
}
