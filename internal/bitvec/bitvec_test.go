// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package bitvec

import (
	"testing"
)

// checkRem checks that v.Rem() matches the state of v.s.
func (v *V) checkRem(t *testing.T) {
	t.Helper()
	want := v.Len()
	for _, x := range v.s {
		for i := range wordBits {
			if x&(1<<i) != 0 {
				want--
			}
		}
	}
	if r := v.Rem(); r != want {
		t.Fatalf("v.Rem:\nhave %d\nwant %d", r, want)
	}
}

func TestZero(t *testing.T) {
	var v V
	if n := v.Len(); n != 0 {
		t.Fatalf("v.Len:\nhave %d\nwant 0", n)
	}
	if n := v.Rem(); n != 0 {
		t.Fatalf("v.Rem:\nhave %d\nwant 0", n)
	}
	if _, ok := v.Search(); ok {
		t.Fatal("v.Search: succeeded on an empty vector")
	}
}

func TestGrow(t *testing.T) {
	var v V
	for _, x := range [...]struct {
		nplus, wantLen int
	}{
		{1, 64},
		{2, 192},
		{0, 192},
		{-1, 192},
		{13, 1024},
	} {
		if n, i := v.Len(), v.Grow(x.nplus); n != i {
			t.Fatalf("v.Grow:\nhave %d\nwant %d", i, n)
		}
		if n := v.Len(); n != x.wantLen {
			t.Fatalf("v.Grow: Len:\nhave %d\nwant %d", n, x.wantLen)
		}
		if n := v.Rem(); n != x.wantLen {
			t.Fatalf("v.Grow: Rem:\nhave %d\nwant %d", n, x.wantLen)
		}
	}
}

func TestSetUnset(t *testing.T) {
	var v V
	v.Grow(2)
	v.Set(6)
	v.Set(1)
	if v.s[0] != 0x42 {
		t.Fatalf("v.s[0]:\nhave %#x\nwant 0x42", v.s[0])
	}
	v.Set(6)
	v.checkRem(t)
	v.Unset(6)
	v.Unset(6)
	if v.s[0] != 0x02 {
		t.Fatalf("v.s[0]:\nhave %#x\nwant 0x2", v.s[0])
	}
	v.Set(64)
	v.Set(127)
	if v.s[1] != 1|1<<63 {
		t.Fatalf("v.s[1]:\nhave %#x\nwant %#x", v.s[1], uint64(1|1<<63))
	}
	v.checkRem(t)
	if !v.IsSet(1) || v.IsSet(2) || !v.IsSet(127) {
		t.Fatal("v.IsSet: wrong result")
	}
	v.SetRange(60, 8)
	for i := 60; i < 68; i++ {
		if !v.IsSet(i) {
			t.Fatalf("v.SetRange: bit %d not set", i)
		}
	}
	v.checkRem(t)
	v.UnsetRange(62, 4)
	if v.IsSet(62) || v.IsSet(65) || !v.IsSet(61) || !v.IsSet(66) {
		t.Fatal("v.UnsetRange: wrong bits unset")
	}
	v.checkRem(t)
	v.Clear()
	if v.Rem() != v.Len() || v.s[0] != 0 || v.s[1] != 0 {
		t.Fatal("v.Clear: bits remain set")
	}
}

func TestSearch(t *testing.T) {
	var v V
	v.Grow(3)
	check := func(want int) {
		t.Helper()
		index, ok := v.Search()
		if want < 0 {
			if ok {
				t.Fatalf("v.Search:\nhave %d, true\nwant _, false", index)
			}
			return
		}
		if !ok || index != want {
			t.Fatalf("v.Search:\nhave %d, %t\nwant %d, true", index, ok, want)
		}
	}
	check(0)
	v.Set(0)
	check(1)
	v.Set(1)
	v.Set(3)
	check(2)
	v.Unset(1)
	check(1)
	v.SetRange(0, 128)
	check(128)
	v.SetRange(128, 64)
	check(-1)
	v.Unset(150)
	check(150)
}

func TestSearchRange(t *testing.T) {
	var v V
	check := func(n, want int) {
		t.Helper()
		index, ok := v.SearchRange(n)
		if want < 0 {
			if ok {
				t.Fatalf("v.SearchRange(%d):\nhave %d, true\nwant _, false", n, index)
			}
			return
		}
		if !ok || index != want {
			t.Fatalf("v.SearchRange(%d):\nhave %d, %t\nwant %d, true", n, index, ok, want)
		}
	}
	check(3, -1)
	v.Grow(2)
	check(3, 0)
	v.SetRange(0, 3)
	check(3, 3)
	v.Set(9)
	check(6, 3)
	check(7, 10)
	v.SetRange(10, 54)
	check(64, 64)
	check(65, -1)
	v.Unset(63)
	check(65, 63)
	check(1, 3)
	check(0, 3)
	v.checkRem(t)
	if n := v.Rem(); n != 71 {
		t.Fatalf("v.Rem:\nhave %d\nwant 71", n)
	}
	v.Grow(1)
	check(129, 63)
	check(130, -1)
}
