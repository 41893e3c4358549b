// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkDot(b *testing.B) {
	v := V3{-2, 3, 9}
	w := V3{6, -3, 7}
	var d, e float32
	b.Run("V3.Dot", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			d = v.Dot(&w)
		}
	})
	b.Run("DotV3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			e = DotV3(v, w)
		}
	})
	b.Log(d, e)
}

func BenchmarkInvert(b *testing.B) {
	var m, n M4
	m.RotateZ(0.25)
	m[3] = V4{1, 2, 3, 1}
	var ok bool
	b.Run("M4.Invert", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ok = n.Invert(&m)
		}
	})
	b.Run("InvertM4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			n, ok = InvertM4(m)
		}
	})
	b.Log(n, ok)
}
