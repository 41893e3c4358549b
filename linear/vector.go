// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
package linear

import (
	"github.com/chewxy/math32"
)

// V2 is a 2-component vector of float32.
type V2 [2]float32

// V3 is a 3-component vector of float32.
type V3 [3]float32

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float32, w *V3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
func (v *V3) Norm(w *V3) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	*v = V3{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3) Mul(m *M3, w *V3) {
	var u V3
	for i := range u {
		for j := range m {
			u[i] += m[j][i] * w[j]
		}
	}
	*v = u
}

// Transform sets v to contain the xyz components of
// m ⋅ [w 1].
// The result is not divided by its w component.
func (v *V3) Transform(m *M4, w *V3) {
	x := V4{w[0], w[1], w[2], 1}
	x.Mul(m, &x)
	*v = V3{x[0], x[1], x[2]}
}

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	u.Add(&v, &w)
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	u.Sub(&v, &w)
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) (u V3) {
	u.Scale(s, &v)
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) float32 { return v.Dot(&w) }

// LenV3 returns the length of v.
func LenV3(v V3) float32 { return v.Len() }

// NormV3 returns v normalized.
func NormV3(v V3) V3 { return ScaleV3(1/LenV3(v), v) }

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u.Cross(&v, &w)
	return
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Add sets v to contain l + r.
func (v *V4) Add(l, r *V4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V4) Sub(l, r *V4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V4) Scale(s float32, w *V4) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V4) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
func (v *V4) Norm(w *V4) { v.Scale(1/w.Len(), w) }

// Mul sets v to contain m ⋅ w.
func (v *V4) Mul(m *M4, w *V4) {
	var u V4
	for i := range u {
		for j := range m {
			u[i] += m[j][i] * w[j]
		}
	}
	*v = u
}

// AddV4 returns v + w.
func AddV4(v, w V4) (u V4) {
	u.Add(&v, &w)
	return
}

// SubV4 returns v - w.
func SubV4(v, w V4) (u V4) {
	u.Sub(&v, &w)
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float32, v V4) (u V4) {
	u.Scale(s, &v)
	return
}

// DotV4 returns v ⋅ w.
func DotV4(v, w V4) float32 { return v.Dot(&w) }

// LenV4 returns the length of v.
func LenV4(v V4) float32 { return v.Len() }

// NormV4 returns v normalized.
func NormV4(v V4) V4 { return ScaleV4(1/LenV4(v), v) }
