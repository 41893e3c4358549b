// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

const tol = 1e-4

func approxV3(v, w V3) bool {
	for i := range v {
		if math32.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}

func approxM4(m, n *M4) bool {
	for i := range m {
		for j := range m[i] {
			if math32.Abs(m[i][j]-n[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestV(t *testing.T) {
	var u V3
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u.Add(&v, &w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u.Sub(&v, &w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u.Scale(-1, &v); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := v.Dot(&w); d != 6 {
		t.Fatalf("V3.Dot\nhave %v\nwant 6", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v", l, math.Sqrt(21))
	}

	v = V3{0, 0, -2}
	w = V3{0, 4, 0}

	if v.Norm(&v); v != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 0 -1]", v)
	}
	if w.Norm(&w); w != (V3{0, 1, 0}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 1 0]", w)
	}
	if u.Cross(&v, &w); u != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [1 0 0]", u)
	}
	if u = Cross(w, v); u != (V3{-1, 0, 0}) {
		t.Fatalf("Cross\nhave %v\nwant [-1 0 0]", u)
	}

	m := M3{
		{2, 0, 1},
		{1, 3, 2},
		{4, 2, 3},
	}
	v = V3{-1, 0, 1}

	if u.Mul(&m, &v); u != (V3{2, 2, 2}) {
		t.Fatalf("V3.Mul\nhave %v\nwant [2 2 2]", u)
	}
	m.I()
	if u.Mul(&m, &v); u != v {
		t.Fatalf("V3.Mul\nhave %v\nwant %v", u, v)
	}
}

func TestM(t *testing.T) {
	var l M3
	m := M3{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}
	n := M3{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}

	if l.I(); l != (M3{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("M3.I\nhave %v\nwant [%v %v %v]", l, V3{1}, V3{0, 1}, V3{0, 0, 1})
	}
	if l.Mul(&m, &n); l != (M3{m[1], m[2], m[0]}) {
		t.Fatalf("M3.Mul\nhave %v\nwant [%v %v %v]", l, m[1], m[2], m[0])
	}
	if l.Mul(&n, &m); l != (M3{{7, 1, 4}, {8, 2, 5}, {9, 3, 6}}) {
		t.Fatalf("M3.Mul\nhave %v\nwant %v", l, M3{{7, 1, 4}, {8, 2, 5}, {9, 3, 6}})
	}
	if l.Transpose(&m); l != (M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}) {
		t.Fatalf("M3.Transpose\nhave %v\nwant %v", l, M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	}
	if ok := l.Invert(&n); !ok || l != (M3{n[1], n[2], n[0]}) {
		t.Fatalf("M3.Invert\nhave %v, %t\nwant %v, true", l, ok, M3{n[1], n[2], n[0]})
	}
	// m is singular.
	l.I()
	if ok := l.Invert(&m); ok || l != (M3{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("M3.Invert\nhave %v, %t\nwant identity, false", l, ok)
	}
}

func TestM2(t *testing.T) {
	var l M2
	m := M2{{4, 2}, {7, 6}}
	if d := m.Det(); d != 10 {
		t.Fatalf("M2.Det\nhave %v\nwant 10", d)
	}
	if !l.Invert(&m) {
		t.Fatal("M2.Invert: unexpected failure")
	}
	var i M2
	i.Mul(&m, &l)
	for c := range i {
		for r := range i[c] {
			want := float32(0)
			if c == r {
				want = 1
			}
			if math32.Abs(i[c][r]-want) > tol {
				t.Fatalf("M2 ⋅ M2⁻¹\nhave %v\nwant identity", i)
			}
		}
	}
	if l.Transpose(&m); l != (M2{{4, 7}, {2, 6}}) {
		t.Fatalf("M2.Transpose\nhave %v\nwant [[4 7] [2 6]]", l)
	}
	if (&M2{}).Invert(&M2{{1, 2}, {2, 4}}) {
		t.Fatal("M2.Invert: unexpected success")
	}
}

func TestQ(t *testing.T) {
	var r Q
	q := Q{V: V3{1, 0, 0}, R: 3}
	p := Q{V: V3{0, 1, 0}, R: 3}

	if r.Mul(&q, &p); r.V != (V3{3, 3, 1}) || r.R != 9 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[3 3 1] 9}", r)
	}
	if r.Mul(&p, &q); r.V != (V3{3, 3, -1}) || r.R != 9 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[3 3 -1] 9}", r)
	}
	if q.Mul(&q, &q); q.V != (V3{6}) || q.R != 8 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[6 0 0] 8}", q)
	}
}

func TestTRS(t *testing.T) {
	var x, r, s M4
	var q Q

	x.Translate(-1, -2, -3)
	q.Rotate(0, &V3{1})
	r.RotateQ(&q)
	s.Scale(5, 5, 5)
	x.Mul(&x, &r)
	x.Mul(&x, &s)
	if x != (M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}}) {
		t.Fatalf("T*R*S\nhave %v\nwant %v", x, M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}})
	}
	v := V4{1, 1, 1, 1}
	v.Mul(&x, &v)
	if v != (V4{4, 3, 2, 1}) {
		t.Fatalf("TRS*v\nhave %v\nwant %v", v, V4{4, 3, 2, 1})
	}
}

func TestScaleTransform(t *testing.T) {
	var m M4
	m.Scale(2, 3, 4)
	v := V3{1, 1, 1}
	if v.Transform(&m, &v); v != (V3{2, 3, 4}) {
		t.Fatalf("V3.Transform\nhave %v\nwant [2 3 4]", v)
	}
	m.Translate(1, 2, 3)
	v = V3{}
	if v.Transform(&m, &v); v != (V3{1, 2, 3}) {
		t.Fatalf("V3.Transform\nhave %v\nwant [1 2 3]", v)
	}
	var n M4
	if n.MulScalar(2, &m); n[3] != (V4{2, 4, 6, 2}) || n[0] != (V4{2}) {
		t.Fatalf("M4.MulScalar\nhave %v", n)
	}
}

func TestRotate(t *testing.T) {
	var m M4
	for _, x := range [...]struct {
		rot  func(float32)
		v, w V3
	}{
		{m.RotateX, V3{0, 1, 0}, V3{0, 0, 1}},
		{m.RotateY, V3{0, 0, 1}, V3{1, 0, 0}},
		{m.RotateZ, V3{1, 0, 0}, V3{0, 1, 0}},
	} {
		x.rot(math32.Pi / 2)
		var u V3
		if u.Transform(&m, &x.v); !approxV3(u, x.w) {
			t.Fatalf("M4.Rotate*(π/2) ⋅ %v\nhave %v\nwant %v", x.v, u, x.w)
		}
	}
}

func TestInvert(t *testing.T) {
	var a, b, c, m, inv, id M4
	id.I()
	a.Translate(3, -7, 0.5)
	b.RotateY(0.7)
	c.Scale(2, 0.5, 4)
	m.Mul(&a, &b)
	m.Mul(&m, &c)

	if !inv.Invert(&m) {
		t.Fatal("M4.Invert: unexpected failure")
	}
	var p M4
	if p.Mul(&m, &inv); !approxM4(&p, &id) {
		t.Fatalf("M ⋅ M⁻¹\nhave %v\nwant %v", p, id)
	}
	if p.Mul(&inv, &m); !approxM4(&p, &id) {
		t.Fatalf("M⁻¹ ⋅ M\nhave %v\nwant %v", p, id)
	}
	if d := m.Det(); math32.Abs(d-4) > tol {
		t.Fatalf("M4.Det\nhave %v\nwant 4", d)
	}

	// The adjugate is det ⋅ M⁻¹.
	var adj, want M4
	adj.Adjugate(&m)
	want.MulScalar(m.Det(), &inv)
	if !approxM4(&adj, &want) {
		t.Fatalf("M4.Adjugate\nhave %v\nwant %v", adj, want)
	}

	// In-place inversion.
	p = m
	if !p.Invert(&p) || !approxM4(&p, &inv) {
		t.Fatalf("M4.Invert (aliased)\nhave %v\nwant %v", p, inv)
	}

	var zero M4
	p = id
	if p.Invert(&zero) || p != id {
		t.Fatalf("M4.Invert(zero)\nhave %v\nwant unchanged identity and false", p)
	}
	if _, ok := InvertM4(M4{{1e-4}, {1: 1e-4}, {2: 1e-4}, {3: 1e-4}}); ok {
		t.Fatal("InvertM4: unexpected success")
	}
}

func TestTranspose(t *testing.T) {
	m := M4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	var n M4
	n.Transpose(&m)
	if n[0] != (V4{1, 5, 9, 13}) || n[3] != (V4{4, 8, 12, 16}) {
		t.Fatalf("M4.Transpose\nhave %v", n)
	}
	if n.Transpose(&n); n != m {
		t.Fatalf("M4.Transpose (twice)\nhave %v\nwant %v", n, m)
	}
}

func TestLookAt(t *testing.T) {
	var m M4
	eye := V3{0, 0, 5}
	m.LookAt(&eye, &V3{}, &V3{0, 1, 0})
	var v V3
	if v.Transform(&m, &V3{}); !approxV3(v, V3{0, 0, -5}) {
		t.Fatalf("M4.LookAt ⋅ origin\nhave %v\nwant [0 0 -5]", v)
	}
	if v.Transform(&m, &eye); !approxV3(v, V3{}) {
		t.Fatalf("M4.LookAt ⋅ eye\nhave %v\nwant [0 0 0]", v)
	}
	if v.Transform(&m, &V3{1, 0, 5}); !approxV3(v, V3{1, 0, 0}) {
		t.Fatalf("M4.LookAt ⋅ [1 0 5]\nhave %v\nwant [1 0 0]", v)
	}
}

func TestProjection(t *testing.T) {
	const znear, zfar = 0.5, 100
	var p M4
	p.Perspective(math32.Pi/2, 1, znear, zfar)
	if p[2][3] != -1 || p[3][3] != 0 {
		t.Fatalf("M4.Perspective: unexpected w row\nhave %v", p)
	}
	for _, x := range [...][2]float32{{-znear, 0}, {-zfar, 1}} {
		v := V4{0, 0, x[0], 1}
		v.Mul(&p, &v)
		if d := v[2] / v[3]; math32.Abs(d-x[1]) > tol {
			t.Fatalf("M4.Perspective: depth at z=%v\nhave %v\nwant %v", x[0], d, x[1])
		}
	}

	p.Ortho(-2, 2, -1, 1, znear, zfar)
	for _, x := range [...][2]float32{{-znear, 0}, {-zfar, 1}} {
		v := V4{2, 1, x[0], 1}
		v.Mul(&p, &v)
		if !approxV3(V3{v[0], v[1], v[2]}, V3{1, 1, x[1]}) || v[3] != 1 {
			t.Fatalf("M4.Ortho: z=%v\nhave %v\nwant [1 1 %v 1]", x[0], v, x[1])
		}
	}
}
