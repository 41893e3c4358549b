// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Singular is the determinant magnitude below which
// a matrix is considered not invertible.
const Singular = 1e-10

// M2 is a column-major 2x2 matrix of float32.
type M2 [2]V2

// I makes m an identity matrix.
func (m *M2) I() { *m = M2{{1}, {0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M2) Mul(l, r *M2) {
	var x M2
	for i := range x {
		for j := range x {
			for k := range x {
				x[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = x
}

// Transpose sets m to contain the transpose of n.
func (m *M2) Transpose(n *M2) { *m = M2{{n[0][0], n[1][0]}, {n[0][1], n[1][1]}} }

// Det returns the determinant of m.
func (m *M2) Det() float32 { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// Invert sets m to contain the inverse of n.
// It returns false, leaving m unchanged, if n is
// singular.
func (m *M2) Invert(n *M2) bool {
	det := n.Det()
	if math32.Abs(det) < Singular {
		return false
	}
	idet := 1 / det
	*m = M2{
		{n[1][1] * idet, -n[0][1] * idet},
		{-n[1][0] * idet, n[0][0] * idet},
	}
	return true
}

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// I makes m an identity matrix.
func (m *M3) I() { *m = M3{{1}, {0, 1}, {0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M3) Mul(l, r *M3) {
	var x M3
	for i := range x {
		for j := range x {
			for k := range x {
				x[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = x
}

// Transpose sets m to contain the transpose of n.
func (m *M3) Transpose(n *M3) {
	x := *n
	for i := range m {
		for j := range m {
			m[i][j] = x[j][i]
		}
	}
}

// Det returns the determinant of m.
func (m *M3) Det() float32 {
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	return m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2
}

// Adjugate sets m to contain the adjugate of n.
func (m *M3) Adjugate(n *M3) {
	*m = M3{
		{
			n[1][1]*n[2][2] - n[1][2]*n[2][1],
			-(n[0][1]*n[2][2] - n[0][2]*n[2][1]),
			n[0][1]*n[1][2] - n[0][2]*n[1][1],
		},
		{
			-(n[1][0]*n[2][2] - n[1][2]*n[2][0]),
			n[0][0]*n[2][2] - n[0][2]*n[2][0],
			-(n[0][0]*n[1][2] - n[0][2]*n[1][0]),
		},
		{
			n[1][0]*n[2][1] - n[1][1]*n[2][0],
			-(n[0][0]*n[2][1] - n[0][1]*n[2][0]),
			n[0][0]*n[1][1] - n[0][1]*n[1][0],
		},
	}
}

// Invert sets m to contain the inverse of n.
// It returns false, leaving m unchanged, if n is
// singular.
func (m *M3) Invert(n *M3) bool {
	det := n.Det()
	if math32.Abs(det) < Singular {
		return false
	}
	var x M3
	x.Adjugate(n)
	idet := 1 / det
	for i := range x {
		x[i].Scale(idet, &x[i])
	}
	*m = x
	return true
}

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var x M4
	for i := range x {
		for j := range x {
			for k := range x {
				x[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = x
}

// MulScalar sets m to contain s ⋅ n.
func (m *M4) MulScalar(s float32, n *M4) {
	for i := range m {
		m[i].Scale(s, &n[i])
	}
}

// Transpose sets m to contain the transpose of n.
func (m *M4) Transpose(n *M4) {
	x := *n
	for i := range m {
		for j := range m {
			m[i][j] = x[j][i]
		}
	}
}

// minors computes the 2x2 sub-determinants of the
// upper (s) and lower (c) halves of m.
func (m *M4) minors() (s, c [6]float32) {
	s[0] = m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s[1] = m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s[2] = m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s[3] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s[4] = m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s[5] = m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c[0] = m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c[1] = m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c[2] = m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c[3] = m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c[4] = m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c[5] = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	return
}

// Det returns the determinant of m.
func (m *M4) Det() float32 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Adjugate sets m to contain the adjugate of n.
func (m *M4) Adjugate(n *M4) {
	s, c := n.minors()
	*m = M4{
		{
			c[5]*n[1][1] - c[4]*n[1][2] + c[3]*n[1][3],
			-c[5]*n[0][1] + c[4]*n[0][2] - c[3]*n[0][3],
			s[5]*n[3][1] - s[4]*n[3][2] + s[3]*n[3][3],
			-s[5]*n[2][1] + s[4]*n[2][2] - s[3]*n[2][3],
		},
		{
			-c[5]*n[1][0] + c[2]*n[1][2] - c[1]*n[1][3],
			c[5]*n[0][0] - c[2]*n[0][2] + c[1]*n[0][3],
			-s[5]*n[3][0] + s[2]*n[3][2] - s[1]*n[3][3],
			s[5]*n[2][0] - s[2]*n[2][2] + s[1]*n[2][3],
		},
		{
			c[4]*n[1][0] - c[2]*n[1][1] + c[0]*n[1][3],
			-c[4]*n[0][0] + c[2]*n[0][1] - c[0]*n[0][3],
			s[4]*n[3][0] - s[2]*n[3][1] + s[0]*n[3][3],
			-s[4]*n[2][0] + s[2]*n[2][1] - s[0]*n[2][3],
		},
		{
			-c[3]*n[1][0] + c[1]*n[1][1] - c[0]*n[1][2],
			c[3]*n[0][0] - c[1]*n[0][1] + c[0]*n[0][2],
			-s[3]*n[3][0] + s[1]*n[3][1] - s[0]*n[3][2],
			s[3]*n[2][0] - s[1]*n[2][1] + s[0]*n[2][2],
		},
	}
}

// Invert sets m to contain the inverse of n.
// It returns false, leaving m unchanged, if n is
// singular.
func (m *M4) Invert(n *M4) bool {
	det := n.Det()
	if math32.Abs(det) < Singular {
		return false
	}
	var x M4
	x.Adjugate(n)
	x.MulScalar(1/det, &x)
	*m = x
	return true
}

// InvertM4 returns the inverse of m.
// ok is false if m is singular.
func InvertM4(m M4) (n M4, ok bool) {
	ok = n.Invert(&m)
	return
}

// Translate makes m a translation matrix.
func (m *M4) Translate(x, y, z float32) {
	m.I()
	m[3] = V4{x, y, z, 1}
}

// Scale makes m a scale matrix.
func (m *M4) Scale(x, y, z float32) { *m = M4{{x}, {1: y}, {2: z}, {3: 1}} }

// RotateX makes m a rotation of angle radians
// about the x axis.
func (m *M4) RotateX(angle float32) {
	s, c := math32.Sincos(angle)
	*m = M4{{1}, {0, c, s}, {0, -s, c}, {3: 1}}
}

// RotateY makes m a rotation of angle radians
// about the y axis.
func (m *M4) RotateY(angle float32) {
	s, c := math32.Sincos(angle)
	*m = M4{{c, 0, -s}, {1: 1}, {s, 0, c}, {3: 1}}
}

// RotateZ makes m a rotation of angle radians
// about the z axis.
func (m *M4) RotateZ(angle float32) {
	s, c := math32.Sincos(angle)
	*m = M4{{c, s}, {-s, c}, {2: 1}, {3: 1}}
}

// RotateQ makes m a rotation matrix from the unit
// quaternion q.
func (m *M4) RotateQ(q *Q) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	*m = M4{
		{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y)},
		{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x)},
		{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y)},
		{3: 1},
	}
}

// LookAt makes m a right-handed view transform.
// center - eye must not be parallel to up.
func (m *M4) LookAt(eye, center, up *V3) {
	var f, s, u V3
	f.Sub(center, eye)
	f.Norm(&f)
	s.Cross(&f, up)
	s.Norm(&s)
	u.Cross(&s, &f)
	*m = M4{
		{s[0], u[0], -f[0]},
		{s[1], u[1], -f[1]},
		{s[2], u[2], -f[2]},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Perspective makes m a right-handed perspective
// projection.
// Depth is mapped to [0, 1], with -znear at 0 and
// -zfar at 1.
func (m *M4) Perspective(yfov, aspect, znear, zfar float32) {
	f := 1 / math32.Tan(yfov/2)
	r := 1 / (znear - zfar)
	*m = M4{
		{f / aspect},
		{1: f},
		{2: zfar * r, 3: -1},
		{2: znear * zfar * r},
	}
}

// Ortho makes m a right-handed orthographic
// projection.
// Depth is mapped to [0, 1], with -znear at 0 and
// -zfar at 1.
func (m *M4) Ortho(left, right, bottom, top, znear, zfar float32) {
	w := 1 / (right - left)
	h := 1 / (top - bottom)
	r := 1 / (znear - zfar)
	*m = M4{
		{2 * w},
		{1: 2 * h},
		{2: r},
		{-(right + left) * w, -(top + bottom) * h, znear * r, 1},
	}
}
