// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"unsafe"
)

// M2 is a column-major 2x2 matrix of float32.
type M2 [2]V2

// Flat returns m as a flat array, sharing its storage.
func (m *M2) Flat() *[4]float32 { return (*[4]float32)(unsafe.Pointer(m)) }

// I makes m an identity matrix.
func (m *M2) I() { *m = M2{{1}, {0, 1}} }

// Transpose sets m to contain the transpose of n.
func (m *M2) Transpose(n *M2) {
	if m == n {
		m[0][1], m[1][0] = m[1][0], m[0][1]
		return
	}
	m[0] = V2{n[0][0], n[1][0]}
	m[1] = V2{n[0][1], n[1][1]}
}

// Det returns the determinant of m.
func (m *M2) Det() float32 { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// Adjoint sets m to contain the adjugate of n.
func (m *M2) Adjoint(n *M2) {
	a, b, c, d := n[0][0], n[0][1], n[1][0], n[1][1]
	*m = M2{{d, -b}, {-c, a}}
}

// Invert sets m to contain the inverse of n.
// It returns false, and leaves m unchanged, if the
// determinant of n is zero.
func (m *M2) Invert(n *M2) bool {
	det := n.Det()
	if det == 0 {
		return false
	}
	idet := 1 / det
	a, b, c, d := n[0][0], n[0][1], n[1][0], n[1][1]
	*m = M2{{d * idet, -b * idet}, {-c * idet, a * idet}}
	return true
}

// Mul sets m to contain l ⋅ r.
func (m *M2) Mul(l, r *M2) {
	l0, l1, l2, l3 := l[0][0], l[0][1], l[1][0], l[1][1]
	r0, r1, r2, r3 := r[0][0], r[0][1], r[1][0], r[1][1]
	m[0] = V2{l0*r0 + l2*r1, l1*r0 + l3*r1}
	m[1] = V2{l0*r2 + l2*r3, l1*r2 + l3*r3}
}

// Rotate sets m to contain a rotation of angle radians.
func (m *M2) Rotate(angle float32) {
	s, c := sin(angle), cos(angle)
	*m = M2{{c, s}, {-s, c}}
}

// Scale sets m to contain a scaling transform.
func (m *M2) Scale(x, y float32) { *m = M2{{x}, {1: y}} }

// MulRotate sets m to contain n ⋅ R, where R is a
// rotation of angle radians.
func (m *M2) MulRotate(n *M2, angle float32) {
	n0, n1, n2, n3 := n[0][0], n[0][1], n[1][0], n[1][1]
	s, c := sin(angle), cos(angle)
	m[0] = V2{n0*c + n2*s, n1*c + n3*s}
	m[1] = V2{n0*-s + n2*c, n1*-s + n3*c}
}

// MulScale sets m to contain n ⋅ S, where S scales by v.
func (m *M2) MulScale(n *M2, v *V2) {
	x, y := v[0], v[1]
	m[0].Scale(x, &n[0])
	m[1].Scale(y, &n[1])
}

// Frob returns the Frobenius norm of m.
func (m *M2) Frob() float32 { return sqrt(m[0].LenSq() + m[1].LenSq()) }

// Add sets m to contain l + r.
func (m *M2) Add(l, r *M2) {
	for i := range m {
		m[i].Add(&l[i], &r[i])
	}
}

// Sub sets m to contain l - r.
func (m *M2) Sub(l, r *M2) {
	for i := range m {
		m[i].Sub(&l[i], &r[i])
	}
}

// MulScalar sets m to contain s ⋅ n.
func (m *M2) MulScalar(n *M2, s float32) {
	for i := range m {
		m[i].Scale(s, &n[i])
	}
}

// MulScalarAdd sets m to contain l + s ⋅ r.
func (m *M2) MulScalarAdd(l, r *M2, s float32) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = l[i][j] + r[i][j]*s
		}
	}
}

// Equal returns whether m and n are approximately equal.
func (m *M2) Equal(n *M2) bool { return m[0].Equal(&n[0]) && m[1].Equal(&n[1]) }
