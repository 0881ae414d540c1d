// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"unsafe"
)

// M2d is a 2D affine transform of float32.
// It is stored as [a b c d tx ty] and represents
// the 3x3 matrix
//
//	| a c tx |
//	| b d ty |
//	| 0 0 1  |
type M2d [3]V2

// Flat returns m as a flat array, sharing its storage.
func (m *M2d) Flat() *[6]float32 { return (*[6]float32)(unsafe.Pointer(m)) }

// A returns m[0][0].
func (m *M2d) A() float32 { return m[0][0] }

// B returns m[0][1].
func (m *M2d) B() float32 { return m[0][1] }

// C returns m[1][0].
func (m *M2d) C() float32 { return m[1][0] }

// D returns m[1][1].
func (m *M2d) D() float32 { return m[1][1] }

// Tx returns m[2][0].
func (m *M2d) Tx() float32 { return m[2][0] }

// Ty returns m[2][1].
func (m *M2d) Ty() float32 { return m[2][1] }

// I makes m an identity transform.
func (m *M2d) I() { *m = M2d{{1}, {0, 1}} }

// Det returns the determinant of m.
func (m *M2d) Det() float32 { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// Invert sets m to contain the inverse of n.
// It returns false, and leaves m unchanged, if the
// determinant of n is zero.
func (m *M2d) Invert(n *M2d) bool {
	det := n.Det()
	if det == 0 {
		return false
	}
	idet := 1 / det
	a, b, c, d, tx, ty := n[0][0], n[0][1], n[1][0], n[1][1], n[2][0], n[2][1]
	*m = M2d{
		{d * idet, -b * idet},
		{-c * idet, a * idet},
		{(c*ty - d*tx) * idet, (b*tx - a*ty) * idet},
	}
	return true
}

// Mul sets m to contain l ⋅ r.
func (m *M2d) Mul(l, r *M2d) {
	l0, l1, l2, l3, l4, l5 := l[0][0], l[0][1], l[1][0], l[1][1], l[2][0], l[2][1]
	r0, r1, r2, r3, r4, r5 := r[0][0], r[0][1], r[1][0], r[1][1], r[2][0], r[2][1]
	*m = M2d{
		{l0*r0 + l2*r1, l1*r0 + l3*r1},
		{l0*r2 + l2*r3, l1*r2 + l3*r3},
		{l0*r4 + l2*r5 + l4, l1*r4 + l3*r5 + l5},
	}
}

// Rotate sets m to contain a rotation of angle radians.
func (m *M2d) Rotate(angle float32) {
	s, c := sin(angle), cos(angle)
	*m = M2d{{c, s}, {-s, c}}
}

// Scale sets m to contain a scaling transform.
func (m *M2d) Scale(x, y float32) { *m = M2d{{x}, {1: y}} }

// Translate sets m to contain a translation transform.
func (m *M2d) Translate(x, y float32) { *m = M2d{{1}, {0, 1}, {x, y}} }

// MulRotate sets m to contain n ⋅ R, where R is a
// rotation of angle radians.
func (m *M2d) MulRotate(n *M2d, angle float32) {
	n0, n1, n2, n3 := n[0][0], n[0][1], n[1][0], n[1][1]
	s, c := sin(angle), cos(angle)
	m[0] = V2{n0*c + n2*s, n1*c + n3*s}
	m[1] = V2{n0*-s + n2*c, n1*-s + n3*c}
	m[2] = n[2]
}

// MulScale sets m to contain n ⋅ S, where S scales by v.
func (m *M2d) MulScale(n *M2d, v *V2) {
	x, y := v[0], v[1]
	m[0].Scale(x, &n[0])
	m[1].Scale(y, &n[1])
	m[2] = n[2]
}

// MulTranslate sets m to contain n ⋅ T, where T
// translates by v.
func (m *M2d) MulTranslate(n *M2d, v *V2) {
	x, y := v[0], v[1]
	tx := n[0][0]*x + n[1][0]*y + n[2][0]
	ty := n[0][1]*x + n[1][1]*y + n[2][1]
	m[0] = n[0]
	m[1] = n[1]
	m[2] = V2{tx, ty}
}

// Frob returns the Frobenius norm of m.
// The implicit last row contributes 1.
func (m *M2d) Frob() float32 { return sqrt(m[0].LenSq() + m[1].LenSq() + m[2].LenSq() + 1) }

// Add sets m to contain l + r.
func (m *M2d) Add(l, r *M2d) {
	for i := range m {
		m[i].Add(&l[i], &r[i])
	}
}

// Sub sets m to contain l - r.
func (m *M2d) Sub(l, r *M2d) {
	for i := range m {
		m[i].Sub(&l[i], &r[i])
	}
}

// MulScalar sets m to contain s ⋅ n.
func (m *M2d) MulScalar(n *M2d, s float32) {
	for i := range m {
		m[i].Scale(s, &n[i])
	}
}

// MulScalarAdd sets m to contain l + s ⋅ r.
func (m *M2d) MulScalarAdd(l, r *M2d, s float32) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = l[i][j] + r[i][j]*s
		}
	}
}

// Equal returns whether m and n are approximately equal.
func (m *M2d) Equal(n *M2d) bool {
	for i := range m {
		if !m[i].Equal(&n[i]) {
			return false
		}
	}
	return true
}
