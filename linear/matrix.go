// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"unsafe"
)

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// Flat returns m as a flat array, sharing its storage.
func (m *M3) Flat() *[9]float32 { return (*[9]float32)(unsafe.Pointer(m)) }

// I makes m an identity matrix.
func (m *M3) I() { *m = M3{{1}, {0, 1}, {0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M3) Mul(l, r *M3) {
	var p M3
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
func (m *M3) Transpose(n *M3) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Det returns the determinant of m.
func (m *M3) Det() float32 {
	a00, a01, a02 := m[0][0], m[0][1], m[0][2]
	a10, a11, a12 := m[1][0], m[1][1], m[1][2]
	a20, a21, a22 := m[2][0], m[2][1], m[2][2]
	return a00*(a22*a11-a12*a21) + a01*(-a22*a10+a12*a20) + a02*(a21*a10-a11*a20)
}

// Adjoint sets m to contain the adjugate of n.
func (m *M3) Adjoint(n *M3) {
	a00, a01, a02 := n[0][0], n[0][1], n[0][2]
	a10, a11, a12 := n[1][0], n[1][1], n[1][2]
	a20, a21, a22 := n[2][0], n[2][1], n[2][2]
	*m = M3{
		{a11*a22 - a12*a21, a02*a21 - a01*a22, a01*a12 - a02*a11},
		{a12*a20 - a10*a22, a00*a22 - a02*a20, a02*a10 - a00*a12},
		{a10*a21 - a11*a20, a01*a20 - a00*a21, a00*a11 - a01*a10},
	}
}

// Invert sets m to contain the inverse of n.
// It returns false, and leaves m unchanged, if the
// determinant of n is zero.
func (m *M3) Invert(n *M3) bool {
	det := n.Det()
	if det == 0 {
		return false
	}
	idet := 1 / det
	a00, a01, a02 := n[0][0], n[0][1], n[0][2]
	a10, a11, a12 := n[1][0], n[1][1], n[1][2]
	a20, a21, a22 := n[2][0], n[2][1], n[2][2]
	s0 := a22*a11 - a12*a21
	s1 := -a22*a10 + a12*a20
	s2 := a21*a10 - a11*a20
	*m = M3{
		{s0 * idet, (-a22*a01 + a02*a21) * idet, (a12*a01 - a02*a11) * idet},
		{s1 * idet, (a22*a00 - a02*a20) * idet, (-a12*a00 + a02*a10) * idet},
		{s2 * idet, (-a21*a00 + a01*a20) * idet, (a11*a00 - a01*a10) * idet},
	}
	return true
}

// Translate sets m to contain a 2D translation transform.
func (m *M3) Translate(x, y float32) { *m = M3{{1}, {0, 1}, {x, y, 1}} }

// Rotate sets m to contain a 2D rotation of angle radians.
func (m *M3) Rotate(angle float32) {
	s, c := sin(angle), cos(angle)
	*m = M3{{c, s}, {-s, c}, {2: 1}}
}

// Scale sets m to contain a 2D scaling transform.
func (m *M3) Scale(x, y float32) { *m = M3{{x}, {1: y}, {2: 1}} }

// MulTranslate sets m to contain n ⋅ T, where T is a
// 2D translation by v.
func (m *M3) MulTranslate(n *M3, v *V2) {
	x, y := v[0], v[1]
	var t V3
	for i := range t {
		t[i] = x*n[0][i] + y*n[1][i] + n[2][i]
	}
	m[0], m[1], m[2] = n[0], n[1], t
}

// MulRotate sets m to contain n ⋅ R, where R is a
// 2D rotation of angle radians.
func (m *M3) MulRotate(n *M3, angle float32) {
	s, c := sin(angle), cos(angle)
	var c0, c1 V3
	for i := range c0 {
		c0[i] = c*n[0][i] + s*n[1][i]
		c1[i] = c*n[1][i] - s*n[0][i]
	}
	m[0], m[1], m[2] = c0, c1, n[2]
}

// MulScale sets m to contain n ⋅ S, where S is a
// 2D scaling by v.
func (m *M3) MulScale(n *M3, v *V2) {
	x, y := v[0], v[1]
	m[0].Scale(x, &n[0])
	m[1].Scale(y, &n[1])
	m[2] = n[2]
}

// FromM2d sets m to contain the 3x3 form of n.
func (m *M3) FromM2d(n *M2d) {
	*m = M3{
		{n[0][0], n[0][1], 0},
		{n[1][0], n[1][1], 0},
		{n[2][0], n[2][1], 1},
	}
}

// FromM4 sets m to contain the upper-left 3x3
// sub-matrix of n.
// The translation of n is not retained.
func (m *M3) FromM4(n *M4) {
	*m = M3{
		{n[0][0], n[0][1], n[0][2]},
		{n[1][0], n[1][1], n[1][2]},
		{n[2][0], n[2][1], n[2][2]},
	}
}

// RotateQ sets m to contain the rotation described
// by q.
// q must be a unit quaternion.
func (m *M3) RotateQ(q *Q) {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, yx, yy := x*x2, y*x2, y*y2
	zx, zy, zz := z*x2, z*y2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	*m = M3{
		{1 - yy - zz, yx + wz, zx - wy},
		{yx - wz, 1 - xx - zz, zy + wx},
		{zx + wy, zy - wx, 1 - xx - yy},
	}
}

// NormalFromM4 sets m to contain the inverse transpose
// of the upper-left 3x3 sub-matrix of n.
// It returns false, and leaves m unchanged, if that
// sub-matrix is singular.
func (m *M3) NormalFromM4(n *M4) bool {
	var a M3
	a.FromM4(n)
	if !a.Invert(&a) {
		return false
	}
	m.Transpose(&a)
	return true
}

// Projection sets m to contain a 2D projection that
// maps [0, width] ⨯ [0, height] to [-1, 1] ⨯ [1, -1].
func (m *M3) Projection(width, height float32) {
	*m = M3{{2 / width}, {1: -2 / height}, {-1, 1, 1}}
}

// Frob returns the Frobenius norm of m.
func (m *M3) Frob() float32 { return sqrt(m[0].LenSq() + m[1].LenSq() + m[2].LenSq()) }

// Add sets m to contain l + r.
func (m *M3) Add(l, r *M3) {
	for i := range m {
		m[i].Add(&l[i], &r[i])
	}
}

// Sub sets m to contain l - r.
func (m *M3) Sub(l, r *M3) {
	for i := range m {
		m[i].Sub(&l[i], &r[i])
	}
}

// MulScalar sets m to contain s ⋅ n.
func (m *M3) MulScalar(n *M3, s float32) {
	for i := range m {
		m[i].Scale(s, &n[i])
	}
}

// MulScalarAdd sets m to contain l + s ⋅ r.
func (m *M3) MulScalarAdd(l, r *M3, s float32) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = l[i][j] + r[i][j]*s
		}
	}
}

// Equal returns whether m and n are approximately equal.
func (m *M3) Equal(n *M3) bool {
	for i := range m {
		if !m[i].Equal(&n[i]) {
			return false
		}
	}
	return true
}

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// Flat returns m as a flat array, sharing its storage.
func (m *M4) Flat() *[16]float32 { return (*[16]float32)(unsafe.Pointer(m)) }

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var p M4
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
func (m *M4) Transpose(n *M4) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// minors4 returns the six 2x2 determinants of the first
// two columns of n followed by the six of the last two.
func minors4(n *M4) (s, c [6]float32) {
	s[0] = n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s[1] = n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s[2] = n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s[3] = n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s[4] = n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s[5] = n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c[0] = n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c[1] = n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c[2] = n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c[3] = n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c[4] = n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c[5] = n[2][2]*n[3][3] - n[2][3]*n[3][2]
	return
}

// Det returns the determinant of m.
func (m *M4) Det() float32 {
	s, c := minors4(m)
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Adjoint sets m to contain the adjugate of n.
func (m *M4) Adjoint(n *M4) {
	a00, a01, a02, a03 := n[0][0], n[0][1], n[0][2], n[0][3]
	a10, a11, a12, a13 := n[1][0], n[1][1], n[1][2], n[1][3]
	a20, a21, a22, a23 := n[2][0], n[2][1], n[2][2], n[2][3]
	a30, a31, a32, a33 := n[3][0], n[3][1], n[3][2], n[3][3]
	*m = M4{
		{
			a11*(a22*a33-a23*a32) - a21*(a12*a33-a13*a32) + a31*(a12*a23-a13*a22),
			-(a01*(a22*a33-a23*a32) - a21*(a02*a33-a03*a32) + a31*(a02*a23-a03*a22)),
			a01*(a12*a33-a13*a32) - a11*(a02*a33-a03*a32) + a31*(a02*a13-a03*a12),
			-(a01*(a12*a23-a13*a22) - a11*(a02*a23-a03*a22) + a21*(a02*a13-a03*a12)),
		},
		{
			-(a10*(a22*a33-a23*a32) - a20*(a12*a33-a13*a32) + a30*(a12*a23-a13*a22)),
			a00*(a22*a33-a23*a32) - a20*(a02*a33-a03*a32) + a30*(a02*a23-a03*a22),
			-(a00*(a12*a33-a13*a32) - a10*(a02*a33-a03*a32) + a30*(a02*a13-a03*a12)),
			a00*(a12*a23-a13*a22) - a10*(a02*a23-a03*a22) + a20*(a02*a13-a03*a12),
		},
		{
			a10*(a21*a33-a23*a31) - a20*(a11*a33-a13*a31) + a30*(a11*a23-a13*a21),
			-(a00*(a21*a33-a23*a31) - a20*(a01*a33-a03*a31) + a30*(a01*a23-a03*a21)),
			a00*(a11*a33-a13*a31) - a10*(a01*a33-a03*a31) + a30*(a01*a13-a03*a11),
			-(a00*(a11*a23-a13*a21) - a10*(a01*a23-a03*a21) + a20*(a01*a13-a03*a11)),
		},
		{
			-(a10*(a21*a32-a22*a31) - a20*(a11*a32-a12*a31) + a30*(a11*a22-a12*a21)),
			a00*(a21*a32-a22*a31) - a20*(a01*a32-a02*a31) + a30*(a01*a22-a02*a21),
			-(a00*(a11*a32-a12*a31) - a10*(a01*a32-a02*a31) + a30*(a01*a12-a02*a11)),
			a00*(a11*a22-a12*a21) - a10*(a01*a22-a02*a21) + a20*(a01*a12-a02*a11),
		},
	}
}

// Invert sets m to contain the inverse of n.
// It returns false, and leaves m unchanged, if the
// determinant of n is zero.
// Nearly singular matrices are inverted regardless.
func (m *M4) Invert(n *M4) bool {
	s, c := minors4(n)
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		return false
	}
	idet := 1 / det
	*m = M4{
		{
			(n[1][1]*c[5] - n[1][2]*c[4] + n[1][3]*c[3]) * idet,
			(n[0][2]*c[4] - n[0][1]*c[5] - n[0][3]*c[3]) * idet,
			(n[3][1]*s[5] - n[3][2]*s[4] + n[3][3]*s[3]) * idet,
			(n[2][2]*s[4] - n[2][1]*s[5] - n[2][3]*s[3]) * idet,
		},
		{
			(n[1][2]*c[2] - n[1][0]*c[5] - n[1][3]*c[1]) * idet,
			(n[0][0]*c[5] - n[0][2]*c[2] + n[0][3]*c[1]) * idet,
			(n[3][2]*s[2] - n[3][0]*s[5] - n[3][3]*s[1]) * idet,
			(n[2][0]*s[5] - n[2][2]*s[2] + n[2][3]*s[1]) * idet,
		},
		{
			(n[1][0]*c[4] - n[1][1]*c[2] + n[1][3]*c[0]) * idet,
			(n[0][1]*c[2] - n[0][0]*c[4] - n[0][3]*c[0]) * idet,
			(n[3][0]*s[4] - n[3][1]*s[2] + n[3][3]*s[0]) * idet,
			(n[2][1]*s[2] - n[2][0]*s[4] - n[2][3]*s[0]) * idet,
		},
		{
			(n[1][1]*c[1] - n[1][0]*c[3] - n[1][2]*c[0]) * idet,
			(n[0][0]*c[3] - n[0][1]*c[1] + n[0][2]*c[0]) * idet,
			(n[3][1]*s[1] - n[3][0]*s[3] - n[3][2]*s[0]) * idet,
			(n[2][0]*s[3] - n[2][1]*s[1] + n[2][2]*s[0]) * idet,
		},
	}
	return true
}

// Translate sets m to contain a translation transform.
func (m *M4) Translate(x, y, z float32) {
	*m = M4{{1}, {0, 1}, {0, 0, 1}, {x, y, z, 1}}
}

// Scale sets m to contain a scaling transform.
func (m *M4) Scale(x, y, z float32) {
	*m = M4{{x}, {1: y}, {2: z}, {3: 1}}
}

// rotAxis returns the normalized axis, the sine and
// the cosine of angle, or false if axis is too short.
func rotAxis(angle float32, axis *V3) (x, y, z, s, c float32, ok bool) {
	x, y, z = axis[0], axis[1], axis[2]
	l := sqrt(x*x + y*y + z*z)
	if l < Epsilon {
		return
	}
	l = 1 / l
	x, y, z = x*l, y*l, z*l
	s, c = sin(angle), cos(angle)
	ok = true
	return
}

// Rotate sets m to contain a rotation of angle radians
// about axis.
// It returns false, and leaves m unchanged, if axis
// has length less than Epsilon.
func (m *M4) Rotate(angle float32, axis *V3) bool {
	x, y, z, s, c, ok := rotAxis(angle, axis)
	if !ok {
		return false
	}
	t := 1 - c
	*m = M4{
		{x*x*t + c, y*x*t + z*s, z*x*t - y*s},
		{x*y*t - z*s, y*y*t + c, z*y*t + x*s},
		{x*z*t + y*s, y*z*t - x*s, z*z*t + c},
		{3: 1},
	}
	return true
}

// RotateX sets m to contain a rotation of angle radians
// about the x axis.
func (m *M4) RotateX(angle float32) {
	s, c := sin(angle), cos(angle)
	*m = M4{{1}, {0, c, s}, {0, -s, c}, {3: 1}}
}

// RotateY sets m to contain a rotation of angle radians
// about the y axis.
func (m *M4) RotateY(angle float32) {
	s, c := sin(angle), cos(angle)
	*m = M4{{c, 0, -s}, {1: 1}, {s, 0, c}, {3: 1}}
}

// RotateZ sets m to contain a rotation of angle radians
// about the z axis.
func (m *M4) RotateZ(angle float32) {
	s, c := sin(angle), cos(angle)
	*m = M4{{c, s}, {-s, c}, {2: 1}, {3: 1}}
}

// MulTranslate sets m to contain n ⋅ T, where T
// translates by v.
func (m *M4) MulTranslate(n *M4, v *V3) {
	x, y, z := v[0], v[1], v[2]
	var t V4
	for i := range t {
		t[i] = n[0][i]*x + n[1][i]*y + n[2][i]*z + n[3][i]
	}
	m[0], m[1], m[2], m[3] = n[0], n[1], n[2], t
}

// MulScale sets m to contain n ⋅ S, where S scales
// by v.
func (m *M4) MulScale(n *M4, v *V3) {
	m[0].Scale(v[0], &n[0])
	m[1].Scale(v[1], &n[1])
	m[2].Scale(v[2], &n[2])
	m[3] = n[3]
}

// MulRotate sets m to contain n ⋅ R, where R is a
// rotation of angle radians about axis.
// It returns false, and leaves m unchanged, if axis
// has length less than Epsilon.
func (m *M4) MulRotate(n *M4, angle float32, axis *V3) bool {
	x, y, z, s, c, ok := rotAxis(angle, axis)
	if !ok {
		return false
	}
	t := 1 - c
	b00, b01, b02 := x*x*t+c, y*x*t+z*s, z*x*t-y*s
	b10, b11, b12 := x*y*t-z*s, y*y*t+c, z*y*t+x*s
	b20, b21, b22 := x*z*t+y*s, y*z*t-x*s, z*z*t+c
	for i := 0; i < 4; i++ {
		a0, a1, a2 := n[0][i], n[1][i], n[2][i]
		m[0][i] = a0*b00 + a1*b01 + a2*b02
		m[1][i] = a0*b10 + a1*b11 + a2*b12
		m[2][i] = a0*b20 + a1*b21 + a2*b22
	}
	m[3] = n[3]
	return true
}

// MulRotateX sets m to contain n ⋅ R, where R is a
// rotation of angle radians about the x axis.
func (m *M4) MulRotateX(n *M4, angle float32) {
	s, c := sin(angle), cos(angle)
	var c1, c2 V4
	for i := range c1 {
		c1[i] = n[1][i]*c + n[2][i]*s
		c2[i] = n[2][i]*c - n[1][i]*s
	}
	m[0], m[1], m[2], m[3] = n[0], c1, c2, n[3]
}

// MulRotateY sets m to contain n ⋅ R, where R is a
// rotation of angle radians about the y axis.
func (m *M4) MulRotateY(n *M4, angle float32) {
	s, c := sin(angle), cos(angle)
	var c0, c2 V4
	for i := range c0 {
		c0[i] = n[0][i]*c - n[2][i]*s
		c2[i] = n[0][i]*s + n[2][i]*c
	}
	m[0], m[1], m[2], m[3] = c0, n[1], c2, n[3]
}

// MulRotateZ sets m to contain n ⋅ R, where R is a
// rotation of angle radians about the z axis.
func (m *M4) MulRotateZ(n *M4, angle float32) {
	s, c := sin(angle), cos(angle)
	var c0, c1 V4
	for i := range c0 {
		c0[i] = n[0][i]*c + n[1][i]*s
		c1[i] = n[1][i]*c - n[0][i]*s
	}
	m[0], m[1], m[2], m[3] = c0, c1, n[2], n[3]
}

// Frob returns the Frobenius norm of m.
func (m *M4) Frob() float32 {
	return sqrt(m[0].LenSq() + m[1].LenSq() + m[2].LenSq() + m[3].LenSq())
}

// Add sets m to contain l + r.
func (m *M4) Add(l, r *M4) {
	for i := range m {
		m[i].Add(&l[i], &r[i])
	}
}

// Sub sets m to contain l - r.
func (m *M4) Sub(l, r *M4) {
	for i := range m {
		m[i].Sub(&l[i], &r[i])
	}
}

// MulScalar sets m to contain s ⋅ n.
func (m *M4) MulScalar(n *M4, s float32) {
	for i := range m {
		m[i].Scale(s, &n[i])
	}
}

// MulScalarAdd sets m to contain l + s ⋅ r.
func (m *M4) MulScalarAdd(l, r *M4, s float32) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = l[i][j] + r[i][j]*s
		}
	}
}

// Equal returns whether m and n are approximately equal.
func (m *M4) Equal(n *M4) bool {
	for i := range m {
		if !m[i].Equal(&n[i]) {
			return false
		}
	}
	return true
}
