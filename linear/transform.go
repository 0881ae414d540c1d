// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// rotQ returns the 3x3 rotation described by q,
// with each column scaled by the given factors.
func rotQ(q *Q, sx, sy, sz float32) (c0, c1, c2 V4) {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	c0 = V4{(1 - (yy + zz)) * sx, (xy + wz) * sx, (xz - wy) * sx}
	c1 = V4{(xy - wz) * sy, (1 - (xx + zz)) * sy, (yz + wx) * sy}
	c2 = V4{(xz + wy) * sz, (yz - wx) * sz, (1 - (xx + yy)) * sz}
	return
}

// RotateQ sets m to contain the rotation described
// by q.
// q must be a unit quaternion.
func (m *M4) RotateQ(q *Q) {
	c0, c1, c2 := rotQ(q, 1, 1, 1)
	*m = M4{c0, c1, c2, {3: 1}}
}

// RotateTranslate sets m to contain the rotation
// described by q followed by a translation by v.
func (m *M4) RotateTranslate(q *Q, v *V3) {
	c0, c1, c2 := rotQ(q, 1, 1, 1)
	*m = M4{c0, c1, c2, {v[0], v[1], v[2], 1}}
}

// RotateTranslateScale sets m to contain T ⋅ R ⋅ S,
// where S scales by s, R rotates by q and T
// translates by v.
func (m *M4) RotateTranslateScale(q *Q, v, s *V3) {
	c0, c1, c2 := rotQ(q, s[0], s[1], s[2])
	*m = M4{c0, c1, c2, {v[0], v[1], v[2], 1}}
}

// RotateTranslateScaleOrigin is like RotateTranslateScale,
// but scaling and rotation are done about the origin o.
// It computes T ⋅ O ⋅ R ⋅ S ⋅ O⁻¹, where O translates by o.
func (m *M4) RotateTranslateScaleOrigin(q *Q, v, s, o *V3) {
	c0, c1, c2 := rotQ(q, s[0], s[1], s[2])
	ox, oy, oz := o[0], o[1], o[2]
	var t V4
	for i := 0; i < 3; i++ {
		t[i] = v[i] + o[i] - (c0[i]*ox + c1[i]*oy + c2[i]*oz)
	}
	t[3] = 1
	*m = M4{c0, c1, c2, t}
}

// DualQ sets m to contain the rigid transform
// described by d.
// The real part of d must be a unit quaternion.
// It is not required that d be normalized,
// since the translation is divided by the squared
// length of the real part (unless it is zero).
func (m *M4) DualQ(d *DQ) {
	// t = 2 ⋅ dual ⋅ real*
	var r, t Q
	r.Conj(&d[0])
	t.Mul(&d[1], &r)
	s := float32(2)
	if l := d[0].LenSq(); l > 0 {
		s /= l
	}
	var v V3
	v.Scale(s, t.V())
	m.RotateTranslate(&d[0], &v)
}

// Translation returns the translation of m.
func (m *M4) Translation() V3 { return V3{m[3][0], m[3][1], m[3][2]} }

// Scaling returns the scaling factors of m.
// This is the length of each of the first three
// columns, so it never produces negative factors.
func (m *M4) Scaling() V3 {
	var s V3
	for i := range s {
		s[i] = sqrt(m[i][0]*m[i][0] + m[i][1]*m[i][1] + m[i][2]*m[i][2])
	}
	return s
}

// Rotation returns the rotation of m.
// Scaling is not removed, so m must not contain
// any scaling for the result to be meaningful.
func (m *M4) Rotation() (q Q) {
	var r M3
	r.FromM4(m)
	q.FromM3(&r)
	return
}
