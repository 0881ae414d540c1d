// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Frustum sets m to contain a perspective projection
// for the given view volume.
// Clip space is right-handed, in the [-1, 1] range.
func (m *M4) Frustum(left, right, bottom, top, near, far float32) {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	*m = M4{
		{0: near * 2 * rl},
		{1: near * 2 * tb},
		{(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1},
		{2: far * near * 2 * nf},
	}
}

// Perspective sets m to contain a symmetric perspective
// projection.
// fovy is the vertical field of view, in radians.
// far can be +Inf, in which case the projection has
// no far plane.
func (m *M4) Perspective(fovy, aspect, near, far float32) {
	f := 1 / tan(fovy/2)
	var z, w float32
	if !math.IsInf(float64(far), 1) {
		nf := 1 / (near - far)
		z = (far + near) * nf
		w = 2 * far * near * nf
	} else {
		z = -1
		w = -2 * near
	}
	*m = M4{
		{0: f / aspect},
		{1: f},
		{2: z, 3: -1},
		{2: w},
	}
}

// PerspectiveFOV sets m to contain a perspective projection
// whose view volume extends by the given angles, in degrees,
// from the view direction.
// The angles need not match, so it can be used for
// off-center (e.g., per-eye) projections.
func (m *M4) PerspectiveFOV(up, down, left, right, near, far float32) {
	const toRad = math.Pi / 180
	upTan := tan(up * toRad)
	downTan := tan(down * toRad)
	leftTan := tan(left * toRad)
	rightTan := tan(right * toRad)
	xs := 2 / (leftTan + rightTan)
	ys := 2 / (upTan + downTan)
	*m = M4{
		{0: xs},
		{1: ys},
		{-((leftTan - rightTan) * xs * 0.5), (upTan - downTan) * ys * 0.5, far / (near - far), -1},
		{2: far * near / (near - far)},
	}
}

// Ortho sets m to contain an orthographic projection
// for the given view volume.
func (m *M4) Ortho(left, right, bottom, top, near, far float32) {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	*m = M4{
		{0: -2 * lr},
		{1: -2 * bt},
		{2: 2 * nf},
		{(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1},
	}
}

// normOrZero normalizes v in place, unless it has
// zero length, in which case v is zeroed.
func normOrZero(v *V3) {
	if l := v.Len(); l == 0 {
		*v = V3{}
	} else {
		v.Scale(1/l, v)
	}
}

// LookAt sets m to contain a view transform placing the
// viewer at eye, looking at center, with up pointing
// approximately upwards.
// If eye and center are the same (within Epsilon),
// m is made an identity matrix.
// If up is parallel to the view direction, the
// resulting matrix has zero x and y axes.
func (m *M4) LookAt(eye, center, up *V3) {
	if abs(eye[0]-center[0]) < Epsilon &&
		abs(eye[1]-center[1]) < Epsilon &&
		abs(eye[2]-center[2]) < Epsilon {
		m.I()
		return
	}
	var x, y, z V3
	z.Sub(eye, center)
	z.Scale(1/z.Len(), &z)
	x.Cross(up, &z)
	normOrZero(&x)
	y.Cross(&z, &x)
	normOrZero(&y)
	*m = M4{
		{x[0], y[0], z[0]},
		{x[1], y[1], z[1]},
		{x[2], y[2], z[2]},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}
}

// TargetTo sets m to contain a transform placing an object
// at eye, facing away from target, with up pointing
// approximately upwards.
// Unlike LookAt, this is a model transform: its
// translation is eye itself.
func (m *M4) TargetTo(eye, target, up *V3) {
	var x, y, z V3
	z.Sub(eye, target)
	z.Norm(&z)
	x.Cross(up, &z)
	x.Norm(&x)
	y.Cross(&z, &x)
	*m = M4{
		{x[0], x[1], x[2]},
		{y[0], y[1], y[2]},
		{z[0], z[1], z[2]},
		{eye[0], eye[1], eye[2], 1},
	}
}
