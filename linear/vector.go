// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// V2 is a 2-component vector of float32.
type V2 [2]float32

// X returns v[0].
func (v *V2) X() float32 { return v[0] }

// Y returns v[1].
func (v *V2) Y() float32 { return v[1] }

// Add sets v to contain l + r.
func (v *V2) Add(l, r *V2) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V2) Sub(l, r *V2) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V2) Scale(s float32, w *V2) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V2) Dot(w *V2) float32 { return v[0]*w[0] + v[1]*w[1] }

// LenSq returns the squared length of v.
func (v *V2) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v *V2) Len() float32 { return sqrt(v.Dot(v)) }

// DistSq returns the squared distance between v and w.
func (v *V2) DistSq(w *V2) float32 {
	var d V2
	d.Sub(v, w)
	return d.LenSq()
}

// Dist returns the distance between v and w.
func (v *V2) Dist(w *V2) float32 { return sqrt(v.DistSq(w)) }

// Norm sets v to contain w normalized.
// A zero w yields a zero v.
func (v *V2) Norm(w *V2) {
	if l := w.LenSq(); l > 0 {
		v.Scale(1/sqrt(l), w)
	} else {
		*v = V2{}
	}
}

// Lerp sets v to contain the linear interpolation
// between l and r by t.
func (v *V2) Lerp(l, r *V2, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Min sets v to contain the component-wise minimum
// of l and r.
func (v *V2) Min(l, r *V2) {
	for i := range v {
		v[i] = min(l[i], r[i])
	}
}

// Max sets v to contain the component-wise maximum
// of l and r.
func (v *V2) Max(l, r *V2) {
	for i := range v {
		v[i] = max(l[i], r[i])
	}
}

// TransformM2d sets v to contain m ⋅ w, with w
// taken as a point.
func (v *V2) TransformM2d(m *M2d, w *V2) {
	x, y := w[0], w[1]
	v[0] = m[0][0]*x + m[1][0]*y + m[2][0]
	v[1] = m[0][1]*x + m[1][1]*y + m[2][1]
}

// Equal returns whether v and w are approximately equal.
func (v *V2) Equal(w *V2) bool { return approx(v[0], w[0]) && approx(v[1], w[1]) }

// V3 is a 3-component vector of float32.
type V3 [3]float32

// X returns v[0].
func (v *V3) X() float32 { return v[0] }

// Y returns v[1].
func (v *V3) Y() float32 { return v[1] }

// Z returns v[2].
func (v *V3) Z() float32 { return v[2] }

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

// LenSq returns the squared length of v.
func (v *V3) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v *V3) Len() float32 { return sqrt(v.Dot(v)) }

// DistSq returns the squared distance between v and w.
func (v *V3) DistSq(w *V3) float32 {
	var d V3
	d.Sub(v, w)
	return d.LenSq()
}

// Dist returns the distance between v and w.
func (v *V3) Dist(w *V3) float32 { return sqrt(v.DistSq(w)) }

// Norm sets v to contain w normalized.
// A zero w yields a zero v.
func (v *V3) Norm(w *V3) {
	if l := w.LenSq(); l > 0 {
		v.Scale(1/sqrt(l), w)
	} else {
		*v = V3{}
	}
}

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	x := l[1]*r[2] - l[2]*r[1]
	y := l[2]*r[0] - l[0]*r[2]
	z := l[0]*r[1] - l[1]*r[0]
	*v = V3{x, y, z}
}

// Lerp sets v to contain the linear interpolation
// between l and r by t.
func (v *V3) Lerp(l, r *V3, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Min sets v to contain the component-wise minimum
// of l and r.
func (v *V3) Min(l, r *V3) {
	for i := range v {
		v[i] = min(l[i], r[i])
	}
}

// Max sets v to contain the component-wise maximum
// of l and r.
func (v *V3) Max(l, r *V3) {
	for i := range v {
		v[i] = max(l[i], r[i])
	}
}

// Inverse sets v to contain the component-wise
// reciprocal of w.
// Zero components are not checked.
func (v *V3) Inverse(w *V3) {
	for i := range v {
		v[i] = 1 / w[i]
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3) Mul(m *M3, w *V3) {
	x, y, z := w[0], w[1], w[2]
	for i := range v {
		v[i] = m[0][i]*x + m[1][i]*y + m[2][i]*z
	}
}

// TransformM4 sets v to contain m ⋅ w, with w taken
// as a point (i.e., w[3] is 1).
// The result is divided by its homogeneous coordinate,
// which is assumed to be 1 if it computes to 0.
func (v *V3) TransformM4(m *M4, w *V3) {
	x, y, z := w[0], w[1], w[2]
	h := m[0][3]*x + m[1][3]*y + m[2][3]*z + m[3][3]
	if h == 0 {
		h = 1
	}
	for i := range v {
		v[i] = (m[0][i]*x + m[1][i]*y + m[2][i]*z + m[3][i]) / h
	}
}

// TransformQ sets v to contain w rotated by q.
func (v *V3) TransformQ(q *Q, w *V3) {
	// v' = w + 2r(u × w) + 2u × (u × w)
	u := q.V()
	var uw, uuw V3
	uw.Cross(u, w)
	uuw.Cross(u, &uw)
	r2 := 2 * q[3]
	x := w[0] + r2*uw[0] + 2*uuw[0]
	y := w[1] + r2*uw[1] + 2*uuw[1]
	z := w[2] + r2*uw[2] + 2*uuw[2]
	*v = V3{x, y, z}
}

// Random sets v to contain a random direction of
// length scale, uniformly distributed on the sphere.
func (v *V3) Random(rnd Rand, scale float32) {
	r := rnd.Float32() * 2 * math.Pi
	z := rnd.Float32()*2 - 1
	zs := sqrt(1-z*z) * scale
	*v = V3{cos(r) * zs, sin(r) * zs, z * scale}
}

// Equal returns whether v and w are approximately equal.
func (v *V3) Equal(w *V3) bool {
	for i := range v {
		if !approx(v[i], w[i]) {
			return false
		}
	}
	return true
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// X returns v[0].
func (v *V4) X() float32 { return v[0] }

// Y returns v[1].
func (v *V4) Y() float32 { return v[1] }

// Z returns v[2].
func (v *V4) Z() float32 { return v[2] }

// W returns v[3].
func (v *V4) W() float32 { return v[3] }

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

// LenSq returns the squared length of v.
func (v *V4) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v *V4) Len() float32 { return sqrt(v.Dot(v)) }

// DistSq returns the squared distance between v and w.
func (v *V4) DistSq(w *V4) float32 {
	var d V4
	d.Sub(v, w)
	return d.LenSq()
}

// Dist returns the distance between v and w.
func (v *V4) Dist(w *V4) float32 { return sqrt(v.DistSq(w)) }

// Norm sets v to contain w normalized.
// A zero w yields a zero v.
func (v *V4) Norm(w *V4) {
	if l := w.LenSq(); l > 0 {
		v.Scale(1/sqrt(l), w)
	} else {
		*v = V4{}
	}
}

// Cross sets v to contain the 4D cross product of
// u, w and x (the vector orthogonal to all three).
func (v *V4) Cross(u, w, x *V4) {
	a := w[0]*x[1] - w[1]*x[0]
	b := w[0]*x[2] - w[2]*x[0]
	c := w[0]*x[3] - w[3]*x[0]
	d := w[1]*x[2] - w[2]*x[1]
	e := w[1]*x[3] - w[3]*x[1]
	f := w[2]*x[3] - w[3]*x[2]
	g, h, i, j := u[0], u[1], u[2], u[3]
	*v = V4{
		h*f - i*e + j*d,
		-(g * f) + i*c - j*b,
		g*e - h*c + j*a,
		-(g * d) + h*b - i*a,
	}
}

// Lerp sets v to contain the linear interpolation
// between l and r by t.
func (v *V4) Lerp(l, r *V4, t float32) {
	for i := range v {
		v[i] = l[i] + t*(r[i]-l[i])
	}
}

// Min sets v to contain the component-wise minimum
// of l and r.
func (v *V4) Min(l, r *V4) {
	for i := range v {
		v[i] = min(l[i], r[i])
	}
}

// Max sets v to contain the component-wise maximum
// of l and r.
func (v *V4) Max(l, r *V4) {
	for i := range v {
		v[i] = max(l[i], r[i])
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V4) Mul(m *M4, w *V4) {
	x, y, z, h := w[0], w[1], w[2], w[3]
	for i := range v {
		v[i] = m[0][i]*x + m[1][i]*y + m[2][i]*z + m[3][i]*h
	}
}

// Equal returns whether v and w are approximately equal.
func (v *V4) Equal(w *V4) bool {
	for i := range v {
		if !approx(v[i], w[i]) {
			return false
		}
	}
	return true
}
