// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of float32.
// It is stored as [x y z w], w being the real part.
type Q [4]float32

// V returns the vector part of q.
// The returned pointer refers to q's storage.
func (q *Q) V() *V3 { return (*V3)(q[:3]) }

// R returns the real part of q.
func (q *Q) R() float32 { return q[3] }

// I makes q an identity quaternion.
func (q *Q) I() { *q = Q{3: 1} }

// Mul sets q to contain l ⋅ r.
func (q *Q) Mul(l, r *Q) {
	lx, ly, lz, lw := l[0], l[1], l[2], l[3]
	rx, ry, rz, rw := r[0], r[1], r[2], r[3]
	*q = Q{
		lx*rw + lw*rx + ly*rz - lz*ry,
		ly*rw + lw*ry + lz*rx - lx*rz,
		lz*rw + lw*rz + lx*ry - ly*rx,
		lw*rw - lx*rx - ly*ry - lz*rz,
	}
}

// Rotate sets q to contain a rotation of angle radians
// about axis.
// axis must be normalized.
func (q *Q) Rotate(angle float32, axis *V3) {
	angle *= 0.5
	s := sin(angle)
	*q = Q{s * axis[0], s * axis[1], s * axis[2], cos(angle)}
}

// AxisAngle returns the axis and angle of rotation of q.
// q must be a unit quaternion.
// If the angle is close to zero, the axis is [1 0 0].
func (q *Q) AxisAngle() (axis V3, angle float32) {
	half := acos(q[3])
	if s := sin(half); s > Epsilon {
		axis = V3{q[0] / s, q[1] / s, q[2] / s}
	} else {
		axis = V3{1}
	}
	angle = 2 * half
	return
}

// MulRotateX sets q to contain p rotated by angle radians
// about the x axis.
func (q *Q) MulRotateX(p *Q, angle float32) {
	angle *= 0.5
	bx, bw := sin(angle), cos(angle)
	x, y, z, w := p[0], p[1], p[2], p[3]
	*q = Q{x*bw + w*bx, y*bw + z*bx, z*bw - y*bx, w*bw - x*bx}
}

// MulRotateY sets q to contain p rotated by angle radians
// about the y axis.
func (q *Q) MulRotateY(p *Q, angle float32) {
	angle *= 0.5
	by, bw := sin(angle), cos(angle)
	x, y, z, w := p[0], p[1], p[2], p[3]
	*q = Q{x*bw - z*by, y*bw + w*by, z*bw + x*by, w*bw - y*by}
}

// MulRotateZ sets q to contain p rotated by angle radians
// about the z axis.
func (q *Q) MulRotateZ(p *Q, angle float32) {
	angle *= 0.5
	bz, bw := sin(angle), cos(angle)
	x, y, z, w := p[0], p[1], p[2], p[3]
	*q = Q{x*bw + y*bz, y*bw - x*bz, z*bw + w*bz, w*bw - z*bz}
}

// CalcW sets q to contain the vector part of p and a
// real part that would make q a unit quaternion.
// The absolute value of 1 - |p.V()|² is used, so
// vectors longer than one do not produce NaN.
func (q *Q) CalcW(p *Q) {
	x, y, z := p[0], p[1], p[2]
	*q = Q{x, y, z, sqrt(abs(1 - x*x - y*y - z*z))}
}

// Add sets q to contain l + r.
func (q *Q) Add(l, r *Q) { (*V4)(q).Add((*V4)(l), (*V4)(r)) }

// Scale sets q to contain s ⋅ p.
func (q *Q) Scale(s float32, p *Q) { (*V4)(q).Scale(s, (*V4)(p)) }

// Dot returns q ⋅ p.
func (q *Q) Dot(p *Q) float32 { return (*V4)(q).Dot((*V4)(p)) }

// LenSq returns the squared length of q.
func (q *Q) LenSq() float32 { return q.Dot(q) }

// Len returns the length of q.
func (q *Q) Len() float32 { return sqrt(q.Dot(q)) }

// Norm sets q to contain p normalized.
// A zero p yields a zero q.
func (q *Q) Norm(p *Q) { (*V4)(q).Norm((*V4)(p)) }

// Lerp sets q to contain the linear interpolation
// between l and r by t.
func (q *Q) Lerp(l, r *Q, t float32) { (*V4)(q).Lerp((*V4)(l), (*V4)(r), t) }

// Slerp sets q to contain the spherical linear
// interpolation between l and r by t.
// l and r must be unit quaternions.
// The shortest path is always taken.
func (q *Q) Slerp(l, r *Q, t float32) {
	lx, ly, lz, lw := l[0], l[1], l[2], l[3]
	rx, ry, rz, rw := r[0], r[1], r[2], r[3]
	cosom := lx*rx + ly*ry + lz*rz + lw*rw
	if cosom < 0 {
		cosom = -cosom
		rx, ry, rz, rw = -rx, -ry, -rz, -rw
	}
	var s0, s1 float32
	if 1-cosom > Epsilon {
		omega := acos(cosom)
		sinom := sin(omega)
		s0 = sin((1-t)*omega) / sinom
		s1 = sin(t*omega) / sinom
	} else {
		// Too close for sin(omega) to be
		// a safe divisor.
		s0 = 1 - t
		s1 = t
	}
	*q = Q{
		s0*lx + s1*rx,
		s0*ly + s1*ry,
		s0*lz + s1*rz,
		s0*lw + s1*rw,
	}
}

// Random sets q to contain a random unit quaternion,
// uniformly distributed over all rotations.
func (q *Q) Random(rnd Rand) {
	u1 := rnd.Float32()
	u2 := rnd.Float32() * 2 * math.Pi
	u3 := rnd.Float32() * 2 * math.Pi
	a := sqrt(1 - u1)
	b := sqrt(u1)
	*q = Q{a * sin(u2), a * cos(u2), b * sin(u3), b * cos(u3)}
}

// Invert sets q to contain the inverse of p.
// A zero p yields a zero q.
func (q *Q) Invert(p *Q) {
	x, y, z, w := p[0], p[1], p[2], p[3]
	d := x*x + y*y + z*z + w*w
	if d == 0 {
		*q = Q{}
		return
	}
	id := 1 / d
	*q = Q{-x * id, -y * id, -z * id, w * id}
}

// Conj sets q to contain the conjugate of p.
func (q *Q) Conj(p *Q) { *q = Q{-p[0], -p[1], -p[2], p[3]} }

// FromM3 sets q to contain the rotation described by m.
// m must be a rotation matrix.
func (q *Q) FromM3(m *M3) {
	// Ken Shoemake, "Quaternion Calculus and Fast Animation",
	// SIGGRAPH 1987 course notes.
	f := m.Flat()
	if tr := f[0] + f[4] + f[8]; tr > 0 {
		r := sqrt(tr + 1)
		w := 0.5 * r
		r = 0.5 / r
		*q = Q{(f[5] - f[7]) * r, (f[6] - f[2]) * r, (f[1] - f[3]) * r, w}
		return
	}
	i := 0
	if f[4] > f[0] {
		i = 1
	}
	if f[8] > f[i*3+i] {
		i = 2
	}
	j := (i + 1) % 3
	k := (i + 2) % 3
	r := sqrt(f[i*3+i] - f[j*3+j] - f[k*3+k] + 1)
	var p Q
	p[i] = 0.5 * r
	r = 0.5 / r
	p[3] = (f[j*3+k] - f[k*3+j]) * r
	p[j] = (f[j*3+i] + f[i*3+j]) * r
	p[k] = (f[k*3+i] + f[i*3+k]) * r
	*q = p
}

// Euler sets q to contain the rotation described by
// the given angles, in degrees.
// The rotation about x is applied first, then the one
// about y, then the one about z (i.e., q = z ⋅ y ⋅ x).
func (q *Q) Euler(x, y, z float32) {
	const halfToRad = 0.5 * math.Pi / 180
	x *= halfToRad
	y *= halfToRad
	z *= halfToRad
	sx, cx := sin(x), cos(x)
	sy, cy := sin(y), cos(y)
	sz, cz := sin(z), cos(z)
	*q = Q{
		sx*cy*cz - cx*sy*sz,
		cx*sy*cz + sx*cy*sz,
		cx*cy*sz - sx*sy*cz,
		cx*cy*cz + sx*sy*sz,
	}
}

// Equal returns whether q and p are approximately equal.
func (q *Q) Equal(p *Q) bool { return (*V4)(q).Equal((*V4)(p)) }
