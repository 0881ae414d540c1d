// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"unsafe"
)

// DQ is a dual quaternion of float32.
// It is stored as the real part followed by the dual
// part, and describes a rigid transform (rotation and
// translation).
type DQ [2]Q

// Real returns the real part of d.
// The returned pointer refers to d's storage.
func (d *DQ) Real() *Q { return &d[0] }

// Dual returns the dual part of d.
// The returned pointer refers to d's storage.
func (d *DQ) Dual() *Q { return &d[1] }

// Flat returns d as a flat array, sharing its storage.
func (d *DQ) Flat() *[8]float32 { return (*[8]float32)(unsafe.Pointer(d)) }

// I makes d an identity dual quaternion.
func (d *DQ) I() { *d = DQ{{3: 1}, {}} }

// RotateTranslate sets d to contain the rotation
// described by q followed by a translation by v.
func (d *DQ) RotateTranslate(q *Q, v *V3) {
	// dual = ½ ⋅ (v, 0) ⋅ q
	t := Q{0.5 * v[0], 0.5 * v[1], 0.5 * v[2]}
	var p Q
	p.Mul(&t, q)
	d[0], d[1] = *q, p
}

// Translation returns the translation of d.
// The real part of d must be a unit quaternion.
func (d *DQ) Translation() V3 {
	var r, t Q
	r.Conj(&d[0])
	t.Mul(&d[1], &r)
	return V3{2 * t[0], 2 * t[1], 2 * t[2]}
}

// Equal returns whether d and e are approximately equal.
func (d *DQ) Equal(e *DQ) bool { return d[0].Equal(&e[0]) && d[1].Equal(&e[1]) }
