// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package layout packs linear values into flat blocks
// of float32 suitable for upload to shader-visible memory.
package layout

import (
	"errors"
	"unsafe"

	"github.com/gviegas/affine/linear"
)

const prefix = "layout: "

// Frame is the layout of per-frame camera data.
// It is defined as follows:
//
//	[0:16]  | view-projection matrix
//	[16:32] | view matrix
//	[32:48] | projection matrix
type Frame [48]float32

// SetVP sets the view-projection matrix.
func (l *Frame) SetVP(m *linear.M4) { copyM4(l[:16], m) }

// SetV sets the view matrix.
func (l *Frame) SetV(m *linear.M4) { copyM4(l[16:32], m) }

// SetP sets the projection matrix.
func (l *Frame) SetP(m *linear.M4) { copyM4(l[32:48], m) }

// SetCamera sets the view and projection matrices
// and their product.
func (l *Frame) SetCamera(view, proj *linear.M4) {
	var vp linear.M4
	vp.Mul(proj, view)
	l.SetVP(&vp)
	l.SetV(view)
	l.SetP(proj)
}

// Bytes returns l's memory as a byte slice.
// It is in native byte order and shares storage with l.
func (l *Frame) Bytes() []byte { return bytesOf(l[:]) }

// Drawable is the layout of per-drawable data.
// It is defined as follows:
//
//	[0:16]  | world matrix
//	[16:20] | normal matrix's first column
//	[20:24] | normal matrix's second column
//	[24:28] | normal matrix's third column
//
// Columns of the normal matrix are padded to four
// elements, with the last set to zero.
type Drawable [28]float32

// SetWorld sets the world matrix.
func (l *Drawable) SetWorld(m *linear.M4) { copyM4(l[:16], m) }

// SetNormal sets the normal matrix.
func (l *Drawable) SetNormal(m *linear.M3) {
	for i := range m {
		n := 16 + i*4
		copy(l[n:n+3], m[i][:])
		l[n+3] = 0
	}
}

// SetTransform sets the world matrix to m and the
// normal matrix to the one derived from it.
// It fails if m is not invertible, in which case l
// is not modified.
func (l *Drawable) SetTransform(m *linear.M4) error {
	var n linear.M3
	if !n.NormalFromM4(m) {
		return errors.New(prefix + "world matrix is not invertible")
	}
	l.SetWorld(m)
	l.SetNormal(&n)
	return nil
}

// Bytes returns l's memory as a byte slice.
// It is in native byte order and shares storage with l.
func (l *Drawable) Bytes() []byte { return bytesOf(l[:]) }

func copyM4(dst []float32, m *linear.M4) { copy(dst, m.Flat()[:]) }

func bytesOf(s []float32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4)
}
