// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package interop converts linear values to and from the
// types used by other math and imaging packages.
//
// Types from golang.org/x/image/math are row-major, so
// matrices are transposed in both directions. Conversions
// to float32 types are exact, conversions from float64
// types round to the nearest float32.
package interop

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"

	"github.com/gviegas/affine/linear"
)

const prefix = "interop: "

// F32V2 converts v to a f32.Vec2.
func F32V2(v *linear.V2) f32.Vec2 { return f32.Vec2(*v) }

// F32V3 converts v to a f32.Vec3.
func F32V3(v *linear.V3) f32.Vec3 { return f32.Vec3(*v) }

// F32V4 converts v to a f32.Vec4.
func F32V4(v *linear.V4) f32.Vec4 { return f32.Vec4(*v) }

// F32M3 converts m to a f32.Mat3.
func F32M3(m *linear.M3) (n f32.Mat3) {
	for c := range m {
		for r := range m[c] {
			n[3*r+c] = m[c][r]
		}
	}
	return
}

// F32M4 converts m to a f32.Mat4.
func F32M4(m *linear.M4) (n f32.Mat4) {
	for c := range m {
		for r := range m[c] {
			n[4*r+c] = m[c][r]
		}
	}
	return
}

// M3FromF32 converts n to a linear.M3.
func M3FromF32(n *f32.Mat3) (m linear.M3) {
	for c := range m {
		for r := range m[c] {
			m[c][r] = n[3*r+c]
		}
	}
	return
}

// M4FromF32 converts n to a linear.M4.
func M4FromF32(n *f32.Mat4) (m linear.M4) {
	for c := range m {
		for r := range m[c] {
			m[c][r] = n[4*r+c]
		}
	}
	return
}

// Aff3FromM2d converts m to a f64.Aff3, as used by
// the golang.org/x/image/draw package.
func Aff3FromM2d(m *linear.M2d) f64.Aff3 {
	return f64.Aff3{
		float64(m[0][0]), float64(m[1][0]), float64(m[2][0]),
		float64(m[0][1]), float64(m[1][1]), float64(m[2][1]),
	}
}

// M2dFromAff3 converts a to a linear.M2d.
func M2dFromAff3(a *f64.Aff3) linear.M2d {
	return linear.M2d{
		{float32(a[0]), float32(a[3])},
		{float32(a[1]), float32(a[4])},
		{float32(a[2]), float32(a[5])},
	}
}

// Transform draws the sr part of src onto dst, with the
// source-to-destination transform m, using the given
// interpolator.
func Transform(t draw.Transformer, dst draw.Image, m *linear.M2d, src image.Image, sr image.Rectangle, op draw.Op) {
	t.Transform(dst, Aff3FromM2d(m), src, sr, op, nil)
}

// DenseM3 converts m to a 3⨯3 *mat.Dense.
func DenseM3(m *linear.M3) *mat.Dense { return dense(m.Flat()[:], 3) }

// DenseM4 converts m to a 4⨯4 *mat.Dense.
func DenseM4(m *linear.M4) *mat.Dense { return dense(m.Flat()[:], 4) }

func dense(f []float32, n int) *mat.Dense {
	data := make([]float64, n*n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			data[r*n+c] = float64(f[c*n+r])
		}
	}
	return mat.NewDense(n, n, data)
}

// M3FromDense converts a to a linear.M3.
// It fails if a is not a 3⨯3 matrix.
func M3FromDense(a mat.Matrix) (m linear.M3, err error) {
	err = fromDense(m.Flat()[:], 3, a)
	return
}

// M4FromDense converts a to a linear.M4.
// It fails if a is not a 4⨯4 matrix.
func M4FromDense(a mat.Matrix) (m linear.M4, err error) {
	err = fromDense(m.Flat()[:], 4, a)
	return
}

func fromDense(f []float32, n int, a mat.Matrix) error {
	var reason string
	switch r, c := a.Dims(); {
	case r != n:
		reason = "unexpected number of rows"
	case c != n:
		reason = "unexpected number of columns"
	default:
		for c := 0; c < n; c++ {
			for r := 0; r < n; r++ {
				f[c*n+r] = float32(a.At(r, c))
			}
		}
		return nil
	}
	return errors.New(prefix + reason)
}
