// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package interop

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"

	"github.com/gviegas/affine/linear"
)

func TestF32(t *testing.T) {
	v2 := linear.V2{1, 2}
	v3 := linear.V3{1, 2, 3}
	v4 := linear.V4{1, 2, 3, 4}
	if x := F32V2(&v2); x != (f32.Vec2{1, 2}) {
		t.Fatalf("F32V2\nhave %v\nwant [1 2]", x)
	}
	if x := F32V3(&v3); x != (f32.Vec3{1, 2, 3}) {
		t.Fatalf("F32V3\nhave %v\nwant [1 2 3]", x)
	}
	if x := F32V4(&v4); x != (f32.Vec4{1, 2, 3, 4}) {
		t.Fatalf("F32V4\nhave %v\nwant [1 2 3 4]", x)
	}

	m3 := linear.M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	want3 := f32.Mat3{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	}
	n3 := F32M3(&m3)
	if diff := cmp.Diff(want3, n3); diff != "" {
		t.Fatalf("F32M3: (-want +have)\n%s", diff)
	}
	if x := M3FromF32(&n3); x != m3 {
		t.Fatalf("M3FromF32\nhave %v\nwant %v", x, m3)
	}

	var m4 linear.M4
	m4.Translate(5, 6, 7)
	n4 := F32M4(&m4)
	want4 := f32.Mat4{
		1, 0, 0, 5,
		0, 1, 0, 6,
		0, 0, 1, 7,
		0, 0, 0, 1,
	}
	if diff := cmp.Diff(want4, n4); diff != "" {
		t.Fatalf("F32M4: (-want +have)\n%s", diff)
	}
	if x := M4FromF32(&n4); x != m4 {
		t.Fatalf("M4FromF32\nhave %v\nwant %v", x, m4)
	}
}

func TestAff3(t *testing.T) {
	m := linear.M2d{{1, 2}, {3, 4}, {5, 6}}
	a := Aff3FromM2d(&m)
	want := f64.Aff3{
		1, 3, 5,
		2, 4, 6,
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Fatalf("Aff3FromM2d: (-want +have)\n%s", diff)
	}
	if x := M2dFromAff3(&a); x != m {
		t.Fatalf("M2dFromAff3\nhave %v\nwant %v", x, m)
	}

	// Both agree on where points go.
	var r linear.M2d
	r.Rotate(0.5)
	r.MulTranslate(&r, &linear.V2{3, -1})
	r.MulScale(&r, &linear.V2{2, 0.5})
	a = Aff3FromM2d(&r)
	p := linear.V2{10, 20}
	var q linear.V2
	q.TransformM2d(&r, &p)
	x := a[0]*10 + a[1]*20 + a[2]
	y := a[3]*10 + a[4]*20 + a[5]
	if d := float32(x) - q[0]; d > 1e-4 || d < -1e-4 {
		t.Fatalf("Aff3FromM2d: x\nhave %v\nwant %v", x, q[0])
	}
	if d := float32(y) - q[1]; d > 1e-4 || d < -1e-4 {
		t.Fatalf("Aff3FromM2d: y\nhave %v\nwant %v", y, q[1])
	}
}

func TestTransform(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, white)
	dst := image.NewRGBA(image.Rect(0, 0, 5, 5))

	var m linear.M2d
	m.Translate(2, 3)
	Transform(draw.NearestNeighbor, dst, &m, src, src.Bounds(), draw.Src)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			var want color.RGBA
			if x == 2 && y == 3 {
				want = white
			}
			if c := dst.RGBAAt(x, y); c != want {
				t.Fatalf("Transform: pixel (%d, %d)\nhave %v\nwant %v", x, y, c, want)
			}
		}
	}
}

func TestDense(t *testing.T) {
	m3 := linear.M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	d3 := DenseM3(&m3)
	want3 := mat.NewDense(3, 3, []float64{
		1, 4, 7,
		2, 5, 8,
		3, 6, 10,
	})
	if !mat.Equal(d3, want3) {
		t.Fatalf("DenseM3\nhave %v\nwant %v", mat.Formatted(d3), mat.Formatted(want3))
	}
	x3, err := M3FromDense(d3)
	if err != nil {
		t.Fatalf("M3FromDense: unexpected error: %v", err)
	}
	if x3 != m3 {
		t.Fatalf("M3FromDense\nhave %v\nwant %v", x3, m3)
	}

	var m4 linear.M4
	m4.Perspective(1, 1.5, 0.1, 100)
	d4 := DenseM4(&m4)
	if r, c := d4.Dims(); r != 4 || c != 4 {
		t.Fatalf("DenseM4: Dims\nhave %d, %d\nwant 4, 4", r, c)
	}
	if x := d4.At(3, 2); x != -1 {
		t.Fatalf("DenseM4: At(3, 2)\nhave %v\nwant -1", x)
	}
	x4, err := M4FromDense(d4)
	if err != nil {
		t.Fatalf("M4FromDense: unexpected error: %v", err)
	}
	if x4 != m4 {
		t.Fatalf("M4FromDense\nhave %v\nwant %v", x4, m4)
	}

	// Transposed views are read through mat.Matrix.
	x4, err = M4FromDense(d4.T())
	if err != nil {
		t.Fatalf("M4FromDense: unexpected error: %v", err)
	}
	var tr linear.M4
	if tr.Transpose(&m4); x4 != tr {
		t.Fatalf("M4FromDense (transposed)\nhave %v\nwant %v", x4, tr)
	}

	// Agrees with gonum on the product.
	var p linear.M4
	p.Mul(&m4, &m4)
	var dp mat.Dense
	dp.Mul(d4, d4)
	xp, _ := M4FromDense(&dp)
	if !xp.Equal(&p) {
		t.Fatalf("M4.Mul vs mat.Dense.Mul\nhave %v\nwant %v", p, xp)
	}
}

func TestDenseDims(t *testing.T) {
	for _, x := range [...]struct {
		a     mat.Matrix
		three bool
	}{
		{mat.NewDense(3, 4, nil), true},
		{mat.NewDense(4, 3, nil), true},
		{mat.NewDense(2, 2, nil), true},
		{mat.NewDense(3, 3, nil), false},
		{mat.NewDense(4, 4, nil), true},
		{mat.NewDense(4, 5, nil), false},
		{mat.NewDense(5, 4, nil), false},
	} {
		var err error
		if x.three {
			_, err = M3FromDense(x.a)
		} else {
			_, err = M4FromDense(x.a)
		}
		r, c := x.a.Dims()
		ok := (x.three && r == 3 && c == 3) || (!x.three && r == 4 && c == 4)
		if ok != (err == nil) {
			t.Fatalf("M[34]FromDense (%d⨯%d)\nhave %v\nwant error: %t", r, c, err, !ok)
		}
		if err != nil && !strings.HasPrefix(err.Error(), prefix) {
			t.Fatalf("M[34]FromDense: error message\nhave %q\nwant prefix %q", err.Error(), prefix)
		}
	}
}
