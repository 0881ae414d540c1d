// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"sync"
	"testing"
)

func TestQRotate(t *testing.T) {
	var q, p Q
	q.I()
	if q != (Q{0, 0, 0, 1}) {
		t.Fatalf("Q.I\nhave %v\nwant [0 0 0 1]", q)
	}

	for _, x := range [...]struct {
		axis V3
		mul  func(*Q, *Q, float32)
	}{
		{V3{1, 0, 0}, (*Q).MulRotateX},
		{V3{0, 1, 0}, (*Q).MulRotateY},
		{V3{0, 0, 1}, (*Q).MulRotateZ},
	} {
		q.Rotate(1.2, &x.axis)
		var i Q
		i.I()
		if x.mul(&p, &i, 1.2); !p.Equal(&q) {
			t.Fatalf("Q.MulRotate[XYZ] %v\nhave %v\nwant %v", x.axis, p, q)
		}
		// Applying the rotation to a non-identity
		// quaternion is the same as q ⋅ r.
		r := Q{0.5, 0.5, 0.5, 0.5}
		var want Q
		want.Mul(&r, &q)
		if x.mul(&p, &r, 1.2); !p.Equal(&want) {
			t.Fatalf("Q.MulRotate[XYZ] %v (r)\nhave %v\nwant %v", x.axis, p, want)
		}
	}
}

func TestQAxisAngle(t *testing.T) {
	var q Q
	q.I()
	if axis, angle := q.AxisAngle(); axis != (V3{1, 0, 0}) || angle != 0 {
		t.Fatalf("Q.AxisAngle (identity)\nhave %v, %v\nwant [1 0 0], 0", axis, angle)
	}

	var axis V3
	axis.Norm(&V3{1, 2, 3})
	q.Rotate(0.7, &axis)
	a, angle := q.AxisAngle()
	if !near(angle, 0.7, 1e-5) {
		t.Fatalf("Q.AxisAngle: angle\nhave %v\nwant 0.7", angle)
	}
	for i := range a {
		if !near(a[i], axis[i], 1e-5) {
			t.Fatalf("Q.AxisAngle: axis\nhave %v\nwant %v", a, axis)
		}
	}
}

func TestQArith(t *testing.T) {
	var q Q
	p := Q{1, 2, 3, 4}

	if q.Conj(&p); q != (Q{-1, -2, -3, 4}) {
		t.Fatalf("Q.Conj\nhave %v\nwant [-1 -2 -3 4]", q)
	}
	if q.Add(&p, &p); q != (Q{2, 4, 6, 8}) {
		t.Fatalf("Q.Add\nhave %v\nwant [2 4 6 8]", q)
	}
	if q.Scale(0.5, &p); q != (Q{0.5, 1, 1.5, 2}) {
		t.Fatalf("Q.Scale\nhave %v\nwant [0.5 1 1.5 2]", q)
	}
	if d := p.Dot(&p); d != 30 {
		t.Fatalf("Q.Dot\nhave %v\nwant 30", d)
	}
	if l := p.LenSq(); l != 30 {
		t.Fatalf("Q.LenSq\nhave %v\nwant 30", l)
	}
	if q.Lerp(&Q{}, &p, 0.5); q != (Q{0.5, 1, 1.5, 2}) {
		t.Fatalf("Q.Lerp\nhave %v\nwant [0.5 1 1.5 2]", q)
	}
	if q.Norm(&Q{0, 0, 3, 4}); !q.Equal(&Q{0, 0, 0.6, 0.8}) {
		t.Fatalf("Q.Norm\nhave %v\nwant [0 0 0.6 0.8]", q)
	}
	if q.Norm(&Q{}); q != (Q{}) {
		t.Fatalf("Q.Norm (zero)\nhave %v\nwant [0 0 0 0]", q)
	}

	q.Invert(&p)
	var r, i Q
	i.I()
	if r.Mul(&p, &q); !r.Equal(&i) {
		t.Fatalf("Q.Invert: p ⋅ p⁻¹\nhave %v\nwant %v", r, i)
	}
	if q.Invert(&Q{}); q != (Q{}) {
		t.Fatalf("Q.Invert (zero)\nhave %v\nwant [0 0 0 0]", q)
	}

	if q.CalcW(&Q{1, 1, 0, 7}); q != (Q{1, 1, 0, 1}) {
		t.Fatalf("Q.CalcW\nhave %v\nwant [1 1 0 1]", q)
	}
	if q.CalcW(&Q{0, 0.6, 0}); !q.Equal(&Q{0, 0.6, 0, 0.8}) {
		t.Fatalf("Q.CalcW\nhave %v\nwant [0 0.6 0 0.8]", q)
	}
	if q.CalcW(&Q{}); q != (Q{0, 0, 0, 1}) {
		t.Fatalf("Q.CalcW\nhave %v\nwant [0 0 0 1]", q)
	}
}

func TestQSlerp(t *testing.T) {
	var a, b, q Q
	var axis V3
	axis.Norm(&V3{1, 1, 0})
	a.Rotate(0.3, &axis)
	b.Rotate(1.2, &V3{0, 0, 1})
	if a.Dot(&b) <= 0 {
		t.Fatal("bad test quaternions")
	}

	if q.Slerp(&a, &b, 0); !q.Equal(&a) {
		t.Fatalf("Q.Slerp (t = 0)\nhave %v\nwant %v", q, a)
	}
	if q.Slerp(&a, &b, 1); !q.Equal(&b) {
		t.Fatalf("Q.Slerp (t = 1)\nhave %v\nwant %v", q, b)
	}

	// The shortest path is taken, so b and -b
	// interpolate the same rotations.
	var nb, p Q
	nb.Scale(-1, &b)
	for _, x := range [...]float32{0, 0.25, 0.5, 0.75, 1} {
		q.Slerp(&a, &b, x)
		p.Slerp(&a, &nb, x)
		if !p.Equal(&q) {
			t.Fatalf("Q.Slerp (-b, t = %v)\nhave %v\nwant %v", x, p, q)
		}
		if l := q.Len(); !near(l, 1, 1e-6) {
			t.Fatalf("Q.Slerp (t = %v): length\nhave %v\nwant 1", x, l)
		}
	}

	// Halfway between identity and a rotation about z.
	var i, want Q
	i.I()
	b.Rotate(math.Pi/2, &V3{0, 0, 1})
	want.Rotate(math.Pi/4, &V3{0, 0, 1})
	if q.Slerp(&i, &b, 0.5); !q.Equal(&want) {
		t.Fatalf("Q.Slerp (t = 0.5)\nhave %v\nwant %v", q, want)
	}

	// Nearly identical inputs use linear weights.
	if q.Slerp(&a, &a, 0.4); !q.Equal(&a) {
		t.Fatalf("Q.Slerp (a, a)\nhave %v\nwant %v", q, a)
	}
}

func TestQFromM3(t *testing.T) {
	z := V3{0, 0, 1}
	for _, angle := range [...]float32{0, 0.5, -1, 2.5, -2.5, math.Pi} {
		var m M3
		var q, want Q
		m.Rotate(angle)
		q.FromM3(&m)
		want.Rotate(angle, &z)
		if !sameRot(&q, &want, 1e-6) {
			t.Fatalf("Q.FromM3 (%v rad about z)\nhave %v\nwant ±%v", angle, q, want)
		}
	}

	// Exercise every branch of the extraction.
	for _, x := range [...]struct {
		angle float32
		axis  V3
	}{
		{0.4, V3{1, 0, 0}},
		{3, V3{1, 0, 0}},
		{3, V3{0, 1, 0}},
		{3, V3{0, 0, 1}},
		{2.8, V3{0.48, 0.6, 0.64}},
	} {
		var m M3
		var q, want Q
		want.Rotate(x.angle, &x.axis)
		m.RotateQ(&want)
		q.FromM3(&m)
		if !sameRot(&q, &want, 1e-5) {
			t.Fatalf("Q.FromM3 (%v rad about %v)\nhave %v\nwant ±%v", x.angle, x.axis, q, want)
		}
	}
}

func TestQEuler(t *testing.T) {
	var q, want Q

	q.Euler(90, 0, 0)
	if want.Rotate(math.Pi/2, &V3{1, 0, 0}); !q.Equal(&want) {
		t.Fatalf("Q.Euler(90, 0, 0)\nhave %v\nwant %v", q, want)
	}
	q.Euler(0, -90, 0)
	if want.Rotate(-math.Pi/2, &V3{0, 1, 0}); !q.Equal(&want) {
		t.Fatalf("Q.Euler(0, -90, 0)\nhave %v\nwant %v", q, want)
	}
	q.Euler(0, 0, 180)
	if want.Rotate(math.Pi, &V3{0, 0, 1}); !q.Equal(&want) {
		t.Fatalf("Q.Euler(0, 0, 180)\nhave %v\nwant %v", q, want)
	}

	// x is applied first, then y, then z.
	const d2r = math.Pi / 180
	var qx, qy, qz Q
	qx.Rotate(30*d2r, &V3{1, 0, 0})
	qy.Rotate(45*d2r, &V3{0, 1, 0})
	qz.Rotate(60*d2r, &V3{0, 0, 1})
	want.Mul(&qz, &qy)
	want.Mul(&want, &qx)
	q.Euler(30, 45, 60)
	if !nearV4((*V4)(&q), (*V4)(&want), 1e-5) {
		t.Fatalf("Q.Euler(30, 45, 60)\nhave %v\nwant %v", q, want)
	}
}

func TestQRandom(t *testing.T) {
	rnd := NewRand(1)
	var q Q
	for i := 0; i < 1000; i++ {
		q.Random(rnd)
		if l := q.Len(); !near(l, 1, 1e-5) {
			t.Fatalf("Q.Random: length\nhave %v\nwant 1", l)
		}
	}

	// Same seed, same sequence.
	r1, r2 := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		var q1, q2 Q
		q1.Random(r1)
		q2.Random(r2)
		if q1 != q2 {
			t.Fatalf("Q.Random (seed 42)\nhave %v\nwant %v", q2, q1)
		}
	}
}

func TestVRandom(t *testing.T) {
	rnd := NewRand(7)
	var v V3
	for i := 0; i < 1000; i++ {
		v.Random(rnd, 3)
		if l := v.Len(); !near(l, 3, 1e-5) {
			t.Fatalf("V3.Random: length\nhave %v\nwant 3", l)
		}
	}
}

func TestRandConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	fail := make(chan Q, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rnd := NewRand(seed)
			var q Q
			for j := 0; j < 500; j++ {
				if q.Random(rnd); !near(q.Len(), 1, 1e-5) {
					fail <- q
					return
				}
			}
		}(uint64(i))
	}
	wg.Wait()
	close(fail)
	if q, ok := <-fail; ok {
		t.Fatalf("Q.Random: not a unit quaternion: %v", q)
	}
}
