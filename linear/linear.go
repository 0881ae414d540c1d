// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// All types are arrays of float32, so a value is also its
// packed memory layout (matrices are column-major).
// Methods that compute a new value store it in the receiver
// and take their operands as pointers. The receiver may be
// one of the operands:
//
//	m.Mul(&m, &n) // m = m ⋅ n
//
// Matrices compose as l ⋅ r, where r is applied first.
//
// Exact comparison is done with ==. Equal methods compare
// approximately, element by element, using Epsilon.
package linear

import (
	"math"

	"golang.org/x/exp/rand"
)

// Epsilon is the tolerance used by approximate comparisons
// and by the degenerate case checks.
const Epsilon = 1e-6

// approx reports whether p and q are within Epsilon of each
// other, scaled by their magnitude when greater than one.
func approx(p, q float32) bool {
	return abs(p-q) <= Epsilon*max(1, abs(p), abs(q))
}

func abs(x float32) float32 { return math.Float32frombits(math.Float32bits(x) &^ (1 << 31)) }

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func sin(x float32) float32 { return float32(math.Sin(float64(x))) }

func cos(x float32) float32 { return float32(math.Cos(float64(x))) }

func tan(x float32) float32 { return float32(math.Tan(float64(x))) }

func acos(x float32) float32 { return float32(math.Acos(float64(x))) }

// Rand is a source of uniformly distributed values in [0, 1).
// *rand.Rand (both math/rand and golang.org/x/exp/rand)
// implements it.
type Rand interface {
	Float32() float32
}

// NewRand returns a PCG generator seeded with seed.
// It must not be shared by concurrent goroutines.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
