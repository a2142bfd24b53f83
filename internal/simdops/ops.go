// Package simdops wraps the SIMD vector kernels used on the rendering path.
// All functions operate on float64 samples; lengths are the caller's concern.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops groups the vector kernels behind function pointers so tests and
// benchmarks can swap in a scalar reference.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// DotProduct returns the dot product of a and b.
	DotProduct func(a, b []float64) float64
}

var (
	simdOps = Ops{
		Sum:        f64.Sum,
		Scale:      f64.Scale,
		DotProduct: f64.DotProduct,
	}

	scalarOps = Ops{
		Sum:        scalarSum,
		Scale:      scalarScale,
		DotProduct: scalarDot,
	}
)

// Default returns the SIMD-backed kernels.
func Default() *Ops {
	return &simdOps
}

// Scalar returns plain-loop kernels with identical semantics.
func Scalar() *Ops {
	return &scalarOps
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	return simdOps.Sum(a)
}

// Scale writes a[i]*s into dst[i].
func Scale(dst, a []float64, s float64) {
	simdOps.Scale(dst, a, s)
}

// Energy returns the sum of squares of a.
func Energy(a []float64) float64 {
	return simdOps.DotProduct(a, a)
}

func scalarSum(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v
	}
	return s
}

func scalarScale(dst, a []float64, s float64) {
	for i, v := range a {
		dst[i] = v * s
	}
}

func scalarDot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
