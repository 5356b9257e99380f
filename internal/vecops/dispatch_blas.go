//go:build blas

package vecops

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// BLAS binding: float32/float64 kernels delegate to gonum's single- and
// double-precision routines with unit stride. Built with the blas tag.

func dotFloat32(x, y []float32) float32 {
	return blas32.Implementation().Sdot(len(x), x, 1, y, 1)
}

func dotFloat64(x, y []float64) float64 {
	return blas64.Implementation().Ddot(len(x), x, 1, y, 1)
}

func scaleFloat32(alpha float32, x []float32) {
	blas32.Implementation().Sscal(len(x), alpha, x, 1)
}

func scaleFloat64(alpha float64, x []float64) {
	blas64.Implementation().Dscal(len(x), alpha, x, 1)
}

func multIncrFloat32(alpha float32, x, y []float32) {
	blas32.Implementation().Saxpy(len(x), alpha, x, 1, y, 1)
}

func multIncrFloat64(alpha float64, x, y []float64) {
	blas64.Implementation().Daxpy(len(x), alpha, x, 1, y, 1)
}

func absSumFloat32(x []float32) float32 {
	return blas32.Implementation().Sasum(len(x), x, 1)
}

func absSumFloat64(x []float64) float64 {
	return blas64.Implementation().Dasum(len(x), x, 1)
}
