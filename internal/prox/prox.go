// Package prox implements proximal operators over dense coefficient arrays.
//
// A proximal operator consumes arrays through the narrow surface the array
// layer exposes to every algorithm: element access, shape queries and the
// in-place vector primitives. Operators act on the half-open coefficient
// range [start, end); Call writes the operator's result into that range of
// out and copies coeffs through unchanged outside it.
package prox

import (
	"fmt"

	"github.com/acorn-ml/acorn/internal/array"
)

// Float is the set of element types proximal operators act on. Penalization
// only makes sense on floating-point coefficients.
type Float interface {
	float32 | float64
}

// Prox is a proximal operator over coefficients of element type T.
type Prox[T Float] interface {
	// Value returns the penalization value of the coefficients over
	// [start, end).
	Value(coeffs *array.Dense[T], start, end int) T

	// Call applies the operator with the given step to coeffs over
	// [start, end), writing the result into out. out must have the same
	// size as coeffs.
	Call(coeffs *array.Dense[T], step T, out *array.Dense[T], start, end int) error
}

// checkRange validates a coefficient range against both operands.
func checkRange[T Float](coeffs, out *array.Dense[T], start, end int) error {
	if coeffs.Size() != out.Size() {
		return fmt.Errorf("prox: %w: coeffs size %d, out size %d", array.ErrDimensionMismatch, coeffs.Size(), out.Size())
	}
	if start < 0 || end > coeffs.Size() || start > end {
		return fmt.Errorf("prox: range [%d, %d) out of bounds for size %d", start, end, coeffs.Size())
	}
	return nil
}

// passThrough copies coeffs into out outside [start, end).
func passThrough[T Float](coeffs, out *array.Dense[T], start, end int) {
	src, dst := coeffs.Data(), out.Data()
	copy(dst[:start], src[:start])
	copy(dst[end:], src[end:])
}

// clampPositive zeroes negative entries of x over [start, end).
func clampPositive[T Float](x []T, start, end int) {
	for i := start; i < end; i++ {
		if x[i] < 0 {
			x[i] = 0
		}
	}
}
