package array

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("operand dimensions do not match")
	ErrMalformedCSR      = errors.New("malformed CSR structure")
)

// dimensionError wraps ErrDimensionMismatch with the offending shapes.
func dimensionError(op string, a, b int) error {
	return fmt.Errorf("%s: %w: %d vs %d", op, ErrDimensionMismatch, a, b)
}
