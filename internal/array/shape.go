package array

import "fmt"

// Shape represents the dimensions of an array. Only rank 1 and rank 2 are
// modeled; rank-2 data is row-major.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the rank is 1 or 2 and every dimension is positive.
func (s Shape) Validate() error {
	if len(s) < 1 || len(s) > 2 {
		return fmt.Errorf("unsupported rank %d (only 1-D and 2-D arrays are modeled)", len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}
