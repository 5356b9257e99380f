// Package vecops provides the low-level vector primitives the array types
// delegate their arithmetic to: dot, sum, scale, set, mult-incr and
// absolute-sum over contiguous buffers.
//
// Two implementations satisfy the contract. The portable one is plain Go
// loops and is always compiled. When the module is built with the "blas"
// build tag, the float32 and float64 kernels are instead bound to gonum's
// BLAS routines (Sdot/Ddot, Sscal/Dscal, Saxpy/Daxpy, Sasum/Dasum, unit
// stride); sum and set keep the portable path, which has no BLAS equivalent.
// The selection is a build-time substitution: exactly one variant exists in
// any given binary and call sites cannot tell which. Integer element types
// always use the portable loops.
//
// None of these functions validate operand lengths against each other. The
// array layer is the contract boundary that guarantees matching lengths;
// this layer is deliberately unchecked to keep the hottest loops free of
// branches. A mismatched pair of buffers is caller error.
package vecops
