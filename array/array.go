// Copyright 2025 Acorn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/acorn-ml/acorn/internal/array"
)

// DType is the constraint for supported element types.
type DType = array.DType

// Integer is the subset of DType with an exact int64 accumulator.
type Integer = array.Integer

// DataType is runtime type information for arrays.
type DataType = array.DataType

// Supported element types.
const (
	Float32 = array.Float32
	Float64 = array.Float64
	Int32   = array.Int32
	Int64   = array.Int64
)

// Shape represents array dimensions (rank 1 or 2, row-major).
type Shape = array.Shape

// Index is the integer type of CSR row pointers and column indices.
type Index = array.Index

// Dense is a contiguous 1-D or 2-D numeric array.
type Dense[T DType] = array.Dense[T]

// Sparse2D is a compressed sparse row matrix.
type Sparse2D[T DType] = array.Sparse2D[T]

// SparseRow is a read-only view of one CSR row.
type SparseRow[T DType] = array.SparseRow[T]

// Common errors.
var (
	ErrDimensionMismatch = array.ErrDimensionMismatch
	ErrMalformedCSR      = array.ErrMalformedCSR
)

// NewDense allocates an owning, zeroed 1-D array.
func NewDense[T DType](size int) (*Dense[T], error) {
	return array.NewDense[T](size)
}

// NewDense2D allocates an owning, zeroed rows x cols array.
func NewDense2D[T DType](rows, cols int) (*Dense[T], error) {
	return array.NewDense2D[T](rows, cols)
}

// FromSlice creates an owning 1-D array holding a copy of data.
func FromSlice[T DType](data []T) (*Dense[T], error) {
	return array.FromSlice(data)
}

// FromSlice2D creates an owning rows x cols array holding a copy of data.
func FromSlice2D[T DType](data []T, rows, cols int) (*Dense[T], error) {
	return array.FromSlice2D(data, rows, cols)
}

// ViewSlice wraps caller memory as a non-owning 1-D array.
func ViewSlice[T DType](data []T) *Dense[T] {
	return array.ViewSlice(data)
}

// ViewSlice2D wraps caller memory as a non-owning rows x cols array.
func ViewSlice2D[T DType](data []T, rows, cols int) (*Dense[T], error) {
	return array.ViewSlice2D(data, rows, cols)
}

// NewSparse2D wraps a CSR triple without copying or validating.
func NewSparse2D[T DType](nRows, nCols int, rowPtr, cols []Index, vals []T) *Sparse2D[T] {
	return array.NewSparse2D(nRows, nCols, rowPtr, cols, vals)
}

// NewSparse2DCopy builds an owning CSR matrix from copies of the triple.
func NewSparse2DCopy[T DType](nRows, nCols int, rowPtr, cols []Index, vals []T) *Sparse2D[T] {
	return array.NewSparse2DCopy(nRows, nCols, rowPtr, cols, vals)
}

// NewSparse2DChecked wraps a CSR triple after validating every structural
// invariant.
func NewSparse2DChecked[T DType](nRows, nCols int, rowPtr, cols []Index, vals []T) (*Sparse2D[T], error) {
	return array.NewSparse2DChecked(nRows, nCols, rowPtr, cols, vals)
}

// SumInt returns the exact int64 sum of an integer array.
func SumInt[T Integer](d *Dense[T]) int64 {
	return array.SumInt(d)
}
