// Copyright 2025 Acorn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides Acorn's typed dense and sparse arrays.
//
// # Overview
//
// Arrays are the data structure every Acorn algorithm consumes. This package
// provides:
//   - Generic dense 1-D/2-D arrays (Dense[T]), owning or viewing caller memory
//   - Compressed sparse row matrices (Sparse2D[T]) with row-view extraction
//   - Reference-counted buffer sharing between array handles
//   - A binary file format that round-trips any array bit-exactly
//
// # Basic Usage
//
//	import "github.com/acorn-ml/acorn/array"
//
//	func main() {
//	    x, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6})
//	    s := array.NewSparse2D(4, 6, rowPtr, cols, vals)
//
//	    d := x.DotSparse(s.RowView(0))
//
//	    _ = array.SaveSparse("features.acrn", s)
//	}
//
// # Supported Element Types
//
// The DType constraint admits float32, float64, int32 and int64. Only the
// floating types have optimized vector-operation specializations; building
// with the "blas" tag routes their dot, scale, axpy and absolute-sum through
// gonum's BLAS routines without changing any call site.
//
// # Validation Contract
//
// Array-level operations validate shapes and fail fast with typed errors.
// The vector primitives underneath validate nothing: the array layer is the
// boundary that guarantees lengths match. Element access with out-of-bounds
// indices panics, as does wrapping malformed CSR data and then using it —
// use NewSparse2DChecked when the input is untrusted.
package array
