// Copyright 2025 Acorn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"io"

	"github.com/acorn-ml/acorn/internal/serialization"
)

// Options configures how an array is encoded.
type Options = serialization.Options

// Header is the decoded fixed header of a serialized array.
type Header = serialization.Header

// Serialization errors.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrCorruptData        = serialization.ErrCorruptData
	ErrTypeMismatch       = serialization.ErrTypeMismatch
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
)

// WriteDense encodes a dense array to w.
func WriteDense[T DType](w io.Writer, d *Dense[T], opts Options) error {
	return serialization.WriteDense(w, d, opts)
}

// WriteSparse encodes a CSR matrix to w.
func WriteSparse[T DType](w io.Writer, s *Sparse2D[T], opts Options) error {
	return serialization.WriteSparse(w, s, opts)
}

// ReadDense decodes a dense array of element type T from r.
func ReadDense[T DType](r io.Reader) (*Dense[T], error) {
	return serialization.ReadDense[T](r)
}

// ReadSparse decodes a CSR matrix of element type T from r.
func ReadSparse[T DType](r io.Reader) (*Sparse2D[T], error) {
	return serialization.ReadSparse[T](r)
}

// SaveDense writes a dense array to a file (checksummed, uncompressed).
func SaveDense[T DType](path string, d *Dense[T]) error {
	return serialization.SaveDense(path, d)
}

// SaveSparse writes a CSR matrix to a file (checksummed, uncompressed).
func SaveSparse[T DType](path string, s *Sparse2D[T]) error {
	return serialization.SaveSparse(path, s)
}

// LoadDense reads a dense array back from a file.
func LoadDense[T DType](path string) (*Dense[T], error) {
	return serialization.LoadDense[T](path)
}

// LoadSparse reads a CSR matrix back from a file.
func LoadSparse[T DType](path string) (*Sparse2D[T], error) {
	return serialization.LoadSparse[T](path)
}
