package array

import (
	"fmt"
)

// Index is the integer type used for CSR row pointers and column indices.
// Fixed at 64 bits so serialized files are identical across builds.
type Index = int64

// Sparse2D is a compressed sparse row (CSR) matrix with element type T.
//
// rowPtr has nRows+1 entries with rowPtr[0] == 0 and rowPtr[nRows] == nnz;
// for each row r, cols[rowPtr[r]:rowPtr[r+1]] are strictly increasing column
// indices in [0, nCols) and vals holds the matching stored values. The
// wrapping constructor trusts these invariants; passing malformed CSR data
// to it is caller error with undefined results. Use NewSparse2DChecked when
// the input is not already trusted.
type Sparse2D[T DType] struct {
	nRows  int
	nCols  int
	rowPtr []Index
	cols   []Index
	vals   *buffer[T]
}

// NewSparse2D wraps the given CSR triple as a non-owning sparse matrix.
// The slices are borrowed, not copied: the caller's allocations must outlive
// the matrix. No validation or re-sorting is performed.
func NewSparse2D[T DType](nRows, nCols int, rowPtr, cols []Index, vals []T) *Sparse2D[T] {
	return &Sparse2D[T]{
		nRows:  nRows,
		nCols:  nCols,
		rowPtr: rowPtr,
		cols:   cols,
		vals:   borrowBuffer(vals),
	}
}

// NewSparse2DCopy builds an owning sparse matrix holding copies of the CSR
// triple. No validation is performed.
func NewSparse2DCopy[T DType](nRows, nCols int, rowPtr, cols []Index, vals []T) *Sparse2D[T] {
	buf := newBuffer[T](len(vals))
	copy(buf.data, vals)
	return &Sparse2D[T]{
		nRows:  nRows,
		nCols:  nCols,
		rowPtr: append([]Index(nil), rowPtr...),
		cols:   append([]Index(nil), cols...),
		vals:   buf,
	}
}

// NewSparse2DChecked is the validating constructor: it wraps the CSR triple
// like NewSparse2D but first verifies every structural invariant, returning
// ErrMalformedCSR when one fails.
func NewSparse2DChecked[T DType](nRows, nCols int, rowPtr, cols []Index, vals []T) (*Sparse2D[T], error) {
	s := NewSparse2D(nRows, nCols, rowPtr, cols, vals)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the CSR structural invariants.
func (s *Sparse2D[T]) Validate() error {
	if s.nRows <= 0 || s.nCols <= 0 {
		return fmt.Errorf("%w: non-positive shape %dx%d", ErrMalformedCSR, s.nRows, s.nCols)
	}
	if len(s.rowPtr) != s.nRows+1 {
		return fmt.Errorf("%w: row pointer length %d, want %d", ErrMalformedCSR, len(s.rowPtr), s.nRows+1)
	}
	if s.rowPtr[0] != 0 {
		return fmt.Errorf("%w: row pointer starts at %d, want 0", ErrMalformedCSR, s.rowPtr[0])
	}
	nnz := Index(len(s.cols))
	if Index(len(s.vals.data)) != nnz {
		return fmt.Errorf("%w: %d column indices but %d values", ErrMalformedCSR, nnz, len(s.vals.data))
	}
	if s.rowPtr[s.nRows] != nnz {
		return fmt.Errorf("%w: row pointer ends at %d, want nnz %d", ErrMalformedCSR, s.rowPtr[s.nRows], nnz)
	}
	for r := 0; r < s.nRows; r++ {
		lo, hi := s.rowPtr[r], s.rowPtr[r+1]
		if lo > hi {
			return fmt.Errorf("%w: row pointer decreases at row %d (%d > %d)", ErrMalformedCSR, r, lo, hi)
		}
		if hi > nnz {
			return fmt.Errorf("%w: row pointer %d exceeds nnz %d at row %d", ErrMalformedCSR, hi, nnz, r)
		}
		prev := Index(-1)
		for k := lo; k < hi; k++ {
			c := s.cols[k]
			if c < 0 || c >= Index(s.nCols) {
				return fmt.Errorf("%w: column %d out of range [0, %d) in row %d", ErrMalformedCSR, c, s.nCols, r)
			}
			if c <= prev {
				return fmt.Errorf("%w: columns not strictly increasing in row %d", ErrMalformedCSR, r)
			}
			prev = c
		}
	}
	return nil
}

// NRows returns the row count.
func (s *Sparse2D[T]) NRows() int {
	return s.nRows
}

// NCols returns the column count.
func (s *Sparse2D[T]) NCols() int {
	return s.nCols
}

// NNZ returns the number of stored entries.
func (s *Sparse2D[T]) NNZ() int {
	return len(s.cols)
}

// DType returns the runtime element type.
func (s *Sparse2D[T]) DType() DataType {
	return TypeOf[T]()
}

// RowPtr returns the row pointer sequence (length NRows+1).
// WARNING: zero-copy; treat as read-only.
func (s *Sparse2D[T]) RowPtr() []Index {
	return s.rowPtr
}

// Cols returns the column indices of all stored entries.
// WARNING: zero-copy; treat as read-only.
func (s *Sparse2D[T]) Cols() []Index {
	return s.cols
}

// Values returns the stored values of all entries.
// WARNING: zero-copy; treat as read-only.
func (s *Sparse2D[T]) Values() []T {
	return s.vals.data[:len(s.cols)]
}

// String returns a human-readable description of the matrix.
func (s *Sparse2D[T]) String() string {
	return fmt.Sprintf("Sparse2D[%s][%d %d] nnz=%d", s.DType(), s.nRows, s.nCols, s.NNZ())
}
