package array

import "fmt"

// View builders. A view is a non-owning window over a parent's buffer or CSR
// segment: it reads and writes the parent's memory directly and must not
// outlive the parent. Views over owned buffers take a counted reference so
// the parent's memory survives as long as the view handle does; views over
// borrowed buffers inherit the original caller-lifetime contract.

// SparseRow is a read-only view of one CSR row: the stored (column, value)
// pairs of that row. It aliases the parent matrix's memory.
type SparseRow[T DType] struct {
	Cols []Index
	Vals []T
}

// NNZ returns the number of stored entries in the row.
func (r SparseRow[T]) NNZ() int {
	return len(r.Cols)
}

// RowView returns row r of the matrix as a sparse row view.
// Panics if r is out of bounds.
func (s *Sparse2D[T]) RowView(r int) SparseRow[T] {
	if r < 0 || r >= s.nRows {
		panic(fmt.Sprintf("row %d out of bounds for %d rows", r, s.nRows))
	}
	lo, hi := s.rowPtr[r], s.rowPtr[r+1]
	return SparseRow[T]{
		Cols: s.cols[lo:hi:hi],
		Vals: s.vals.data[lo:hi:hi],
	}
}

// RowView returns row r of a 2-D dense array as a 1-D view sharing the
// parent's buffer. Mutations through the view write to the parent.
func (d *Dense[T]) RowView(r int) *Dense[T] {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("RowView on rank-%d array", len(d.shape)))
	}
	if r < 0 || r >= d.shape[0] {
		panic(fmt.Sprintf("row %d out of bounds for %d rows", r, d.shape[0]))
	}
	d.buf.addRef()
	return &Dense[T]{
		buf:    d.buf,
		shape:  Shape{d.shape[1]},
		offset: d.offset + r*d.shape[1],
	}
}

// SubVector returns the half-open window [start, start+n) of a 1-D array as
// a view sharing the parent's buffer.
func (d *Dense[T]) SubVector(start, n int) *Dense[T] {
	if len(d.shape) != 1 {
		panic(fmt.Sprintf("SubVector on rank-%d array", len(d.shape)))
	}
	if start < 0 || n < 0 || start+n > d.shape[0] {
		panic(fmt.Sprintf("window [%d, %d) out of bounds for size %d", start, start+n, d.shape[0]))
	}
	d.buf.addRef()
	return &Dense[T]{
		buf:    d.buf,
		shape:  Shape{n},
		offset: d.offset + start,
	}
}

// Col returns column c of a 2-D array as an owning copy. Row-major storage
// has no contiguous window for a column, so this is a copy rather than a
// view.
func (d *Dense[T]) Col(c int) *Dense[T] {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("Col on rank-%d array", len(d.shape)))
	}
	if c < 0 || c >= d.shape[1] {
		panic(fmt.Sprintf("column %d out of bounds for %d columns", c, d.shape[1]))
	}
	out := &Dense[T]{buf: newBuffer[T](d.shape[0]), shape: Shape{d.shape[0]}}
	data := d.Data()
	for r := 0; r < d.shape[0]; r++ {
		out.buf.data[r] = data[r*d.shape[1]+c]
	}
	return out
}
