package array

import (
	"fmt"

	"github.com/acorn-ml/acorn/internal/vecops"
)

// Dense is a contiguous 1-D or 2-D numeric array with element type T.
// Rank-2 data is row-major. A Dense either owns its buffer (allocated here,
// freed when the last reference is released) or is a view over caller
// memory; see the buffer lifetime contract in buffer.go.
//
// Arithmetic delegates to the vecops dispatch layer; which implementation
// runs is a build-time decision (see the vecops package doc).
type Dense[T DType] struct {
	buf    *buffer[T]
	shape  Shape
	offset int
}

// NewDense allocates an owning, zeroed 1-D array of the given size.
func NewDense[T DType](size int) (*Dense[T], error) {
	shape := Shape{size}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense[T]{buf: newBuffer[T](size), shape: shape}, nil
}

// NewDense2D allocates an owning, zeroed rows x cols array.
func NewDense2D[T DType](rows, cols int) (*Dense[T], error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense[T]{buf: newBuffer[T](rows * cols), shape: shape}, nil
}

// FromSlice creates an owning 1-D array holding a copy of data.
func FromSlice[T DType](data []T) (*Dense[T], error) {
	d, err := NewDense[T](len(data))
	if err != nil {
		return nil, err
	}
	copy(d.Data(), data)
	return d, nil
}

// FromSlice2D creates an owning rows x cols array holding a copy of data,
// which must be row-major with rows*cols elements.
func FromSlice2D[T DType](data []T, rows, cols int) (*Dense[T], error) {
	d, err := NewDense2D[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("shape [%d %d] requires %d elements, but got %d", rows, cols, rows*cols, len(data))
	}
	copy(d.Data(), data)
	return d, nil
}

// ViewSlice wraps caller memory as a non-owning 1-D array. The caller's
// allocation must outlive the view; mutations through the view write to the
// caller's memory directly.
func ViewSlice[T DType](data []T) *Dense[T] {
	return &Dense[T]{buf: borrowBuffer(data), shape: Shape{len(data)}}
}

// ViewSlice2D wraps caller memory as a non-owning rows x cols array.
func ViewSlice2D[T DType](data []T, rows, cols int) (*Dense[T], error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if rows*cols != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, rows*cols, len(data))
	}
	return &Dense[T]{buf: borrowBuffer(data), shape: shape}, nil
}

// Shape returns the array's shape.
func (d *Dense[T]) Shape() Shape {
	return d.shape
}

// NDims returns the rank (1 or 2).
func (d *Dense[T]) NDims() int {
	return len(d.shape)
}

// Size returns the total number of elements.
func (d *Dense[T]) Size() int {
	return d.shape.NumElements()
}

// NRows returns the row count of a 2-D array. Panics on 1-D arrays.
func (d *Dense[T]) NRows() int {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("NRows on rank-%d array", len(d.shape)))
	}
	return d.shape[0]
}

// NCols returns the column count of a 2-D array. Panics on 1-D arrays.
func (d *Dense[T]) NCols() int {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("NCols on rank-%d array", len(d.shape)))
	}
	return d.shape[1]
}

// DType returns the runtime element type.
func (d *Dense[T]) DType() DataType {
	return TypeOf[T]()
}

// Data returns the backing elements as a slice.
// WARNING: zero-copy; modifications write through to the buffer.
func (d *Dense[T]) Data() []T {
	return d.buf.data[d.offset : d.offset+d.Size()]
}

// IsView reports whether this array borrows caller memory.
func (d *Dense[T]) IsView() bool {
	return !d.buf.owned()
}

// IsUnique reports whether this array holds the only owning reference to
// its buffer.
func (d *Dense[T]) IsUnique() bool {
	return d.buf.isUnique()
}

// Share returns a new handle on the same buffer, incrementing the reference
// count for owned buffers. Both handles see the same elements.
func (d *Dense[T]) Share() *Dense[T] {
	d.buf.addRef()
	return &Dense[T]{buf: d.buf, shape: d.shape.Clone(), offset: d.offset}
}

// Release drops this handle's owning reference. The buffer is freed when the
// last owning reference is released. No-op for views.
func (d *Dense[T]) Release() {
	d.buf.release()
}

// At returns the element at index i of a 1-D array.
// Panics if the array is 2-D or i is out of bounds.
func (d *Dense[T]) At(i int) T {
	if len(d.shape) != 1 {
		panic(fmt.Sprintf("At on rank-%d array, use At2", len(d.shape)))
	}
	if i < 0 || i >= d.shape[0] {
		panic(fmt.Sprintf("index %d out of bounds for size %d", i, d.shape[0]))
	}
	return d.Data()[i]
}

// SetAt sets the element at index i of a 1-D array.
func (d *Dense[T]) SetAt(i int, v T) {
	if len(d.shape) != 1 {
		panic(fmt.Sprintf("SetAt on rank-%d array, use SetAt2", len(d.shape)))
	}
	if i < 0 || i >= d.shape[0] {
		panic(fmt.Sprintf("index %d out of bounds for size %d", i, d.shape[0]))
	}
	d.Data()[i] = v
}

// At2 returns the element at row r, column c of a 2-D array (row-major).
func (d *Dense[T]) At2(r, c int) T {
	return d.Data()[d.flatIndex(r, c)]
}

// SetAt2 sets the element at row r, column c of a 2-D array.
func (d *Dense[T]) SetAt2(r, c int, v T) {
	d.Data()[d.flatIndex(r, c)] = v
}

func (d *Dense[T]) flatIndex(r, c int) int {
	if len(d.shape) != 2 {
		panic(fmt.Sprintf("2-D access on rank-%d array", len(d.shape)))
	}
	if r < 0 || r >= d.shape[0] {
		panic(fmt.Sprintf("row %d out of bounds for %d rows", r, d.shape[0]))
	}
	if c < 0 || c >= d.shape[1] {
		panic(fmt.Sprintf("column %d out of bounds for %d columns", c, d.shape[1]))
	}
	return r*d.shape[1] + c
}

// Dot returns the inner product with other, which must have the same total
// size. Both operands are read in flat row-major order.
func (d *Dense[T]) Dot(other *Dense[T]) (T, error) {
	if d.Size() != other.Size() {
		var zero T
		return zero, dimensionError("dot", d.Size(), other.Size())
	}
	return vecops.Dot(d.Data(), other.Data()), nil
}

// DotSparse returns the inner product of a 1-D dense vector with one CSR
// row view. Entries outside the row's stored column set contribute zero.
// Column indices must lie within the vector's size; that is the CSR
// invariant, not re-checked here.
func (d *Dense[T]) DotSparse(row SparseRow[T]) T {
	var result T
	data := d.Data()
	for k, c := range row.Cols {
		result += row.Vals[k] * data[c]
	}
	return result
}

// Scale multiplies every element by alpha, in place.
func (d *Dense[T]) Scale(alpha T) {
	vecops.Scale(alpha, d.Data())
}

// Fill sets every element to alpha, in place.
func (d *Dense[T]) Fill(alpha T) {
	vecops.Set(alpha, d.Data())
}

// MultIncr performs d += alpha*x in place. x must have the same total size.
func (d *Dense[T]) MultIncr(alpha T, x *Dense[T]) error {
	if d.Size() != x.Size() {
		return dimensionError("mult_incr", d.Size(), x.Size())
	}
	vecops.MultIncr(alpha, x.Data(), d.Data())
	return nil
}

// Sum returns the promoted-type sum of all elements (see promote.go).
func (d *Dense[T]) Sum() float64 {
	return vecops.Sum(d.Data())
}

// AbsoluteSum returns the sum of absolute values of all elements.
func (d *Dense[T]) AbsoluteSum() T {
	return vecops.AbsoluteSum(d.Data())
}

// Clone creates an owning deep copy.
func (d *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{buf: newBuffer[T](d.Size()), shape: d.shape.Clone()}
	copy(out.buf.data, d.Data())
	return out
}

// String returns a human-readable description of the array.
func (d *Dense[T]) String() string {
	kind := "owned"
	if d.IsView() {
		kind = "view"
	}
	return fmt.Sprintf("Dense[%s]%v (%s)", d.DType(), d.shape, kind)
}

// Integer is the subset of DType with an exact int64 accumulator.
type Integer interface {
	int32 | int64
}

// SumInt returns the exact int64 sum of an integer array.
func SumInt[T Integer](d *Dense[T]) int64 {
	return vecops.SumInt(d.Data())
}
