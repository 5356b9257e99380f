package array

import (
	"errors"
	"math"
	"testing"
)

func TestNewDenseZeroed(t *testing.T) {
	d, err := NewDense[float64](5)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if d.Size() != 5 || d.NDims() != 1 {
		t.Errorf("size = %d, ndims = %d, want 5, 1", d.Size(), d.NDims())
	}
	for i := 0; i < 5; i++ {
		if d.At(i) != 0 {
			t.Errorf("element %d = %v, want 0", i, d.At(i))
		}
	}
}

func TestNewDenseInvalidShape(t *testing.T) {
	if _, err := NewDense[float64](0); err == nil {
		t.Error("NewDense(0) should fail")
	}
	if _, err := NewDense2D[float64](3, -1); err == nil {
		t.Error("NewDense2D(3, -1) should fail")
	}
}

func TestFromSlice2DCountMismatch(t *testing.T) {
	if _, err := FromSlice2D([]float64{1, 2, 3}, 2, 2); err == nil {
		t.Error("FromSlice2D with 3 elements for 2x2 should fail")
	}
}

func TestDense2DRowMajorAccess(t *testing.T) {
	d, err := FromSlice2D([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("FromSlice2D failed: %v", err)
	}
	if d.NRows() != 2 || d.NCols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", d.NRows(), d.NCols())
	}
	if d.At2(1, 2) != 6 {
		t.Errorf("At2(1, 2) = %v, want 6", d.At2(1, 2))
	}
	d.SetAt2(0, 1, 42)
	if d.Data()[1] != 42 {
		t.Errorf("SetAt2 wrote to flat index %v, want 42 at index 1", d.Data()[1])
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	d, _ := NewDense[float64](3)
	defer func() {
		if recover() == nil {
			t.Error("At(3) should panic")
		}
	}()
	d.At(3)
}

func TestViewWritesThrough(t *testing.T) {
	backing := []float64{1, 2, 3, 4}
	v := ViewSlice(backing)
	if !v.IsView() {
		t.Fatal("ViewSlice should produce a view")
	}

	v.SetAt(2, 99)
	if backing[2] != 99 {
		t.Errorf("backing[2] = %v, want 99 (view must mutate the originating buffer)", backing[2])
	}

	// A view never frees: Release must leave the caller's memory visible.
	v.Release()
	if backing[2] != 99 {
		t.Error("Release on a view must not free caller memory")
	}
}

func TestShareRefCounting(t *testing.T) {
	d, _ := FromSlice([]float64{1, 2, 3})
	if !d.IsUnique() {
		t.Fatal("fresh array should be unique")
	}

	h := d.Share()
	if d.IsUnique() || h.IsUnique() {
		t.Error("after Share, neither handle is unique")
	}

	// Both handles see the same elements.
	h.SetAt(0, 7)
	if d.At(0) != 7 {
		t.Errorf("shared handle write not visible: got %v, want 7", d.At(0))
	}

	h.Release()
	if !d.IsUnique() {
		t.Error("after releasing the second handle, the first is unique again")
	}
}

func TestRowViewAliasesParent(t *testing.T) {
	m, _ := FromSlice2D([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	row := m.RowView(1)
	if row.Size() != 3 {
		t.Fatalf("row size = %d, want 3", row.Size())
	}
	if row.At(0) != 4 {
		t.Errorf("row[0] = %v, want 4", row.At(0))
	}

	row.SetAt(1, -5)
	if m.At2(1, 1) != -5 {
		t.Errorf("parent not mutated through row view: got %v, want -5", m.At2(1, 1))
	}
}

func TestSubVector(t *testing.T) {
	d, _ := FromSlice([]float64{0, 1, 2, 3, 4})
	sub := d.SubVector(1, 3)
	if sub.Size() != 3 || sub.At(0) != 1 || sub.At(2) != 3 {
		t.Errorf("SubVector(1, 3) = %v %v %v, want 1 2 3", sub.At(0), sub.At(1), sub.At(2))
	}
	sub.Fill(9)
	if d.At(2) != 9 {
		t.Errorf("parent not mutated through subvector: got %v", d.At(2))
	}
	if d.At(0) != 0 || d.At(4) != 4 {
		t.Error("subvector fill leaked outside its window")
	}
}

func TestColIsACopy(t *testing.T) {
	m, _ := FromSlice2D([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	col := m.Col(1)
	want := []float64{2, 4, 6}
	for i, w := range want {
		if col.At(i) != w {
			t.Errorf("col[%d] = %v, want %v", i, col.At(i), w)
		}
	}
	col.SetAt(0, 100)
	if m.At2(0, 1) != 2 {
		t.Error("Col must copy, not alias the parent")
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3})
	b, _ := FromSlice([]float64{1, 2})
	if _, err := a.Dot(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Dot with mismatched sizes: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestDot(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3})
	b, _ := FromSlice([]float64{4, 5, 6})
	got, err := a.Dot(b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestScaleOneIsIdentity(t *testing.T) {
	d, _ := FromSlice([]float64{1.5, -2.25, 3.125})
	want := append([]float64(nil), d.Data()...)
	d.Scale(1.0)
	for i, w := range want {
		if d.At(i) != w {
			t.Errorf("Scale(1.0) changed element %d: %v -> %v", i, w, d.At(i))
		}
	}
}

func TestFillZeroThenSum(t *testing.T) {
	d, _ := FromSlice([]float64{1, 2, 3, 4})
	d.Fill(0)
	if s := d.Sum(); s != 0 {
		t.Errorf("Sum after Fill(0) = %v, want 0", s)
	}
}

func TestMultIncr(t *testing.T) {
	y, _ := FromSlice([]float64{1, 1, 1})
	x, _ := FromSlice([]float64{1, 2, 3})
	if err := y.MultIncr(2, x); err != nil {
		t.Fatalf("MultIncr failed: %v", err)
	}
	want := []float64{3, 5, 7}
	for i, w := range want {
		if y.At(i) != w {
			t.Errorf("y[%d] = %v, want %v", i, y.At(i), w)
		}
	}

	short, _ := FromSlice([]float64{1})
	if err := y.MultIncr(1, short); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("MultIncr size mismatch: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestSumPromotesIntegers(t *testing.T) {
	// 2^20 copies of math.MaxInt32 overflow int32, not the int64 accumulator.
	n := 1 << 20
	data := make([]int32, n)
	for i := range data {
		data[i] = math.MaxInt32
	}
	d, _ := FromSlice(data)

	want := int64(n) * int64(math.MaxInt32)
	if got := SumInt(d); got != want {
		t.Errorf("SumInt = %d, want %d", got, want)
	}
	if got := d.Sum(); got != float64(want) {
		t.Errorf("Sum = %v, want %v", got, float64(want))
	}
}

func TestAbsoluteSum(t *testing.T) {
	d, _ := FromSlice([]float64{1, -2, 3, -4})
	if got := d.AbsoluteSum(); got != 10 {
		t.Errorf("AbsoluteSum = %v, want 10", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	d, _ := FromSlice([]float64{1, 2, 3})
	c := d.Clone()
	c.SetAt(0, 100)
	if d.At(0) != 1 {
		t.Error("Clone must not alias the source buffer")
	}
	if c.IsView() {
		t.Error("Clone should own its buffer")
	}
}
