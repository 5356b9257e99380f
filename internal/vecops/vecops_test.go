package vecops

import (
	"math"
	"math/rand"
	"testing"
)

// The same assertions run against whichever dispatch variant the build
// compiled in (portable by default, gonum BLAS under -tags blas), so float
// comparisons use a tolerance rather than exact equality.

const tol = 1e-10

func TestDotFloat64(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{4, 3, 2, 1}
	if got := Dot(x, y); math.Abs(got-20) > tol {
		t.Errorf("Dot = %v, want 20", got)
	}
}

func TestDotFloat32(t *testing.T) {
	x := []float32{1, 2, 3}
	y := []float32{4, 5, 6}
	if got := Dot(x, y); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestDotInt(t *testing.T) {
	if got := Dot([]int32{1, 2, 3}, []int32{1, 1, 1}); got != 6 {
		t.Errorf("Dot int32 = %v, want 6", got)
	}
	if got := Dot([]int64{-1, 2}, []int64{3, 4}); got != 5 {
		t.Errorf("Dot int64 = %v, want 5", got)
	}
}

func TestDotEmpty(t *testing.T) {
	if got := Dot([]float64{}, []float64{}); got != 0 {
		t.Errorf("Dot of empty = %v, want 0", got)
	}
}

func TestScale(t *testing.T) {
	x := []float64{1, -2, 3}
	Scale(2, x)
	want := []float64{2, -4, 6}
	for i, w := range want {
		if math.Abs(x[i]-w) > tol {
			t.Errorf("x[%d] = %v, want %v", i, x[i], w)
		}
	}
}

func TestScaleOneIsIdentity(t *testing.T) {
	x := []float32{1.5, -0.25, 3.75}
	want := append([]float32(nil), x...)
	Scale(1, x)
	for i, w := range want {
		if x[i] != w {
			t.Errorf("Scale(1) changed x[%d]: %v -> %v", i, w, x[i])
		}
	}
}

func TestSet(t *testing.T) {
	x := make([]float64, 4)
	Set(3.5, x)
	for i, v := range x {
		if v != 3.5 {
			t.Errorf("x[%d] = %v, want 3.5", i, v)
		}
	}

	Set(0, x)
	if got := Sum(x); got != 0 {
		t.Errorf("Sum after Set(0) = %v, want 0", got)
	}
}

func TestMultIncr(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 10, 10}
	MultIncr(0.5, x, y)
	want := []float64{10.5, 11, 11.5}
	for i, w := range want {
		if math.Abs(y[i]-w) > tol {
			t.Errorf("y[%d] = %v, want %v", i, y[i], w)
		}
	}
}

func TestMultIncrInt(t *testing.T) {
	x := []int64{1, 2}
	y := []int64{0, 0}
	MultIncr(3, x, y)
	if y[0] != 3 || y[1] != 6 {
		t.Errorf("y = %v, want [3 6]", y)
	}
}

func TestAbsoluteSum(t *testing.T) {
	if got := AbsoluteSum([]float64{-1, 2, -3}); math.Abs(got-6) > tol {
		t.Errorf("AbsoluteSum = %v, want 6", got)
	}
	if got := AbsoluteSum([]int32{-5, 5}); got != 10 {
		t.Errorf("AbsoluteSum int32 = %v, want 10", got)
	}
}

func TestSumMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x := make([]float64, 10000)
	var seq float64
	for i := range x {
		x[i] = rng.NormFloat64()
		seq += x[i]
	}
	if got := Sum(x); math.Abs(got-seq) > 1e-9 {
		t.Errorf("Sum = %v, sequential = %v", got, seq)
	}
}

func TestSumPairwiseAccuracy(t *testing.T) {
	// Summing many small float32 values into a float32 accumulator stalls
	// once the partial sum dwarfs the addend; the promoted pairwise sum
	// must not.
	n := 1 << 22
	x := make([]float32, n)
	for i := range x {
		x[i] = 1e-3
	}
	want := float64(n) * 1e-3
	got := Sum(x)
	if math.Abs(got-want)/want > 1e-6 {
		t.Errorf("Sum = %v, want %v within 1e-6 relative", got, want)
	}
}

func TestSumIntExact(t *testing.T) {
	x := []int32{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	want := 3 * int64(math.MaxInt32)
	if got := SumInt(x); got != want {
		t.Errorf("SumInt = %d, want %d", got, want)
	}
}

func TestBackendEquivalence(t *testing.T) {
	// The compiled dispatch variant must agree with the portable kernels
	// within floating-point tolerance.
	rng := rand.New(rand.NewSource(7))
	n := 1537 // not a multiple of any SIMD width
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
		y[i] = rng.NormFloat64()
	}

	if got, want := Dot(x, y), dotGeneric(x, y); math.Abs(got-want) > 1e-9*float64(n) {
		t.Errorf("Dot = %v, portable = %v", got, want)
	}
	if got, want := AbsoluteSum(x), absSumGeneric(x); math.Abs(got-want) > 1e-9*float64(n) {
		t.Errorf("AbsoluteSum = %v, portable = %v", got, want)
	}

	a := append([]float64(nil), x...)
	b := append([]float64(nil), x...)
	Scale(1.25, a)
	scaleGeneric(1.25, b)
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			t.Fatalf("Scale diverges from portable at %d: %v vs %v", i, a[i], b[i])
		}
	}

	c := append([]float64(nil), y...)
	d := append([]float64(nil), y...)
	MultIncr(-0.75, x, c)
	multIncrGeneric(-0.75, x, d)
	for i := range c {
		if math.Abs(c[i]-d[i]) > tol {
			t.Fatalf("MultIncr diverges from portable at %d: %v vs %v", i, c[i], d[i])
		}
	}
}
