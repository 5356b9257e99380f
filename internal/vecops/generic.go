package vecops

// Portable kernels. These are the only implementation for integer element
// types, and for float32/float64 in builds without the blas tag.

func dotGeneric[T Numeric](x, y []T) T {
	var result T
	for i := range x {
		result += x[i] * y[i]
	}
	return result
}

func scaleGeneric[T Numeric](alpha T, x []T) {
	for i := range x {
		x[i] *= alpha
	}
}

func setGeneric[T Numeric](alpha T, x []T) {
	for i := range x {
		x[i] = alpha
	}
}

func multIncrGeneric[T Numeric](alpha T, x, y []T) {
	for i := range x {
		y[i] += alpha * x[i]
	}
}

func absSumGeneric[T Numeric](x []T) T {
	var result T
	for _, v := range x {
		if v < 0 {
			result -= v
		} else {
			result += v
		}
	}
	return result
}

// pairwiseBlock is the cutoff below which pairwise summation switches to a
// sequential loop.
const pairwiseBlock = 64

// pairwiseSum32 sums x in float64 with pairwise splitting, which bounds the
// rounding error growth at O(log n) instead of O(n).
func pairwiseSum32(x []float32) float64 {
	if len(x) <= pairwiseBlock {
		var s float64
		for _, v := range x {
			s += float64(v)
		}
		return s
	}
	half := len(x) / 2
	return pairwiseSum32(x[:half]) + pairwiseSum32(x[half:])
}

func pairwiseSum64(x []float64) float64 {
	if len(x) <= pairwiseBlock {
		var s float64
		for _, v := range x {
			s += v
		}
		return s
	}
	half := len(x) / 2
	return pairwiseSum64(x[:half]) + pairwiseSum64(x[half:])
}

func sumInt32(x []int32) int64 {
	var s int64
	for _, v := range x {
		s += int64(v)
	}
	return s
}

func sumInt64(x []int64) int64 {
	var s int64
	for _, v := range x {
		s += v
	}
	return s
}
