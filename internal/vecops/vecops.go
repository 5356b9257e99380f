package vecops

// Numeric is the set of element types the primitives operate on.
type Numeric interface {
	float32 | float64 | int32 | int64
}

// Integer is the subset of Numeric with exact int64 accumulation.
type Integer interface {
	int32 | int64
}

// Dot returns the inner product of x and y over len(x) elements.
func Dot[T Numeric](x, y []T) T {
	switch xs := any(x).(type) {
	case []float32:
		return any(dotFloat32(xs, any(y).([]float32))).(T)
	case []float64:
		return any(dotFloat64(xs, any(y).([]float64))).(T)
	default:
		return dotGeneric(x, y)
	}
}

// Sum returns the sum of x accumulated in the promoted type: float64 for
// floating inputs (pairwise accumulation), int64 for integer inputs. The
// result is returned as float64; use SumInt for the exact integer
// accumulator.
func Sum[T Numeric](x []T) float64 {
	switch xs := any(x).(type) {
	case []float32:
		return pairwiseSum32(xs)
	case []float64:
		return pairwiseSum64(xs)
	case []int32:
		return float64(sumInt32(xs))
	case []int64:
		return float64(sumInt64(xs))
	default:
		panic("unsupported type")
	}
}

// SumInt returns the exact int64 sum of an integer buffer.
func SumInt[T Integer](x []T) int64 {
	switch xs := any(x).(type) {
	case []int32:
		return sumInt32(xs)
	case []int64:
		return sumInt64(xs)
	default:
		panic("unsupported type")
	}
}

// Scale multiplies every element of x by alpha, in place.
func Scale[T Numeric](alpha T, x []T) {
	switch xs := any(x).(type) {
	case []float32:
		scaleFloat32(any(alpha).(float32), xs)
	case []float64:
		scaleFloat64(any(alpha).(float64), xs)
	default:
		scaleGeneric(alpha, x)
	}
}

// Set fills x with alpha.
func Set[T Numeric](alpha T, x []T) {
	setGeneric(alpha, x)
}

// MultIncr performs y += alpha*x over len(x) elements, in place.
func MultIncr[T Numeric](alpha T, x, y []T) {
	switch xs := any(x).(type) {
	case []float32:
		multIncrFloat32(any(alpha).(float32), xs, any(y).([]float32))
	case []float64:
		multIncrFloat64(any(alpha).(float64), xs, any(y).([]float64))
	default:
		multIncrGeneric(alpha, x, y)
	}
}

// AbsoluteSum returns the sum of absolute values of x.
func AbsoluteSum[T Numeric](x []T) T {
	switch xs := any(x).(type) {
	case []float32:
		return any(absSumFloat32(xs)).(T)
	case []float64:
		return any(absSumFloat64(xs)).(T)
	default:
		return absSumGeneric(x)
	}
}
