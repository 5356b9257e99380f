package array

// Promotion maps a storage type to the accumulator type used for sums, so
// reductions do not overflow or lose precision in the storage type:
//
//	float32 -> float64
//	float64 -> float64
//	int32   -> int64
//	int64   -> int64
//
// The mapping is explicit rather than relying on implicit widening. Go cannot
// express a type-level map from T to its accumulator, so reductions carry two
// results: Promoted (float64, exact for every float input and for integer
// sums up to 2^53) and, for integer element types, the exact int64
// accumulator.

// Promoted returns the DataType reductions over dt accumulate in.
func (dt DataType) Promoted() DataType {
	switch dt {
	case Float32, Float64:
		return Float64
	case Int32, Int64:
		return Int64
	default:
		panic("unknown data type")
	}
}

// IsFloat reports whether dt is a floating-point type. Only floating types
// receive optimized vector-operation specializations.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}
