//go:build !blas

package vecops

// Portable binding: the float kernels are the generic loops. Built when the
// blas tag is absent.

func dotFloat32(x, y []float32) float32 { return dotGeneric(x, y) }
func dotFloat64(x, y []float64) float64 { return dotGeneric(x, y) }

func scaleFloat32(alpha float32, x []float32) { scaleGeneric(alpha, x) }
func scaleFloat64(alpha float64, x []float64) { scaleGeneric(alpha, x) }

func multIncrFloat32(alpha float32, x, y []float32) { multIncrGeneric(alpha, x, y) }
func multIncrFloat64(alpha float64, x, y []float64) { multIncrGeneric(alpha, x, y) }

func absSumFloat32(x []float32) float32 { return absSumGeneric(x) }
func absSumFloat64(x []float64) float64 { return absSumGeneric(x) }
