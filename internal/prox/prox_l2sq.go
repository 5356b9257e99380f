package prox

import "github.com/acorn-ml/acorn/internal/array"

// ProxL2Sq is the squared L2 penalization strength/2 * ||x||^2. Its proximal
// operator has the closed form x / (1 + step*strength).
type ProxL2Sq[T Float] struct {
	Strength T
	Positive bool
}

// NewProxL2Sq creates a squared-L2 proximal operator.
func NewProxL2Sq[T Float](strength T, positive bool) *ProxL2Sq[T] {
	return &ProxL2Sq[T]{Strength: strength, Positive: positive}
}

// Value returns strength/2 * sum(x[i]^2) over [start, end).
func (p *ProxL2Sq[T]) Value(coeffs *array.Dense[T], start, end int) T {
	sub := coeffs.SubVector(start, end-start)
	defer sub.Release()
	dot, err := sub.Dot(sub)
	if err != nil {
		panic(err) // same operand twice, cannot mismatch
	}
	return p.Strength * dot / 2
}

// Call scales the range by 1/(1 + step*strength), clamping to nonnegative
// values when the operator is positive.
func (p *ProxL2Sq[T]) Call(coeffs *array.Dense[T], step T, out *array.Dense[T], start, end int) error {
	if err := checkRange(coeffs, out, start, end); err != nil {
		return err
	}
	passThrough(coeffs, out, start, end)

	sub := out.SubVector(start, end-start)
	defer sub.Release()
	src := coeffs.SubVector(start, end-start)
	defer src.Release()

	sub.Fill(0)
	if err := sub.MultIncr(1/(1+step*p.Strength), src); err != nil {
		return err
	}
	if p.Positive {
		clampPositive(out.Data(), start, end)
	}
	return nil
}
