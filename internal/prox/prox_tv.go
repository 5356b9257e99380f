package prox

import "github.com/acorn-ml/acorn/internal/array"

// ProxTV is the 1-D total-variation penalization
// strength * sum |x[i+1] - x[i]|. Call solves the TV denoising problem
// min_x 1/2 ||x - coeffs||^2 + step*strength*TV(x) over the range with
// Condat's direct algorithm, which runs in O(n) for typical inputs.
type ProxTV[T Float] struct {
	Strength T
	Positive bool
}

// NewProxTV creates a total-variation proximal operator.
func NewProxTV[T Float](strength T, positive bool) *ProxTV[T] {
	return &ProxTV[T]{Strength: strength, Positive: positive}
}

// Value returns strength * sum of absolute successive differences over
// [start, end).
func (p *ProxTV[T]) Value(coeffs *array.Dense[T], start, end int) T {
	data := coeffs.Data()
	var tv T
	for i := start + 1; i < end; i++ {
		diff := data[i] - data[i-1]
		if diff < 0 {
			diff = -diff
		}
		tv += diff
	}
	return p.Strength * tv
}

// Call writes the TV-denoised range into out.
func (p *ProxTV[T]) Call(coeffs *array.Dense[T], step T, out *array.Dense[T], start, end int) error {
	if err := checkRange(coeffs, out, start, end); err != nil {
		return err
	}
	passThrough(coeffs, out, start, end)
	tvDenoise(coeffs.Data()[start:end], out.Data()[start:end], step*p.Strength)
	if p.Positive {
		clampPositive(out.Data(), start, end)
	}
	return nil
}

// tvDenoise solves min_x 1/2||x-y||^2 + lambda*TV(x) for a 1-D signal using
// Condat's taut-string style direct algorithm (Condat, "A direct algorithm
// for 1D total variation denoising", 2013).
//
//nolint:gocyclo,cyclop // The jump/termination case analysis is the algorithm.
func tvDenoise[T Float](y, x []T, lambda T) {
	n := len(y)
	if n == 0 {
		return
	}
	if n == 1 || lambda <= 0 {
		copy(x, y)
		return
	}

	// k: current sample, k0: segment start, kminus/kplus: last positions
	// where the lower/upper bound was last active.
	var k, k0, kminus, kplus int
	vmin := y[0] - lambda
	vmax := y[0] + lambda
	umin := lambda
	umax := -lambda

	for {
		if k == n-1 {
			x[k] = vmin + umin
			return
		}
		switch {
		case y[k+1]+umin < vmin-lambda:
			// Negative jump: the lower bound is violated, fix the
			// segment at vmin and restart after it.
			for i := k0; i <= kminus; i++ {
				x[i] = vmin
			}
			k0 = kminus + 1
			k, kminus, kplus = k0, k0, k0
			vmin = y[k]
			vmax = y[k] + 2*lambda
			umin = lambda
			umax = -lambda
		case y[k+1]+umax > vmax+lambda:
			// Positive jump, symmetric case.
			for i := k0; i <= kplus; i++ {
				x[i] = vmax
			}
			k0 = kplus + 1
			k, kminus, kplus = k0, k0, k0
			vmin = y[k] - 2*lambda
			vmax = y[k]
			umin = lambda
			umax = -lambda
		default:
			// No jump: accumulate and tighten the bounds.
			k++
			umin += y[k] - vmin
			umax += y[k] - vmax
			if umin >= lambda {
				vmin += (umin - lambda) / T(k-k0+1)
				umin = lambda
				kminus = k
			}
			if umax <= -lambda {
				vmax += (umax + lambda) / T(k-k0+1)
				umax = -lambda
				kplus = k
			}
		}
		if k < n-1 {
			continue
		}
		switch {
		case umin < 0:
			// The lower bound breaks at the end: fix up to kminus and
			// resume after it.
			for i := k0; i <= kminus; i++ {
				x[i] = vmin
			}
			k0 = kminus + 1
			k, kminus = k0, k0
			vmin = y[k]
			umin = lambda
			umax = y[k] + lambda - vmax
		case umax > 0:
			for i := k0; i <= kplus; i++ {
				x[i] = vmax
			}
			k0 = kplus + 1
			k, kplus = k0, k0
			vmax = y[k]
			umax = -lambda
			umin = y[k] - lambda - vmin
		default:
			// Taut string: the remaining segment is constant.
			v := vmin + umin/T(k-k0+1)
			for i := k0; i < n; i++ {
				x[i] = v
			}
			return
		}
	}
}
