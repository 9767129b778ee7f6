// Package calc provides the numerical calculus kernels used by the demos:
// finite-difference derivatives of sampled data and Taylor partial sums.
package calc

type derivParams struct{ out []float64 }

type internalDerivOption func(*derivParams)

// DerivOption configures a call to Deriv.
type DerivOption internalDerivOption

// Out supplies a call to Deriv with a slice to write derivatives to.
func Out(out []float64) DerivOption {
	return func(p *derivParams) { p.out = out }
}

func (p *derivParams) loadOptions(opts []DerivOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// Deriv computes the numerical derivative of a sequence of (x, y) points.
// The points do not need to be uniformly spaced.
//
// The only supported orders are 2 and 4. Order 0 copies xs into the output,
// which is occasionally useful when stacking derivative columns for a plot.
func Deriv(xs, ys []float64, order int, opts ...DerivOption) []float64 {
	n := len(xs)

	p := new(derivParams)
	p.loadOptions(opts)
	out := p.out
	if out == nil {
		out = make([]float64, n)
	}

	if len(ys) != n {
		panic("calc: length of ys and xs are not the same")
	} else if len(out) != n {
		panic("calc: length of out and xs are not the same")
	}

	switch order {
	case 0:
		copy(out, xs)
	case 2:
		if n < 3 {
			panic("calc: order 2 requires at least 3 points")
		}
		for i := 1; i < n-1; i++ {
			out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
		}
		out[0] = (-3*ys[0] + 4*ys[1] - ys[2]) / (xs[2] - xs[0])
		out[n-1] = -(-3*ys[n-1] + 4*ys[n-2] - ys[n-3]) / (xs[n-1] - xs[n-3])
	case 4:
		if n < 5 {
			panic("calc: order 4 requires at least 5 points")
		}
		for i := 2; i < n-2; i++ {
			out[i] = (-ys[i+2] + 8*ys[i+1] - 8*ys[i-1] + ys[i-2]) /
				(3 * (xs[i+2] - xs[i-1]))
		}
		out[0] = (-3*ys[4] + 16*ys[3] - 36*ys[2] + 48*ys[1] - 25*ys[0]) /
			(3 * (xs[4] - xs[0]))
		out[1] = (-3*ys[0] - 10*ys[1] + 18*ys[2] - 6*ys[3] + ys[4]) /
			(3 * (xs[4] - xs[0]))
		out[n-2] = (-3*ys[n-1] - 10*ys[n-2] + 18*ys[n-3] - 6*ys[n-4] + ys[n-5]) /
			(3 * (xs[n-5] - xs[n-1]))
		out[n-1] = (-3*ys[n-5] + 16*ys[n-4] - 36*ys[n-3] + 48*ys[n-2] - 25*ys[n-1]) /
			(3 * (xs[n-5] - xs[n-1]))
	default:
		panic("calc: invalid derivative order")
	}
	return out
}

// SecondDeriv computes the second derivative of uniformly spaced samples
// using the standard three-point stencil. The spacing h must be positive.
func SecondDeriv(ys []float64, h float64) []float64 {
	n := len(ys)
	if n < 4 {
		panic("calc: second derivative requires at least 4 points")
	}
	if h <= 0 {
		panic("calc: spacing must be positive")
	}

	out := make([]float64, n)
	hh := h * h
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - 2*ys[i] + ys[i-1]) / hh
	}
	// One-sided stencils at the boundaries.
	out[0] = (2*ys[0] - 5*ys[1] + 4*ys[2] - ys[3]) / hh
	out[n-1] = (2*ys[n-1] - 5*ys[n-2] + 4*ys[n-3] - ys[n-4]) / hh
	return out
}
