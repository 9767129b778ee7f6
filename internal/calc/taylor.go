package calc

import "math"

// TaylorCoeffs converts derivatives f(a), f'(a), f^(2)(a), ... at the expansion
// point into Taylor coefficients c_k = f^(k)(a) / k!.
func TaylorCoeffs(derivs []float64) []float64 {
	coeffs := make([]float64, len(derivs))
	fact := 1.0
	for k, d := range derivs {
		if k > 0 {
			fact *= float64(k)
		}
		coeffs[k] = d / fact
	}
	return coeffs
}

// TaylorEval evaluates the Taylor partial sum with the given coefficients
// around the point a, using Horner's scheme. Empty coefficients evaluate
// to zero.
func TaylorEval(coeffs []float64, a, x float64) float64 {
	u := x - a
	sum := 0.0
	for k := len(coeffs) - 1; k >= 0; k-- {
		sum = sum*u + coeffs[k]
	}
	return sum
}

// ExpCoeffs returns the Maclaurin coefficients of e^x up to order n inclusive.
func ExpCoeffs(n int) []float64 {
	coeffs := make([]float64, n+1)
	fact := 1.0
	for k := 0; k <= n; k++ {
		if k > 0 {
			fact *= float64(k)
		}
		coeffs[k] = 1 / fact
	}
	return coeffs
}

// SinCoeffs returns the Maclaurin coefficients of sin(x) up to order n inclusive.
func SinCoeffs(n int) []float64 {
	coeffs := make([]float64, n+1)
	fact := 1.0
	sign := 1.0
	for k := 0; k <= n; k++ {
		if k > 0 {
			fact *= float64(k)
		}
		if k%2 == 1 {
			coeffs[k] = sign / fact
			sign = -sign
		}
	}
	return coeffs
}

// CosCoeffs returns the Maclaurin coefficients of cos(x) up to order n inclusive.
func CosCoeffs(n int) []float64 {
	coeffs := make([]float64, n+1)
	fact := 1.0
	sign := 1.0
	for k := 0; k <= n; k++ {
		if k > 0 {
			fact *= float64(k)
		}
		if k%2 == 0 {
			coeffs[k] = sign / fact
			sign = -sign
		}
	}
	return coeffs
}

// RemainderBound returns the Lagrange remainder bound for truncating a
// Maclaurin series at order n, given a bound m on |f^(n+1)| over [0, x]:
// |R_n(x)| <= m |x|^(n+1) / (n+1)!.
func RemainderBound(m, x float64, n int) float64 {
	fact := 1.0
	for k := 2; k <= n+1; k++ {
		fact *= float64(k)
	}
	return m * math.Pow(math.Abs(x), float64(n+1)) / fact
}
