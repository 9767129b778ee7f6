package calc

import (
	"math"
	"testing"
)

func TestTaylorCoeffs(t *testing.T) {
	// Derivatives of e^x at 0 are all 1, so c_k = 1/k!.
	derivs := []float64{1, 1, 1, 1, 1}
	coeffs := TaylorCoeffs(derivs)
	want := []float64{1, 1, 0.5, 1.0 / 6, 1.0 / 24}
	for k := range want {
		if math.Abs(coeffs[k]-want[k]) > 1e-12 {
			t.Errorf("coeff %d = %g, want %g", k, coeffs[k], want[k])
		}
	}
}

func TestTaylorEval(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		a, x   float64
		want   float64
	}{
		{"empty", nil, 0, 2, 0},
		{"constant", []float64{7}, 1, 100, 7},
		{"linear around 1", []float64{2, 3}, 1, 2, 5},
		{"quadratic", []float64{1, 0, 1}, 0, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaylorEval(tt.coeffs, tt.a, tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("TaylorEval = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestExpPartialSumsConverge(t *testing.T) {
	x := 1.0
	prevErr := math.Inf(1)
	for _, order := range []int{2, 4, 8, 12} {
		got := TaylorEval(ExpCoeffs(order), 0, x)
		err := math.Abs(got - math.E)
		if err >= prevErr {
			t.Errorf("order %d error %g did not improve on %g", order, err, prevErr)
		}
		prevErr = err
	}
	if prevErr > 1e-8 {
		t.Errorf("order 12 partial sum error %g too large", prevErr)
	}
}

func TestSinCosCoeffs(t *testing.T) {
	x := 0.7
	sin := TaylorEval(SinCoeffs(15), 0, x)
	if math.Abs(sin-math.Sin(x)) > 1e-10 {
		t.Errorf("sin partial sum = %g, want %g", sin, math.Sin(x))
	}
	cos := TaylorEval(CosCoeffs(14), 0, x)
	if math.Abs(cos-math.Cos(x)) > 1e-10 {
		t.Errorf("cos partial sum = %g, want %g", cos, math.Cos(x))
	}
}

func TestRemainderBound(t *testing.T) {
	// For e^x on [0, 1], |f^(n+1)| <= e. The actual truncation error must sit
	// under the Lagrange bound.
	x := 1.0
	for _, order := range []int{3, 5, 8} {
		bound := RemainderBound(math.E, x, order)
		actual := math.Abs(TaylorEval(ExpCoeffs(order), 0, x) - math.E)
		if actual > bound {
			t.Errorf("order %d: actual error %g exceeds bound %g", order, actual, bound)
		}
	}
}
