// Package wave provides complex travelling-wave solutions and dispersion
// relations for the wave demos.
package wave

import (
	"math"
	"math/cmplx"
)

// Solution is a complex-valued wave field ψ(x, t).
type Solution func(x, t float64) complex128

// Plane returns the travelling plane wave e^{i(kx - ωt)}.
func Plane(k, omega float64) Solution {
	return func(x, t float64) complex128 {
		return cmplx.Exp(complex(0, k*x-omega*t))
	}
}

// Standing returns the superposition of counter-propagating plane waves,
// 2·cos(kx)·e^{-iωt}, which vanishes at the nodes x = (n + 1/2)π/k.
func Standing(k, omega float64) Solution {
	return func(x, t float64) complex128 {
		return complex(2*math.Cos(k*x), 0) * cmplx.Exp(complex(0, -omega*t))
	}
}

// Superpose returns the pointwise sum of the given solutions.
func Superpose(sols ...Solution) Solution {
	return func(x, t float64) complex128 {
		var sum complex128
		for _, s := range sols {
			sum += s(x, t)
		}
		return sum
	}
}

// GaussianPacket returns a wave packet centred on wavenumber k0 with spatial
// width sigma, propagating with the supplied dispersion relation. The packet
// is evaluated as a carrier wave modulated by a Gaussian envelope moving at
// the group velocity.
func GaussianPacket(k0, sigma float64, disp Dispersion) Solution {
	omega0 := disp.Omega(k0)
	vg := GroupVelocity(disp, k0)
	return func(x, t float64) complex128 {
		env := math.Exp(-(x - vg*t) * (x - vg*t) / (2 * sigma * sigma))
		return complex(env, 0) * cmplx.Exp(complex(0, k0*x-omega0*t))
	}
}

// SampleReal evaluates the real part of the solution on the grid xs at time t.
func SampleReal(f Solution, xs []float64, t float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = real(f(x, t))
	}
	return out
}

// SampleAbs evaluates |ψ| on the grid xs at time t.
func SampleAbs(f Solution, xs []float64, t float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = cmplx.Abs(f(x, t))
	}
	return out
}
