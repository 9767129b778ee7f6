// Package scatter computes quantum scattering amplitudes in the Born series
// for spherically symmetric potentials, with an analytic first-order term
// where one exists, Gauss-Legendre quadrature otherwise, and Monte Carlo
// estimators for cross-checking and for the second-order term.
//
// Natural units are used throughout: hbar = m = 1, so the Born kernel is
// U(r) = 2V(r).
package scatter

import "math"

// Vec3 is a point or momentum in 3-space.
type Vec3 [3]float64

// Dot returns the scalar product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// KVec builds a momentum of magnitude k scattered by the given polar angle
// from the z axis, in the xz plane. Convenient for setting up kOut from an
// incident beam along z.
func KVec(k, theta float64) Vec3 {
	return Vec3{k * math.Sin(theta), 0, k * math.Cos(theta)}
}

// Potential is a spherically symmetric scattering potential.
type Potential interface {
	// At evaluates the potential at a point.
	At(r Vec3) float64
	// Radial evaluates the potential at radius r >= 0.
	Radial(r float64) float64
	// Range returns the half-width L of the sampling cube [-L, L]^3 beyond
	// which the potential is negligible.
	Range() float64
	// Name identifies the potential in run records and plot titles.
	Name() string
}

// Yukawa is the screened Coulomb potential V0 e^{-mu r} / r.
type Yukawa struct {
	V0 float64
	Mu float64
}

func (y Yukawa) Radial(r float64) float64 {
	if r < 1e-12 {
		r = 1e-12
	}
	return y.V0 * math.Exp(-y.Mu*r) / r
}

func (y Yukawa) At(r Vec3) float64 { return y.Radial(r.Norm()) }
func (y Yukawa) Range() float64    { return 10 / y.Mu }
func (y Yukawa) Name() string      { return "yukawa" }

// Gaussian is the soft potential V0 e^{-r^2 / 2 sigma^2}.
type Gaussian struct {
	V0    float64
	Sigma float64
}

func (g Gaussian) Radial(r float64) float64 {
	return g.V0 * math.Exp(-r*r/(2*g.Sigma*g.Sigma))
}

func (g Gaussian) At(r Vec3) float64 { return g.Radial(r.Norm()) }
func (g Gaussian) Range() float64    { return 6 * g.Sigma }
func (g Gaussian) Name() string      { return "gaussian" }

// SquareWell is the attractive well -V0 for r < R0, zero outside.
type SquareWell struct {
	V0 float64
	R0 float64
}

func (s SquareWell) Radial(r float64) float64 {
	if r < s.R0 {
		return -s.V0
	}
	return 0
}

func (s SquareWell) At(r Vec3) float64 { return s.Radial(r.Norm()) }
func (s SquareWell) Range() float64    { return s.R0 * 1.5 }
func (s SquareWell) Name() string      { return "square-well" }
