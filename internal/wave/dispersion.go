package wave

import "math"

// Dispersion maps wavenumber to angular frequency.
type Dispersion interface {
	Omega(k float64) float64
	Name() string
}

// NonDispersive is the linear relation ω = ck. Phase and group velocity are
// both c.
type NonDispersive struct {
	C float64
}

func (d NonDispersive) Omega(k float64) float64 { return d.C * math.Abs(k) }
func (d NonDispersive) Name() string            { return "linear" }

// DeepWater is the deep water gravity-wave relation ω = sqrt(gk). Its group
// velocity is half the phase velocity.
type DeepWater struct {
	G float64
}

func (d DeepWater) Omega(k float64) float64 { return math.Sqrt(d.G * math.Abs(k)) }
func (d DeepWater) Name() string            { return "deep-water" }

// Massive is the relativistic relation ω = sqrt(c²k² + m²c⁴/ħ²) written with
// the mass term folded into M = mc²/ħ.
type Massive struct {
	C float64
	M float64
}

func (d Massive) Omega(k float64) float64 {
	return math.Sqrt(d.C*d.C*k*k + d.M*d.M)
}
func (d Massive) Name() string { return "massive" }

// PhaseVelocity returns ω(k)/k.
func PhaseVelocity(d Dispersion, k float64) float64 {
	if k == 0 {
		return 0
	}
	return d.Omega(k) / k
}

// GroupVelocity returns dω/dk by central difference.
func GroupVelocity(d Dispersion, k float64) float64 {
	h := 1e-6 * math.Max(math.Abs(k), 1)
	return (d.Omega(k+h) - d.Omega(k-h)) / (2 * h)
}
