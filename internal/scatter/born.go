package scatter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// elasticTol is the relative tolerance on |kIn| vs |kOut| for the elastic
// scattering check.
const elasticTol = 1e-9

func checkElastic(kIn, kOut Vec3) (q Vec3, err error) {
	ni, no := kIn.Norm(), kOut.Norm()
	if ni == 0 || no == 0 {
		return Vec3{}, fmt.Errorf("scatter: zero momentum")
	}
	if math.Abs(ni-no) > elasticTol*ni {
		return Vec3{}, fmt.Errorf("scatter: inelastic momenta |kIn|=%g |kOut|=%g", ni, no)
	}
	return kIn.Sub(kOut), nil
}

// BornAmplitude returns the first Born approximation to the scattering
// amplitude,
//
//	f1(q) = -(1/2pi) ∫ V(r) e^{iq·r} d³r,
//
// which for a spherically symmetric potential reduces to the radial integral
// -(2/q) ∫ r V(r) sin(qr) dr. Yukawa uses its closed form; other potentials
// are integrated with fixed Gauss-Legendre quadrature over [0, Range].
// An error is returned when the momenta are not elastic (|kIn| != |kOut|).
func BornAmplitude(p Potential, kIn, kOut Vec3) (complex128, error) {
	qv, err := checkElastic(kIn, kOut)
	if err != nil {
		return 0, err
	}
	q := qv.Norm()

	if y, ok := p.(Yukawa); ok {
		return complex(-2*y.V0/(q*q+y.Mu*y.Mu), 0), nil
	}
	return complex(radialBorn(p, q), 0), nil
}

// radialBorn integrates the radial Born integrand. The q -> 0 limit replaces
// sin(qr)/q by r.
func radialBorn(p Potential, q float64) float64 {
	var f func(r float64) float64
	if q < 1e-10 {
		f = func(r float64) float64 { return r * r * p.Radial(r) }
	} else {
		f = func(r float64) float64 { return r * p.Radial(r) * math.Sin(q*r) / q }
	}
	// 200 nodes is plenty for the smooth radial integrands used here.
	return -2 * quad.Fixed(f, 0, p.Range(), 200, nil, 0)
}

// CrossSection returns the differential cross section dσ/dΩ = |f|².
func CrossSection(f complex128) float64 {
	return real(f)*real(f) + imag(f)*imag(f)
}

// greenOutgoing is the outgoing free-particle Green's function
// G0(r) = -e^{ikr} / (4πr) used by the second Born term.
func greenOutgoing(k, r float64) complex128 {
	if r < 1e-9 {
		r = 1e-9
	}
	scale := -1 / (4 * math.Pi * r)
	s, c := math.Sincos(k * r)
	return complex(scale*c, scale*s)
}
