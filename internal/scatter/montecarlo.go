package scatter

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MCResult is one Monte Carlo estimate of a scattering amplitude term.
type MCResult struct {
	// Estimate is the amplitude estimate: sample mean scaled by the
	// integration volume.
	Estimate complex128
	// StdErr is the standard error of the estimate magnitude, combining the
	// real and imaginary sample variances.
	StdErr float64
	// Samples is the number of points drawn.
	Samples int
	// Volume is the total integration volume (cube volume for the first
	// Born term, its square for the second).
	Volume float64
}

// cubeSampler draws uniform points from [-L, L]^3.
type cubeSampler struct {
	u distuv.Uniform
}

func newCubeSampler(l float64, src rand.Source) cubeSampler {
	return cubeSampler{u: distuv.Uniform{Min: -l, Max: l, Src: src}}
}

func (c cubeSampler) draw() Vec3 {
	return Vec3{c.u.Rand(), c.u.Rand(), c.u.Rand()}
}

// FirstBornMC estimates the first Born amplitude by uniform sampling of the
// cube [-L, L]^3 with L = Potential.Range(): the integrand is averaged over
// the draws and scaled by the cube volume. It is the Monte Carlo counterpart
// of BornAmplitude and converges to it as n grows.
func FirstBornMC(p Potential, kIn, kOut Vec3, n int, src rand.Source) (MCResult, error) {
	qv, err := checkElastic(kIn, kOut)
	if err != nil {
		return MCResult{}, err
	}
	if n < 2 {
		return MCResult{}, fmt.Errorf("scatter: sample count %d must be at least 2", n)
	}

	l := p.Range()
	vol := 8 * l * l * l
	sampler := newCubeSampler(l, src)

	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		r := sampler.draw()
		v := p.At(r)
		phase := qv.Dot(r)
		s, c := math.Sincos(phase)
		// -(1/2pi) V(r) e^{iq·r}
		re[i] = -v * c / (2 * math.Pi)
		im[i] = -v * s / (2 * math.Pi)
	}

	return meanResult(re, im, vol, n), nil
}

// SecondBornMC estimates the second Born term,
//
//	f2 = -(1/4pi) ∫∫ e^{-ikOut·r1} U(r1) G0(r1-r2) U(r2) e^{ikIn·r2} d³r1 d³r2
//
// with U = 2V, by uniform sampling of (r1, r2) pairs from the cube
// [-L, L]^3. The 1/|r1-r2| singularity of the Green's function is integrable;
// near-coincident pairs are clamped rather than resampled.
func SecondBornMC(p Potential, kIn, kOut Vec3, n int, src rand.Source) (MCResult, error) {
	_, err := checkElastic(kIn, kOut)
	if err != nil {
		return MCResult{}, err
	}
	if n < 2 {
		return MCResult{}, fmt.Errorf("scatter: sample count %d must be at least 2", n)
	}

	k := kIn.Norm()
	l := p.Range()
	vol := 8 * l * l * l
	sampler := newCubeSampler(l, src)

	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		r1 := sampler.draw()
		r2 := sampler.draw()

		u1 := 2 * p.At(r1)
		u2 := 2 * p.At(r2)
		if u1 == 0 || u2 == 0 {
			continue
		}

		g := greenOutgoing(k, r1.Sub(r2).Norm())

		// e^{-ikOut·r1} ... e^{ikIn·r2}, with the -(1/4pi) prefactor.
		s1, c1 := math.Sincos(-kOut.Dot(r1))
		s2, c2 := math.Sincos(kIn.Dot(r2))
		val := complex(c1, s1) * g * complex(c2, s2) * complex(-u1*u2/(4*math.Pi), 0)
		re[i] = real(val)
		im[i] = imag(val)
	}

	return meanResult(re, im, vol*vol, n), nil
}

func meanResult(re, im []float64, volume float64, n int) MCResult {
	meanRe := stat.Mean(re, nil)
	meanIm := stat.Mean(im, nil)
	varRe := stat.Variance(re, nil)
	varIm := stat.Variance(im, nil)

	return MCResult{
		Estimate: complex(meanRe*volume, meanIm*volume),
		StdErr:   volume * math.Sqrt((varRe+varIm)/float64(n)),
		Samples:  n,
		Volume:   volume,
	}
}

// Converge runs FirstBornMC for each sample count in ns, returning one
// result per count. Used by the convergence demo to show the 1/sqrt(n)
// error trend against the analytic amplitude.
func Converge(p Potential, kIn, kOut Vec3, ns []int, src rand.Source) ([]MCResult, error) {
	out := make([]MCResult, 0, len(ns))
	for _, n := range ns {
		res, err := FirstBornMC(p, kIn, kOut, n, src)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}
