package quantum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Subsystem selects which half of a bipartite system a partial trace keeps.
type Subsystem int

const (
	// SubsystemA keeps the first factor, tracing out B.
	SubsystemA Subsystem = iota
	// SubsystemB keeps the second factor, tracing out A.
	SubsystemB
)

// traceTol is the tolerance on Tr(rho) = 1 and on Hermiticity checks.
const traceTol = 1e-8

// Norm returns the 2-norm of a state vector.
func Norm(psi *mat.CDense) float64 {
	r, _ := psi.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		a := psi.At(i, 0)
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Normalize scales psi in place to unit norm. A zero vector is left alone.
func Normalize(psi *mat.CDense) {
	n := Norm(psi)
	if n == 0 {
		return
	}
	r, _ := psi.Dims()
	s := complex(1/n, 0)
	for i := 0; i < r; i++ {
		psi.Set(i, 0, s*psi.At(i, 0))
	}
}

// Density returns the pure-state density matrix |psi><psi|, normalising the
// state first.
func Density(psi *mat.CDense) *mat.CDense {
	p := cloneVec(psi)
	Normalize(p)
	r, _ := p.Dims()

	rho := mat.NewCDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			rho.Set(i, j, p.At(i, 0)*cmplx.Conj(p.At(j, 0)))
		}
	}
	return rho
}

// Trace returns the trace of a square matrix.
func Trace(m *mat.CDense) complex128 {
	r, c := m.Dims()
	if r != c {
		panic("quantum: trace of non-square matrix")
	}
	var t complex128
	for i := 0; i < r; i++ {
		t += m.At(i, i)
	}
	return t
}

// PartialTrace reduces a density matrix on a bipartite space of dimensions
// dimA x dimB to the kept subsystem by summing the basis-projected blocks:
//
//	keep A: rhoA[i][j] = Σ_b rho[i·dB + b][j·dB + b]
//	keep B: rhoB[a][b] = Σ_i rho[i·dB + a][i·dB + b]
//
// It errors when the matrix shape does not match dimA·dimB.
func PartialTrace(rho *mat.CDense, dimA, dimB int, keep Subsystem) (*mat.CDense, error) {
	r, c := rho.Dims()
	if dimA < 1 || dimB < 1 {
		return nil, fmt.Errorf("quantum: invalid subsystem dims %dx%d", dimA, dimB)
	}
	if r != c || r != dimA*dimB {
		return nil, fmt.Errorf("quantum: density matrix is %dx%d, want %dx%d", r, c, dimA*dimB, dimA*dimB)
	}

	switch keep {
	case SubsystemA:
		out := mat.NewCDense(dimA, dimA, nil)
		for i := 0; i < dimA; i++ {
			for j := 0; j < dimA; j++ {
				var sum complex128
				for b := 0; b < dimB; b++ {
					sum += rho.At(i*dimB+b, j*dimB+b)
				}
				out.Set(i, j, sum)
			}
		}
		return out, nil
	case SubsystemB:
		out := mat.NewCDense(dimB, dimB, nil)
		for a := 0; a < dimB; a++ {
			for b := 0; b < dimB; b++ {
				var sum complex128
				for i := 0; i < dimA; i++ {
					sum += rho.At(i*dimB+a, i*dimB+b)
				}
				out.Set(a, b, sum)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("quantum: unknown subsystem %d", keep)
	}
}

// hermitianEigenvalues returns the eigenvalues of a Hermitian complex matrix
// via its real symmetric embedding [[Re, -Im], [Im, Re]], whose spectrum is
// that of the original matrix with every eigenvalue doubled.
func hermitianEigenvalues(m *mat.CDense) ([]float64, error) {
	d, c := m.Dims()
	if d != c {
		return nil, fmt.Errorf("quantum: matrix is %dx%d, want square", d, c)
	}
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			if cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))) > traceTol {
				return nil, fmt.Errorf("quantum: matrix not Hermitian at (%d,%d)", i, j)
			}
		}
	}

	emb := mat.NewSymDense(2*d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			v := m.At(i, j)
			emb.SetSym(i, j, real(v))
			emb.SetSym(i+d, j+d, real(v))
			// Off-diagonal block: -Im. Its mirror Im follows from SetSym and
			// the antisymmetry of Im for Hermitian input.
			emb.SetSym(i, j+d, -imag(v))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(emb, false); !ok {
		return nil, fmt.Errorf("quantum: eigendecomposition failed")
	}
	doubled := es.Values(nil)

	// Every eigenvalue appears twice; collapse pairs after sorting.
	vals := make([]float64, 0, d)
	for i := 0; i+1 < len(doubled); i += 2 {
		vals = append(vals, (doubled[i]+doubled[i+1])/2)
	}
	return vals, nil
}

// Entropy returns the von Neumann entropy S(rho) = -Σ λ log2 λ in bits.
// It errors when rho is not square, not Hermitian, or its trace deviates
// from 1 beyond tolerance.
func Entropy(rho *mat.CDense) (float64, error) {
	r, c := rho.Dims()
	if r != c {
		return 0, fmt.Errorf("quantum: density matrix is %dx%d, want square", r, c)
	}
	tr := Trace(rho)
	if math.Abs(real(tr)-1) > 1e-6 || math.Abs(imag(tr)) > 1e-6 {
		return 0, fmt.Errorf("quantum: trace %v deviates from 1", tr)
	}

	vals, err := hermitianEigenvalues(rho)
	if err != nil {
		return 0, err
	}

	s := 0.0
	for _, v := range vals {
		if v <= 1e-12 {
			continue
		}
		s -= v * math.Log2(v)
	}
	return s, nil
}

// Purity returns Tr(rho²), 1 for pure states and 1/d for the maximally
// mixed state.
func Purity(rho *mat.CDense) float64 {
	r, c := rho.Dims()
	if r != c {
		panic("quantum: purity of non-square matrix")
	}
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			// Tr(rho²) = Σ_ij rho_ij rho_ji = Σ_ij |rho_ij|² for Hermitian rho.
			a := rho.At(i, j)
			sum += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return sum
}
