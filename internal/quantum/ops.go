// Package quantum provides the tensor-product and entanglement routines for
// the two-qubit demos: Kronecker products, density matrices, partial traces,
// von Neumann entropy and Schrödinger evolution.
//
// States are column vectors and operators are square matrices, both held as
// *mat.CDense.
package quantum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pauli returns the requested Pauli operator as a fresh 2x2 matrix.
func PauliI() *mat.CDense { return mat.NewCDense(2, 2, []complex128{1, 0, 0, 1}) }
func PauliX() *mat.CDense { return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0}) }
func PauliY() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, complex(0, -1), complex(0, 1), 0})
}
func PauliZ() *mat.CDense { return mat.NewCDense(2, 2, []complex128{1, 0, 0, -1}) }

// Ket builds a normalised column vector from amplitudes.
func Ket(amps ...complex128) *mat.CDense {
	v := mat.NewCDense(len(amps), 1, nil)
	for i, a := range amps {
		v.Set(i, 0, a)
	}
	return v
}

// Bell returns the maximally entangled state (|00> + |11>) / sqrt 2.
func Bell() *mat.CDense {
	s := complex(1/sqrt2, 0)
	return Ket(s, 0, 0, s)
}

const sqrt2 = 1.4142135623730951

// Kron returns the Kronecker (tensor) product a ⊗ b.
func Kron(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	out := mat.NewCDense(ra*rb, ca*cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			av := a.At(i, j)
			if av == 0 {
				continue
			}
			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					out.Set(i*rb+k, j*cb+l, av*b.At(k, l))
				}
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v for a column vector v.
func MulVec(m, v *mat.CDense) *mat.CDense {
	r, c := m.Dims()
	vr, vc := v.Dims()
	if vc != 1 || vr != c {
		panic(fmt.Sprintf("quantum: cannot multiply %dx%d by %dx%d", r, c, vr, vc))
	}
	out := mat.NewCDense(r, 1, nil)
	for i := 0; i < r; i++ {
		var sum complex128
		for j := 0; j < c; j++ {
			sum += m.At(i, j) * v.At(j, 0)
		}
		out.Set(i, 0, sum)
	}
	return out
}

// cloneVec copies a column vector.
func cloneVec(v *mat.CDense) *mat.CDense {
	r, c := v.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, v.At(i, j))
		}
	}
	return out
}

// addScaled returns a + s·b.
func addScaled(a, b *mat.CDense, s complex128) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, a.At(i, j)+s*b.At(i, j))
		}
	}
	return out
}

// TwoQubit builds the two-qubit transverse-field Hamiltonian
//
//	H = -J σz⊗σz - h (σx⊗I + I⊗σx).
//
// With J > 0 and h > 0 its ground state is entangled, which makes it the
// standard workhorse for the entropy-evolution exercise.
func TwoQubit(j, h float64) *mat.CDense {
	zz := Kron(PauliZ(), PauliZ())
	xi := Kron(PauliX(), PauliI())
	ix := Kron(PauliI(), PauliX())

	out := mat.NewCDense(4, 4, nil)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Set(r, c, complex(-j, 0)*zz.At(r, c)+complex(-h, 0)*(xi.At(r, c)+ix.At(r, c)))
		}
	}
	return out
}
