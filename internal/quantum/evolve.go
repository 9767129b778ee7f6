package quantum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Evolve integrates the Schrödinger equation i ψ' = H ψ (hbar = 1) with
// classical RK4, renormalising after every step to hold the norm against
// integrator drift. each, when non-nil, is called after every step with the
// step index (1-based) and the current state; the callback must not retain
// the state without copying.
func Evolve(h, psi0 *mat.CDense, dt float64, steps int, each func(step int, psi *mat.CDense)) (*mat.CDense, error) {
	hr, hc := h.Dims()
	pr, pc := psi0.Dims()
	if hr != hc {
		return nil, fmt.Errorf("quantum: Hamiltonian is %dx%d, want square", hr, hc)
	}
	if pc != 1 || pr != hr {
		return nil, fmt.Errorf("quantum: state is %dx%d, want %dx1", pr, pc, hr)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("quantum: dt must be positive, got %g", dt)
	}
	if steps < 0 {
		return nil, fmt.Errorf("quantum: negative step count %d", steps)
	}

	// rhs(psi) = -i H psi
	rhs := func(psi *mat.CDense) *mat.CDense {
		out := MulVec(h, psi)
		for i := 0; i < pr; i++ {
			out.Set(i, 0, complex(0, -1)*out.At(i, 0))
		}
		return out
	}

	psi := cloneVec(psi0)
	Normalize(psi)

	hc128 := complex(dt, 0)
	for s := 1; s <= steps; s++ {
		k1 := rhs(psi)
		k2 := rhs(addScaled(psi, k1, hc128/2))
		k3 := rhs(addScaled(psi, k2, hc128/2))
		k4 := rhs(addScaled(psi, k3, hc128))

		for i := 0; i < pr; i++ {
			inc := hc128 / 6 * (k1.At(i, 0) + 2*k2.At(i, 0) + 2*k3.At(i, 0) + k4.At(i, 0))
			psi.Set(i, 0, psi.At(i, 0)+inc)
		}
		Normalize(psi)

		if each != nil {
			each(s, psi)
		}
	}
	return psi, nil
}

// EntropyEvolution evolves a two-qubit state under h and returns the
// entanglement entropy of the first qubit at every step, including the
// initial state: the result has steps+1 entries.
func EntropyEvolution(h, psi0 *mat.CDense, dt float64, steps int) ([]float64, error) {
	pr, pc := psi0.Dims()
	if pr != 4 || pc != 1 {
		return nil, fmt.Errorf("quantum: state is %dx%d, want 4x1 (two qubits)", pr, pc)
	}

	out := make([]float64, 0, steps+1)
	record := func(psi *mat.CDense) error {
		rhoA, err := PartialTrace(Density(psi), 2, 2, SubsystemA)
		if err != nil {
			return err
		}
		s, err := Entropy(rhoA)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	}

	if err := record(psi0); err != nil {
		return nil, err
	}

	var cbErr error
	_, err := Evolve(h, psi0, dt, steps, func(step int, psi *mat.CDense) {
		if cbErr != nil {
			return
		}
		cbErr = record(psi)
	})
	if err != nil {
		return nil, err
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return out, nil
}
