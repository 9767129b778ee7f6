package quantum

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestKron(t *testing.T) {
	// σx ⊗ σz has the ±σz blocks in the off-diagonal corners.
	got := Kron(PauliX(), PauliZ())
	want := mat.NewCDense(4, 4, []complex128{
		0, 0, 1, 0,
		0, 0, 0, -1,
		1, 0, 0, 0,
		0, -1, 0, 0,
	})
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if got.At(i, j) != want.At(i, j) {
				t.Errorf("Kron[%d][%d] = %v, want %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestKronDims(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	b := mat.NewCDense(4, 1, nil)
	r, c := Kron(a, b).Dims()
	if r != 8 || c != 3 {
		t.Errorf("Kron dims = %dx%d, want 8x3", r, c)
	}
}

func TestDensityTraceOne(t *testing.T) {
	// Unnormalised input: Density must normalise first.
	psi := Ket(3, 0, 0, 4)
	rho := Density(psi)
	tr := Trace(rho)
	if cmplx.Abs(tr-1) > 1e-12 {
		t.Errorf("Tr(rho) = %v, want 1", tr)
	}
	if math.Abs(real(rho.At(0, 0))-9.0/25) > 1e-12 {
		t.Errorf("rho[0][0] = %v, want 9/25", rho.At(0, 0))
	}
}

func TestPartialTraceProductState(t *testing.T) {
	// |0> ⊗ |+> : tracing out B must leave the pure |0><0|.
	plus := Ket(complex(1/sqrt2, 0), complex(1/sqrt2, 0))
	psi := Kron(Ket(1, 0), plus)
	rhoA, err := PartialTrace(Density(psi), 2, 2, SubsystemA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmplx.Abs(rhoA.At(0, 0)-1) > 1e-12 || cmplx.Abs(rhoA.At(1, 1)) > 1e-12 {
		t.Errorf("rhoA = [[%v, %v], [%v, %v]], want |0><0|",
			rhoA.At(0, 0), rhoA.At(0, 1), rhoA.At(1, 0), rhoA.At(1, 1))
	}

	// And the kept B side must be |+><+|.
	rhoB, err := PartialTrace(Density(psi), 2, 2, SubsystemB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmplx.Abs(rhoB.At(0, 1)-0.5) > 1e-12 {
		t.Errorf("rhoB[0][1] = %v, want 0.5", rhoB.At(0, 1))
	}
}

func TestPartialTraceBellState(t *testing.T) {
	rhoA, err := PartialTrace(Density(Bell()), 2, 2, SubsystemA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Maximally mixed: diag(1/2, 1/2).
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := complex128(0)
			if i == j {
				want = 0.5
			}
			if cmplx.Abs(rhoA.At(i, j)-want) > 1e-12 {
				t.Errorf("rhoA[%d][%d] = %v, want %v", i, j, rhoA.At(i, j), want)
			}
		}
	}
}

func TestPartialTraceHermitianTraceOne(t *testing.T) {
	// A generic entangled state with complex amplitudes.
	psi := Ket(complex(0.3, 0.1), complex(0, -0.4), complex(0.2, 0.6), complex(0.5, 0))
	for _, keep := range []Subsystem{SubsystemA, SubsystemB} {
		red, err := PartialTrace(Density(psi), 2, 2, keep)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmplx.Abs(Trace(red)-1) > 1e-12 {
			t.Errorf("keep %d: trace = %v, want 1", keep, Trace(red))
		}
		r, _ := red.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < r; j++ {
				if cmplx.Abs(red.At(i, j)-cmplx.Conj(red.At(j, i))) > 1e-12 {
					t.Errorf("keep %d: not Hermitian at (%d,%d)", keep, i, j)
				}
			}
		}
	}
}

func TestPartialTraceErrors(t *testing.T) {
	rho := Density(Bell())
	if _, err := PartialTrace(rho, 3, 2, SubsystemA); err == nil {
		t.Error("expected dimension mismatch error")
	}
	if _, err := PartialTrace(rho, 0, 4, SubsystemA); err == nil {
		t.Error("expected invalid dims error")
	}
	if _, err := PartialTrace(rho, 2, 2, Subsystem(9)); err == nil {
		t.Error("expected unknown subsystem error")
	}
}

func TestEntropyProductState(t *testing.T) {
	psi := Kron(Ket(1, 0), Ket(0, 1))
	rhoA, err := PartialTrace(Density(psi), 2, 2, SubsystemA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Entropy(rhoA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s) > 1e-9 {
		t.Errorf("product state entropy = %g, want 0", s)
	}
}

func TestEntropyBellState(t *testing.T) {
	rhoA, err := PartialTrace(Density(Bell()), 2, 2, SubsystemA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Entropy(rhoA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s-1) > 1e-9 {
		t.Errorf("Bell state entropy = %g, want 1 bit", s)
	}
}

func TestEntropyComplexOffDiagonal(t *testing.T) {
	// rho = 1/2 (I + 0.6 σy) has eigenvalues 0.8 and 0.2; the embedding path
	// must handle the purely imaginary off-diagonals.
	rho := mat.NewCDense(2, 2, []complex128{
		0.5, complex(0, -0.3),
		complex(0, 0.3), 0.5,
	})
	s, err := Entropy(rho)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := -0.8*math.Log2(0.8) - 0.2*math.Log2(0.2)
	if math.Abs(s-want) > 1e-9 {
		t.Errorf("entropy = %g, want %g", s, want)
	}
}

func TestEntropyErrors(t *testing.T) {
	bad := mat.NewCDense(2, 2, []complex128{1, 1, 0, 1})
	if _, err := Entropy(bad); err == nil {
		t.Error("expected error for non-Hermitian or wrong-trace matrix")
	}
	scaled := mat.NewCDense(2, 2, []complex128{2, 0, 0, 2})
	if _, err := Entropy(scaled); err == nil {
		t.Error("expected error for trace != 1")
	}
}

func TestPurity(t *testing.T) {
	pure := Density(Bell())
	if got := Purity(pure); math.Abs(got-1) > 1e-12 {
		t.Errorf("pure state purity = %g, want 1", got)
	}
	mixed, err := PartialTrace(pure, 2, 2, SubsystemA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Purity(mixed); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("maximally mixed purity = %g, want 0.5", got)
	}
}

func TestEvolvePreservesNorm(t *testing.T) {
	h := TwoQubit(1, 0.5)
	psi, err := Evolve(h, Ket(1, 0, 0, 0), 0.01, 500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(Norm(psi)-1) > 1e-9 {
		t.Errorf("norm = %g, want 1", Norm(psi))
	}
}

func TestEvolvePhaseOnly(t *testing.T) {
	// An eigenstate of σz⊗σz only picks up a phase: populations frozen.
	h := TwoQubit(1, 0)
	psi, err := Evolve(h, Ket(1, 0, 0, 0), 0.005, 1000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(cmplx.Abs(psi.At(0, 0))-1) > 1e-6 {
		t.Errorf("|psi[0]| = %g, want 1", cmplx.Abs(psi.At(0, 0)))
	}
}

func TestEvolveErrors(t *testing.T) {
	h := TwoQubit(1, 1)
	if _, err := Evolve(h, Ket(1, 0), 0.01, 10, nil); err == nil {
		t.Error("expected state dimension error")
	}
	if _, err := Evolve(h, Ket(1, 0, 0, 0), -1, 10, nil); err == nil {
		t.Error("expected dt error")
	}
}

func TestEntropyEvolution(t *testing.T) {
	// |00> under the transverse-field Hamiltonian entangles over time: the
	// entropy starts at 0 and must rise above it.
	h := TwoQubit(1, 0.7)
	series, err := EntropyEvolution(h, Ket(1, 0, 0, 0), 0.02, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 201 {
		t.Fatalf("got %d entries, want 201", len(series))
	}
	if math.Abs(series[0]) > 1e-9 {
		t.Errorf("initial entropy = %g, want 0", series[0])
	}
	max := 0.0
	for _, s := range series {
		if s < -1e-9 || s > 1+1e-9 {
			t.Errorf("entropy %g outside [0, 1]", s)
		}
		if s > max {
			max = s
		}
	}
	if max < 0.1 {
		t.Errorf("entropy never rose above %g; expected entanglement growth", max)
	}
}
