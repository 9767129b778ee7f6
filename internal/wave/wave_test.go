package wave

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPlaneUnitModulus(t *testing.T) {
	f := Plane(3, 2)
	for _, x := range []float64{-5, 0, 1.7, 42} {
		for _, tt := range []float64{0, 0.5, 10} {
			if got := cmplx.Abs(f(x, tt)); math.Abs(got-1) > 1e-12 {
				t.Errorf("|Plane(%g, %g)| = %g, want 1", x, tt, got)
			}
		}
	}
}

func TestPlanePhase(t *testing.T) {
	k, omega := 2.0, 5.0
	f := Plane(k, omega)
	x, tt := 1.3, 0.4
	want := cmplx.Exp(complex(0, k*x-omega*tt))
	if got := f(x, tt); cmplx.Abs(got-want) > 1e-12 {
		t.Errorf("Plane(%g, %g) = %v, want %v", x, tt, got, want)
	}
}

func TestStandingNodes(t *testing.T) {
	k := 2.0
	f := Standing(k, 1)
	// Nodes at x = (n + 1/2)π/k.
	for n := 0; n < 4; n++ {
		x := (float64(n) + 0.5) * math.Pi / k
		if got := cmplx.Abs(f(x, 0.3)); got > 1e-12 {
			t.Errorf("standing wave at node x=%g is %g, want 0", x, got)
		}
	}
	// Antinode at x = 0 has amplitude 2.
	if got := cmplx.Abs(f(0, 0)); math.Abs(got-2) > 1e-12 {
		t.Errorf("antinode amplitude = %g, want 2", got)
	}
}

func TestStandingEqualsCounterPropagatingSum(t *testing.T) {
	k, omega := 1.5, 2.5
	sum := Superpose(Plane(k, omega), Plane(-k, omega))
	standing := Standing(k, omega)
	for _, x := range []float64{0, 0.4, 1.1} {
		a := sum(x, 0.7)
		b := standing(x, 0.7)
		if cmplx.Abs(a-b) > 1e-12 {
			t.Errorf("at x=%g superposition %v != standing %v", x, a, b)
		}
	}
}

func TestDeepWaterGroupVelocity(t *testing.T) {
	d := DeepWater{G: 9.81}
	k := 2.0
	vp := PhaseVelocity(d, k)
	vg := GroupVelocity(d, k)
	if math.Abs(vg-vp/2) > 1e-4 {
		t.Errorf("deep water vg = %g, want vp/2 = %g", vg, vp/2)
	}
}

func TestNonDispersiveVelocities(t *testing.T) {
	d := NonDispersive{C: 3}
	if vp := PhaseVelocity(d, 1.7); math.Abs(vp-3) > 1e-9 {
		t.Errorf("vp = %g, want 3", vp)
	}
	if vg := GroupVelocity(d, 1.7); math.Abs(vg-3) > 1e-4 {
		t.Errorf("vg = %g, want 3", vg)
	}
}

func TestMassiveDispersionLimit(t *testing.T) {
	// For k >> M/c the massive relation approaches ω = ck.
	d := Massive{C: 1, M: 0.1}
	k := 100.0
	if got := d.Omega(k); math.Abs(got-k)/k > 1e-4 {
		t.Errorf("omega(%g) = %g, want ~%g", k, got, k)
	}
	// At k = 0 the frequency is the rest term M.
	if got := d.Omega(0); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("omega(0) = %g, want 0.1", got)
	}
}

func TestGaussianPacketEnvelopeMoves(t *testing.T) {
	d := NonDispersive{C: 2}
	f := GaussianPacket(5, 1, d)
	// At t = 1 the envelope peak should sit at x = vg·t = 2.
	peak := SampleAbs(f, []float64{2}, 1)[0]
	off := SampleAbs(f, []float64{6}, 1)[0]
	if math.Abs(peak-1) > 1e-9 {
		t.Errorf("envelope peak = %g, want 1", peak)
	}
	if off >= peak {
		t.Errorf("envelope at x=6 (%g) not below peak (%g)", off, peak)
	}
}

func TestSampleReal(t *testing.T) {
	f := Plane(1, 0)
	xs := []float64{0, math.Pi / 2, math.Pi}
	got := SampleReal(f, xs, 0)
	want := []float64{1, 0, -1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("SampleReal[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}
