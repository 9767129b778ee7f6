// wavelab samples complex wave solutions under a chosen dispersion relation
// and runs the 1D heat and wave finite-difference solvers, plotting field
// profiles over time.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/quantfold/scatter.report/internal/pde"
	"github.com/quantfold/scatter.report/internal/report"
	"github.com/quantfold/scatter.report/internal/wave"
)

var (
	mode     = flag.String("mode", "packet", "Mode: packet, standing, heat, or wave")
	k0       = flag.Float64("k", 5.0, "Wavenumber (packet and standing modes)")
	sigma    = flag.Float64("sigma", 1.0, "Packet width")
	dispName = flag.String("dispersion", "linear", "Dispersion: linear, deep-water, or massive")
	c        = flag.Float64("c", 1.0, "Wave speed")
	mass     = flag.Float64("mass", 1.0, "Mass parameter (massive dispersion)")
	alpha    = flag.Float64("alpha", 0.1, "Thermal diffusivity (heat mode)")
	n        = flag.Int("n", 201, "Grid points")
	batches  = flag.Int("batches", 5, "Snapshot count")
	steps    = flag.Int("steps", 200, "Steps between snapshots")
	plotFile = flag.String("plot", "", "Write a profile PNG plot to this file")
)

func pickDispersion() (wave.Dispersion, error) {
	switch *dispName {
	case "linear":
		return wave.NonDispersive{C: *c}, nil
	case "deep-water":
		return wave.DeepWater{G: 9.81}, nil
	case "massive":
		return wave.Massive{C: *c, M: *mass}, nil
	}
	return nil, fmt.Errorf("unknown dispersion %q", *dispName)
}

func sampleTimes(sol wave.Solution, xs []float64, times []float64) [][]float64 {
	snaps := make([][]float64, len(times))
	for i, t := range times {
		snaps[i] = wave.SampleReal(sol, xs, t)
	}
	return snaps
}

func linspace(x0, x1 float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (x1 - x0) / float64(n-1)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}

func runAnalytic() ([]float64, [][]float64, error) {
	disp, err := pickDispersion()
	if err != nil {
		return nil, nil, err
	}

	var sol wave.Solution
	switch *mode {
	case "packet":
		sol = wave.GaussianPacket(*k0, *sigma, disp)
	case "standing":
		sol = wave.Standing(*k0, disp.Omega(*k0))
	default:
		return nil, nil, fmt.Errorf("unknown mode %q", *mode)
	}

	fmt.Printf("dispersion=%s vp=%.4f vg=%.4f\n",
		disp.Name(), wave.PhaseVelocity(disp, *k0), wave.GroupVelocity(disp, *k0))

	xs := linspace(-10, 10, *n)
	times := linspace(0, 2, *batches)
	return xs, sampleTimes(sol, xs, times), nil
}

func runHeat() ([]float64, [][]float64, error) {
	g, err := pde.NewGrid1D(0, 1, *n, func(x float64) float64 {
		return math.Sin(math.Pi * x)
	})
	if err != nil {
		return nil, nil, err
	}

	dt := 0.4 * g.Dx * g.Dx / *alpha
	snaps, err := pde.Evolve(g, *batches, *steps, func(steps int) error {
		return pde.HeatFTCS(g, *alpha, dt, steps)
	})
	if err != nil {
		return nil, nil, err
	}
	fmt.Printf("heat: dt=%.3g final max=%.6f\n", dt, g.MaxNorm())
	return g.X, snaps, nil
}

func runWaveEq() ([]float64, [][]float64, error) {
	g, err := pde.NewGrid1D(0, 1, *n, func(x float64) float64 {
		return math.Sin(math.Pi * x)
	})
	if err != nil {
		return nil, nil, err
	}

	// Courant number 0.9, starting from rest.
	dt := 0.9 * g.Dx / *c
	prev := g.Snapshot()
	snaps, err := pde.Evolve(g, *batches, *steps, func(steps int) error {
		return pde.WaveLeapfrog(g, prev, *c, dt, steps)
	})
	if err != nil {
		return nil, nil, err
	}
	fmt.Printf("wave: dt=%.3g final max=%.6f\n", dt, g.MaxNorm())
	return g.X, snaps, nil
}

func main() {
	flag.Parse()

	var (
		xs    []float64
		snaps [][]float64
		err   error
	)
	switch *mode {
	case "heat":
		xs, snaps, err = runHeat()
	case "wave":
		xs, snaps, err = runWaveEq()
	default:
		xs, snaps, err = runAnalytic()
	}
	if err != nil {
		log.Fatal(err)
	}

	for i, snap := range snaps {
		maxAbs := 0.0
		for _, v := range snap {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		fmt.Printf("snapshot %d: max|u|=%.6f\n", i, maxAbs)
	}

	if *plotFile != "" {
		if err := report.ProfilePlot(xs, snaps, *plotFile); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotFile)
	}
}
