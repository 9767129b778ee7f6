package main

import (
	"fmt"
	"math"
	"path/filepath"

	"golang.org/x/exp/rand"

	"github.com/quantfold/scatter.report/internal/config"
	"github.com/quantfold/scatter.report/internal/db"
	"github.com/quantfold/scatter.report/internal/monitoring"
	"github.com/quantfold/scatter.report/internal/ode"
	"github.com/quantfold/scatter.report/internal/quantum"
	"github.com/quantfold/scatter.report/internal/report"
	"github.com/quantfold/scatter.report/internal/scatter"
)

// demoKinds lists the demos the server and CLIs can run. Each produces a
// recorded run with a summary, a sampled series, and a PNG under the plot
// directory.
var demoKinds = []string{"born", "converge", "entangle", "oscillator"}

// DemoOutcome reports what a demo run produced.
type DemoOutcome struct {
	RunID    string                 `json:"run_id"`
	Kind     string                 `json:"kind"`
	PlotFile string                 `json:"plot_file,omitempty"`
	Summary  map[string]interface{} `json:"summary"`
}

// runDemo dispatches a named demo against the store with the given config.
func runDemo(kind string, store *db.DB, cfg *config.DemoConfig) (*DemoOutcome, error) {
	switch kind {
	case "born":
		return runBornDemo(store, cfg)
	case "converge":
		return runConvergeDemo(store, cfg)
	case "entangle":
		return runEntangleDemo(store, cfg)
	case "oscillator":
		return runOscillatorDemo(store, cfg)
	}
	return nil, fmt.Errorf("unknown demo kind %q (have %v)", kind, demoKinds)
}

func demoPotential(cfg *config.DemoConfig) scatter.Yukawa {
	return scatter.Yukawa{V0: cfg.GetPotentialV0(), Mu: cfg.GetPotentialMu()}
}

// runBornDemo compares the analytic first Born amplitude for a Yukawa
// potential against its Monte Carlo estimate and the second Born correction
// at a 60 degree scattering angle.
func runBornDemo(store *db.DB, cfg *config.DemoConfig) (*DemoOutcome, error) {
	pot := demoPotential(cfg)
	kIn := scatter.KVec(1, 0)
	kOut := scatter.KVec(1, math.Pi/3)

	analytic, err := scatter.BornAmplitude(pot, kIn, kOut)
	if err != nil {
		return nil, err
	}

	src := rand.NewSource(cfg.GetMCSeed())
	mc, err := scatter.FirstBornMC(pot, kIn, kOut, cfg.GetMCSamples(), src)
	if err != nil {
		return nil, err
	}
	second, err := scatter.SecondBornMC(pot, kIn, kOut, cfg.GetMCSamples(), src)
	if err != nil {
		return nil, err
	}

	summary := map[string]interface{}{
		"analytic_re":   real(analytic),
		"mc_re":         real(mc.Estimate),
		"mc_im":         imag(mc.Estimate),
		"mc_stderr":     mc.StdErr,
		"second_re":     real(second.Estimate),
		"second_im":     imag(second.Estimate),
		"second_stderr": second.StdErr,
		"cross_section": scatter.CrossSection(analytic),
		"samples":       mc.Samples,
	}
	params := map[string]interface{}{
		"potential": pot.Name(),
		"v0":        pot.V0,
		"mu":        pot.Mu,
		"seed":      cfg.GetMCSeed(),
	}

	id, err := store.RecordRun("born", params, summary)
	if err != nil {
		return nil, err
	}

	// Differential cross section over the full angular range.
	n := cfg.GetPlotPoints()
	thetas := make([]float64, n)
	sigmas := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := math.Pi * float64(i) / float64(n-1)
		f, ferr := scatter.BornAmplitude(pot, kIn, scatter.KVec(1, theta))
		if ferr != nil {
			return nil, ferr
		}
		thetas[i] = theta
		sigmas[i] = scatter.CrossSection(f)
	}
	if err := store.RecordSamples(id, thetas, sigmas); err != nil {
		return nil, err
	}

	file := filepath.Join(report.MakeOutputDir(cfg.GetPlotDir(), "born"), "cross_section.png")
	s, err := report.NewSeries("dsigma/dOmega", thetas, sigmas)
	if err != nil {
		return nil, err
	}
	if err := report.LinePlot("Yukawa differential cross section", "theta (rad)", "dsigma/dOmega", file, s); err != nil {
		return nil, err
	}

	return &DemoOutcome{RunID: id, Kind: "born", PlotFile: file, Summary: summary}, nil
}

// runConvergeDemo runs the first Born Monte Carlo at increasing sample counts
// and records the error against the analytic amplitude.
func runConvergeDemo(store *db.DB, cfg *config.DemoConfig) (*DemoOutcome, error) {
	pot := demoPotential(cfg)
	kIn := scatter.KVec(1, 0)
	kOut := scatter.KVec(1, math.Pi/3)

	analytic, err := scatter.BornAmplitude(pot, kIn, kOut)
	if err != nil {
		return nil, err
	}

	src := rand.NewSource(cfg.GetMCSeed())
	counts := cfg.GetMCConverge()
	if len(counts) == 0 {
		return nil, fmt.Errorf("mc_converge has no sample counts")
	}
	results := make([]scatter.MCResult, 0, len(counts))
	ns := make([]float64, 0, len(counts))
	errs := make([]float64, 0, len(counts))
	for i, n := range counts {
		r, err := scatter.FirstBornMC(pot, kIn, kOut, n, src)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		ns = append(ns, float64(r.Samples))
		errs = append(errs, math.Hypot(real(r.Estimate)-real(analytic), imag(r.Estimate)-imag(analytic)))
		monitoring.Progress("converge", i+1, len(counts))
	}

	last := results[len(results)-1]
	summary := map[string]interface{}{
		"analytic_re":  real(analytic),
		"final_re":     real(last.Estimate),
		"final_stderr": last.StdErr,
		"runs":         len(results),
	}
	params := map[string]interface{}{
		"potential": pot.Name(),
		"counts":    cfg.GetMCConverge(),
		"seed":      cfg.GetMCSeed(),
	}

	id, err := store.RecordRun("converge", params, summary)
	if err != nil {
		return nil, err
	}
	if err := store.RecordSamples(id, ns, errs); err != nil {
		return nil, err
	}

	file := filepath.Join(report.MakeOutputDir(cfg.GetPlotDir(), "converge"), "convergence.png")
	if err := report.ConvergencePlot(results, analytic, file); err != nil {
		return nil, err
	}

	return &DemoOutcome{RunID: id, Kind: "converge", PlotFile: file, Summary: summary}, nil
}

// runEntangleDemo evolves a product state under the transverse-field Ising
// Hamiltonian for two qubits and records the entanglement entropy growth.
func runEntangleDemo(store *db.DB, cfg *config.DemoConfig) (*DemoOutcome, error) {
	h := quantum.TwoQubit(cfg.GetCouplingJ(), cfg.GetFieldH())
	psi0 := quantum.Kron(quantum.Ket(1, 0), quantum.Ket(1, 0))

	dt := cfg.GetEvolveDt()
	steps := cfg.GetEvolveSteps()
	entropies, err := quantum.EntropyEvolution(h, psi0, dt, steps)
	if err != nil {
		return nil, err
	}

	times := make([]float64, len(entropies))
	maxS := 0.0
	for i := range times {
		times[i] = float64(i) * dt
		if entropies[i] > maxS {
			maxS = entropies[i]
		}
	}

	summary := map[string]interface{}{
		"max_entropy":   maxS,
		"final_entropy": entropies[len(entropies)-1],
		"steps":         steps,
		"dt":            dt,
	}
	params := map[string]interface{}{
		"coupling_j": cfg.GetCouplingJ(),
		"field_h":    cfg.GetFieldH(),
	}

	id, err := store.RecordRun("entangle", params, summary)
	if err != nil {
		return nil, err
	}
	if err := store.RecordSamples(id, times, entropies); err != nil {
		return nil, err
	}

	file := filepath.Join(report.MakeOutputDir(cfg.GetPlotDir(), "entangle"), "entropy.png")
	if err := report.EntropyPlot(times, entropies, file); err != nil {
		return nil, err
	}

	return &DemoOutcome{RunID: id, Kind: "entangle", PlotFile: file, Summary: summary}, nil
}

// runOscillatorDemo integrates a damped harmonic oscillator with the adaptive
// RK45 stepper and records the position trace.
func runOscillatorDemo(store *db.DB, cfg *config.DemoConfig) (*DemoOutcome, error) {
	sys := ode.HarmonicOscillator(2*math.Pi, 0.1)
	n := cfg.GetPlotPoints()

	times, states, err := ode.Sample(ode.RK45{}, sys, []float64{1, 0}, 0, 5, n, nil)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(states))
	for i := range states {
		xs[i] = states[i][0]
	}

	summary := map[string]interface{}{
		"points":   len(times),
		"final_x":  xs[len(xs)-1],
		"stepper":  ode.RK45{}.Info().Name,
		"duration": 5.0,
	}

	id, err := store.RecordRun("oscillator", nil, summary)
	if err != nil {
		return nil, err
	}
	if err := store.RecordSamples(id, times, xs); err != nil {
		return nil, err
	}

	file := filepath.Join(report.MakeOutputDir(cfg.GetPlotDir(), "oscillator"), "trajectory.png")
	if err := report.TrajectoryPlot(times, states, []string{"x", "v"}, file); err != nil {
		return nil, err
	}

	return &DemoOutcome{RunID: id, Kind: "oscillator", PlotFile: file, Summary: summary}, nil
}
