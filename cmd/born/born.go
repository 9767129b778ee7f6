// born computes Born-approximation scattering amplitudes for a chosen
// potential, comparing the analytic first Born term against its Monte Carlo
// estimate and the second Born correction.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/quantfold/scatter.report/internal/report"
	"github.com/quantfold/scatter.report/internal/scatter"
	"github.com/quantfold/scatter.report/internal/units"
)

var (
	potName  = flag.String("potential", "yukawa", "Potential: yukawa, gaussian, or well")
	v0       = flag.Float64("v0", 1.0, "Potential strength")
	scale    = flag.Float64("scale", 1.0, "Screening mu (yukawa), width sigma (gaussian), or radius (well)")
	k        = flag.Float64("k", 1.0, "Incident momentum magnitude")
	thetaDeg = flag.Float64("theta", 60, "Scattering angle in degrees")
	samples  = flag.Int("samples", 100000, "Monte Carlo sample count")
	seed     = flag.Uint64("seed", 1, "Monte Carlo seed")
	second   = flag.Bool("second", false, "Also estimate the second Born term")
	converge = flag.String("converge", "", "Comma-separated sample counts for a convergence table")
	energy   = flag.String("energy", "", "Report the incident electron energy in these units (J, eV, MeV); k is read as 1/angstrom")
	plotFile = flag.String("plot", "", "Write a differential cross section plot to this PNG file")
)

func parseCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid sample count %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func buildPotential() (scatter.Potential, error) {
	switch *potName {
	case "yukawa":
		return scatter.Yukawa{V0: *v0, Mu: *scale}, nil
	case "gaussian":
		return scatter.Gaussian{V0: *v0, Sigma: *scale}, nil
	case "well":
		return scatter.SquareWell{V0: *v0, R0: *scale}, nil
	}
	return nil, fmt.Errorf("unknown potential %q", *potName)
}

func main() {
	flag.Parse()

	pot, err := buildPotential()
	if err != nil {
		log.Fatal(err)
	}

	theta := *thetaDeg * math.Pi / 180
	kIn := scatter.KVec(*k, 0)
	kOut := scatter.KVec(*k, theta)

	analytic, err := scatter.BornAmplitude(pot, kIn, kOut)
	if err != nil {
		log.Fatalf("amplitude: %v", err)
	}
	fmt.Printf("potential=%s k=%g theta=%.1fdeg\n", pot.Name(), *k, *thetaDeg)
	if *energy != "" {
		if !units.IsValidEnergy(*energy) {
			log.Fatalf("invalid energy unit %q (valid: %v)", *energy, units.ValidEnergyUnits)
		}
		kSI := *k / units.Angstrom
		joules := units.HBar * units.HBar * kSI * kSI / (2 * units.ElectronMass)
		fmt.Printf("incident energy   = %.6g %s\n", units.ConvertEnergy(joules, *energy), *energy)
	}
	fmt.Printf("f1 (analytic)     = %.6f%+.6fi\n", real(analytic), imag(analytic))
	fmt.Printf("dsigma/dOmega     = %.6f\n", scatter.CrossSection(analytic))

	src := rand.NewSource(*seed)
	mc, err := scatter.FirstBornMC(pot, kIn, kOut, *samples, src)
	if err != nil {
		log.Fatalf("monte carlo: %v", err)
	}
	fmt.Printf("f1 (MC, n=%d) = %.6f%+.6fi  (stderr %.2g)\n",
		mc.Samples, real(mc.Estimate), imag(mc.Estimate), mc.StdErr)

	if *converge != "" {
		counts, err := parseCounts(*converge)
		if err != nil {
			log.Fatal(err)
		}
		results, err := scatter.Converge(pot, kIn, kOut, counts, src)
		if err != nil {
			log.Fatalf("convergence: %v", err)
		}
		fmt.Println("      n      estimate        error       stderr")
		for _, r := range results {
			diff := math.Hypot(real(r.Estimate)-real(analytic), imag(r.Estimate)-imag(analytic))
			fmt.Printf("%8d  %12.6f  %11.3g  %11.3g\n", r.Samples, real(r.Estimate), diff, r.StdErr)
		}
	}

	if *second {
		f2, err := scatter.SecondBornMC(pot, kIn, kOut, *samples, src)
		if err != nil {
			log.Fatalf("second born: %v", err)
		}
		fmt.Printf("f2 (MC, n=%d) = %.6f%+.6fi  (stderr %.2g)\n",
			f2.Samples, real(f2.Estimate), imag(f2.Estimate), f2.StdErr)
		total := analytic + f2.Estimate
		fmt.Printf("f1+f2             = %.6f%+.6fi\n", real(total), imag(total))
	}

	if *plotFile != "" {
		const n = 200
		thetas := make([]float64, n)
		sigmas := make([]float64, n)
		for i := 0; i < n; i++ {
			th := math.Pi * float64(i) / float64(n-1)
			f, ferr := scatter.BornAmplitude(pot, kIn, scatter.KVec(*k, th))
			if ferr != nil {
				log.Fatalf("amplitude at theta=%g: %v", th, ferr)
			}
			thetas[i] = th
			sigmas[i] = scatter.CrossSection(f)
		}
		s, err := report.NewSeries(pot.Name(), thetas, sigmas)
		if err != nil {
			log.Fatal(err)
		}
		if err := report.LinePlot("Differential cross section", "theta (rad)", "dsigma/dOmega", *plotFile, s); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("wrote %s\n", filepath.Clean(*plotFile))
	}
}
