// odelab integrates textbook dynamical systems with a selectable stepper and
// plots the resulting trajectories.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/quantfold/scatter.report/internal/ode"
	"github.com/quantfold/scatter.report/internal/report"
)

var (
	sysName  = flag.String("system", "oscillator", "System: oscillator, driven, or pendulum")
	igName   = flag.String("integrator", "rk45", "Integrator: euler, rk4, or rk45")
	omega    = flag.Float64("omega", 6.2832, "Oscillator angular frequency")
	damping  = flag.Float64("damping", 0.1, "Damping coefficient")
	amp      = flag.Float64("amp", 0.5, "Driving amplitude (driven system)")
	drive    = flag.Float64("drive", 4.0, "Driving frequency (driven system)")
	tEnd     = flag.Float64("t", 5.0, "Integration end time")
	points   = flag.Int("points", 400, "Number of output points")
	y0Str    = flag.String("y0", "1,0", "Initial state, comma separated")
	plotFile = flag.String("plot", "", "Write a trajectory PNG plot to this file")
)

func pickSystem() (ode.System, error) {
	switch *sysName {
	case "oscillator":
		return ode.HarmonicOscillator(*omega, *damping), nil
	case "driven":
		return ode.DrivenOscillator(*omega, *damping, *amp, *drive), nil
	case "pendulum":
		return ode.Pendulum(9.81, 1.0), nil
	}
	return nil, fmt.Errorf("unknown system %q", *sysName)
}

func pickIntegrator() (ode.Integrator, error) {
	switch *igName {
	case "euler":
		return ode.Euler{}, nil
	case "rk4":
		return ode.RK4{}, nil
	case "rk45":
		return ode.RK45{}, nil
	}
	return nil, fmt.Errorf("unknown integrator %q", *igName)
}

func parseState(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		var v float64
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%g", &v); err != nil {
			return nil, fmt.Errorf("invalid state component %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func main() {
	flag.Parse()

	sys, err := pickSystem()
	if err != nil {
		log.Fatal(err)
	}
	ig, err := pickIntegrator()
	if err != nil {
		log.Fatal(err)
	}
	y0, err := parseState(*y0Str)
	if err != nil {
		log.Fatal(err)
	}

	times, states, err := ode.Sample(ig, sys, y0, 0, *tEnd, *points, nil)
	if err != nil {
		log.Fatalf("integration: %v", err)
	}

	info := ig.Info()
	final := states[len(states)-1]
	fmt.Printf("system=%s integrator=%s (order %d)\n", *sysName, info.Name, info.Order)
	fmt.Printf("t=%.4f state=%v\n", times[len(times)-1], final)

	if *plotFile != "" {
		if err := report.TrajectoryPlot(times, states, []string{"x", "v"}, *plotFile); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotFile)
	}
}
