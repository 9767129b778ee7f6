package ode

import "math"

// HarmonicOscillator returns the damped oscillator equation written in
// first-order form with state y = [x, v].
func HarmonicOscillator(omega, damping float64) System {
	return func(t float64, y, dy []float64) {
		dy[0] = y[1]
		dy[1] = -2*damping*omega*y[1] - omega*omega*y[0]
	}
}

// DrivenOscillator returns a damped oscillator with sinusoidal forcing
// amp·cos(drive·t) on the velocity equation.
func DrivenOscillator(omega, damping, amp, drive float64) System {
	return func(t float64, y, dy []float64) {
		dy[0] = y[1]
		dy[1] = -2*damping*omega*y[1] - omega*omega*y[0] + amp*math.Cos(drive*t)
	}
}

// Pendulum returns the full (not small-angle) pendulum equation
// with state y = [angle, angular velocity].
func Pendulum(g, l float64) System {
	return func(t float64, y, dy []float64) {
		dy[0] = y[1]
		dy[1] = -(g / l) * math.Sin(y[0])
	}
}

// Sample integrates sys from t0 to t1 with the given integrator, capturing
// the state at n evenly spaced times (inclusive of both endpoints). The
// returned times and states share indices; states[i] is a copy.
func Sample(ig Integrator, sys System, y0 []float64, t0, t1 float64, n int, cfg *Config) (times []float64, states [][]float64, err error) {
	if n < 2 {
		n = 2
	}
	y := make([]float64, len(y0))
	copy(y, y0)

	times = make([]float64, 0, n)
	states = make([][]float64, 0, n)

	snap := func(t float64) {
		s := make([]float64, len(y))
		copy(s, y)
		times = append(times, t)
		states = append(states, s)
	}

	snap(t0)
	dt := (t1 - t0) / float64(n-1)
	for i := 1; i < n; i++ {
		target := t0 + float64(i)*dt
		if _, err := ig.Integrate(times[len(times)-1], target, y, sys, cfg); err != nil {
			return times, states, err
		}
		snap(target)
	}
	return times, states, nil
}
