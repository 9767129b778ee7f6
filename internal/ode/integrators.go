package ode

import "math"

// Euler is the forward Euler method. First order, one stage. Useful as the
// baseline the course compares better methods against.
type Euler struct{}

func (Euler) Info() Info { return Info{Name: "euler", Stages: 1, Order: 1} }

func (Euler) Integrate(t, tEnd float64, y []float64, sys System, cfg *Config) (Stats, error) {
	if err := validateSpan(t, tEnd, y); err != nil {
		return Stats{CurrentTime: t}, err
	}
	c := cfg.withDefaults(tEnd - t)

	n := len(y)
	dy := make([]float64, n)
	stats := Stats{CurrentTime: t}

	for stats.CurrentTime < tEnd {
		h := c.InitialStep
		if rem := tEnd - stats.CurrentTime; rem < h {
			h = rem
		}
		sys(stats.CurrentTime, y, dy)
		stats.Evals++
		for i := range y {
			y[i] += h * dy[i]
		}
		stats.Steps++
		stats.LastStep = h
		stats.CurrentTime += h

		if c.MaxSteps > 0 && stats.Steps > c.MaxSteps {
			return stats, ErrMaxSteps
		}
	}
	return stats, nil
}

// RK4 is the classical fourth-order Runge-Kutta method with a fixed step.
type RK4 struct{}

func (RK4) Info() Info { return Info{Name: "rk4", Stages: 4, Order: 4} }

func (RK4) Integrate(t, tEnd float64, y []float64, sys System, cfg *Config) (Stats, error) {
	if err := validateSpan(t, tEnd, y); err != nil {
		return Stats{CurrentTime: t}, err
	}
	c := cfg.withDefaults(tEnd - t)

	n := len(y)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)
	stats := Stats{CurrentTime: t}

	for stats.CurrentTime < tEnd {
		h := c.InitialStep
		if rem := tEnd - stats.CurrentTime; rem < h {
			h = rem
		}
		rk4Step(stats.CurrentTime, h, y, sys, k1, k2, k3, k4, tmp)
		stats.Evals += 4
		stats.Steps++
		stats.LastStep = h
		stats.CurrentTime += h

		if c.MaxSteps > 0 && stats.Steps > c.MaxSteps {
			return stats, ErrMaxSteps
		}
	}
	return stats, nil
}

// rk4Step advances y in place by one classical RK4 step of size h.
func rk4Step(t, h float64, y []float64, sys System, k1, k2, k3, k4, tmp []float64) {
	sys(t, y, k1)
	for i := range y {
		tmp[i] = y[i] + 0.5*h*k1[i]
	}
	sys(t+0.5*h, tmp, k2)
	for i := range y {
		tmp[i] = y[i] + 0.5*h*k2[i]
	}
	sys(t+0.5*h, tmp, k3)
	for i := range y {
		tmp[i] = y[i] + h*k3[i]
	}
	sys(t+h, tmp, k4)
	for i := range y {
		y[i] += h / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
}

// RK45 is the Dormand-Prince embedded 5(4) pair with adaptive step control.
type RK45 struct{}

func (RK45) Info() Info { return Info{Name: "rk45", Stages: 7, Order: 5} }

// Dormand-Prince tableau.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	// 5th order solution weights (same as the last A row).
	dpB = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	// 4th order embedded weights.
	dpBHat = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

func (RK45) Integrate(t, tEnd float64, y []float64, sys System, cfg *Config) (Stats, error) {
	if err := validateSpan(t, tEnd, y); err != nil {
		return Stats{CurrentTime: t}, err
	}
	c := cfg.withDefaults(tEnd - t)

	n := len(y)
	k := make([][]float64, 7)
	for i := range k {
		k[i] = make([]float64, n)
	}
	tmp := make([]float64, n)
	yNew := make([]float64, n)
	stats := Stats{CurrentTime: t}

	h := c.InitialStep
	for stats.CurrentTime < tEnd {
		if rem := tEnd - stats.CurrentTime; rem < h {
			h = rem
		}

		for s := 0; s < 7; s++ {
			for i := range tmp {
				tmp[i] = y[i]
				for j := 0; j < s; j++ {
					tmp[i] += h * dpA[s][j] * k[j][i]
				}
			}
			sys(stats.CurrentTime+dpC[s]*h, tmp, k[s])
		}
		stats.Evals += 7

		// 5th order solution and embedded error estimate.
		errNorm := 0.0
		for i := range y {
			y5 := y[i]
			e := 0.0
			for s := 0; s < 7; s++ {
				y5 += h * dpB[s] * k[s][i]
				e += h * (dpB[s] - dpBHat[s]) * k[s][i]
			}
			yNew[i] = y5
			scale := c.AbsTol + c.RelTol*math.Max(math.Abs(y[i]), math.Abs(y5))
			errNorm += (e / scale) * (e / scale)
		}
		errNorm = math.Sqrt(errNorm / float64(n))

		if errNorm <= 1 {
			copy(y, yNew)
			stats.Steps++
			stats.LastStep = h
			stats.CurrentTime += h
		} else {
			stats.Rejected++
		}

		// Standard step controller with safety factor and growth clamps.
		factor := 0.9 * math.Pow(errNorm, -1.0/5)
		if factor > 5 {
			factor = 5
		} else if factor < 0.2 {
			factor = 0.2
		}
		h *= factor
		if c.MaxStep > 0 && h > c.MaxStep {
			h = c.MaxStep
		}
		if c.MinStep > 0 && h < c.MinStep && stats.CurrentTime < tEnd {
			return stats, ErrMinStep
		}

		if c.MaxSteps > 0 && stats.Steps+stats.Rejected > c.MaxSteps {
			return stats, ErrMaxSteps
		}
	}
	return stats, nil
}
