// Package pde provides explicit finite-difference solvers for the 1D heat
// and wave equations on uniform grids with Dirichlet boundaries.
package pde

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid1D is a uniform 1D grid with field values at each point.
type Grid1D struct {
	X      []float64 // grid coordinates, uniformly spaced
	Values []float64 // field values, len(Values) == len(X)
	Dx     float64
}

// NewGrid1D builds a grid of n points spanning [x0, x1] with values from
// init(x). n must be at least 3.
func NewGrid1D(x0, x1 float64, n int, init func(x float64) float64) (*Grid1D, error) {
	if n < 3 {
		return nil, fmt.Errorf("pde: grid needs at least 3 points, got %d", n)
	}
	if x1 <= x0 {
		return nil, fmt.Errorf("pde: invalid span [%g, %g]", x0, x1)
	}
	g := &Grid1D{
		X:      make([]float64, n),
		Values: make([]float64, n),
		Dx:     (x1 - x0) / float64(n-1),
	}
	for i := range g.X {
		g.X[i] = x0 + float64(i)*g.Dx
		if init != nil {
			g.Values[i] = init(g.X[i])
		}
	}
	return g, nil
}

// MaxNorm returns the max-norm of the field values.
func (g *Grid1D) MaxNorm() float64 {
	m := 0.0
	for _, v := range g.Values {
		if v > m {
			m = v
		} else if -v > m {
			m = -v
		}
	}
	return m
}

// Norm2 returns the Euclidean norm of the field values.
func (g *Grid1D) Norm2() float64 {
	return floats.Norm(g.Values, 2)
}

// Snapshot returns a copy of the current field values.
func (g *Grid1D) Snapshot() []float64 {
	out := make([]float64, len(g.Values))
	copy(out, g.Values)
	return out
}

// HeatFTCS advances the heat equation u_t = α u_xx by the given number of
// forward-time centered-space steps. The endpoints are held fixed
// (Dirichlet). The step is rejected up front when it violates the explicit
// stability bound dt <= dx²/(2α).
func HeatFTCS(g *Grid1D, alpha, dt float64, steps int) error {
	if alpha <= 0 || dt <= 0 {
		return fmt.Errorf("pde: alpha and dt must be positive")
	}
	limit := g.Dx * g.Dx / (2 * alpha)
	if dt > limit {
		return fmt.Errorf("pde: dt %g exceeds FTCS stability bound %g", dt, limit)
	}

	n := len(g.Values)
	r := alpha * dt / (g.Dx * g.Dx)
	next := make([]float64, n)
	next[0] = g.Values[0]
	next[n-1] = g.Values[n-1]

	for s := 0; s < steps; s++ {
		u := g.Values
		for i := 1; i < n-1; i++ {
			next[i] = u[i] + r*(u[i+1]-2*u[i]+u[i-1])
		}
		copy(g.Values[1:n-1], next[1:n-1])
	}
	return nil
}

// WaveLeapfrog advances the wave equation u_tt = c² u_xx using the leapfrog
// scheme. prev holds the field one step in the past and is updated in place
// alongside the grid; pass a copy of the initial values for a field at rest.
// The step is rejected when the Courant number c·dt/dx exceeds 1.
func WaveLeapfrog(g *Grid1D, prev []float64, c, dt float64, steps int) error {
	n := len(g.Values)
	if len(prev) != n {
		return fmt.Errorf("pde: prev length %d does not match grid size %d", len(prev), n)
	}
	if c <= 0 || dt <= 0 {
		return fmt.Errorf("pde: c and dt must be positive")
	}
	courant := c * dt / g.Dx
	if courant > 1 {
		return fmt.Errorf("pde: courant number %g exceeds 1, reduce dt", courant)
	}

	r2 := courant * courant
	next := make([]float64, n)
	next[0] = g.Values[0]
	next[n-1] = g.Values[n-1]

	for s := 0; s < steps; s++ {
		u := g.Values
		for i := 1; i < n-1; i++ {
			next[i] = 2*u[i] - prev[i] + r2*(u[i+1]-2*u[i]+u[i-1])
		}
		copy(prev, u)
		copy(g.Values[1:n-1], next[1:n-1])
	}
	return nil
}

// Evolve runs step batches of the supplied advance func, capturing a snapshot
// after each batch. Used by the demos to collect profiles for plotting.
func Evolve(g *Grid1D, batches, stepsPer int, advance func(steps int) error) ([][]float64, error) {
	snaps := make([][]float64, 0, batches+1)
	snaps = append(snaps, g.Snapshot())
	for b := 0; b < batches; b++ {
		if err := advance(stepsPer); err != nil {
			return snaps, err
		}
		snaps = append(snaps, g.Snapshot())
	}
	return snaps, nil
}
