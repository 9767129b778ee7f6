// Package ode provides fixed-step and adaptive integrators for systems of
// ordinary differential equations y'(t) = f(t, y(t)).
package ode

import (
	"errors"
	"fmt"
)

// System evaluates the right hand side of the differential equation,
// writing f(t, y) into dy. dy and y have the same length and must not alias.
type System func(t float64, y, dy []float64)

// Config controls an integration run. The zero value selects defaults.
type Config struct {
	// InitialStep, if > 0, is the step size used for the first step.
	// Fixed-step integrators use it for every step.
	InitialStep float64

	// MinStep, if > 0, aborts processing when the adaptive controller
	// would shrink the step below it.
	MinStep float64

	// MaxStep, if > 0, caps the step size.
	MaxStep float64

	// AbsTol and RelTol are the error tolerances used by adaptive
	// integrators. Zero values fall back to 1e-8 and 1e-6.
	AbsTol float64
	RelTol float64

	// MaxSteps, if > 0, aborts processing when the step count exceeds it
	// before reaching the target time.
	MaxSteps int
}

// Stats reports what an integration run did.
type Stats struct {
	// Steps is the number of accepted steps.
	Steps int
	// Rejected is the number of steps the adaptive controller rejected.
	Rejected int
	// Evals is the number of right-hand-side evaluations.
	Evals int
	// LastStep is the size of the last accepted step.
	LastStep float64
	// CurrentTime is the value of t up to which integration ran.
	CurrentTime float64
}

// Info identifies an integrator method.
type Info struct {
	Name   string
	Stages int
	Order  int
}

// Integrator advances a system state from t to tEnd in place.
type Integrator interface {
	Info() Info
	Integrate(t, tEnd float64, y []float64, sys System, cfg *Config) (Stats, error)
}

// ErrMaxSteps is returned when MaxSteps is exceeded before reaching tEnd.
var ErrMaxSteps = errors.New("ode: maximum step count exceeded")

// ErrMinStep is returned when the adaptive controller cannot satisfy the
// tolerances without shrinking the step below MinStep.
var ErrMinStep = errors.New("ode: step size underflow")

const (
	defaultAbsTol = 1e-8
	defaultRelTol = 1e-6
)

func (c *Config) withDefaults(span float64) Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.InitialStep <= 0 {
		out.InitialStep = span / 100
	}
	if out.AbsTol <= 0 {
		out.AbsTol = defaultAbsTol
	}
	if out.RelTol <= 0 {
		out.RelTol = defaultRelTol
	}
	if out.MaxStep > 0 && out.InitialStep > out.MaxStep {
		out.InitialStep = out.MaxStep
	}
	return out
}

func validateSpan(t, tEnd float64, y []float64) error {
	if len(y) == 0 {
		return fmt.Errorf("ode: empty state vector")
	}
	if tEnd < t {
		return fmt.Errorf("ode: tEnd %g before start time %g", tEnd, t)
	}
	return nil
}
