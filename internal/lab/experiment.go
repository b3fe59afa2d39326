package lab

import (
	"context"
	"fmt"

	"github.com/san-kum/odelab/internal/ode"
)

// Spec names everything one run needs. Params are applied to the
// problem before integration; a nil Init falls back to the problem's
// default state.
type Spec struct {
	Problem string
	Stepper string
	Tau     float64
	Steps   int
	Init    ode.State
	Params  map[string]float64
}

type Experiment struct {
	spec    Spec
	sys     ode.System
	stepper ode.Stepper
	y0      ode.State
}

// New resolves a spec against the registry and prepares the run.
func New(r *Registry, spec Spec) (*Experiment, error) {
	sys, err := r.GetProblem(spec.Problem)
	if err != nil {
		return nil, err
	}

	if len(spec.Params) > 0 {
		tunable, ok := sys.(ode.Configurable)
		if !ok {
			return nil, fmt.Errorf("problem %s has no tunable parameters", spec.Problem)
		}
		for name, value := range spec.Params {
			if err := tunable.SetParam(name, value); err != nil {
				return nil, err
			}
		}
	}

	stepper, err := r.GetStepper(spec.Stepper)
	if err != nil {
		return nil, err
	}

	y0 := spec.Init
	if y0 == nil {
		seeded, ok := sys.(Seeded)
		if !ok {
			return nil, fmt.Errorf("problem %s needs an explicit initial state", spec.Problem)
		}
		y0 = seeded.DefaultState()
	}

	return &Experiment{spec: spec, sys: sys, stepper: stepper, y0: y0}, nil
}

func (e *Experiment) System() ode.System   { return e.sys }
func (e *Experiment) Stepper() ode.Stepper { return e.stepper }
func (e *Experiment) Initial() ode.State   { return e.y0.Clone() }

func (e *Experiment) Config() ode.Config {
	return ode.Config{Tau: e.spec.Tau, Steps: e.spec.Steps}
}

func (e *Experiment) Run(ctx context.Context) (*ode.Trajectory, error) {
	return ode.Solve(ctx, e.sys, e.stepper, e.y0, e.Config())
}
