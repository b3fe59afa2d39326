// Package lab wires names to problems and steppers and orchestrates
// configured runs for the CLI.
package lab

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/steppers"
)

// Seeded is implemented by problems that know a sensible initial state.
type Seeded interface {
	DefaultState() ode.State
}

type Registry struct {
	problems map[string]func() ode.System
	steppers map[string]func() ode.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		problems: make(map[string]func() ode.System),
		steppers: make(map[string]func() ode.Stepper),
	}

	r.problems["freefall"] = func() ode.System { return problems.NewFreeFall() }
	r.problems["spring"] = func() ode.System { return problems.NewSpring() }
	r.problems["pendulum"] = func() ode.System { return problems.NewPendulum() }
	r.problems["lorenz"] = func() ode.System { return problems.NewLorenz() }
	r.problems["projectile"] = func() ode.System { return problems.NewProjectile() }
	r.problems["exponential"] = func() ode.System { return problems.NewExponential() }

	r.steppers["euler"] = func() ode.Stepper { return steppers.NewEuler() }
	r.steppers["rk2"] = func() ode.Stepper { return steppers.NewRK2() }
	r.steppers["rk4"] = func() ode.Stepper { return steppers.NewRK4() }
	r.steppers["rk45"] = func() ode.Stepper { return steppers.NewRK45() }

	return r
}

func (r *Registry) GetProblem(name string) (ode.System, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetStepper(name string) (ode.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown stepper: %s", name)
	}
	return fn(), nil
}

// NewStepperFunc returns a constructor for use by parameter sweeps,
// which need a fresh stepper per goroutine.
func (r *Registry) NewStepperFunc(name string) (func() ode.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown stepper: %s", name)
	}
	return fn, nil
}

// NewProblemFunc returns a constructor for use by parameter sweeps.
func (r *Registry) NewProblemFunc(name string) (func() ode.System, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn, nil
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
