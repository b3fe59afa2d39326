// Package sweep runs independent trajectories for a range of parameter
// values in parallel. Steppers are stateless and states immutable, so
// the runs share nothing and need no locking; results come back in
// value order regardless of goroutine scheduling.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/odelab/internal/ode"
)

// Sweep describes a one-parameter study: a fresh system and stepper
// per run, with Param set to each of Values in turn.
type Sweep struct {
	NewSystem  func() ode.System
	NewStepper func() ode.Stepper
	Param      string
	Values     []float64
}

// Result pairs a parameter value with the trajectory it produced.
type Result struct {
	Value float64
	Traj  *ode.Trajectory
}

// Run computes one trajectory per parameter value, each on its own
// goroutine. The first failure wins; its error reports the offending
// parameter value.
func (s *Sweep) Run(ctx context.Context, y0 ode.State, cfg ode.Config) ([]Result, error) {
	results := make([]Result, len(s.Values))
	errs := make([]error, len(s.Values))

	var wg sync.WaitGroup
	for i, v := range s.Values {
		wg.Add(1)
		go func(idx int, value float64) {
			defer wg.Done()

			sys := s.NewSystem()
			if s.Param != "" {
				tunable, ok := sys.(ode.Configurable)
				if !ok {
					errs[idx] = fmt.Errorf("sweep: system %T has no tunable parameters", sys)
					return
				}
				if err := tunable.SetParam(s.Param, value); err != nil {
					errs[idx] = fmt.Errorf("sweep: %s=%v: %w", s.Param, value, err)
					return
				}
			}

			traj, err := ode.Solve(ctx, sys, s.NewStepper(), y0, cfg)
			if err != nil {
				errs[idx] = fmt.Errorf("sweep: %s=%v: %w", s.Param, value, err)
				return
			}
			results[idx] = Result{Value: value, Traj: traj}
		}(i, v)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
