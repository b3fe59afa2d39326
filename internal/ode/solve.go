package ode

import (
	"context"
	"fmt"
)

// Solve integrates sys from y0 over [0, cfg.Tau] with cfg.Steps samples
// spaced h = Tau/(Steps-1) apart, using the supplied stepper.
//
// The returned trajectory always holds every state computed before the
// first failure: if the stepper (or the system's derivative) fails at
// step i, the trajectory is populated up to index i and the error is a
// *StepError carrying that index. No step is ever retried; the rules
// are deterministic, so retrying identical inputs cannot help.
func Solve(ctx context.Context, sys System, stepper Stepper, y0 State, cfg Config) (*Trajectory, error) {
	if err := validate(sys, y0, cfg); err != nil {
		return nil, err
	}

	h := cfg.StepSize()
	traj := &Trajectory{
		States: make([]State, 0, cfg.Steps),
		Times:  make([]float64, 0, cfg.Steps),
	}

	traj.States = append(traj.States, y0.Clone())
	traj.Times = append(traj.Times, 0)

	for i := 0; i < cfg.Steps-1; i++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		t := float64(i) * h
		next, err := stepper.Step(sys, traj.States[i], t, h)
		if err != nil {
			return traj, &StepError{Step: i, Time: t, Err: err}
		}

		traj.States = append(traj.States, next)
		traj.Times = append(traj.Times, float64(i+1)*h)
	}

	return traj, nil
}

func validate(sys System, y0 State, cfg Config) error {
	if cfg.Tau <= 0 {
		return fmt.Errorf("%w: tau must be positive, got %f", ErrInvalidConfig, cfg.Tau)
	}
	if cfg.Steps < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidConfig, cfg.Steps)
	}
	if len(y0) != sys.Dim() {
		return fmt.Errorf("%w: initial state has %d variables, system wants %d",
			ErrDimensionMismatch, len(y0), sys.Dim())
	}
	return nil
}
