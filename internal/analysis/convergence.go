package analysis

import (
	"context"
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// ExactSolution returns the analytic state at time t, used as the
// reference when measuring a stepper's global error.
type ExactSolution func(t float64) ode.State

// GlobalError integrates sys over [0, tau] with the given step count
// and returns the norm of the terminal error against the closed form.
func GlobalError(ctx context.Context, sys ode.System, st ode.Stepper, y0 ode.State, exact ExactSolution, tau float64, steps int) (float64, error) {
	traj, err := ode.Solve(ctx, sys, st, y0, ode.Config{Tau: tau, Steps: steps})
	if err != nil {
		return 0, err
	}
	return traj.Last().Sub(exact(tau)).Norm(), nil
}

// ConvergenceOrder estimates a stepper's global order of accuracy by
// shrinking h tenfold and comparing terminal errors: the observed
// order is log10(e_coarse/e_fine). The fine step count is chosen as
// 10(N-1)+1 so the ratio of step sizes is exactly ten.
func ConvergenceOrder(ctx context.Context, sys ode.System, st ode.Stepper, y0 ode.State, exact ExactSolution, tau float64, coarseSteps int) (float64, error) {
	coarse, err := GlobalError(ctx, sys, st, y0, exact, tau, coarseSteps)
	if err != nil {
		return 0, err
	}

	fine, err := GlobalError(ctx, sys, st, y0, exact, tau, 10*(coarseSteps-1)+1)
	if err != nil {
		return 0, err
	}

	if fine == 0 {
		return math.Inf(1), nil
	}
	return math.Log10(coarse / fine), nil
}

// EnergyDrift returns the relative drift |E_end - E_0| / |E_0| over a
// trajectory, or 0 when the system has no energy function or starts
// at zero energy.
func EnergyDrift(sys ode.System, traj *ode.Trajectory) float64 {
	h, ok := sys.(ode.Hamiltonian)
	if !ok || traj.Len() == 0 {
		return 0
	}

	initial := h.Energy(traj.States[0])
	if initial == 0 {
		return 0
	}
	return math.Abs(h.Energy(traj.Last())-initial) / math.Abs(initial)
}
