package analysis

import (
	"context"
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Separation measures the exponential divergence rate of two
// trajectories started perturbation apart in the first state variable:
// lambda ~ ln(d_end/d_0) / tau. A clearly positive value indicates
// sensitive dependence on initial conditions.
func Separation(ctx context.Context, sys ode.System, st ode.Stepper, y0 ode.State, perturbation float64, cfg ode.Config) (float64, error) {
	base, err := ode.Solve(ctx, sys, st, y0, cfg)
	if err != nil {
		return 0, err
	}

	y0p := y0.Clone()
	y0p[0] += perturbation
	shifted, err := ode.Solve(ctx, sys, st, y0p, cfg)
	if err != nil {
		return 0, err
	}

	d := shifted.Last().Sub(base.Last()).Norm()
	if d == 0 || perturbation == 0 {
		return 0, nil
	}
	return math.Log(d/math.Abs(perturbation)) / cfg.Tau, nil
}
