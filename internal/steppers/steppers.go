// Package steppers implements the fixed-step integration rules. Every
// rule satisfies [ode.Stepper] so the driver loop can swap integration
// order without modification.
package steppers

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// checkStep rejects non-positive and non-finite step sizes before any
// derivative evaluation happens.
func checkStep(h float64) error {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: h=%v", ode.ErrInvalidStep, h)
	}
	return nil
}

// eval calls the system derivative and enforces the dimensionality
// contract len(f(y,t)) == len(y) at every evaluation point, interior
// RK stages included.
func eval(sys ode.System, y ode.State, t float64) (ode.State, error) {
	dy, err := sys.Derive(y, t)
	if err != nil {
		return nil, err
	}
	if len(dy) != len(y) {
		return nil, fmt.Errorf("%w: derivative has %d components, state has %d",
			ode.ErrDimensionMismatch, len(dy), len(y))
	}
	return dy, nil
}
