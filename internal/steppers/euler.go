package steppers

import "github.com/san-kum/odelab/internal/ode"

// Euler is the first-order rule y_next = y + h*f(y, t). One derivative
// evaluation per step; global error O(h). Cheapest, least accurate.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, y ode.State, t, h float64) (ode.State, error) {
	if err := checkStep(h); err != nil {
		return nil, err
	}

	dy, err := eval(sys, y, t)
	if err != nil {
		return nil, err
	}

	next := make(ode.State, len(y))
	for i := range y {
		next[i] = y[i] + h*dy[i]
	}
	return next, nil
}
