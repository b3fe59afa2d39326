package steppers

import "github.com/san-kum/odelab/internal/ode"

// RK4 is the classic fourth-order Runge-Kutta rule. Four derivative
// evaluations per step; global error O(h^4). The recommended default
// for accuracy-sensitive trajectories such as chaotic systems.
//
// Scratch states are allocated per call rather than cached on the
// struct: a stepper must not retain references across calls, so one
// RK4 value can serve concurrent trajectories.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys ode.System, y ode.State, t, h float64) (ode.State, error) {
	if err := checkStep(h); err != nil {
		return nil, err
	}

	n := len(y)
	stage := make(ode.State, n)

	k1, err := eval(sys, y, t)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		stage[i] = y[i] + h*0.5*k1[i]
	}
	k2, err := eval(sys, stage, t+h*0.5)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		stage[i] = y[i] + h*0.5*k2[i]
	}
	k3, err := eval(sys, stage, t+h*0.5)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		stage[i] = y[i] + h*k3[i]
	}
	k4, err := eval(sys, stage, t+h)
	if err != nil {
		return nil, err
	}

	next := make(ode.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		next[i] = y[i] + h6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next, nil
}
