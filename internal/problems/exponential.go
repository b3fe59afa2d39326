package problems

import "github.com/san-kum/odelab/internal/ode"

// Exponential is dy/dt = lambda*y with closed form y0*e^(lambda t),
// the reference problem for convergence-order measurements.
type Exponential struct {
	Lambda float64
}

func NewExponential() *Exponential { return &Exponential{Lambda: 1.0} }

func (e *Exponential) Dim() int { return 1 }

func (e *Exponential) Derive(y ode.State, _ float64) (ode.State, error) {
	return ode.State{e.Lambda * y[0]}, nil
}

func (e *Exponential) DefaultState() ode.State { return ode.State{1.0} }

func (e *Exponential) GetParams() map[string]float64 {
	return map[string]float64{"lambda": e.Lambda}
}

func (e *Exponential) SetParam(name string, v float64) error {
	if name != "lambda" {
		return unknownParam(name)
	}
	e.Lambda = v
	return nil
}
