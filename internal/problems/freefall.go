package problems

import "github.com/san-kum/odelab/internal/ode"

const DefaultGravity = 9.8

// FreeFall is vertical motion under constant gravity: y = [x, v],
// dx/dt = v, dv/dt = -g. Closed form x(t) = x0 + v0 t - g t^2 / 2.
type FreeFall struct {
	Gravity float64
}

func NewFreeFall() *FreeFall { return &FreeFall{Gravity: DefaultGravity} }

func (f *FreeFall) Dim() int { return 2 }

func (f *FreeFall) Derive(y ode.State, _ float64) (ode.State, error) {
	return ode.State{y[1], -f.Gravity}, nil
}

func (f *FreeFall) DefaultState() ode.State { return ode.State{0, 0} }

func (f *FreeFall) GetParams() map[string]float64 {
	return map[string]float64{"g": f.Gravity}
}

func (f *FreeFall) SetParam(name string, v float64) error {
	if name != "g" {
		return unknownParam(name)
	}
	f.Gravity = v
	return nil
}
