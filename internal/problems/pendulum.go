package problems

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Pendulum is a damped pendulum: y = [theta, omega].
type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{Mass: 1.0, Length: 1.0, Damping: 0.1, Gravity: 9.81}
}

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(y ode.State, _ float64) (ode.State, error) {
	theta, omega := y[0], y[1]
	alpha := (-p.Damping*omega - p.Mass*p.Gravity*p.Length*math.Sin(theta)) /
		(p.Mass * p.Length * p.Length)
	return ode.State{omega, alpha}, nil
}

func (p *Pendulum) DefaultState() ode.State { return ode.State{0.5, 0} }

func (p *Pendulum) Energy(y ode.State) float64 {
	theta, omega := y[0], y[1]
	ke := 0.5 * p.Mass * p.Length * p.Length * omega * omega
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{"m": p.Mass, "l": p.Length, "b": p.Damping, "g": p.Gravity}
}

func (p *Pendulum) SetParam(name string, v float64) error {
	switch name {
	case "m":
		p.Mass = v
	case "l":
		p.Length = v
	case "b":
		p.Damping = v
	case "g":
		p.Gravity = v
	default:
		return unknownParam(name)
	}
	return nil
}
