package problems

import "github.com/san-kum/odelab/internal/ode"

// Spring is a vertical mass on a spring: y = [x, v], dx/dt = v,
// dv/dt = -k/m x - g. A nonzero friction coefficient adds a Coulomb
// term mu*g opposing the current velocity; the sign is taken from the
// velocity state y[1].
type Spring struct {
	Stiffness float64
	Mass      float64
	Gravity   float64
	Friction  float64
}

func NewSpring() *Spring {
	return &Spring{Stiffness: 3.5, Mass: 0.2, Gravity: DefaultGravity}
}

func (s *Spring) Dim() int { return 2 }

func (s *Spring) Derive(y ode.State, _ float64) (ode.State, error) {
	x, v := y[0], y[1]

	accel := -s.Stiffness/s.Mass*x - s.Gravity
	if s.Friction > 0 {
		switch {
		case v > 0:
			accel -= s.Friction * s.Gravity
		case v < 0:
			accel += s.Friction * s.Gravity
		}
	}

	return ode.State{v, accel}, nil
}

func (s *Spring) DefaultState() ode.State { return ode.State{0.2, 0} }

// Energy is only conserved in the frictionless case; with friction it
// decays monotonically.
func (s *Spring) Energy(y ode.State) float64 {
	x, v := y[0], y[1]
	return 0.5*s.Mass*v*v + 0.5*s.Stiffness*x*x + s.Mass*s.Gravity*x
}

func (s *Spring) GetParams() map[string]float64 {
	return map[string]float64{"k": s.Stiffness, "m": s.Mass, "g": s.Gravity, "mu": s.Friction}
}

func (s *Spring) SetParam(name string, v float64) error {
	switch name {
	case "k":
		s.Stiffness = v
	case "m":
		s.Mass = v
	case "g":
		s.Gravity = v
	case "mu":
		s.Friction = v
	default:
		return unknownParam(name)
	}
	return nil
}
