package problems

import "github.com/san-kum/odelab/internal/ode"

// Lorenz is the classic chaotic attractor. The rho parameter is the
// usual sweep axis: below ~24.7 trajectories settle onto fixed points,
// above it they wander the butterfly.
type Lorenz struct {
	Sigma, Rho, Beta float64
}

func NewLorenz() *Lorenz { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }

func (l *Lorenz) Dim() int { return 3 }

func (l *Lorenz) Derive(y ode.State, _ float64) (ode.State, error) {
	return ode.State{
		l.Sigma * (y[1] - y[0]),
		y[0]*(l.Rho-y[2]) - y[1],
		y[0]*y[1] - l.Beta*y[2],
	}, nil
}

func (l *Lorenz) DefaultState() ode.State { return ode.State{1.0, 1.0, 1.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.Sigma, "rho": l.Rho, "beta": l.Beta}
}

func (l *Lorenz) SetParam(name string, v float64) error {
	switch name {
	case "sigma":
		l.Sigma = v
	case "rho":
		l.Rho = v
	case "beta":
		l.Beta = v
	default:
		return unknownParam(name)
	}
	return nil
}
