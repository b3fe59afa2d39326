package problems

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Projectile is 2D ballistic motion with optional quadratic drag:
// y = [x, h, vx, vh].
type Projectile struct {
	Gravity float64
	Drag    float64
}

func NewProjectile() *Projectile { return &Projectile{Gravity: DefaultGravity} }

func (p *Projectile) Dim() int { return 4 }

func (p *Projectile) Derive(y ode.State, _ float64) (ode.State, error) {
	vx, vh := y[2], y[3]
	speed := math.Hypot(vx, vh)
	return ode.State{
		vx,
		vh,
		-p.Drag * speed * vx,
		-p.Gravity - p.Drag*speed*vh,
	}, nil
}

func (p *Projectile) DefaultState() ode.State {
	// 45 degree launch at 20 m/s from the ground
	v := 20.0 / math.Sqrt2
	return ode.State{0, 0, v, v}
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{"g": p.Gravity, "drag": p.Drag}
}

func (p *Projectile) SetParam(name string, v float64) error {
	switch name {
	case "g":
		p.Gravity = v
	case "drag":
		p.Drag = v
	default:
		return unknownParam(name)
	}
	return nil
}
