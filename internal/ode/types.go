package ode

import "math"

// State is the vector of dynamical variables at one instant, e.g.
// [position, velocity]. Dimensionality is fixed for a given problem.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// System is the right-hand side of dy/dt = f(y, t). Implementations
// must be pure: no retained references, no mutation of y.
type System interface {
	Derive(y State, t float64) (State, error)
	Dim() int
}

// SystemFunc lifts a plain derivative function into a System.
type SystemFunc struct {
	N int
	F func(y State, t float64) (State, error)
}

func (s SystemFunc) Dim() int { return s.N }

func (s SystemFunc) Derive(y State, t float64) (State, error) { return s.F(y, t) }

// Stepper advances a state by one step of size h. Implementations must
// return a new State, leave y untouched, and carry no state across
// calls.
type Stepper interface {
	Step(sys System, y State, t, h float64) (State, error)
}

// Hamiltonian is implemented by systems with a conserved energy.
type Hamiltonian interface {
	Energy(y State) float64
}

// Configurable is implemented by systems with runtime-tunable
// parameters, used by parameter sweeps.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Config describes one integration run. The step size is Tau/(Steps-1)
// so that the final sample lands exactly on t = Tau.
type Config struct {
	Tau   float64
	Steps int
}

func (c Config) StepSize() float64 {
	return c.Tau / float64(c.Steps-1)
}

func DefaultConfig() Config {
	return Config{Tau: 10.0, Steps: 1001}
}

// Trajectory is the ordered sequence of states produced by Solve,
// one per sample time. It grows monotonically and is never rewritten.
type Trajectory struct {
	States []State
	Times  []float64
}

func (tr *Trajectory) Len() int {
	return len(tr.States)
}

// Last returns the most recent state, or nil for an empty trajectory.
func (tr *Trajectory) Last() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}

// Component extracts one state variable across the whole trajectory.
func (tr *Trajectory) Component(idx int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		if idx < len(s) {
			out[i] = s[idx]
		}
	}
	return out
}
