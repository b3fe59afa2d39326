package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/steppers"
)

func TestSweep_LorenzRho(t *testing.T) {
	s := &Sweep{
		NewSystem:  func() ode.System { return problems.NewLorenz() },
		NewStepper: func() ode.Stepper { return steppers.NewRK4() },
		Param:      "rho",
		Values:     []float64{13, 14, 15, 28},
	}

	results, err := s.Run(context.Background(), ode.State{1, 1, 1}, ode.Config{Tau: 5.0, Steps: 5001})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	for i, want := range []float64{13, 14, 15, 28} {
		if results[i].Value != want {
			t.Errorf("result %d has value %v, want %v (order must match input)", i, results[i].Value, want)
		}
		if results[i].Traj.Len() != 5001 {
			t.Errorf("result %d has %d states, want 5001", i, results[i].Traj.Len())
		}
		if !results[i].Traj.Last().IsValid() {
			t.Errorf("result %d diverged", i)
		}
	}
}

func TestSweep_Deterministic(t *testing.T) {
	run := func() []Result {
		s := &Sweep{
			NewSystem:  func() ode.System { return problems.NewLorenz() },
			NewStepper: func() ode.Stepper { return steppers.NewRK4() },
			Param:      "rho",
			Values:     []float64{20, 28},
		}
		results, err := s.Run(context.Background(), ode.State{1, 1, 1}, ode.Config{Tau: 2.0, Steps: 2001})
		if err != nil {
			t.Fatalf("sweep failed: %v", err)
		}
		return results
	}

	first := run()
	second := run()

	for i := range first {
		a, b := first[i].Traj.Last(), second[i].Traj.Last()
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("run %d not reproducible: %v vs %v", i, a, b)
			}
		}
	}
}

func TestSweep_UnknownParam(t *testing.T) {
	s := &Sweep{
		NewSystem:  func() ode.System { return problems.NewLorenz() },
		NewStepper: func() ode.Stepper { return steppers.NewRK4() },
		Param:      "nonsense",
		Values:     []float64{1},
	}

	if _, err := s.Run(context.Background(), ode.State{1, 1, 1}, ode.Config{Tau: 1.0, Steps: 10}); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestSweep_SolveErrorCarriesValue(t *testing.T) {
	boom := errors.New("blew up")
	s := &Sweep{
		NewSystem: func() ode.System {
			return ode.SystemFunc{N: 1, F: func(y ode.State, tm float64) (ode.State, error) {
				return nil, boom
			}}
		},
		NewStepper: func() ode.Stepper { return steppers.NewEuler() },
		Values:     []float64{1},
	}

	_, err := s.Run(context.Background(), ode.State{0}, ode.Config{Tau: 1.0, Steps: 10})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want wrapped system error", err)
	}
}
