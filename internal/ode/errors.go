package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration operations.
var (
	// ErrInvalidStep indicates a step size that is zero, negative or
	// non-finite.
	ErrInvalidStep = errors.New("ode: invalid step size")

	// ErrDimensionMismatch indicates that a derivative evaluation
	// returned a vector whose length disagrees with the state.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch")

	// ErrInvalidConfig indicates an unusable run configuration.
	ErrInvalidConfig = errors.New("ode: invalid config")
)

// StepError reports a failure at a specific step of a run, so the
// caller can diagnose it against the state index that triggered it.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
