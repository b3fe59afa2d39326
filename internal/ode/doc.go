// Package ode provides the core primitives for fixed-step numerical
// integration of ordinary differential equations.
//
// The package defines the types shared by every integration rule:
//
//   - [State]: vector of dynamical variables at one instant
//   - [System]: the caller-supplied derivative function dy/dt = f(y, t)
//   - [Stepper]: one-step integration rule (Euler, RK2, RK4, ...)
//   - [Trajectory]: the sequence of states produced by [Solve]
//
// # Example
//
//	sys := problems.NewFreeFall()
//	st := steppers.NewRK4()
//	traj, err := ode.Solve(ctx, sys, st, ode.State{0, 0}, ode.Config{Tau: 1.0, Steps: 11})
//
// # Thread Safety
//
// Steppers hold no state between calls and States are never mutated in
// place, so independent trajectories may be integrated concurrently
// without synchronization. Steps within one trajectory are strictly
// sequential.
package ode
