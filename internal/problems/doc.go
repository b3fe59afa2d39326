// Package problems provides the catalog of dynamical systems the lab
// can integrate. Each problem implements [ode.System]; several also
// implement [ode.Configurable] for parameter sweeps and
// [ode.Hamiltonian] for energy-drift checks.
package problems
