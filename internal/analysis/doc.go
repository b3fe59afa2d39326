// Package analysis provides numerical diagnostics over integration
// runs: global-error and convergence-order measurement against closed
// form solutions, twin-trajectory separation for chaos detection, and
// energy drift for Hamiltonian systems.
package analysis
