// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"

	"github.com/katalvlaran/lpsolve/matrix"
)

// DefaultMaxIterations caps Drive when the caller passes a non-positive limit.
const DefaultMaxIterations = 10000

// Solver is the iteration surface shared by the simplex and affine-scaling solvers.
type Solver interface {
	// Iteration advances the solver by one step; done is true once the
	// solver is in a terminal state. Terminal solvers never mutate again.
	Iteration() (done bool, err error)

	// State returns the current lifecycle position.
	State() State

	// Iterations returns the number of state-changing steps taken so far.
	Iterations() int

	// Solution returns the structural coordinates of the current point.
	Solution() *matrix.ColumnVector

	// ObjectiveFunctionValue returns c·x at the current point in the caller's sign.
	ObjectiveFunctionValue() float64
}

// Observer is called after every successful, non-terminal iteration.
type Observer func(iteration int, s Solver)

// Drive runs s until it reports done, fails, or performs maxIterations
// steps. A non-positive maxIterations selects DefaultMaxIterations.
//
// Errors:
//   - the first error returned by Iteration, unwrapped by nothing else;
//   - ErrIterationLimit when the cap is reached in a non-terminal state.
func Drive(s Solver, maxIterations int, observe Observer) error {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	for step := 0; step < maxIterations; step++ {
		done, err := s.Iteration()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if observe != nil {
			observe(s.Iterations(), s)
		}
	}
	// the last allowed step may have been the terminating one
	if s.State().Terminal() {
		return nil
	}

	return fmt.Errorf("Drive: %d iterations: %w", maxIterations, ErrIterationLimit)
}
