// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
)

var (
	// ErrApplicationProblem is the family of errors caused by a problem that
	// cannot be handled by the chosen method. Every refinement below matches
	// it through errors.Is.
	ErrApplicationProblem = errors.New("lp: method is not applicable")

	// ErrNegativeRHS indicates a negative right-hand side entry: the slack
	// basis is not a feasible starting vertex.
	ErrNegativeRHS = fmt.Errorf("%w: negative right-hand side", ErrApplicationProblem)

	// ErrNotInterior indicates a starting point that is not strictly inside
	// the feasible region (some x_j or slack s_i is not positive).
	ErrNotInterior = fmt.Errorf("%w: start point is not strictly interior", ErrApplicationProblem)

	// ErrUnbounded indicates that the objective grows without bound.
	ErrUnbounded = fmt.Errorf("%w: objective is unbounded", ErrApplicationProblem)
)

var (
	// ErrIterationLimit is returned by Drive when the iteration cap is hit
	// before the solver reached a terminal state.
	ErrIterationLimit = errors.New("lp: iteration limit reached")

	// ErrBadOption indicates an out-of-range solver option.
	ErrBadOption = errors.New("lp: invalid option")

	// ErrBadMode indicates an unknown optimization mode name.
	ErrBadMode = errors.New("lp: unknown optimization mode")
)
