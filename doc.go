// SPDX-License-Identifier: MIT

// Package lpsolve solves small dense linear programs
//
//	maximize / minimize  c·x  subject to  A·x ≤ b, x ≥ 0
//
// and builds initial plans for balanced transportation problems.
//
// The work is split into subpackages:
//
//	tolerance/ : ε-comparator shared by every numeric decision
//	matrix/    : row-major Dense with aliasing transpose, row, column and slice
//	             views; products, RREF inverse, pseudo-inverse, null-space
//	             projector; text scanners and gonum interop
//	lp/        : Problem, Mode, State, the Solver contract and Drive
//	simplex/   : tableau simplex with Dantzig's entering rule
//	affine/    : affine-scaling interior-point method
//	transport/ : North-West corner, Vogel and Russell initial plans
//	cmd/lpsolve: command-line front end (cobra, klog, YAML input)
//
// Library packages never log and never panic on user input; failures are
// returned as wrapped sentinel errors that callers match with errors.Is.
package lpsolve
