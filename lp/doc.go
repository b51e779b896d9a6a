// SPDX-License-Identifier: MIT

// Package lp holds the linear-program model shared by the solvers.
//
// A Problem is
//
//	optimize  c·x   (Mode: Maximize or Minimize)
//	subject   A·x ≤ b,  x ≥ 0
//
// with c = Objective, A = Constraints and b = RHS. Slack variables
// s = b − A·x turn the inequalities into the equalities [A | I]·(x, s) = b.
//
// The package also defines the shared solver lifecycle (State), the
// application-problem error family and Drive, the iteration loop used by
// every Solver's Solve.
//
// No logging, no panics on user input.
package lp
