// SPDX-License-Identifier: MIT

// Package simplex implements the tableau simplex method for
//
//	maximize / minimize  c·x   subject to  A·x ≤ b,  x ≥ 0,  b ≥ 0.
//
// The tableau is an (m+1)×(n+m+1) matrix.Dense:
//
//	row 0      : −factor·c | 0 … 0 | 0        (reduced costs | objective value)
//	rows 1..m  :     A     |   I   | b
//
// with factor = +1 for Maximize and −1 for Minimize. The slack columns form
// the starting basis, so b ≥ 0 is required (lp.ErrNegativeRHS otherwise).
//
// Each Iteration:
//  1. picks the entering column with the most negative reduced cost;
//     none negative within tolerance means the vertex is optimal;
//  2. picks the leaving row by the minimum non-negative ratio b_i / a_ie
//     over rows with a positive pivot-column entry; no such row means the
//     objective is unbounded (lp.ErrUnbounded);
//  3. normalizes the pivot row and eliminates the entering column from every
//     other row, row 0 included.
//
// Ties in both choices are resolved by Options.TieBreak. Terminal solvers
// are inert: an Optimal solver keeps returning (true, nil), an Unbounded one
// keeps returning lp.ErrUnbounded.
//
// No logging, no panics on user input.
package simplex
