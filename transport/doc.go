// SPDX-License-Identifier: MIT

// Package transport builds initial basic feasible plans for the balanced
// transportation problem
//
//	minimize Σ c_ij·x_ij   subject to  Σ_j x_ij = supply_i,  Σ_i x_ij = demand_j,  x ≥ 0.
//
// Every method follows the same loop: choose an active cell (i, j), ship
// min(supply_i, demand_j), then retire row i if its supply is exhausted,
// otherwise column j. The loop ends when no row or no column is active, which
// yields at most m+n−1 basic cells.
//
// Methods:
//   - NorthWest: the first active row and the first active column.
//   - Vogel: the line (row or column) with the largest penalty, the
//     difference between its two smallest active costs (a single active cost
//     is its own penalty); rows win ties over columns, then lower indices.
//     The cheapest active cell of that line is chosen.
//   - Russell: with u_i / v_j the largest active cost of row i / column j,
//     the active cell with the most negative Δ_ij = c_ij − u_i − v_j, in
//     row-major order on ties.
//
// No logging, no panics on user input.
package transport
