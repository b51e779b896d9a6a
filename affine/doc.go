// SPDX-License-Identifier: MIT

// Package affine implements the primal affine-scaling interior-point method
// for
//
//	maximize / minimize  c·x   subject to  A·x ≤ b,  x ≥ 0.
//
// The start point x0 must be strictly interior: every x0_j > 0 and every
// slack s_i = b_i − (A·x0)_i > 0 beyond tolerance (lp.ErrNotInterior). The
// solver works on the slack-augmented system [A | I]·(x, s) = b with the
// objective in maximize form (factor·c, zero for slacks).
//
// Each Iteration, with x the current (x, s) point and D = diag(x):
//  1. G = [A | I]·D²·[A | I]ᵀ, the normal equations of Ã = [A | I]·D;
//  2. w solves G·w = [A | I]·D²·c, refined once; r = c − [A | I]ᵀ·w;
//  3. cp = D·r, which equals P·D·c for P = I − Ã⁺Ã, the projector onto
//     the null space of Ã, without forming Ã⁺;
//  4. r ≤ ε and |b·w − c·x| ≤ ε·(1 + |c·x|) end the run (lp.Converged);
//  5. ν = |most negative entry of cp|, step = α/ν. Without a negative entry
//     the point is either optimal (cp ≈ 0) or the objective is unbounded;
//  6. x* = x + step·D·cp, then x* moves along D²·[A | I]ᵀ until
//     [A | I]·x* = b again;
//  7. x = x*; ‖x* − x‖₂ within tolerance ends the run (lp.Converged).
//
// G loses rank at a degenerate vertex as its slacks vanish. When that happens
// with the last relative duality gap within √ε the run converges; otherwise
// Iteration returns matrix.ErrSingular.
//
// The step keeps every coordinate at least (1−α)·x_j > 0, so the iterates
// stay strictly interior.
//
// No logging, no panics on user input.
package affine
