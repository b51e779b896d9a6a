// SPDX-License-Identifier: MIT

// Package tolerance provides epsilon-aware ordering of float64 values.
//
// Every zero-test and ordering decision in the kernel and the solvers goes
// through a Comparator, so floating-point noise introduced by elimination
// and iteration is absorbed in exactly one place:
//
//	cmp, err := tolerance.New(1e-9)
//	if err != nil {
//		// ErrBadTolerance: eps was negative, NaN or Inf
//	}
//	cmp.Compare(1.0, 1.0+1e-12) // 0: equal within eps
//	cmp.IsNegative(-1e-3)       // true
//
// There is no package-level default comparator. DefaultEpsilon is only a
// documented value; callers pass it explicitly.
package tolerance
