// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/tolerance"
)

// TieBreak selects between candidates whose keys are equal within tolerance.
//
//   - PreferLowestIndex: first column / first row encountered (default).
//   - PreferHighestIndex: last column / last row encountered.
type TieBreak int

const (
	// PreferLowestIndex keeps the first candidate among equals.
	PreferLowestIndex TieBreak = iota

	// PreferHighestIndex keeps the last candidate among equals.
	PreferHighestIndex
)

// String names the strategy.
func (t TieBreak) String() string {
	switch t {
	case PreferLowestIndex:
		return "lowest"
	case PreferHighestIndex:
		return "highest"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// Options configures a Solver.
//
// Fields:
//   - Tolerance: ε for every zero test and ratio comparison (≥ 0, finite).
//   - TieBreak: candidate selection among equals.
//   - MaxIterations: Iteration calls allowed in Solve; ≤ 0 means lp.DefaultMaxIterations.
type Options struct {
	Tolerance     float64
	TieBreak      TieBreak
	MaxIterations int
}

// DefaultOptions returns ε = tolerance.DefaultEpsilon, PreferLowestIndex and
// lp.DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:     tolerance.DefaultEpsilon,
		TieBreak:      PreferLowestIndex,
		MaxIterations: lp.DefaultMaxIterations,
	}
}

// validate checks option ranges and returns the comparator for Tolerance.
func (o Options) validate() (tolerance.Comparator, error) {
	cmp, err := tolerance.New(o.Tolerance)
	if err != nil {
		return tolerance.Comparator{}, fmt.Errorf("%w: %w", lp.ErrBadOption, err)
	}
	if o.TieBreak != PreferLowestIndex && o.TieBreak != PreferHighestIndex {
		return tolerance.Comparator{}, fmt.Errorf("%w: tie-break %v", lp.ErrBadOption, o.TieBreak)
	}

	return cmp, nil
}
