// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/tolerance"
)

// DefaultAlpha is the step fraction used by DefaultOptions.
const DefaultAlpha = 0.5

// Options configures a Solver.
//
// Fields:
//   - Alpha: fraction of the distance to the boundary taken per step, in (0,1).
//   - Tolerance: ε for the interior test, singularity checks and convergence.
//   - MaxIterations: Iteration calls allowed in Solve; ≤ 0 means lp.DefaultMaxIterations.
type Options struct {
	Alpha         float64
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns α = DefaultAlpha, ε = tolerance.DefaultEpsilon and
// lp.DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{
		Alpha:         DefaultAlpha,
		Tolerance:     tolerance.DefaultEpsilon,
		MaxIterations: lp.DefaultMaxIterations,
	}
}

// validate checks option ranges and returns the comparator for Tolerance.
func (o Options) validate() (tolerance.Comparator, error) {
	if math.IsNaN(o.Alpha) || o.Alpha <= 0 || o.Alpha >= 1 {
		return tolerance.Comparator{}, fmt.Errorf("%w: alpha %g not in (0,1)", lp.ErrBadOption, o.Alpha)
	}
	cmp, err := tolerance.New(o.Tolerance)
	if err != nil {
		return tolerance.Comparator{}, fmt.Errorf("%w: %w", lp.ErrBadOption, err)
	}

	return cmp, nil
}
