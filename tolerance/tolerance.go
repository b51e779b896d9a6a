// SPDX-License-Identifier: MIT

package tolerance

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by the CLI and examples when the user
// supplies none. Library constructors never fall back to it implicitly.
const DefaultEpsilon = 1e-9

// ErrBadTolerance is returned when eps is negative, NaN or ±Inf.
var ErrBadTolerance = errors.New("tolerance: eps must be finite and non-negative")

// Comparator orders float64 values treating |a-b| ≤ eps as equal.
// The zero value is an exact comparator (eps = 0).
type Comparator struct {
	eps float64 // >= 0, finite
}

// New returns a Comparator for eps.
// Errors: ErrBadTolerance when eps < 0 or eps is not finite.
// Complexity: O(1).
func New(eps float64) (Comparator, error) {
	if err := Validate(eps); err != nil {
		return Comparator{}, err
	}

	return Comparator{eps: eps}, nil
}

// Validate reports whether eps is usable as a tolerance.
func Validate(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("Validate(%g): %w", eps, ErrBadTolerance)
	}

	return nil
}

// Eps returns the configured tolerance.
func (c Comparator) Eps() float64 { return c.eps }

// Compare returns -1 if a < b, +1 if a > b and 0 when |a-b| ≤ eps.
// NaN operands compare as equal to nothing: the result is +1 so that a NaN
// never wins a "most negative" or "smallest ratio" selection.
// Complexity: O(1).
func (c Comparator) Compare(a, b float64) int {
	diff := a - b
	switch {
	case math.IsNaN(diff):
		return 1
	case diff > c.eps:
		return 1
	case diff < -c.eps:
		return -1
	default:
		return 0
	}
}

// Equal reports |a-b| ≤ eps.
func (c Comparator) Equal(a, b float64) bool { return c.Compare(a, b) == 0 }

// Less reports a < b by more than eps.
func (c Comparator) Less(a, b float64) bool { return c.Compare(a, b) < 0 }

// IsZero reports |v| ≤ eps.
func (c Comparator) IsZero(v float64) bool { return c.Compare(v, 0) == 0 }

// IsPositive reports v > eps.
func (c Comparator) IsPositive(v float64) bool { return c.Compare(v, 0) > 0 }

// IsNegative reports v < -eps.
func (c Comparator) IsNegative(v float64) bool { return c.Compare(v, 0) < 0 }
