// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lpsolve/matrix"
)

var (
	// ErrUnbalanced indicates Σ supply ≠ Σ demand beyond tolerance.
	ErrUnbalanced = errors.New("transport: supply and demand are not balanced")

	// ErrNegative indicates a negative supply or demand quantity.
	ErrNegative = errors.New("transport: negative quantity")

	// ErrUnknownMethod indicates an unrecognized Method value or name.
	ErrUnknownMethod = errors.New("transport: unknown method")
)

// Method selects the cell-choice rule.
type Method int

const (
	// NorthWest takes the top-left active cell.
	NorthWest Method = iota

	// Vogel follows the largest opportunity-cost penalty.
	Vogel

	// Russell follows the most negative reduced cost c − u − v.
	Russell
)

// Methods lists every Method in declaration order.
func Methods() []Method { return []Method{NorthWest, Vogel, Russell} }

// String returns the short method name used by ParseMethod.
func (m Method) String() string {
	switch m {
	case NorthWest:
		return "nw"
	case Vogel:
		return "vogel"
	case Russell:
		return "russell"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts nw, northwest, vogel and russell (case-insensitive).
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nw", "northwest", "north-west":
		return NorthWest, nil
	case "vogel", "vam":
		return Vogel, nil
	case "russell", "russel":
		return Russell, nil
	default:
		return NorthWest, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Problem is a transportation instance: Costs is m×n, len(Supply) == m and
// len(Demand) == n.
type Problem struct {
	Costs  matrix.Matrix
	Supply []float64
	Demand []float64
}

// Cell addresses one route of the plan.
type Cell struct {
	Row, Col int
}

// Plan is the outcome of Solve.
type Plan struct {
	// Allocation is the m×n shipped quantity per route.
	Allocation *matrix.Dense

	// Cost is Σ c_ij·x_ij over the allocation.
	Cost float64

	// Basis lists the chosen cells in the order they were filled.
	Basis []Cell
}
