// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"strings"
)

// Mode selects the optimization direction.
//
//   - Maximize: maximize c·x (default).
//   - Minimize: minimize c·x.
type Mode int

const (
	// Maximize searches for the largest objective value.
	Maximize Mode = iota

	// Minimize searches for the smallest objective value.
	Minimize
)

// Factor returns +1 for Maximize and −1 for Minimize: the sign that turns the
// caller's objective into the internal maximize form.
func (m Mode) Factor() float64 {
	if m == Minimize {
		return -1
	}

	return 1
}

// String returns "max" or "min".
func (m Mode) String() string {
	switch m {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts max, maximize, min and minimize (case-insensitive).
// Errors: ErrBadMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	default:
		return Maximize, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// State is the lifecycle position of a solver.
//
//	Iterating ─► Optimal    (simplex: no improving column)
//	          ─► Unbounded  (no leaving row / no bounded step)
//	          ─► Converged  (affine scaling: step below tolerance)
//
// Every state except Iterating is terminal.
type State int

const (
	// Iterating means further iterations may change the point.
	Iterating State = iota
	// Optimal means the current vertex is optimal.
	Optimal
	// Unbounded means the objective is unbounded on the feasible region.
	Unbounded
	// Converged means successive interior points are within tolerance.
	Converged
)

// Terminal reports whether s is a final state.
func (s State) Terminal() bool { return s != Iterating }

// String names the state.
func (s State) String() string {
	switch s {
	case Iterating:
		return "iterating"
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Converged:
		return "converged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
