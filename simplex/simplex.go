// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/tolerance"
)

// Compile-time check that Solver satisfies lp.Solver.
var _ lp.Solver = (*Solver)(nil)

// Solver holds the simplex tableau and its basis. It is single-use and not
// safe for concurrent use.
type Solver struct {
	mode       lp.Mode
	cmp        tolerance.Comparator
	opts       Options
	tableau    *matrix.Dense        // (m+1)×(n+m+1)
	costs      *matrix.RowVector    // view of tableau row 0
	rhs        *matrix.ColumnVector // view of the last tableau column
	basis      []int                // basis[r-1] is the basic column of row r
	n, m       int
	state      lp.State
	iterations int
}

// New builds the initial tableau [−factor·c ; A | I | b] with the slack basis.
//
// Implementation:
//   - Stage 1: validate options and problem shapes.
//   - Stage 2: reject b_i < 0 (within tolerance) with lp.ErrNegativeRHS.
//   - Stage 3: assemble the tableau through CombineRight / CombineTop.
//
// Errors:
//   - lp.ErrBadOption; matrix.ErrNilMatrix / matrix.ErrDimensionMismatch;
//   - lp.ErrNegativeRHS (an lp.ErrApplicationProblem).
func New(p lp.Problem, opts Options) (*Solver, error) {
	// Stage 1: validation
	cmp, err := opts.validate()
	if err != nil {
		return nil, fmt.Errorf("simplex.New: %w", err)
	}
	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("simplex.New: %w", err)
	}
	n, m := p.NumVariables(), p.NumConstraints()

	// Stage 2: feasibility of the slack basis
	for i, b := range matrix.Values(p.RHS) {
		if cmp.IsNegative(b) {
			return nil, fmt.Errorf("simplex.New: b[%d] = %g: %w", i, b, lp.ErrNegativeRHS)
		}
	}

	// Stage 3: tableau
	I, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, fmt.Errorf("simplex.New: %w", err)
	}
	body, err := matrix.CombineRight(p.Constraints, I)
	if err != nil {
		return nil, fmt.Errorf("simplex.New: %w", err)
	}
	if body, err = matrix.CombineRightVector(body, p.RHS); err != nil {
		return nil, fmt.Errorf("simplex.New: %w", err)
	}
	tableau, err := matrix.CombineTop(body, matrix.ScaleVector(p.Objective, -p.Mode.Factor()))
	if err != nil {
		return nil, fmt.Errorf("simplex.New: %w", err)
	}

	s := &Solver{
		mode:    p.Mode,
		cmp:     cmp,
		opts:    opts,
		tableau: tableau,
		basis:   make([]int, m),
		n:       n,
		m:       m,
		state:   lp.Iterating,
	}
	s.costs, _ = tableau.Row(0)                // row 0 always exists
	s.rhs, _ = tableau.Col(tableau.Cols() - 1) // last column always exists
	for r := range s.basis {
		s.basis[r] = n + r
	}

	return s, nil
}

// Iteration performs one simplex step.
//
// Returns:
//   - (true, nil) when the tableau is optimal (also on every later call);
//   - (false, nil) after a pivot;
//   - (false, lp.ErrUnbounded) when no row limits the entering column (also
//     on every later call).
func (s *Solver) Iteration() (bool, error) {
	switch s.state {
	case lp.Optimal:
		return true, nil
	case lp.Unbounded:
		return false, fmt.Errorf("simplex.Iteration: %w", lp.ErrUnbounded)
	}

	enters := s.enteringColumn()
	if enters < 0 {
		s.state = lp.Optimal

		return true, nil
	}
	leaves := s.leavingRow(enters)
	if leaves < 0 {
		s.state = lp.Unbounded

		return false, fmt.Errorf("simplex.Iteration: column %d: %w", enters, lp.ErrUnbounded)
	}
	if err := s.pivot(leaves, enters); err != nil {
		return false, fmt.Errorf("simplex.Iteration: %w", err)
	}
	s.basis[leaves-1] = enters
	s.iterations++

	return false, nil
}

// better reports whether candidate key v replaces the incumbent best under
// "smaller is better" and the tie-break strategy.
func (s *Solver) better(v, best float64) bool {
	if s.cmp.Less(v, best) {
		return true
	}

	return s.opts.TieBreak == PreferHighestIndex && s.cmp.Equal(v, best)
}

// enteringColumn returns the column with the most negative reduced cost over
// structural and slack columns, or −1 when none is negative.
func (s *Solver) enteringColumn() int {
	var (
		best  = -1
		bestV float64
		v     float64
	)
	for j := 0; j < s.n+s.m; j++ {
		v, _ = s.costs.At(j)
		if !s.cmp.IsNegative(v) {
			continue
		}
		if best < 0 || s.better(v, bestV) {
			best, bestV = j, min(v, bestV)
		}
	}

	return best
}

// leavingRow returns the tableau row (1..m) with the minimum non-negative
// ratio rhs/a over positive entries a of column enters, or −1.
func (s *Solver) leavingRow(enters int) int {
	var (
		best  = -1
		bestR float64
		a, b  float64
		ratio float64
	)
	col, _ := s.tableau.Col(enters) // enters < Cols by construction
	for r := 1; r <= s.m; r++ {
		a, _ = col.At(r)
		if !s.cmp.IsPositive(a) {
			continue
		}
		b, _ = s.rhs.At(r)
		ratio = b / a
		if s.cmp.IsNegative(ratio) {
			continue
		}
		if best < 0 || s.better(ratio, bestR) {
			best, bestR = r, ratio
		}
	}

	return best
}

// pivot normalizes row leaves and eliminates column enters from all other rows.
func (s *Solver) pivot(leaves, enters int) error {
	pivotRow, err := s.tableau.Row(leaves)
	if err != nil {
		return err
	}
	pv, _ := pivotRow.At(enters)
	if err = matrix.ScaleInPlace(pivotRow, 1/pv); err != nil {
		return err
	}
	_ = pivotRow.Set(enters, 1) // exact unit pivot

	var (
		row *matrix.RowVector
		f   float64
	)
	for r := 0; r <= s.m; r++ {
		if r == leaves {
			continue
		}
		row, _ = s.tableau.Row(r)
		if f, _ = row.At(enters); f == 0 {
			continue
		}
		if err = matrix.AddScaled(row, pivotRow, -f); err != nil {
			return err
		}
		_ = row.Set(enters, 0) // exact elimination
	}

	return nil
}

// Solve iterates until the tableau is optimal.
// Errors: lp.ErrUnbounded; lp.ErrIterationLimit after Options.MaxIterations calls.
func (s *Solver) Solve() error {
	if err := lp.Drive(s, s.opts.MaxIterations, nil); err != nil {
		return fmt.Errorf("simplex.Solve: %w", err)
	}

	return nil
}

// ObjectiveFunction returns the current basic solution over all n+m
// structural and slack columns: basic variables read their value from the
// rhs column, non-basic ones are zero.
func (s *Solver) ObjectiveFunction() *matrix.ColumnVector {
	x := matrix.VectorOf(make([]float64, s.n+s.m)...)
	var v float64
	for r, j := range s.basis {
		v, _ = s.rhs.At(r + 1)
		_ = x.Set(j, v)
	}

	return x
}

// Solution returns the structural coordinates of the current basic solution.
func (s *Solver) Solution() *matrix.ColumnVector {
	head, _ := matrix.NewSlice(s.ObjectiveFunction(), 0, s.n) // n ≤ n+m

	return matrix.CopyVector(head)
}

// ObjectiveFunctionValue returns c·x at the current vertex in the caller's sign.
func (s *Solver) ObjectiveFunctionValue() float64 {
	v, _ := s.rhs.At(0)

	return s.mode.Factor() * v
}

// State returns the lifecycle position.
func (s *Solver) State() lp.State { return s.state }

// Iterations returns the number of pivots performed.
func (s *Solver) Iterations() int { return s.iterations }

// Basis returns a copy of the basic column index of every constraint row.
func (s *Solver) Basis() []int { return append([]int(nil), s.basis...) }

// Tableau returns a deep copy of the current tableau.
func (s *Solver) Tableau() *matrix.Dense {
	t, _ := matrix.SubMatrix(s.tableau, 0, 0, s.tableau.Rows(), s.tableau.Cols())

	return t
}
