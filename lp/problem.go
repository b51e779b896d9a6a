// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"

	"github.com/katalvlaran/lpsolve/matrix"
)

// Problem is a linear program in inequality form A·x ≤ b, x ≥ 0.
type Problem struct {
	Mode        Mode
	Objective   matrix.Vector // c, length n
	Constraints matrix.Matrix // A, m×n
	RHS         matrix.Vector // b, length m
}

// NewProblem builds a Problem from plain slices.
// Errors: as NewDenseFrom and Validate.
func NewProblem(mode Mode, objective []float64, constraints [][]float64, rhs []float64) (Problem, error) {
	a, err := matrix.NewDenseFrom(constraints)
	if err != nil {
		return Problem{}, fmt.Errorf("NewProblem: %w", err)
	}
	p := Problem{
		Mode:        mode,
		Objective:   matrix.VectorOf(objective...),
		Constraints: a,
		RHS:         matrix.VectorOf(rhs...),
	}
	if err = p.Validate(); err != nil {
		return Problem{}, fmt.Errorf("NewProblem: %w", err)
	}

	return p, nil
}

// Validate checks presence and shape agreement of c, A and b.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func (p Problem) Validate() error {
	if err := matrix.ValidateNotNil(p.Constraints); err != nil {
		return fmt.Errorf("Problem.Validate: constraints: %w", err)
	}
	if err := matrix.ValidateVecLen(p.Objective, p.Constraints.Cols()); err != nil {
		return fmt.Errorf("Problem.Validate: objective length vs %d variables: %w", p.Constraints.Cols(), err)
	}
	if err := matrix.ValidateVecLen(p.RHS, p.Constraints.Rows()); err != nil {
		return fmt.Errorf("Problem.Validate: rhs length vs %d constraints: %w", p.Constraints.Rows(), err)
	}

	return nil
}

// NumVariables returns n, the number of structural variables.
func (p Problem) NumVariables() int { return p.Constraints.Cols() }

// NumConstraints returns m, the number of inequality rows.
func (p Problem) NumConstraints() int { return p.Constraints.Rows() }

// Slack returns s = b − A·x for a structural point x.
// Errors: matrix.ErrDimensionMismatch when x.Len != n.
func (p Problem) Slack(x matrix.Vector) (*matrix.ColumnVector, error) {
	ax, err := matrix.MatVec(p.Constraints, x)
	if err != nil {
		return nil, fmt.Errorf("Problem.Slack: %w", err)
	}
	s, err := matrix.Diff(p.RHS, ax)
	if err != nil {
		return nil, fmt.Errorf("Problem.Slack: %w", err)
	}

	return s, nil
}

// Evaluate returns c·x over the first n entries of x, in the caller's sign.
// x may carry trailing slack coordinates.
// Errors: matrix.ErrDimensionMismatch when x is shorter than n.
func (p Problem) Evaluate(x matrix.Vector) (float64, error) {
	n := p.NumVariables()
	if x == nil || x.Len() < n {
		return 0, fmt.Errorf("Problem.Evaluate: need %d coordinates: %w", n, matrix.ErrDimensionMismatch)
	}
	head, err := matrix.NewSlice(x, 0, n)
	if err != nil {
		return 0, fmt.Errorf("Problem.Evaluate: %w", err)
	}

	return matrix.Dot(p.Objective, head)
}

// InternalObjective returns factor·c: the objective in maximize form.
func (p Problem) InternalObjective() *matrix.ColumnVector {
	return matrix.ScaleVector(p.Objective, p.Mode.Factor())
}
