// SPDX-License-Identifier: MIT
// Package matrix - constructors of neutral and structured matrices.
//
// Purpose:
//   - Provide thin, intention-revealing builders used by the solvers:
//     identity blocks for slack augmentation and diagonal scaling matrices.
//   - Validation is performed here once; the returned *Dense is ready for
//     unchecked kernel access.

package matrix

import "fmt"

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n ≤ 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.set(i, i, 1.0)
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// NewDiagonal returns diag(v): an n×n matrix with v on the diagonal.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty v), ErrNaNInf.
// Complexity: O(n^2).
func NewDiagonal(v Vector) (*Dense, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := v.Len()
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i, x := range Values(v) {
		if err = D.Set(i, i, x); err != nil {
			return nil, matrixErrorf(opDiagonal, fmt.Errorf("entry %d: %w", i, err))
		}
	}

	return D, nil
}
