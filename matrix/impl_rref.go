// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination and its consumers.
//
// Purpose:
//   - toReducedRowEchelonForm brings the leading pivots×pivots block of an
//     augmented matrix to the identity with partial pivoting, carrying every
//     row operation across the remaining columns.
//   - SolveLinear, Inverse, PseudoInverse and NullSpaceProjector are built on it.
//
// Numerical policy:
//   - All zero tests go through a tolerance.Comparator supplied by the caller.
//   - A pivot whose magnitude is within ε of zero is singular; the running
//     product of the pivots is checked the same way.
//   - Eliminated entries and normalized pivots are written as exact 0 and 1.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpsolve/tolerance"
)

// toReducedRowEchelonForm reduces m in place so that m[0:pivots, 0:pivots]
// becomes the identity.
//
// Implementation:
//   - Stage 1: for pivot column i, choose the row in [i, rows) with the largest
//     |m[row,i]| and swap it into row i.
//   - Stage 2: reject |pivot| ≤ ε and a running pivot product ≤ ε (ErrSingular).
//   - Stage 3: normalize row i by the pivot.
//   - Stage 4: eliminate column i from every other row, above and below.
//
// Errors: ErrDimensionMismatch when pivots exceeds Rows or Cols; ErrSingular.
// Complexity: O(pivots * rows * cols).
func toReducedRowEchelonForm(m *Dense, pivots int, cmp tolerance.Comparator) error {
	rows, cols := m.Rows(), m.Cols()
	if pivots < 0 || pivots > rows || pivots > cols {
		return matrixErrorf(opRREF, fmt.Errorf("%d pivots in %dx%d: %w", pivots, rows, cols, ErrDimensionMismatch))
	}

	var (
		i, r, j   int
		best      int
		pivot     float64
		product   = 1.0
		factor    float64
		magnitude float64
	)
	for i = 0; i < pivots; i++ {
		// Stage 1: partial pivoting
		best = i
		magnitude = math.Abs(m.at(i, i))
		for r = i + 1; r < rows; r++ {
			if v := math.Abs(m.at(r, i)); v > magnitude {
				best, magnitude = r, v
			}
		}
		m.swapRows(i, best)

		// Stage 2: singularity guards
		pivot = m.at(i, i)
		if cmp.IsZero(pivot) {
			return matrixErrorf(opRREF, fmt.Errorf("pivot %d is %g: %w", i, pivot, ErrSingular))
		}
		product *= pivot
		if cmp.IsZero(product) {
			return matrixErrorf(opRREF, fmt.Errorf("pivot product after column %d is %g: %w", i, product, ErrSingular))
		}

		// Stage 3: normalize
		for j = i + 1; j < cols; j++ {
			m.set(i, j, m.at(i, j)/pivot)
		}
		m.set(i, i, 1.0)

		// Stage 4: eliminate
		for r = 0; r < rows; r++ {
			if r == i {
				continue
			}
			factor = m.at(r, i)
			if factor == 0 {
				continue
			}
			for j = i + 1; j < cols; j++ {
				m.set(r, j, m.at(r, j)-factor*m.at(i, j))
			}
			m.set(r, i, 0.0)
		}
	}

	return nil
}

// SolveLinear returns x with A·x = b by Gauss-Jordan elimination of [A | b].
//
// Errors:
//   - ErrNilMatrix; ErrNonSquare for a non-square A;
//   - ErrDimensionMismatch when b.Len != A.Rows; ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func SolveLinear(m Matrix, b Vector, cmp tolerance.Comparator) (*ColumnVector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolveLinear, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolveLinear, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolveLinear, err)
	}
	n := m.Rows()
	aug, err := CombineRightVector(m, b)
	if err != nil {
		return nil, matrixErrorf(opSolveLinear, err)
	}
	if err = toReducedRowEchelonForm(aug, n, cmp); err != nil {
		return nil, matrixErrorf(opSolveLinear, err)
	}
	x, _ := aug.Col(n) // n < n+1 columns

	return CopyVector(x), nil
}

// Inverse returns A⁻¹ by Gauss-Jordan elimination of [A | I].
//
// Errors:
//   - ErrNilMatrix; ErrNonSquare for a non-square A; ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m Matrix, cmp tolerance.Comparator) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	I, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := CombineRight(m, I)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = toReducedRowEchelonForm(aug, n, cmp); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return SubMatrix(aug, 0, n, n, 2*n)
}

// PseudoInverse returns the right Moore-Penrose inverse A⁺ = Aᵀ(AAᵀ)⁻¹ of a
// full row-rank A. Aᵀ is addressed through a view, never copied.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when Rows > Cols;
//   - ErrSingular when A is rank deficient (AAᵀ singular).
//
// Complexity: O(r²c + r³).
func PseudoInverse(m Matrix, cmp tolerance.Comparator) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudo, err)
	}
	if m.Rows() > m.Cols() {
		return nil, matrixErrorf(opPseudo, fmt.Errorf("%dx%d has more rows than columns: %w",
			m.Rows(), m.Cols(), ErrDimensionMismatch))
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPseudo, err)
	}
	gram, err := Mul(dm, dm.T())
	if err != nil {
		return nil, matrixErrorf(opPseudo, err)
	}
	gramInv, err := Inverse(gram, cmp)
	if err != nil {
		return nil, matrixErrorf(opPseudo, err)
	}
	pinv, err := Mul(dm.T(), gramInv)
	if err != nil {
		return nil, matrixErrorf(opPseudo, err)
	}

	return pinv, nil
}

// NullSpaceProjector returns P = I − A⁺A, the orthogonal projector onto the
// null space of A (P·v satisfies A·(P·v) = 0).
// Errors: as PseudoInverse.
// Complexity: O(r²c + rc²).
func NullSpaceProjector(m Matrix, cmp tolerance.Comparator) (*Dense, error) {
	pinv, err := PseudoInverse(m, cmp)
	if err != nil {
		return nil, matrixErrorf(opProjector, err)
	}
	pa, err := Mul(pinv, m)
	if err != nil {
		return nil, matrixErrorf(opProjector, err)
	}
	I, err := NewIdentity(m.Cols())
	if err != nil {
		return nil, matrixErrorf(opProjector, err)
	}

	return Sub(I, pa)
}
