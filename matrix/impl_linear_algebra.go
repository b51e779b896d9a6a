// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector product, transpose, and scalar scaling. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel accepts the Matrix interface. *Dense operands (including
//     transposed views) are used directly; foreign implementations are
//     materialized once through At and then processed on the same path.
//   - Results are always freshly allocated, non-transposed *Dense values.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opDot          = "Dot"
	opDiff         = "Diff"
	opAddScaled    = "AddScaled"
	opAllClose     = "AllClose"
	opIdentity     = "NewIdentity"
	opDiagonal     = "NewDiagonal"
	opCombineRight = "CombineRight"
	opCombineTop   = "CombineTop"
	opAbsorb       = "Absorb"
	opSubMatrix    = "SubMatrix"
	opRREF         = "ReducedRowEchelonForm"
	opSolveLinear  = "SolveLinear"
	opInverse      = "Inverse"
	opPseudo       = "PseudoInverse"
	opProjector    = "NullSpaceProjector"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: resolve both operands to *Dense and run a fixed i→j loop.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseZeroOK(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = da.at(i, j) + sign*db.at(i, j)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs the standard O(n³) product C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop order with zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseZeroOK(aRows, bCols)
	var (
		i, j, k    int
		av         float64
		rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.at(i, k)
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.at(k, j)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x and returns y as an owning ColumnVector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (x.Len != m.Cols).
//
// Complexity: O(r*c).
func MatVec(m Matrix, x Vector) (*ColumnVector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	xs := Values(x)
	y := VectorOf(make([]float64, rows)...)
	var (
		i, j int
		acc  float64
	)
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			if xs[j] != 0 {
				acc += dm.at(i, j) * xs[j]
			}
		}
		y.base.data[i] = acc
	}

	return y, nil
}

// Transpose returns a new materialized matrix mᵀ. Use (*Dense).T for a
// zero-copy aliasing view instead.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return dm.T().copyDense(), nil
}

// Scale returns α·m as a new matrix.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite α).
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.copyDense()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ tol for identical shapes.
// Returns (true,nil) if every element satisfies the relation.
//
// Errors:
//   - ErrNaNInf for a non-finite tol; ErrNilMatrix; ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)

	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if math.Abs(da.at(i, j)-db.at(i, j)) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
