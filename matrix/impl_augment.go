// SPDX-License-Identifier: MIT

// Package matrix - augmented matrices and block extraction.
//
// Purpose:
//   - Absorb copies a block into a target at an offset and is the only place
//     that decides whether a target "can absorb" an operand.
//   - CombineRight / CombineRightVector / CombineTop build the augmented
//     layouts used by the solvers ([A | I], [A | I | b], objective row on top).
//   - SubMatrix copies a rectangular window out.
//
// Alignment policy (fixed, documented):
//   - CombineRight places the right operand BOTTOM-aligned when it is shorter
//     than the left one (room is left on top for an objective row).
//   - CombineTop places the new row LEFT-aligned when it is narrower.

package matrix

import "fmt"

// Absorb copies src into dst with src(0,0) landing on dst(r0,c0).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when dst cannot hold src at the offset.
//
// Complexity: O(src.Rows*src.Cols).
func Absorb(dst *Dense, src Matrix, r0, c0 int) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opAbsorb, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAbsorb, err)
	}
	if r0 < 0 || c0 < 0 || r0+src.Rows() > dst.Rows() || c0+src.Cols() > dst.Cols() {
		return matrixErrorf(opAbsorb, fmt.Errorf("%dx%d cannot absorb %dx%d at (%d,%d): %w",
			dst.Rows(), dst.Cols(), src.Rows(), src.Cols(), r0, c0, ErrDimensionMismatch))
	}
	ds, err := asDense(src)
	if err != nil {
		return matrixErrorf(opAbsorb, err)
	}
	var i, j int
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			dst.set(r0+i, c0+j, ds.at(i, j))
		}
	}

	return nil
}

// absorbVector writes v into dst starting at (r0,c0), along a row when asRow
// is true and along a column otherwise.
func absorbVector(dst *Dense, v Vector, r0, c0 int, asRow bool) error {
	n := v.Len()
	if r0 < 0 || c0 < 0 ||
		(asRow && (r0 >= dst.Rows() || c0+n > dst.Cols())) ||
		(!asRow && (c0 >= dst.Cols() || r0+n > dst.Rows())) {
		kind := "column"
		if asRow {
			kind = "row"
		}
		return matrixErrorf(opAbsorb, fmt.Errorf("%dx%d cannot absorb %s vector of size %d at (%d,%d): %w",
			dst.Rows(), dst.Cols(), kind, n, r0, c0, ErrDimensionMismatch))
	}
	for i, x := range Values(v) {
		if asRow {
			dst.set(r0, c0+i, x)
		} else {
			dst.set(r0+i, c0, x)
		}
	}

	return nil
}

// CombineRight returns [a | b] with max(a.Rows, b.Rows) rows; b is bottom-aligned.
// Errors: ErrNilMatrix; ErrDimensionMismatch from Absorb.
// Complexity: O(rows*(a.Cols+b.Cols)).
func CombineRight(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	rows := max(a.Rows(), b.Rows())
	res, err := NewDense(rows, a.Cols()+b.Cols())
	if err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	if err = Absorb(res, a, 0, 0); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	if err = Absorb(res, b, rows-b.Rows(), a.Cols()); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}

	return res, nil
}

// CombineRightVector returns [a | v] with v as the new last column, bottom-aligned.
// Errors: ErrNilMatrix; ErrDimensionMismatch.
func CombineRightVector(a Matrix, v Vector) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	rows := max(a.Rows(), v.Len())
	res, err := NewDense(rows, a.Cols()+1)
	if err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	if err = Absorb(res, a, 0, 0); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}
	if err = absorbVector(res, v, rows-v.Len(), a.Cols(), false); err != nil {
		return nil, matrixErrorf(opCombineRight, err)
	}

	return res, nil
}

// CombineTop returns a with v prepended as row 0; v is left-aligned.
// Errors: ErrNilMatrix; ErrDimensionMismatch.
func CombineTop(a Matrix, v Vector) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCombineTop, err)
	}
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, matrixErrorf(opCombineTop, err)
	}
	res, err := NewDense(a.Rows()+1, max(a.Cols(), v.Len()))
	if err != nil {
		return nil, matrixErrorf(opCombineTop, err)
	}
	if err = Absorb(res, a, 1, 0); err != nil {
		return nil, matrixErrorf(opCombineTop, err)
	}
	if err = absorbVector(res, v, 0, 0, true); err != nil {
		return nil, matrixErrorf(opCombineTop, err)
	}

	return res, nil
}

// SubMatrix copies the window rows [r0,r1) × cols [c0,c1) of m.
// Errors: ErrNilMatrix; ErrBadShape for an empty or out-of-bounds window.
// Complexity: O((r1-r0)*(c1-c0)).
func SubMatrix(m Matrix, r0, c0, r1, c1 int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if r0 < 0 || c0 < 0 || r1 <= r0 || c1 <= c0 || r1 > m.Rows() || c1 > m.Cols() {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("window [%d:%d, %d:%d] of %dx%d: %w",
			r0, r1, c0, c1, m.Rows(), m.Cols(), ErrBadShape))
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	res, err := NewDense(r1-r0, c1-c0)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	res.validateNaNInf = dm.validateNaNInf
	var i, j int
	for i = r0; i < r1; i++ {
		for j = c0; j < c1; j++ {
			res.set(i-r0, j-c0, dm.at(i, j))
		}
	}

	return res, nil
}
