// SPDX-License-Identifier: MIT

// Package matrix - vector views and vector kernels.
//
// Purpose:
//   - RowVector / ColumnVector: index-mapping views onto one line of a *Dense.
//     Position i maps to (row, i) or (i, col) of the base, so transposition of
//     the base is honored automatically.
//   - Slice: position i maps to parent position start+i.
//   - Owning vectors are ordinary views over a private 1×n or n×1 Dense.
//
// None of the view types copy data. Kernels that produce new vectors
// (ScaleVector, Diff, Concat, CopyVector) always return an owning ColumnVector.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Compile-time assertions: all adapters satisfy Vector.
var (
	_ Vector = (*RowVector)(nil)
	_ Vector = (*ColumnVector)(nil)
	_ Vector = (*Slice)(nil)
)

// vectorErrorf wraps an error with a view name and position.
func vectorErrorf(view, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", view, method, i, err)
}

// ---------- RowVector ----------

// RowVector addresses row `row` of base: position i ↦ base(row, i).
type RowVector struct {
	base *Dense
	row  int
}

// NewRowVector returns an owning zero RowVector of length n (backing 1×n).
// Errors: ErrInvalidDimensions when n < 0.
func NewRowVector(n int) (*RowVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewRowVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &RowVector{base: newDenseZeroOK(1, n), row: 0}, nil
}

// Len returns the logical column count of the base.
func (v *RowVector) Len() int { return v.base.Cols() }

// At returns base(row, i).
func (v *RowVector) At(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, vectorErrorf("RowVector", ctxAt, i, ErrOutOfRange)
	}

	return v.base.at(v.row, i), nil
}

// Set writes base(row, i).
func (v *RowVector) Set(i int, x float64) error {
	if i < 0 || i >= v.Len() {
		return vectorErrorf("RowVector", ctxSet, i, ErrOutOfRange)
	}

	return v.base.Set(v.row, i, x)
}

// Base returns the backing matrix and the row index this view addresses.
func (v *RowVector) Base() (*Dense, int) { return v.base, v.row }

// String renders the values space-separated.
func (v *RowVector) String() string { return formatVector(v, " ") }

// ---------- ColumnVector ----------

// ColumnVector addresses column `col` of base: position i ↦ base(i, col).
type ColumnVector struct {
	base *Dense
	col  int
}

// NewColumnVector returns an owning zero ColumnVector of length n (backing n×1).
// Errors: ErrInvalidDimensions when n < 0.
func NewColumnVector(n int) (*ColumnVector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewColumnVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &ColumnVector{base: newDenseZeroOK(n, 1), col: 0}, nil
}

// VectorOf returns an owning ColumnVector holding a copy of values.
func VectorOf(values ...float64) *ColumnVector {
	out := &ColumnVector{base: newDenseZeroOK(len(values), 1), col: 0}
	copy(out.base.data, values)

	return out
}

// Len returns the logical row count of the base.
func (v *ColumnVector) Len() int { return v.base.Rows() }

// At returns base(i, col).
func (v *ColumnVector) At(i int) (float64, error) {
	if i < 0 || i >= v.Len() {
		return 0, vectorErrorf("ColumnVector", ctxAt, i, ErrOutOfRange)
	}

	return v.base.at(i, v.col), nil
}

// Set writes base(i, col).
func (v *ColumnVector) Set(i int, x float64) error {
	if i < 0 || i >= v.Len() {
		return vectorErrorf("ColumnVector", ctxSet, i, ErrOutOfRange)
	}

	return v.base.Set(i, v.col, x)
}

// Base returns the backing matrix and the column index this view addresses.
func (v *ColumnVector) Base() (*Dense, int) { return v.base, v.col }

// String renders the values one per line.
func (v *ColumnVector) String() string { return formatVector(v, "\n") }

// ---------- Slice ----------

// Slice is the sub-range [start, stop) of a parent Vector.
type Slice struct {
	parent      Vector
	start, stop int
}

// NewSlice returns the view parent[start:stop].
// Errors: ErrNilMatrix for a nil parent; ErrBadShape unless 0 ≤ start ≤ stop ≤ parent.Len().
func NewSlice(parent Vector, start, stop int) (*Slice, error) {
	if err := ValidateVectorNotNil(parent); err != nil {
		return nil, fmt.Errorf("NewSlice: %w", err)
	}
	if start < 0 || start > stop || stop > parent.Len() {
		return nil, fmt.Errorf("NewSlice(%d,%d) of %d: %w", start, stop, parent.Len(), ErrBadShape)
	}

	return &Slice{parent: parent, start: start, stop: stop}, nil
}

// Len returns stop - start.
func (s *Slice) Len() int { return s.stop - s.start }

// At returns parent(start + i).
func (s *Slice) At(i int) (float64, error) {
	if i < 0 || i >= s.Len() {
		return 0, vectorErrorf("Slice", ctxAt, i, ErrOutOfRange)
	}

	return s.parent.At(s.start + i)
}

// Set writes parent(start + i).
func (s *Slice) Set(i int, x float64) error {
	if i < 0 || i >= s.Len() {
		return vectorErrorf("Slice", ctxSet, i, ErrOutOfRange)
	}

	return s.parent.Set(s.start+i, x)
}

// String renders the values space-separated.
func (s *Slice) String() string { return formatVector(s, " ") }

// ---------- vector kernels ----------

// formatVector joins %g-formatted values with sep.
func formatVector(v Vector, sep string) string {
	parts := make([]string, v.Len())
	for i := range parts {
		x, _ := v.At(i) // i < Len by construction
		parts[i] = fmt.Sprintf("%g", x)
	}

	return strings.Join(parts, sep)
}

// Values copies the contents of v into a fresh slice.
// Complexity: O(n).
func Values(v Vector) []float64 {
	if isNil(v) {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i], _ = v.At(i) // i < Len by construction
	}

	return out
}

// CopyVector returns an owning copy of v.
func CopyVector(v Vector) *ColumnVector { return VectorOf(Values(v)...) }

// Dot returns Σ a_i·b_i.
// Errors: ErrNilMatrix, ErrDimensionMismatch (lengths differ).
// Complexity: O(n).
func Dot(a, b Vector) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	var (
		i      int
		acc    float64
		av, bv float64
	)
	for i = 0; i < a.Len(); i++ {
		av, _ = a.At(i)
		bv, _ = b.At(i)
		acc += av * bv
	}

	return acc, nil
}

// Norm2 returns the Euclidean norm ‖v‖₂.
func Norm2(v Vector) float64 {
	var acc float64
	for _, x := range Values(v) {
		acc += x * x
	}

	return math.Sqrt(acc)
}

// Sum returns Σ v_i.
func Sum(v Vector) float64 {
	var acc float64
	for _, x := range Values(v) {
		acc += x
	}

	return acc
}

// ScaleVector returns a new owning vector f·v; v is not mutated.
func ScaleVector(v Vector, f float64) *ColumnVector {
	vals := Values(v)
	for i := range vals {
		vals[i] *= f
	}

	return VectorOf(vals...)
}

// ScaleInPlace multiplies every element of v by f, writing through the view.
// Errors: ErrNaNInf when the product leaves the numeric policy.
func ScaleInPlace(v Vector, f float64) error {
	var (
		i int
		x float64
	)
	for i = 0; i < v.Len(); i++ {
		x, _ = v.At(i)
		if err := v.Set(i, x*f); err != nil {
			return matrixErrorf(opScale, err)
		}
	}

	return nil
}

// AddScaled performs dst_i += alpha·src_i in place (axpy).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n).
func AddScaled(dst, src Vector, alpha float64) error {
	if err := ValidateSameLen(dst, src); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	var (
		i      int
		dv, sv float64
	)
	for i = 0; i < dst.Len(); i++ {
		sv, _ = src.At(i)
		if sv == 0 {
			continue
		}
		dv, _ = dst.At(i)
		if err := dst.Set(i, dv+alpha*sv); err != nil {
			return matrixErrorf(opAddScaled, err)
		}
	}

	return nil
}

// Diff returns a new owning vector a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Diff(a, b Vector) (*ColumnVector, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opDiff, err)
	}
	out := CopyVector(a)
	if err := AddScaled(out, b, -1); err != nil {
		return nil, matrixErrorf(opDiff, err)
	}

	return out, nil
}

// Concat returns a new owning vector [a..., b...].
func Concat(a, b Vector) *ColumnVector { return VectorOf(append(Values(a), Values(b)...)...) }

// FillVector sets every position of v to x.
func FillVector(v Vector, x float64) error {
	for i := 0; i < v.Len(); i++ {
		if err := v.Set(i, x); err != nil {
			return matrixErrorf(ctxFill, err)
		}
	}

	return nil
}
