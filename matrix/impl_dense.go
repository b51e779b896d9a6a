// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy views: T() flips addressing over the same buffer, Row/Col
//     expose one line as a Vector. Mutations through any view reach the base.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); T/Row/Col: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxRow  = "Row"  // view constructor tag
	ctxCol  = "Col"  // view constructor tag
	ctxFill = "Fill" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix with a logical-transpose flag.
//   - r,c hold the STORAGE dimensions; Rows/Cols resolve the transpose.
//   - data is a flat buffer of length r*c in row-major storage order.
//   - transposed flips logical (i,j) to storage (j,i).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//
// Several *Dense values may share one data slice (see T); the contract is
// single-writer, caller-serialized access.
type Dense struct {
	r, c           int       // storage row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	transposed     bool      // logical transpose over the same storage
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseZeroOK allocates a Dense that may be empty (0×n or n×0).
// Used internally by owning vectors so that zero-length vectors stay legal.
func newDenseZeroOK(rows, cols int) *Dense {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewDenseFrom builds a Dense from row slices (copied).
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: every row must have the length of the first one (ErrDimensionMismatch).
//   - Stage 3: copy values row by row, honoring the numeric policy.
//
// Complexity: O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFrom: %w", err)
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch)
		}
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("NewDenseFrom: %w", err)
			}
		}
	}

	return m, nil
}

// Rows returns the logical number of rows.
func (m *Dense) Rows() int {
	if m.transposed {
		return m.c
	}

	return m.r
}

// Cols returns the logical number of columns.
func (m *Dense) Cols() int {
	if m.transposed {
		return m.r
	}

	return m.c
}

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsTransposed reports whether m addresses its storage through a transpose.
func (m *Dense) IsTransposed() bool { return m.transposed }

// offset maps logical (row, col) to the storage index. No bounds check.
func (m *Dense) offset(row, col int) int {
	if m.transposed {
		return col*m.c + row
	}

	return row*m.c + col
}

// indexOf computes the storage offset for logical (row, col) or ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.Cols() {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// at is the unchecked read used by kernels after shape validation.
func (m *Dense) at(row, col int) float64 { return m.data[m.offset(row, col)] }

// set is the unchecked write used by kernels after shape validation.
func (m *Dense) set(row, col int, v float64) { m.data[m.offset(row, col)] = v }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under the policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// T returns the transposed view of m. No data is copied: a Set through the
// view writes the buffer shared with m, and T().T() addresses exactly like m.
// Complexity: O(1).
func (m *Dense) T() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           m.data, // shared storage
		transposed:     !m.transposed,
		validateNaNInf: m.validateNaNInf,
	}
}

// Row returns row i as an aliasing RowVector.
// Errors: ErrOutOfRange when i is not a valid row.
func (m *Dense) Row(i int) (*RowVector, error) {
	if i < 0 || i >= m.Rows() {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return &RowVector{base: m, row: i}, nil
}

// Col returns column j as an aliasing ColumnVector.
// Errors: ErrOutOfRange when j is not a valid column.
func (m *Dense) Col(j int) (*ColumnVector, error) {
	if j < 0 || j >= m.Cols() {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return &ColumnVector{base: m, col: j}, nil
}

// Clone returns a deep, non-transposed copy with the same logical contents
// and the same numeric policy. The copy never aliases m.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.copyDense() }

// copyDense is Clone with a concrete return type.
func (m *Dense) copyDense() *Dense {
	rows, cols := m.Rows(), m.Cols()
	out := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
	if !m.transposed {
		copy(out.data, m.data)

		return out
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = m.at(i, j)
		}
	}

	return out
}

// Fill sets every element to v (honoring the numeric policy).
func (m *Dense) Fill(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxFill, 0, 0, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}

// swapRows exchanges logical rows a and b in place.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	var j int
	cols := m.Cols()
	for j = 0; j < cols; j++ {
		oa, ob := m.offset(a, j), m.offset(b, j)
		m.data[oa], m.data[ob] = m.data[ob], m.data[oa]
	}
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	rows, cols := m.Rows(), m.Cols()
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			b.WriteString(fmt.Sprintf("%g", m.at(i, j)))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, otherwise a materialized
// copy read through At. Kernels call it once and then use unchecked access.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDenseZeroOK(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
