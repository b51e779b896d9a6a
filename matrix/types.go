// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interfaces.
// This file intentionally contains ONLY the public Matrix and Vector
// capabilities. Concrete storage lives in impl_dense.go and impl_vector.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix (after transpose resolution).
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix (after transpose resolution).
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector is the capability shared by every one-dimensional view.
//
// RowVector and ColumnVector map a position onto one line of a backing
// *Dense; Slice maps a position onto a sub-range of another Vector. None of
// them owns data: writes go straight to the backing buffer.
type Vector interface {
	// Len returns the number of addressable positions.
	Len() int

	// At returns the value at position i or ErrOutOfRange.
	At(i int) (float64, error)

	// Set writes v at position i or returns ErrOutOfRange / ErrNaNInf.
	Set(i int, v float64) error
}
