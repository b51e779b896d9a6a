// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and views.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/tolerance"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the materializing path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// mustAt reads m(i,j) or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// mustCmp returns a comparator with the given epsilon or fails the test.
func mustCmp(tb testing.TB, eps float64) tolerance.Comparator {
	tb.Helper()
	cmp, err := tolerance.New(eps)
	require.NoError(tb, err)

	return cmp
}

// rowsOf reads the logical contents of m as nested slices.
func rowsOf(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	var i, j int
	for i = range out {
		out[i] = make([]float64, m.Cols())
		for j = range out[i] {
			out[i][j] = mustAt(tb, m, i, j)
		}
	}

	return out
}

// requireClose asserts element-wise |a-b| ≤ tol.
func requireClose(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(want, got, tol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want\n%v\ngot\n%v", want, got)
}
