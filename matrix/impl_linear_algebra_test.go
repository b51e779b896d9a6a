// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, rowsOf(t, sum))

	diff, err := matrix.Sub(b, hide{a})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 18}, {27, 36}}, rowsOf(t, diff))

	_, err = matrix.Add(a, mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, rowsOf(t, c))

	// A·Aᵀ through the view equals A·Transpose(A)
	viaView, err := matrix.Mul(a, a.T())
	require.NoError(t, err)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	viaCopy, err := matrix.Mul(a, at)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, viaCopy), rowsOf(t, viaView))

	fallback, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, c), rowsOf(t, fallback))

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(a, matrix.VectorOf(1, -1))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, matrix.Values(y))

	yt, err := matrix.MatVec(a.T(), matrix.VectorOf(1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12}, matrix.Values(yt))

	_, err = matrix.MatVec(a, matrix.VectorOf(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScaleAndAllClose(t *testing.T) {
	a := mustDense(t, [][]float64{{1, -2}})
	s, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-0.5, 1}}, rowsOf(t, s))

	_, err = matrix.Scale(a, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	ok, err := matrix.AllClose(a, mustDense(t, [][]float64{{1 + 1e-12, -2}}), 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, s, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, s, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
