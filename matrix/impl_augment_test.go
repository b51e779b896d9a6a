// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestCombineRight(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := mustDense(t, [][]float64{{7}, {8}})

	c, err := matrix.CombineRight(a, b)
	require.NoError(t, err)
	// the shorter right operand is bottom-aligned
	require.Equal(t, [][]float64{{1, 2, 0}, {3, 4, 7}, {5, 6, 8}}, rowsOf(t, c))

	_, err = matrix.CombineRight(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCombineRightVectorAndTop(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 1}, {1, 3}})

	withRHS, err := matrix.CombineRightVector(a, matrix.VectorOf(4, 6))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1, 4}, {1, 3, 6}}, rowsOf(t, withRHS))

	withObjective, err := matrix.CombineTop(withRHS, matrix.VectorOf(-3, -2))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, -2, 0}, {1, 1, 4}, {1, 3, 6}}, rowsOf(t, withObjective))
}

func TestAbsorb(t *testing.T) {
	dst, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	src := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.Absorb(dst, src.T(), 1, 1))
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 1, 3}, {0, 2, 4}}, rowsOf(t, dst))

	require.ErrorIs(t, matrix.Absorb(dst, src, 2, 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Absorb(dst, src, 0, -1), matrix.ErrDimensionMismatch)
}

func TestSubMatrix(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	s, err := matrix.SubMatrix(a, 1, 1, 3, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6}, {8, 9}}, rowsOf(t, s))

	// copies, never aliases
	require.NoError(t, s.Set(0, 0, 50))
	require.Equal(t, 5.0, mustAt(t, a, 1, 1))

	for _, w := range [][4]int{{0, 0, 0, 1}, {0, 0, 4, 1}, {2, 0, 1, 1}, {-1, 0, 1, 1}} {
		_, err = matrix.SubMatrix(a, w[0], w[1], w[2], w[3])
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}
