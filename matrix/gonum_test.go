// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	g := matrix.ToGonum(a.T())
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 6.0, g.At(2, 1))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, a.T()), rowsOf(t, back))

	// conversions copy
	g.Set(0, 0, 100)
	require.Equal(t, 1.0, mustAt(t, a, 0, 0))
}

func TestGonumEdges(t *testing.T) {
	require.True(t, matrix.ToGonum(nil).IsEmpty())

	v := matrix.VectorToGonum(matrix.VectorOf(1, 2))
	require.Equal(t, 2, v.Len())
	require.Equal(t, 2.0, v.AtVec(1))
	require.True(t, matrix.VectorToGonum(matrix.VectorOf()).IsEmpty())

	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := mat.NewDense(1, 1, []float64{math.NaN()})
	_, err = matrix.FromGonum(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := matrix.FromGonum(bad, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, loose, 0, 0)))
}
