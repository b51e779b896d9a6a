package tolerance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lpsolve/tolerance"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsBadEps ensures negative and non-finite tolerances are refused.
func TestNew_RejectsBadEps(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := tolerance.New(eps)
		require.ErrorIs(t, err, tolerance.ErrBadTolerance, "eps=%g", eps)
	}

	cmp, err := tolerance.New(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, cmp.Eps())
}

// TestCompare_Table checks the three-way result around the eps boundary.
func TestCompare_Table(t *testing.T) {
	cmp, err := tolerance.New(1e-6)
	require.NoError(t, err)

	cases := []struct {
		name string
		a, b float64
		want int
	}{
		{"equal", 1, 1, 0},
		{"inside eps above", 1 + 5e-7, 1, 0},
		{"inside eps below", 1 - 5e-7, 1, 0},
		{"on boundary", 1e-6, 0, 0},
		{"greater", 1 + 1e-3, 1, 1},
		{"less", -2, 1, -1},
		{"nan never less", math.NaN(), 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cmp.Compare(tc.a, tc.b))
		})
	}
}

// TestPredicates covers the derived helpers.
func TestPredicates(t *testing.T) {
	cmp, err := tolerance.New(1e-9)
	require.NoError(t, err)

	require.True(t, cmp.IsZero(1e-12))
	require.False(t, cmp.IsZero(1e-3))
	require.True(t, cmp.IsPositive(1e-3))
	require.False(t, cmp.IsPositive(1e-12))
	require.True(t, cmp.IsNegative(-1e-3))
	require.False(t, cmp.IsNegative(-1e-12))
	require.True(t, cmp.Less(1, 2))
	require.True(t, cmp.Equal(0.1+0.2, 0.3))
}

// TestZeroValueIsExact verifies the zero Comparator compares exactly.
func TestZeroValueIsExact(t *testing.T) {
	var cmp tolerance.Comparator
	require.Equal(t, 1, cmp.Compare(1e-300, 0))
	require.Equal(t, 0, cmp.Compare(0.5, 0.5))
}
