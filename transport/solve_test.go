// SPDX-License-Identifier: MIT
package transport_test

import (
	"testing"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func classic(t *testing.T) transport.Problem {
	t.Helper()
	costs, err := matrix.NewDenseFrom([][]float64{
		{19, 30, 50, 10},
		{70, 30, 40, 60},
		{40, 8, 70, 20},
	})
	require.NoError(t, err)

	return transport.Problem{Costs: costs, Supply: []float64{7, 9, 18}, Demand: []float64{5, 8, 7, 14}}
}

func allocation(t *testing.T, plan transport.Plan) [][]float64 {
	t.Helper()
	out := make([][]float64, plan.Allocation.Rows())
	for i := range out {
		row, err := plan.Allocation.Row(i)
		require.NoError(t, err)
		out[i] = matrix.Values(row)
	}

	return out
}

func TestSolve_Classic(t *testing.T) {
	tests := []struct {
		method    transport.Method
		wantCost  float64
		wantAlloc [][]float64
		wantFirst transport.Cell
	}{
		{transport.NorthWest, 1015, [][]float64{{5, 2, 0, 0}, {0, 6, 3, 0}, {0, 0, 4, 14}}, transport.Cell{Row: 0, Col: 0}},
		{transport.Vogel, 779, [][]float64{{5, 0, 0, 2}, {0, 0, 7, 2}, {0, 8, 0, 10}}, transport.Cell{Row: 2, Col: 1}},
		{transport.Russell, 807, [][]float64{{5, 2, 0, 0}, {0, 2, 7, 0}, {0, 4, 0, 14}}, transport.Cell{Row: 2, Col: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.method.String(), func(t *testing.T) {
			plan, err := transport.Solve(classic(t), tc.method, eps)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantCost, plan.Cost, eps)
			assert.Equal(t, tc.wantAlloc, allocation(t, plan))
			require.Len(t, plan.Basis, 6) // m+n−1
			assert.Equal(t, tc.wantFirst, plan.Basis[0])
		})
	}
}

func TestSolve_PlanIsFeasible(t *testing.T) {
	p := classic(t)
	for _, m := range transport.Methods() {
		plan, err := transport.Solve(p, m, eps)
		require.NoError(t, err)

		for i, want := range p.Supply {
			row, err := plan.Allocation.Row(i)
			require.NoError(t, err)
			assert.InDelta(t, want, matrix.Sum(row), eps, "%v supply %d", m, i)
		}
		for j, want := range p.Demand {
			col, err := plan.Allocation.Col(j)
			require.NoError(t, err)
			assert.InDelta(t, want, matrix.Sum(col), eps, "%v demand %d", m, j)
		}
	}
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	p := classic(t)
	_, err := transport.Solve(p, transport.Vogel, eps)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 9, 18}, p.Supply)
	assert.Equal(t, []float64{5, 8, 7, 14}, p.Demand)
}

func TestSolve_Errors(t *testing.T) {
	p := classic(t)

	unbalanced := p
	unbalanced.Supply = []float64{7, 9, 19}
	_, err := transport.Solve(unbalanced, transport.NorthWest, eps)
	require.ErrorIs(t, err, transport.ErrUnbalanced)

	negative := p
	negative.Supply = []float64{-1, 17, 18}
	_, err = transport.Solve(negative, transport.NorthWest, eps)
	require.ErrorIs(t, err, transport.ErrNegative)

	short := p
	short.Demand = []float64{5, 8, 21}
	_, err = transport.Solve(short, transport.NorthWest, eps)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = transport.Solve(transport.Problem{}, transport.NorthWest, eps)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = transport.Solve(p, transport.Method(9), eps)
	require.ErrorIs(t, err, transport.ErrUnknownMethod)
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]transport.Method{
		"nw": transport.NorthWest, "NorthWest": transport.NorthWest,
		"vogel": transport.Vogel, " VAM ": transport.Vogel,
		"russell": transport.Russell,
	} {
		got, err := transport.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := transport.ParseMethod("simplex")
	require.ErrorIs(t, err, transport.ErrUnknownMethod)
}
