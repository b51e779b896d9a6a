// SPDX-License-Identifier: MIT
package affine_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lpsolve/affine"
	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbook: x+y ≤ 4, x+3y ≤ 6
func textbook(t *testing.T, mode lp.Mode, c []float64) lp.Problem {
	t.Helper()
	p, err := lp.NewProblem(mode, c, [][]float64{{1, 1}, {1, 3}}, []float64{4, 6})
	require.NoError(t, err)

	return p
}

func TestSolve_MatchesSimplex(t *testing.T) {
	for _, alpha := range []float64{0.5, 0.9} {
		for _, mode := range []lp.Mode{lp.Maximize, lp.Minimize} {
			t.Run(fmt.Sprintf("alpha=%g/%v", alpha, mode), func(t *testing.T) {
				c := []float64{3, 2}
				if mode == lp.Minimize {
					c = []float64{-3, -2}
				}
				p := textbook(t, mode, c)

				ref, err := simplex.New(p, simplex.DefaultOptions())
				require.NoError(t, err)
				require.NoError(t, ref.Solve())

				opts := affine.DefaultOptions()
				opts.Alpha = alpha
				s, err := affine.New(p, matrix.VectorOf(1, 1), opts)
				require.NoError(t, err)
				require.NoError(t, s.Solve())

				assert.Equal(t, lp.Converged, s.State())
				assert.Positive(t, s.Iterations())
				want := ref.ObjectiveFunctionValue()
				assert.InDelta(t, want, s.ObjectiveFunctionValue(), 10*opts.Tolerance*(1+math.Abs(want)))
				assert.InDeltaSlice(t, matrix.Values(ref.Solution()), matrix.Values(s.Solution()), 1e-7)
			})
		}
	}
}

// residual returns ‖A·x + s − b‖∞ for the full point (x, s).
func residual(t *testing.T, p lp.Problem, point matrix.Vector) float64 {
	t.Helper()
	head, err := matrix.NewSlice(point, 0, p.NumVariables())
	require.NoError(t, err)
	slack, err := p.Slack(head)
	require.NoError(t, err)
	tail, err := matrix.NewSlice(point, p.NumVariables(), point.Len())
	require.NoError(t, err)
	diff, err := matrix.Diff(slack, tail)
	require.NoError(t, err)

	var worst float64
	for _, v := range matrix.Values(diff) {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst
}

func TestSolve_StaysOnConstraints(t *testing.T) {
	twoPivot, err := lp.NewProblem(lp.Maximize, []float64{5, 4}, [][]float64{{6, 4}, {1, 2}}, []float64{24, 6})
	require.NoError(t, err)
	tests := []struct {
		name string
		p    lp.Problem
		want float64
	}{
		{"textbook", textbook(t, lp.Maximize, []float64{3, 2}), 12},
		{"two pivots", twoPivot, 21},
	}
	for _, tc := range tests {
		for _, alpha := range []float64{0.5, 0.9} {
			t.Run(fmt.Sprintf("%s/alpha=%g", tc.name, alpha), func(t *testing.T) {
				opts := affine.DefaultOptions()
				opts.Alpha = alpha
				s, err := affine.New(tc.p, matrix.VectorOf(1, 1), opts)
				require.NoError(t, err)
				require.NoError(t, s.Solve())

				assert.LessOrEqual(t, residual(t, tc.p, s.ObjectiveFunction()), opts.Tolerance)
				assert.InDelta(t, tc.want, s.ObjectiveFunctionValue(), 10*opts.Tolerance*(1+tc.want))
			})
		}
	}
}

func TestSolve_DegenerateVertex(t *testing.T) {
	// max x+y s.t. x ≤ 1, y ≤ 1, x+y ≤ 2: three constraints meet at (1,1)
	p, err := lp.NewProblem(lp.Maximize, []float64{1, 1}, [][]float64{{1, 0}, {0, 1}, {1, 1}}, []float64{1, 1, 2})
	require.NoError(t, err)
	for _, alpha := range []float64{0.5, 0.9} {
		for _, x0 := range [][]float64{{0.5, 0.5}, {0.2, 0.7}} {
			t.Run(fmt.Sprintf("alpha=%g/x0=%v", alpha, x0), func(t *testing.T) {
				opts := affine.DefaultOptions()
				opts.Alpha = alpha
				s, err := affine.New(p, matrix.VectorOf(x0...), opts)
				require.NoError(t, err)
				require.NoError(t, s.Solve())

				assert.Equal(t, lp.Converged, s.State())
				assert.InDelta(t, 2, s.ObjectiveFunctionValue(), 1e-7)
				assert.InDeltaSlice(t, []float64{1, 1}, matrix.Values(s.Solution()), 1e-7)
				assert.LessOrEqual(t, residual(t, p, s.ObjectiveFunction()), 1e-8)
			})
		}
	}
}

func TestIteration_SingularNormalEquations(t *testing.T) {
	// with ε = 0.1 the second pivot of G (about 0.0121) is under ε²·max G_ii
	p, err := lp.NewProblem(lp.Maximize, []float64{1, 1}, [][]float64{{1, 0}, {0, 0.001}}, []float64{100, 0.111})
	require.NoError(t, err)
	opts := affine.DefaultOptions()
	opts.Tolerance = 0.1
	s, err := affine.New(p, matrix.VectorOf(1, 1), opts)
	require.NoError(t, err)

	done, err := s.Iteration()
	require.False(t, done)
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, lp.Iterating, s.State())
	assert.Zero(t, s.Iterations())
	assert.Equal(t, []float64{1, 1}, matrix.Values(s.Solution()))
}

func TestIteration_StaysInterior(t *testing.T) {
	s, err := affine.New(textbook(t, lp.Maximize, []float64{3, 2}), matrix.VectorOf(1, 1), affine.DefaultOptions())
	require.NoError(t, err)

	prev := s.ObjectiveFunctionValue()
	for i := 0; i < 5; i++ {
		done, err := s.Iteration()
		require.NoError(t, err)
		require.False(t, done)

		point := matrix.Values(s.ObjectiveFunction())
		require.Len(t, point, 4)
		for j, v := range point {
			require.Positivef(t, v, "coordinate %d left the interior", j)
		}
		// the objective improves monotonically
		require.Greater(t, s.ObjectiveFunctionValue(), prev)
		prev = s.ObjectiveFunctionValue()
	}
	assert.Equal(t, 5, s.Iterations())
	assert.Equal(t, affine.DefaultAlpha, s.Alpha())
}

func TestIteration_TerminalIsInert(t *testing.T) {
	s, err := affine.New(textbook(t, lp.Maximize, []float64{3, 2}), matrix.VectorOf(1, 1), affine.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	before := matrix.Values(s.ObjectiveFunction())
	n := s.Iterations()
	done, err := s.Iteration()
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, before, matrix.Values(s.ObjectiveFunction()))
	assert.Equal(t, n, s.Iterations())
}

func TestNew_NotInterior(t *testing.T) {
	p := textbook(t, lp.Maximize, []float64{3, 2})
	for _, x0 := range [][]float64{
		{0, 1},     // on the x ≥ 0 boundary
		{1, -1},    // outside x ≥ 0
		{2, 2},     // x+y ≤ 4 is tight
		{5, 1},     // violates x+y ≤ 4
		{1e-12, 1}, // positive, but not beyond tolerance
	} {
		t.Run(fmt.Sprint(x0), func(t *testing.T) {
			_, err := affine.New(p, matrix.VectorOf(x0...), affine.DefaultOptions())
			require.ErrorIs(t, err, lp.ErrNotInterior)
			require.ErrorIs(t, err, lp.ErrApplicationProblem)
		})
	}
}

func TestNew_BadInput(t *testing.T) {
	p := textbook(t, lp.Maximize, []float64{3, 2})

	for _, alpha := range []float64{0, 1, -0.5, 1.5} {
		opts := affine.DefaultOptions()
		opts.Alpha = alpha
		_, err := affine.New(p, matrix.VectorOf(1, 1), opts)
		require.ErrorIs(t, err, lp.ErrBadOption, "alpha=%g", alpha)
	}

	opts := affine.DefaultOptions()
	opts.Tolerance = -1
	_, err := affine.New(p, matrix.VectorOf(1, 1), opts)
	require.ErrorIs(t, err, lp.ErrBadOption)

	_, err = affine.New(p, matrix.VectorOf(1, 1, 1), affine.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestUnbounded(t *testing.T) {
	// max x s.t. y ≤ 1: x appears in no constraint
	p, err := lp.NewProblem(lp.Maximize, []float64{1, 0}, [][]float64{{0, 1}}, []float64{1})
	require.NoError(t, err)
	s, err := affine.New(p, matrix.VectorOf(1, 0.5), affine.DefaultOptions())
	require.NoError(t, err)

	done, err := s.Iteration()
	require.False(t, done)
	require.ErrorIs(t, err, lp.ErrUnbounded)
	assert.Equal(t, lp.Unbounded, s.State())

	_, err = s.Iteration()
	require.ErrorIs(t, err, lp.ErrUnbounded)
}

func TestSolve_IterationLimit(t *testing.T) {
	opts := affine.DefaultOptions()
	opts.MaxIterations = 2
	s, err := affine.New(textbook(t, lp.Maximize, []float64{3, 2}), matrix.VectorOf(1, 1), opts)
	require.NoError(t, err)
	require.ErrorIs(t, s.Solve(), lp.ErrIterationLimit)
	assert.Equal(t, lp.Iterating, s.State())
	assert.Equal(t, 2, s.Iterations())
}
