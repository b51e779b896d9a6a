// SPDX-License-Identifier: MIT
package lp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	assert.Equal(t, 1.0, lp.Maximize.Factor())
	assert.Equal(t, -1.0, lp.Minimize.Factor())

	for in, want := range map[string]lp.Mode{"max": lp.Maximize, "MAXIMIZE": lp.Maximize, " min ": lp.Minimize, "minimize": lp.Minimize} {
		got, err := lp.ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := lp.ParseMode("0")
	require.ErrorIs(t, err, lp.ErrBadMode)

	var m lp.Mode
	require.NoError(t, m.UnmarshalText([]byte("min")))
	assert.Equal(t, lp.Minimize, m)
	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "min", string(text))
}

func TestErrorFamily(t *testing.T) {
	for _, err := range []error{lp.ErrNegativeRHS, lp.ErrNotInterior, lp.ErrUnbounded} {
		assert.True(t, errors.Is(err, lp.ErrApplicationProblem), err.Error())
	}
	assert.False(t, errors.Is(lp.ErrIterationLimit, lp.ErrApplicationProblem))
}

func TestState(t *testing.T) {
	assert.False(t, lp.Iterating.Terminal())
	for _, s := range []lp.State{lp.Optimal, lp.Unbounded, lp.Converged} {
		assert.True(t, s.Terminal(), s.String())
	}
	assert.Equal(t, "converged", lp.Converged.String())
}

func TestProblem(t *testing.T) {
	p, err := lp.NewProblem(lp.Maximize, []float64{3, 2}, [][]float64{{1, 1}, {1, 3}}, []float64{4, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumVariables())
	assert.Equal(t, 2, p.NumConstraints())

	s, err := p.Slack(matrix.VectorOf(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, matrix.Values(s))

	v, err := p.Evaluate(matrix.VectorOf(1, 1, 99, 99)) // trailing slacks ignored
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	_, err = p.Evaluate(matrix.VectorOf(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	p.Mode = lp.Minimize
	assert.Equal(t, []float64{-3, -2}, matrix.Values(p.InternalObjective()))
}

func TestProblem_Validate(t *testing.T) {
	_, err := lp.NewProblem(lp.Maximize, []float64{1}, [][]float64{{1, 1}}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lp.NewProblem(lp.Maximize, []float64{1, 1}, [][]float64{{1, 1}}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = lp.NewProblem(lp.Maximize, []float64{1, 1}, [][]float64{{1, 1}, {1}}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.ErrorIs(t, lp.Problem{}.Validate(), matrix.ErrNilMatrix)
}

// countdown is a Solver that terminates after n steps.
type countdown struct {
	n, steps int
	fail     error
	state    lp.State
}

func (c *countdown) Iteration() (bool, error) {
	if c.fail != nil {
		return false, c.fail
	}
	if c.steps == c.n {
		c.state = lp.Optimal
		return true, nil
	}
	c.steps++

	return false, nil
}
func (c *countdown) State() lp.State { return c.state }
func (c *countdown) Iterations() int { return c.steps }
func (c *countdown) Solution() *matrix.ColumnVector { return matrix.VectorOf() }
func (c *countdown) ObjectiveFunctionValue() float64 { return 0 }

func TestDrive(t *testing.T) {
	var seen []int
	s := &countdown{n: 3}
	require.NoError(t, lp.Drive(s, 10, func(i int, _ lp.Solver) { seen = append(seen, i) }))
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, lp.Optimal, s.State())

	require.ErrorIs(t, lp.Drive(&countdown{n: 5}, 3, nil), lp.ErrIterationLimit)

	boom := errors.New("boom")
	require.ErrorIs(t, lp.Drive(&countdown{fail: boom}, 0, nil), boom)
}
