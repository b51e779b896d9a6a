// SPDX-License-Identifier: MIT

package affine

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/tolerance"
)

// Compile-time check that Solver satisfies lp.Solver.
var _ lp.Solver = (*Solver)(nil)

// Solver holds the current interior point of an affine-scaling run. It is
// single-use and not safe for concurrent use.
type Solver struct {
	problem    lp.Problem
	cmp        tolerance.Comparator
	opts       Options
	objective  *matrix.ColumnVector // factor·c extended with m zeros
	augmented  *matrix.Dense        // [A | I], m×(n+m)
	current    *matrix.ColumnVector // (x, s), strictly positive
	n, m       int
	state      lp.State
	iterations int
	lastGap    float64 // relative duality gap of the last Iteration
	objScale   float64 // max(1, ‖c‖∞)
}

// New validates the problem and the start point and builds the augmented system.
//
// Implementation:
//   - Stage 1: validate options, problem shapes and len(x0) == n.
//   - Stage 2: s = b − A·x0; every x0_j and s_i must be positive beyond ε.
//   - Stage 3: current = (x0, s), objective = (factor·c, 0), augmented = [A | I].
//
// Errors:
//   - lp.ErrBadOption; matrix.ErrNilMatrix / matrix.ErrDimensionMismatch;
//   - lp.ErrNotInterior (an lp.ErrApplicationProblem).
func New(p lp.Problem, x0 matrix.Vector, opts Options) (*Solver, error) {
	// Stage 1: validation
	cmp, err := opts.validate()
	if err != nil {
		return nil, fmt.Errorf("affine.New: %w", err)
	}
	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("affine.New: %w", err)
	}
	n, m := p.NumVariables(), p.NumConstraints()
	if err = matrix.ValidateVecLen(x0, n); err != nil {
		return nil, fmt.Errorf("affine.New: start point vs %d variables: %w", n, err)
	}

	// Stage 2: strict interiority
	slack, err := p.Slack(x0)
	if err != nil {
		return nil, fmt.Errorf("affine.New: %w", err)
	}
	for j, v := range matrix.Values(x0) {
		if !cmp.IsPositive(v) {
			return nil, fmt.Errorf("affine.New: x0[%d] = %g: %w", j, v, lp.ErrNotInterior)
		}
	}
	for i, v := range matrix.Values(slack) {
		if !cmp.IsPositive(v) {
			return nil, fmt.Errorf("affine.New: slack[%d] = %g: %w", i, v, lp.ErrNotInterior)
		}
	}

	// Stage 3: augmented system
	I, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, fmt.Errorf("affine.New: %w", err)
	}
	augmented, err := matrix.CombineRight(p.Constraints, I)
	if err != nil {
		return nil, fmt.Errorf("affine.New: %w", err)
	}
	zeros, _ := matrix.NewColumnVector(m) // m > 0 after Validate
	objScale := 1.0
	for _, v := range matrix.Values(p.Objective) {
		objScale = math.Max(objScale, math.Abs(v))
	}

	return &Solver{
		problem:   p,
		cmp:       cmp,
		opts:      opts,
		objective: matrix.Concat(p.InternalObjective(), zeros),
		augmented: augmented,
		current:   matrix.Concat(x0, slack),
		n:         n,
		m:         m,
		state:     lp.Iterating,
		lastGap:   math.Inf(1),
		objScale:  objScale,
	}, nil
}

// Iteration performs one affine-scaling step.
//
// Implementation:
//   - Stage 1: normal equations G = Ã·Ãᵀ with Ã = [A | I]·D, D = diag(x).
//   - Stage 2: dual estimate G·w = Ã·c̃ with one refinement solve, reduced
//     costs r = c − [A | I]ᵀ·w and the projected gradient cp = D·r.
//   - Stage 3: stop when r ≤ ε and the relative duality gap is within ε.
//   - Stage 4: step α/ν along cp, then pull the point back onto [A | I]·x = b.
//   - Stage 5: ‖x* − x‖₂ within ε ends the run.
//
// Returns:
//   - (true, nil) once the gap closes, the step length falls within
//     tolerance or the projected gradient vanishes (also on every later call);
//   - (false, nil) after a regular step;
//   - (false, lp.ErrUnbounded) when the projected gradient is non-negative
//     and non-zero (also on every later call);
//   - (false, matrix.ErrSingular) when Ã loses full row rank before the gap
//     has reached √ε. A degenerate optimum reached within √ε converges.
func (s *Solver) Iteration() (bool, error) {
	switch s.state {
	case lp.Converged:
		return true, nil
	case lp.Unbounded:
		return false, fmt.Errorf("affine.Iteration: %w", lp.ErrUnbounded)
	}

	// Stage 1: scaled system
	ne, err := s.normalEquations()
	if err != nil {
		return false, fmt.Errorf("affine.Iteration: %w", err)
	}

	// Stage 2: dual estimate and projected gradient
	w, r, err := s.dual(ne)
	if err != nil {
		return s.singular(err)
	}
	cp := matrix.CopyVector(r)
	var (
		j  int
		v  float64
		xj float64
	)
	for j = 0; j < cp.Len(); j++ {
		v, _ = cp.At(j)
		xj, _ = s.current.At(j)
		_ = cp.Set(j, xj*v) // product of finite values
	}

	// Stage 3: primal-dual stop
	primal, _ := matrix.Dot(s.objective, s.current) // both n+m
	dual, _ := matrix.Dot(s.problem.RHS, w)         // both m
	s.lastGap = math.Abs(dual-primal) / (1 + math.Abs(primal))
	if s.dualFeasible(r) && s.cmp.IsZero(s.lastGap) {
		s.state = lp.Converged

		return true, nil
	}

	// Stage 4: step length and move
	nu := s.largestDecrease(cp)
	if nu == 0 {
		if s.allZero(cp) {
			s.state = lp.Converged

			return true, nil
		}
		s.state = lp.Unbounded

		return false, fmt.Errorf("affine.Iteration: projected gradient has no negative entry: %w", lp.ErrUnbounded)
	}
	step := s.opts.Alpha / nu

	next := matrix.CopyVector(s.current)
	for j = 0; j < next.Len(); j++ {
		v, _ = cp.At(j)
		xj, _ = s.current.At(j)
		if err = next.Set(j, xj*(1+step*v)); err != nil {
			return false, fmt.Errorf("affine.Iteration: %w", err)
		}
	}
	if err = s.correct(ne, next); err != nil {
		return s.singular(err)
	}

	// Stage 5: convergence
	diff, err := matrix.Diff(next, s.current)
	if err != nil {
		return false, fmt.Errorf("affine.Iteration: %w", err)
	}
	s.current = next
	s.iterations++
	if s.cmp.IsZero(matrix.Norm2(diff)) {
		s.state = lp.Converged

		return true, nil
	}

	return false, nil
}

// normal holds the D²-weighted normal equations of one iteration.
type normal struct {
	d2       *matrix.ColumnVector // x_j²
	weighted *matrix.Dense        // [A | I]·D², m×(n+m)
	gram     *matrix.Dense        // weighted·[A | I]ᵀ, m×m
	cmp      tolerance.Comparator // ε²·max(1, max G_ii)
}

// normalEquations builds G = [A | I]·D²·[A | I]ᵀ at the current point.
// Pivots of G scale with x², so its comparator does too.
func (s *Solver) normalEquations() (normal, error) {
	d2 := matrix.CopyVector(s.current)
	var (
		j int
		v float64
	)
	for j = 0; j < d2.Len(); j++ {
		v, _ = d2.At(j)
		_ = d2.Set(j, v*v)
	}
	D2, err := matrix.NewDiagonal(d2)
	if err != nil {
		return normal{}, err
	}
	weighted, err := matrix.Mul(s.augmented, D2)
	if err != nil {
		return normal{}, err
	}
	gram, err := matrix.Mul(weighted, s.augmented.T())
	if err != nil {
		return normal{}, err
	}
	scale := 1.0
	for j = 0; j < s.m; j++ {
		v, _ = gram.At(j, j)
		scale = math.Max(scale, v)
	}
	eps := s.cmp.Eps()
	cmp, err := tolerance.New(eps * eps * scale)
	if err != nil {
		return normal{}, err
	}

	return normal{d2: d2, weighted: weighted, gram: gram, cmp: cmp}, nil
}

// dual solves G·w = [A | I]·D²·c and refines w once against its own
// reduced costs. It returns w and r = c − [A | I]ᵀ·w.
func (s *Solver) dual(ne normal) (w, r *matrix.ColumnVector, err error) {
	rhs, err := matrix.MatVec(ne.weighted, s.objective)
	if err != nil {
		return nil, nil, err
	}
	if w, err = matrix.SolveLinear(ne.gram, rhs, ne.cmp); err != nil {
		return nil, nil, err
	}
	if r, err = s.reducedCosts(w); err != nil {
		return nil, nil, err
	}

	// refinement: G·dw = [A | I]·D²·r
	if rhs, err = matrix.MatVec(ne.weighted, r); err != nil {
		return nil, nil, err
	}
	dw, err := matrix.SolveLinear(ne.gram, rhs, ne.cmp)
	if err != nil {
		return nil, nil, err
	}
	if err = matrix.AddScaled(w, dw, 1); err != nil {
		return nil, nil, err
	}
	if r, err = s.reducedCosts(w); err != nil {
		return nil, nil, err
	}

	return w, r, nil
}

// reducedCosts returns c − [A | I]ᵀ·w.
func (s *Solver) reducedCosts(w matrix.Vector) (*matrix.ColumnVector, error) {
	aw, err := matrix.MatVec(s.augmented.T(), w)
	if err != nil {
		return nil, err
	}

	return matrix.Diff(s.objective, aw)
}

// correct removes the residual ρ = [A | I]·x − b from x along D²·[A | I]ᵀ,
// the minimum-norm correction in the scaled space.
func (s *Solver) correct(ne normal, x *matrix.ColumnVector) error {
	ax, err := matrix.MatVec(s.augmented, x)
	if err != nil {
		return err
	}
	rho, err := matrix.Diff(ax, s.problem.RHS)
	if err != nil {
		return err
	}
	dl, err := matrix.SolveLinear(ne.gram, rho, ne.cmp)
	if err != nil {
		return err
	}
	shift, err := matrix.MatVec(s.augmented.T(), dl)
	if err != nil {
		return err
	}
	var (
		j         int
		xj, d, sh float64
	)
	for j = 0; j < x.Len(); j++ {
		xj, _ = x.At(j)
		d, _ = ne.d2.At(j)
		sh, _ = shift.At(j)
		if err = x.Set(j, xj-d*sh); err != nil {
			return err
		}
	}

	return nil
}

// singular converts a rank loss of Ã into convergence once the last duality
// gap is within √ε: at a degenerate vertex G loses rank as the slacks vanish.
func (s *Solver) singular(err error) (bool, error) {
	if errors.Is(err, matrix.ErrSingular) && s.lastGap <= math.Sqrt(s.cmp.Eps()) {
		s.state = lp.Converged

		return true, nil
	}

	return false, fmt.Errorf("affine.Iteration: %w", err)
}

// dualFeasible reports whether every reduced cost is ≤ ε·max(1, ‖c‖∞).
func (s *Solver) dualFeasible(r matrix.Vector) bool {
	limit := s.cmp.Eps() * s.objScale
	for _, v := range matrix.Values(r) {
		if v > limit {
			return false
		}
	}

	return true
}

// largestDecrease returns |min cp_j| over entries negative beyond ε, or 0.
func (s *Solver) largestDecrease(cp matrix.Vector) float64 {
	var nu float64
	for _, v := range matrix.Values(cp) {
		if s.cmp.IsNegative(v) && -v > nu {
			nu = -v
		}
	}

	return nu
}

// allZero reports whether every entry of v is within ε of zero.
func (s *Solver) allZero(v matrix.Vector) bool {
	for _, x := range matrix.Values(v) {
		if !s.cmp.IsZero(x) {
			return false
		}
	}

	return true
}

// Solve iterates until convergence.
// Errors: lp.ErrUnbounded; matrix.ErrSingular; lp.ErrIterationLimit.
func (s *Solver) Solve() error {
	if err := lp.Drive(s, s.opts.MaxIterations, nil); err != nil {
		return fmt.Errorf("affine.Solve: %w", err)
	}

	return nil
}

// ObjectiveFunction returns a copy of the full current point (x, s).
func (s *Solver) ObjectiveFunction() *matrix.ColumnVector { return matrix.CopyVector(s.current) }

// Solution returns a copy of the structural coordinates x.
func (s *Solver) Solution() *matrix.ColumnVector {
	head, _ := matrix.NewSlice(s.current, 0, s.n) // n ≤ n+m

	return matrix.CopyVector(head)
}

// ObjectiveFunctionValue returns c·x at the current point in the caller's sign.
func (s *Solver) ObjectiveFunctionValue() float64 {
	v, _ := s.problem.Evaluate(s.current) // len(current) = n+m ≥ n

	return v
}

// State returns the lifecycle position.
func (s *Solver) State() lp.State { return s.state }

// Iterations returns the number of steps taken.
func (s *Solver) Iterations() int { return s.iterations }

// Alpha returns the configured step fraction.
func (s *Solver) Alpha() float64 { return s.opts.Alpha }
