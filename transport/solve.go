// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/tolerance"
)

// state is the mutable bookkeeping of one Solve run.
type state struct {
	costs          *matrix.Dense
	supply, demand []float64
	rowActive      []bool
	colActive      []bool
	cmp            tolerance.Comparator
}

// Validate checks shapes, signs and balance.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNegative, ErrUnbalanced.
func (p Problem) Validate(cmp tolerance.Comparator) error {
	if err := matrix.ValidateNotNil(p.Costs); err != nil {
		return fmt.Errorf("Problem.Validate: %w", err)
	}
	if len(p.Supply) != p.Costs.Rows() || len(p.Demand) != p.Costs.Cols() {
		return fmt.Errorf("Problem.Validate: %d supplies and %d demands for %dx%d costs: %w",
			len(p.Supply), len(p.Demand), p.Costs.Rows(), p.Costs.Cols(), matrix.ErrDimensionMismatch)
	}
	var total [2]float64
	for k, side := range [][]float64{p.Supply, p.Demand} {
		for i, q := range side {
			if cmp.IsNegative(q) {
				return fmt.Errorf("Problem.Validate: quantity %d = %g: %w", i, q, ErrNegative)
			}
			total[k] += q
		}
	}
	if !cmp.Equal(total[0], total[1]) {
		return fmt.Errorf("Problem.Validate: supply %g, demand %g: %w", total[0], total[1], ErrUnbalanced)
	}

	return nil
}

// Solve builds an initial plan for p with the given method.
//
// Implementation:
//   - Stage 1: validate tolerance, method and problem.
//   - Stage 2: repeat choose → ship → retire until a side is exhausted.
//   - Stage 3: total the cost over the allocation.
//
// Errors: tolerance.ErrBadTolerance, ErrUnknownMethod, and the errors of Validate.
// Complexity: NorthWest O(m+n) choices; Vogel and Russell O(m·n) per choice.
func Solve(p Problem, method Method, eps float64) (Plan, error) {
	// Stage 1: validation
	cmp, err := tolerance.New(eps)
	if err != nil {
		return Plan{}, fmt.Errorf("transport.Solve: %w", err)
	}
	var choose func(*state) Cell
	switch method {
	case NorthWest:
		choose = (*state).northWest
	case Vogel:
		choose = (*state).vogel
	case Russell:
		choose = (*state).russell
	default:
		return Plan{}, fmt.Errorf("transport.Solve: %v: %w", method, ErrUnknownMethod)
	}
	if err = p.Validate(cmp); err != nil {
		return Plan{}, fmt.Errorf("transport.Solve: %w", err)
	}
	costs, err := matrix.SubMatrix(p.Costs, 0, 0, p.Costs.Rows(), p.Costs.Cols())
	if err != nil {
		return Plan{}, fmt.Errorf("transport.Solve: %w", err)
	}
	rows, cols := costs.Rows(), costs.Cols()
	st := &state{
		costs:     costs,
		supply:    append([]float64(nil), p.Supply...),
		demand:    append([]float64(nil), p.Demand...),
		rowActive: trues(rows),
		colActive: trues(cols),
		cmp:       cmp,
	}

	// Stage 2: allocation loop
	alloc, _ := matrix.NewDense(rows, cols) // shape already validated
	basis := make([]Cell, 0, rows+cols-1)
	var (
		cell Cell
		q    float64
		prev float64
	)
	for st.anyActive() {
		cell = choose(st)
		q = math.Min(st.supply[cell.Row], st.demand[cell.Col])
		prev, _ = alloc.At(cell.Row, cell.Col)
		_ = alloc.Set(cell.Row, cell.Col, prev+q)
		st.supply[cell.Row] -= q
		st.demand[cell.Col] -= q
		basis = append(basis, cell)
		if cmp.IsZero(st.supply[cell.Row]) {
			st.rowActive[cell.Row] = false
		} else {
			st.colActive[cell.Col] = false
		}
	}

	// Stage 3: cost
	var (
		i, j  int
		total float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			q, _ = alloc.At(i, j)
			if q != 0 {
				c, _ := costs.At(i, j)
				total += q * c
			}
		}
	}

	return Plan{Allocation: alloc, Cost: total, Basis: basis}, nil
}

func trues(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}

	return out
}

// anyActive reports whether at least one row and one column are still active.
func (st *state) anyActive() bool {
	return firstActive(st.rowActive) >= 0 && firstActive(st.colActive) >= 0
}

func firstActive(active []bool) int {
	for i, a := range active {
		if a {
			return i
		}
	}

	return -1
}

// cost is the unchecked read of c_ij.
func (st *state) cost(i, j int) float64 {
	v, _ := st.costs.At(i, j)

	return v
}

// northWest returns the top-left active cell.
func (st *state) northWest() Cell {
	return Cell{Row: firstActive(st.rowActive), Col: firstActive(st.colActive)}
}

// penalty returns the Vogel penalty of a line with active costs vals.
func penalty(vals []float64) float64 {
	lo1, lo2 := math.Inf(1), math.Inf(1)
	for _, v := range vals {
		switch {
		case v < lo1:
			lo1, lo2 = v, lo1
		case v < lo2:
			lo2 = v
		}
	}
	if math.IsInf(lo2, 1) {
		return lo1
	}

	return lo2 - lo1
}

// line collects the active costs of row i (byRow) or column i.
func (st *state) line(i int, byRow bool) (vals []float64, idx []int) {
	if byRow {
		for j, a := range st.colActive {
			if a {
				vals, idx = append(vals, st.cost(i, j)), append(idx, j)
			}
		}
	} else {
		for r, a := range st.rowActive {
			if a {
				vals, idx = append(vals, st.cost(r, i)), append(idx, r)
			}
		}
	}

	return vals, idx
}

// vogel returns the cheapest active cell of the line with the largest penalty.
func (st *state) vogel() Cell {
	var (
		bestLine  = -1
		bestByRow bool
		bestPen   float64
	)
	scan := func(active []bool, byRow bool) {
		for i, a := range active {
			if !a {
				continue
			}
			vals, _ := st.line(i, byRow)
			p := penalty(vals)
			if bestLine < 0 || st.cmp.Less(bestPen, p) {
				bestLine, bestByRow, bestPen = i, byRow, p
			}
		}
	}
	scan(st.rowActive, true)
	scan(st.colActive, false)

	vals, idx := st.line(bestLine, bestByRow)
	cheapest := 0
	for k := 1; k < len(vals); k++ {
		if st.cmp.Less(vals[k], vals[cheapest]) {
			cheapest = k
		}
	}
	if bestByRow {
		return Cell{Row: bestLine, Col: idx[cheapest]}
	}

	return Cell{Row: idx[cheapest], Col: bestLine}
}

// russell returns the active cell with the most negative c − u − v.
func (st *state) russell() Cell {
	rows, cols := len(st.rowActive), len(st.colActive)
	u := make([]float64, rows)
	v := make([]float64, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		if st.rowActive[i] {
			vals, _ := st.line(i, true)
			u[i] = maxOf(vals)
		}
	}
	for j = 0; j < cols; j++ {
		if st.colActive[j] {
			vals, _ := st.line(j, false)
			v[j] = maxOf(vals)
		}
	}

	best := Cell{Row: -1, Col: -1}
	var bestDelta, delta float64
	for i = 0; i < rows; i++ {
		if !st.rowActive[i] {
			continue
		}
		for j = 0; j < cols; j++ {
			if !st.colActive[j] {
				continue
			}
			delta = st.cost(i, j) - u[i] - v[j]
			if best.Row < 0 || st.cmp.Less(delta, bestDelta) {
				best, bestDelta = Cell{Row: i, Col: j}, delta
			}
		}
	}

	return best
}

func maxOf(vals []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		m = math.Max(m, v)
	}

	return m
}
