// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/transport"
)

// maxViolation returns max_i (A·x − b)_i clamped at 0, together with the
// most negative coordinate of x clamped at 0, computed independently of the
// solvers through gonum.
func maxViolation(p lp.Problem, x matrix.Vector) (rows, bounds float64) {
	a := matrix.ToGonum(p.Constraints)
	gx := matrix.VectorToGonum(x)
	b := matrix.VectorToGonum(p.RHS)

	var ax mat.VecDense
	ax.MulVec(a, gx)
	ax.SubVec(&ax, b)
	for i := 0; i < ax.Len(); i++ {
		rows = math.Max(rows, ax.AtVec(i))
	}
	for i := 0; i < gx.Len(); i++ {
		bounds = math.Max(bounds, -gx.AtVec(i))
	}

	return rows, bounds
}

// number formats x with %g, printing negative zero as 0.
func number(x float64) string {
	if x == 0 {
		x = 0
	}

	return fmt.Sprintf("%g", x)
}

func joinValues(v matrix.Vector) string {
	parts := make([]string, 0, v.Len())
	for _, x := range matrix.Values(v) {
		parts = append(parts, number(x))
	}

	return strings.Join(parts, " ")
}

// writeLPReport prints the optimum and the point reached by s.
func writeLPReport(out io.Writer, label string, p lp.Problem, s lp.Solver, eps float64) error {
	kind := "Maximum"
	if p.Mode == lp.Minimize {
		kind = "Minimum"
	}
	x := s.Solution()
	rows, bounds := maxViolation(p, x)
	feasible := "yes"
	if rows > eps || bounds > eps {
		feasible = "no"
	}

	_, err := fmt.Fprintf(out,
		"%s value of the objective function (%s):\n%s\nAt the point:\n%s\nFeasible: %s (constraint excess %.3g, bound excess %.3g)\n\n",
		kind, label, number(s.ObjectiveFunctionValue()), joinValues(x), feasible, rows, bounds)

	return err
}

// writeTransportReport prints one transportation plan.
func writeTransportReport(out io.Writer, method transport.Method, plan transport.Plan) error {
	names := map[transport.Method]string{
		transport.NorthWest: "North-West corner",
		transport.Vogel:     "Vogel's approximation",
		transport.Russell:   "Russell's approximation",
	}
	_, err := fmt.Fprintf(out, "The result of the %s is\n%sTotal cost: %g\n\n", names[method], plan.Allocation, plan.Cost)

	return err
}
