// SPDX-License-Identifier: MIT
package simplex_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/simplex"
)

// sink to defeat dead-code elimination
var sinkF float64

// randomBounded returns max c·x s.t. A·x ≤ b with every A_ij > 0 and b > 0,
// so the origin is feasible and the optimum is finite.
func randomBounded(b *testing.B, m, n int, seed int64) lp.Problem {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	c := make([]float64, n)
	for j := range c {
		c[j] = 1 + rng.Float64()
	}
	a := make([][]float64, m)
	rhs := make([]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = 0.1 + rng.Float64()
		}
		rhs[i] = 10 + 10*rng.Float64()
	}
	p, err := lp.NewProblem(lp.Maximize, c, a, rhs)
	if err != nil {
		b.Fatal(err)
	}

	return p
}

func BenchmarkSimplexSolve(b *testing.B) {
	b.ReportAllocs()
	for _, size := range []int{10, 30, 60} {
		b.Run(fmt.Sprintf("m=n=%d", size), func(b *testing.B) {
			p := randomBounded(b, size, size, int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := simplex.New(p, simplex.DefaultOptions())
				if err != nil {
					b.Fatal(err)
				}
				if err = s.Solve(); err != nil {
					b.Fatal(err)
				}
				sinkF = s.ObjectiveFunctionValue()
			}
		})
	}
}
