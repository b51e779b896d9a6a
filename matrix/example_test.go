// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/tolerance"
)

// ExampleDense_T shows that a transposed view shares storage with its base.
func ExampleDense_T() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	at := a.T()
	_ = at.Set(2, 1, 60)

	fmt.Print(at)
	fmt.Print(a)

	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 60]
	// [1, 2, 3]
	// [4, 5, 60]
}

// ExampleInverse inverts a 2×2 matrix.
func ExampleInverse() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 1}})
	cmp, _ := tolerance.New(tolerance.DefaultEpsilon)
	inv, err := matrix.Inverse(a, cmp)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)

	// Output:
	// [1, -1]
	// [-1, 2]
}
