// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/cholesky"
	"github.com/katalvlaran/linsolve/mat"
)

// Factor a symmetric positive definite matrix and solve one system.
func ExampleNew() {
	a, _ := mat.NewDenseData([][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})

	dec, err := cholesky.New(a)
	if err != nil {
		fmt.Println("factorization failed:", err)
		return
	}

	fmt.Printf("det = %.0f\n", dec.Det())

	x, _ := dec.Solver().SolveVec([]float64{-68, -191, 364})
	fmt.Printf("x = [%.0f %.0f %.0f]\n", x[0], x[1], x[2])

	// Output:
	// det = 36
	// x = [1 -2 3]
}
