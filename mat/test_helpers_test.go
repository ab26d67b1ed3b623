// SPDX-License-Identifier: MIT

package mat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/mat"
)

// hide wraps a Matrix so kernels cannot type-assert *Dense underneath.
// Tests use it to drive the generic interface fallback paths.
type hide struct{ mat.Matrix }

// hideVec does the same for vectors.
type hideVec struct{ mat.Vector }

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *mat.Dense {
	t.Helper()
	d, err := mat.NewDenseData(rows)
	if err != nil {
		t.Fatalf("NewDenseData: %v", err)
	}

	return d
}

// mustVec builds a DenseVector from data or fails the test.
func mustVec(t *testing.T, data []float64) *mat.DenseVector {
	t.Helper()
	v, err := mat.NewDenseVectorData(data)
	if err != nil {
		t.Fatalf("NewDenseVectorData: %v", err)
	}

	return v
}

// close enough for float64 kernels over small integers
const tolerance = 1e-12

func closeTo(a, b float64) bool { return math.Abs(a-b) <= tolerance }

// assertMatrix compares every entry of got against want within tolerance.
func assertMatrix(t *testing.T, got mat.Matrix, want [][]float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d",
			got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	for i := 0; i < got.Rows(); i++ {
		for j := 0; j < got.Cols(); j++ {
			v, err := got.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if !closeTo(v, want[i][j]) {
				t.Fatalf("entry (%d,%d): got %g, want %g", i, j, v, want[i][j])
			}
		}
	}
}
