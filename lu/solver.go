// SPDX-License-Identifier: MIT

// Package lu: triangular solver bound to one real decomposition.
// The solver borrows the combined factor array and the pivot vector; it
// copies every right-hand side before permuting and sweeping, so the
// caller's data is never mutated.
package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// Solver solves A·x = b from the cached P·A = L·U factors: permute b by the
// pivot vector, forward-substitute on unit-lower L (no divisions), then
// back-substitute on U (divide by the diagonal).
type Solver struct {
	lu       [][]float64 // borrowed combined factors
	pivot    []int       // borrowed pivot vector
	singular bool        // captured singularity flag
}

// IsNonSingular reports whether solving is possible. Complexity: O(1).
func (s *Solver) IsNonSingular() bool { return !s.singular }

// SolveVec solves A·x = b for a single right-hand side.
//
// Errors:
//   - mat.ErrDimensionMismatch — len(b) disagrees with the pivot length.
//   - mat.ErrSingular          — the decomposition was flagged singular.
//
// Complexity: Time O(n²), Space O(n).
func (s *Solver) SolveVec(b []float64) ([]float64, error) {
	n := len(s.pivot)
	if err := mat.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("lu.SolveVec: %w", err)
	}
	if s.singular {
		return nil, fmt.Errorf("lu.SolveVec: %w", mat.ErrSingular)
	}

	// apply the row permutation while copying b
	x := make([]float64, n)
	var col, i int // loop iterators
	for i = 0; i < n; i++ {
		x[i] = b[s.pivot[i]]
	}

	// forward substitution on unit-lower L: no division on the diagonal
	for col = 0; col < n; col++ {
		for i = col + 1; i < n; i++ {
			x[i] -= x[col] * s.lu[i][col]
		}
	}
	// backward substitution on U
	for col = n - 1; col >= 0; col-- {
		x[col] /= s.lu[col][col]
		for i = 0; i < col; i++ {
			x[i] -= x[col] * s.lu[i][col]
		}
	}

	return x, nil
}

// Solve solves A·X = B for a matrix of right-hand sides, sweeping all
// columns as one block.
//
// Errors: mat.ErrNilMatrix, mat.ErrDimensionMismatch, mat.ErrSingular.
// Complexity: Time O(n²·k) for k right-hand sides, Space O(n·k).
func (s *Solver) Solve(b mat.Matrix) (mat.Matrix, error) {
	n := len(s.pivot)
	if err := mat.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("lu.Solve: %w", err)
	}
	if b.Rows() != n {
		return nil, fmt.Errorf("lu.Solve: rhs has %d rows, want %d: %w",
			b.Rows(), n, mat.ErrDimensionMismatch)
	}
	if s.singular {
		return nil, fmt.Errorf("lu.Solve: %w", mat.ErrSingular)
	}

	// permuted private copy of B
	src, err := mat.Snapshot(b)
	if err != nil {
		return nil, fmt.Errorf("lu.Solve: %w", err)
	}
	cols := b.Cols()
	x := make([][]float64, n)
	var col, i, k int // loop iterators
	for i = 0; i < n; i++ {
		x[i] = src[s.pivot[i]]
	}

	// forward substitution across the whole column block
	for col = 0; col < n; col++ {
		xCol := x[col]
		for i = col + 1; i < n; i++ {
			xI := x[i]
			factor := s.lu[i][col]
			for k = 0; k < cols; k++ {
				xI[k] -= xCol[k] * factor
			}
		}
	}
	// backward substitution across the whole column block
	for col = n - 1; col >= 0; col-- {
		xCol := x[col]
		inverse := 1.0 / s.lu[col][col]
		for k = 0; k < cols; k++ {
			xCol[k] *= inverse
		}
		for i = 0; i < col; i++ {
			xI := x[i]
			factor := s.lu[i][col]
			for k = 0; k < cols; k++ {
				xI[k] -= xCol[k] * factor
			}
		}
	}

	return mat.NewDenseData(x)
}

// Inverse returns A⁻¹ by solving against the identity matrix.
// Errors: mat.ErrSingular. Complexity: Time O(n³), Space O(n²).
func (s *Solver) Inverse() (mat.Matrix, error) {
	eye, err := mat.Identity(len(s.pivot))
	if err != nil {
		return nil, fmt.Errorf("lu.Inverse: %w", err)
	}

	return s.Solve(eye)
}
