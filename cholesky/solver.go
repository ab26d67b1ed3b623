// SPDX-License-Identifier: MIT

// Package cholesky: triangular solver bound to one decomposition.
// The solver holds a read-only borrow of the factor array — not a copy — so
// it must not outlive its Decomposition. Right-hand sides are always copied
// before the sweeps; the caller's data is never mutated.
package cholesky

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// Solver solves A·x = b using the cached Lᵗ factor: forward substitution on
// L·y = b, then backward substitution on Lᵗ·x = y.
type Solver struct {
	lt [][]float64 // borrowed factor rows (Lᵗ in the upper triangle)
}

// IsNonSingular always reports true: construction already proved positive
// definiteness, which implies a non-singular matrix.
func (s *Solver) IsNonSingular() bool { return true }

// SolveVec solves A·x = b for a single right-hand side.
//
// Implementation:
//   - Stage 1: Validate len(b) == n; copy b into the solution slice.
//   - Stage 2: Forward sweep L·y = b using L[i][j] = lt[j][i] (no transpose
//     is materialized), then backward sweep Lᵗ·x = y.
//
// Errors: mat.ErrDimensionMismatch. Complexity: Time O(n²), Space O(n).
func (s *Solver) SolveVec(b []float64) ([]float64, error) {
	n := len(s.lt)
	if err := mat.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("cholesky.SolveVec: %w", err)
	}

	// private copy of the right-hand side
	x := make([]float64, n)
	copy(x, b)

	var i, j int // loop iterators
	// forward substitution: solve L·y = b
	for j = 0; j < n; j++ {
		ltJ := s.lt[j]
		x[j] /= ltJ[j]
		for i = j + 1; i < n; i++ {
			x[i] -= x[j] * ltJ[i]
		}
	}
	// backward substitution: solve Lᵗ·x = y
	for j = n - 1; j >= 0; j-- {
		x[j] /= s.lt[j][j]
		for i = 0; i < j; i++ {
			x[i] -= x[j] * s.lt[i][j]
		}
	}

	return x, nil
}

// Solve solves A·X = B for a matrix of right-hand sides. The columns of B
// are swept as one block so the triangular passes are amortized across all
// right-hand sides.
//
// Errors: mat.ErrNilMatrix, mat.ErrDimensionMismatch (B.Rows != n).
// Complexity: Time O(n²·k) for k right-hand sides, Space O(n·k).
func (s *Solver) Solve(b mat.Matrix) (mat.Matrix, error) {
	n := len(s.lt)
	if err := mat.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("cholesky.Solve: %w", err)
	}
	if b.Rows() != n {
		return nil, fmt.Errorf("cholesky.Solve: rhs has %d rows, want %d: %w",
			b.Rows(), n, mat.ErrDimensionMismatch)
	}

	// private row-major copy of B; eliminated in place
	x, err := mat.Snapshot(b)
	if err != nil {
		return nil, fmt.Errorf("cholesky.Solve: %w", err)
	}
	cols := b.Cols()

	var i, j, k int // loop iterators
	// forward substitution across the whole column block
	for j = 0; j < n; j++ {
		ltJ := s.lt[j]
		inverse := 1.0 / ltJ[j]
		xJ := x[j]
		for k = 0; k < cols; k++ {
			xJ[k] *= inverse
		}
		for i = j + 1; i < n; i++ {
			xI := x[i]
			factor := ltJ[i]
			for k = 0; k < cols; k++ {
				xI[k] -= xJ[k] * factor
			}
		}
	}
	// backward substitution across the whole column block
	for j = n - 1; j >= 0; j-- {
		xJ := x[j]
		inverse := 1.0 / s.lt[j][j]
		for k = 0; k < cols; k++ {
			xJ[k] *= inverse
		}
		for i = 0; i < j; i++ {
			xI := x[i]
			factor := s.lt[i][j]
			for k = 0; k < cols; k++ {
				xI[k] -= xJ[k] * factor
			}
		}
	}

	return mat.NewDenseData(x)
}

// Inverse returns A⁻¹ by solving against the identity matrix.
// Complexity: Time O(n³), Space O(n²).
func (s *Solver) Inverse() (mat.Matrix, error) {
	eye, err := mat.Identity(len(s.lt))
	if err != nil {
		return nil, fmt.Errorf("cholesky.Inverse: %w", err)
	}

	return s.Solve(eye)
}
