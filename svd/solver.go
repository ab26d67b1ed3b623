// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// Solver answers least-squares problems A·x ≈ b through the cached
// Moore–Penrose pseudo-inverse V·Σ⁺·Uᵗ. Unlike the Cholesky and LU solvers
// it never rejects a right-hand side for rank reasons: a rank-deficient A
// yields the minimum-norm least-squares solution instead of an error.
//
// Construction happens in Decomposition.Solver; the zero Solver is not
// usable. All methods are safe for concurrent use.
type Solver struct {
	pseudoInverse mat.Matrix // V·Σ⁺·Uᵗ, cols×rows
	nonSingular   bool       // rank == rows at construction time
}

// SolveVec returns the minimum-norm x minimising ‖A·x − b‖₂.
//
// Errors:
//   - mat.ErrDimensionMismatch — len(b) differs from the row count of A.
//
// Complexity: Time O(rows·cols), Space O(cols).
func (s *Solver) SolveVec(b []float64) ([]float64, error) {
	x, err := mat.MatVec(s.pseudoInverse, b)
	if err != nil {
		return nil, fmt.Errorf("svd.SolveVec: %w", err)
	}

	return x, nil
}

// Solve applies SolveVec column-wise: the result X minimises ‖A·X − B‖₂
// column by column.
//
// Errors:
//   - mat.ErrDimensionMismatch — B's row count differs from A's.
//
// Complexity: Time O(rows·cols·k) for k right-hand columns.
func (s *Solver) Solve(b mat.Matrix) (mat.Matrix, error) {
	if err := mat.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("svd.Solve: %w", err)
	}
	x, err := mat.Mul(s.pseudoInverse, b)
	if err != nil {
		return nil, fmt.Errorf("svd.Solve: %w", err)
	}

	return x, nil
}

// Inverse returns the pseudo-inverse itself. For a square full-rank A this
// is the ordinary inverse. The returned matrix is a defensive clone; the
// caller may mutate it freely.
func (s *Solver) Inverse() mat.Matrix { return s.pseudoInverse.Clone() }

// IsNonSingular reports whether the decomposed matrix had full row rank.
func (s *Solver) IsNonSingular() bool { return s.nonSingular }
