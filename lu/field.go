// SPDX-License-Identifier: MIT

// Package lu: generic field-element factorization.
// Same elimination skeleton as the real Decomposition but over an arbitrary
// mat.Field element. Fields carry no ordering, so "best pivot" degenerates
// to "first row with a non-zero candidate"; exactness of the field (e.g.
// mat.Rat) makes that safe where floating point would not be.
package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// FieldDecomposition is an immutable P·A = L·U factorization over a generic
// field element type T.
type FieldDecomposition[T mat.Field[T]] struct {
	lu       [][]T // combined in-place factors, privately owned
	pivot    []int // pivot[i] = original row now in position i
	even     bool  // parity of the row swaps
	singular bool  // soft-failure flag fixed at construction
}

// NewField factors a square [][]T matrix with first-nonzero pivoting.
//
// Implementation:
//   - Stage 1: Validate the snapshot is non-empty and square; deep-copy it.
//   - Stage 2: Per column, fold dot-product corrections into the upper
//     entries, then into the lower candidates.
//   - Stage 3: Scan rows ≥ col for the first non-zero candidate. None found
//     ⇒ mark singular and stop (soft failure). Otherwise swap, flip parity,
//     and divide the sub-diagonal entries by the pivot.
//
// Errors: mat.ErrNilMatrix (empty input), mat.ErrNonSquare.
// Complexity: Time O(n³) field operations, Space O(n²).
func NewField[T mat.Field[T]](data [][]T) (*FieldDecomposition[T], error) {
	// Stage 1: structural validation + private copy.
	if len(data) == 0 {
		return nil, fmt.Errorf("lu.NewField: %w", mat.ErrNilMatrix)
	}
	n := len(data)
	lu := make([][]T, n)
	for i := 0; i < n; i++ {
		if len(data[i]) != n {
			return nil, fmt.Errorf("lu.NewField: row %d has %d entries, want %d: %w",
				i, len(data[i]), n, mat.ErrNonSquare)
		}
		lu[i] = make([]T, n)
		copy(lu[i], data[i])
	}

	d := &FieldDecomposition[T]{lu: lu, pivot: make([]int, n), even: true}
	for i := 0; i < n; i++ {
		d.pivot[i] = i
	}

	// Stage 2+3: column-by-column elimination.
	var (
		col, row, i int // loop iterators
		sum         T   // dot-product accumulator
		nonZero     int // first row with a non-zero candidate
		luDiag      T   // pivot value after the swap
	)
	for col = 0; col < n; col++ {
		// upper entries
		for row = 0; row < col; row++ {
			luRow := lu[row]
			sum = luRow[col]
			for i = 0; i < row; i++ {
				sum = sum.Sub(luRow[i].Mul(lu[i][col]))
			}
			luRow[col] = sum
		}

		// lower candidates
		for row = col; row < n; row++ {
			luRow := lu[row]
			sum = luRow[col]
			for i = 0; i < col; i++ {
				sum = sum.Sub(luRow[i].Mul(lu[i][col]))
			}
			luRow[col] = sum
		}

		// first-nonzero pivot scan: fields have no magnitude to compare
		nonZero = col
		for nonZero < n && lu[nonZero][col].IsZero() {
			nonZero++
		}
		if nonZero >= n {
			d.singular = true

			return d, nil
		}

		// row exchange, recorded in the pivot vector and the parity flag
		if nonZero != col {
			lu[nonZero], lu[col] = lu[col], lu[nonZero]
			d.pivot[nonZero], d.pivot[col] = d.pivot[col], d.pivot[nonZero]
			d.even = !d.even
		}

		// complete column col of L
		luDiag = lu[col][col]
		for row = col + 1; row < n; row++ {
			lu[row][col] = lu[row][col].Div(luDiag)
		}
	}

	return d, nil
}

// IsSingular reports the soft-failure flag. Complexity: O(1).
func (d *FieldDecomposition[T]) IsSingular() bool { return d.singular }

// L returns a copy of the unit-lower-triangular factor, or nil when
// singular. Complexity: O(n²).
func (d *FieldDecomposition[T]) L() [][]T {
	if d.singular {
		return nil
	}
	n := len(d.lu)
	var zero T
	l := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		l[i] = make([]T, n)
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				l[i][j] = d.lu[i][j]
			case j == i:
				l[i][j] = zero.One() // unit diagonal
			default:
				l[i][j] = zero.Zero()
			}
		}
	}

	return l
}

// U returns a copy of the upper-triangular factor, or nil when singular.
// Complexity: O(n²).
func (d *FieldDecomposition[T]) U() [][]T {
	if d.singular {
		return nil
	}
	n := len(d.lu)
	var zero T
	u := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		u[i] = make([]T, n)
		for j = 0; j < n; j++ {
			if j >= i {
				u[i][j] = d.lu[i][j]
			} else {
				u[i][j] = zero.Zero()
			}
		}
	}

	return u
}

// P returns the permutation matrix (P[i][pivot[i]] = one), or nil when
// singular. Complexity: O(n²).
func (d *FieldDecomposition[T]) P() [][]T {
	if d.singular {
		return nil
	}
	n := len(d.lu)
	var zero T
	p := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = make([]T, n)
		for j = 0; j < n; j++ {
			p[i][j] = zero.Zero()
		}
		p[i][d.pivot[i]] = zero.One()
	}

	return p
}

// Pivot returns a copy of the pivot vector. Complexity: O(n).
func (d *FieldDecomposition[T]) Pivot() []int {
	cp := make([]int, len(d.pivot))
	copy(cp, d.pivot)

	return cp
}

// Det returns the determinant: parity × Π U[i][i], or the additive identity
// for a singular decomposition. Complexity: O(n) field multiplications.
func (d *FieldDecomposition[T]) Det() T {
	var zero T
	if d.singular {
		return zero.Zero()
	}
	det := zero.One()
	if !d.even {
		det = det.Neg()
	}
	for i := 0; i < len(d.lu); i++ {
		det = det.Mul(d.lu[i][i])
	}

	return det
}

// Solver returns a solver borrowing the factors read-only.
func (d *FieldDecomposition[T]) Solver() *FieldSolver[T] {
	return &FieldSolver[T]{lu: d.lu, pivot: d.pivot, singular: d.singular}
}

// FieldSolver solves A·x = b from the cached generic factors; identical
// sweep structure to the real Solver.
type FieldSolver[T mat.Field[T]] struct {
	lu       [][]T // borrowed combined factors
	pivot    []int // borrowed pivot vector
	singular bool  // captured singularity flag
}

// IsNonSingular reports whether solving is possible. Complexity: O(1).
func (s *FieldSolver[T]) IsNonSingular() bool { return !s.singular }

// SolveVec solves A·x = b for a single right-hand side.
// Errors: mat.ErrDimensionMismatch, mat.ErrSingular.
// Complexity: O(n²) field operations.
func (s *FieldSolver[T]) SolveVec(b []T) ([]T, error) {
	n := len(s.pivot)
	if len(b) != n {
		return nil, fmt.Errorf("lu.FieldSolver.SolveVec: rhs length %d, want %d: %w",
			len(b), n, mat.ErrDimensionMismatch)
	}
	if s.singular {
		return nil, fmt.Errorf("lu.FieldSolver.SolveVec: %w", mat.ErrSingular)
	}

	// apply the row permutation while copying b
	x := make([]T, n)
	var col, i int // loop iterators
	for i = 0; i < n; i++ {
		x[i] = b[s.pivot[i]]
	}

	// forward substitution on unit-lower L
	for col = 0; col < n; col++ {
		for i = col + 1; i < n; i++ {
			x[i] = x[i].Sub(x[col].Mul(s.lu[i][col]))
		}
	}
	// backward substitution on U
	for col = n - 1; col >= 0; col-- {
		x[col] = x[col].Div(s.lu[col][col])
		for i = 0; i < col; i++ {
			x[i] = x[i].Sub(x[col].Mul(s.lu[i][col]))
		}
	}

	return x, nil
}

// Solve solves A·X = B for a matrix of right-hand sides, column-block-wise.
// Errors: mat.ErrDimensionMismatch (row count or ragged rows),
// mat.ErrSingular. Complexity: O(n²·k) field operations.
func (s *FieldSolver[T]) Solve(b [][]T) ([][]T, error) {
	n := len(s.pivot)
	if len(b) != n {
		return nil, fmt.Errorf("lu.FieldSolver.Solve: rhs has %d rows, want %d: %w",
			len(b), n, mat.ErrDimensionMismatch)
	}
	if s.singular {
		return nil, fmt.Errorf("lu.FieldSolver.Solve: %w", mat.ErrSingular)
	}
	cols := len(b[0])

	// permuted private copy of B
	x := make([][]T, n)
	var col, i, k int // loop iterators
	for i = 0; i < n; i++ {
		if len(b[i]) != cols {
			return nil, fmt.Errorf("lu.FieldSolver.Solve: ragged rhs row %d: %w",
				i, mat.ErrDimensionMismatch)
		}
	}
	for i = 0; i < n; i++ {
		x[i] = make([]T, cols)
		copy(x[i], b[s.pivot[i]])
	}

	// forward substitution across the whole column block
	for col = 0; col < n; col++ {
		xCol := x[col]
		for i = col + 1; i < n; i++ {
			xI := x[i]
			factor := s.lu[i][col]
			for k = 0; k < cols; k++ {
				xI[k] = xI[k].Sub(xCol[k].Mul(factor))
			}
		}
	}
	// backward substitution across the whole column block
	for col = n - 1; col >= 0; col-- {
		xCol := x[col]
		diag := s.lu[col][col]
		for k = 0; k < cols; k++ {
			xCol[k] = xCol[k].Div(diag)
		}
		for i = 0; i < col; i++ {
			xI := x[i]
			factor := s.lu[i][col]
			for k = 0; k < cols; k++ {
				xI[k] = xI[k].Sub(xCol[k].Mul(factor))
			}
		}
	}

	return x, nil
}

// Inverse returns A⁻¹ by solving against the identity matrix.
// Errors: mat.ErrSingular. Complexity: O(n³) field operations.
func (s *FieldSolver[T]) Inverse() ([][]T, error) {
	n := len(s.pivot)
	var zero T
	eye := make([][]T, n)
	for i := 0; i < n; i++ {
		eye[i] = make([]T, n)
		for j := 0; j < n; j++ {
			eye[i][j] = zero.Zero()
		}
		eye[i][i] = zero.One()
	}

	return s.Solve(eye)
}
