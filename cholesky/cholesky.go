// SPDX-License-Identifier: MIT

// Package cholesky: eager factorization A = L·Lᵗ over a private snapshot.
package cholesky

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/mat"
)

// Decomposition is an immutable Cholesky factorization. The factor Lᵗ lives
// in the upper triangle of lt (the lower triangle is zeroed during the
// symmetry pass and never read again); L/LT matrix views are built lazily
// and memoized.
type Decomposition struct {
	lt [][]float64 // row-major Lᵗ factor, privately owned

	cachedL  mat.Matrix // memoized L view (transpose of lt)
	cachedLT mat.Matrix // memoized Lᵗ view
}

// New factors a symmetric positive-definite matrix m.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square; snapshot it once (the caller's
//     matrix is never mutated).
//   - Stage 2: Reject asymmetry beyond the relative threshold
//     (mat.ValidateSymmetricRel), then zero the lower triangle.
//   - Stage 3: Outer-product elimination per column i: require the diagonal
//     pivot to exceed the positivity threshold, take its square root, scale
//     the remainder of row i of Lᵗ, then rank-1-update the trailing
//     submatrix.
//
// Errors:
//   - mat.ErrNonSquare           — m is not square.
//   - mat.ErrNonSymmetric        — wrapped with the offending (i, j) pair and
//     the threshold used.
//   - mat.ErrNonPositiveDefinite — wrapped with the pivot index and value.
//
// Determinism:
//   - Fixed i→j scan and i→q→p update orders; no data-dependent reordering.
//
// Complexity:
//   - Time O(n³) (n³/3 flops), Space O(n²) for the private factor.
func New(m mat.Matrix, opts ...Option) (*Decomposition, error) {
	// Stage 1: structural validation + private snapshot.
	if err := mat.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("cholesky.New: %w", err)
	}
	cfg := gatherOptions(opts)
	lt, err := mat.Snapshot(m)
	if err != nil {
		return nil, fmt.Errorf("cholesky.New: %w", err)
	}
	n := len(lt)

	// Stage 2: symmetry check within the relative threshold, then zero the
	// lower triangle (it is never read again).
	if err = mat.ValidateSymmetricRel(lt, cfg.relSym); err != nil {
		return nil, fmt.Errorf("cholesky.New: %w", err)
	}
	var i, j, q, p int // loop iterators
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			lt[j][i] = 0
		}
	}

	// Stage 3: outer-product elimination. After column i the row lt[i]
	// holds the final row i of Lᵗ.
	var (
		ltI     []float64 // row i of the factor
		inverse float64   // 1/√pivot
	)
	for i = 0; i < n; i++ {
		ltI = lt[i]
		// positivity check on the current pivot
		if ltI[i] <= cfg.absPos {
			return nil, fmt.Errorf("cholesky.New: diagonal element %d is %g (threshold %g): %w",
				i, ltI[i], cfg.absPos, mat.ErrNonPositiveDefinite)
		}
		ltI[i] = math.Sqrt(ltI[i])
		inverse = 1.0 / ltI[i]

		// scale the remainder of row i and rank-1-update the trailing block
		for q = n - 1; q > i; q-- {
			ltI[q] *= inverse
			ltQ := lt[q]
			for p = q; p < n; p++ {
				ltQ[p] -= ltI[q] * ltI[p]
			}
		}
	}

	return &Decomposition{lt: lt}, nil
}

// LT returns the transpose of the factor L (upper triangular) as a memoized
// matrix view. Complexity: O(n²) on first call, O(1) after.
func (d *Decomposition) LT() mat.Matrix {
	if d.cachedLT == nil {
		// construction from a private snapshot cannot fail: shape is n×n, n≥1
		lt, _ := mat.NewDenseData(d.lt)
		d.cachedLT = lt
	}

	return d.cachedLT
}

// L returns the lower-triangular factor, computed as LT transposed and
// memoized. Complexity: O(n²) on first call, O(1) after.
func (d *Decomposition) L() mat.Matrix {
	if d.cachedL == nil {
		l, _ := mat.Transpose(d.LT())
		d.cachedL = l
	}

	return d.cachedL
}

// Det returns the determinant of the original matrix: the product of the
// squared diagonal entries of Lᵗ. Complexity: O(n).
func (d *Decomposition) Det() float64 {
	det := 1.0
	for i := 0; i < len(d.lt); i++ {
		det *= d.lt[i][i] * d.lt[i][i]
	}

	return det
}

// Solver returns a solver borrowing the factor array read-only. The solver
// is cheap and recreatable at will; its validity is scoped to d's lifetime.
func (d *Decomposition) Solver() *Solver {
	return &Solver{lt: d.lt}
}
