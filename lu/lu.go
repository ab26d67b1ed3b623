// SPDX-License-Identifier: MIT

// Package lu: real-valued factorization with partial pivoting.
package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/mat"
)

// Decomposition is an immutable LU factorization of a square float64 matrix.
// The combined factors live in lu: U in and above the diagonal, the
// multipliers of unit-lower-triangular L strictly below it.
type Decomposition struct {
	lu       [][]float64 // combined in-place factors, privately owned
	pivot    []int       // pivot[i] = original row now in position i
	even     bool        // parity of the row swaps (determinant sign)
	singular bool        // soft-failure flag fixed at construction

	cachedL mat.Matrix // memoized L view
	cachedU mat.Matrix // memoized U view
	cachedP mat.Matrix // memoized permutation view
}

// New factors a square matrix m with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square; snapshot it once; init
//     pivot[i] = i and even parity.
//   - Stage 2: For each column, fold the dot-product corrections into the
//     upper entries, then into the lower candidates, tracking the row with
//     the largest |candidate| (partial pivoting).
//   - Stage 3: |pivot| below the singularity threshold marks the object
//     singular and stops further elimination (soft failure — New still
//     succeeds). Otherwise swap rows if needed, flip parity, and divide the
//     sub-diagonal column entries by the pivot.
//
// Errors:
//   - mat.ErrNonSquare, mat.ErrNilMatrix — structural, fatal.
//
// Determinism:
//   - Fixed col→row→i orders; ties in the pivot scan keep the first maximum.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the private factors.
func New(m mat.Matrix, opts ...Option) (*Decomposition, error) {
	// Stage 1: structural validation + private snapshot.
	if err := mat.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("lu.New: %w", err)
	}
	cfg := gatherOptions(opts)
	lu, err := mat.Snapshot(m)
	if err != nil {
		return nil, fmt.Errorf("lu.New: %w", err)
	}
	n := len(lu)

	d := &Decomposition{lu: lu, pivot: make([]int, n), even: true}
	for i := 0; i < n; i++ {
		d.pivot[i] = i
	}

	// Stage 2+3: column-by-column elimination.
	var (
		col, row, i int     // loop iterators
		sum         float64 // dot-product accumulator
		largest     float64 // best |candidate| so far
		max         int     // row index of the best candidate
		luDiag      float64 // pivot value after the swap
	)
	for col = 0; col < n; col++ {
		// upper entries: rows above the diagonal
		for row = 0; row < col; row++ {
			luRow := lu[row]
			sum = luRow[col]
			for i = 0; i < row; i++ {
				sum -= luRow[i] * lu[i][col]
			}
			luRow[col] = sum
		}

		// lower candidates: rows on and below the diagonal, tracking the
		// largest magnitude for the pivot choice
		max = col
		largest = math.Inf(-1)
		for row = col; row < n; row++ {
			luRow := lu[row]
			sum = luRow[col]
			for i = 0; i < col; i++ {
				sum -= luRow[i] * lu[i][col]
			}
			luRow[col] = sum
			if math.Abs(sum) > largest {
				largest = math.Abs(sum)
				max = row
			}
		}

		// singularity check on the chosen pivot
		if math.Abs(lu[max][col]) < cfg.singularity {
			d.singular = true

			return d, nil
		}

		// row exchange, recorded in the pivot vector and the parity flag
		if max != col {
			lu[max], lu[col] = lu[col], lu[max]
			d.pivot[max], d.pivot[col] = d.pivot[col], d.pivot[max]
			d.even = !d.even
		}

		// complete column col of L
		luDiag = lu[col][col]
		for row = col + 1; row < n; row++ {
			lu[row][col] /= luDiag
		}
	}

	return d, nil
}

// IsSingular reports whether the matrix was flagged singular at
// construction time. Complexity: O(1).
func (d *Decomposition) IsSingular() bool { return d.singular }

// L returns the unit-lower-triangular factor, or nil when singular.
// Memoized. Complexity: O(n²) on first call.
func (d *Decomposition) L() mat.Matrix {
	if d.singular {
		return nil
	}
	if d.cachedL == nil {
		n := len(d.lu)
		l, _ := mat.NewDense(n, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				_ = l.Set(i, j, d.lu[i][j])
			}
			_ = l.Set(i, i, 1.0) // unit diagonal
		}
		d.cachedL = l
	}

	return d.cachedL
}

// U returns the upper-triangular factor, or nil when singular.
// Memoized. Complexity: O(n²) on first call.
func (d *Decomposition) U() mat.Matrix {
	if d.singular {
		return nil
	}
	if d.cachedU == nil {
		n := len(d.lu)
		u, _ := mat.NewDense(n, n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				_ = u.Set(i, j, d.lu[i][j])
			}
		}
		d.cachedU = u
	}

	return d.cachedU
}

// P returns the permutation matrix built from the pivot vector
// (P[i][pivot[i]] = 1), or nil when singular. P·A = L·U. Memoized.
// Complexity: O(n²) on first call.
func (d *Decomposition) P() mat.Matrix {
	if d.singular {
		return nil
	}
	if d.cachedP == nil {
		n := len(d.lu)
		p, _ := mat.NewDense(n, n)
		for i := 0; i < n; i++ {
			_ = p.Set(i, d.pivot[i], 1.0)
		}
		d.cachedP = p
	}

	return d.cachedP
}

// Pivot returns a copy of the pivot vector: Pivot()[i] is the original row
// now in position i, always a permutation of 0..n-1. Complexity: O(n).
func (d *Decomposition) Pivot() []int {
	cp := make([]int, len(d.pivot))
	copy(cp, d.pivot)

	return cp
}

// Det returns the determinant: parity × Π U[i][i], or 0 for a singular
// decomposition. Complexity: O(n).
func (d *Decomposition) Det() float64 {
	if d.singular {
		return 0
	}
	det := 1.0
	if !d.even {
		det = -1.0
	}
	for i := 0; i < len(d.lu); i++ {
		det *= d.lu[i][i]
	}

	return det
}

// Solver returns a solver borrowing the factors read-only. Construction
// always succeeds; on a singular decomposition every solve and Inverse call
// fails with mat.ErrSingular.
func (d *Decomposition) Solver() *Solver {
	return &Solver{lu: d.lu, pivot: d.pivot, singular: d.singular}
}
