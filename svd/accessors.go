// SPDX-License-Identifier: MIT

// Package svd: memoized factor accessors and derived quantities.
// The decomposition is fully computed by New, so every accessor here is a
// pure read: matrix views are built once from the internal arrays and
// cached, never recomputed or invalidated.
package svd

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// Values returns a copy of the singular values, non-negative and sorted in
// non-increasing order, length min(m, n). Complexity: O(p).
func (d *Decomposition) Values() []float64 {
	cp := make([]float64, len(d.values))
	copy(cp, d.values)

	return cp
}

// U returns the matrix of left singular vectors (rows×p). Memoized.
func (d *Decomposition) U() mat.Matrix {
	if d.cachedU == nil {
		u, _ := mat.NewDenseData(d.u)
		d.cachedU = u
	}

	return d.cachedU
}

// UT returns Uᵗ, lazily transposed from U and cached.
func (d *Decomposition) UT() mat.Matrix {
	if d.cachedUT == nil {
		ut, _ := mat.Transpose(d.U())
		d.cachedUT = ut
	}

	return d.cachedUT
}

// V returns the matrix of right singular vectors (cols×p). Memoized.
func (d *Decomposition) V() mat.Matrix {
	if d.cachedV == nil {
		v, _ := mat.NewDenseData(d.v)
		d.cachedV = v
	}

	return d.cachedV
}

// VT returns Vᵗ, lazily transposed from V and cached.
func (d *Decomposition) VT() mat.Matrix {
	if d.cachedVT == nil {
		vt, _ := mat.Transpose(d.V())
		d.cachedVT = vt
	}

	return d.cachedVT
}

// S returns the p×p diagonal matrix of singular values. Memoized.
func (d *Decomposition) S() mat.Matrix {
	if d.cachedS == nil {
		p := len(d.values)
		s, _ := mat.NewDense(p, p)
		for i := 0; i < p; i++ {
			_ = s.Set(i, i, d.values[i])
		}
		d.cachedS = s
	}

	return d.cachedS
}

// Norm2 returns the spectral norm σ_max. Complexity: O(1).
func (d *Decomposition) Norm2() float64 { return d.values[0] }

// ConditionNumber returns σ_max / σ_min. Complexity: O(1).
func (d *Decomposition) ConditionNumber() float64 {
	return d.values[0] / d.values[len(d.values)-1]
}

// InverseConditionNumber returns σ_min / σ_max — a better-behaved quantity
// than ConditionNumber for near-singular inputs (no division blow-up).
// Complexity: O(1).
func (d *Decomposition) InverseConditionNumber() float64 {
	return d.values[len(d.values)-1] / d.values[0]
}

// Rank returns the number of singular values exceeding the tolerance
// tol = max(rows·σ_max·eps, √safeMin). Complexity: O(p).
func (d *Decomposition) Rank() int {
	rank := 0
	for i := 0; i < len(d.values); i++ {
		if d.values[i] > d.tol {
			rank++
		}
	}

	return rank
}

// Covariance returns V·diag(1/σᵢ²)·Vᵗ built from the singular values that
// are ≥ minSingularValue.
//
// Errors:
//   - mat.ErrCutoffTooLarge — the cutoff excludes every singular value;
//     the wrap carries the cutoff and σ_max.
//
// Complexity: Time O(n²·d) for d retained values, Space O(n²).
func (d *Decomposition) Covariance(minSingularValue float64) (mat.Matrix, error) {
	p := len(d.values)
	dimension := 0
	for dimension < p && d.values[dimension] >= minSingularValue {
		dimension++
	}
	if dimension == 0 {
		return nil, fmt.Errorf("svd.Covariance: cutoff %g exceeds largest singular value %g: %w",
			minSingularValue, d.values[0], mat.ErrCutoffTooLarge)
	}

	// J[i][j] = Vᵗ[i][j] / σᵢ for the retained rows; covariance = Jᵗ·J
	n := len(d.v)
	j, err := mat.NewDense(dimension, n)
	if err != nil {
		return nil, fmt.Errorf("svd.Covariance: %w", err)
	}
	var row, col int // loop iterators
	for row = 0; row < dimension; row++ {
		for col = 0; col < n; col++ {
			_ = j.Set(row, col, d.v[col][row]/d.values[row])
		}
	}
	jt, err := mat.Transpose(j)
	if err != nil {
		return nil, fmt.Errorf("svd.Covariance: %w", err)
	}

	return mat.Mul(jt, j)
}

// Solver returns a least-squares solver in the Moore–Penrose sense. The
// pseudo-inverse V·Σ⁺·Uᵗ is computed once here and cached inside the solver;
// every subsequent solve is a plain matrix product.
func (d *Decomposition) Solver() (*Solver, error) {
	// Σ⁺ scales the rows of Uᵗ: 1/σᵢ above the tolerance, 0 at or below it
	sut, err := mat.Snapshot(d.UT())
	if err != nil {
		return nil, fmt.Errorf("svd.Solver: %w", err)
	}
	var i, jj int // loop iterators
	var a float64 // row scale
	for i = 0; i < len(d.values); i++ {
		if d.values[i] > d.tol {
			a = 1.0 / d.values[i]
		} else {
			a = 0
		}
		for jj = 0; jj < len(sut[i]); jj++ {
			sut[i][jj] *= a
		}
	}
	scaled, err := mat.NewDenseData(sut)
	if err != nil {
		return nil, fmt.Errorf("svd.Solver: %w", err)
	}
	pinv, err := mat.Mul(d.V(), scaled)
	if err != nil {
		return nil, fmt.Errorf("svd.Solver: %w", err)
	}

	return &Solver{pseudoInverse: pinv, nonSingular: d.Rank() == d.rows}, nil
}
