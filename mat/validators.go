// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep decomposition constructors minimal by delegating shape/nil/symmetry
//    checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The relative symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateSymmetricRel before Cholesky to fail fast with the exact
//    offending (i, j) pair wrapped around ErrNonSymmetric.
//  - Use ValidateVecLen for any solve/apply operation to avoid ad hoc length
//    code.

package mat

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the slice length matches the required size n.
// Errors: ErrNilMatrix (nil slice), ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetricRel checks that a square snapshot is symmetric within a
// RELATIVE threshold: |a[i][j]−a[j][i]| ≤ rel·max(|a[i][j]|,|a[j][i]|) for
// all i<j. The relative form tolerates large magnitudes without letting
// genuinely lopsided entries through.
//
// Inputs:
//   - a:   square row-major snapshot (caller guarantees squareness).
//   - rel: non-negative relative threshold.
//
// Returns:
//   - nil on success; on violation, ErrNonSymmetric wrapped with the first
//     offending (i, j) pair and the threshold used, in deterministic i→j scan
//     order.
//
// Complexity: O(n²) over the strict upper triangle. Space O(1).
func ValidateSymmetricRel(a [][]float64, rel float64) error {
	var (
		i, j     int     // loop iterators
		aij, aji float64 // symmetric counterparts
		lhs, rhs float64 // comparison terms
	)
	n := len(a)
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // strict upper triangle only
			aij, aji = a[i][j], a[j][i]
			lhs = math.Abs(aij - aji)
			rhs = rel * math.Max(math.Abs(aij), math.Abs(aji))
			if lhs > rhs {
				return validatorErrorf(
					fmt.Sprintf("ValidateSymmetricRel: a[%d][%d]=%g vs a[%d][%d]=%g (rel=%g)",
						i, j, aij, j, i, aji, rel),
					ErrNonSymmetric)
			}
		}
	}

	return nil
}
