// SPDX-License-Identifier: MIT

// Package lu factors a square matrix into P·A = L·U via in-place Gaussian
// elimination with row pivoting, in two flavors sharing one skeleton:
//
//   - Decomposition — float64, partial pivoting (largest-magnitude candidate
//     per column) with an absolute singularity threshold on the pivot.
//   - FieldDecomposition[T] — generic over any mat.Field element. Fields
//     have no ordering, so the pivot is simply the first row whose candidate
//     entry is non-zero; no non-zero candidate means the matrix is singular.
//
// Singularity is a SOFT failure: New still returns a flagged object. Factor
// accessors (L, U, P) return nil on a singular decomposition, Det returns
// zero, and every solve or inverse through the Solver fails with
// mat.ErrSingular. All other violations (non-square input, mismatched
// right-hand sides) abort immediately with the corresponding mat sentinel.
//
// The pivot vector records the permutation: Pivot()[i] is the original row
// now in position i, always a permutation of 0..n-1. The determinant is
// parity × Π U[i][i], parity flipping with every row swap.
package lu
