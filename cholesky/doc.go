// SPDX-License-Identifier: MIT

// Package cholesky factors a symmetric positive-definite matrix A into
// A = L·Lᵗ with L lower triangular.
//
// The decomposition runs eagerly inside New: the input is snapshotted once,
// symmetry is checked within a relative threshold, and the outer-product
// elimination rejects any non-positive diagonal pivot. On success the object
// is immutable; factor accessors (L, LT) are memoized views over the private
// factor array, Det is the product of the squared diagonal, and Solver
// performs the forward/backward triangular sweeps for vectors, matrices and
// the inverse.
//
// Failure modes (all fatal at construction, matched via errors.Is):
//
//	mat.ErrNonSquare           — input is not square
//	mat.ErrNonSymmetric        — |A[i][j]−A[j][i]| exceeds the relative threshold
//	mat.ErrNonPositiveDefinite — a diagonal pivot fell below the positivity threshold
//
// Thresholds default to DefaultRelativeSymmetryThreshold and
// DefaultPositivityThreshold and are tunable through functional options.
package cholesky
