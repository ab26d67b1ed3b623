// SPDX-License-Identifier: MIT

// Package svd computes the Singular Value Decomposition of any m×n matrix
// (m, n ≥ 1): A = U·Σ·Vᵗ with U (m×p) and V (n×p) orthogonal, Σ (p×p)
// diagonal and p = min(m, n). Singular values come out non-negative and
// sorted in non-increasing order.
//
// The algorithm is the classical two-phase Golub–Kahan scheme:
//
//  1. Householder bidiagonalization — reflections alternately from the left
//     (zeroing below the diagonal of each column) and from the right
//     (zeroing right of the super-diagonal of each row), accumulating the
//     diagonal into the singular-value array and the super-diagonal into a
//     working array, then generating explicit U and V by back-multiplying
//     identity through the stored reflectors.
//  2. Implicit-shift QR iteration on the bidiagonal form — each pass either
//     deflates a negligible trailing value (rotations into V), splits at a
//     negligible singular value (rotations into U), runs one Wilkinson-shift
//     QR sweep, or finalizes a converged 2×2 block (sign fix plus adjacent
//     descending re-sort across both U and V).
//
// Inputs with more columns than rows are transposed internally and the roles
// of U and V are swapped on output, so the iteration always runs on the tall
// orientation.
//
// Everything is computed eagerly in New; accessors are memoized views, and
// the least-squares Solver applies a cached Moore–Penrose pseudo-inverse.
package svd
