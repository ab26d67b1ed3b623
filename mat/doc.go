// SPDX-License-Identifier: MIT

// Package mat provides the numeric primitives shared by every decomposition
// and solver in linsolve:
//
//   - Matrix — a minimal mutable 2-D float64 surface (Rows/Cols/At/Set/Clone)
//     with Dense as the canonical row-major implementation.
//   - Vector — 1-D primitives (AtVec/Dot/Norm/CombineToSelf) with a flat
//     DenseVector and a map-backed SparseVector.
//   - Operator — a matrix-free linear map (Apply only), so iterative solvers
//     never require a materialized matrix.
//   - Field — a generic constraint for exact field-element arithmetic used by
//     the generic LU decomposition, with Rat (math/big) as the reference type.
//
// Decompositions copy their input once at construction and never mutate the
// caller's matrix; kernels here follow the same rule. All public indexers
// return sentinel errors instead of panicking, and every error condition is
// matchable via errors.Is against the sentinels in errors.go.
//
// Concurrency: values in this package are not safe for concurrent mutation.
// Read-only concurrent use of an already-built value is safe because no
// shared state is touched after construction.
package mat
