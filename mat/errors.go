// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared across linsolve.
// All decompositions and solvers MUST return these sentinels and tests MUST
// check them via errors.Is. No algorithm panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and to allow easy
// grepping across logs. DO NOT re-wrap these sentinels without need; when
// context is essential (offending index, threshold, value), wrap once with
// fmt.Errorf("ctx: %w", ErrX) at the detection site — callers still match
// with errors.Is.

var (
	// ErrNilMatrix indicates that a nil Matrix, Vector or Operator was used.
	ErrNilMatrix = errors.New("mat: nil operand")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/AtVec/SetVec) return this, never panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side whose length disagrees with the operator order.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Cholesky, LU).
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrNonSymmetric signals that a matrix expected to be symmetric violated
	// symmetry within the configured relative threshold (Cholesky input).
	ErrNonSymmetric = errors.New("mat: matrix is not symmetric within threshold")

	// ErrNonPositiveDefinite signals a non-positive pivot or quadratic form:
	// Cholesky elimination, or the optional operator check inside CG.
	ErrNonPositiveDefinite = errors.New("mat: matrix is not positive definite")

	// ErrSingular is returned when solving or inverting a decomposition that
	// was flagged singular at construction time.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrNonSquareOperator signals that an iterative solver's operator or
	// preconditioner has unequal row/column dimensions.
	ErrNonSquareOperator = errors.New("mat: operator is not square")

	// ErrMaxIterations indicates the iteration budget was exhausted without
	// convergence. The cg package wraps it with the limit that was reached.
	ErrMaxIterations = errors.New("mat: maximum iteration count exceeded")

	// ErrCutoffTooLarge is returned by the SVD covariance accessor when the
	// requested singular-value cutoff excludes every singular value.
	ErrCutoffTooLarge = errors.New("mat: singular-value cutoff exceeds largest singular value")
)
