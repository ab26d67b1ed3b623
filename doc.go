// Package linsolve is your in-memory toolkit for factorizing matrices and
// solving linear systems — from dense direct decompositions to matrix-free
// iterative descent.
//
// 🚀 What is linsolve?
//
//	A deterministic linear-algebra library that brings together:
//		• Core primitives: dense & sparse vectors, dense matrices, operators
//		• Cholesky: A = L·Lᵗ for symmetric positive definite systems
//		• LU: P·A = L·U with partial pivoting, determinants & inverses
//		• Generic LU: the same elimination over any exact field (big.Rat ready)
//		• SVD: A = U·Σ·Vᵗ, rank, condition numbers & least-squares solves
//		• Conjugate gradient: preconditioned iterative descent with listeners
//
// ✨ Why choose linsolve?
//
//   - Predictable numerics – fixed sweep orders, documented thresholds,
//     no data-dependent reordering
//   - Fail-fast surface – sentinel errors per package, matched via errors.Is
//   - Immutable results – every decomposition snapshots its input once and
//     never mutates caller data
//   - Observable convergence – iteration events, residual recording and
//     convergence charts for the iterative solver
//
// Under the hood, everything is organized under five subpackages:
//
//	mat/      — matrices, vectors, operators, kernels & the Field constraint
//	cholesky/ — the symmetric positive definite factorization
//	lu/       — real and generic-field factorizations with pivoting
//	svd/      — the singular value decomposition
//	cg/       — the preconditioned conjugate gradient method
//
// Quick example:
//
//	a, _ := mat.NewDenseData([][]float64{{4, 1}, {1, 3}})
//	dec, err := cholesky.New(a)
//	if err != nil {
//		// not symmetric positive definite
//	}
//	x, _ := dec.Solver().SolveVec([]float64{6, 7})
//
// Dense direct methods live in cholesky/, lu/ and svd/; when the matrix is
// large, sparse or only available as a black-box operator, reach for cg/.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
