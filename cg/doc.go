// SPDX-License-Identifier: MIT

// Package cg implements the preconditioned conjugate gradient method for
// symmetric positive definite linear systems A·x = b.
//
// What is CG?
//
//	An iterative Krylov-subspace solver. Instead of factorizing A it only
//	ever applies A (and optionally a preconditioner M) to vectors, so A may
//	be any mat.Operator, including matrix-free maps that never materialize
//	their entries. Each iteration costs one operator application, one
//	preconditioner application and a handful of vector updates.
//
// When to use it
//
//   - A is large and sparse, or only available as a black-box x ↦ A·x;
//   - A is symmetric positive definite (the method silently diverges or
//     stalls otherwise; enable the definiteness check to fail fast);
//   - an approximate solution within a residual tolerance is acceptable.
//
// Convergence and events
//
//	The solver stops as soon as ‖r‖ ≤ δ·‖b‖ where r = b − A·x is the
//	updated residual and δ is the caller-chosen reduction factor. Progress
//	is observable through the Listener interface: initialization, the start
//	and end of every iteration and termination each fire an IterationEvent
//	with the iteration count, the residual norm and snapshots of x and r.
//	ResidualRecorder is a ready-made listener that captures the residual
//	history and can render it as a convergence chart.
//
// Iteration budget
//
//	The IterationManager counts iterations (initialization counts as
//	iteration 1) and aborts with mat.ErrMaxIterations once the budget is
//	exhausted. There is no internal retry; the partial x accumulated so far
//	is discarded by the slice-based entry points and preserved by
//	SolveInPlace.
//
// Minimal usage:
//
//	op, _ := mat.NewOpMatrix(a)
//	solver := cg.New(1000, 1e-10, true)
//	x, err := solver.Solve(op, b)
//
// All entry points validate shapes before the first iteration and wrap
// sentinel errors from package mat; match them with errors.Is.
package cg
