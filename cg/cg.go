// SPDX-License-Identifier: MIT

package cg

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// cgErrorf wraps err with the entry-point tag, preserving errors.Is matching.
func cgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ConjugateGradient solves A·x = b for symmetric positive definite operators
// by the preconditioned conjugate gradient method.
//
// The solver itself is a small immutable configuration plus an
// IterationManager; construct one with New and reuse it across solves. It is
// not safe for concurrent solves because the manager's count is shared.
type ConjugateGradient struct {
	manager *IterationManager
	delta   float64 // residual reduction factor: stop when ‖r‖ ≤ delta·‖b‖
	check   bool    // verify positive definiteness of A and M during descent
}

// New returns a solver limited to maxIterations descent steps, converging
// when ‖r‖ ≤ delta·‖b‖. With check enabled, each iteration verifies that the
// quantities r·z and p·q stay positive and aborts with
// mat.ErrNonPositiveDefinite when they do not; without it an indefinite
// operator fails only through non-convergence.
//
// Panics if maxIterations < 1 or delta <= 0 (programmer error).
func New(maxIterations int, delta float64, check bool) *ConjugateGradient {
	if delta <= 0 {
		panic(fmt.Sprintf("cg: delta must be > 0, got %g", delta))
	}

	return &ConjugateGradient{
		manager: NewIterationManager(maxIterations),
		delta:   delta,
		check:   check,
	}
}

// Manager exposes the iteration manager so callers can attach listeners or
// inspect the count after a solve.
func (c *ConjugateGradient) Manager() *IterationManager { return c.manager }

// Solve runs CG from the zero starting guess and returns the solution.
//
// Errors:
//   - mat.ErrNonSquareOperator — a is not square.
//   - mat.ErrDimensionMismatch — len(b) differs from a's dimension.
//   - mat.ErrNonPositiveDefinite — definiteness check tripped (check mode).
//   - mat.ErrMaxIterations — budget exhausted before convergence.
//
// Complexity: O(k·(cost(A) + n)) for k iterations.
func (c *ConjugateGradient) Solve(a mat.Operator, b []float64) ([]float64, error) {
	return c.SolvePreconditioned(a, nil, b, nil)
}

// SolveWithGuess is Solve starting from x0 instead of the zero vector. x0 is
// not mutated. A good guess can cut the iteration count substantially; a bad
// one costs at most a few extra iterations.
func (c *ConjugateGradient) SolveWithGuess(a mat.Operator, b, x0 []float64) ([]float64, error) {
	return c.SolvePreconditioned(a, nil, b, x0)
}

// SolvePreconditioned runs CG with the preconditioner m approximating A⁻¹
// (pass nil for unpreconditioned descent) from the starting guess x0 (pass
// nil for the zero vector). Neither b nor x0 is mutated.
//
// Errors: as Solve, plus mat.ErrDimensionMismatch when m's dimension
// differs from a's.
func (c *ConjugateGradient) SolvePreconditioned(a, m mat.Operator, b, x0 []float64) ([]float64, error) {
	const tag = "cg.Solve"
	if a == nil {
		return nil, cgErrorf(tag, mat.ErrNilMatrix)
	}
	bv, err := mat.NewDenseVectorData(b)
	if err != nil {
		return nil, cgErrorf(tag, err)
	}
	var xv *mat.DenseVector
	if x0 != nil {
		if xv, err = mat.NewDenseVectorData(x0); err != nil {
			return nil, cgErrorf(tag, err)
		}
	} else {
		if xv, err = mat.NewDenseVector(a.Cols()); err != nil {
			return nil, cgErrorf(tag, err)
		}
	}
	if err = c.SolveInPlace(a, m, bv, xv); err != nil {
		return nil, err
	}

	return xv.DataVec(), nil
}

// SolveInPlace is the workhorse: it runs preconditioned CG on mat.Vector
// values, refining x in place. This is the only mutating entry point; the
// slice-based wrappers above funnel into it. b is never mutated. On error x
// holds the last iterate reached, which may still be useful as a warm start.
//
// Errors: as SolvePreconditioned.
func (c *ConjugateGradient) SolveInPlace(a, m mat.Operator, b, x mat.Vector) error {
	const tag = "cg.SolveInPlace"
	if err := checkOperators(a, m, b, x); err != nil {
		return cgErrorf(tag, err)
	}
	c.manager.Reset()
	rmax := c.delta * b.Norm()

	// r = b − A·x; initialization counts as iteration 1
	r, err := residual(a, b, x)
	if err != nil {
		return cgErrorf(tag, err)
	}
	if err = c.manager.Increment(); err != nil {
		return err
	}
	evt := makeEvent(c.manager.Count(), x, r)
	c.manager.FireInitialization(evt)
	if evt.ResidualNorm <= rmax {
		c.manager.FireTermination(evt)

		return nil
	}

	var (
		p, z, q      mat.Vector
		rho, rhoPrev float64
		alpha, pq    float64
		qs           []float64
	)
	for {
		if err = c.manager.Increment(); err != nil {
			c.manager.FireTermination(makeEvent(c.manager.Count()-1, x, r))

			return err
		}
		c.manager.FireIterationStarted(makeEvent(c.manager.Count(), x, r))

		// z = M·r, or the residual itself when unpreconditioned
		if m != nil {
			zs, aerr := m.Apply(r.DataVec())
			if aerr != nil {
				return cgErrorf(tag, aerr)
			}
			if z, aerr = mat.NewDenseVectorData(zs); aerr != nil {
				return cgErrorf(tag, aerr)
			}
		} else {
			z = r
		}

		rhoPrev = rho
		if rho, err = r.Dot(z); err != nil {
			return cgErrorf(tag, err)
		}
		if c.check && rho <= 0 {
			return fmt.Errorf("%s: preconditioner not positive definite: r·z = %g: %w",
				tag, rho, mat.ErrNonPositiveDefinite)
		}

		// p = z + β·p with β = ρ/ρ_prev; first step takes p = z
		if p == nil {
			p = z.CloneVec()
		} else {
			if err = p.CombineToSelf(rho/rhoPrev, 1.0, z); err != nil {
				return cgErrorf(tag, err)
			}
		}

		if qs, err = a.Apply(p.DataVec()); err != nil {
			return cgErrorf(tag, err)
		}
		if q, err = mat.NewDenseVectorData(qs); err != nil {
			return cgErrorf(tag, err)
		}
		if pq, err = p.Dot(q); err != nil {
			return cgErrorf(tag, err)
		}
		if c.check && pq <= 0 {
			return fmt.Errorf("%s: operator not positive definite: p·q = %g: %w",
				tag, pq, mat.ErrNonPositiveDefinite)
		}

		// x += α·p, r −= α·q
		alpha = rho / pq
		if err = x.CombineToSelf(1.0, alpha, p); err != nil {
			return cgErrorf(tag, err)
		}
		if err = r.CombineToSelf(1.0, -alpha, q); err != nil {
			return cgErrorf(tag, err)
		}

		evt = makeEvent(c.manager.Count(), x, r)
		c.manager.FireIterationPerformed(evt)
		if evt.ResidualNorm <= rmax {
			c.manager.FireTermination(evt)

			return nil
		}
	}
}

// checkOperators validates every shape before the first iteration so that a
// solve either starts cleanly or not at all.
func checkOperators(a, m mat.Operator, b, x mat.Vector) error {
	if a == nil || b == nil || x == nil {
		return mat.ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return fmt.Errorf("operator is %dx%d: %w", a.Rows(), a.Cols(), mat.ErrNonSquareOperator)
	}
	if b.Dim() != a.Rows() {
		return fmt.Errorf("b has length %d, operator dimension is %d: %w",
			b.Dim(), a.Rows(), mat.ErrDimensionMismatch)
	}
	if x.Dim() != a.Cols() {
		return fmt.Errorf("x has length %d, operator dimension is %d: %w",
			x.Dim(), a.Cols(), mat.ErrDimensionMismatch)
	}
	if m != nil {
		if m.Rows() != m.Cols() {
			return fmt.Errorf("preconditioner is %dx%d: %w", m.Rows(), m.Cols(), mat.ErrNonSquareOperator)
		}
		if m.Rows() != a.Rows() {
			return fmt.Errorf("preconditioner dimension %d, operator dimension %d: %w",
				m.Rows(), a.Rows(), mat.ErrDimensionMismatch)
		}
	}

	return nil
}

// residual computes r = b − A·x as a fresh dense vector.
func residual(a mat.Operator, b, x mat.Vector) (mat.Vector, error) {
	ax, err := a.Apply(x.DataVec())
	if err != nil {
		return nil, err
	}
	r, err := mat.NewDenseVectorData(ax)
	if err != nil {
		return nil, err
	}
	// r = −A·x + b
	if err = r.CombineToSelf(-1.0, 1.0, b); err != nil {
		return nil, err
	}

	return r, nil
}

// makeEvent snapshots the current iterate for listener delivery.
func makeEvent(iteration int, x, r mat.Vector) IterationEvent {
	return IterationEvent{
		Iteration:    iteration,
		ResidualNorm: r.Norm(),
		X:            x.DataVec(),
		Residual:     r.DataVec(),
	}
}
