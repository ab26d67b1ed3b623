// SPDX-License-Identifier: MIT

// Package mat: Operator adapters.
// OpMatrix lifts any Matrix into the matrix-free Operator surface consumed by
// the iterative solvers; custom stencil/graph operators implement Operator
// directly and never materialize A.
package mat

import "fmt"

// OpMatrix adapts a Matrix to the Operator interface.
type OpMatrix struct {
	m Matrix // wrapped matrix, never mutated
}

// NewOpMatrix wraps m as an Operator.
// Returns ErrNilMatrix for a nil input. Complexity: O(1).
func NewOpMatrix(m Matrix) (*OpMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewOpMatrix: %w", err)
	}

	return &OpMatrix{m: m}, nil
}

// Rows returns the output dimension. Complexity: O(1).
func (o *OpMatrix) Rows() int { return o.m.Rows() }

// Cols returns the input dimension. Complexity: O(1).
func (o *OpMatrix) Cols() int { return o.m.Cols() }

// Apply returns A·x as a fresh slice by delegating to the MatVec kernel.
// Complexity: O(r*c).
func (o *OpMatrix) Apply(x []float64) ([]float64, error) {
	return MatVec(o.m, x)
}
