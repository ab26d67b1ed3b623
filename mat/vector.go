// SPDX-License-Identifier: MIT

// Package mat: DenseVector — flat-slice implementation of Vector.
// The fused update CombineToSelf is the workhorse of the iterative solvers:
// x += α·p, r −= α·q and the β-recurrence are all single calls into it.
package mat

import (
	"fmt"
	"math"
)

// vecErrorf wraps an underlying error with vector method context.
func vecErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// DenseVector is a contiguous float64 vector.
type DenseVector struct {
	data []float64 // backing storage, length == Dim()
}

// NewDenseVector creates a zero vector of length n.
// Complexity: O(n).
func NewDenseVector(n int) (*DenseVector, error) {
	if n <= 0 {
		return nil, vecErrorf("NewDenseVector", ErrBadShape)
	}

	return &DenseVector{data: make([]float64, n)}, nil
}

// NewDenseVectorData creates a DenseVector by deep-copying data.
// Complexity: O(n).
func NewDenseVectorData(data []float64) (*DenseVector, error) {
	if len(data) == 0 {
		return nil, vecErrorf("NewDenseVectorData", ErrBadShape)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &DenseVector{data: cp}, nil
}

// Dim returns the vector length. Complexity: O(1).
func (v *DenseVector) Dim() int { return len(v.data) }

// AtVec retrieves entry i. Complexity: O(1).
func (v *DenseVector) AtVec(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vecErrorf("DenseVector.AtVec", ErrOutOfRange)
	}

	return v.data[i], nil
}

// SetVec assigns value x at entry i. Complexity: O(1).
func (v *DenseVector) SetVec(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf("DenseVector.SetVec", ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Dot returns the inner product with other.
// Fast path pairs two flat slices; the fallback walks other via AtVec.
// Complexity: O(n).
func (v *DenseVector) Dot(other Vector) (float64, error) {
	// Validate conformance
	if other == nil {
		return 0, vecErrorf("DenseVector.Dot", ErrNilMatrix)
	}
	if other.Dim() != len(v.data) {
		return 0, vecErrorf("DenseVector.Dot", ErrDimensionMismatch)
	}

	var (
		i   int     // loop iterator
		sum float64 // accumulator
	)
	// Fast path: both flat
	if w, ok := other.(*DenseVector); ok {
		for i = 0; i < len(v.data); i++ {
			sum += v.data[i] * w.data[i]
		}

		return sum, nil
	}
	// Sparse counterpart: delegate so only stored entries are visited
	if s, ok := other.(*SparseVector); ok {
		return s.Dot(v)
	}

	// Fallback: interface path
	var x float64
	var err error
	for i = 0; i < len(v.data); i++ {
		x, err = other.AtVec(i)
		if err != nil {
			return 0, vecErrorf("DenseVector.Dot", err)
		}
		sum += v.data[i] * x
	}

	return sum, nil
}

// Norm returns the Euclidean norm. Complexity: O(n).
func (v *DenseVector) Norm() float64 {
	var sum float64
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i] * v.data[i]
	}

	return math.Sqrt(sum)
}

// CombineToSelf computes v = a*v + b*other in place.
// Complexity: O(n).
func (v *DenseVector) CombineToSelf(a, b float64, other Vector) error {
	// Validate conformance
	if other == nil {
		return vecErrorf("DenseVector.CombineToSelf", ErrNilMatrix)
	}
	if other.Dim() != len(v.data) {
		return vecErrorf("DenseVector.CombineToSelf", ErrDimensionMismatch)
	}

	var i int // loop iterator
	// Fast path: both flat
	if w, ok := other.(*DenseVector); ok {
		for i = 0; i < len(v.data); i++ {
			v.data[i] = a*v.data[i] + b*w.data[i]
		}

		return nil
	}

	// Fallback: interface path
	var x float64
	var err error
	for i = 0; i < len(v.data); i++ {
		x, err = other.AtVec(i)
		if err != nil {
			return vecErrorf("DenseVector.CombineToSelf", err)
		}
		v.data[i] = a*v.data[i] + b*x
	}

	return nil
}

// CloneVec returns an independent deep copy. Complexity: O(n).
func (v *DenseVector) CloneVec() Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &DenseVector{data: cp}
}

// DataVec returns a fresh []float64 snapshot. Complexity: O(n).
func (v *DenseVector) DataVec() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}
