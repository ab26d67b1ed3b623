// SPDX-License-Identifier: MIT

// Package mat: SparseVector — hash-map backed implementation of Vector.
// Entries equal to zero are not stored; writes of 0.0 delete the key so the
// storage tracks the true support. Accumulating walks visit keys in sorted
// order, keeping floating-point reductions deterministic despite the map.
package mat

import (
	"math"
	"sort"
)

// SparseVector is a fixed-dimension vector storing only non-zero entries.
type SparseVector struct {
	n       int             // logical dimension
	entries map[int]float64 // index → non-zero value
}

// NewSparseVector creates a zero sparse vector of logical length n.
// Complexity: O(1).
func NewSparseVector(n int) (*SparseVector, error) {
	if n <= 0 {
		return nil, vecErrorf("NewSparseVector", ErrBadShape)
	}

	return &SparseVector{n: n, entries: make(map[int]float64)}, nil
}

// Dim returns the logical length. Complexity: O(1).
func (v *SparseVector) Dim() int { return v.n }

// AtVec retrieves entry i; absent keys read as 0. Complexity: O(1).
func (v *SparseVector) AtVec(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, vecErrorf("SparseVector.AtVec", ErrOutOfRange)
	}

	return v.entries[i], nil
}

// SetVec assigns value x at entry i; zero drops the key. Complexity: O(1).
func (v *SparseVector) SetVec(i int, x float64) error {
	if i < 0 || i >= v.n {
		return vecErrorf("SparseVector.SetVec", ErrOutOfRange)
	}
	if x == 0 {
		delete(v.entries, i)
	} else {
		v.entries[i] = x
	}

	return nil
}

// sortedKeys returns the stored indices in ascending order.
// Complexity: O(nnz log nnz).
func (v *SparseVector) sortedKeys() []int {
	keys := make([]int, 0, len(v.entries))
	for k := range v.entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// Dot returns the inner product with other, visiting only stored entries.
// Complexity: O(nnz log nnz) for the deterministic key order.
func (v *SparseVector) Dot(other Vector) (float64, error) {
	// Validate conformance
	if other == nil {
		return 0, vecErrorf("SparseVector.Dot", ErrNilMatrix)
	}
	if other.Dim() != v.n {
		return 0, vecErrorf("SparseVector.Dot", ErrDimensionMismatch)
	}

	var (
		sum float64 // accumulator
		x   float64
		err error
	)
	for _, k := range v.sortedKeys() { // fixed order for reproducible sums
		x, err = other.AtVec(k)
		if err != nil {
			return 0, vecErrorf("SparseVector.Dot", err)
		}
		sum += v.entries[k] * x
	}

	return sum, nil
}

// Norm returns the Euclidean norm over the stored support.
// Complexity: O(nnz log nnz).
func (v *SparseVector) Norm() float64 {
	var sum float64
	for _, k := range v.sortedKeys() {
		sum += v.entries[k] * v.entries[k]
	}

	return math.Sqrt(sum)
}

// CombineToSelf computes v = a*v + b*other in place. The result support is
// the union of both supports; entries that cancel to zero are dropped.
// Complexity: O(n) when other is dense, O(nnz log nnz) when sparse.
func (v *SparseVector) CombineToSelf(a, b float64, other Vector) error {
	// Validate conformance
	if other == nil {
		return vecErrorf("SparseVector.CombineToSelf", ErrNilMatrix)
	}
	if other.Dim() != v.n {
		return vecErrorf("SparseVector.CombineToSelf", ErrDimensionMismatch)
	}

	// Sparse counterpart: walk the union of supports in sorted order
	if w, ok := other.(*SparseVector); ok {
		// scale own entries first
		for _, k := range v.sortedKeys() {
			if err := v.SetVec(k, a*v.entries[k]); err != nil {
				return err
			}
		}
		// fold in other's support
		for _, k := range w.sortedKeys() {
			if err := v.SetVec(k, v.entries[k]+b*w.entries[k]); err != nil {
				return err
			}
		}

		return nil
	}

	// Dense/interface path: every entry may become non-zero
	var (
		i   int // loop iterator
		x   float64
		err error
	)
	for i = 0; i < v.n; i++ {
		x, err = other.AtVec(i)
		if err != nil {
			return vecErrorf("SparseVector.CombineToSelf", err)
		}
		if err = v.SetVec(i, a*v.entries[i]+b*x); err != nil {
			return err
		}
	}

	return nil
}

// CloneVec returns an independent deep copy. Complexity: O(nnz).
func (v *SparseVector) CloneVec() Vector {
	cp := &SparseVector{n: v.n, entries: make(map[int]float64, len(v.entries))}
	for k, x := range v.entries {
		cp.entries[k] = x
	}

	return cp
}

// DataVec returns a fresh dense []float64 snapshot. Complexity: O(n).
func (v *SparseVector) DataVec() []float64 {
	out := make([]float64, v.n)
	for k, x := range v.entries {
		out[k] = x
	}

	return out
}
