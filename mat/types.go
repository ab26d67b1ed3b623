// SPDX-License-Identifier: MIT

// Package mat: public interfaces for matrices, vectors and linear operators.
// Errors and validators live in dedicated files (errors.go, validators.go)
// per the package conventions.
package mat

// Matrix represents a two-dimensional mutable array of float64 values.
// Decompositions consume any Matrix through this surface; they snapshot it
// once at construction and never mutate the original.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector represents a one-dimensional mutable array of float64 values with
// the primitives the iterative solvers need: dot product, Euclidean norm and
// the fused update this = a·this + b·other.
type Vector interface {
	// Dim returns the logical length of the vector. Complexity: O(1).
	Dim() int

	// AtVec retrieves entry i. Returns ErrOutOfRange for invalid i.
	// Complexity: O(1).
	AtVec(i int) (float64, error)

	// SetVec assigns value v at entry i. Returns ErrOutOfRange for invalid i.
	// Complexity: O(1).
	SetVec(i int, v float64) error

	// Dot returns the inner product with other.
	// Returns ErrDimensionMismatch when lengths differ.
	// Complexity: O(n) dense, O(nnz) sparse.
	Dot(other Vector) (float64, error)

	// Norm returns the Euclidean norm. Complexity: O(n).
	Norm() float64

	// CombineToSelf computes this = a*this + b*other in place.
	// Returns ErrDimensionMismatch when lengths differ.
	// Complexity: O(n).
	CombineToSelf(a, b float64, other Vector) error

	// CloneVec returns an independent deep copy. Complexity: O(n).
	CloneVec() Vector

	// DataVec returns a fresh dense []float64 snapshot. Complexity: O(n).
	DataVec() []float64
}

// Operator is a matrix-free linear map x ↦ A·x. Iterative solvers consume
// operators only through Apply, so A never has to be materialized.
type Operator interface {
	// Rows returns the output dimension of the map. Complexity: O(1).
	Rows() int

	// Cols returns the input dimension of the map. Complexity: O(1).
	Cols() int

	// Apply returns A·x as a fresh slice.
	// Returns ErrDimensionMismatch when len(x) != Cols().
	Apply(x []float64) ([]float64, error)
}
