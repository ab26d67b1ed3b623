// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/cholesky"
	"github.com/katalvlaran/linsolve/mat"
)

func newSolver(t *testing.T, rows [][]float64) *cholesky.Solver {
	t.Helper()
	d, err := cholesky.New(mustDense(t, rows))
	require.NoError(t, err)

	return d.Solver()
}

func TestSolver_SolveVec(t *testing.T) {
	s := newSolver(t, spd)
	require.True(t, s.IsNonSingular())

	// b = A·[1, -2, 3] computed by hand
	x, err := s.SolveVec([]float64{-68, -191, 364})
	require.NoError(t, err)
	want := []float64{1, -2, 3}
	for i := range want {
		assert.InDelta(t, want[i], x[i], 1e-9, "x[%d]", i)
	}

	_, err = s.SolveVec([]float64{1, 2})
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestSolver_SolveVecDoesNotMutateRHS(t *testing.T) {
	s := newSolver(t, spd)
	b := []float64{-68, -191, 364}
	_, err := s.SolveVec(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-68, -191, 364}, b)
}

func TestSolver_SolveBlock(t *testing.T) {
	s := newSolver(t, spd)

	// Two right-hand sides solved as one block
	b := mustDense(t, [][]float64{{4, -68}, {12, -191}, {-16, 364}})
	x, err := s.Solve(b)
	require.NoError(t, err)

	// first column is e1 (b's first column is A's first column),
	// second column is the hand-computed solution from SolveVec
	got, err := mat.Snapshot(x)
	require.NoError(t, err)
	want := [][]float64{{1, 1}, {0, -2}, {0, 3}}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], 1e-9, "(%d,%d)", i, j)
		}
	}

	_, err = s.Solve(mustDense(t, [][]float64{{1}, {2}}))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = s.Solve(nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestSolver_Inverse(t *testing.T) {
	s := newSolver(t, spd)
	inv, err := s.Inverse()
	require.NoError(t, err)

	// A·A⁻¹ = I
	prod, err := mat.Mul(mustDense(t, spd), inv)
	require.NoError(t, err)
	got, err := mat.Snapshot(prod)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, got[i][j], 1e-9, "(%d,%d)", i, j)
		}
	}
}
