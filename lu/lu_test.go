// SPDX-License-Identifier: MIT

package lu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/mat"
)

// testMatrix has determinant −1 and needs one row exchange.
var testMatrix = [][]float64{
	{2, 1, 1},
	{1, 3, 2},
	{1, 0, 0},
}

func mustDense(t *testing.T, rows [][]float64) *mat.Dense {
	t.Helper()
	d, err := mat.NewDenseData(rows)
	require.NoError(t, err)

	return d
}

func TestNew_PAEqualsLU(t *testing.T) {
	d, err := lu.New(mustDense(t, testMatrix))
	require.NoError(t, err)
	require.False(t, d.IsSingular())

	pa, err := mat.Mul(d.P(), mustDense(t, testMatrix))
	require.NoError(t, err)
	luProd, err := mat.Mul(d.L(), d.U())
	require.NoError(t, err)

	a, err := mat.Snapshot(pa)
	require.NoError(t, err)
	b, err := mat.Snapshot(luProd)
	require.NoError(t, err)
	for i := range a {
		for j := range a[i] {
			assert.InDelta(t, a[i][j], b[i][j], 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestNew_FactorShapes(t *testing.T) {
	d, err := lu.New(mustDense(t, testMatrix))
	require.NoError(t, err)

	l, err := mat.Snapshot(d.L())
	require.NoError(t, err)
	u, err := mat.Snapshot(d.U())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		// L has a unit diagonal and zeros above it
		assert.Equal(t, 1.0, l[i][i], "L[%d][%d]", i, i)
		for j := i + 1; j < 3; j++ {
			assert.Zero(t, l[i][j], "L[%d][%d]", i, j)
		}
		// U has zeros below the diagonal
		for j := 0; j < i; j++ {
			assert.Zero(t, u[i][j], "U[%d][%d]", i, j)
		}
	}

	// Pivot is a permutation of 0..2
	seen := map[int]bool{}
	for _, p := range d.Pivot() {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, 3)
		seen[p] = true
	}
	require.Len(t, seen, 3)
}

func TestDet(t *testing.T) {
	d, err := lu.New(mustDense(t, testMatrix))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, d.Det(), 1e-12)

	// Identity has determinant 1 and no swaps
	id, err := mat.Identity(3)
	require.NoError(t, err)
	di, err := lu.New(id)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, di.Det(), 1e-12)
}

func TestNew_SoftSingularity(t *testing.T) {
	d, err := lu.New(mustDense(t, [][]float64{{1, 2}, {0, 0}}))
	require.NoError(t, err, "singular input must not abort construction")
	require.True(t, d.IsSingular())

	// factor views are withheld, the determinant collapses to zero
	assert.Nil(t, d.L())
	assert.Nil(t, d.U())
	assert.Nil(t, d.P())
	assert.Zero(t, d.Det())

	// the solver exists but refuses to solve
	s := d.Solver()
	require.False(t, s.IsNonSingular())
	_, err = s.SolveVec([]float64{1, 2})
	require.ErrorIs(t, err, mat.ErrSingular)
	_, err = s.Inverse()
	require.ErrorIs(t, err, mat.ErrSingular)
}

func TestNew_SingularityThresholdOption(t *testing.T) {
	// pivot 1e-12 is below the default threshold but above a custom one
	near := [][]float64{{1e-12, 1}, {1, 1}}
	d, err := lu.New(mustDense(t, near))
	require.NoError(t, err)
	// partial pivoting swaps row 1 up, so this factors cleanly
	require.False(t, d.IsSingular())

	strict, err := lu.New(mustDense(t, [][]float64{{1e-12}}))
	require.NoError(t, err)
	require.True(t, strict.IsSingular())

	loose, err := lu.New(mustDense(t, [][]float64{{1e-12}}), lu.WithSingularityThreshold(1e-15))
	require.NoError(t, err)
	require.False(t, loose.IsSingular())
}

func TestNew_Rejections(t *testing.T) {
	_, err := lu.New(nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)

	_, err = lu.New(mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, mat.ErrNonSquare)
}

func TestOptions_PanicOnBadValue(t *testing.T) {
	assert.Panics(t, func() { lu.WithSingularityThreshold(-1) })
}
