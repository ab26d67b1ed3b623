// SPDX-License-Identifier: MIT

package cg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/cg"
)

func TestResidualRecorder_History(t *testing.T) {
	rec := cg.NewResidualRecorder()
	solver := cg.New(100, 1e-12, true)
	solver.Manager().AddListener(rec)

	_, err := solver.Solve(mustOp(t, spd), []float64{1, -2, 3})
	require.NoError(t, err)

	iters, norms := rec.History()
	require.NotEmpty(t, norms)
	require.Len(t, iters, len(norms))

	// the first sample is the initial residual, the last is below tolerance
	assert.Equal(t, 1, iters[0])
	assert.Greater(t, norms[0], norms[len(norms)-1])

	// a second solve restarts the history instead of appending
	_, err = solver.Solve(mustOp(t, spd), []float64{1, -2, 3})
	require.NoError(t, err)
	iters2, _ := rec.History()
	assert.Equal(t, iters, iters2)
}

func TestResidualRecorder_HistoryIsACopy(t *testing.T) {
	rec := cg.NewResidualRecorder()
	solver := cg.New(100, 1e-12, false)
	solver.Manager().AddListener(rec)
	_, err := solver.Solve(mustOp(t, spd), []float64{1, 0, 0})
	require.NoError(t, err)

	_, norms := rec.History()
	norms[0] = -1
	_, fresh := rec.History()
	assert.NotEqual(t, -1.0, fresh[0])
}

func TestResidualRecorder_Plot(t *testing.T) {
	rec := cg.NewResidualRecorder()
	solver := cg.New(100, 1e-12, false)
	solver.Manager().AddListener(rec)
	_, err := solver.Solve(mustOp(t, spd), []float64{1, -2, 3})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "convergence.png")
	require.NoError(t, rec.Plot(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestResidualRecorder_PlotWithoutHistory(t *testing.T) {
	rec := cg.NewResidualRecorder()
	err := rec.Plot(filepath.Join(t.TempDir(), "empty.png"))
	require.Error(t, err)
}
