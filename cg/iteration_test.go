// SPDX-License-Identifier: MIT

package cg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/cg"
	"github.com/katalvlaran/linsolve/mat"
)

// eventLog records the callback sequence for event-ordering assertions.
type eventLog struct {
	sequence []string
	counts   []int
}

func (l *eventLog) Initialized(e cg.IterationEvent) {
	l.sequence = append(l.sequence, "init")
	l.counts = append(l.counts, e.Iteration)
}

func (l *eventLog) IterationStarted(e cg.IterationEvent) {
	l.sequence = append(l.sequence, "started")
	l.counts = append(l.counts, e.Iteration)
}

func (l *eventLog) IterationPerformed(e cg.IterationEvent) {
	l.sequence = append(l.sequence, "performed")
	l.counts = append(l.counts, e.Iteration)
}

func (l *eventLog) Terminated(e cg.IterationEvent) {
	l.sequence = append(l.sequence, "terminated")
	l.counts = append(l.counts, e.Iteration)
}

func TestIterationManager_IncrementAndReset(t *testing.T) {
	m := cg.NewIterationManager(2)
	assert.Equal(t, 2, m.Limit())
	assert.Zero(t, m.Count())

	require.NoError(t, m.Increment())
	require.NoError(t, m.Increment())
	assert.Equal(t, 2, m.Count())

	err := m.Increment()
	require.ErrorIs(t, err, mat.ErrMaxIterations)

	m.Reset()
	assert.Zero(t, m.Count())
	require.NoError(t, m.Increment())
}

func TestIterationManager_CustomExhaustionCallback(t *testing.T) {
	custom := errors.New("budget gone")
	m := cg.NewIterationManagerCallback(1, func(limit int) error {
		assert.Equal(t, 1, limit)
		return custom
	})

	require.NoError(t, m.Increment())
	err := m.Increment()
	require.ErrorIs(t, err, custom)
	require.NotErrorIs(t, err, mat.ErrMaxIterations)
}

func TestIterationManager_PanicsOnBadLimit(t *testing.T) {
	assert.Panics(t, func() { cg.NewIterationManager(0) })
}

func TestListener_EventSequence(t *testing.T) {
	log := &eventLog{}
	solver := cg.New(100, 1e-12, true)
	solver.Manager().AddListener(log)

	_, err := solver.Solve(mustOp(t, spd), []float64{1, -2, 3})
	require.NoError(t, err)

	require.NotEmpty(t, log.sequence)
	// init first, terminated last, started/performed pairs in between
	assert.Equal(t, "init", log.sequence[0])
	assert.Equal(t, "terminated", log.sequence[len(log.sequence)-1])
	assert.Equal(t, 1, log.counts[0], "initialization is iteration 1")
	for i := 1; i < len(log.sequence)-1; i += 2 {
		assert.Equal(t, "started", log.sequence[i], "position %d", i)
		assert.Equal(t, "performed", log.sequence[i+1], "position %d", i+1)
	}

	// iteration counts never decrease
	for i := 1; i < len(log.counts); i++ {
		assert.GreaterOrEqual(t, log.counts[i], log.counts[i-1])
	}
}

func TestListener_TerminationFiresOnExhaustion(t *testing.T) {
	log := &eventLog{}
	solver := cg.New(2, 1e-16, false)
	solver.Manager().AddListener(log)

	_, err := solver.Solve(mustOp(t, spd), []float64{1, 2, 3})
	require.ErrorIs(t, err, mat.ErrMaxIterations)

	// the budget ran out mid-solve, yet listeners still see a terminal event
	require.NotEmpty(t, log.sequence)
	assert.Equal(t, "init", log.sequence[0])
	assert.Equal(t, "terminated", log.sequence[len(log.sequence)-1])
	// the terminal event reports the last completed iteration: the budget
	assert.Equal(t, solver.Manager().Limit(), log.counts[len(log.counts)-1])
}

func TestListener_EventSnapshotsAreDetached(t *testing.T) {
	var captured []float64
	events := &eventLog{}
	solver := cg.New(100, 1e-12, false)
	mgr := solver.Manager()
	mgr.AddListener(events)
	mgr.AddListener(listenerFunc(func(e cg.IterationEvent) {
		if captured == nil {
			captured = e.X
		}
	}))

	x, err := solver.Solve(mustOp(t, spd), []float64{1, -2, 3})
	require.NoError(t, err)

	// mutating the captured snapshot must not touch the solution
	require.NotNil(t, captured)
	captured[0] = 1e9
	assert.NotEqual(t, 1e9, x[0])

	// nil listeners are ignored rather than fired
	mgr.AddListener(nil)
	_, err = solver.Solve(mustOp(t, spd), []float64{1, -2, 3})
	require.NoError(t, err)
}

// listenerFunc adapts a func to the Listener interface for focused assertions.
type listenerFunc func(cg.IterationEvent)

func (f listenerFunc) Initialized(e cg.IterationEvent)        { f(e) }
func (f listenerFunc) IterationStarted(e cg.IterationEvent)   {}
func (f listenerFunc) IterationPerformed(e cg.IterationEvent) { f(e) }
func (f listenerFunc) Terminated(e cg.IterationEvent)         {}
