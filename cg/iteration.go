// SPDX-License-Identifier: MIT

// Package cg: iteration accounting and the observer surface.
// The IterationManager owns the budget and the listener registry; the solver
// drives it and never inspects listeners itself.
package cg

import (
	"fmt"

	"github.com/katalvlaran/linsolve/mat"
)

// IterationEvent is the immutable snapshot delivered to listeners. The X and
// Residual slices are fresh copies; listeners may retain or mutate them
// freely without affecting the running solve.
type IterationEvent struct {
	// Iteration is the 1-based iteration count at the time of the event.
	// Initialization fires with Iteration == 1.
	Iteration int

	// ResidualNorm is ‖b − A·x‖₂ for the current iterate.
	ResidualNorm float64

	// X is a copy of the current solution estimate.
	X []float64

	// Residual is a copy of the current residual vector.
	Residual []float64
}

// Listener observes the progress of an iterative solve. Callbacks run
// synchronously on the solver goroutine; long-running listeners slow the
// solve down, they never race it.
type Listener interface {
	// Initialized fires once per solve, after the initial residual is
	// computed and before the first descent step.
	Initialized(e IterationEvent)

	// IterationStarted fires at the top of every descent iteration.
	IterationStarted(e IterationEvent)

	// IterationPerformed fires after x and r have been updated.
	IterationPerformed(e IterationEvent)

	// Terminated fires exactly once, whether the solve converged or was cut
	// short by the iteration budget.
	Terminated(e IterationEvent)
}

// ExhaustionCallback replaces the default budget-exhausted error. It receives
// the configured limit and returns the error the solve will surface.
type ExhaustionCallback func(limit int) error

// IterationManager counts iterations against a fixed budget and fans events
// out to registered listeners. A single manager is reused across solves via
// Reset; it is not safe for concurrent solves.
type IterationManager struct {
	limit     int
	count     int
	exhausted ExhaustionCallback
	listeners []Listener
}

// NewIterationManager returns a manager allowing at most limit iterations.
// Panics if limit < 1 (programmer error, same contract as option setters).
func NewIterationManager(limit int) *IterationManager {
	if limit < 1 {
		panic(fmt.Sprintf("cg: iteration limit must be >= 1, got %d", limit))
	}

	return &IterationManager{limit: limit}
}

// NewIterationManagerCallback is NewIterationManager with a custom
// exhaustion error. The callback fires instead of the default
// mat.ErrMaxIterations wrap when the budget runs out.
func NewIterationManagerCallback(limit int, cb ExhaustionCallback) *IterationManager {
	m := NewIterationManager(limit)
	m.exhausted = cb

	return m
}

// Increment advances the iteration count.
//
// Errors:
//   - mat.ErrMaxIterations — the count would exceed the limit; the wrap
//     carries the limit. A custom ExhaustionCallback replaces this error.
func (m *IterationManager) Increment() error {
	m.count++
	if m.count > m.limit {
		if m.exhausted != nil {
			return m.exhausted(m.limit)
		}

		return fmt.Errorf("cg: iteration budget %d exhausted: %w", m.limit, mat.ErrMaxIterations)
	}

	return nil
}

// Count returns the number of iterations performed so far.
func (m *IterationManager) Count() int { return m.count }

// Limit returns the configured iteration budget.
func (m *IterationManager) Limit() int { return m.limit }

// Reset zeroes the iteration count. Listeners stay registered.
func (m *IterationManager) Reset() { m.count = 0 }

// AddListener registers a listener. Nil listeners are ignored.
func (m *IterationManager) AddListener(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

// FireInitialization notifies every listener that the solve has started.
func (m *IterationManager) FireInitialization(e IterationEvent) {
	for _, l := range m.listeners {
		l.Initialized(e)
	}
}

// FireIterationStarted notifies every listener at the top of an iteration.
func (m *IterationManager) FireIterationStarted(e IterationEvent) {
	for _, l := range m.listeners {
		l.IterationStarted(e)
	}
}

// FireIterationPerformed notifies every listener after an update step.
func (m *IterationManager) FireIterationPerformed(e IterationEvent) {
	for _, l := range m.listeners {
		l.IterationPerformed(e)
	}
}

// FireTermination notifies every listener that the solve has ended.
func (m *IterationManager) FireTermination(e IterationEvent) {
	for _, l := range m.listeners {
		l.Terminated(e)
	}
}
