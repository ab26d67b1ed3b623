// SPDX-License-Identifier: MIT

package cg

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ResidualRecorder is a Listener that captures the residual norm of every
// iteration. Attach it through IterationManager.AddListener, run a solve,
// then read History or render the convergence chart with Plot.
//
// The recorder is reusable: each new solve (signalled by the initialization
// event) clears the previous history.
type ResidualRecorder struct {
	iterations []int
	norms      []float64
}

// NewResidualRecorder returns an empty recorder.
func NewResidualRecorder() *ResidualRecorder { return &ResidualRecorder{} }

// Initialized clears any previous history and records the initial residual.
func (r *ResidualRecorder) Initialized(e IterationEvent) {
	r.iterations = r.iterations[:0]
	r.norms = r.norms[:0]
	r.record(e)
}

// IterationStarted is a no-op; the recorder samples after each update.
func (r *ResidualRecorder) IterationStarted(_ IterationEvent) {}

// IterationPerformed records the residual reached by the update step.
func (r *ResidualRecorder) IterationPerformed(e IterationEvent) { r.record(e) }

// Terminated is a no-op; the final residual was already recorded by the
// last IterationPerformed (or by Initialized on immediate convergence).
func (r *ResidualRecorder) Terminated(_ IterationEvent) {}

func (r *ResidualRecorder) record(e IterationEvent) {
	r.iterations = append(r.iterations, e.Iteration)
	r.norms = append(r.norms, e.ResidualNorm)
}

// History returns copies of the recorded iteration numbers and residual
// norms, index-aligned.
func (r *ResidualRecorder) History() (iterations []int, norms []float64) {
	iterations = make([]int, len(r.iterations))
	copy(iterations, r.iterations)
	norms = make([]float64, len(r.norms))
	copy(norms, r.norms)

	return iterations, norms
}

// Plot renders the recorded residual history as a line chart and writes it
// to path; the format follows the file extension (.png, .svg, .pdf, ...).
//
// Errors:
//   - a wrapped error when nothing was recorded yet or the chart cannot be
//     built or written.
func (r *ResidualRecorder) Plot(path string) error {
	const tag = "cg.Plot"
	if len(r.norms) == 0 {
		return fmt.Errorf("%s: no residual history recorded", tag)
	}

	pts := make(plotter.XYs, len(r.norms))
	for i := range r.norms {
		pts[i].X = float64(r.iterations[i])
		pts[i].Y = r.norms[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	p := plot.New()
	p.Title.Text = "conjugate gradient convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "residual norm"
	p.Add(plotter.NewGrid(), line)
	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	return nil
}
