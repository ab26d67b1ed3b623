// SPDX-License-Identifier: MIT

// Package lu: functional configuration for the real decomposition.
package lu

import (
	"fmt"
	"math"
)

// DefaultSingularityThreshold is the absolute magnitude a pivot candidate
// must reach for the matrix to be considered non-singular. Empirical
// constant, deliberately looser than the Cholesky positivity floor; the
// package tests document the boundary behavior.
const DefaultSingularityThreshold = 1.0e-11

// config carries the resolved numeric policy.
type config struct {
	singularity float64 // absolute pivot threshold
}

// Option mutates the decomposition configuration.
type Option func(*config)

// WithSingularityThreshold overrides the absolute pivot threshold.
// Panics on NaN or negative t (programmer error).
func WithSingularityThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic(fmt.Sprintf("lu: invalid singularity threshold %g", t))
	}

	return func(c *config) { c.singularity = t }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) config {
	cfg := config{singularity: DefaultSingularityThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
