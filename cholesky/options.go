// SPDX-License-Identifier: MIT

// Package cholesky: functional configuration for the decomposition.
// Defaults are documented constants; With* constructors panic only on
// nonsensical values (programmer error), never on data-dependent conditions.
package cholesky

import (
	"fmt"
	"math"
)

// Numeric policy defaults (single source of truth).
const (
	// DefaultRelativeSymmetryThreshold bounds the allowed relative deviation
	// |A[i][j]−A[j][i]| / max(|A[i][j]|,|A[j][i]|) during the symmetry check.
	DefaultRelativeSymmetryThreshold = 1.0e-15

	// DefaultPositivityThreshold is the absolute floor a diagonal pivot must
	// exceed during elimination. Empirical constant, deliberately looser than
	// machine epsilon; see the package tests for the boundary behavior.
	DefaultPositivityThreshold = 1.0e-10
)

// config carries the resolved numeric policy. Fields are unexported; public
// API consumes ...Option.
type config struct {
	relSym float64 // relative symmetry threshold
	absPos float64 // absolute positivity threshold
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{relSym: DefaultRelativeSymmetryThreshold, absPos: DefaultPositivityThreshold}
}

// Option mutates the decomposition configuration.
type Option func(*config)

// WithRelativeSymmetryThreshold overrides the relative symmetry threshold.
// Panics on NaN or negative t (programmer error).
func WithRelativeSymmetryThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic(fmt.Sprintf("cholesky: invalid relative symmetry threshold %g", t))
	}

	return func(c *config) { c.relSym = t }
}

// WithPositivityThreshold overrides the absolute positivity threshold.
// Panics on NaN or negative t (programmer error).
func WithPositivityThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic(fmt.Sprintf("cholesky: invalid positivity threshold %g", t))
	}

	return func(c *config) { c.absPos = t }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
