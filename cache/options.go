// SPDX-License-Identifier: MIT

// Package cache: functional configuration for Solve.
//
// Design goals:
//   - Deterministic behavior: no global mutable state beyond the default
//     logger, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error), never on runtime data.

package cache

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Inverter is the opaque external inversion capability consumed by Solve:
// it must return the inverse of a square matrix, or fail for singular or
// otherwise non-invertible input. Solve treats the returned error as
// opaque and propagates it unrecovered.
type Inverter func(matrix.Matrix) (matrix.Matrix, error)

// msgCacheHit is the diagnostic emitted when Solve is served from the
// cache. Tests distinguish hits from misses by this line; the exact wording
// is not part of the contract.
const msgCacheHit = "using cached inverse"

// defaultLogger receives Solve diagnostics unless WithLogger overrides it.
// It writes human-readable lines to stderr, matching the library's
// interactive single-user workflow.
var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "matcache"})

// options carries the resolved Solve configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	inverter Inverter
	logger   *log.Logger
}

// Option mutates the Solve configuration.
type Option func(*options)

// WithInverter injects the external inversion routine. The default is
// matrix.Inverse. Panics if fn is nil (programmer error).
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic("cache: WithInverter(nil)")
	}

	return func(o *options) { o.inverter = fn }
}

// WithLogger redirects Solve diagnostics (cache hits and misses) to l.
// Panics if l is nil (programmer error); use a logger with a discarding
// writer to silence output.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("cache: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		inverter: matrix.Inverse,
		logger:   defaultLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
