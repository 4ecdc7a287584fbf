// SPDX-License-Identifier: MIT
// Package solver: functional configuration for solver handles.
// This file defines:
//   - Config (the resolved configuration backends receive),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error), and
//   - gatherOptions (internal) that applies options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults spelled out once.
//   - No dead switches: every field is forwarded to the backend and
//     covered by tests.
//   - Two validation layers: WithX panics on out-of-range enum values
//     (programmer error), and every backend re-validates at its boundary,
//     rejecting members it does not support with CodeBadConfig.

package solver

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSymmetry treats the matrix as unsymmetric.
	DefaultSymmetry = SymmetryNo

	// DefaultOrdering lets the backend choose its own ordering.
	DefaultOrdering = OrderingAuto

	// DefaultScaling lets the backend choose its own scaling.
	DefaultScaling = ScalingAuto

	// DefaultVerbose keeps vendor-library reporting silent.
	DefaultVerbose = false
)

// Internal panic messages (no magic strings).
const (
	panicSymmetryInvalid = "solver: WithSymmetry: value outside the closed enumeration"
	panicOrderingInvalid = "solver: WithOrdering: value outside the closed enumeration"
	panicScalingInvalid  = "solver: WithScaling: value outside the closed enumeration"
)

// Config is the resolved solver configuration. Backends receive it by
// value at Initialize; the fixed-size configuration lives inside the
// handle from then on (no separate ownership).
type Config struct {
	Symmetry Symmetry
	Ordering Ordering
	Scaling  Scaling
	Verbose  bool
}

// DefaultConfig returns the documented defaults.
// Complexity: O(1).
func DefaultConfig() Config {
	return Config{
		Symmetry: DefaultSymmetry,
		Ordering: DefaultOrdering,
		Scaling:  DefaultScaling,
		Verbose:  DefaultVerbose,
	}
}

// Option mutates a Config. Safe to apply repeatedly (idempotent).
// Constructors panic only on values outside the closed enumerations.
type Option func(*Config)

// WithSymmetry sets the symmetry hint forwarded to the backend.
// Panics if s is not a member of the Symmetry enumeration.
func WithSymmetry(s Symmetry) Option {
	if !s.Valid() {
		panic(panicSymmetryInvalid)
	}

	return func(c *Config) { c.Symmetry = s }
}

// WithOrdering sets the requested elimination-ordering strategy. The
// backend may still pick a different one (see LinSolver.UsedOrdering) or
// reject an unsupported member at Initialize.
// Panics if o is not a member of the Ordering enumeration.
func WithOrdering(o Ordering) Option {
	if !o.Valid() {
		panic(panicOrderingInvalid)
	}

	return func(c *Config) { c.Ordering = o }
}

// WithScaling sets the requested scaling strategy, with the same
// may-differ / may-reject caveats as WithOrdering.
// Panics if s is not a member of the Scaling enumeration.
func WithScaling(s Scaling) Option {
	if !s.Valid() {
		panic(panicScalingInvalid)
	}

	return func(c *Config) { c.Scaling = s }
}

// WithVerbose toggles vendor-library reporting plus facade diagnostics.
// Verbose mode never changes control flow or status codes; it is purely
// diagnostic.
func WithVerbose(v bool) Option {
	return func(c *Config) { c.Verbose = v }
}

// gatherOptions applies opts over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
