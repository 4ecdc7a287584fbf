// SPDX-License-Identifier: MIT
// Package solver: the Backend interface and the LinSolver facade that
// enforces the handle state machine and translates backend codes into
// structured errors.

package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvlsparse/logger"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// Backend is implemented by every direct-solver binding (umfpack.Solver,
// mumps.Solver). All methods are synchronous, blocking, and run to
// completion on the calling goroutine; nothing here is safe for
// concurrent use without external synchronization.
//
// Methods return backend-native Codes verbatim; Classify and CodeString
// are the backend's own interpretation hooks for its vocabulary.
type Backend interface {
	// Initialize allocates the handle's compressed-form arrays (sized from
	// n and nnz, exactly once) and applies the configuration. A failure
	// rolls back every allocation made in the same call, leaving the
	// handle retryable.
	Initialize(n, nnz int, cfg Config) Code

	// Factorize converts the triplet to the backend's native form
	// (duplicates summed) and runs symbolic analysis plus numeric
	// factorization, replacing any prior factorization state. Conversion
	// is repeated on every call; pattern-change detection is the caller's
	// responsibility.
	Factorize(t *triplet.Matrix, verbose bool) Code

	// Solve writes the solution of A·x = rhs into x using the most recent
	// numeric factorization. Both buffers must have length n.
	Solve(x, rhs []float64, verbose bool) Code

	// UsedOrdering reports the ordering the library actually applied
	// after a successful Factorize (may differ from the request).
	UsedOrdering() Ordering

	// UsedScaling reports the scaling the library actually applied.
	UsedScaling() Scaling

	// CodeString renders a code in the backend's own vocabulary.
	CodeString(code Code) string

	// Classify maps a code onto the structured Class taxonomy.
	Classify(code Code) Class

	// Free releases the numeric state, then the symbolic state, then the
	// arrays, exactly once. Calling Free again is a no-op; any other call
	// after Free yields CodeNullPointer.
	Free()
}

// LinSolver wraps an initialized Backend with the checked state machine
// and error translation the calling layer wants. Construct with New; a
// LinSolver always corresponds to exactly one successful Initialize and
// must be released with exactly one Free.
type LinSolver struct {
	backend    Backend
	cfg        Config
	n          int
	nnz        int
	factorized bool
	freed      bool
}

// New initializes backend b for an n×n system with nnz triplet entries
// and wraps it. The configuration is resolved from opts over the
// documented defaults.
//
// Stage 1 (Validate): b non-nil, n ≥ 1, nnz ≥ 1.
// Stage 2 (Execute):  backend Initialize; a non-OK code is translated into
// ErrInitialize (the backend rolled back its partial allocations, so a
// retry with a fresh New is legitimate).
// Stage 3 (Finalize): return the wrapped handle in state Initialized.
// Complexity: O(nnz) allocation inside the backend.
func New(b Backend, n, nnz int, opts ...Option) (*LinSolver, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if n < 1 || nnz < 1 {
		return nil, ErrBadDims
	}

	cfg := gatherOptions(opts...)
	if code := b.Initialize(n, nnz, cfg); code != CodeOK {
		return nil, fmt.Errorf("%w: %s", ErrInitialize, b.CodeString(code))
	}

	return &LinSolver{backend: b, cfg: cfg, n: n, nnz: nnz}, nil
}

// Factorize runs triplet conversion, symbolic analysis and numeric
// factorization on t, entering (or re-entering) state Factorized.
//
// Stage 1 (Validate): handle not freed, t non-nil, t is n×n with exactly
// nnz entries stored.
// Stage 2 (Execute):  forward to the backend; conversion is repeated even
// if the pattern is unchanged — the caller may have updated values or a
// structurally different matrix through the same slots.
// Stage 3 (Finalize): translate the code; on success mark Factorized and,
// in verbose mode, log duration plus the ordering/scaling actually used.
// Complexity: dominated by the vendor library's factorization.
func (s *LinSolver) Factorize(t *triplet.Matrix) error {
	if s.freed {
		return ErrFreed
	}
	if t == nil {
		return ErrNilTriplet
	}
	if m, n := t.Dims(); m != s.n || n != s.n || t.Len() != s.nnz {
		return ErrBadDims
	}

	start := time.Now()
	code := s.backend.Factorize(t, s.cfg.Verbose)
	if err := s.translate(code, "factorize"); err != nil {
		return err
	}
	s.factorized = true

	if s.cfg.Verbose {
		log := logger.Logger()
		log.Debug().
			Dur("took", time.Since(start)).
			Stringer("ordering", s.backend.UsedOrdering()).
			Stringer("scaling", s.backend.UsedScaling()).
			Int32("code", int32(code)).
			Msg("factorize")
	}

	return nil
}

// Solve writes the solution of A·x = rhs into x using the most recent
// factorization. Factorize must have succeeded first — the facade checks
// the precondition the raw binding leaves undefined.
//
// Stage 1 (Validate): not freed, factorized, len(x) == len(rhs) == n.
// Stage 2 (Execute):  forward to the backend.
// Stage 3 (Finalize): translate the code. Solving twice with the same rhs
// yields bit-identical results — the factors are read, never mutated.
// Complexity: the vendor library's triangular solves, O(nnz(L)+nnz(U)).
func (s *LinSolver) Solve(x, rhs []float64) error {
	if s.freed {
		return ErrFreed
	}
	if !s.factorized {
		return ErrNotFactorized
	}
	if len(x) != s.n || len(rhs) != s.n {
		return ErrDimensionMismatch
	}

	start := time.Now()
	code := s.backend.Solve(x, rhs, s.cfg.Verbose)
	if err := s.translate(code, "solve"); err != nil {
		return err
	}

	if s.cfg.Verbose {
		log := logger.Logger()
		log.Debug().
			Dur("took", time.Since(start)).
			Msg("solve")
	}

	return nil
}

// UsedOrdering reports which ordering the library actually applied; only
// meaningful after a successful Factorize.
// Complexity: O(1).
func (s *LinSolver) UsedOrdering() Ordering { return s.backend.UsedOrdering() }

// UsedScaling reports which scaling the library actually applied; only
// meaningful after a successful Factorize.
// Complexity: O(1).
func (s *LinSolver) UsedScaling() Scaling { return s.backend.UsedScaling() }

// Free releases the backend handle: numeric state, then symbolic state,
// then arrays. Idempotent — a second Free is a no-op, and every later
// operation returns ErrFreed.
// Complexity: O(1) plus the vendor library's release cost.
func (s *LinSolver) Free() {
	if s.freed {
		return
	}
	s.backend.Free()
	s.freed = true
}

// translate maps a backend code onto the structured error taxonomy,
// keeping the verbatim code text in the wrap. Warnings are success with a
// log line; the code vocabulary itself is never reinterpreted here.
func (s *LinSolver) translate(code Code, op string) error {
	switch s.backend.Classify(code) {
	case ClassOK:
		return nil
	case ClassWarning:
		if s.cfg.Verbose {
			log := logger.Logger()
			log.Warn().
				Str("op", op).
				Str("status", s.backend.CodeString(code)).
				Msg("backend warning")
		}

		return nil
	case ClassNumerical:
		return fmt.Errorf("%s: %w: %s", op, ErrSingular, s.backend.CodeString(code))
	default:
		return fmt.Errorf("%s: %w: %s", op, ErrBackend, s.backend.CodeString(code))
	}
}
