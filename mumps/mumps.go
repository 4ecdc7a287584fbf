//go:build cgo

// SPDX-License-Identifier: MIT
// Package mumps: the cgo handle. The DMUMPS_STRUC_C instance and the
// one-based irn/jcn/a/rhs arrays live in C memory, allocated exactly once
// per Initialize and released exactly once by Free (instance terminated
// before the arrays go away).

package mumps

/*
#cgo CFLAGS: -I/usr/include/mumps_seq -I/usr/local/include/mumps_seq
#cgo LDFLAGS: -ldmumps_seq -lmumps_common_seq -lpord

#include <stdlib.h>
#include "dmumps_c.h"
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// MUMPS job numbers and the sequential communicator sentinel.
const (
	jobInitialize = -1
	jobTerminate  = -2
	jobAnalyzeFactorize = 4
	jobSolve      = 3

	useCommWorld = -987654
)

// Solver is one MUMPS handle. id is the C-allocated DMUMPS_STRUC_C; the
// four arrays hang off it with one-based index contents rebuilt on every
// Factorize (values and pattern alike — the binding never tries to detect
// an unchanged pattern).
type Solver struct {
	id *C.DMUMPS_STRUC_C

	irn *C.MUMPS_INT   // one-based row indices, length nnz
	jcn *C.MUMPS_INT   // one-based column indices, length nnz
	a   *C.DMUMPS_REAL // values, length nnz
	rhs *C.DMUMPS_REAL // solve buffer, length n

	n   int
	nnz int

	initialized bool
	factorized  bool
	freed       bool
}

var _ solver.Backend = (*Solver)(nil)

// New creates an empty handle. Nothing is allocated until Initialize.
func New() *Solver { return &Solver{} }

// setICNTL writes ICNTL(i) (one-based, as the MUMPS documentation counts).
func (s *Solver) setICNTL(i int, v C.MUMPS_INT) { s.id.icntl[i-1] = v }

// setVerbose maps the boolean onto the four MUMPS output streams:
// silent turns every stream off, verbose restores the documented defaults
// with full statistics.
func (s *Solver) setVerbose(verbose bool) {
	if verbose {
		s.setICNTL(1, 6) // error messages
		s.setICNTL(2, 0) // diagnostics
		s.setICNTL(3, 6) // global information
		s.setICNTL(4, 3) // verbosity level
	} else {
		s.setICNTL(1, -1)
		s.setICNTL(2, -1)
		s.setICNTL(3, -1)
		s.setICNTL(4, 0)
	}
}

// infog returns INFOG(i) (one-based).
func (s *Solver) infog(i int) C.MUMPS_INT { return s.id.infog[i-1] }

// releaseArrays frees whichever of the four arrays exist.
func (s *Solver) releaseArrays() {
	for _, p := range []unsafe.Pointer{
		unsafe.Pointer(s.rhs), unsafe.Pointer(s.a),
		unsafe.Pointer(s.jcn), unsafe.Pointer(s.irn),
	} {
		if p != nil {
			C.free(p)
		}
	}
	s.irn, s.jcn, s.a, s.rhs = nil, nil, nil, nil
}

// terminate runs job −2 and releases the C struct.
func (s *Solver) terminate() {
	if s.id == nil {
		return
	}
	s.id.job = jobTerminate
	C.dmumps_c(s.id)
	C.free(unsafe.Pointer(s.id))
	s.id = nil
}

// Initialize creates the MUMPS instance (job −1) with the symmetry mode,
// allocates the one-based triplet arrays plus the solve buffer, and
// applies the assembled-centralized input format, ordering, scaling and
// verbosity controls.
//
// Any failure rolls back every allocation made in this call — instance
// included — before returning, leaving the handle retryable.
func (s *Solver) Initialize(n, nnz int, cfg solver.Config) solver.Code {
	if s == nil || s.freed {
		return solver.CodeNullPointer
	}
	if n < 0 || nnz < 0 {
		return solver.CodeBadDims
	}

	sym, ok := symmetryOf(cfg.Symmetry)
	if !ok {
		return solver.CodeBadConfig
	}
	ordering, ok := orderingOf(cfg.Ordering)
	if !ok {
		return solver.CodeBadConfig
	}
	scaling, ok := scalingOf(cfg.Scaling)
	if !ok {
		return solver.CodeBadConfig
	}

	s.id = (*C.DMUMPS_STRUC_C)(C.calloc(1, C.sizeof_DMUMPS_STRUC_C))
	if s.id == nil {
		return solver.CodeMalloc
	}
	s.id.job = jobInitialize
	s.id.par = 1
	s.id.sym = sym
	s.id.comm_fortran = useCommWorld
	C.dmumps_c(s.id)
	if code := s.infog(1); code < 0 {
		C.free(unsafe.Pointer(s.id))
		s.id = nil

		return solver.Code(code)
	}

	// One allocation per array, rolled back together on any failure.
	count := nnz
	if count < 1 {
		count = 1
	}
	s.irn = (*C.MUMPS_INT)(C.malloc(C.size_t(count) * C.sizeof_MUMPS_INT))
	s.jcn = (*C.MUMPS_INT)(C.malloc(C.size_t(count) * C.sizeof_MUMPS_INT))
	s.a = (*C.DMUMPS_REAL)(C.malloc(C.size_t(count) * C.sizeof_DMUMPS_REAL))
	rhsCount := n
	if rhsCount < 1 {
		rhsCount = 1
	}
	s.rhs = (*C.DMUMPS_REAL)(C.malloc(C.size_t(rhsCount) * C.sizeof_DMUMPS_REAL))
	if s.irn == nil || s.jcn == nil || s.a == nil || s.rhs == nil {
		s.releaseArrays()
		s.terminate()

		return solver.CodeMalloc
	}

	s.setICNTL(5, 0)  // assembled matrix
	s.setICNTL(18, 0) // centralized on the host
	s.setICNTL(7, ordering)
	s.setICNTL(8, scaling)
	s.setVerbose(cfg.Verbose)

	s.id.n = C.MUMPS_INT(n)
	s.id.nz = C.MUMPS_INT(nnz)
	s.id.irn = s.irn
	s.id.jcn = s.jcn
	s.id.a = s.a

	s.n = n
	s.nnz = nnz
	s.initialized = true

	return solver.CodeOK
}

// Factorize copies the triplet into the handle's one-based arrays (done on
// every call — the caller may supply updated values or a structurally
// different matrix through the same slots) and runs analysis plus numeric
// factorization as one job. INFOG(1) is returned verbatim.
func (s *Solver) Factorize(t *triplet.Matrix, verbose bool) solver.Code {
	if s == nil || s.freed || !s.initialized {
		return solver.CodeNullPointer
	}
	if t == nil {
		return solver.CodeNullPointer
	}
	if m, n := t.Dims(); m != s.n || n != s.n || t.Len() != s.nnz {
		return solver.CodeBadDims
	}

	// Shift the zero-based triplet into the one-based C arrays.
	if s.nnz > 0 {
		irn := unsafe.Slice(s.irn, s.nnz)
		jcn := unsafe.Slice(s.jcn, s.nnz)
		a := unsafe.Slice(s.a, s.nnz)
		ti, tj, tx := t.RowIndices(), t.ColIndices(), t.Values()
		var k int
		for k = 0; k < s.nnz; k++ {
			irn[k] = C.MUMPS_INT(ti[k] + 1)
			jcn[k] = C.MUMPS_INT(tj[k] + 1)
			a[k] = C.DMUMPS_REAL(tx[k])
		}
	}

	s.setVerbose(verbose)
	s.id.job = jobAnalyzeFactorize
	C.dmumps_c(s.id)

	code := s.infog(1)
	s.factorized = code >= 0

	return solver.Code(code)
}

// Solve writes the solution of A·x = rhs into x. MUMPS overwrites its
// right-hand-side buffer in place, so the caller's rhs is copied in first
// and never touched; repeat solves with the same rhs are bit-identical.
func (s *Solver) Solve(x, rhs []float64, verbose bool) solver.Code {
	if s == nil || s.freed || !s.initialized || !s.factorized {
		return solver.CodeNullPointer
	}
	if len(x) != s.n || len(rhs) != s.n {
		return solver.CodeBadDims
	}

	if s.n > 0 {
		buf := unsafe.Slice(s.rhs, s.n)
		var i int
		for i = 0; i < s.n; i++ {
			buf[i] = C.DMUMPS_REAL(rhs[i])
		}
	}

	s.setVerbose(verbose)
	s.id.rhs = s.rhs
	s.id.nrhs = 1
	s.id.lrhs = C.MUMPS_INT(s.n)
	s.id.job = jobSolve
	C.dmumps_c(s.id)

	if code := s.infog(1); code < 0 {
		return solver.Code(code)
	}

	if s.n > 0 {
		buf := unsafe.Slice(s.rhs, s.n)
		var i int
		for i = 0; i < s.n; i++ {
			x[i] = float64(buf[i])
		}
	}

	return solver.Code(s.infog(1))
}

// UsedOrdering reports the ordering MUMPS actually applied, from INFOG(7).
// The result is always a member of the closed enumeration.
func (s *Solver) UsedOrdering() solver.Ordering {
	if s == nil || s.id == nil {
		return solver.OrderingAuto
	}
	switch s.infog(7) {
	case icntl7Amd:
		return solver.OrderingAmd
	case icntl7Amf:
		return solver.OrderingAmf
	case icntl7Pord:
		return solver.OrderingPord
	case icntl7Metis:
		return solver.OrderingMetis
	case icntl7Qamd:
		return solver.OrderingQamd
	default:
		return solver.OrderingAuto
	}
}

// UsedScaling reports the scaling MUMPS applied: ICNTL(8) read back after
// factorization (the automatic sentinel 77 is replaced by the choice
// made). The result is always a member of the closed enumeration.
func (s *Solver) UsedScaling() solver.Scaling {
	if s == nil || s.id == nil {
		return solver.ScalingAuto
	}
	switch s.id.icntl[8-1] {
	case icntl8No:
		return solver.ScalingNo
	case icntl8Diagonal:
		return solver.ScalingDiagonal
	case icntl8Column:
		return solver.ScalingColumn
	case icntl8RowCol:
		return solver.ScalingRowCol
	case icntl8RowColIter:
		return solver.ScalingRowColIter
	case icntl8RowColRig:
		return solver.ScalingRowColRig
	default:
		return solver.ScalingAuto
	}
}

// Free terminates the MUMPS instance (which releases its internal symbolic
// and numeric state), then frees the arrays. Idempotent; afterwards every
// operation reports CodeNullPointer.
func (s *Solver) Free() {
	if s == nil || s.freed {
		return
	}

	s.terminate()
	s.releaseArrays()

	s.initialized = false
	s.factorized = false
	s.freed = true
}
