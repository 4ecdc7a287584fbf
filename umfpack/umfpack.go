//go:build cgo

// SPDX-License-Identifier: MIT
// Package umfpack: the cgo handle. Mirrors the classic struct-plus-function
// shim around umfpack_di_*: the handle owns ap/ai/ax (allocated exactly
// once per Initialize, in C memory so the opaque factorization objects may
// retain references to them) plus the Symbolic and Numeric objects, and
// every operation returns the library's status code unchanged.

package umfpack

/*
#cgo CFLAGS: -I/usr/include/suitesparse -I/usr/local/include/suitesparse
#cgo LDFLAGS: -lumfpack

#include <stdlib.h>
#include <umfpack.h>
*/
import "C"

import (
	"unsafe"

	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// UMFPACK print levels written into Control[UMFPACK_PRL].
const (
	printLevelSilent  = 0.0
	printLevelVerbose = 2.0
)

// Solver is one UMFPACK handle. The three compressed-column arrays are
// C-allocated at Initialize, sized n+1 / nnz / nnz, never resized, and
// stay valid until Free. The two opaque pointers are created by Factorize
// and released (numeric before symbolic) on re-factorize and on Free.
type Solver struct {
	n   C.int
	nnz C.int

	ap *C.int    // column pointers, length n+1
	ai *C.int    // row indices, length nnz
	ax *C.double // values, length nnz

	control [C.UMFPACK_CONTROL]C.double
	info    [C.UMFPACK_INFO]C.double

	symbolic unsafe.Pointer // owned by UMFPACK, present after analysis
	numeric  unsafe.Pointer // owned by UMFPACK, present after factorization

	initialized bool
	freed       bool
}

// compile-time check: Solver implements the backend contract.
var _ solver.Backend = (*Solver)(nil)

// New creates an empty handle. Nothing is allocated until Initialize.
func New() *Solver { return &Solver{} }

// setVerbose maps the boolean onto UMFPACK's two report levels.
func (s *Solver) setVerbose(verbose bool) {
	if verbose {
		s.control[C.UMFPACK_PRL] = printLevelVerbose
	} else {
		s.control[C.UMFPACK_PRL] = printLevelSilent
	}
}

// cMallocInt allocates count C ints (at least one, so a zero-sized request
// is distinguishable from allocation failure).
func cMallocInt(count int) *C.int {
	if count < 1 {
		count = 1
	}

	return (*C.int)(C.malloc(C.size_t(count) * C.sizeof_int))
}

// cMallocDouble allocates count C doubles (at least one).
func cMallocDouble(count int) *C.double {
	if count < 1 {
		count = 1
	}

	return (*C.double)(C.malloc(C.size_t(count) * C.sizeof_double))
}

// Initialize allocates the compressed-form arrays and applies the
// configuration: library defaults first, then strategy from the symmetry
// hint, ordering and scaling from the mapping tables, print level from
// the verbosity flag.
//
// A partial allocation failure releases everything allocated in this call
// before returning CodeMalloc, leaving the handle retryable. Unsupported
// enum members are rejected with CodeBadConfig before any allocation.
func (s *Solver) Initialize(n, nnz int, cfg solver.Config) solver.Code {
	if s == nil || s.freed {
		return solver.CodeNullPointer
	}
	if n < 0 || nnz < 0 {
		return solver.CodeBadDims
	}

	strategy, ok := strategyOf(cfg.Symmetry)
	if !ok {
		return solver.CodeBadConfig
	}
	ordering, ok := orderingOf(cfg.Ordering)
	if !ok {
		return solver.CodeBadConfig
	}
	scale, ok := scalingOf(cfg.Scaling)
	if !ok {
		return solver.CodeBadConfig
	}

	C.umfpack_di_defaults(&s.control[0])
	s.control[C.UMFPACK_STRATEGY] = C.double(strategy)
	s.control[C.UMFPACK_ORDERING] = C.double(ordering)
	s.control[C.UMFPACK_SCALE] = C.double(scale)
	s.setVerbose(cfg.Verbose)

	s.ap = cMallocInt(n + 1)
	if s.ap == nil {
		return solver.CodeMalloc
	}
	s.ai = cMallocInt(nnz)
	if s.ai == nil {
		C.free(unsafe.Pointer(s.ap))
		s.ap = nil

		return solver.CodeMalloc
	}
	s.ax = cMallocDouble(nnz)
	if s.ax == nil {
		C.free(unsafe.Pointer(s.ai))
		C.free(unsafe.Pointer(s.ap))
		s.ai = nil
		s.ap = nil

		return solver.CodeMalloc
	}

	s.n = C.int(n)
	s.nnz = C.int(nnz)
	s.initialized = true

	return solver.CodeOK
}

// Factorize converts the triplet into the handle's compressed-column
// arrays and performs symbolic analysis followed by numeric factorization.
//
// Conversion runs on every call — the caller may supply updated values or
// a structurally different matrix through the same slots, and the handle
// does not try to detect unchanged patterns. Prior Symbolic/Numeric
// objects are released (numeric first) before the new analysis.
func (s *Solver) Factorize(t *triplet.Matrix, verbose bool) solver.Code {
	if s == nil || s.freed || !s.initialized {
		return solver.CodeNullPointer
	}
	if t == nil {
		return solver.CodeNullPointer
	}
	if m, n := t.Dims(); C.int(m) != s.n || C.int(n) != s.n || C.int(t.Len()) != s.nnz {
		return solver.CodeBadDims
	}

	s.setVerbose(verbose)

	// int32 triplet slices map onto C int directly; UMFPACK reads them only
	// for the duration of the conversion call.
	var ti, tj *C.int
	var tx *C.double
	if t.Len() > 0 {
		ti = (*C.int)(unsafe.Pointer(&t.RowIndices()[0]))
		tj = (*C.int)(unsafe.Pointer(&t.ColIndices()[0]))
		tx = (*C.double)(unsafe.Pointer(&t.Values()[0]))
	}

	code := C.umfpack_di_triplet_to_col(s.n, s.n, s.nnz, ti, tj, tx, s.ap, s.ai, s.ax, nil)
	if code != C.UMFPACK_OK {
		return solver.Code(code)
	}
	if verbose {
		C.umfpack_di_report_status(&s.control[0], code)
	}

	// Replace prior factorization state in dependency order.
	if s.numeric != nil {
		C.umfpack_di_free_numeric(&s.numeric)
		s.numeric = nil
	}
	if s.symbolic != nil {
		C.umfpack_di_free_symbolic(&s.symbolic)
		s.symbolic = nil
	}

	code = C.umfpack_di_symbolic(s.n, s.n, s.ap, s.ai, s.ax,
		&s.symbolic, &s.control[0], &s.info[0])
	if code != C.UMFPACK_OK {
		return solver.Code(code)
	}

	code = C.umfpack_di_numeric(s.ap, s.ai, s.ax,
		s.symbolic, &s.numeric, &s.control[0], &s.info[0])

	if verbose {
		C.umfpack_di_report_info(&s.control[0], &s.info[0])
	}

	return solver.Code(code)
}

// Solve writes the solution of A·x = rhs into x using the most recent
// numeric factorization. The factors are read, never mutated, so solving
// twice with the same rhs yields bit-identical results.
func (s *Solver) Solve(x, rhs []float64, verbose bool) solver.Code {
	if s == nil || s.freed || !s.initialized || s.numeric == nil {
		return solver.CodeNullPointer
	}
	if C.int(len(x)) != s.n || C.int(len(rhs)) != s.n {
		return solver.CodeBadDims
	}

	s.setVerbose(verbose)

	var xp, bp *C.double
	if len(x) > 0 {
		xp = (*C.double)(unsafe.Pointer(&x[0]))
		bp = (*C.double)(unsafe.Pointer(&rhs[0]))
	}

	code := C.umfpack_di_solve(C.UMFPACK_A, s.ap, s.ai, s.ax,
		xp, bp, s.numeric, &s.control[0], &s.info[0])

	if verbose {
		C.umfpack_di_report_info(&s.control[0], &s.info[0])
	}

	return solver.Code(code)
}

// UsedOrdering reports the ordering UMFPACK actually applied, read from
// Info[UMFPACK_ORDERING_USED] after a factorization. The result is always
// a member of the closed enumeration.
func (s *Solver) UsedOrdering() solver.Ordering {
	switch C.int(s.info[C.UMFPACK_ORDERING_USED]) {
	case C.UMFPACK_ORDERING_AMD:
		return solver.OrderingAmd
	case C.UMFPACK_ORDERING_METIS:
		return solver.OrderingMetis
	case C.UMFPACK_ORDERING_CHOLMOD:
		return solver.OrderingCholmod
	case C.UMFPACK_ORDERING_BEST:
		return solver.OrderingBest
	case C.UMFPACK_ORDERING_NONE:
		return solver.OrderingNo
	default:
		return solver.OrderingAuto
	}
}

// UsedScaling reports the scaling UMFPACK applied, read back from
// Control[UMFPACK_SCALE] (the automatic default resolves to Sum). The
// result is always a member of the closed enumeration.
func (s *Solver) UsedScaling() solver.Scaling {
	switch C.int(s.control[C.UMFPACK_SCALE]) {
	case C.UMFPACK_SCALE_NONE:
		return solver.ScalingNo
	case C.UMFPACK_SCALE_MAX:
		return solver.ScalingMax
	case C.UMFPACK_SCALE_SUM:
		return solver.ScalingSum
	default:
		return solver.ScalingAuto
	}
}

// Free releases everything the handle owns, exactly once, in dependency
// order: Numeric, then Symbolic, then the three arrays. A second Free is
// a no-op; any later operation reports CodeNullPointer.
func (s *Solver) Free() {
	if s == nil || s.freed {
		return
	}

	if s.numeric != nil {
		C.umfpack_di_free_numeric(&s.numeric)
		s.numeric = nil
	}
	if s.symbolic != nil {
		C.umfpack_di_free_symbolic(&s.symbolic)
		s.symbolic = nil
	}
	if s.ax != nil {
		C.free(unsafe.Pointer(s.ax))
		s.ax = nil
	}
	if s.ai != nil {
		C.free(unsafe.Pointer(s.ai))
		s.ai = nil
	}
	if s.ap != nil {
		C.free(unsafe.Pointer(s.ap))
		s.ap = nil
	}

	s.initialized = false
	s.freed = true
}
