//go:build cgo

// SPDX-License-Identifier: MIT
// Package umfpack: closed mapping tables between the solver enums and
// UMFPACK's native constants, plus the status-code vocabulary. Selections
// outside a table are rejected at the boundary, never indexed past it.

package umfpack

/*
#cgo CFLAGS: -I/usr/include/suitesparse -I/usr/local/include/suitesparse

#include <umfpack.h>
*/
import "C"

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/solver"
)

// strategyOf maps the symmetry hint onto UMFPACK's strategy control.
// Positive-definite and general symmetric matrices both map onto the
// symmetric strategy; UMFPACK has no separate positive-definite mode.
func strategyOf(s solver.Symmetry) (C.int, bool) {
	switch s {
	case solver.SymmetryNo:
		return C.UMFPACK_STRATEGY_UNSYMMETRIC, true
	case solver.SymmetryPosDef, solver.SymmetryGeneral:
		return C.UMFPACK_STRATEGY_SYMMETRIC, true
	default:
		return 0, false
	}
}

// orderingOf maps the requested ordering onto UMFPACK's ordering control.
// Amf, Pord and Qamd belong to MUMPS and are rejected here.
func orderingOf(o solver.Ordering) (C.int, bool) {
	switch o {
	case solver.OrderingAuto:
		return C.UMFPACK_DEFAULT_ORDERING, true
	case solver.OrderingAmd:
		return C.UMFPACK_ORDERING_AMD, true
	case solver.OrderingBest:
		return C.UMFPACK_ORDERING_BEST, true
	case solver.OrderingCholmod:
		return C.UMFPACK_ORDERING_CHOLMOD, true
	case solver.OrderingMetis:
		return C.UMFPACK_ORDERING_METIS, true
	case solver.OrderingNo:
		return C.UMFPACK_ORDERING_NONE, true
	default:
		return 0, false
	}
}

// scalingOf maps the requested scaling onto UMFPACK's scale control.
// The MUMPS-only members (Column, Diagonal, RowCol*) are rejected here.
func scalingOf(s solver.Scaling) (C.int, bool) {
	switch s {
	case solver.ScalingAuto:
		return C.UMFPACK_DEFAULT_SCALE, true
	case solver.ScalingMax:
		return C.UMFPACK_SCALE_MAX, true
	case solver.ScalingNo:
		return C.UMFPACK_SCALE_NONE, true
	case solver.ScalingSum:
		return C.UMFPACK_SCALE_SUM, true
	default:
		return 0, false
	}
}

// CodeString renders a status code in UMFPACK's own vocabulary, covering
// the shim-level codes as well. Unknown values keep their number.
func (s *Solver) CodeString(code solver.Code) string {
	switch code {
	case solver.CodeOK:
		return "OK"
	case solver.CodeNullPointer:
		return "handle is absent (freed or not initialized)"
	case solver.CodeMalloc:
		return "allocation failed during initialize"
	case solver.CodeBadConfig:
		return "configuration not supported by UMFPACK"
	case solver.CodeBadDims:
		return "dimensions disagree with the initialized handle"
	case solver.Code(C.UMFPACK_WARNING_singular_matrix):
		return "UMFPACK_WARNING_singular_matrix"
	case solver.Code(C.UMFPACK_WARNING_determinant_underflow):
		return "UMFPACK_WARNING_determinant_underflow"
	case solver.Code(C.UMFPACK_WARNING_determinant_overflow):
		return "UMFPACK_WARNING_determinant_overflow"
	case solver.Code(C.UMFPACK_ERROR_out_of_memory):
		return "UMFPACK_ERROR_out_of_memory"
	case solver.Code(C.UMFPACK_ERROR_invalid_Numeric_object):
		return "UMFPACK_ERROR_invalid_Numeric_object"
	case solver.Code(C.UMFPACK_ERROR_invalid_Symbolic_object):
		return "UMFPACK_ERROR_invalid_Symbolic_object"
	case solver.Code(C.UMFPACK_ERROR_argument_missing):
		return "UMFPACK_ERROR_argument_missing"
	case solver.Code(C.UMFPACK_ERROR_n_nonpositive):
		return "UMFPACK_ERROR_n_nonpositive"
	case solver.Code(C.UMFPACK_ERROR_invalid_matrix):
		return "UMFPACK_ERROR_invalid_matrix"
	case solver.Code(C.UMFPACK_ERROR_different_pattern):
		return "UMFPACK_ERROR_different_pattern"
	case solver.Code(C.UMFPACK_ERROR_invalid_system):
		return "UMFPACK_ERROR_invalid_system"
	case solver.Code(C.UMFPACK_ERROR_invalid_permutation):
		return "UMFPACK_ERROR_invalid_permutation"
	case solver.Code(C.UMFPACK_ERROR_ordering_failed):
		return "UMFPACK_ERROR_ordering_failed"
	case solver.Code(C.UMFPACK_ERROR_internal_error):
		return "UMFPACK_ERROR_internal_error"
	default:
		return fmt.Sprintf("UMFPACK status %d", int32(code))
	}
}

// Classify maps UMFPACK's vocabulary onto the structured taxonomy:
// the singular-matrix warning is the recoverable numerical result, other
// positive codes are warnings, every negative or shim-level code is fatal.
func (s *Solver) Classify(code solver.Code) solver.Class {
	switch {
	case code == solver.CodeOK:
		return solver.ClassOK
	case code == solver.Code(C.UMFPACK_WARNING_singular_matrix):
		return solver.ClassNumerical
	case code > solver.CodeOK && code < solver.CodeNullPointer:
		return solver.ClassWarning
	default:
		return solver.ClassFatal
	}
}
