// Package solver_test contains unit tests for the LinSolver facade: state
// machine enforcement, code translation, and option plumbing. A scripted
// in-memory backend stands in for the cgo bindings so the tests stay
// hermetic.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// stubBackend implements solver.Backend with scripted status codes and
// call accounting. Classification mimics the real bindings: 0 OK, the
// reserved shim codes fatal, negative codes numerical-singular when they
// equal codeSingular, otherwise fatal, positive codes warnings.
type stubBackend struct {
	initCode      solver.Code
	factorizeCode solver.Code
	solveCode     solver.Code

	initCalls      int
	factorizeCalls int
	solveCalls     int
	freeCalls      int

	gotN, gotNnz int
	gotCfg       solver.Config

	ordering solver.Ordering
	scaling  solver.Scaling
}

const codeSingular solver.Code = -1

func (b *stubBackend) Initialize(n, nnz int, cfg solver.Config) solver.Code {
	b.initCalls++
	b.gotN, b.gotNnz, b.gotCfg = n, nnz, cfg

	return b.initCode
}

func (b *stubBackend) Factorize(_ *triplet.Matrix, _ bool) solver.Code {
	b.factorizeCalls++

	return b.factorizeCode
}

func (b *stubBackend) Solve(x, rhs []float64, _ bool) solver.Code {
	b.solveCalls++
	copy(x, rhs) // deterministic: pretend A == I

	return b.solveCode
}

func (b *stubBackend) UsedOrdering() solver.Ordering { return b.ordering }
func (b *stubBackend) UsedScaling() solver.Scaling   { return b.scaling }

func (b *stubBackend) CodeString(code solver.Code) string {
	if code == solver.CodeOK {
		return "OK"
	}

	return "stub error"
}

func (b *stubBackend) Classify(code solver.Code) solver.Class {
	switch {
	case code == solver.CodeOK:
		return solver.ClassOK
	case code == codeSingular:
		return solver.ClassNumerical
	case code > 0 && code < solver.CodeNullPointer:
		return solver.ClassWarning
	default:
		return solver.ClassFatal
	}
}

func (b *stubBackend) Free() { b.freeCalls++ }

// mustTriplet builds an n×n triplet with nnz unit diagonal-ish entries.
func mustTriplet(t *testing.T, n, nnz int) *triplet.Matrix {
	t.Helper()
	tr, err := triplet.New(n, n, nnz)
	require.NoError(t, err)
	var k int
	for k = 0; k < nnz; k++ {
		require.NoError(t, tr.Put(k%n, k%n, 1))
	}

	return tr
}

// TestNew_Validation covers the facade's fail-fast construction checks.
func TestNew_Validation(t *testing.T) {
	_, err := solver.New(nil, 2, 2)
	assert.ErrorIs(t, err, solver.ErrNilBackend)

	_, err = solver.New(&stubBackend{}, 0, 2)
	assert.ErrorIs(t, err, solver.ErrBadDims)

	_, err = solver.New(&stubBackend{}, 2, 0)
	assert.ErrorIs(t, err, solver.ErrBadDims)
}

// TestNew_ForwardsConfig verifies that options are resolved over the
// documented defaults and handed to the backend unchanged.
func TestNew_ForwardsConfig(t *testing.T) {
	b := &stubBackend{}
	ls, err := solver.New(b, 3, 5,
		solver.WithSymmetry(solver.SymmetryGeneral),
		solver.WithOrdering(solver.OrderingMetis),
		solver.WithScaling(solver.ScalingNo),
		solver.WithVerbose(true),
	)
	require.NoError(t, err)
	defer ls.Free()

	assert.Equal(t, 1, b.initCalls)
	assert.Equal(t, 3, b.gotN)
	assert.Equal(t, 5, b.gotNnz)
	assert.Equal(t, solver.SymmetryGeneral, b.gotCfg.Symmetry)
	assert.Equal(t, solver.OrderingMetis, b.gotCfg.Ordering)
	assert.Equal(t, solver.ScalingNo, b.gotCfg.Scaling)
	assert.True(t, b.gotCfg.Verbose)
}

// TestNew_InitializeFailure verifies translation of a failed Initialize
// and that no handle escapes.
func TestNew_InitializeFailure(t *testing.T) {
	b := &stubBackend{initCode: solver.CodeMalloc}
	ls, err := solver.New(b, 2, 2)
	assert.Nil(t, ls)
	assert.ErrorIs(t, err, solver.ErrInitialize)
}

// TestStateMachine_SolveBeforeFactorize verifies the checked precondition:
// the facade refuses Solve until Factorize succeeded.
func TestStateMachine_SolveBeforeFactorize(t *testing.T) {
	b := &stubBackend{}
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	x := make([]float64, 2)
	assert.ErrorIs(t, ls.Solve(x, []float64{1, 2}), solver.ErrNotFactorized)
	assert.Zero(t, b.solveCalls, "backend must not be reached")
}

// TestStateMachine_FactorizeThenSolve walks the happy path, including the
// repeatable Factorized state.
func TestStateMachine_FactorizeThenSolve(t *testing.T) {
	b := &stubBackend{}
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	tr := mustTriplet(t, 2, 2)
	require.NoError(t, ls.Factorize(tr))

	x := make([]float64, 2)
	require.NoError(t, ls.Solve(x, []float64{4, 9}))
	assert.Equal(t, []float64{4, 9}, x)

	// Re-factorize with updated values through the same slots is legal.
	require.NoError(t, ls.Factorize(tr))
	require.NoError(t, ls.Solve(x, []float64{4, 9}))
	assert.Equal(t, 2, b.factorizeCalls)
	assert.Equal(t, 2, b.solveCalls)
}

// TestFactorize_Validation covers nil and mismatched triplets.
func TestFactorize_Validation(t *testing.T) {
	ls, err := solver.New(&stubBackend{}, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	assert.ErrorIs(t, ls.Factorize(nil), solver.ErrNilTriplet)

	wrongShape := mustTriplet(t, 3, 2)
	assert.ErrorIs(t, ls.Factorize(wrongShape), solver.ErrBadDims)

	wrongCount := mustTriplet(t, 2, 1)
	assert.ErrorIs(t, ls.Factorize(wrongCount), solver.ErrBadDims)
}

// TestTranslate_Singular verifies that a numerical backend code surfaces
// as ErrSingular and leaves the handle usable (and freeable).
func TestTranslate_Singular(t *testing.T) {
	b := &stubBackend{factorizeCode: codeSingular}
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)

	err = ls.Factorize(mustTriplet(t, 2, 2))
	assert.ErrorIs(t, err, solver.ErrSingular)

	// A failed factorize must not unlock Solve.
	x := make([]float64, 2)
	assert.ErrorIs(t, ls.Solve(x, x), solver.ErrNotFactorized)

	ls.Free() // must be safe after failure
	assert.Equal(t, 1, b.freeCalls)
}

// TestTranslate_Fatal verifies the fatal branch wraps ErrBackend.
func TestTranslate_Fatal(t *testing.T) {
	b := &stubBackend{solveCode: solver.CodeNullPointer}
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	require.NoError(t, ls.Factorize(mustTriplet(t, 2, 2)))
	x := make([]float64, 2)
	assert.ErrorIs(t, ls.Solve(x, x), solver.ErrBackend)
}

// TestTranslate_WarningIsSuccess verifies that a vendor warning does not
// fail the call.
func TestTranslate_WarningIsSuccess(t *testing.T) {
	b := &stubBackend{factorizeCode: 2} // positive: warning vocabulary
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	assert.NoError(t, ls.Factorize(mustTriplet(t, 2, 2)))
}

// TestFree_IdempotentAndTerminal verifies exactly-once release and the
// terminal Destroyed state.
func TestFree_IdempotentAndTerminal(t *testing.T) {
	b := &stubBackend{}
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)

	ls.Free()
	ls.Free() // double free must be a no-op
	assert.Equal(t, 1, b.freeCalls)

	assert.ErrorIs(t, ls.Factorize(mustTriplet(t, 2, 2)), solver.ErrFreed)
	x := make([]float64, 2)
	assert.ErrorIs(t, ls.Solve(x, x), solver.ErrFreed)
}

// TestUsedQueries_Delegate verifies the read-only queries pass through the
// backend's report and stay inside the closed enumerations.
func TestUsedQueries_Delegate(t *testing.T) {
	b := &stubBackend{ordering: solver.OrderingAmd, scaling: solver.ScalingSum}
	ls, err := solver.New(b, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	require.NoError(t, ls.Factorize(mustTriplet(t, 2, 2)))
	assert.True(t, ls.UsedOrdering().Valid())
	assert.True(t, ls.UsedScaling().Valid())
	assert.Equal(t, solver.OrderingAmd, ls.UsedOrdering())
	assert.Equal(t, solver.ScalingSum, ls.UsedScaling())
}

// TestSolve_DimensionMismatch verifies buffer-length validation.
func TestSolve_DimensionMismatch(t *testing.T) {
	ls, err := solver.New(&stubBackend{}, 2, 2)
	require.NoError(t, err)
	defer ls.Free()

	require.NoError(t, ls.Factorize(mustTriplet(t, 2, 2)))
	assert.ErrorIs(t, ls.Solve(make([]float64, 3), make([]float64, 2)), solver.ErrDimensionMismatch)
	assert.ErrorIs(t, ls.Solve(make([]float64, 2), make([]float64, 1)), solver.ErrDimensionMismatch)
}
