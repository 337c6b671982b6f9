// SPDX-License-Identifier: MIT

package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ASunil-17/ReSolveTesting/device"
)

// TestReference_Workspace checks the trivial stream contract and the
// slice-backed allocators.
func TestReference_Workspace(t *testing.T) {
	ws := device.NewWorkspace(device.NewReference())

	require.Equal(t, "reference", ws.Device().Name())
	require.NoError(t, ws.Sync())
	require.Len(t, ws.AllocInts(4), 4)
	require.Len(t, ws.AllocFloats(7), 7)
}

// TestReference_MatvecCsr checks y = alpha*A*x + beta*y on a 2x3 matrix
// and the bad-shape status.
func TestReference_MatvecCsr(t *testing.T) {
	dev := device.NewReference()

	// [1 2 0; 0 0 3] * [1 1 1]^T = [3 3]^T
	ptr := []int{0, 2, 3}
	idx := []int{0, 1, 2}
	vals := []float64{1, 2, 3}
	x := []float64{1, 1, 1}
	y := []float64{10, 10}

	require.Zero(t, dev.MatvecCsr(2, ptr, idx, vals, x, y, 1.0, 0.5))
	require.Equal(t, []float64{8, 8}, y)

	require.Equal(t, 1, dev.MatvecCsr(3, ptr, idx, vals, x, y, 1.0, 0.0),
		"pointer array shorter than rows+1 must fail")
}

// TestReference_InfNormCsr checks the maximum absolute row sum with
// mixed signs.
func TestReference_InfNormCsr(t *testing.T) {
	dev := device.NewReference()

	norm, st := dev.InfNormCsr(2, []int{0, 2, 3}, []float64{-4, 3, 5})
	require.Zero(t, st)
	require.Equal(t, 7.0, norm)
}

// TestReference_Csc2Csr runs the raw conversion kernel and checks the
// exact CSR layout of a 3x2 input.
func TestReference_Csc2Csr(t *testing.T) {
	dev := device.NewReference()

	// CSC: col0 = {row0: 1, row2: 2}, col1 = {row0: 3}.
	colPtr := []int{0, 2, 3}
	rowIdx := []int{0, 2, 0}
	cscVals := []float64{1, 2, 3}

	rowPtr := make([]int, 4)
	colIdx := make([]int, 3)
	csrVals := make([]float64, 3)

	require.Zero(t, dev.Csc2Csr(3, 2, 3, colPtr, rowIdx, cscVals, rowPtr, colIdx, csrVals))
	require.Equal(t, []int{0, 2, 2, 3}, rowPtr)
	require.Equal(t, []int{0, 1, 0}, colIdx)
	require.Equal(t, []float64{1, 3, 2}, csrVals)
}

// refactorFixture is a 3x3 system with a pivot-free natural ordering:
//
//	A = [2 1 0; 4 3 1; 0 2 5] = L*U
//	L = [1; 2 1; 0 2 1], U = [2 1 0; 1 1; 3]
//
// The factor arrays carry L's unit diagonal explicitly, the way a host
// factorization exports them.
func refactorFixture() (n int, ptr, idx []int, vals []float64,
	ptrL, idxL []int, valsL []float64,
	ptrU, idxU []int, valsU []float64) {
	n = 3
	ptr = []int{0, 2, 5, 7}
	idx = []int{0, 1, 0, 1, 2, 1, 2}
	vals = []float64{2, 1, 4, 3, 1, 2, 5}
	ptrL = []int{0, 1, 3, 5}
	idxL = []int{0, 0, 1, 1, 2}
	valsL = []float64{1, 2, 1, 2, 1}
	ptrU = []int{0, 2, 4, 5}
	idxU = []int{0, 1, 1, 2, 2}
	valsU = []float64{2, 1, 1, 1, 3}
	return
}

// TestRefactorEngine_SolveAfterSetup checks that the factorization
// composed from the supplied factors is usable before any Refactor call.
func TestRefactorEngine_SolveAfterSetup(t *testing.T) {
	eng := device.NewReference().NewRefactorEngine()
	defer eng.Destroy()

	n, ptr, idx, vals, ptrL, idxL, valsL, ptrU, idxU, valsU := refactorFixture()
	p := []int{0, 1, 2}
	q := []int{0, 1, 2}

	require.Zero(t, eng.SetupDevice(n, len(vals), ptr, idx, vals,
		len(valsL), ptrL, idxL, valsL,
		len(valsU), ptrU, idxU, valsU, p, q))
	require.Zero(t, eng.Analyze())

	// b = A * [1 1 1]^T = [3 8 7]^T, solved in place.
	x := []float64{3, 8, 7}
	scratch := make([]float64, n)
	require.Zero(t, eng.Solve(p, q, scratch, x, n))
	for i := range x {
		require.InDelta(t, 1.0, x[i], 1e-12, "component %d", i)
	}
}

// TestRefactorEngine_Refactor scales the matrix values, refactors, and
// expects the scaled system to solve to the same solution.
func TestRefactorEngine_Refactor(t *testing.T) {
	eng := device.NewReference().NewRefactorEngine()
	defer eng.Destroy()

	n, ptr, idx, vals, ptrL, idxL, valsL, ptrU, idxU, valsU := refactorFixture()
	p := []int{0, 1, 2}
	q := []int{0, 1, 2}

	require.Zero(t, eng.SetupDevice(n, len(vals), ptr, idx, vals,
		len(valsL), ptrL, idxL, valsL,
		len(valsU), ptrU, idxU, valsU, p, q))
	require.Zero(t, eng.Analyze())

	scaled := make([]float64, len(vals))
	for i, v := range vals {
		scaled[i] = 2 * v
	}
	require.Zero(t, eng.ResetValues(n, len(scaled), ptr, idx, scaled, p, q))
	require.Zero(t, eng.Refactor())

	// 2A * [1 1 1]^T = [6 16 14]^T.
	x := []float64{6, 16, 14}
	scratch := make([]float64, n)
	require.Zero(t, eng.Solve(p, q, scratch, x, n))
	for i := range x {
		require.InDelta(t, 1.0, x[i], 1e-12, "component %d", i)
	}
}

// TestRefactorEngine_ZeroPivot checks the zero-pivot policy: with no
// boost a vanishing pivot is a counted failure, with a boost the
// refactorization proceeds.
func TestRefactorEngine_ZeroPivot(t *testing.T) {
	newEngine := func() device.RefactorEngine {
		eng := device.NewReference().NewRefactorEngine()
		// A = [0 1; 1 0] has a structural zero pivot in natural order.
		ptr := []int{0, 1, 2}
		idx := []int{1, 0}
		vals := []float64{1, 1}
		// Identity factors as placeholders; Refactor overwrites them.
		ptrI := []int{0, 1, 2}
		idxI := []int{0, 1}
		valsI := []float64{1, 1}
		p := []int{0, 1}
		require.Zero(t, eng.SetupDevice(2, 2, ptr, idx, vals,
			2, ptrI, idxI, valsI, 2, ptrI, idxI, valsI, p, p))
		require.Zero(t, eng.Analyze())
		require.Zero(t, eng.ResetValues(2, 2, ptr, idx, vals, p, p))
		return eng
	}

	eng := newEngine()
	require.Zero(t, eng.SetNumericProperties(0, 0))
	require.Positive(t, eng.Refactor(), "unboosted zero pivot must be reported")
	eng.Destroy()

	eng = newEngine()
	require.Zero(t, eng.SetNumericProperties(0, 0.5))
	require.Zero(t, eng.Refactor(), "boosted zero pivot must proceed")
	eng.Destroy()
}

// iluTridiag returns tridiag(-1, 4, -1) of order n in CSR form. ILU0 on
// a tridiagonal pattern admits no fill, so the incomplete factorization
// is the exact one.
func iluTridiag(n int) (ptr, idx []int, vals []float64) {
	ptr = make([]int, n+1)
	for i := 0; i < n; i++ {
		for j := i - 1; j <= i+1; j++ {
			if j < 0 || j >= n {
				continue
			}
			idx = append(idx, j)
			if j == i {
				vals = append(vals, 4)
			} else {
				vals = append(vals, -1)
			}
		}
		ptr[i+1] = len(idx)
	}
	return
}

// TestIncompleteLUEngine_ExactOnTridiagonal factors tridiag(-1, 4, -1)
// and solves through the two sweeps; with no fill dropped the result is
// the exact solution.
func TestIncompleteLUEngine_ExactOnTridiagonal(t *testing.T) {
	const n = 6
	eng := device.NewReference().NewIncompleteLUEngine()
	defer eng.Destroy()

	ptr, idx, vals := iluTridiag(n)
	nnz := len(vals)

	size, st := eng.BufferSize(device.PartA, n, nnz, ptr, idx, vals)
	require.Zero(t, st)
	buf := make([]float64, size)

	require.Zero(t, eng.Analysis(device.PartA, n, nnz, ptr, idx, vals, buf))
	require.Zero(t, eng.Analysis(device.PartL, n, nnz, ptr, idx, vals, buf))
	require.Zero(t, eng.Analysis(device.PartU, n, nnz, ptr, idx, vals, buf))
	require.Zero(t, eng.Compute(n, nnz, ptr, idx, vals, buf))

	// b = A * [1 2 3 4 5 6]^T.
	b := []float64{2, 4, 6, 8, 10, 19}
	aux := make([]float64, n)
	x := make([]float64, n)
	require.Zero(t, eng.SolveLower(n, nnz, ptr, idx, vals, b, aux, buf))
	require.Zero(t, eng.SolveUpper(n, nnz, ptr, idx, vals, aux, x, buf))

	for i := range x {
		require.InDelta(t, float64(i+1), x[i], 1e-12, "component %d", i)
	}
}

// TestIncompleteLUEngine_MissingDiagonal checks that a structurally
// absent diagonal entry fails the analysis.
func TestIncompleteLUEngine_MissingDiagonal(t *testing.T) {
	eng := device.NewReference().NewIncompleteLUEngine()
	defer eng.Destroy()

	// Row 1 has no diagonal entry.
	ptr := []int{0, 1, 2}
	idx := []int{0, 0}
	vals := []float64{1, 1}
	buf := make([]float64, 2)

	require.Equal(t, 1, eng.Analysis(device.PartA, 2, 2, ptr, idx, vals, buf))
}
