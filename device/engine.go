// SPDX-License-Identifier: MIT

// Vendor factorization engine contracts.
//
// The solver backends own the sequencing: which call comes after which,
// which barriers sit between them, and how statuses are accumulated.
// Engines own the numerics. Both contracts are shaped after the vendor
// libraries they stand in for, so a cgo-backed implementation is a thin
// translation layer.

package device

// Factorization selects the refactorization algorithm variant.
type Factorization int

const (
	// FactorizationAlg0 is the default algorithm.
	FactorizationAlg0 Factorization = iota
	FactorizationAlg1
	FactorizationAlg2
)

// TriangularSolve selects the triangular-solve algorithm variant.
type TriangularSolve int

const (
	TriangularSolveAlg1 TriangularSolve = iota + 1
	TriangularSolveAlg2
	TriangularSolveAlg3
)

// RefactorEngine is a persistent LU refactorization handle: symbolic
// structure and orderings are installed once (SetupDevice + Analyze),
// after which the steady state is ResetValues + Refactor + Solve.
//
// All array arguments are device-visible. P and Q map solve order to
// original row/column indices. Statuses are 0 on success.
type RefactorEngine interface {
	// SetupDevice installs the system matrix A, its triangular factors
	// L and U (all CSR) and the orderings p, q into the handle.
	SetupDevice(n, nnzA int, ptrA, idxA []int, valsA []float64,
		nnzL int, ptrL, idxL []int, valsL []float64,
		nnzU int, ptrU, idxU []int, valsU []float64,
		p, q []int) int

	// Analyze performs the one-time structural analysis for the
	// installed system. Must follow SetupDevice.
	Analyze() int

	// SetAlgorithms selects the factorization and triangular-solve
	// algorithm variants used by subsequent Refactor/Solve calls.
	SetAlgorithms(fact Factorization, solve TriangularSolve)

	// SetNumericProperties sets the zero-pivot flagging threshold and
	// the boost value substituted for flagged pivots.
	SetNumericProperties(zero, boost float64) int

	// SetResetValuesFastMode toggles the fast values-only reset path.
	SetResetValuesFastMode(on bool) int

	// ResetValues replaces the numeric values of the installed matrix,
	// keeping the symbolic structure. The sparsity described by
	// (ptr, idx) must match the one given to SetupDevice.
	ResetValues(n, nnz int, ptr, idx []int, vals []float64, p, q []int) int

	// Refactor recomputes the numeric factorization from the values
	// installed by SetupDevice or ResetValues.
	Refactor() int

	// Solve solves A x = b in place: x holds b on entry and the
	// solution on exit. scratch must be a device array of length n.
	Solve(p, q []int, scratch []float64, x []float64, n int) int

	// Destroy releases the handle. The engine must not be used after.
	Destroy()
}

// Part selects which descriptor an IncompleteLUEngine call refers to:
// the system matrix, its unit-lower factor, or its upper factor.
type Part int

const (
	PartA Part = iota
	PartL
	PartU
)

// IncompleteLUEngine is a zero-fill incomplete LU handle over one CSR
// sparsity pattern. The factorization overwrites vals in place, so the
// caller passes an owned copy of the matrix values, never the matrix's
// own array. Statuses are 0 on success.
type IncompleteLUEngine interface {
	// BufferSize reports the scratch requirement (in float64 elements)
	// of the given part's analysis and solve phases.
	BufferSize(part Part, n, nnz int, ptr, idx []int, vals []float64) (int, int)

	// Analysis performs the structural analysis for the given part.
	// PartA analysis must precede Compute; PartL/PartU analyses must
	// precede the corresponding triangular solves.
	Analysis(part Part, n, nnz int, ptr, idx []int, vals []float64, buf []float64) int

	// Compute performs the ILU0 factorization in place on vals.
	Compute(n, nnz int, ptr, idx []int, vals []float64, buf []float64) int

	// SolveLower solves L y = x with the unit-lower triangle stored in
	// vals (entries left of the diagonal).
	SolveLower(n, nnz int, ptr, idx []int, vals []float64, x, y []float64, buf []float64) int

	// SolveUpper solves U y = x with the upper triangle stored in vals
	// (diagonal and entries right of it).
	SolveUpper(n, nnz int, ptr, idx []int, vals []float64, x, y []float64, buf []float64) int

	// Destroy releases the descriptors. The engine must not be used after.
	Destroy()
}
