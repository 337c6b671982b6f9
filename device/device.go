// SPDX-License-Identifier: MIT

package device

// Stream is an execution queue on a device. Work submitted through a
// device is ordered by its stream; Synchronize blocks until everything
// submitted so far has completed. The reference device executes eagerly,
// so its barrier is trivially satisfied, but call sites keep the barrier
// discipline for genuinely asynchronous backends.
type Stream interface {
	Synchronize() error
}

// Kernels is the set of sparse primitives a backend must provide for the
// matrix handler's device dispatch. All slices are device-visible views.
// Every kernel returns 0 on success and a nonzero status on failure.
type Kernels interface {
	// MatvecCsr computes y = alpha*A*x + beta*y for a CSR matrix with
	// `rows` rows described by (ptr, idx, vals).
	MatvecCsr(rows int, ptr, idx []int, vals, x, y []float64, alpha, beta float64) int

	// InfNormCsr returns the maximum absolute row sum of a CSR matrix.
	InfNormCsr(rows int, ptr []int, vals []float64) (float64, int)

	// Csc2Csr transposes storage: a CSC matrix (colPtr, rowIdx, cscVals)
	// of shape rows×cols is rewritten as CSR into (rowPtr, colIdx,
	// csrVals), which must be preallocated with rowPtr of length rows+1
	// and the other two of length nnz.
	Csc2Csr(rows, cols, nnz int, colPtr, rowIdx []int, cscVals []float64, rowPtr, colIdx []int, csrVals []float64) int

	// AddConst adds c to every stored value.
	AddConst(vals []float64, c float64) int
}

// Device is an execution backend. Allocations return device-resident
// arrays exposed as Go slices; for an out-of-process backend these are
// pinned staging views, for the reference device they are the storage
// itself.
type Device interface {
	Kernels

	// Name identifies the backend (e.g. "reference", "cuda", "hip").
	Name() string

	// AllocInts allocates a device-resident integer array of length n.
	AllocInts(n int) []int

	// AllocFloats allocates a device-resident float64 array of length n.
	AllocFloats(n int) []float64

	// NewStream creates an execution stream.
	NewStream() Stream

	// NewRefactorEngine creates a fresh refactorization engine handle.
	NewRefactorEngine() RefactorEngine

	// NewIncompleteLUEngine creates a fresh incomplete-LU engine handle.
	NewIncompleteLUEngine() IncompleteLUEngine
}
