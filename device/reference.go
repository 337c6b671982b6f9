// SPDX-License-Identifier: MIT

// The reference device: an in-process backend whose "device memory" is
// ordinary Go slices and whose stream completes eagerly. It makes the
// device code paths of the handler and the solver backends executable on
// any machine, and doubles as the behavioral model for cgo backends.

package device

import "math"

// Reference is the pure-Go execution backend.
type Reference struct{}

// NewReference returns the in-process reference device.
func NewReference() *Reference { return &Reference{} }

// Name implements Device.
func (*Reference) Name() string { return "reference" }

// AllocInts implements Device.
func (*Reference) AllocInts(n int) []int { return make([]int, n) }

// AllocFloats implements Device.
func (*Reference) AllocFloats(n int) []float64 { return make([]float64, n) }

// NewStream implements Device. Reference streams are synchronous.
func (*Reference) NewStream() Stream { return refStream{} }

// NewRefactorEngine implements Device.
func (*Reference) NewRefactorEngine() RefactorEngine { return &refRefactorEngine{} }

// NewIncompleteLUEngine implements Device.
func (*Reference) NewIncompleteLUEngine() IncompleteLUEngine { return &refILUEngine{} }

type refStream struct{}

// Synchronize is trivially satisfied: reference kernels run to completion
// before returning.
func (refStream) Synchronize() error { return nil }

// MatvecCsr implements Kernels: y = alpha*A*x + beta*y.
func (*Reference) MatvecCsr(rows int, ptr, idx []int, vals, x, y []float64, alpha, beta float64) int {
	if len(ptr) != rows+1 || len(x) == 0 || len(y) < rows {
		return 1
	}
	for i := 0; i < rows; i++ {
		sum := 0.0
		for p := ptr[i]; p < ptr[i+1]; p++ {
			sum += vals[p] * x[idx[p]]
		}
		y[i] = alpha*sum + beta*y[i]
	}
	return 0
}

// InfNormCsr implements Kernels.
func (*Reference) InfNormCsr(rows int, ptr []int, vals []float64) (float64, int) {
	if len(ptr) != rows+1 {
		return 0, 1
	}
	norm := 0.0
	for i := 0; i < rows; i++ {
		sum := 0.0
		for p := ptr[i]; p < ptr[i+1]; p++ {
			sum += math.Abs(vals[p])
		}
		if sum > norm {
			norm = sum
		}
	}
	return norm, 0
}

// Csc2Csr implements Kernels with the same counting-sort transposition a
// vendor sparse library performs on device.
func (*Reference) Csc2Csr(rows, cols, nnz int, colPtr, rowIdx []int, cscVals []float64, rowPtr, colIdx []int, csrVals []float64) int {
	if len(colPtr) != cols+1 || len(rowPtr) != rows+1 || len(rowIdx) != nnz || len(colIdx) != nnz {
		return 1
	}
	for i := range rowPtr {
		rowPtr[i] = 0
	}
	for i := 0; i < nnz; i++ {
		rowPtr[rowIdx[i]]++
	}
	sum := 0
	for i := 0; i < rows; i++ {
		c := rowPtr[i]
		rowPtr[i] = sum
		sum += c
	}
	rowPtr[rows] = nnz
	for col := 0; col < cols; col++ {
		for p := colPtr[col]; p < colPtr[col+1]; p++ {
			row := rowIdx[p]
			dst := rowPtr[row]
			colIdx[dst] = col
			csrVals[dst] = cscVals[p]
			rowPtr[row]++
		}
	}
	last := 0
	for i := 0; i <= rows; i++ {
		rowPtr[i], last = last, rowPtr[i]
	}
	return 0
}

// AddConst implements Kernels.
func (*Reference) AddConst(vals []float64, c float64) int {
	for i := range vals {
		vals[i] += c
	}
	return 0
}
