// SPDX-License-Identifier: MIT

// Reference refactorization engine. It keeps the factorization as a
// packed dense LU of the permuted system P·A·Q, which is installed from
// the supplied triangular factors at setup and recomputed from the
// matrix values on Refactor. Dense storage is a vendor-internal choice;
// the contract only promises the lifecycle semantics.

package device

import "math"

type refRefactorEngine struct {
	n, nnz int
	ptr    []int
	idx    []int
	vals   []float64
	p, q   []int

	lu []float64 // packed n×n: unit-lower below the diagonal, U on and above

	zero, boost float64
	fastMode    bool
	factAlg     Factorization
	solveAlg    TriangularSolve
	analyzed    bool
}

func (e *refRefactorEngine) SetupDevice(n, nnzA int, ptrA, idxA []int, valsA []float64,
	nnzL int, ptrL, idxL []int, valsL []float64,
	nnzU int, ptrU, idxU []int, valsU []float64,
	p, q []int) int {
	if n <= 0 || len(ptrA) != n+1 || len(idxA) != nnzA || len(valsA) != nnzA {
		return 1
	}
	if len(p) != n || len(q) != n {
		return 1
	}
	if len(ptrL) != n+1 || len(ptrU) != n+1 {
		return 1
	}
	e.n, e.nnz = n, nnzA
	e.ptr, e.idx, e.vals = ptrA, idxA, valsA
	e.p, e.q = p, q
	e.analyzed = false

	// Compose the packed LU from the supplied factors so that Solve is
	// valid immediately after setup, before the first Refactor.
	e.lu = make([]float64, n*n)
	for i := 0; i < n; i++ {
		for k := ptrL[i]; k < ptrL[i+1]; k++ {
			if j := idxL[k]; j < i { // L's unit diagonal is implicit
				e.lu[i*n+j] = valsL[k]
			}
		}
		for k := ptrU[i]; k < ptrU[i+1]; k++ {
			if j := idxU[k]; j >= i {
				e.lu[i*n+j] = valsU[k]
			}
		}
	}
	return 0
}

func (e *refRefactorEngine) Analyze() int {
	if e.lu == nil {
		return 1
	}
	e.analyzed = true
	return 0
}

func (e *refRefactorEngine) SetAlgorithms(fact Factorization, solve TriangularSolve) {
	e.factAlg = fact
	e.solveAlg = solve
}

func (e *refRefactorEngine) SetNumericProperties(zero, boost float64) int {
	if zero < 0 || boost < 0 {
		return 1
	}
	e.zero, e.boost = zero, boost
	return 0
}

func (e *refRefactorEngine) SetResetValuesFastMode(on bool) int {
	e.fastMode = on
	return 0
}

func (e *refRefactorEngine) ResetValues(n, nnz int, ptr, idx []int, vals []float64, p, q []int) int {
	if n != e.n || nnz != e.nnz || len(vals) != nnz {
		return 1
	}
	e.ptr, e.idx, e.vals = ptr, idx, vals
	e.p, e.q = p, q
	return 0
}

// Refactor recomputes the packed LU from the current matrix values by
// no-pivot elimination of P·A·Q. The orderings are expected to make the
// permuted system factorable without further pivoting; pivots at or
// below the zero threshold are boosted when a boost is set and counted
// as failures otherwise.
func (e *refRefactorEngine) Refactor() int {
	if !e.analyzed {
		return 1
	}
	n := e.n
	for i := range e.lu {
		e.lu[i] = 0
	}
	// qinv maps original column -> permuted column.
	qinv := make([]int, n)
	for j, oj := range e.q {
		qinv[oj] = j
	}
	for i := 0; i < n; i++ {
		oi := e.p[i]
		for k := e.ptr[oi]; k < e.ptr[oi+1]; k++ {
			e.lu[i*n+qinv[e.idx[k]]] = e.vals[k]
		}
	}
	status := 0
	for k := 0; k < n; k++ {
		piv := e.lu[k*n+k]
		if math.Abs(piv) <= e.zero {
			if e.boost > 0 {
				piv = e.boost
				e.lu[k*n+k] = piv
			} else {
				status++
				continue
			}
		}
		for i := k + 1; i < n; i++ {
			m := e.lu[i*n+k] / piv
			e.lu[i*n+k] = m
			if m == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				e.lu[i*n+j] -= m * e.lu[k*n+j]
			}
		}
	}
	return status
}

// Solve solves A x = b in place through the permuted factorization:
// scratch receives the row-permuted right-hand side, the two triangular
// sweeps run in place on scratch, and the column permutation lands the
// result back in x.
func (e *refRefactorEngine) Solve(p, q []int, scratch []float64, x []float64, n int) int {
	if n != e.n || len(scratch) < n || len(x) < n || e.lu == nil {
		return 1
	}
	for i := 0; i < n; i++ {
		scratch[i] = x[p[i]]
	}
	for i := 1; i < n; i++ {
		sum := scratch[i]
		for j := 0; j < i; j++ {
			sum -= e.lu[i*n+j] * scratch[j]
		}
		scratch[i] = sum
	}
	status := 0
	for i := n - 1; i >= 0; i-- {
		sum := scratch[i]
		for j := i + 1; j < n; j++ {
			sum -= e.lu[i*n+j] * scratch[j]
		}
		d := e.lu[i*n+i]
		if d == 0 {
			status = 1
			continue
		}
		scratch[i] = sum / d
	}
	for i := 0; i < n; i++ {
		x[q[i]] = scratch[i]
	}
	return status
}

func (e *refRefactorEngine) Destroy() {
	e.lu = nil
	e.ptr, e.idx, e.vals = nil, nil, nil
	e.p, e.q = nil, nil
	e.analyzed = false
}
