// SPDX-License-Identifier: MIT

// Reference incomplete-LU engine: textbook ILU0 restricted to the CSR
// pattern, plus the two pattern-split triangular sweeps. Analysis of the
// system descriptor builds the per-row column maps and diagonal
// positions the factorization and solves navigate by; the L and U
// descriptor analyses validate the split only.

package device

type refILUEngine struct {
	n, nnz int
	cols   [][]int       // per row: positions into vals, ascending by column
	lookup []map[int]int // per row: column -> position into vals
	diag   []int         // per row: position of the diagonal entry, -1 if absent
}

// BufferSize reports the scratch requirement. The reference kernels need
// one float64 per row for all three parts.
func (e *refILUEngine) BufferSize(part Part, n, nnz int, ptr, idx []int, vals []float64) (int, int) {
	if n <= 0 || len(ptr) != n+1 || len(idx) != nnz {
		return 0, 1
	}
	return n, 0
}

func (e *refILUEngine) Analysis(part Part, n, nnz int, ptr, idx []int, vals []float64, buf []float64) int {
	if len(ptr) != n+1 || len(idx) != nnz || len(buf) < n {
		return 1
	}
	if part != PartA {
		// The triangular parts share A's pattern; nothing further to build.
		if e.diag == nil {
			return 1
		}
		return 0
	}
	e.n, e.nnz = n, nnz
	e.cols = make([][]int, n)
	e.lookup = make([]map[int]int, n)
	e.diag = make([]int, n)
	status := 0
	for i := 0; i < n; i++ {
		e.diag[i] = -1
		e.lookup[i] = make(map[int]int, ptr[i+1]-ptr[i])
		row := make([]int, 0, ptr[i+1]-ptr[i])
		for p := ptr[i]; p < ptr[i+1]; p++ {
			e.lookup[i][idx[p]] = p
			if idx[p] == i {
				e.diag[i] = p
			}
			row = append(row, p)
		}
		// Column indices within a row are not required to be sorted;
		// elimination needs them ascending, so order positions here.
		insertionSortByColumn(row, idx)
		e.cols[i] = row
		if e.diag[i] < 0 {
			status = 1 // structurally missing diagonal, ILU0 cannot proceed
		}
	}
	return status
}

// Compute runs ILU0 in place on vals: an IKJ elimination where updates
// are applied only where the pattern already has an entry.
func (e *refILUEngine) Compute(n, nnz int, ptr, idx []int, vals []float64, buf []float64) int {
	if e.diag == nil || n != e.n || nnz != e.nnz {
		return 1
	}
	status := 0
	for i := 0; i < n; i++ {
		for _, pk := range e.cols[i] {
			k := idx[pk]
			if k >= i {
				break
			}
			d := vals[e.diag[k]]
			if d == 0 {
				status++
				continue
			}
			lik := vals[pk] / d
			vals[pk] = lik
			for _, pj := range e.cols[k] {
				j := idx[pj]
				if j <= k {
					continue
				}
				if pij, ok := e.lookup[i][j]; ok {
					vals[pij] -= lik * vals[pj]
				}
			}
		}
		if dm := e.diag[i]; dm >= 0 && vals[dm] == 0 {
			status++
		}
	}
	return status
}

// SolveLower solves L y = x with the implicit-unit lower triangle.
func (e *refILUEngine) SolveLower(n, nnz int, ptr, idx []int, vals []float64, x, y []float64, buf []float64) int {
	if e.diag == nil || n != e.n || len(x) < n || len(y) < n {
		return 1
	}
	for i := 0; i < n; i++ {
		sum := x[i]
		for _, p := range e.cols[i] {
			j := idx[p]
			if j >= i {
				break
			}
			sum -= vals[p] * y[j]
		}
		y[i] = sum
	}
	return 0
}

// SolveUpper solves U y = x with the non-unit upper triangle.
func (e *refILUEngine) SolveUpper(n, nnz int, ptr, idx []int, vals []float64, x, y []float64, buf []float64) int {
	if e.diag == nil || n != e.n || len(x) < n || len(y) < n {
		return 1
	}
	status := 0
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := len(e.cols[i]) - 1; k >= 0; k-- {
			p := e.cols[i][k]
			j := idx[p]
			if j <= i {
				break
			}
			sum -= vals[p] * y[j]
		}
		d := e.diag[i]
		if d < 0 || vals[d] == 0 {
			status = 1
			continue
		}
		y[i] = sum / vals[d]
	}
	return status
}

func (e *refILUEngine) Destroy() {
	e.cols, e.lookup, e.diag = nil, nil, nil
	e.n, e.nnz = 0, 0
}

// insertionSortByColumn orders the position slice by the column index it
// refers to. Rows are short; insertion sort keeps this allocation-free.
func insertionSortByColumn(pos []int, idx []int) {
	for i := 1; i < len(pos); i++ {
		p := pos[i]
		j := i - 1
		for j >= 0 && idx[pos[j]] > idx[p] {
			pos[j+1] = pos[j]
			j--
		}
		pos[j+1] = p
	}
}
