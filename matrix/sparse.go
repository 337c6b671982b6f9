// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/ASunil-17/ReSolveTesting/memory"
)

// Sparse is a sparse matrix container: shape, nonzero count, a format tag
// and three parallel arrays, each independently resident on the host, on
// a device, or both. A per-space freshness flag records which copy is
// current; SyncData moves data toward the stale side.
//
// Invariant (CSR/CSC): the pointer array is monotonically non-decreasing,
// starts at 0 and ends at nnz. Index values within a pointer-delimited
// segment need not be sorted.
//
// Ownership: whoever constructs the Sparse owns it. Solvers that accept a
// caller's matrix only read it, except where an operation is documented
// as in/out (value reset paths).
type Sparse struct {
	rows, cols, nnz int
	format          Format

	ptr  []int
	idx  []int
	vals []float64

	dPtr  []int
	dIdx  []int
	dVals []float64

	fresh [2]bool // indexed by memory.Space
	mem   DeviceMem
}

// NewCsr creates an unallocated CSR matrix of the given shape.
func NewCsr(rows, cols, nnz int) *Sparse { return newSparse(rows, cols, nnz, CSR) }

// NewCsc creates an unallocated CSC matrix of the given shape.
func NewCsc(rows, cols, nnz int) *Sparse { return newSparse(rows, cols, nnz, CSC) }

// NewCoo creates an unallocated COO matrix of the given shape.
func NewCoo(rows, cols, nnz int) *Sparse { return newSparse(rows, cols, nnz, COO) }

func newSparse(rows, cols, nnz int, f Format) *Sparse {
	if rows <= 0 || cols <= 0 || nnz < 0 {
		panic("matrix: non-positive dimensions")
	}
	return &Sparse{rows: rows, cols: cols, nnz: nnz, format: f}
}

// NewCsrFromArrays wraps caller-provided host arrays as a CSR matrix and
// marks the host copy fresh. The arrays are adopted, not copied.
func NewCsrFromArrays(rows, cols, nnz int, ptr, idx []int, vals []float64) *Sparse {
	s := NewCsr(rows, cols, nnz)
	s.adopt(ptr, idx, vals)
	return s
}

// NewCscFromArrays wraps caller-provided host arrays as a CSC matrix and
// marks the host copy fresh. The arrays are adopted, not copied.
func NewCscFromArrays(rows, cols, nnz int, ptr, idx []int, vals []float64) *Sparse {
	s := NewCsc(rows, cols, nnz)
	s.adopt(ptr, idx, vals)
	return s
}

// NewCooFromArrays wraps caller-provided host triplet arrays as a COO
// matrix and marks the host copy fresh.
func NewCooFromArrays(rows, cols, nnz int, rowIdx, colIdx []int, vals []float64) *Sparse {
	s := NewCoo(rows, cols, nnz)
	s.adopt(rowIdx, colIdx, vals)
	return s
}

func (s *Sparse) adopt(ptr, idx []int, vals []float64) {
	if len(ptr) != s.ptrLen() || len(idx) != s.nnz || len(vals) != s.nnz {
		panic("matrix: array lengths do not match shape")
	}
	s.ptr, s.idx, s.vals = ptr, idx, vals
	s.fresh[memory.Host] = true
}

// ptrLen is the expected pointer-array length for the format.
func (s *Sparse) ptrLen() int {
	switch s.format {
	case CSR:
		return s.rows + 1
	case CSC:
		return s.cols + 1
	default: // COO: parallel row-index array
		return s.nnz
	}
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.cols }

// Nnz returns the nonzero count.
func (s *Sparse) Nnz() int { return s.nnz }

// Format returns the storage format tag.
func (s *Sparse) Format() Format { return s.format }

// BindDevice attaches a device allocator for device-side mirrors.
func (s *Sparse) BindDevice(mem DeviceMem) { s.mem = mem }

// AllocateData allocates the three arrays in the given space. Existing
// arrays in that space are kept. Allocation does not change freshness.
func (s *Sparse) AllocateData(space memory.Space) error {
	switch space {
	case memory.Host:
		if s.ptr == nil {
			s.ptr = make([]int, s.ptrLen())
			s.idx = make([]int, s.nnz)
			s.vals = make([]float64, s.nnz)
		}
		return nil
	case memory.Device:
		if s.mem == nil {
			return ErrNoDevice
		}
		if s.dPtr == nil {
			s.dPtr = s.mem.AllocInts(s.ptrLen())
			s.dIdx = s.mem.AllocInts(s.nnz)
			s.dVals = s.mem.AllocFloats(s.nnz)
		}
		return nil
	default:
		return ErrBadSpace
	}
}

// PtrData returns the pointer array resident in the given space, or nil
// if it was never allocated there. For COO this is the row-index array.
func (s *Sparse) PtrData(space memory.Space) []int {
	if space == memory.Device {
		return s.dPtr
	}
	return s.ptr
}

// IdxData returns the index array resident in the given space, or nil.
func (s *Sparse) IdxData(space memory.Space) []int {
	if space == memory.Device {
		return s.dIdx
	}
	return s.idx
}

// ValueData returns the value array resident in the given space, or nil.
func (s *Sparse) ValueData(space memory.Space) []float64 {
	if space == memory.Device {
		return s.dVals
	}
	return s.vals
}

// SetUpdated marks the given space as holding the freshest copy and the
// other space as stale.
func (s *Sparse) SetUpdated(space memory.Space) {
	s.fresh[memory.Host] = space == memory.Host
	s.fresh[memory.Device] = space == memory.Device
}

// Updated reports whether the given space holds a fresh copy.
func (s *Sparse) Updated(space memory.Space) bool { return s.fresh[space] }

// SyncData makes the given space hold a current copy, allocating it if
// needed and copying from the fresh side. Both sides are fresh after a
// successful sync. Syncing an already-fresh space is a no-op.
func (s *Sparse) SyncData(space memory.Space) error {
	if space != memory.Host && space != memory.Device {
		return ErrBadSpace
	}
	if s.fresh[space] {
		return nil
	}
	other := memory.Host
	if space == memory.Host {
		other = memory.Device
	}
	if !s.fresh[other] {
		return ErrNoFreshCopy
	}
	// A space can be flagged fresh without ever being allocated
	// (SetUpdated is unconditional); copying from nil arrays would
	// silently produce an empty "fresh" copy.
	if s.arrays(other).ptr == nil {
		return ErrNotAllocated
	}
	if err := s.AllocateData(space); err != nil {
		return err
	}
	src, dst := s.arrays(other), s.arrays(space)
	copy(dst.ptr, src.ptr)
	copy(dst.idx, src.idx)
	copy(dst.vals, src.vals)
	s.fresh[space] = true
	return nil
}

type arraySet struct {
	ptr, idx []int
	vals     []float64
}

func (s *Sparse) arrays(space memory.Space) arraySet {
	if space == memory.Device {
		return arraySet{s.dPtr, s.dIdx, s.dVals}
	}
	return arraySet{s.ptr, s.idx, s.vals}
}
