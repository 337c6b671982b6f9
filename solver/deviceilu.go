// SPDX-License-Identifier: MIT

// DeviceILU: the device incomplete-LU backend. Unlike the
// refactorization backend it needs no host factorization to start from:
// Setup runs a zero-fill ILU0 on the matrix's own sparsity pattern, and
// a solve is two triangular sweeps through the approximate factors.
// Triangular factors and orderings passed to Setup are ignored.

package solver

import (
	"fmt"
	"math"

	"github.com/ASunil-17/ReSolveTesting/device"
	"github.com/ASunil-17/ReSolveTesting/logger"
	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// DeviceILU wraps a device incomplete-LU handle.
//
// The factorization overwrites values in place, so the solver keeps an
// owned device copy of the matrix values and never touches the caller's
// arrays. Statuses from the individual engine calls are summed.
type DeviceILU struct {
	paramRegistry

	state State
	ws    *device.Workspace

	engine    device.IncompleteLUEngine
	setupDone bool

	a       *matrix.Sparse
	iluVals []float64 // owned device copy, factored in place
	buf     []float64 // shared analysis/solve scratch
	aux     []float64 // intermediate vector between the two sweeps
}

// NewDeviceILU creates an incomplete-LU solver on ws's device. The
// backend exposes no configurable parameters.
func NewDeviceILU(ws *device.Workspace) *DeviceILU {
	logger.Summary("device incomplete-LU solver configured", "device", ws.Device().Name())
	return &DeviceILU{ws: ws}
}

// Setup stages the matrix on the device, sizes the shared scratch
// buffer, runs the three structural analyses and computes the ILU0
// factorization. The factors, orderings and rhs arguments of the common
// signature are ignored. The matrix must be CSR.
//
// Re-setup destroys the previous engine handle first.
func (s *DeviceILU) Setup(a, _, _ *matrix.Sparse, _, _ []int, _ *vector.Vector) int {
	if a == nil {
		panic("solver: setup with nil matrix")
	}
	if a.Format() != matrix.CSR {
		panic("solver: incomplete LU requires a CSR system matrix")
	}
	if s.setupDone {
		s.engine.Destroy()
		s.engine = nil
		s.setupDone = false
		s.state = Uninitialized
	}

	n, nnz := a.Rows(), a.Nnz()
	s.a = a
	a.BindDevice(s.ws)
	if err := a.SyncData(memory.Device); err != nil {
		logger.Error("setup: staging matrix on device failed", "err", err)
		return 1
	}
	ptr := a.PtrData(memory.Device)
	idx := a.IdxData(memory.Device)

	s.iluVals = s.ws.AllocFloats(nnz)
	copy(s.iluVals, a.ValueData(memory.Device))

	s.engine = s.ws.Device().NewIncompleteLUEngine()

	sizeA, stA := s.engine.BufferSize(device.PartA, n, nnz, ptr, idx, s.iluVals)
	sizeL, stL := s.engine.BufferSize(device.PartL, n, nnz, ptr, idx, s.iluVals)
	sizeU, stU := s.engine.BufferSize(device.PartU, n, nnz, ptr, idx, s.iluVals)
	errSum := stA + stL + stU
	if errSum != 0 {
		logger.Warning("setup: buffer sizing reported failures", "status_sum", errSum)
	}
	s.buf = s.ws.AllocFloats(maxOf(sizeA, sizeL, sizeU))

	if st := s.engine.Analysis(device.PartA, n, nnz, ptr, idx, s.iluVals, s.buf); st != 0 {
		logger.Warning("setup: matrix analysis failed", "status", st)
		errSum += st
	}
	if st := s.engine.Analysis(device.PartL, n, nnz, ptr, idx, s.iluVals, s.buf); st != 0 {
		logger.Warning("setup: lower-factor analysis failed", "status", st)
		errSum += st
	}
	if st := s.engine.Analysis(device.PartU, n, nnz, ptr, idx, s.iluVals, s.buf); st != 0 {
		logger.Warning("setup: upper-factor analysis failed", "status", st)
		errSum += st
	}
	if st := s.engine.Compute(n, nnz, ptr, idx, s.iluVals, s.buf); st != 0 {
		logger.Warning("setup: incomplete factorization failed", "status", st)
		errSum += st
	}
	if err := s.ws.Sync(); err != nil {
		logger.Error("setup: device synchronization failed", "err", err)
		errSum++
	}

	s.aux = s.ws.AllocFloats(n)
	s.setupDone = true
	s.state = Factorized
	return errSum
}

// Reset refreshes the factorization from a's current values. The
// sparsity pattern must be unchanged since Setup; only values may
// differ.
func (s *DeviceILU) Reset(a *matrix.Sparse) int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: reset in state %s", s.state))
	}
	s.a = a
	a.BindDevice(s.ws)
	if err := a.SyncData(memory.Device); err != nil {
		logger.Error("reset: staging matrix values on device failed", "err", err)
		return 1
	}
	copy(s.iluVals, a.ValueData(memory.Device))
	n, nnz := a.Rows(), a.Nnz()
	errSum := s.engine.Compute(n, nnz,
		a.PtrData(memory.Device), a.IdxData(memory.Device), s.iluVals, s.buf)
	if err := s.ws.Sync(); err != nil {
		logger.Error("reset: device synchronization failed", "err", err)
		errSum++
	}
	return errSum
}

// Analyze is not a standalone step for this backend; the analyses run
// during Setup.
func (s *DeviceILU) Analyze() int {
	logger.Error("Analyze() not implemented for the incomplete-LU backend; analysis runs during Setup")
	return 1
}

// Factorize is not a standalone step for this backend; the
// factorization runs during Setup.
func (s *DeviceILU) Factorize() int {
	logger.Error("Factorize() not implemented for the incomplete-LU backend; factorization runs during Setup")
	return 1
}

// Refactorize refreshes the factorization from the bound matrix's
// current values.
func (s *DeviceILU) Refactorize() int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: refactorize in state %s", s.state))
	}
	return s.Reset(s.a)
}

// Solve solves in place through the two triangular sweeps: rhs holds
// the right-hand side on entry and the solution on exit.
func (s *DeviceILU) Solve(rhs *vector.Vector) int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: solve in state %s", s.state))
	}
	rhs.BindDevice(s.ws)
	if err := rhs.SyncData(memory.Device); err != nil {
		logger.Error("solve: staging rhs on device failed", "err", err)
		return 1
	}
	errSum := s.sweep(rhs.Data(memory.Device), rhs.Data(memory.Device))
	rhs.SetDataUpdated(memory.Device)
	return errSum
}

// SolveInto solves rhs into x without modifying rhs.
func (s *DeviceILU) SolveInto(rhs, x *vector.Vector) int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: solve in state %s", s.state))
	}
	rhs.BindDevice(s.ws)
	x.BindDevice(s.ws)
	if err := rhs.SyncData(memory.Device); err != nil {
		logger.Error("solve: staging rhs on device failed", "err", err)
		return 1
	}
	if err := x.Allocate(memory.Device); err != nil {
		logger.Error("solve: allocating x on device failed", "err", err)
		return 1
	}
	errSum := s.sweep(rhs.Data(memory.Device), x.Data(memory.Device))
	x.SetDataUpdated(memory.Device)
	return errSum
}

// sweep runs L y = b through the aux vector, then U x = y.
func (s *DeviceILU) sweep(b, x []float64) int {
	n, nnz := s.a.Rows(), s.a.Nnz()
	ptr := s.a.PtrData(memory.Device)
	idx := s.a.IdxData(memory.Device)
	errSum := s.engine.SolveLower(n, nnz, ptr, idx, s.iluVals, b, s.aux, s.buf)
	errSum += s.engine.SolveUpper(n, nnz, ptr, idx, s.iluVals, s.aux, x, s.buf)
	if err := s.ws.Sync(); err != nil {
		logger.Error("solve: device synchronization failed", "err", err)
		errSum++
	}
	return errSum
}

// LFactor is not available: the approximate factors live packed inside
// the engine's value buffer.
func (s *DeviceILU) LFactor() *matrix.Sparse {
	logger.Error("LFactor() not available for the incomplete-LU backend")
	return nil
}

// UFactor is not available for the same reason as LFactor.
func (s *DeviceILU) UFactor() *matrix.Sparse {
	logger.Error("UFactor() not available for the incomplete-LU backend")
	return nil
}

// POrdering returns nil: this backend does not reorder.
func (s *DeviceILU) POrdering() []int { return nil }

// QOrdering returns nil: this backend does not reorder.
func (s *DeviceILU) QOrdering() []int { return nil }

// State returns the lifecycle stage.
func (s *DeviceILU) State() State { return s.state }

// SetCliParam always fails: the backend exposes no parameters.
func (s *DeviceILU) SetCliParam(id, _ string) int {
	logger.Error("setting parameter failed: unknown id", "id", id)
	return 0
}

// GetCliParamString returns "" for every id.
func (s *DeviceILU) GetCliParamString(id string) string {
	logger.Error("trying to get unknown string parameter", "id", id)
	return ""
}

// GetCliParamInt returns -1 for every id.
func (s *DeviceILU) GetCliParamInt(id string) int {
	logger.Error("trying to get unknown integer parameter", "id", id)
	return -1
}

// GetCliParamReal returns NaN for every id.
func (s *DeviceILU) GetCliParamReal(id string) float64 {
	logger.Error("trying to get unknown real parameter", "id", id)
	return math.NaN()
}

// GetCliParamBool returns false for every id.
func (s *DeviceILU) GetCliParamBool(id string) bool {
	logger.Error("trying to get unknown boolean parameter", "id", id)
	return false
}

// PrintCliParam returns 1 for every id.
func (s *DeviceILU) PrintCliParam(id string) int {
	logger.Error("trying to print unknown parameter", "id", id)
	return 1
}

var _ DirectSolver = (*DeviceILU)(nil)
