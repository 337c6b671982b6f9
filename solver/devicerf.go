// SPDX-License-Identifier: MIT

// DeviceRefactor: the device refactorization backend. It never computes
// a first factorization itself — a host factorization supplies the
// triangular factors and orderings, the engine installs them on the
// device, and from then on the steady state is cheap value-only
// refactorization plus device triangular solves.

package solver

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ASunil-17/ReSolveTesting/device"
	"github.com/ASunil-17/ReSolveTesting/logger"
	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// DeviceRefactor wraps a persistent device refactorization handle.
//
// Setup requires the system matrix in CSR form, both triangular factors
// (CSR or CSC, converted on the fly), and both orderings. Statuses from
// the individual engine calls are summed: 0 means every step succeeded,
// a nonzero total means some step failed and identifies nothing beyond
// that.
type DeviceRefactor struct {
	paramRegistry

	state State
	ws    *device.Workspace

	engine    device.RefactorEngine
	setupDone bool

	a       *matrix.Sparse
	l, u    *matrix.Sparse // CSR copies installed on the device
	p, q    []int          // host-retained orderings
	dP, dQ  []int
	scratch []float64

	zeroPivot  float64
	pivotBoost float64
}

// NewDeviceRefactor creates a refactorization solver on ws's device.
func NewDeviceRefactor(ws *device.Workspace, opts ...Option) *DeviceRefactor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &DeviceRefactor{
		ws:         ws,
		zeroPivot:  cfg.zeroPivot,
		pivotBoost: cfg.pivotBoost,
	}
	s.registerParam("zero_pivot", ParamZeroPivot)
	s.registerParam("pivot_boost", ParamPivotBoost)

	logger.Summary("device refactorization solver configured",
		"device", ws.Device().Name(),
		"zero_pivot", s.zeroPivot,
		"pivot_boost", s.pivotBoost)
	return s
}

// Setup installs the system matrix, its factors and its orderings into
// the engine and runs the one-time structural analysis. The matrix must
// be CSR; CSC factors are converted to CSR copies owned by the solver.
// Missing factors or orderings are programmer errors and panic; an
// unsupported factor format is a runtime failure.
//
// Re-setup destroys the previous engine handle first, so no symbolic or
// numeric state survives a matrix change.
func (s *DeviceRefactor) Setup(a, l, u *matrix.Sparse, p, q []int, _ *vector.Vector) int {
	if a == nil {
		panic("solver: setup with nil matrix")
	}
	if l == nil || u == nil {
		panic("solver: device refactorization requires both triangular factors")
	}
	if p == nil || q == nil {
		panic("solver: device refactorization requires both orderings")
	}
	if a.Format() != matrix.CSR {
		panic("solver: device refactorization requires a CSR system matrix")
	}
	if s.setupDone {
		s.engine.Destroy()
		s.engine = nil
		s.setupDone = false
		s.state = Uninitialized
	}

	n := a.Rows()
	s.a = a
	a.BindDevice(s.ws)
	if err := a.SyncData(memory.Device); err != nil {
		logger.Error("setup: staging matrix on device failed", "err", err)
		return 1
	}

	var status int
	if s.l, status = s.stageFactor(l, "L"); status != 0 {
		return status
	}
	if s.u, status = s.stageFactor(u, "U"); status != 0 {
		return status
	}

	s.p = append([]int(nil), p...)
	s.q = append([]int(nil), q...)
	s.dP = s.ws.AllocInts(n)
	s.dQ = s.ws.AllocInts(n)
	copy(s.dP, s.p)
	copy(s.dQ, s.q)
	s.scratch = s.ws.AllocFloats(n)

	s.engine = s.ws.Device().NewRefactorEngine()

	errSum := s.engine.SetResetValuesFastMode(true)
	errSum += s.engine.SetupDevice(n, a.Nnz(),
		a.PtrData(memory.Device), a.IdxData(memory.Device), a.ValueData(memory.Device),
		s.l.Nnz(), s.l.PtrData(memory.Device), s.l.IdxData(memory.Device), s.l.ValueData(memory.Device),
		s.u.Nnz(), s.u.PtrData(memory.Device), s.u.IdxData(memory.Device), s.u.ValueData(memory.Device),
		s.dP, s.dQ)
	if err := s.ws.Sync(); err != nil {
		logger.Error("setup: device synchronization failed", "err", err)
		errSum++
	}
	errSum += s.engine.Analyze()
	s.engine.SetAlgorithms(device.FactorizationAlg0, device.TriangularSolveAlg1)
	errSum += s.engine.SetNumericProperties(s.zeroPivot, s.pivotBoost)

	s.setupDone = true
	s.state = Factorized
	return errSum
}

// stageFactor ensures a triangular factor reaches the device in CSR
// form: CSR input is staged as-is, CSC input is converted into a
// solver-owned CSR copy first. Anything else fails the setup.
func (s *DeviceRefactor) stageFactor(f *matrix.Sparse, name string) (*matrix.Sparse, int) {
	var csr *matrix.Sparse
	switch f.Format() {
	case matrix.CSR:
		csr = f
	case matrix.CSC:
		if err := f.SyncData(memory.Host); err != nil {
			logger.Error("setup: factor not resident on host", "factor", name, "err", err)
			return nil, 1
		}
		csr = matrix.NewCsr(f.Rows(), f.Cols(), f.Nnz())
		matrix.Csc2Csr(f, csr)
	default:
		logger.Error("setup: unsupported factor format", "factor", name, "format", f.Format().String())
		return nil, 1
	}
	csr.BindDevice(s.ws)
	if err := csr.SyncData(memory.Device); err != nil {
		logger.Error("setup: staging factor on device failed", "factor", name, "err", err)
		return nil, 1
	}
	return csr, 0
}

// Analyze is not a standalone step for this backend; the structural
// analysis happens inside Setup.
func (s *DeviceRefactor) Analyze() int {
	logger.Error("Analyze() not implemented for the device refactorization backend; analysis runs during Setup")
	return 1
}

// Factorize is not provided: the first factorization comes from the host
// solver that produced the factors given to Setup.
func (s *DeviceRefactor) Factorize() int {
	logger.Error("Factorize() not implemented for the device refactorization backend; use Refactorize()")
	return 1
}

// Refactorize pushes the matrix's current values to the device and
// recomputes the numeric factorization against the installed structure.
// The sparsity pattern must be unchanged since Setup.
func (s *DeviceRefactor) Refactorize() int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: refactorize in state %s", s.state))
	}
	if err := s.a.SyncData(memory.Device); err != nil {
		logger.Error("refactorize: staging matrix values on device failed", "err", err)
		return 1
	}
	errSum := s.engine.ResetValues(s.a.Rows(), s.a.Nnz(),
		s.a.PtrData(memory.Device), s.a.IdxData(memory.Device), s.a.ValueData(memory.Device),
		s.dP, s.dQ)
	if err := s.ws.Sync(); err != nil {
		logger.Error("refactorize: device synchronization failed", "err", err)
		errSum++
	}
	errSum += s.engine.Refactor()
	return errSum
}

// Solve solves in place: rhs holds the right-hand side on entry and the
// solution on exit, with the device copy fresh.
func (s *DeviceRefactor) Solve(rhs *vector.Vector) int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: solve in state %s", s.state))
	}
	rhs.BindDevice(s.ws)
	if err := rhs.SyncData(memory.Device); err != nil {
		logger.Error("solve: staging rhs on device failed", "err", err)
		return 1
	}
	status := s.engine.Solve(s.dP, s.dQ, s.scratch, rhs.Data(memory.Device), s.a.Rows())
	rhs.SetDataUpdated(memory.Device)
	return status
}

// SolveInto copies rhs into x and solves in x. rhs is unmodified.
func (s *DeviceRefactor) SolveInto(rhs, x *vector.Vector) int {
	if !s.setupDone {
		panic(fmt.Sprintf("solver: solve in state %s", s.state))
	}
	rhs.BindDevice(s.ws)
	x.BindDevice(s.ws)
	if err := rhs.SyncData(memory.Device); err != nil {
		logger.Error("solve: staging rhs on device failed", "err", err)
		return 1
	}
	if err := x.CopyDataFrom(rhs.Data(memory.Device), memory.Device, memory.Device); err != nil {
		logger.Error("solve: copying rhs into x failed", "err", err)
		return 1
	}
	status := s.engine.Solve(s.dP, s.dQ, s.scratch, x.Data(memory.Device), s.a.Rows())
	x.SetDataUpdated(memory.Device)
	return status
}

// LFactor returns the CSR copy of the lower factor installed at Setup,
// or nil before setup.
func (s *DeviceRefactor) LFactor() *matrix.Sparse { return s.l }

// UFactor returns the CSR copy of the upper factor installed at Setup,
// or nil before setup.
func (s *DeviceRefactor) UFactor() *matrix.Sparse { return s.u }

// POrdering returns a caller-owned copy of the row ordering given to
// Setup, or nil before setup.
func (s *DeviceRefactor) POrdering() []int {
	if !s.setupDone {
		return nil
	}
	return append([]int(nil), s.p...)
}

// QOrdering returns a caller-owned copy of the column ordering given to
// Setup, or nil before setup.
func (s *DeviceRefactor) QOrdering() []int {
	if !s.setupDone {
		return nil
	}
	return append([]int(nil), s.q...)
}

// SetNumericalProperties updates the zero-pivot threshold and the boost
// substituted for flagged pivots, forwarding to the engine when one is
// live.
func (s *DeviceRefactor) SetNumericalProperties(zero, boost float64) int {
	s.zeroPivot, s.pivotBoost = zero, boost
	if s.setupDone {
		return s.engine.SetNumericProperties(zero, boost)
	}
	return 0
}

// State returns the lifecycle stage.
func (s *DeviceRefactor) State() State { return s.state }

// SetCliParam sets a parameter by string id. Unknown ids log a failure
// and mutate nothing.
func (s *DeviceRefactor) SetCliParam(id, value string) int {
	pid, ok := s.lookupParam(id)
	if !ok {
		logger.Error("setting parameter failed: unknown id", "id", id)
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Error("setting parameter failed: bad value", "id", id, "value", value)
		return 0
	}
	switch pid {
	case ParamZeroPivot:
		return s.SetNumericalProperties(v, s.pivotBoost)
	case ParamPivotBoost:
		return s.SetNumericalProperties(s.zeroPivot, v)
	}
	return 0
}

// GetCliParamString returns "" for every id: no string parameters here.
func (s *DeviceRefactor) GetCliParamString(id string) string {
	logger.Error("trying to get unknown string parameter", "id", id)
	return ""
}

// GetCliParamInt returns -1 for every id: no integer parameters here.
func (s *DeviceRefactor) GetCliParamInt(id string) int {
	logger.Error("trying to get unknown integer parameter", "id", id)
	return -1
}

// GetCliParamReal returns the real parameter, or NaN for unknown ids.
func (s *DeviceRefactor) GetCliParamReal(id string) float64 {
	switch pid, ok := s.lookupParam(id); {
	case ok && pid == ParamZeroPivot:
		return s.zeroPivot
	case ok && pid == ParamPivotBoost:
		return s.pivotBoost
	}
	logger.Error("trying to get unknown real parameter", "id", id)
	return math.NaN()
}

// GetCliParamBool returns false for every id: no boolean parameters here.
func (s *DeviceRefactor) GetCliParamBool(id string) bool {
	logger.Error("trying to get unknown boolean parameter", "id", id)
	return false
}

// PrintCliParam writes the parameter value to the diagnostic channel.
// Unknown ids return 1.
func (s *DeviceRefactor) PrintCliParam(id string) int {
	pid, ok := s.lookupParam(id)
	if !ok {
		logger.Error("trying to print unknown parameter", "id", id)
		return 1
	}
	switch pid {
	case ParamZeroPivot:
		logger.Summary("parameter", "id", id, "value", s.zeroPivot)
	case ParamPivotBoost:
		logger.Summary("parameter", "id", id, "value", s.pivotBoost)
	}
	return 0
}

var _ DirectSolver = (*DeviceRefactor)(nil)
