// SPDX-License-Identifier: MIT

// HostDirect: the host direct backend. The vendor factorization library
// here is gonum's mat.LU; this file owns the lifecycle around it —
// structural analysis, the full-numeric-refactorization cost model,
// lazy factor extraction, and the parameter surface.

package solver

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/ASunil-17/ReSolveTesting/logger"
	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// HostDirect factorizes on the CPU. Setup binds the matrix; Analyze
// validates the sparsity structure; Factorize and Refactorize both run a
// full numeric factorization reusing the analyzed structure (the host
// cost model — refactorization is not cheaper here).
type HostDirect struct {
	paramRegistry

	state State
	a     *matrix.Sparse

	engine *mat.LU // opaque factorization state, one live instance
	dense  *mat.Dense

	l, u             *matrix.Sparse // lazily extracted CSC factors
	factorsExtracted bool

	pivotTol       float64
	ordering       int
	haltIfSingular bool
}

// NewHostDirect creates a host direct solver and reports its parameter
// defaults on the diagnostic channel.
func NewHostDirect(opts ...Option) *HostDirect {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &HostDirect{
		pivotTol:       cfg.pivotTol,
		ordering:       cfg.ordering,
		haltIfSingular: cfg.haltIfSingular,
	}
	s.registerParam("pivot_tol", ParamPivotTol)
	s.registerParam("ordering", ParamOrdering)
	s.registerParam("halt_if_singular", ParamHaltIfSingular)

	logger.Summary("host direct solver configured",
		"pivot_tol", s.pivotTol,
		"ordering", s.ordering,
		"halt_if_singular", s.haltIfSingular)
	return s
}

// Setup binds the system matrix. Factors, orderings and rhs are not
// consumed by this backend. Re-setup destroys the previous engine state
// before anything else, so no numeric data from a prior matrix survives.
func (s *HostDirect) Setup(a, _, _ *matrix.Sparse, _, _ []int, _ *vector.Vector) int {
	if a == nil {
		panic("solver: setup with nil matrix")
	}
	if s.state != Uninitialized {
		s.destroyEngine()
	}
	s.a = a
	s.state = Configured
	return 0
}

// Analyze validates the sparsity structure of the bound matrix. It is
// idempotent: repeat calls discard previous symbolic state and recompute.
// Structural problems (empty row or column, malformed pointers, COO
// input, non-square shape) are runtime failures: logged, return 1, no
// state advance.
func (s *HostDirect) Analyze() int {
	if s.a == nil {
		panic("solver: analyze before setup")
	}
	s.invalidateFactors()

	if s.a.Format() == matrix.COO {
		logger.Error("structural analysis failed: unsupported format", "format", s.a.Format().String())
		return 1
	}
	if s.a.Rows() != s.a.Cols() {
		logger.Error("structural analysis failed: matrix not square",
			"rows", s.a.Rows(), "cols", s.a.Cols())
		return 1
	}
	if !matrix.ValidatePtr(s.a) {
		logger.Error("structural analysis failed: malformed pointer array")
		return 1
	}
	if !s.structurallyNonsingular() {
		logger.Error("structural analysis failed: matrix is structurally singular")
		return 1
	}
	s.state = Analyzed
	return 0
}

// structurallyNonsingular checks that every row and column carries at
// least one entry. Sparsity only; values are not consulted.
func (s *HostDirect) structurallyNonsingular() bool {
	n := s.a.Rows()
	ptr := s.a.PtrData(memory.Host)
	idx := s.a.IdxData(memory.Host)
	minor := make([]bool, n)
	for i := 0; i < n; i++ {
		if ptr[i+1] == ptr[i] {
			return false
		}
	}
	for _, j := range idx {
		minor[j] = true
	}
	for _, seen := range minor {
		if !seen {
			return false
		}
	}
	return true
}

// Factorize runs the numeric factorization through the engine. A
// singular result is reported on the diagnostic channel; it fails the
// call only when halt-if-singular is set.
func (s *HostDirect) Factorize() int {
	if s.state != Analyzed && s.state != Factorized {
		panic(fmt.Sprintf("solver: factorize in state %s", s.state))
	}
	s.invalidateFactors()

	// A fresh engine per factorization epoch: the previous numeric
	// state is dropped, never patched.
	s.engine = &mat.LU{}
	s.stageDense()
	s.engine.Factorize(s.dense)

	s.state = Factorized
	return s.singularStatus()
}

// Refactorize recomputes numeric values reusing the analyzed structure.
// On the host this costs a full factorization; the symbolic epoch (and
// with it any extracted-factor invalidation rules) still advances the
// same way the device backends advance theirs.
func (s *HostDirect) Refactorize() int {
	if s.state != Factorized {
		panic(fmt.Sprintf("solver: refactorize in state %s", s.state))
	}
	s.invalidateFactors()
	s.stageDense()
	s.engine.Factorize(s.dense)
	return s.singularStatus()
}

func (s *HostDirect) singularStatus() int {
	det := s.engine.Det()
	if det == 0 || math.IsNaN(det) {
		logger.Warning("numeric factorization is singular")
		if s.haltIfSingular {
			return 1
		}
	}
	return 0
}

// stageDense rebuilds the engine's dense staging from the bound matrix's
// host values. Both CSR and CSC are accepted; analysis already rejected
// anything else.
func (s *HostDirect) stageDense() {
	n := s.a.Rows()
	if s.dense == nil {
		s.dense = mat.NewDense(n, n, nil)
	} else {
		s.dense.Zero()
	}
	ptr := s.a.PtrData(memory.Host)
	idx := s.a.IdxData(memory.Host)
	vals := s.a.ValueData(memory.Host)
	csr := s.a.Format() == matrix.CSR
	for maj := 0; maj < len(ptr)-1; maj++ {
		for p := ptr[maj]; p < ptr[maj+1]; p++ {
			if csr {
				s.dense.Set(maj, idx[p], vals[p])
			} else {
				s.dense.Set(idx[p], maj, vals[p])
			}
		}
	}
}

// Solve is not provided in the one-argument form by this backend.
func (s *HostDirect) Solve(_ *vector.Vector) int {
	logger.Error("Solve(rhs) not implemented for the host direct backend; use SolveInto(rhs, x)")
	return 1
}

// SolveInto copies rhs into x, then solves in x. rhs is unmodified.
func (s *HostDirect) SolveInto(rhs, x *vector.Vector) int {
	if s.state != Factorized {
		panic(fmt.Sprintf("solver: solve in state %s", s.state))
	}
	n := s.a.Rows()
	b := rhs.Data(memory.Host)
	if b == nil {
		logger.Error("solve: rhs not resident on host")
		return 1
	}
	if err := x.CopyDataFrom(b, memory.Host, memory.Host); err != nil {
		logger.Error("solve: copying rhs into x failed", "err", err)
		return 1
	}

	var sol mat.VecDense
	if err := s.engine.SolveVecTo(&sol, false, mat.NewVecDense(n, b)); err != nil {
		logger.Error("solve failed", "err", err)
		return 1
	}
	copy(x.Data(memory.Host), sol.RawVector().Data)
	x.SetDataUpdated(memory.Host)
	return 0
}

// LFactor lazily extracts the unit-lower factor as a CSC matrix. The
// cached copy stays valid until the next Analyze/Factorize/Refactorize.
// Returns nil (with a diagnostic) before the first factorization.
func (s *HostDirect) LFactor() *matrix.Sparse {
	if !s.extractFactors() {
		return nil
	}
	return s.l
}

// UFactor lazily extracts the upper factor as a CSC matrix, under the
// same caching rules as LFactor.
func (s *HostDirect) UFactor() *matrix.Sparse {
	if !s.extractFactors() {
		return nil
	}
	return s.u
}

func (s *HostDirect) extractFactors() bool {
	if s.state != Factorized {
		logger.Error("factor extraction requires a factorized solver", "state", s.state.String())
		return false
	}
	if s.factorsExtracted {
		return true
	}
	n := s.a.Rows()
	var lt, ut mat.TriDense
	s.engine.LTo(&lt)
	s.engine.UTo(&ut)
	s.l = triToCsc(&lt, n)
	s.u = triToCsc(&ut, n)
	s.factorsExtracted = true
	return true
}

// triToCsc compresses a dense triangular factor into CSC storage.
func triToCsc(t *mat.TriDense, n int) *matrix.Sparse {
	nnz := 0
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if t.At(i, j) != 0 {
				nnz++
			}
		}
	}
	ptr := make([]int, n+1)
	idx := make([]int, 0, nnz)
	vals := make([]float64, 0, nnz)
	for j := 0; j < n; j++ {
		ptr[j] = len(idx)
		for i := 0; i < n; i++ {
			if v := t.At(i, j); v != 0 {
				idx = append(idx, i)
				vals = append(vals, v)
			}
		}
	}
	ptr[n] = len(idx)
	return matrix.NewCscFromArrays(n, n, nnz, ptr, idx, vals)
}

// POrdering returns a caller-owned copy of the row ordering: p[i] is the
// original row placed at position i of the factorization. Nil before the
// first factorization.
func (s *HostDirect) POrdering() []int {
	if s.state != Factorized {
		return nil
	}
	n := s.a.Rows()
	swaps := s.engine.Pivot(nil)
	p := make([]int, n)
	for j, i := range swaps {
		p[i] = j
	}
	return p
}

// QOrdering returns a caller-owned copy of the column ordering. The host
// engine pivots rows only, so Q is the natural order.
func (s *HostDirect) QOrdering() []int {
	if s.state != Factorized {
		return nil
	}
	n := s.a.Rows()
	q := make([]int, n)
	for i := range q {
		q[i] = i
	}
	return q
}

// MatrixConditionNumber returns the engine's condition estimate for the
// current factorization.
func (s *HostDirect) MatrixConditionNumber() float64 {
	if s.state != Factorized {
		logger.Error("condition number requires a factorized solver")
		return math.NaN()
	}
	return s.engine.Cond()
}

// SetPivotThreshold updates the pivoting tolerance; it takes effect on
// the next factorization, not retroactively.
func (s *HostDirect) SetPivotThreshold(tol float64) { s.pivotTol = tol }

// SetOrdering selects the ordering heuristic for the next analysis.
func (s *HostDirect) SetOrdering(ordering int) { s.ordering = ordering }

// SetHaltIfSingular updates the halt-on-singular flag.
func (s *HostDirect) SetHaltIfSingular(halt bool) { s.haltIfSingular = halt }

// State returns the lifecycle stage.
func (s *HostDirect) State() State { return s.state }

func (s *HostDirect) invalidateFactors() {
	s.l, s.u = nil, nil
	s.factorsExtracted = false
}

func (s *HostDirect) destroyEngine() {
	s.engine = nil
	s.dense = nil
	s.invalidateFactors()
	s.state = Uninitialized
}

// SetCliParam sets a parameter by string id. Unknown ids log a failure
// and mutate nothing; the return is 0 either way.
func (s *HostDirect) SetCliParam(id, value string) int {
	pid, ok := s.lookupParam(id)
	if !ok {
		logger.Error("setting parameter failed: unknown id", "id", id)
		return 0
	}
	switch pid {
	case ParamPivotTol:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			logger.Error("setting parameter failed: bad value", "id", id, "value", value)
			return 0
		}
		s.SetPivotThreshold(v)
	case ParamOrdering:
		v, err := strconv.Atoi(value)
		if err != nil {
			logger.Error("setting parameter failed: bad value", "id", id, "value", value)
			return 0
		}
		s.SetOrdering(v)
	case ParamHaltIfSingular:
		s.SetHaltIfSingular(value == "yes")
	}
	return 0
}

// GetCliParamString returns "" for every id: this backend exposes no
// string-valued parameters.
func (s *HostDirect) GetCliParamString(id string) string {
	logger.Error("trying to get unknown string parameter", "id", id)
	return ""
}

// GetCliParamInt returns the integer parameter, or -1 for unknown ids.
func (s *HostDirect) GetCliParamInt(id string) int {
	if pid, ok := s.lookupParam(id); ok && pid == ParamOrdering {
		return s.ordering
	}
	logger.Error("trying to get unknown integer parameter", "id", id)
	return -1
}

// GetCliParamReal returns the real parameter, or NaN for unknown ids.
func (s *HostDirect) GetCliParamReal(id string) float64 {
	if pid, ok := s.lookupParam(id); ok && pid == ParamPivotTol {
		return s.pivotTol
	}
	logger.Error("trying to get unknown real parameter", "id", id)
	return math.NaN()
}

// GetCliParamBool returns the boolean parameter, or false for unknown ids.
func (s *HostDirect) GetCliParamBool(id string) bool {
	if pid, ok := s.lookupParam(id); ok && pid == ParamHaltIfSingular {
		return s.haltIfSingular
	}
	logger.Error("trying to get unknown boolean parameter", "id", id)
	return false
}

// PrintCliParam writes the parameter value to the diagnostic channel.
// Unknown ids return 1.
func (s *HostDirect) PrintCliParam(id string) int {
	pid, ok := s.lookupParam(id)
	if !ok {
		logger.Error("trying to print unknown parameter", "id", id)
		return 1
	}
	switch pid {
	case ParamPivotTol:
		logger.Summary("parameter", "id", id, "value", s.pivotTol)
	case ParamOrdering:
		logger.Summary("parameter", "id", id, "value", s.ordering)
	case ParamHaltIfSingular:
		logger.Summary("parameter", "id", id, "value", s.haltIfSingular)
	}
	return 0
}

var _ DirectSolver = (*HostDirect)(nil)
