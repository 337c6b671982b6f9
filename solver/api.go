// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// State names the solver lifecycle stage. Transitions are explicit:
// Setup moves any instance (back) to Configured, destroying previous
// opaque engine state; Analyze and Factorize advance; Refactorize keeps
// the instance Factorized.
type State int

const (
	Uninitialized State = iota
	Configured
	Analyzed
	Factorized
)

// String returns the lifecycle stage name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configured:
		return "configured"
	case Analyzed:
		return "analyzed"
	case Factorized:
		return "factorized"
	default:
		return "invalid"
	}
}

// DirectSolver is the uniform lifecycle over all backends.
//
// Setup binds the system matrix a. Backends that consume precomputed
// symbolic structure also take triangular factors l, u and orderings
// p, q produced elsewhere (host-direct and device-ILU ignore them; the
// device-refactor backend requires them — the asymmetry is deliberate).
// rhs is accepted for backends that precondition on it; none of the
// in-tree backends do. Calling Setup on an already-configured instance
// destroys and recreates the opaque engine state, never patches it.
//
// Solve overwrites rhs with the solution. SolveInto copies rhs into x
// first, solves into x, and leaves rhs unmodified.
//
// LFactor and UFactor lazily extract the triangular factors and cache
// them for the current factorization epoch; the next Analyze, Factorize
// or Refactorize invalidates the cache. POrdering and QOrdering return
// freshly allocated copies owned by the caller.
type DirectSolver interface {
	Setup(a, l, u *matrix.Sparse, p, q []int, rhs *vector.Vector) int
	Analyze() int
	Factorize() int
	Refactorize() int
	Solve(rhs *vector.Vector) int
	SolveInto(rhs, x *vector.Vector) int

	LFactor() *matrix.Sparse
	UFactor() *matrix.Sparse
	POrdering() []int
	QOrdering() []int

	State() State

	SetCliParam(id, value string) int
	GetCliParamString(id string) string
	GetCliParamInt(id string) int
	GetCliParamReal(id string) float64
	GetCliParamBool(id string) bool
	PrintCliParam(id string) int
}
