// SPDX-License-Identifier: MIT

// Package solver: the string-id parameter registry shared by all
// backends. Each backend registers the ids it understands at
// construction; the typed lookup returns (id, false) for everything
// else, and the CLI surface turns that into the sentinel contract.

package solver

// ParamID is the typed identity behind a registered parameter name.
type ParamID int

const (
	ParamUnknown ParamID = iota
	ParamPivotTol
	ParamOrdering
	ParamHaltIfSingular
	ParamZeroPivot
	ParamPivotBoost
)

// paramRegistry is embedded by every backend. The zero value is an
// empty registry: every lookup misses, which is exactly the behavior of
// a backend with no configurable parameters.
type paramRegistry struct {
	ids map[string]ParamID
}

// registerParam binds a string id to its typed identity.
func (r *paramRegistry) registerParam(name string, id ParamID) {
	if r.ids == nil {
		r.ids = make(map[string]ParamID)
	}
	r.ids[name] = id
}

// lookupParam resolves a string id. ok is false for unknown ids; the
// returned ParamID is ParamUnknown in that case.
func (r *paramRegistry) lookupParam(name string) (ParamID, bool) {
	id, ok := r.ids[name]
	if !ok {
		return ParamUnknown, false
	}
	return id, true
}
