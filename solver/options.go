// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the backends.
//
// Design:
//   - Documented defaults as constants (single source of truth).
//   - WithX constructors validate eagerly and panic on nonsensical
//     values (programmer error, per the module-wide taxonomy).
//   - Options complement, not replace, the CLI parameter surface: the
//     same settings are reachable by string id after construction.

package solver

import "fmt"

const (
	// DefaultPivotThreshold is the host backend's partial-pivoting
	// tolerance: candidates within this fraction of the largest column
	// entry are acceptable pivots.
	DefaultPivotThreshold = 0.1

	// DefaultOrdering selects the host engine's fill-reducing ordering
	// heuristic by index. 0 is the engine default.
	DefaultOrdering = 0

	// DefaultHaltIfSingular controls whether the host backend reports
	// failure on a singular factorization instead of continuing.
	DefaultHaltIfSingular = false

	// DefaultZeroPivot is the device-refactor zero-pivot flagging
	// threshold: pivots with magnitude at or below it are flagged.
	DefaultZeroPivot = 0.0

	// DefaultPivotBoost is the value substituted for flagged pivots; 0
	// disables boosting, so flagged pivots fail the refactorization.
	DefaultPivotBoost = 0.0
)

type config struct {
	pivotTol       float64
	ordering       int
	haltIfSingular bool
	zeroPivot      float64
	pivotBoost     float64
}

func defaultConfig() config {
	return config{
		pivotTol:       DefaultPivotThreshold,
		ordering:       DefaultOrdering,
		haltIfSingular: DefaultHaltIfSingular,
		zeroPivot:      DefaultZeroPivot,
		pivotBoost:     DefaultPivotBoost,
	}
}

// Option configures a backend at construction.
type Option func(*config)

// WithPivotThreshold sets the pivoting tolerance in (0, 1].
// Panics outside that range.
func WithPivotThreshold(tol float64) Option {
	if tol <= 0 || tol > 1 {
		panic(fmt.Sprintf("solver: pivot threshold %v outside (0, 1]", tol))
	}
	return func(c *config) { c.pivotTol = tol }
}

// WithOrdering selects the ordering heuristic index. Panics on negative.
func WithOrdering(ordering int) Option {
	if ordering < 0 {
		panic(fmt.Sprintf("solver: negative ordering %d", ordering))
	}
	return func(c *config) { c.ordering = ordering }
}

// WithHaltIfSingular sets the halt-on-singular flag.
func WithHaltIfSingular(halt bool) Option {
	return func(c *config) { c.haltIfSingular = halt }
}

// WithZeroPivot sets the zero-pivot flagging threshold. Panics on
// negative values.
func WithZeroPivot(zero float64) Option {
	if zero < 0 {
		panic(fmt.Sprintf("solver: negative zero-pivot threshold %v", zero))
	}
	return func(c *config) { c.zeroPivot = zero }
}

// WithPivotBoost sets the boost substituted for flagged pivots. Panics
// on negative values.
func WithPivotBoost(boost float64) Option {
	if boost < 0 {
		panic(fmt.Sprintf("solver: negative pivot boost %v", boost))
	}
	return func(c *config) { c.pivotBoost = boost }
}
