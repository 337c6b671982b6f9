// SPDX-License-Identifier: MIT

// Package solver provides the direct-solver lifecycle over three
// execution backends: host LU, device refactorization, and device
// incomplete LU.
//
// Lifecycle:
//
//	Uninitialized → Setup → Configured → Analyze → Analyzed →
//	Factorize → Factorized ⇄ Refactorize … Solve
//
// Not every backend exposes every transition: HostDirect separates all
// four stages; DeviceRefactor folds analysis into Setup and makes
// Refactorize the steady-state hot path; DeviceILU computes its
// factorization during Setup and refactorizes by resetting values in
// place. Solving or refactorizing an instance that never reached the
// factorized stage is a lifecycle misuse and panics.
//
// Status codes:
//   - Every lifecycle method returns an int: 0 is success. Backends
//     accumulate engine statuses by addition, so a nonzero return means
//     "at least one sub-step failed" without identifying which. Details
//     go to the logger.
//   - Precondition violations (nil matrix, non-positive dimensions,
//     missing device residency where the contract requires it) panic.
//
// Configuration:
//   - Typed functional options at construction (WithPivotThreshold, ...).
//   - The string-keyed CLI parameter surface (SetCliParam/GetCliParam*)
//     for external configuration. Unknown ids are soft failures: getters
//     log and return a sentinel (NaN, -1, "", false); SetCliParam logs,
//     returns 0 and mutates nothing.
//
// A solver instance is single-caller; concurrent use is undefined.
package solver
