// SPDX-License-Identifier: MIT

// Package device defines the execution-backend contracts consumed by the
// matrix handler and the device solver backends, together with a pure-Go
// reference implementation.
//
// Purpose:
//   - Device/Stream are the minimal surface a backend must provide:
//     typed allocation of device-resident arrays, an execution stream with
//     a completion barrier, sparse kernels, and engine factories.
//   - RefactorEngine and IncompleteLUEngine are the vendor factorization
//     contracts (the cuSolverRf and csrilu0/csrsv shapes respectively).
//     The solver packages sequence these calls; the mathematics behind
//     them is the engine's business.
//   - Reference is an in-process device: allocation is plain slices,
//     streams complete eagerly, engines are straightforward Go kernels.
//     It exists so every device code path runs, and is the model for
//     plugging real CUDA/HIP backends behind the same interfaces.
//
// Concurrency:
//   - A Device and anything allocated from it belong to a single caller
//     goroutine. No internal locking is provided.
//
// Conventions:
//   - Engine methods return an integer status: 0 is success, anything
//     else is a vendor failure code. Callers accumulate statuses by
//     addition and treat a nonzero sum as "some step failed".
//   - Slices passed to kernels and engines are device-visible views
//     obtained from the same Device; handing a foreign slice to an engine
//     is a programmer error.
package device
