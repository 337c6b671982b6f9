// Package resolvetesting is a backend-portable toolkit for solving sparse
// linear systems Ax = b by direct and incomplete-factorization methods,
// on the host or on an accelerator, behind one uniform solver lifecycle.
//
// 🚀 What does it do?
//
//	A small, focused library that brings together:
//		• Sparse containers: CSR/CSC/COO matrices and dense vectors with
//		  dual host/device residency and explicit freshness tracking
//		• Format conversion: counting-sort CSC↔CSR transposition
//		• Matrix handler: matvec, infinity norm, transpose, conversion —
//		  dispatched to a host or device implementation by memory space
//		• Direct solvers: a host LU backend, a device refactorization
//		  backend, and a device incomplete-LU (ILU0) backend, all driving
//		  external factorization engines through one lifecycle:
//		  Setup → Analyze → Factorize ⇄ Refactorize → Solve
//
// ✨ Why this shape?
//
//   - The factorization mathematics lives in engines (gonum on the host,
//     pluggable vendor engines on the device); this library sequences the
//     engine calls, owns the permutations and scratch buffers, and keeps
//     the lifecycle honest across three structurally different backends.
//   - Pure Go by default — the reference device exercises every device
//     code path without cgo; CUDA/HIP engines plug in behind the same
//     interfaces.
//
// Everything is organized under flat subpackages:
//
//	device/ — device, stream and buffer contracts, vendor engine
//	          contracts, and the in-process reference device
//	logger/ — slog-backed diagnostic channel (Error/Warning/Summary)
//	matrix/ — sparse containers, CSC↔CSR converter, matrix handler
//	memory/ — the Host/Device memory-space selector
//	solver/ — DirectSolver contract, parameter registry, three backends
//	vector/ — dense vectors with host/device residency
//
// Quick sketch of the steady state loop (nonlinear iterations):
//
//	s.Setup(A, L, U, P, Q, nil)   // once: binds the system, builds state
//	for step := range steps {
//	    updateValues(A)           // same sparsity, new numbers
//	    s.Refactorize()           // cheap, values-only
//	    s.Solve(rhs)              // rhs overwritten with the solution
//	}
//
// Dive into the package docs for the exact lifecycle contracts and the
// error-code conventions shared by all backends.
package resolvetesting
