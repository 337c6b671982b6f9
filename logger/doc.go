// SPDX-License-Identifier: MIT

// Package logger is the diagnostic channel used across the module.
//
// Purpose:
//   - Structural failures (singular matrices, rejected formats, unknown
//     parameter ids, nonzero engine statuses) are reported here and as a
//     return code — never as a typed error the caller must unwrap.
//   - The channel is a thin façade over log/slog: three levels (Error,
//     Warning, Summary), one settable destination, no package state beyond
//     the active logger.
//
// Notes:
//   - Summary maps to slog's Info level and is used for one-time
//     configuration reports (e.g. solver defaults at construction).
//   - Tests redirect the channel with SetOutput and assert on the text.
package logger
