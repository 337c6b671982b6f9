// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu  sync.Mutex
	lvl = new(slog.LevelVar)
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
)

// SetOutput redirects the diagnostic channel to w. Passing os.Stderr
// restores the default destination.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// SetLevel sets the minimum level that reaches the destination.
// The default is slog.LevelInfo, so Summary output is visible.
func SetLevel(l slog.Level) {
	lvl.Set(l)
}

// Error reports a structural failure or a contract violation detected at
// runtime. args are slog key-value pairs.
func Error(msg string, args ...any) {
	mu.Lock()
	l := log
	mu.Unlock()
	l.Error(msg, args...)
}

// Warning reports a nonzero engine status or a recoverable anomaly.
func Warning(msg string, args ...any) {
	mu.Lock()
	l := log
	mu.Unlock()
	l.Warn(msg, args...)
}

// Summary reports one-time informational output, such as the parameter
// defaults a solver was constructed with.
func Summary(msg string, args ...any) {
	mu.Lock()
	l := log
	mu.Unlock()
	l.Info(msg, args...)
}
