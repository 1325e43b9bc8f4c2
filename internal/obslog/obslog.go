// Copyright (c) 2026 The concur Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package obslog provides the structured logging used by
// cmd/container: a thin component-tagged wrapper over log/slog,
// timing each unit of work and choosing the log level from whether it
// failed. Constructed once in main and passed down explicitly, rather
// than reached for as a package-level global.
package obslog

import (
	"log/slog"
	"time"
)

// Logger wraps a *slog.Logger with a fixed component tag, so call
// sites only have to name the operation.
type Logger struct {
	l         *slog.Logger
	component string
}

// New wraps logger under the given component name.
func New(logger *slog.Logger, component string) *Logger {
	return &Logger{l: logger, component: component}
}

// Timed runs fn, logging its start at debug level and its completion
// at debug (success) or error (failure) level, with the elapsed
// duration attached either way.
func (l *Logger) Timed(operation string, fn func() error) error {
	l.l.Debug("starting", "operation", operation, "component", l.component)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if err != nil {
		l.l.Error("failed", "operation", operation, "component", l.component, "elapsed", elapsed, "error", err)
		return err
	}
	l.l.Debug("completed", "operation", operation, "component", l.component, "elapsed", elapsed)
	return nil
}

// Info logs a component-tagged informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.l.Info(msg, append(args, "component", l.component)...)
}

// Error logs a component-tagged error.
func (l *Logger) Error(msg string, err error, args ...any) {
	l.l.Error(msg, append(args, "component", l.component, "error", err)...)
}
