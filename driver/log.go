// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	nopLogger = slog.New(nopHandler{})
	loggerPtr atomic.Pointer[slog.Logger]
)

// SetLogger sets the logger used by driver, its backends
// and package engine.
// Passing nil restores the default, which discards
// everything.
// It is safe for concurrent use.
//
// Registration changes are logged at slog.LevelWarn,
// resource allocation and release at slog.LevelDebug.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
