// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventlog

import "log/slog"

// Logger receives fire-and-forget diagnostic events. Implementations
// must never let a logging failure leak back into the operation that
// emitted the event.
type Logger interface {
	Log(kind, message string)
}

type slogLogger struct {
	l *slog.Logger
}

// NewSlog returns a Logger backed by the given slog logger, or the
// default logger when nil.
func NewSlog(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

func (s *slogLogger) Log(kind, message string) {
	s.l.Info("event", "kind", kind, "message", message)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Log(string, string) {}
