// Package logging defines the structured-logging interface used by the
// session controller, the auth gateway and the local stores. The default
// implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "logout notification failed", "err", err)
type Logger interface {
	// Debug logs diagnostic details (token checks, request ids).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs a session lifecycle event.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a failure that was swallowed on purpose.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure the caller could not recover from.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
