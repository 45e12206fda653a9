// Package logger defines the logging contract of the block explorer and its slog implementation.
package logger

import (
	"io"
	"log/slog"
)

// AppLogger is the structured logger passed to every component. Arguments
// after msg are alternating key-value pairs, as in log/slog.
type AppLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a logger that adds args to every entry, e.g. a
	// component name or the block number being fetched.
	With(args ...any) AppLogger
}

// NewNopLogger returns an AppLogger that discards everything.
func NewNopLogger() AppLogger {
	return NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
