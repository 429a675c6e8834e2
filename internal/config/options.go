// Package config provides configuration types for the MCP client.
package config

import (
	"log/slog"
	"time"
)

const (
	// DefaultRequestTimeout bounds one blocking read of a response line.
	// A hung or crashed server fails the exchange instead of hanging the caller.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultTerminateGrace is how long Terminate waits for the child to exit
	// voluntarily after stdin is closed, before force-killing it.
	DefaultTerminateGrace = 5 * time.Second

	// DefaultMaxLineBytes is the maximum size of a single response line read
	// from a server's stdout.
	DefaultMaxLineBytes = 1024 * 1024 // 1MB
)

// Options configures the client and the sessions it spawns.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// RequestTimeout bounds each request/response exchange with a server.
	// Zero means DefaultRequestTimeout.
	RequestTimeout time.Duration

	// TerminateGrace is the grace period between asking a server to stop and
	// force-killing it. Zero means DefaultTerminateGrace.
	TerminateGrace time.Duration

	// MaxLineBytes caps the size of a response line read from a server.
	// A longer line fails the exchange. Zero means DefaultMaxLineBytes.
	MaxLineBytes int
}

// WithDefaults returns a copy of o with zero-valued fields replaced by the
// package defaults. A nil receiver yields all defaults.
func (o *Options) WithDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}

	if out.RequestTimeout <= 0 {
		out.RequestTimeout = DefaultRequestTimeout
	}

	if out.TerminateGrace <= 0 {
		out.TerminateGrace = DefaultTerminateGrace
	}

	if out.MaxLineBytes <= 0 {
		out.MaxLineBytes = DefaultMaxLineBytes
	}

	return &out
}
