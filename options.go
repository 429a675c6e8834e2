package mcpclient

import (
	"log/slog"
	"time"
)

// Option configures Options using the functional options pattern.
// Options are fixed at NewClient time and apply to every server the client
// connects.
type Option func(*Options)

// applyOptions applies functional options to a fresh Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// ===== Timeouts =====

// WithRequestTimeout bounds each request/response exchange with a server.
// A server that does not answer within the timeout fails the call and must
// be reconnected. Defaults to DefaultRequestTimeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.RequestTimeout = timeout
	}
}

// WithTerminateGrace sets how long Disconnect waits for a server to exit
// voluntarily before force-killing it. Defaults to DefaultTerminateGrace.
func WithTerminateGrace(grace time.Duration) Option {
	return func(o *Options) {
		o.TerminateGrace = grace
	}
}

// ===== Transport Limits =====

// WithMaxLineBytes caps the size of a single response line read from a
// server's stdout. A longer line fails the exchange with ErrResponseTooLarge
// and poisons the session. Defaults to DefaultMaxLineBytes.
func WithMaxLineBytes(n int) Option {
	return func(o *Options) {
		o.MaxLineBytes = n
	}
}
