package errors

import (
	"errors"
	"fmt"
)

// MCPClientError is the base interface for all client errors.
type MCPClientError interface {
	error
	IsMCPClientError() bool
}

// Compile-time verification that all error types implement MCPClientError.
var (
	_ MCPClientError = (*SpawnError)(nil)
	_ MCPClientError = (*TransportError)(nil)
	_ MCPClientError = (*NotConnectedError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotConnected indicates no live session exists for the server name.
	ErrNotConnected = errors.New("server not connected")

	// ErrSessionClosed indicates the session has been terminated and cannot be reused.
	ErrSessionClosed = errors.New("session closed")

	// ErrSessionPoisoned indicates a prior transport failure left the session
	// in an unknown state; reconnect to recover.
	ErrSessionPoisoned = errors.New("session poisoned by earlier transport failure")

	// ErrRequestTimeout indicates the server did not produce a response line in time.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrNoResponse indicates the server closed stdout before writing a response line.
	ErrNoResponse = errors.New("no response from server")

	// ErrInvalidResponse indicates the response line carried neither a result
	// nor an error field.
	ErrInvalidResponse = errors.New("invalid response from server")

	// ErrResponseTooLarge indicates a response line exceeded the configured
	// size cap.
	ErrResponseTooLarge = errors.New("response line exceeds size limit")
)

// SpawnError indicates the server process could not be started,
// typically because the executable was not found or the OS refused the launch.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start server process %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsMCPClientError implements MCPClientError.
func (e *SpawnError) IsMCPClientError() bool { return true }

// TransportError indicates a failure in the pipe or process layer rather than
// in the server's own protocol handling: broken pipe, EOF, a non-JSON or
// oversized response line, or a read timeout. A session that produced one is
// no longer trustworthy.
type TransportError struct {
	Server string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on server %q: %v", e.Server, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsMCPClientError implements MCPClientError.
func (e *TransportError) IsMCPClientError() bool { return true }

// NotConnectedError indicates an operation was attempted on a server name
// that has no live session.
type NotConnectedError struct {
	Server string
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("server %q not connected", e.Server)
}

func (e *NotConnectedError) Unwrap() error {
	return ErrNotConnected
}

// IsMCPClientError implements MCPClientError.
func (e *NotConnectedError) IsMCPClientError() bool { return true }
