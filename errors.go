package mcpclient

import (
	"github.com/wagiedev/mcp-client-go/internal/errors"
	"github.com/wagiedev/mcp-client-go/internal/protocol"
)

// Re-export error types from internal packages

// SpawnError indicates a server process could not be started.
type SpawnError = errors.SpawnError

// TransportError indicates a stdio exchange with a server failed.
type TransportError = errors.TransportError

// NotConnectedError indicates an operation addressed a server that has no
// registered session.
type NotConnectedError = errors.NotConnectedError

// RPCError is a JSON-RPC error object returned by a server, with its code,
// message, and data preserved.
type RPCError = protocol.RPCError

// MCPClientError is the base interface for all client errors.
type MCPClientError = errors.MCPClientError

// Re-export sentinel errors from internal package.
var (
	// ErrNotConnected indicates the named server is not connected.
	ErrNotConnected = errors.ErrNotConnected

	// ErrSessionClosed indicates the session was disconnected.
	ErrSessionClosed = errors.ErrSessionClosed

	// ErrSessionPoisoned indicates a previous transport failure left the
	// session unusable; reconnect to recover.
	ErrSessionPoisoned = errors.ErrSessionPoisoned

	// ErrRequestTimeout indicates the server did not answer in time.
	ErrRequestTimeout = errors.ErrRequestTimeout

	// ErrNoResponse indicates the server produced no response line.
	ErrNoResponse = errors.ErrNoResponse

	// ErrInvalidResponse indicates the response carried neither a result nor
	// an error.
	ErrInvalidResponse = errors.ErrInvalidResponse

	// ErrResponseTooLarge indicates a response line exceeded MaxLineBytes.
	ErrResponseTooLarge = errors.ErrResponseTooLarge
)
