package mcpclient

import (
	"github.com/wagiedev/mcp-client-go/internal/config"
	"github.com/wagiedev/mcp-client-go/internal/mcp"
)

// Re-export types from internal packages

// ===== Options and Configuration =====

// Options configures the client and the server sessions it spawns.
type Options = config.Options

// ServerConfig describes how to launch one stdio tool server.
type ServerConfig = mcp.ServerConfig

// Catalog is a parsed server catalog file keyed by server name.
type Catalog = mcp.Catalog

// ===== Tools =====

// ToolDescriptor describes one tool advertised by a server.
type ToolDescriptor = mcp.ToolDescriptor

// ===== Server Status =====

// ServerStatus is a point-in-time view of one registered server.
type ServerStatus = mcp.ServerStatus

// SessionState labels the lifecycle state of a server session. Status reports
// StateConnected or StateError only; a connecting server is not yet registered
// and a disconnected one is removed, so the remaining states never appear in
// a snapshot.
type SessionState = mcp.SessionState

const (
	// StateConnecting means the server process is being started.
	StateConnecting = mcp.StateConnecting
	// StateConnected means the server is registered and accepting exchanges.
	StateConnected = mcp.StateConnected
	// StateDisconnected means the server was stopped and removed.
	StateDisconnected = mcp.StateDisconnected
	// StateError means the session failed and needs a reconnect.
	StateError = mcp.StateError
)

// ===== Defaults =====

const (
	// DefaultRequestTimeout bounds one request/response exchange.
	DefaultRequestTimeout = config.DefaultRequestTimeout
	// DefaultTerminateGrace is the voluntary-exit window before a kill.
	DefaultTerminateGrace = config.DefaultTerminateGrace
	// DefaultMaxLineBytes caps one response line from a server.
	DefaultMaxLineBytes = config.DefaultMaxLineBytes
)
