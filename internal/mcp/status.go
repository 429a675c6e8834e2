package mcp

// SessionState labels where a named server slot is in its lifecycle.
type SessionState string

const (
	// StateConnecting means a spawn is in progress for the slot.
	StateConnecting SessionState = "connecting"

	// StateConnected means the slot holds a live session.
	StateConnected SessionState = "connected"

	// StateDisconnected means the slot's session was terminated or replaced.
	StateDisconnected SessionState = "disconnected"

	// StateError means the slot's child process exited or its transport failed.
	StateError SessionState = "error"
)

// ServerStatus is a point-in-time view of one tracked server.
type ServerStatus struct {
	// Name is the caller-chosen server name.
	Name string `json:"name"`

	// State is the slot's lifecycle state at snapshot time. A snapshot only
	// ever reports StateConnected or StateError: a slot being spawned is not
	// yet registered, and a disconnected slot is no longer tracked.
	State SessionState `json:"state"`

	// SessionID is the ULID of the live session, empty when none.
	SessionID string `json:"sessionId,omitempty"`
}
