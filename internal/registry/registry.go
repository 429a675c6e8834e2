package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/mcp-client-go/internal/config"
	"github.com/wagiedev/mcp-client-go/internal/errors"
	"github.com/wagiedev/mcp-client-go/internal/mcp"
	"github.com/wagiedev/mcp-client-go/internal/protocol"
	"github.com/wagiedev/mcp-client-go/internal/session"
)

// maxParallelStops bounds how many server processes DisconnectAll reaps at
// once. Each stop can take up to the terminate grace period.
const maxParallelStops = 4

// conn is the slice of a session the registry needs. Tests substitute fakes.
type conn interface {
	Exchange(ctx context.Context, method string, params any) (json.RawMessage, error)
	Terminate() error
	Alive() bool
	ID() string
}

var _ conn = (*session.Session)(nil)

// Manager tracks live server sessions by name and routes tool operations to
// them. All methods are safe for concurrent use.
//
// The registry lock covers only map access. Exchanges run outside it, so a
// slow tool call on one server never blocks operations on another. Connect is
// the exception: it holds the lock across the replace-and-spawn sequence so
// concurrent connects against the same name serialize cleanly.
type Manager struct {
	log  *slog.Logger
	opts *config.Options

	// spawn launches a server process. Swapped out in tests.
	spawn func(server string, cfg mcp.ServerConfig, opts *config.Options) (conn, error)

	mu       sync.RWMutex
	sessions map[string]conn
}

// NewManager creates an empty registry using the given options for every
// session it spawns.
func NewManager(opts *config.Options) *Manager {
	opts = opts.WithDefaults()

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Manager{
		log:      log.With("component", "registry"),
		opts:     opts,
		spawn:    spawnSession,
		sessions: make(map[string]conn),
	}
}

func spawnSession(server string, cfg mcp.ServerConfig, opts *config.Options) (conn, error) {
	s, err := session.Spawn(server, cfg, opts)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Connect starts the configured server process and registers it under name.
// It reports whether the server is connected afterward.
//
// An existing session under the same name is stopped and replaced. If the
// replacement fails to start, the old session is already gone and the name is
// unregistered; failure never leaves a half-dead session in the registry.
func (m *Manager) Connect(ctx context.Context, name string, cfg mcp.ServerConfig) bool {
	if err := ctx.Err(); err != nil {
		m.log.Warn("Connect aborted", "server", name, "error", err)

		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[name]; ok {
		delete(m.sessions, name)

		m.log.Info("Replacing existing session", "server", name, "session_id", old.ID())

		if err := old.Terminate(); err != nil {
			m.log.Warn("Failed to stop replaced session", "server", name, "error", err)
		}
	}

	s, err := m.spawn(name, cfg, m.opts)
	if err != nil {
		m.log.Warn("Failed to connect server", "server", name, "command", cfg.Command, "error", err)

		return false
	}

	m.sessions[name] = s

	m.log.Info("Server connected", "server", name, "command", cfg.Command, "session_id", s.ID())

	return true
}

// ConnectAll connects every server in the catalog, in name order, and
// reports per-server success. One failing server does not stop the rest.
func (m *Manager) ConnectAll(ctx context.Context, servers map[string]mcp.ServerConfig) map[string]bool {
	results := make(map[string]bool, len(servers))

	for _, name := range slices.Sorted(maps.Keys(servers)) {
		results[name] = m.Connect(ctx, name, servers[name])
	}

	return results
}

// ListTools asks the named server for its tool catalog.
//
// Every failure mode collapses to an empty list: unknown server, transport
// failure, server-side error, or a response that does not carry a tool list.
// The cause is logged, never returned.
func (m *Manager) ListTools(ctx context.Context, name string) []mcp.ToolDescriptor {
	c, ok := m.lookup(name)
	if !ok {
		m.log.Debug("List tools on unknown server", "server", name)

		return nil
	}

	result, err := c.Exchange(ctx, protocol.MethodToolsList, nil)
	if err != nil {
		m.log.Warn("Failed to list tools", "server", name, "error", err)

		return nil
	}

	tools := mcp.DecodeToolList(result)
	if tools == nil {
		m.log.Warn("Tool list response has unexpected shape", "server", name, "result_len", len(result))
	}

	return tools
}

// CallTool invokes a tool on the named server and returns the raw result.
//
// A server that answers with a JSON-RPC error object yields that error
// verbatim as a *protocol.RPCError, code and data intact. Transport failures
// come back as *errors.TransportError. Calling through an unregistered name
// returns a *errors.NotConnectedError without spawning anything.
func (m *Manager) CallTool(ctx context.Context, name, tool string, args map[string]any) (json.RawMessage, error) {
	c, ok := m.lookup(name)
	if !ok {
		return nil, &errors.NotConnectedError{Server: name}
	}

	if args == nil {
		args = map[string]any{}
	}

	result, err := c.Exchange(ctx, protocol.MethodToolsCall, protocol.CallParams{Name: tool, Arguments: args})
	if err != nil {
		m.log.Debug("Tool call failed", "server", name, "tool", tool, "error", err)

		return nil, err
	}

	return result, nil
}

// Connected reports whether name has a registered session that can still
// attempt exchanges.
func (m *Manager) Connected(name string) bool {
	c, ok := m.lookup(name)

	return ok && c.Alive()
}

// Status returns a snapshot of every registered session, sorted by server
// name.
func (m *Manager) Status() []mcp.ServerStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]mcp.ServerStatus, 0, len(m.sessions))

	for _, name := range slices.Sorted(maps.Keys(m.sessions)) {
		c := m.sessions[name]

		state := mcp.StateConnected
		if !c.Alive() {
			state = mcp.StateError
		}

		out = append(out, mcp.ServerStatus{Name: name, State: state, SessionID: c.ID()})
	}

	return out
}

// Disconnect stops the named server and removes it from the registry.
// Disconnecting a name that is not registered is a no-op.
func (m *Manager) Disconnect(name string) error {
	m.mu.Lock()
	c, ok := m.sessions[name]
	delete(m.sessions, name)
	m.mu.Unlock()

	if !ok {
		m.log.Debug("Disconnect of unknown server", "server", name)

		return nil
	}

	m.log.Info("Disconnecting server", "server", name, "session_id", c.ID())

	if err := c.Terminate(); err != nil {
		m.log.Warn("Failed to stop server", "server", name, "error", err)

		return fmt.Errorf("disconnect %q: %w", name, err)
	}

	return nil
}

// DisconnectAll stops every registered server. A failing stop is logged and
// does not prevent the others from being stopped; the first failure is
// returned after the sweep completes.
func (m *Manager) DisconnectAll() error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]conn)
	m.mu.Unlock()

	if len(sessions) == 0 {
		return nil
	}

	m.log.Info("Disconnecting all servers", "count", len(sessions))

	var g errgroup.Group

	g.SetLimit(maxParallelStops)

	for name, c := range sessions {
		g.Go(func() error {
			if err := c.Terminate(); err != nil {
				m.log.Warn("Failed to stop server", "server", name, "error", err)

				return fmt.Errorf("disconnect %q: %w", name, err)
			}

			return nil
		})
	}

	return g.Wait()
}

func (m *Manager) lookup(name string) (conn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.sessions[name]

	return c, ok
}
