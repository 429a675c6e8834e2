package mcpclient

import (
	"context"
	"encoding/json"

	"github.com/wagiedev/mcp-client-go/internal/registry"
)

// clientWrapper wraps the internal registry to adapt it to the public
// interface.
type clientWrapper struct {
	impl *registry.Manager
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl(opts []Option) Client {
	return &clientWrapper{impl: registry.NewManager(applyOptions(opts))}
}

// Connect starts a server process and registers it under name.
func (c *clientWrapper) Connect(ctx context.Context, name, command string, args []string, env map[string]string) bool {
	return c.impl.Connect(ctx, name, ServerConfig{Command: command, Args: args, Env: env})
}

// ConnectConfig is Connect taking a ServerConfig.
func (c *clientWrapper) ConnectConfig(ctx context.Context, name string, cfg ServerConfig) bool {
	return c.impl.Connect(ctx, name, cfg)
}

// ConnectAll connects every server in the catalog.
func (c *clientWrapper) ConnectAll(ctx context.Context, servers map[string]ServerConfig) map[string]bool {
	return c.impl.ConnectAll(ctx, servers)
}

// ListTools returns the tools advertised by the named server.
func (c *clientWrapper) ListTools(ctx context.Context, name string) []ToolDescriptor {
	return c.impl.ListTools(ctx, name)
}

// CallTool invokes a tool on the named server.
func (c *clientWrapper) CallTool(ctx context.Context, name, tool string, args map[string]any) (json.RawMessage, error) {
	return c.impl.CallTool(ctx, name, tool, args)
}

// Connected reports whether the named server has a live session.
func (c *clientWrapper) Connected(name string) bool {
	return c.impl.Connected(name)
}

// Status returns a snapshot of every registered server.
func (c *clientWrapper) Status() []ServerStatus {
	return c.impl.Status()
}

// Disconnect stops the named server and removes it.
func (c *clientWrapper) Disconnect(name string) error {
	return c.impl.Disconnect(name)
}

// DisconnectAll stops every registered server.
func (c *clientWrapper) DisconnectAll() error {
	return c.impl.DisconnectAll()
}
