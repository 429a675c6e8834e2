package mcpclient

import (
	"context"
	"encoding/json"

	"github.com/wagiedev/mcp-client-go/internal/mcp"
	"github.com/wagiedev/mcp-client-go/internal/protocol"
	"github.com/wagiedev/mcp-client-go/internal/session"
)

// CallToolOnce spawns the configured server, invokes one tool, and stops the
// server again.
//
// It is the one-shot form of Connect plus CallTool for callers that do not
// need a long-lived session, such as CLI tools making a single invocation.
// Unlike Connect, a failed spawn surfaces as the typed error instead of a
// boolean:
//
//	result, err := mcpclient.CallToolOnce(ctx,
//	    mcpclient.ServerConfig{Command: "file-server", Args: []string{"--root", "/data"}},
//	    "read_file", map[string]any{"path": "notes.txt"},
//	)
func CallToolOnce(ctx context.Context, cfg ServerConfig, tool string, args map[string]any, opts ...Option) (json.RawMessage, error) {
	s, err := session.Spawn(cfg.Command, cfg, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	defer func() { _ = s.Terminate() }()

	if args == nil {
		args = map[string]any{}
	}

	return s.Exchange(ctx, protocol.MethodToolsCall, protocol.CallParams{Name: tool, Arguments: args})
}

// ListToolsOnce spawns the configured server, fetches its tool catalog, and
// stops the server again.
//
// Unlike ListTools on a client, failures are returned rather than collapsed
// to an empty list, since there is no session left to inspect afterward.
func ListToolsOnce(ctx context.Context, cfg ServerConfig, opts ...Option) ([]ToolDescriptor, error) {
	s, err := session.Spawn(cfg.Command, cfg, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	defer func() { _ = s.Terminate() }()

	result, err := s.Exchange(ctx, protocol.MethodToolsList, nil)
	if err != nil {
		return nil, err
	}

	tools := mcp.DecodeToolList(result)
	if tools == nil {
		return nil, &TransportError{Server: cfg.Command, Err: ErrInvalidResponse}
	}

	return tools, nil
}
