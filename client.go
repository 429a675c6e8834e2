package mcpclient

import (
	"context"
	"encoding/json"
)

// Client manages a set of named stdio tool servers and provides synchronous
// tool discovery and invocation against them.
//
// Each connected server runs as a child process speaking line-delimited
// JSON-RPC over its stdin and stdout. The client keeps one session per server
// name; connecting under a taken name replaces the previous session. All
// methods are safe for concurrent use, and requests to one server never block
// requests to another.
//
// Failures surface as return values, never panics: a failed connect reports
// false, a failed listing yields an empty catalog, and a failed call returns
// a typed error.
//
// Example usage:
//
//	client := mcpclient.NewClient(
//	    mcpclient.WithLogger(slog.Default()),
//	)
//	defer client.DisconnectAll()
//
//	if !client.Connect(ctx, "files", "file-server", []string{"--root", "/data"}, nil) {
//	    log.Fatal("file server did not start")
//	}
//
//	for _, tool := range client.ListTools(ctx, "files") {
//	    fmt.Println(tool.Name, tool.Description)
//	}
//
//	result, err := client.CallTool(ctx, "files", "read_file", map[string]any{
//	    "path": "notes.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if text, ok := mcpclient.ExtractText(result); ok {
//	    fmt.Println(text)
//	}
type Client interface {
	// Connect starts command with the given args and environment overrides
	// and registers it under name. It reports whether the server is
	// connected afterward. An existing session under the same name is
	// stopped and replaced.
	Connect(ctx context.Context, name, command string, args []string, env map[string]string) bool

	// ConnectConfig is Connect taking a ServerConfig, for callers holding
	// parsed catalog entries.
	ConnectConfig(ctx context.Context, name string, cfg ServerConfig) bool

	// ConnectAll connects every server in the catalog and reports
	// per-server success. One failing server does not stop the rest.
	ConnectAll(ctx context.Context, servers map[string]ServerConfig) map[string]bool

	// ListTools returns the tools advertised by the named server. Any
	// failure, including an unknown name, yields an empty list.
	ListTools(ctx context.Context, name string) []ToolDescriptor

	// CallTool invokes a tool on the named server and returns the raw
	// result. A server-reported failure comes back as *RPCError with its
	// code, message, and data preserved; transport failures come back as
	// *TransportError; an unknown name returns *NotConnectedError.
	CallTool(ctx context.Context, name, tool string, args map[string]any) (json.RawMessage, error)

	// Connected reports whether the named server has a live session.
	Connected(name string) bool

	// Status returns a snapshot of every registered server, sorted by name.
	Status() []ServerStatus

	// Disconnect stops the named server and removes it. Disconnecting an
	// unknown name is a no-op.
	Disconnect(name string) error

	// DisconnectAll stops every registered server. Individual failures are
	// logged and do not stop the sweep; the first failure is returned.
	DisconnectAll() error
}

// NewClient creates a client with no connected servers.
//
// Configure it with options:
//
//	client := mcpclient.NewClient(
//	    mcpclient.WithLogger(slog.Default()),
//	    mcpclient.WithRequestTimeout(10*time.Second),
//	)
func NewClient(opts ...Option) Client {
	return newClientImpl(opts)
}
