package mcpclient

import (
	"encoding/json"

	"github.com/wagiedev/mcp-client-go/internal/mcp"
)

// ExtractText collects the text content blocks from a tools/call result and
// joins them with newlines. It reports false when the result carries no text,
// including results that do not decode as tool content at all.
//
// Use it for the common case of text-producing tools; callers that need
// images or structured payloads should decode the raw result themselves.
func ExtractText(result json.RawMessage) (string, bool) {
	return mcp.ExtractText(result)
}

// IsErrorResult reports whether a tools/call result is flagged as a tool
// execution failure. This is distinct from a protocol-level RPCError: the
// call succeeded, but the tool itself reported an error.
func IsErrorResult(result json.RawMessage) bool {
	return mcp.IsErrorResult(result)
}

// FilterArguments returns a copy of args with empty values removed: nils,
// empty strings, empty maps, and empty slices. Zero numbers and false are
// kept, since they are meaningful tool inputs.
//
// Servers with strict input schemas often reject explicit nulls for optional
// parameters; filtering before CallTool avoids that.
func FilterArguments(args map[string]any) map[string]any {
	return mcp.FilterArguments(args)
}

// ParseCatalog parses a server catalog from JSON in the conventional
// mcpServers layout:
//
//	{
//	  "mcpServers": {
//	    "files": {"command": "file-server", "args": ["--root", "/data"]}
//	  }
//	}
//
// The result feeds ConnectAll.
func ParseCatalog(data []byte) (*Catalog, error) {
	return mcp.ParseCatalog(data)
}
