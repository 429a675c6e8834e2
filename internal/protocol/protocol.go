package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/wagiedev/mcp-client-go/internal/errors"
)

// Version is the protocol version tag carried by every message.
const Version = "2.0"

// Methods the synchronous facade issues to tool-provider servers.
const (
	// MethodToolsList lists the capabilities a server advertises.
	MethodToolsList = "tools/list"

	// MethodToolsCall invokes a capability by name.
	MethodToolsCall = "tools/call"
)

// Request is a JSON-RPC request sent to a server.
//
// Wire format (one UTF-8 line terminated by \n):
//
//	{"jsonrpc": "2.0", "id": 3, "method": "tools/call", "params": {"name": "ping", "arguments": {}}}
type Request struct {
	// JSONRPC is always "2.0".
	JSONRPC string `json:"jsonrpc"`

	// ID correlates the response to this request. Ids are unique per session;
	// with one exchange in flight at a time they never need cross-request
	// correlation.
	ID int64 `json:"id"`

	// Method is the operation name, e.g. "tools/list".
	Method string `json:"method"`

	// Params carries the method parameters, omitted when nil.
	Params any `json:"params,omitempty"`
}

// NewRequest builds a request envelope with the protocol version filled in.
func NewRequest(id int64, method string, params any) *Request {
	return &Request{
		JSONRPC: Version,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Encode marshals the request as a single newline-terminated line.
func (r *Request) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	return append(data, '\n'), nil
}

// CallParams is the parameter object of a tools/call request.
type CallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Response is a JSON-RPC response read from a server.
//
// Wire format for success:
//
//	{"jsonrpc": "2.0", "id": 3, "result": {...}}
//
// Wire format for failure:
//
//	{"jsonrpc": "2.0", "id": 3, "error": {"code": -32601, "message": "Method not found"}}
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// Malformed reports whether the response carries neither a result nor an
// error field. A present-but-null result still counts as a result.
func (r *Response) Malformed() bool {
	return r.Result == nil && r.Error == nil
}

// RPCError is the error object of a JSON-RPC response. Code, message, and
// data arrive verbatim from the server so callers can branch on the
// machine-readable code or surface the payload for troubleshooting.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Compile-time verification that *RPCError satisfies the client error interface.
var _ errors.MCPClientError = (*RPCError)(nil)

func (e *RPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// IsMCPClientError implements errors.MCPClientError.
func (e *RPCError) IsMCPClientError() bool { return true }
