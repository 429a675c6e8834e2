package mcp

import (
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExtractText decodes a tools/call result payload into MCP content blocks and
// concatenates the text parts, one per line. It reports ok=false when the
// payload does not decode as a call result or carries no text content.
//
// Image, audio, and resource blocks are skipped; callers that need them
// should decode the raw result themselves.
func ExtractText(result json.RawMessage) (string, bool) {
	if len(result) == 0 {
		return "", false
	}

	var decoded mcp.CallToolResult
	if err := json.Unmarshal(result, &decoded); err != nil {
		return "", false
	}

	var sb strings.Builder

	for _, block := range decoded.Content {
		text, isText := block.(*mcp.TextContent)
		if !isText {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(text.Text)
	}

	if sb.Len() == 0 {
		return "", false
	}

	return sb.String(), true
}

// IsErrorResult reports whether a tools/call result payload is flagged as an
// application-level error (isError true in the result object). Servers use
// this for tool failures that are not protocol errors.
func IsErrorResult(result json.RawMessage) bool {
	if len(result) == 0 {
		return false
	}

	var decoded mcp.CallToolResult
	if err := json.Unmarshal(result, &decoded); err != nil {
		return false
	}

	return decoded.IsError
}
