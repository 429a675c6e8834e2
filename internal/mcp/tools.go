package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolDescriptor describes one capability advertised by a server through
// tools/list. The input schema is carried raw and passed through to callers
// without interpretation or validation; Schema offers a typed view on demand.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

// Schema parses the raw input schema into a typed JSON Schema.
// Returns (nil, nil) when the descriptor carries no schema.
func (t *ToolDescriptor) Schema() (*jsonschema.Schema, error) {
	if len(t.InputSchema) == 0 {
		return nil, nil
	}

	var s jsonschema.Schema
	if err := json.Unmarshal(t.InputSchema, &s); err != nil {
		return nil, fmt.Errorf("parse input schema for tool %q: %w", t.Name, err)
	}

	return &s, nil
}

// toolsListResult is the result payload of a tools/list response.
type toolsListResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// DecodeToolList extracts the tools array from a tools/list result payload.
// A malformed payload or a missing tools field yields nil rather than a
// partial parse or an error; callers treat nil as "no tools".
func DecodeToolList(result json.RawMessage) []ToolDescriptor {
	if len(result) == 0 {
		return nil
	}

	var payload toolsListResult
	if err := json.Unmarshal(result, &payload); err != nil {
		return nil
	}

	return payload.Tools
}

// FilterArguments returns a copy of args without the entries whose values are
// empty: nil, "", empty maps, and empty slices. Tool providers routinely
// reject explicit nulls for parameters the caller meant to omit, so callers
// filter before invoking. Zero numbers and false booleans are kept.
func FilterArguments(args map[string]any) map[string]any {
	filtered := make(map[string]any, len(args))

	for k, v := range args {
		if emptyValue(v) {
			continue
		}

		filtered[k] = v
	}

	return filtered
}

func emptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	default:
		return false
	}
}
