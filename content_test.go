package mcpclient_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	mcpclient "github.com/wagiedev/mcp-client-go"
)

func TestExtractText(t *testing.T) {
	t.Run("joins text blocks", func(t *testing.T) {
		result := json.RawMessage(`{"content":[
			{"type":"text","text":"line one"},
			{"type":"text","text":"line two"}
		]}`)

		text, ok := mcpclient.ExtractText(result)

		require.True(t, ok)
		require.Equal(t, "line one\nline two", text)
	})

	t.Run("no text content", func(t *testing.T) {
		_, ok := mcpclient.ExtractText(json.RawMessage(`{"content":[]}`))

		require.False(t, ok)
	})

	t.Run("not a tool result", func(t *testing.T) {
		_, ok := mcpclient.ExtractText(json.RawMessage(`"just a string"`))

		require.False(t, ok)
	})
}

func TestIsErrorResult(t *testing.T) {
	require.True(t, mcpclient.IsErrorResult(
		json.RawMessage(`{"content":[{"type":"text","text":"tool blew up"}],"isError":true}`)))

	require.False(t, mcpclient.IsErrorResult(
		json.RawMessage(`{"content":[{"type":"text","text":"ok"}]}`)))
}

func TestFilterArguments(t *testing.T) {
	args := map[string]any{
		"query":   "status",
		"days":    0,
		"dry_run": false,
		"cursor":  nil,
		"filter":  "",
		"tags":    []any{},
	}

	filtered := mcpclient.FilterArguments(args)

	// Zero and false are real inputs; only empty values go.
	require.Equal(t, map[string]any{
		"query":   "status",
		"days":    0,
		"dry_run": false,
	}, filtered)
}

func TestParseCatalog(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		catalog, err := mcpclient.ParseCatalog([]byte(`{
			"mcpServers": {
				"files": {"command": "file-server", "args": ["--root", "/data"]},
				"time":  {"command": "time-server", "env": {"TZ": "UTC"}}
			}
		}`))

		require.NoError(t, err)
		require.Len(t, catalog.MCPServers, 2)
		require.Equal(t, "file-server", catalog.MCPServers["files"].Command)
		require.Equal(t, []string{"--root", "/data"}, catalog.MCPServers["files"].Args)
		require.Equal(t, map[string]string{"TZ": "UTC"}, catalog.MCPServers["time"].Env)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := mcpclient.ParseCatalog([]byte(`{"mcpServers": `))

		require.Error(t, err)
	})
}
