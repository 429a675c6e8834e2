package mcpclient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestServerConfig_JSONShape tests that server configs use the conventional
// field names on the wire.
func TestServerConfig_JSONShape(t *testing.T) {
	cfg := ServerConfig{
		Command: "uvx",
		Args:    []string{"weather-server"},
		Env:     map[string]string{"UNITS": "metric"},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"command": "uvx",
		"args": ["weather-server"],
		"env": {"UNITS": "metric"}
	}`, string(data))

	var decoded ServerConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, cfg, decoded)
}

// TestServerConfig_OmitsEmptyFields tests that a bare command serializes
// without noise.
func TestServerConfig_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(ServerConfig{Command: "file-server"})

	require.NoError(t, err)
	require.JSONEq(t, `{"command": "file-server"}`, string(data))
}

// TestToolDescriptor_SchemaAccess tests the typed schema view on a
// descriptor built from raw JSON.
func TestToolDescriptor_SchemaAccess(t *testing.T) {
	tool := ToolDescriptor{
		Name:        "get_weather",
		Description: "Current weather for a city",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {"city": {"type": "string"}},
			"required": ["city"]
		}`),
	}

	schema, err := tool.Schema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	require.Equal(t, "object", schema.Type)
	require.Equal(t, []string{"city"}, schema.Required)
}

// TestSessionStates tests the state constant values used in status
// snapshots.
func TestSessionStates(t *testing.T) {
	require.Equal(t, SessionState("connecting"), StateConnecting)
	require.Equal(t, SessionState("connected"), StateConnected)
	require.Equal(t, SessionState("disconnected"), StateDisconnected)
	require.Equal(t, SessionState("error"), StateError)
}

// TestServerStatus_JSONShape tests the status snapshot serialization.
func TestServerStatus_JSONShape(t *testing.T) {
	status := ServerStatus{
		Name:      "files",
		State:     StateConnected,
		SessionID: "01JF8Z0000000000000000YMCA",
	}

	data, err := json.Marshal(status)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"name": "files",
		"state": "connected",
		"sessionId": "01JF8Z0000000000000000YMCA"
	}`, string(data))
}

// TestDefaults tests the exported default values.
func TestDefaults(t *testing.T) {
	require.Equal(t, 30*time.Second, DefaultRequestTimeout)
	require.Equal(t, 5*time.Second, DefaultTerminateGrace)
	require.Equal(t, 1024*1024, DefaultMaxLineBytes)
}
