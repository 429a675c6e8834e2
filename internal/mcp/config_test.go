package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	t.Run("full catalog", func(t *testing.T) {
		data := []byte(`{
			"mcpServers": {
				"weather": {
					"command": "uvx",
					"args": ["weather-server"],
					"env": {"UNITS": "metric"}
				},
				"search": {"command": "search-server"}
			}
		}`)

		catalog, err := ParseCatalog(data)
		require.NoError(t, err)
		require.Len(t, catalog.MCPServers, 2)

		weather := catalog.MCPServers["weather"]
		require.Equal(t, "uvx", weather.Command)
		require.Equal(t, []string{"weather-server"}, weather.Args)
		require.Equal(t, map[string]string{"UNITS": "metric"}, weather.Env)

		search := catalog.MCPServers["search"]
		require.Equal(t, "search-server", search.Command)
		require.Empty(t, search.Args)
		require.Empty(t, search.Env)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseCatalog([]byte(`{"mcpServers": [`))
		require.Error(t, err)
	})
}
