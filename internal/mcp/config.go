package mcp

import (
	"encoding/json"
	"fmt"
)

// ServerConfig describes how to launch one stdio tool-provider server.
// All launch parameters are explicit; the client never reads ambient
// process state to decide how a server starts.
type ServerConfig struct {
	// Command is the executable to spawn.
	Command string `json:"command"`

	// Args are the command line arguments, in order.
	Args []string `json:"args,omitempty"`

	// Env holds environment variable overrides. They are merged onto a copy
	// of the inherited environment when the server is spawned; an override
	// wins on key collision.
	Env map[string]string `json:"env,omitempty"`
}

// Catalog is a set of server configurations keyed by logical server name,
// in the conventional mcpServers JSON shape:
//
//	{
//	  "mcpServers": {
//	    "weather": {"command": "uvx", "args": ["weather-server"], "env": {"UNITS": "metric"}}
//	  }
//	}
type Catalog struct {
	MCPServers map[string]ServerConfig `json:"mcpServers"`
}

// ParseCatalog decodes a catalog from its JSON form.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog

	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse server catalog: %w", err)
	}

	return &c, nil
}
