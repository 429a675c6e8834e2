// Package mcp carries the Model Context Protocol domain types shared by the
// facade and the session layer: server launch configurations, tool
// descriptors, result content helpers, and status snapshots.
//
// Tool input schemas and call results are treated as opaque payloads owned by
// the server; the typed accessors here (Schema, ExtractText) are conveniences
// for callers and never gate what the client passes through.
package mcp
