// Package errors defines error types for the MCP client.
//
// This package provides structured error types for the failure modes of
// spawning and talking to tool-provider processes. All error types support
// error unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
