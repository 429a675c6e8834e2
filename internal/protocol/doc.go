// Package protocol defines the line-delimited JSON-RPC 2.0 envelopes exchanged
// with tool-provider servers.
//
// Every message is one line of UTF-8 JSON terminated by a newline, written to
// the server's stdin or read from its stdout. The package provides:
//   - Request construction and single-line encoding
//   - Response decoding with the result/error branch preserved
//   - RPCError, the server-supplied error object surfaced verbatim to callers
//
// The package is transport-agnostic; session handles the pipes.
package protocol
