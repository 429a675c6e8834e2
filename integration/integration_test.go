//go:build integration

package integration

import (
	"runtime"
	"testing"
)

// skipIfNoShell skips tests that drive shell-scripted tool servers.
func skipIfNoShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}
}

// Canned tool servers. Each is a /bin/sh -c script speaking line-delimited
// JSON-RPC on stdio.
const (
	// echoServer answers a tools/list with one ping tool, then answers
	// tools/call requests with a text result until stdin closes.
	echoServer = `read line
printf '{"jsonrpc":"2.0","id":1,"result":{"tools":[{"name":"ping","description":"Reply with pong"}]}}\n'
while read line; do
printf '{"jsonrpc":"2.0","id":0,"result":{"content":[{"type":"text","text":"pong"}],"isError":false}}\n'
done`

	// listServer answers every request with the same tool catalog.
	listServer = `while read line; do
printf '{"jsonrpc":"2.0","id":0,"result":{"tools":[{"name":"ping","description":"Reply with pong"},{"name":"echo","description":"Echo the input"}]}}\n'
done`

	// rejectingServer answers every request with a JSON-RPC error object.
	rejectingServer = `while read line; do
printf '{"jsonrpc":"2.0","id":0,"error":{"code":-32601,"message":"method not found","data":{"method":"tools/call"}}}\n'
done`

	// failingToolServer reports a tool execution failure inside a result.
	failingToolServer = `while read line; do
printf '{"jsonrpc":"2.0","id":0,"result":{"content":[{"type":"text","text":"disk full"}],"isError":true}}\n'
done`

	// silentServer consumes requests and never answers.
	silentServer = `while read line; do sleep 30; done`
)
