package mcpclient_test

import (
	"context"
	stderrors "errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	mcpclient "github.com/wagiedev/mcp-client-go"
)

func TestCallToolOnce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := mcpclient.ServerConfig{
		Command: "/bin/sh",
		Args:    []string{"-c", `read line; printf '{"jsonrpc":"2.0","id":1,"result":{"content":[{"type":"text","text":"pong"}]}}\n'`},
	}

	result, err := mcpclient.CallToolOnce(ctx, cfg, "ping", nil)

	require.NoError(t, err)

	text, ok := mcpclient.ExtractText(result)
	require.True(t, ok)
	require.Equal(t, "pong", text)
}

func TestCallToolOnce_SpawnFailure(t *testing.T) {
	ctx := context.Background()

	cfg := mcpclient.ServerConfig{Command: "/definitely/not/a/real/binary"}

	_, err := mcpclient.CallToolOnce(ctx, cfg, "ping", nil)

	spawnErr, ok := stderrors.AsType[*mcpclient.SpawnError](err)
	require.True(t, ok)
	require.Contains(t, spawnErr.Error(), "failed to start server process")
}

func TestListToolsOnce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := mcpclient.ServerConfig{
		Command: "/bin/sh",
		Args:    []string{"-c", `read line; printf '{"jsonrpc":"2.0","id":1,"result":{"tools":[{"name":"ping","description":"Reply with pong"}]}}\n'`},
	}

	tools, err := mcpclient.ListToolsOnce(ctx, cfg)

	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.Equal(t, "ping", tools[0].Name)
}

func TestListToolsOnce_BadShape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := mcpclient.ServerConfig{
		Command: "/bin/sh",
		Args:    []string{"-c", `read line; printf '{"jsonrpc":"2.0","id":1,"result":{"unexpected":true}}\n'`},
	}

	_, err := mcpclient.ListToolsOnce(ctx, cfg)

	require.ErrorIs(t, err, mcpclient.ErrInvalidResponse)
}
