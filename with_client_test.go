package mcpclient_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	mcpclient "github.com/wagiedev/mcp-client-go"
)

func TestWithClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := mcpclient.WithClient(ctx, func(_ mcpclient.Client) error {
		t.Error("callback should not be called with cancelled context")

		return nil
	})
	if err == nil {
		t.Error("expected error for cancelled context")
	}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWithClient_CallbackError(t *testing.T) {
	boom := errors.New("boom")

	err := mcpclient.WithClient(context.Background(), func(_ mcpclient.Client) error {
		return boom
	})

	if !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestWithClient_DisconnectsOnReturn(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Test requires a POSIX shell")
	}

	ctx := context.Background()

	var captured mcpclient.Client

	err := mcpclient.WithClient(ctx, func(c mcpclient.Client) error {
		captured = c

		if !c.Connect(ctx, "cat-srv", "cat", nil, nil) {
			return errors.New("cat server did not start")
		}

		return nil
	})
	if err != nil {
		t.Fatalf("WithClient: %v", err)
	}

	if captured.Connected("cat-srv") {
		t.Error("server should be disconnected after WithClient returns")
	}
}
