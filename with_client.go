package mcpclient

import "context"

// WithClient manages client lifecycle with automatic cleanup.
//
// This helper creates a client with the provided options, executes the
// callback function, and ensures every connected server is stopped via
// DisconnectAll() when done.
//
// If the callback returns an error, it is returned to the caller.
// If DisconnectAll() fails, a warning is logged but does not override the
// callback's error.
//
// Example usage:
//
//	err := mcpclient.WithClient(ctx, func(c mcpclient.Client) error {
//	    if !c.Connect(ctx, "files", "file-server", nil, nil) {
//	        return errors.New("file server did not start")
//	    }
//
//	    result, err := c.CallTool(ctx, "files", "read_file", map[string]any{
//	        "path": "notes.txt",
//	    })
//	    if err != nil {
//	        return err
//	    }
//	    // process result...
//	    return nil
//	},
//	    mcpclient.WithLogger(log),
//	)
func WithClient(ctx context.Context, fn func(Client) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	client := NewClient(opts...)

	defer func() {
		if err := client.DisconnectAll(); err != nil {
			log.Warn("failed to disconnect servers", "error", err)
		}
	}()

	return fn(client)
}
