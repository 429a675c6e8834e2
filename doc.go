// Package mcpclient manages stdio tool servers for Go applications.
//
// A tool server is a child process that advertises callable tools and speaks
// line-delimited JSON-RPC 2.0 over its stdin and stdout. The client spawns
// servers on demand, keeps one session per server name, and exposes a small
// synchronous API for discovering and invoking their tools.
//
// # Basic Usage
//
// Connect a server, list its tools, and call one:
//
//	ctx := context.Background()
//
//	client := mcpclient.NewClient()
//	defer client.DisconnectAll()
//
//	if !client.Connect(ctx, "files", "file-server", []string{"--root", "/data"}, nil) {
//	    log.Fatal("file server did not start")
//	}
//
//	for _, tool := range client.ListTools(ctx, "files") {
//	    fmt.Printf("%s: %s\n", tool.Name, tool.Description)
//	}
//
//	result, err := client.CallTool(ctx, "files", "read_file", map[string]any{
//	    "path": "notes.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if text, ok := mcpclient.ExtractText(result); ok {
//	    fmt.Println(text)
//	}
//
// # Multiple Servers
//
// A catalog connects several servers at once. Catalogs use the conventional
// mcpServers JSON layout and can be parsed with ParseCatalog:
//
//	catalog, err := mcpclient.ParseCatalog(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for name, ok := range client.ConnectAll(ctx, catalog.MCPServers) {
//	    if !ok {
//	        log.Printf("server %s did not start", name)
//	    }
//	}
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	client := mcpclient.NewClient(
//	    mcpclient.WithLogger(logger),
//	)
//
// # Error Handling
//
// Operational failures are return values, not errors: Connect reports false
// and ListTools yields an empty list. CallTool returns typed errors for the
// distinct failure modes:
//
//	result, err := client.CallTool(ctx, "files", "read_file", args)
//	if err != nil {
//	    if rpcErr, ok := errors.AsType[*mcpclient.RPCError](err); ok {
//	        // The server answered with a JSON-RPC error object.
//	        log.Fatalf("server rejected the call: %d %s", rpcErr.Code, rpcErr.Message)
//	    }
//	    if _, ok := errors.AsType[*mcpclient.NotConnectedError](err); ok {
//	        log.Fatal("connect the server before calling its tools")
//	    }
//	    // Transport failure: the session is poisoned, reconnect to recover.
//	    log.Fatal(err)
//	}
//
// # Server Lifecycle
//
// Sessions are single-use. After a transport failure or timeout the session
// refuses further exchanges and the server must be reconnected, which
// replaces the dead session with a fresh process. Disconnect asks the server
// to exit by closing its stdin and force-kills it after a grace period.
package mcpclient
