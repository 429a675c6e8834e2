// Package registry tracks live tool-server sessions by name and routes
// list and call operations to the right one. It owns the connect, replace,
// and disconnect lifecycle; the per-process mechanics live in the session
// package.
package registry
