// Package session owns tool-provider child processes and the raw
// request/response exchange over their stdio pipes.
//
// Each Session wraps exactly one process. Exchanges are serialized by a
// mutex covering the full write-then-read round trip, every blocking read is
// bounded by a timeout, and stderr is drained so diagnostic output can never
// back up the exchange pipes. Sessions that suffer a transport failure are
// poisoned: they refuse further exchanges until the caller reconnects,
// because the stdout stream may hold a stale response.
package session
