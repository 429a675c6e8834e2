package session

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/mcp-client-go/internal/config"
	"github.com/wagiedev/mcp-client-go/internal/errors"
	"github.com/wagiedev/mcp-client-go/internal/mcp"
	"github.com/wagiedev/mcp-client-go/internal/protocol"
)

// Session owns one tool-provider child process and performs blocking
// request/response exchanges over its stdio pipes.
//
// A session admits exactly one exchange at a time: the exchange mutex covers
// the full write-then-read round trip, so responses never need to be
// correlated across concurrent in-flight requests. The child's stderr is
// drained into the debug log by a dedicated goroutine and can never block
// the exchange pipes.
type Session struct {
	log    *slog.Logger
	server string
	id     string
	opts   *config.Options

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner

	// nextID numbers requests. Monotonic per session; uniqueness is all the
	// wire needs since exchanges are serialized.
	nextID atomic.Int64

	// mu serializes exchanges. Terminate deliberately does not take it so
	// teardown can interrupt a stuck exchange.
	mu sync.Mutex

	// poisoned is set by any transport failure. The stdout stream may hold a
	// stale or partial response afterward, so the session refuses further
	// exchanges until the caller reconnects.
	poisoned atomic.Bool

	closed   atomic.Bool
	stopOnce sync.Once
	stopErr  error
}

// Spawn launches a tool-provider process with stdin, stdout, and stderr
// connected as pipes.
//
// The caller's env overrides are merged onto a copy of the inherited process
// environment, override winning on key collision. A missing executable or an
// OS launch refusal returns a SpawnError; no process is left behind on any
// failure path.
func Spawn(server string, cfg mcp.ServerConfig, opts *config.Options) (*Session, error) {
	opts = opts.WithDefaults()

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		server: server,
		id:     ulid.Make().String(),
		opts:   opts,
	}
	s.log = log.With("component", "session", "server", server, "session_id", s.id)

	//nolint:gosec // G204: launching caller-supplied commands is this package's purpose
	cmd := exec.Command(cfg.Command, cfg.Args...)
	cmd.Env = mergeEnvironment(cfg.Env)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &errors.SpawnError{Command: cfg.Command, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &errors.SpawnError{Command: cfg.Command, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &errors.SpawnError{Command: cfg.Command, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		s.log.Debug("Server process failed to start", "command", cfg.Command, "error", err)

		return nil, &errors.SpawnError{Command: cfg.Command, Err: err}
	}

	s.cmd = cmd
	s.stdin = stdin
	s.stdout = newLineScanner(stdout, opts.MaxLineBytes)

	go s.drainStderr(stderr)

	s.log.Info("Server process started", "command", cfg.Command, "pid", cmd.Process.Pid)

	return s, nil
}

// newLineScanner bounds response lines at max bytes. A longer line stops the
// scan with bufio.ErrTooLong instead of growing the buffer without limit.
func newLineScanner(r io.Reader, max int) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, max), max)

	return scanner
}

// ID returns the session's ULID instance id.
func (s *Session) ID() string {
	return s.id
}

// Alive reports whether the session can still attempt exchanges. It consumes
// no pipe data. A child that exited on its own is discovered by the next
// exchange, which fails and poisons the session.
func (s *Session) Alive() bool {
	return !s.closed.Load() && !s.poisoned.Load()
}

// exchangeResult carries one response line out of the pipe goroutine.
type exchangeResult struct {
	line []byte
	err  error
}

// Exchange performs one request/response round trip: it writes the request
// envelope as a single newline-terminated line to the child's stdin, then
// blocks reading one line from its stdout.
//
// The read is bounded by the configured request timeout, by ctx, and by the
// MaxLineBytes line cap. On a protocol-level failure the server's error object
// is returned verbatim as a *protocol.RPCError. Every transport-level failure
// (EOF, broken pipe, non-JSON line, oversized line, timeout) returns a
// *errors.TransportError and poisons the session; on timeout or cancellation
// the child is also killed, since its stdout can no longer be trusted to line
// up with future requests.
func (s *Session) Exchange(ctx context.Context, method string, params any) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, &errors.TransportError{Server: s.server, Err: errors.ErrSessionClosed}
	}

	if s.poisoned.Load() {
		return nil, &errors.TransportError{Server: s.server, Err: errors.ErrSessionPoisoned}
	}

	req := protocol.NewRequest(s.nextID.Add(1), method, params)

	line, err := req.Encode()
	if err != nil {
		return nil, &errors.TransportError{Server: s.server, Err: err}
	}

	s.log.Debug("Sending request", "method", method, "request_id", req.ID)

	done := make(chan exchangeResult, 1)

	go s.roundTrip(line, done)

	timer := time.NewTimer(s.opts.RequestTimeout)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.err != nil {
			s.poisoned.Store(true)
			s.log.Debug("Exchange failed", "method", method, "request_id", req.ID, "error", res.err)

			return nil, &errors.TransportError{Server: s.server, Err: res.err}
		}

		return s.decode(res.line, method, req.ID)

	case <-timer.C:
		s.log.Warn("Request timed out", "method", method, "request_id", req.ID, "timeout", s.opts.RequestTimeout)
		s.poisonAndKill()

		return nil, &errors.TransportError{Server: s.server, Err: errors.ErrRequestTimeout}

	case <-ctx.Done():
		s.log.Debug("Request cancelled", "method", method, "request_id", req.ID, "error", ctx.Err())
		s.poisonAndKill()

		return nil, &errors.TransportError{Server: s.server, Err: ctx.Err()}
	}
}

// roundTrip writes one request line and reads one response line. It runs in
// its own goroutine so the caller can enforce the timeout; the buffered
// channel lets it finish even after the caller has given up.
func (s *Session) roundTrip(line []byte, done chan<- exchangeResult) {
	if _, err := s.stdin.Write(line); err != nil {
		done <- exchangeResult{err: fmt.Errorf("write request: %w", err)}

		return
	}

	if !s.stdout.Scan() {
		done <- exchangeResult{err: s.scanFailure()}

		return
	}

	// The scanner owns the returned bytes; decode is done with them before
	// the next exchange can scan again.
	done <- exchangeResult{line: s.stdout.Bytes()}
}

// scanFailure maps a stopped scan to the failure it represents. Err is nil
// when the child closed stdout without answering.
func (s *Session) scanFailure() error {
	err := s.stdout.Err()

	switch {
	case err == nil:
		return errors.ErrNoResponse
	case stderrors.Is(err, bufio.ErrTooLong):
		return fmt.Errorf("%w (%d byte cap)", errors.ErrResponseTooLarge, s.opts.MaxLineBytes)
	default:
		return fmt.Errorf("read response: %w", err)
	}
}

// decode parses one response line and picks the result or error branch.
func (s *Session) decode(line []byte, method string, id int64) (json.RawMessage, error) {
	line = bytes.TrimSpace(line)

	if len(line) == 0 {
		s.poisoned.Store(true)

		return nil, &errors.TransportError{Server: s.server, Err: errors.ErrNoResponse}
	}

	var resp protocol.Response

	if err := json.Unmarshal(line, &resp); err != nil {
		s.poisoned.Store(true)
		s.log.Debug("Response line is not valid JSON", "method", method, "request_id", id, "error", err)

		return nil, &errors.TransportError{Server: s.server, Err: fmt.Errorf("decode response: %w", err)}
	}

	if resp.Malformed() {
		s.poisoned.Store(true)

		return nil, &errors.TransportError{Server: s.server, Err: errors.ErrInvalidResponse}
	}

	// The result branch wins if a confused server sends both fields.
	if resp.Result != nil {
		s.log.Debug("Received result", "method", method, "request_id", id, "result_len", len(resp.Result))

		return resp.Result, nil
	}

	s.log.Debug("Server returned error",
		"method", method, "request_id", id, "code", resp.Error.Code, "message", resp.Error.Message)

	return nil, resp.Error
}

// poisonAndKill marks the session unusable and kills the child. The kill also
// unblocks the abandoned round-trip goroutine, whose pending read would
// otherwise hold the pipe forever.
func (s *Session) poisonAndKill() {
	s.poisoned.Store(true)

	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
}

// Terminate stops the child process. It closes stdin to request a voluntary
// exit, waits up to the grace period, then force-kills. The process handle is
// released on every path. Safe to call multiple times and on a session whose
// child already exited.
func (s *Session) Terminate() error {
	s.stopOnce.Do(func() {
		s.closed.Store(true)
		s.stopErr = s.stop()
	})

	return s.stopErr
}

func (s *Session) stop() error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}

	s.log.Debug("Stopping server process", "pid", s.cmd.Process.Pid)

	// Closing stdin is the polite stop for a line-driven server.
	if s.stdin != nil {
		_ = s.stdin.Close()
	}

	done := make(chan error, 1)

	go func() {
		done <- s.cmd.Wait()
	}()

	select {
	case err := <-done:
		// A non-zero exit after we asked the child to stop is normal.
		if err != nil {
			s.log.Debug("Server process exited", "error", err)
		} else {
			s.log.Debug("Server process exited cleanly")
		}

		return nil

	case <-time.After(s.opts.TerminateGrace):
	}

	s.log.Warn("Server process did not exit in time, killing", "pid", s.cmd.Process.Pid, "grace", s.opts.TerminateGrace)

	if err := s.cmd.Process.Kill(); err != nil && !stderrors.Is(err, os.ErrProcessDone) {
		<-done

		return fmt.Errorf("kill server process (pid %d): %w", s.cmd.Process.Pid, err)
	}

	<-done

	return nil
}

// drainStderr consumes the child's stderr for the life of the process.
// Diagnostic output surfaces in the debug log only.
func (s *Session) drainStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.log.Debug("Server stderr", "line", scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		s.log.Debug("Stderr drain ended", "error", err)
	}
}

// mergeEnvironment layers the caller's overrides onto a copy of the current
// process environment. Later entries win for duplicate keys in exec.Cmd.Env,
// so appending implements override-wins.
func mergeEnvironment(overrides map[string]string) []string {
	env := os.Environ()

	for key, value := range overrides {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
