// Package errors provides domain-specific error types for gosnake.
//
// The types carry the context a caller needs to decide how a session
// ends: a protocol desync, a transport failure, a display failure or a
// bad configuration.  None of them is retried once a game has started.
package errors

import (
	"errors"
	"fmt"
	"io"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrMessageTooLong = errors.New("message exceeds size limit")
	ErrNotATerminal   = errors.New("stdin is not a terminal")
)

// ── Structured error types ───────────────────────────────────────────

// ProtocolError is an unexpected message where the protocol guarantees a
// specific one.  The client cannot resynchronise after it.
type ProtocolError struct {
	Stage string // "lobby", "configuration", "turn", "turn update", "state"
	Got   string // what arrived instead
	Err   error  // optional decoding cause
}

func (e *ProtocolError) Error() string {
	s := fmt.Sprintf("protocol: unexpected %s during %s", e.Got, e.Stage)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// NetworkError represents a failure in a network operation or a payload
// that could not be parsed.
type NetworkError struct {
	Op        string // "dial", "read", "write", "decode", "encode"
	Addr      string // network address involved
	Err       error  // underlying error
	Retryable bool   // only honoured before the game starts
}

func (e *NetworkError) Error() string {
	s := fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
	if e.Retryable {
		s += " (retryable)"
	}
	return s
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RenderError is a failed write to the display.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render: %s: %v", e.Op, e.Err) }

func (e *RenderError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a NetworkError, detecting retryability from the
// underlying error.
func Wrap(op, addr string, err error) *NetworkError {
	return &NetworkError{
		Op:        op,
		Addr:      addr,
		Err:       err,
		Retryable: classifyRetryable(err),
	}
}

// Unexpected creates a ProtocolError.
func Unexpected(stage, got string, err error) *ProtocolError {
	return &ProtocolError{Stage: stage, Got: got, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsProtocol reports whether err is a protocol desync.
func IsProtocol(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

// IsRender reports whether err came from the display.
func IsRender(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Retryable
	}
	return classifyRetryable(err)
}

// IsClosed reports whether err is the expected result of the peer or
// this process closing the connection.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, net.ErrClosed)
	}
	return false
}

// classifyRetryable treats refused and timed-out dials as retryable,
// which covers a server that has not started listening yet.
func classifyRetryable(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" {
			return true
		}
		return opErr.Timeout()
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
