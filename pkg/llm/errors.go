package llm

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds for generation failures. The scheduler keys its retry policy
// off these: transport, remote (except non-429 4xx) and timeout errors are
// retryable; parse errors are retried once before falling back; config and
// validation errors are not retried.

// ConfigError indicates a misconfiguration: missing API key, unknown task,
// unknown model identifier. Fatal for the attempt and never retried.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config error: " + e.Msg }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// TransportError indicates the remote endpoint could not be reached.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport error: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError indicates a non-2xx response from the remote endpoint.
type RemoteError struct {
	StatusCode int
	Msg        string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (status %d): %s", e.StatusCode, e.Msg)
}

// Retryable reports whether the remote error is worth retrying: server
// errors and rate limits are, other client errors are not.
func (e *RemoteError) Retryable() bool {
	if e.StatusCode == 429 {
		return true
	}
	return e.StatusCode < 400 || e.StatusCode >= 500
}

// ParseError indicates the remote returned text the task could not parse.
type ParseError struct {
	Task string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in task %s: %v", e.Task, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError indicates a parsed result violated the task's schema
// rules. Non-fatal: the task substitutes its fallback.
type ValidationError struct {
	Task string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in task %s: %s", e.Task, e.Msg)
}

// IsRetryable classifies an error per the retry policy above.
func IsRetryable(err error) bool {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Retryable()
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return true // retried once; the scheduler caps parse retries
	}
	return false
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsCancelled reports user- or shutdown-initiated cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeout reports a per-attempt deadline expiry.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
