package carbonai

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a required prompt or query is empty.
var ErrEmptyInput = errors.New("empty input")

// ErrorKind classifies a gateway failure by what went wrong.
type ErrorKind string

const (
	// KindAuthMissing indicates no credential was configured and the
	// backend refused the request because of it.
	KindAuthMissing ErrorKind = "auth_missing"

	// KindNetworkFailure indicates the request never produced a backend
	// response: DNS, connection resets, timeouts on the wire.
	KindNetworkFailure ErrorKind = "network_failure"

	// KindBackendRejected indicates the backend answered with an error status.
	KindBackendRejected ErrorKind = "backend_rejected"

	// KindMalformedResponse indicates the backend answered successfully but
	// the payload lacked something the operation cannot do without.
	KindMalformedResponse ErrorKind = "malformed_response"

	// KindEntityNotFound indicates the backend reported the requested entity
	// (usually the model or the project behind the key) does not exist.
	// Callers treat it as a signal to select a different credential.
	KindEntityNotFound ErrorKind = "entity_not_found"

	// KindTimeout indicates a long-running operation did not finish within
	// its polling budget.
	KindTimeout ErrorKind = "timeout"

	// KindInvalidInput indicates the caller supplied an unusable argument.
	KindInvalidInput ErrorKind = "invalid_input"
)

// KindedError is an error that reports its classification.
type KindedError interface {
	error
	Kind() ErrorKind
	Retryable() bool
	StatusCode() int // HTTP status code if applicable, 0 otherwise
}

// Error is a classified gateway error.
type Error struct {
	Msg       string
	K         ErrorKind
	Code      int  // HTTP status code, 0 if not applicable
	Transient bool // safe to retry
	Cause     error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Kind returns the error kind.
func (e *Error) Kind() ErrorKind {
	return e.K
}

// Retryable reports whether repeating the same request may succeed.
func (e *Error) Retryable() bool {
	return e.Transient
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Code
}

// NewError creates a non-retryable error of the given kind.
func NewError(kind ErrorKind, msg string, statusCode int, cause error) *Error {
	return &Error{
		Msg:   msg,
		K:     kind,
		Code:  statusCode,
		Cause: cause,
	}
}

// NewTransientError creates a retryable error of the given kind.
func NewTransientError(kind ErrorKind, msg string, statusCode int, cause error) *Error {
	return &Error{
		Msg:       msg,
		K:         kind,
		Code:      statusCode,
		Transient: true,
		Cause:     cause,
	}
}

// KindOf returns the kind of the first KindedError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return ""
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.Retryable()
	}
	return false
}

// StatusCodeOf returns the HTTP status code from a classified error, or 0.
func StatusCodeOf(err error) int {
	var ke KindedError
	if errors.As(err, &ke) {
		return ke.StatusCode()
	}
	return 0
}

// NeedsReauth reports whether the caller should prompt for a new credential
// before trying again.
func NeedsReauth(err error) bool {
	switch KindOf(err) {
	case KindEntityNotFound, KindAuthMissing:
		return true
	}
	return false
}

// ImageError represents an error decoding a caller-supplied image.
type ImageError struct {
	Op  string // "decode"
	Src string // where the image came from, e.g. "start image"
	Err error
}

// Error returns a formatted error message describing the image failure.
func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s error for %s: %v", e.Op, e.Src, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ImageError) Unwrap() error {
	return e.Err
}
