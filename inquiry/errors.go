package inquiry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no inquiry has the requested ID.
	ErrNotFound = errors.New("inquiry: not found")

	// ErrEmptyReply indicates a reply with no text.
	ErrEmptyReply = errors.New("inquiry: reply text is empty")
)

// SerializationError wraps JSON marshaling/unmarshaling errors with context.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("inquiry: serialization error for %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
