package gateway

import (
	"time"

	"github.com/greengold/carbonai/internal/poll"
	"github.com/greengold/carbonai/retry"
)

// EventType identifies the kind of event occurring during gateway operations.
type EventType string

const (
	// EventRequestStart fires before an operation is sent to the backend.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after an operation completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when an operation fails.
	EventRequestError EventType = "request_error"

	// EventRetry fires when a retry event occurs (forwarded from retry package).
	EventRetry EventType = "retry"

	// EventPoll fires while a video operation is being polled.
	EventPoll EventType = "poll"
)

// PollEvent is an observable occurrence while polling a video operation.
type PollEvent = poll.Event

// PollEventType identifies the kind of poll event.
type PollEventType = poll.EventType

// Poll event type constants.
const (
	PollEventWaiting   = poll.EventWaiting
	PollEventPending   = poll.EventPending
	PollEventDone      = poll.EventDone
	PollEventFailed    = poll.EventFailed
	PollEventExhausted = poll.EventExhausted
)

// Event represents an observable occurrence during gateway operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Operation names the gateway operation, e.g. "search" or "video".
	Operation Operation

	// Model is the backend model serving the operation.
	Model string

	// Duration is the elapsed time for finished requests.
	Duration time.Duration

	// Error contains the error for EventRequestError.
	Error error

	// RetryEvent contains the underlying retry event for EventRetry.
	RetryEvent *retry.Event

	// PollEvent contains the underlying poll event for EventPoll.
	PollEvent *PollEvent

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
