package retry

import "time"

// EventType names a step of a retried gateway call. The gateway forwards
// every event as a gateway.EventRetry and logs EventRetrying at warn level.
type EventType string

const (
	// EventAttemptStart precedes each call to the backend, including the
	// first.
	EventAttemptStart EventType = "attempt_start"

	// EventAttemptFailed follows a failed call. Retryable on the event says
	// whether the failure was a 429, a 5xx or a network error.
	EventAttemptFailed EventType = "attempt_failed"

	// EventRetrying precedes the backoff wait. Delay is the wait.
	EventRetrying EventType = "retrying"

	// EventSuccess follows the call that returned a result.
	EventSuccess EventType = "success"

	// EventExhausted follows the last failed call when MaxAttempts is used
	// up. Error is the failure the caller receives.
	EventExhausted EventType = "exhausted"
)

// Event reports one step of a retried call. Attempt counts from 1.
type Event struct {
	Type        EventType
	Attempt     int
	MaxAttempts int
	Error       error
	Delay       time.Duration
	Retryable   bool
	Timestamp   time.Time
}

// Final reports whether no further attempt follows this event.
func (e Event) Final() bool {
	switch e.Type {
	case EventSuccess, EventExhausted:
		return true
	case EventAttemptFailed:
		return !e.Retryable || e.Attempt >= e.MaxAttempts
	}
	return false
}

// emit stamps the event and hands it to ch. A full or nil channel drops it,
// so a slow listener never delays a backend call.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
	}
}
