package poll

import "time"

// EventType identifies the kind of event occurring while polling.
type EventType string

const (
	// EventWaiting fires before each wait.
	EventWaiting EventType = "waiting"

	// EventPending fires after a check that found the operation unfinished.
	EventPending EventType = "pending"

	// EventDone fires when a check finds the operation finished.
	EventDone EventType = "done"

	// EventFailed fires when a check returns an error.
	EventFailed EventType = "failed"

	// EventExhausted fires when the attempt budget runs out.
	EventExhausted EventType = "exhausted"
)

// Event represents an observable occurrence while polling.
type Event struct {
	Type        EventType
	Attempt     int // 1-indexed
	MaxAttempts int
	Delay       time.Duration
	Error       error
	Timestamp   time.Time
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
	}
}
