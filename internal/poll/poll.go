// Package poll waits on long-running backend operations.
package poll

import (
	"context"
	"errors"
	"time"
)

// ErrExhausted is returned when the operation is still pending after the
// last allowed check.
var ErrExhausted = errors.New("poll: attempts exhausted")

// Config bounds a polling loop.
type Config struct {
	// Interval is the wait before each check.
	Interval time.Duration

	// MaxAttempts is the maximum number of checks. Values below 1 are
	// treated as 1.
	MaxAttempts int
}

// DefaultConfig checks every 10 seconds for up to 10 minutes.
func DefaultConfig() Config {
	return Config{
		Interval:    10 * time.Second,
		MaxAttempts: 60,
	}
}

// Until repeatedly waits cfg.Interval and then calls check, until check
// reports done or fails. The first call happens after the first wait.
// Context cancellation interrupts the wait.
func Until[T any](ctx context.Context, cfg Config, events chan<- Event, check func(ctx context.Context) (T, bool, error)) (T, error) {
	var zero T

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		emit(events, Event{Type: EventWaiting, Attempt: attempt, MaxAttempts: attempts, Delay: cfg.Interval})

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.Interval):
		}

		result, done, err := check(ctx)
		if err != nil {
			emit(events, Event{Type: EventFailed, Attempt: attempt, MaxAttempts: attempts, Error: err})
			return zero, err
		}
		if done {
			emit(events, Event{Type: EventDone, Attempt: attempt, MaxAttempts: attempts})
			return result, nil
		}
		emit(events, Event{Type: EventPending, Attempt: attempt, MaxAttempts: attempts})
	}

	emit(events, Event{Type: EventExhausted, Attempt: attempts, MaxAttempts: attempts, Error: ErrExhausted})
	return zero, ErrExhausted
}
