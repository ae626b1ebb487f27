package retry

import (
	"context"
	"time"
)

// Do executes fn, retrying while it fails with a transient error and
// attempts remain. Context cancellation interrupts the backoff wait.
// Returns the result on success, or the last error if all attempts fail.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	return DoWithEvents(ctx, cfg, nil, fn)
}

// DoWithEvents is like Do but emits events for observability.
// Events are sent non-blocking; if the channel is full, events are dropped.
func DoWithEvents[T any](ctx context.Context, cfg Config, events chan<- Event, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		emit(events, Event{Type: EventAttemptStart, Attempt: attempt + 1, MaxAttempts: attempts})

		result, err := fn()
		if err == nil {
			emit(events, Event{Type: EventSuccess, Attempt: attempt + 1, MaxAttempts: attempts})
			return result, nil
		}

		lastErr = err
		retryable := IsTransient(err)
		emit(events, Event{
			Type:        EventAttemptFailed,
			Attempt:     attempt + 1,
			MaxAttempts: attempts,
			Error:       err,
			Retryable:   retryable,
		})

		if !retryable {
			return zero, err
		}

		if attempt < attempts-1 {
			delay := cfg.Delay(attempt)
			emit(events, Event{Type: EventRetrying, Attempt: attempt + 1, MaxAttempts: attempts, Delay: delay})

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	emit(events, Event{Type: EventExhausted, Attempt: attempts, MaxAttempts: attempts, Error: lastErr})
	return zero, lastErr
}
