package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fast(attempts int) Config {
	return Config{Interval: time.Millisecond, MaxAttempts: attempts}
}

func drain(ch chan Event) []EventType {
	close(ch)
	var types []EventType
	for ev := range ch {
		types = append(types, ev.Type)
	}
	return types
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.Interval)
	assert.Equal(t, 60, cfg.MaxAttempts)
}

func TestUntilDone(t *testing.T) {
	events := make(chan Event, 16)
	checks := 0

	result, err := Until(context.Background(), fast(5), events, func(ctx context.Context) (string, bool, error) {
		checks++
		return "ready", checks == 2, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ready", result)
	assert.Equal(t, 2, checks)
	assert.Equal(t, []EventType{EventWaiting, EventPending, EventWaiting, EventDone}, drain(events))
}

func TestUntilExhausted(t *testing.T) {
	events := make(chan Event, 16)
	checks := 0

	_, err := Until(context.Background(), fast(3), events, func(ctx context.Context) (int, bool, error) {
		checks++
		return 0, false, nil
	})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 3, checks)
	types := drain(events)
	assert.Equal(t, EventExhausted, types[len(types)-1])
}

func TestUntilPropagatesCheckError(t *testing.T) {
	boom := errors.New("boom")
	checks := 0

	_, err := Until(context.Background(), fast(5), nil, func(ctx context.Context) (int, bool, error) {
		checks++
		return 0, false, boom
	})

	assert.Equal(t, boom, err)
	assert.Equal(t, 1, checks)
}

func TestUntilRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	checks := 0
	_, err := Until(ctx, Config{Interval: time.Second, MaxAttempts: 10}, nil, func(ctx context.Context) (int, bool, error) {
		checks++
		return 0, false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, checks)
}

func TestUntilTreatsZeroAttemptsAsOne(t *testing.T) {
	checks := 0
	_, err := Until(context.Background(), Config{Interval: time.Millisecond}, nil, func(ctx context.Context) (int, bool, error) {
		checks++
		return 0, false, nil
	})

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, checks)
}
