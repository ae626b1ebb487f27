package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/internal/metrics"
	"github.com/greengold/carbonai/internal/poll"
	"github.com/greengold/carbonai/internal/provider/google"
	"github.com/greengold/carbonai/model"
	"github.com/greengold/carbonai/retry"
)

// Operation names a gateway operation in events, logs and metrics.
type Operation string

const (
	OpSearch          Operation = "search"
	OpMaps            Operation = "maps"
	OpRecommendations Operation = "recommendations"
	OpAnalysis        Operation = "analysis"
	OpImage           Operation = "image"
	OpVideo           Operation = "video"
	OpSpeech          Operation = "speech"
)

// Config holds configuration for creating a gateway.
type Config struct {
	// Credentials resolves the API key. It is consulted on every call.
	Credentials ai.Credentials

	// Models overrides the model used per operation. Empty entries keep
	// the defaults from model.Defaults.
	Models model.Set

	// PollInterval is the wait between video status checks.
	// Defaults to 10 seconds.
	PollInterval time.Duration

	// MaxPolls bounds the number of video status checks.
	// Defaults to 60.
	MaxPolls int

	// Timeout bounds each call. Zero means no limit beyond the caller's context.
	Timeout time.Duration

	// Retry configures retry behavior for transient errors.
	// If nil, every call is attempted exactly once. Video calls are never
	// retried: a failed submission or status check fails the call.
	Retry *retry.Config

	// Logger receives request logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records request counters. Nil disables metrics.
	Metrics *metrics.Metrics

	// Events is an optional channel for receiving operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// backend is the per-credential client the gateway drives.
type backend interface {
	SearchEntity(ctx context.Context, query string) (*ai.SearchResult, error)
	FindNearbyHubs(ctx context.Context, location string) (*ai.SearchResult, error)
	GetRecommendations(ctx context.Context, data map[string]any) (ai.RecommendationList, error)
	GetDeepAnalysis(ctx context.Context, data map[string]any) (*ai.Analysis, error)
	GenerateImage(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.Image, error)
	GenerateVideo(ctx context.Context, prompt string, opts ...ai.VideoOption) (string, error)
	Speak(ctx context.Context, text string) (*ai.Audio, error)
}

type dialFunc func(ctx context.Context, apiKey string, opts ...google.ClientOption) (backend, error)

func dialGoogle(ctx context.Context, apiKey string, opts ...google.ClientOption) (backend, error) {
	c, err := google.New(ctx, apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Gateway is the single entry point for AI operations. It holds no
// per-call state and is safe for concurrent use.
type Gateway struct {
	creds   ai.Credentials
	models  model.Set
	poll    poll.Config
	timeout time.Duration
	retry   retry.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	events  chan<- Event
	dial    dialFunc
}

// New creates a gateway with the given configuration.
func New(cfg Config) *Gateway {
	pollCfg := poll.DefaultConfig()
	if cfg.PollInterval > 0 {
		pollCfg.Interval = cfg.PollInterval
	}
	if cfg.MaxPolls > 0 {
		pollCfg.MaxAttempts = cfg.MaxPolls
	}

	retryCfg := retry.Disabled()
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	creds := cfg.Credentials
	if creds.Logger == nil {
		creds.Logger = logger
	}

	return &Gateway{
		creds:   creds,
		models:  model.Defaults().Merge(cfg.Models),
		poll:    pollCfg,
		timeout: cfg.Timeout,
		retry:   retryCfg,
		logger:  logger,
		metrics: cfg.Metrics,
		events:  cfg.Events,
		dial:    dialGoogle,
	}
}

// Models returns the effective model assignment.
func (g *Gateway) Models() model.Set {
	return g.models
}

// SearchEntity looks up UK company information with web grounding.
func (g *Gateway) SearchEntity(ctx context.Context, query string) (*ai.SearchResult, error) {
	if err := requireInput(OpSearch, query); err != nil {
		return nil, err
	}
	return invoke(ctx, g, OpSearch, g.models.Search, func(ctx context.Context, b backend) (*ai.SearchResult, error) {
		return b.SearchEntity(ctx, query)
	})
}

// FindNearbyHubs finds solar installers and sustainability consultancies
// near a location with maps grounding.
func (g *Gateway) FindNearbyHubs(ctx context.Context, location string) (*ai.SearchResult, error) {
	if err := requireInput(OpMaps, location); err != nil {
		return nil, err
	}
	return invoke(ctx, g, OpMaps, g.models.Maps, func(ctx context.Context, b backend) (*ai.SearchResult, error) {
		return b.FindNearbyHubs(ctx, location)
	})
}

// GetRecommendations returns structured carbon reduction recommendations.
// A response that cannot be parsed yields an empty list, not an error.
func (g *Gateway) GetRecommendations(ctx context.Context, data map[string]any) (ai.RecommendationList, error) {
	return invoke(ctx, g, OpRecommendations, g.models.Recommendations, func(ctx context.Context, b backend) (ai.RecommendationList, error) {
		return b.GetRecommendations(ctx, data)
	})
}

// GetDeepAnalysis returns a long-form decarbonization roadmap.
func (g *Gateway) GetDeepAnalysis(ctx context.Context, data map[string]any) (*ai.Analysis, error) {
	return invoke(ctx, g, OpAnalysis, g.models.Analysis, func(ctx context.Context, b backend) (*ai.Analysis, error) {
		return b.GetDeepAnalysis(ctx, data)
	})
}

// GenerateImage generates an image. It returns nil without error when the
// backend produced no image.
func (g *Gateway) GenerateImage(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.Image, error) {
	if err := requireInput(OpImage, prompt); err != nil {
		return nil, err
	}
	size := ai.ApplyImageOptions(opts...).Size
	return invoke(ctx, g, OpImage, g.models.ImageFor(size), func(ctx context.Context, b backend) (*ai.Image, error) {
		return b.GenerateImage(ctx, prompt, opts...)
	})
}

// GenerateVideo generates a video and returns its download URL with the
// credential attached. It blocks while the backend renders.
func (g *Gateway) GenerateVideo(ctx context.Context, prompt string, opts ...ai.VideoOption) (string, error) {
	if err := requireInput(OpVideo, prompt); err != nil {
		return "", err
	}
	return invoke(ctx, g, OpVideo, g.models.Video, func(ctx context.Context, b backend) (string, error) {
		return b.GenerateVideo(ctx, prompt, opts...)
	})
}

// Speak narrates text. It returns nil without error when the backend
// produced no audio.
func (g *Gateway) Speak(ctx context.Context, text string) (*ai.Audio, error) {
	if err := requireInput(OpSpeech, text); err != nil {
		return nil, err
	}
	return invoke(ctx, g, OpSpeech, g.models.Speech, func(ctx context.Context, b backend) (*ai.Audio, error) {
		return b.Speak(ctx, text)
	})
}

func requireInput(op Operation, s string) error {
	if strings.TrimSpace(s) == "" {
		return ai.NewError(ai.KindInvalidInput, string(op), 0, ai.ErrEmptyInput)
	}
	return nil
}

// invoke runs one operation: it resolves the credential, dials a backend
// for it, and calls fn under the retry policy, reporting events, logs and
// metrics along the way.
func invoke[T any](ctx context.Context, g *Gateway, op Operation, modelID string, fn func(context.Context, backend) (T, error)) (T, error) {
	var zero T

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	emit(g.events, Event{Type: EventRequestStart, Operation: op, Model: modelID})
	g.logger.Debug("gateway request started", "operation", op, "model", modelID)

	apiKey := g.creds.Resolve()
	if apiKey == "" {
		g.metrics.RecordMissingKey()
	}

	var wg sync.WaitGroup
	opts := []google.ClientOption{
		google.WithModels(g.models),
		google.WithPoll(g.poll),
	}
	var pollEvents chan poll.Event
	if op == OpVideo {
		pollEvents = make(chan poll.Event, 16)
		opts = append(opts, google.WithPollEvents(pollEvents))
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.forwardPollEvents(pollEvents, op, modelID)
		}()
	}

	var retryEvents chan retry.Event
	if g.events != nil {
		retryEvents = make(chan retry.Event, 10)
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.forwardRetryEvents(retryEvents, op, modelID)
		}()
	}

	policy := g.retry
	if op == OpVideo {
		// Retrying a video call would submit a second rendering job.
		policy = retry.Disabled()
	}

	var result T
	b, err := g.dial(ctx, apiKey, opts...)
	if err == nil {
		result, err = retry.DoWithEvents(ctx, policy, retryEvents, func() (T, error) {
			return fn(ctx, b)
		})
	}

	if pollEvents != nil {
		close(pollEvents)
	}
	if retryEvents != nil {
		close(retryEvents)
	}
	wg.Wait()

	elapsed := time.Since(start)
	if err != nil {
		g.metrics.RecordRequest(string(op), statusOf(err), elapsed)
		emit(g.events, Event{Type: EventRequestError, Operation: op, Model: modelID, Duration: elapsed, Error: err})
		g.logger.Error("gateway request failed",
			"operation", op,
			"model", modelID,
			"kind", statusOf(err),
			"duration", elapsed,
			"error", err)
		return zero, err
	}

	g.metrics.RecordRequest(string(op), "ok", elapsed)
	emit(g.events, Event{Type: EventRequestComplete, Operation: op, Model: modelID, Duration: elapsed})
	g.logger.Info("gateway request completed", "operation", op, "model", modelID, "duration", elapsed)
	return result, nil
}

// statusOf maps an error to a metrics status label.
func statusOf(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return string(ai.KindTimeout)
	}
	if kind := ai.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

func (g *Gateway) forwardRetryEvents(ch <-chan retry.Event, op Operation, modelID string) {
	for e := range ch {
		e := e
		emit(g.events, Event{Type: EventRetry, Operation: op, Model: modelID, RetryEvent: &e})
		switch {
		case e.Type == retry.EventRetrying:
			g.logger.Warn("retrying gateway request", "operation", op, "attempt", e.Attempt, "delay", e.Delay)
		case e.Type == retry.EventAttemptFailed && e.Final() && e.Attempt > 1:
			g.logger.Warn("giving up on gateway request", "operation", op, "attempts", e.Attempt)
		}
	}
}

func (g *Gateway) forwardPollEvents(ch <-chan poll.Event, op Operation, modelID string) {
	for e := range ch {
		e := e
		switch e.Type {
		case poll.EventPending, poll.EventDone, poll.EventFailed, poll.EventExhausted:
			g.metrics.RecordPoll(string(e.Type))
		}
		if e.Type == poll.EventPending {
			g.logger.Debug("video still rendering", "attempt", e.Attempt, "max_attempts", e.MaxAttempts)
		}
		emit(g.events, Event{Type: EventPoll, Operation: op, Model: modelID, PollEvent: &e})
	}
}
