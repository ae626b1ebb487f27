package google

import (
	"context"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/internal/poll"
	"github.com/greengold/carbonai/model"
	"google.golang.org/genai"
)

// ContentAPI is the subset of genai.Models the client uses.
type ContentAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
}

// OperationsAPI is the subset of genai.Operations the client uses.
type OperationsAPI interface {
	GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation, config *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error)
}

// Client issues gateway operations against the Gemini API.
// A Client is bound to one API key.
type Client struct {
	models     ContentAPI
	operations OperationsAPI
	apiKey     string
	set        model.Set
	poll       poll.Config
	pollEvents chan<- poll.Event
}

// ClientOption configures the Google client.
type ClientOption func(*Client)

// WithModels sets the models used per operation.
func WithModels(set model.Set) ClientOption {
	return func(c *Client) {
		c.set = set
	}
}

// WithPoll sets how video operations are polled.
func WithPoll(cfg poll.Config) ClientOption {
	return func(c *Client) {
		c.poll = cfg
	}
}

// WithPollEvents sets a channel that receives video polling events.
func WithPollEvents(events chan<- poll.Event) ClientOption {
	return func(c *Client) {
		c.pollEvents = events
	}
}

// New creates a Gemini API client for apiKey. An empty key fails with
// KindAuthMissing without contacting the backend.
func New(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ai.NewError(ai.KindAuthMissing, "no Gemini API key configured", 0, nil)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, wrapError(err, apiKey)
	}
	return NewWithBackend(client.Models, client.Operations, apiKey, opts...), nil
}

// NewWithBackend creates a client over explicit backend implementations.
func NewWithBackend(models ContentAPI, operations OperationsAPI, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		models:     models,
		operations: operations,
		apiKey:     apiKey,
		set:        model.Defaults(),
		poll:       poll.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// generate wraps GenerateContent with error classification.
func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, wrapError(err, c.apiKey)
	}
	return resp, nil
}

// firstInlineData returns the first part of the first candidate that
// carries inline binary data.
func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return nil
	}
	for _, part := range cand.Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData
		}
	}
	return nil
}

// responseText concatenates the text parts of the first candidate,
// skipping thought summaries.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	text := ""
	for _, part := range cand.Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			text += part.Text
		}
	}
	return text
}
